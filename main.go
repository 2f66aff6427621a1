package main

import (
	"github.com/mj1618/redraw-master/cmd"

	// Platform backends register themselves with internal/platform.
	_ "github.com/mj1618/redraw-master/internal/platform/darwin"
	_ "github.com/mj1618/redraw-master/internal/platform/win32"
	_ "github.com/mj1618/redraw-master/internal/platform/x11"
)

func main() {
	cmd.Execute()
}
