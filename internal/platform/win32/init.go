//go:build windows

package win32

import (
	"runtime"

	"github.com/mj1618/redraw-master/internal/platform"
	"github.com/mj1618/redraw-master/internal/platform/sysclip"
)

func init() {
	platform.NewProviderFunc = func() (*platform.Provider, error) {
		return &platform.Provider{
			Cursor:    NewCursor(),
			Clipboard: sysclip.New(),
			Strategy:  platform.DefaultStrategy(runtime.GOOS),
		}, nil
	}
}
