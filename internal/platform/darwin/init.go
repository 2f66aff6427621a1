//go:build darwin && cgo

package darwin

import (
	"github.com/mj1618/redraw-master/internal/platform"
	"github.com/mj1618/redraw-master/internal/platform/sysclip"
)

func init() {
	platform.NewProviderFunc = func() (*platform.Provider, error) {
		return &platform.Provider{
			Cursor:    NewCursor(),
			Clipboard: sysclip.New(),
			Strategy:  platform.DefaultStrategy("darwin"),
		}, nil
	}
}
