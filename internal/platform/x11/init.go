//go:build (linux && !android) || freebsd || openbsd || netbsd

package x11

import (
	"runtime"

	"github.com/mj1618/redraw-master/internal/platform"
	"github.com/mj1618/redraw-master/internal/platform/sysclip"
)

func init() {
	platform.NewProviderFunc = func() (*platform.Provider, error) {
		cursor, err := NewCursor()
		if err != nil {
			return nil, err
		}
		return &platform.Provider{
			Cursor:    cursor,
			Clipboard: sysclip.New(),
			Strategy:  platform.DefaultStrategy(runtime.GOOS),
		}, nil
	}
}
