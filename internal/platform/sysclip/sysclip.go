// Package sysclip adapts golang.design/x/clipboard to platform.ClipboardSource.
package sysclip

import (
	"context"
	"fmt"
	"sync"

	"golang.design/x/clipboard"
)

// Clipboard reads image data from the system clipboard. The underlying
// library is initialised on first use.
type Clipboard struct {
	once sync.Once
	err  error
}

// New returns a new Clipboard instance.
func New() *Clipboard {
	return &Clipboard{}
}

func (c *Clipboard) init() error {
	c.once.Do(func() {
		if err := clipboard.Init(); err != nil {
			c.err = fmt.Errorf("clipboard init: %w", err)
		}
	})
	return c.err
}

// ReadImage returns the clipboard image as PNG bytes, or nil if the
// clipboard holds no image.
func (c *Clipboard) ReadImage() ([]byte, error) {
	if err := c.init(); err != nil {
		return nil, err
	}
	return clipboard.Read(clipboard.FmtImage), nil
}

// WatchImage streams new clipboard images until ctx is done.
func (c *Clipboard) WatchImage(ctx context.Context) (<-chan []byte, error) {
	if err := c.init(); err != nil {
		return nil, err
	}
	return clipboard.Watch(ctx, clipboard.FmtImage), nil
}
