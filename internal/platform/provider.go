package platform

import (
	"fmt"
	"io"
	"runtime"
)

// Provider bundles the platform backends for the current OS.
type Provider struct {
	Cursor    CursorLocator
	Clipboard ClipboardSource

	// Strategy is the clipboard change detection that works reliably for
	// an unfocused window on this OS.
	Strategy Strategy
}

// ErrUnsupported is returned on unsupported platforms.
var ErrUnsupported = fmt.Errorf("redraw-master is not supported on %s/%s; supported: darwin, windows, linux/bsd with X11", runtime.GOOS, runtime.GOARCH)

// NewProviderFunc is set by platform-specific packages via init().
// See internal/platform/darwin, internal/platform/x11 and
// internal/platform/win32 for the registrations.
var NewProviderFunc func() (*Provider, error)

// NewProvider returns a Provider for the current OS.
func NewProvider() (*Provider, error) {
	if NewProviderFunc == nil {
		return nil, ErrUnsupported
	}
	return NewProviderFunc()
}

// Close releases backend resources such as display connections.
func (p *Provider) Close() error {
	if c, ok := p.Cursor.(io.Closer); ok {
		return c.Close()
	}
	return nil
}

// DefaultStrategy picks the clipboard strategy for goos. macOS does not
// deliver clipboard notifications to inactive windows, so it polls.
func DefaultStrategy(goos string) Strategy {
	if goos == "darwin" {
		return StrategyPoll
	}
	return StrategyEvents
}
