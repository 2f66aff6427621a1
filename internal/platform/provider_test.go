package platform

import (
	"errors"
	"image"
	"testing"
)

func TestNewProvider_UnsupportedPlatform(t *testing.T) {
	// Temporarily clear the provider func to simulate unsupported platform
	orig := NewProviderFunc
	NewProviderFunc = nil
	defer func() { NewProviderFunc = orig }()

	_, err := NewProvider()
	if err == nil {
		t.Fatal("expected error on unsupported platform")
	}
	if err != ErrUnsupported {
		t.Errorf("expected ErrUnsupported, got: %v", err)
	}
}

func TestNewProvider_UsesRegisteredFunc(t *testing.T) {
	orig := NewProviderFunc
	defer func() { NewProviderFunc = orig }()

	want := &Provider{Strategy: StrategyPoll}
	NewProviderFunc = func() (*Provider, error) { return want, nil }

	got, err := NewProvider()
	if err != nil {
		t.Fatal(err)
	}
	if got != want {
		t.Error("NewProvider did not return the registered provider")
	}
}

type closingCursor struct {
	closed bool
	err    error
}

func (c *closingCursor) CursorPosition() (image.Point, error) { return image.Point{}, nil }
func (c *closingCursor) Close() error {
	c.closed = true
	return c.err
}

func TestProvider_CloseClosesCursor(t *testing.T) {
	cur := &closingCursor{err: errors.New("boom")}
	p := &Provider{Cursor: cur}
	if err := p.Close(); err == nil || !cur.closed {
		t.Errorf("Close: err=%v closed=%v, want error and closed", err, cur.closed)
	}
}

func TestProvider_CloseWithoutCloser(t *testing.T) {
	p := &Provider{}
	if err := p.Close(); err != nil {
		t.Errorf("Close on empty provider: %v", err)
	}
}

func TestDefaultStrategy(t *testing.T) {
	tests := []struct {
		goos string
		want Strategy
	}{
		{"darwin", StrategyPoll},
		{"linux", StrategyEvents},
		{"windows", StrategyEvents},
		{"freebsd", StrategyEvents},
	}
	for _, tt := range tests {
		if got := DefaultStrategy(tt.goos); got != tt.want {
			t.Errorf("DefaultStrategy(%q) = %v, want %v", tt.goos, got, tt.want)
		}
	}
}
