package platform

import (
	"context"
	"image"
	"time"
)

// CursorLocator reads the global cursor position from the OS.
type CursorLocator interface {
	// CursorPosition returns the pointer location in screen coordinates.
	CursorPosition() (image.Point, error)
}

// ClipboardSource reads encoded image payloads from the system clipboard.
type ClipboardSource interface {
	// ReadImage returns the current clipboard image as encoded bytes (PNG on
	// every supported platform), or nil when the clipboard holds no image.
	ReadImage() ([]byte, error)

	// WatchImage subscribes to clipboard image changes until ctx is done.
	WatchImage(ctx context.Context) (<-chan []byte, error)
}

// ClipboardWatcher hands clipboard image payloads to the UI loop. Poll never
// blocks; it is called once per frame.
type ClipboardWatcher interface {
	// Poll returns the newest payload available at now, if any.
	Poll(now time.Time) ([]byte, bool)

	// Strategy reports how changes are detected.
	Strategy() Strategy

	// Close stops any background subscription.
	Close() error
}
