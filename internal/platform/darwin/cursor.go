//go:build darwin && cgo

package darwin

/*
#cgo LDFLAGS: -framework CoreGraphics -framework CoreFoundation
#include <CoreGraphics/CoreGraphics.h>

// Read the current pointer location in global display coordinates
// (top-left origin). Returns -1 if no event could be created.
static int cg_cursor_location(double *x, double *y) {
    CGEventRef ev = CGEventCreate(NULL);
    if (!ev) {
        return -1;
    }
    CGPoint p = CGEventGetLocation(ev);
    CFRelease(ev);
    *x = p.x;
    *y = p.y;
    return 0;
}
*/
import "C"

import (
	"errors"
	"image"
)

// Cursor implements platform.CursorLocator using CoreGraphics events.
type Cursor struct{}

// NewCursor returns a new Cursor instance.
func NewCursor() *Cursor {
	return &Cursor{}
}

// CursorPosition returns the pointer location in screen points.
func (c *Cursor) CursorPosition() (image.Point, error) {
	var x, y C.double
	if rc := C.cg_cursor_location(&x, &y); rc != 0 {
		return image.Point{}, errors.New("CGEventCreate failed")
	}
	return image.Pt(int(x), int(y)), nil
}
