//go:build windows

package win32

import (
	"fmt"
	"image"
	"unsafe"

	"golang.org/x/sys/windows"
)

var (
	user32           = windows.NewLazySystemDLL("user32.dll")
	procGetCursorPos = user32.NewProc("GetCursorPos")
)

type point struct {
	X, Y int32
}

// Cursor implements platform.CursorLocator with GetCursorPos.
type Cursor struct{}

// NewCursor returns a new Cursor instance.
func NewCursor() *Cursor {
	return &Cursor{}
}

// CursorPosition returns the pointer location in virtual-screen coordinates.
func (c *Cursor) CursorPosition() (image.Point, error) {
	var pt point
	r, _, err := procGetCursorPos.Call(uintptr(unsafe.Pointer(&pt)))
	if r == 0 {
		return image.Point{}, fmt.Errorf("GetCursorPos: %w", err)
	}
	return image.Pt(int(pt.X), int(pt.Y)), nil
}
