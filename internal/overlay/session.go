// Package overlay holds the platform-agnostic state and geometry of the
// cursor-projection overlay: the displayed image, pan and zoom, the marker,
// and clipboard ingestion. Nothing here touches the windowing toolkit.
package overlay

import (
	"image"
)

// Limits bounds the user-adjustable parts of a Session.
type Limits struct {
	MinScale  float64
	MaxScale  float64
	ZoomStep  float64
	MinRadius int
	MaxRadius int
}

// DefaultLimits returns the stock zoom and marker bounds.
func DefaultLimits() Limits {
	return Limits{
		MinScale:  0.1,
		MaxScale:  10.0,
		ZoomStep:  1.1,
		MinRadius: 1,
		MaxRadius: 100,
	}
}

// Image is an immutable decoded picture. Generation increases every time the
// session image is replaced, so renderers can tell when to re-upload it.
type Image struct {
	Pixels     *image.RGBA
	Source     string
	Generation uint64
}

// Size returns the pixel dimensions of the image.
func (img *Image) Size() image.Point {
	return img.Pixels.Bounds().Size()
}

type dragState struct {
	active      bool
	anchor      image.Point
	startOffset image.Point
}

// Session is the mutable state of one overlay window. It is owned by the UI
// loop and must only be touched from that goroutine.
type Session struct {
	limits Limits
	image  *Image
	scale  float64
	radius int
	offset image.Point
	cursor image.Point
	drag   dragState
}

// NewSession creates a session showing pixels with the given initial marker
// radius. The radius is clamped to limits.
func NewSession(pixels *image.RGBA, source string, radius int, limits Limits) *Session {
	return &Session{
		limits: limits,
		image:  &Image{Pixels: pixels, Source: source, Generation: 1},
		scale:  clamp(1.0, limits.MinScale, limits.MaxScale),
		radius: clamp(radius, limits.MinRadius, limits.MaxRadius),
	}
}

// Image returns the image currently shown.
func (s *Session) Image() *Image { return s.image }

// Scale returns the zoom factor.
func (s *Session) Scale() float64 { return s.scale }

// Radius returns the marker radius in pixels.
func (s *Session) Radius() int { return s.radius }

// Offset returns the pan offset from the centred position.
func (s *Session) Offset() image.Point { return s.offset }

// Cursor returns the last known global cursor position.
func (s *Session) Cursor() image.Point { return s.cursor }

// Dragging reports whether a pan is in progress.
func (s *Session) Dragging() bool { return s.drag.active }

// ReplaceImage swaps in a new image wholesale. The previous image value is
// left untouched for anyone still holding it.
func (s *Session) ReplaceImage(pixels *image.RGBA, source string) {
	s.image = &Image{
		Pixels:     pixels,
		Source:     source,
		Generation: s.image.Generation + 1,
	}
}

// SetCursor records the latest global cursor position. It reports whether
// the position changed.
func (s *Session) SetCursor(p image.Point) bool {
	if p == s.cursor {
		return false
	}
	s.cursor = p
	return true
}

// Zoom multiplies the scale by the zoom step for a positive direction and
// divides it for a negative one. Zero is a no-op.
func (s *Session) Zoom(direction int) bool {
	if direction == 0 {
		return false
	}
	next := s.scale
	if direction > 0 {
		next *= s.limits.ZoomStep
	} else {
		next /= s.limits.ZoomStep
	}
	next = clamp(next, s.limits.MinScale, s.limits.MaxScale)
	if next == s.scale {
		return false
	}
	s.scale = next
	return true
}

// AdjustRadius grows or shrinks the marker by one pixel per notch.
func (s *Session) AdjustRadius(direction int) bool {
	if direction == 0 {
		return false
	}
	step := 1
	if direction < 0 {
		step = -1
	}
	next := clamp(s.radius+step, s.limits.MinRadius, s.limits.MaxRadius)
	if next == s.radius {
		return false
	}
	s.radius = next
	return true
}

// BeginDrag starts panning from pointer position p.
func (s *Session) BeginDrag(p image.Point) {
	s.drag = dragState{active: true, anchor: p, startOffset: s.offset}
}

// DragTo moves the image so that it follows the pointer relative to where the
// drag began. It is ignored when no drag is in progress.
func (s *Session) DragTo(p image.Point) bool {
	if !s.drag.active {
		return false
	}
	next := s.drag.startOffset.Add(p.Sub(s.drag.anchor))
	if next == s.offset {
		return false
	}
	s.offset = next
	return true
}

// EndDrag stops panning. The accumulated offset is kept.
func (s *Session) EndDrag() {
	s.drag = dragState{}
}

// ResetView restores the default scale and removes the pan offset.
func (s *Session) ResetView() {
	s.scale = clamp(1.0, s.limits.MinScale, s.limits.MaxScale)
	s.offset = image.Point{}
	s.drag = dragState{}
}
