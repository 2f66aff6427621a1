package ui

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// inputState holds the polled state of inputs for a single frame.
// This separates input polling from input handling logic.
type inputState struct {
	quit      bool
	toggleHUD bool
	resetView bool
	paste     bool

	// Mouse state
	wheel    int  // -1, 0 or 1 notch this frame
	modifier bool // Ctrl, or Cmd on macOS
	pressed  bool // primary button just pressed
	released bool // primary button just released
	mouse    image.Point
}

// modifierKey is the key that turns wheel zoom into marker resizing and
// V into a manual paste.
func modifierKey(goos string) ebiten.Key {
	if goos == "darwin" {
		return ebiten.KeyMeta
	}
	return ebiten.KeyControl
}

// pollInput gathers all raw input events for the current frame.
func pollInput(goos string) inputState {
	_, wheelY := ebiten.Wheel()
	mx, my := ebiten.CursorPosition()
	mod := ebiten.IsKeyPressed(modifierKey(goos))
	return inputState{
		quit:      inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ),
		toggleHUD: inpututil.IsKeyJustPressed(ebiten.KeyH),
		resetView: inpututil.IsKeyJustPressed(ebiten.KeyR),
		paste:     inpututil.IsKeyJustPressed(ebiten.KeyF5) || (mod && inpututil.IsKeyJustPressed(ebiten.KeyV)),

		wheel:    wheelNotch(wheelY),
		modifier: mod,
		pressed:  inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft),
		released: inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft),
		mouse:    image.Pt(mx, my),
	}
}

// wheelNotch reduces a wheel delta to its direction. Trackpads report
// fractional deltas; any movement counts as one notch.
func wheelNotch(dy float64) int {
	switch {
	case dy > 0:
		return 1
	case dy < 0:
		return -1
	}
	return 0
}

// applyInput mutates the session for one frame of input. Drawing happens
// every frame, so mutations show up on the next Draw.
func (o *Overlay) applyInput(in inputState) {
	s := o.session
	if in.wheel != 0 {
		if in.modifier {
			if s.AdjustRadius(in.wheel) {
				o.logger.Debug("marker radius", "radius", s.Radius())
			}
		} else if s.Zoom(in.wheel) {
			o.logger.Debug("zoom", "scale", s.Scale())
		}
	}

	if in.pressed {
		s.BeginDrag(in.mouse)
	}
	if s.Dragging() {
		s.DragTo(in.mouse)
	}
	if in.released {
		s.EndDrag()
	}

	if in.resetView {
		s.ResetView()
		o.cursorTick.Reset()
	}
	if in.toggleHUD {
		o.showHUD = !o.showHUD
	}
}
