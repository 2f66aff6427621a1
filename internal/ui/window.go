package ui

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"
)

// fallbackScreen is used when no monitor is reported.
var fallbackScreen = image.Pt(1920, 1080)

// primaryScreenSize returns the logical size of the primary monitor.
func primaryScreenSize() image.Point {
	monitors := ebiten.AppendMonitors(nil)
	var m *ebiten.MonitorType
	if len(monitors) > 0 {
		m = monitors[0]
	} else {
		m = ebiten.Monitor()
	}
	if m == nil {
		return fallbackScreen
	}
	w, h := m.Size()
	if w <= 0 || h <= 0 {
		return fallbackScreen
	}
	return image.Pt(w, h)
}

// rightHalf returns the window rectangle covering the right half of screen,
// no smaller than minSide on either axis.
func rightHalf(screen image.Point, minSide int) image.Rectangle {
	w := max(screen.X/2, minSide)
	h := max(screen.Y, minSide)
	x := screen.X / 2
	return image.Rect(x, 0, x+w, h)
}

// configureWindow sets the always-on-top, translucent window up over the
// right half of the screen.
func configureWindow(opts Options, screen image.Point) {
	ebiten.SetWindowTitle(opts.Title)
	if opts.Icon != nil {
		ebiten.SetWindowIcon([]image.Image{opts.Icon})
	}
	ebiten.SetWindowFloating(true)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSizeLimits(opts.MinWindow, opts.MinWindow, -1, -1)

	rect := rightHalf(screen, opts.MinWindow)
	ebiten.SetWindowSize(rect.Dx(), rect.Dy())
	ebiten.SetWindowPosition(rect.Min.X, rect.Min.Y)

	// Cursor tracking and clipboard polling must keep running while the user
	// draws in another application.
	ebiten.SetRunnableOnUnfocused(true)
}
