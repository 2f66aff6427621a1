package overlay

import "image"

// FitSize returns the on-screen size of an image with the given natural size
// when drawn into a window at the given scale. The target box is the window
// size multiplied by scale; the image is fitted inside it keeping its aspect
// ratio. Each dimension is at least 1 pixel.
func FitSize(natural, window image.Point, scale float64) image.Point {
	box := image.Pt(
		max(1, int(float64(window.X)*scale)),
		max(1, int(float64(window.Y)*scale)),
	)
	if natural.X <= 0 || natural.Y <= 0 {
		return box
	}

	// Width that matches the box height at the natural aspect ratio.
	w := int64(box.Y) * int64(natural.X) / int64(natural.Y)
	if w <= int64(box.X) {
		return image.Pt(max(1, int(w)), box.Y)
	}
	h := int64(box.X) * int64(natural.Y) / int64(natural.X)
	return image.Pt(box.X, max(1, int(h)))
}

// ImageOrigin returns the top-left corner of a scaled image centered in the
// window and translated by the pan offset.
func ImageOrigin(window, scaled, offset image.Point) image.Point {
	return image.Pt(
		int(float64(window.X-scaled.X)/2+float64(offset.X)),
		int(float64(window.Y-scaled.Y)/2+float64(offset.Y)),
	)
}

// Relative converts a global cursor position into coordinates relative to
// the left half of the screen horizontally and the full screen vertically.
// Both values are clamped to [0, 1]. A non-positive screen dimension yields 0
// on that axis.
func Relative(cursor, screen image.Point) (float64, float64) {
	var rx, ry float64
	if half := float64(screen.X) / 2; half > 0 {
		rx = float64(cursor.X) / half
	}
	if screen.Y > 0 {
		ry = float64(cursor.Y) / float64(screen.Y)
	}
	return clamp(rx, 0, 1), clamp(ry, 0, 1)
}

// Project maps a global cursor position onto window-local pixels.
func Project(cursor, screen, window image.Point) image.Point {
	rx, ry := Relative(cursor, screen)
	return image.Pt(int(rx*float64(window.X)), int(ry*float64(window.Y)))
}

// ClampWindow enforces the minimum window dimension on both axes.
func ClampWindow(window image.Point, minSide int) image.Point {
	return image.Pt(max(window.X, minSide), max(window.Y, minSide))
}

func clamp[T int | float64](v, lo, hi T) T {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
