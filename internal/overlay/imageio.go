package overlay

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/draw"
	_ "image/gif"  // Register GIF decoder
	_ "image/jpeg" // Register JPEG decoder
	_ "image/png"  // Register PNG decoder
	"io"
	"os"

	_ "golang.org/x/image/bmp"  // Register BMP decoder
	_ "golang.org/x/image/tiff" // Register TIFF decoder
	_ "golang.org/x/image/webp" // Register WebP decoder

	xdraw "golang.org/x/image/draw"
)

// ErrEmptyImage is returned for images that decode to zero pixels.
var ErrEmptyImage = errors.New("image has no pixels")

// Info describes an image file without decoding its pixels.
type Info struct {
	Format string
	Width  int
	Height int
}

// Probe reads the header of the image at path.
func Probe(path string) (Info, error) {
	f, err := os.Open(path)
	if err != nil {
		return Info{}, fmt.Errorf("opening image: %w", err)
	}
	defer f.Close()

	cfg, format, err := image.DecodeConfig(f)
	if err != nil {
		return Info{}, fmt.Errorf("decoding image config: %w", err)
	}
	return Info{Format: format, Width: cfg.Width, Height: cfg.Height}, nil
}

// Load decodes the image at path. See Decode for maxSide.
func Load(path string, maxSide int) (*image.RGBA, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("couldn't load image from path %s: %w", path, err)
	}
	defer f.Close()

	img, err := Decode(f, maxSide)
	if err != nil {
		return nil, fmt.Errorf("couldn't load image from path %s: %w", path, err)
	}
	return img, nil
}

// DecodeBytes decodes an encoded image held in memory.
func DecodeBytes(data []byte, maxSide int) (*image.RGBA, error) {
	return Decode(bytes.NewReader(data), maxSide)
}

// Decode reads any registered image format and returns it as RGBA anchored
// at the origin. Images with a side longer than maxSide are downsampled to
// fit; maxSide <= 0 disables the limit.
func Decode(r io.Reader, maxSide int) (*image.RGBA, error) {
	src, _, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("decoding image: %w", err)
	}
	if src.Bounds().Empty() {
		return nil, ErrEmptyImage
	}
	return Normalize(src, maxSide), nil
}

// Normalize copies src into a fresh RGBA buffer, resampling with Catmull-Rom
// when it exceeds maxSide on either axis.
func Normalize(src image.Image, maxSide int) *image.RGBA {
	size := src.Bounds().Size()
	if maxSide > 0 && (size.X > maxSide || size.Y > maxSide) {
		target := FitSize(size, image.Pt(maxSide, maxSide), 1)
		dst := image.NewRGBA(image.Rect(0, 0, target.X, target.Y))
		xdraw.CatmullRom.Scale(dst, dst.Bounds(), src, src.Bounds(), xdraw.Src, nil)
		return dst
	}
	dst := image.NewRGBA(image.Rect(0, 0, size.X, size.Y))
	draw.Draw(dst, dst.Bounds(), src, src.Bounds().Min, draw.Src)
	return dst
}
