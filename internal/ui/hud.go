package ui

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/mj1618/redraw-master/internal/overlay"
	"github.com/mj1618/redraw-master/internal/platform"
	"golang.org/x/image/font/basicfont"
)

const (
	hudMargin     = 8
	hudPadding    = 6
	hudLineHeight = 16
)

var hudFace = text.NewGoXFace(basicfont.Face7x13)

func hudLines(s *overlay.Session, strategy platform.Strategy) []string {
	img := s.Image()
	size := img.Size()
	off := s.Offset()
	return []string{
		fmt.Sprintf("scale   %.2fx", s.Scale()),
		fmt.Sprintf("radius  %d", s.Radius()),
		fmt.Sprintf("offset  %d,%d", off.X, off.Y),
		fmt.Sprintf("image   %dx%d (%s)", size.X, size.Y, img.Source),
		fmt.Sprintf("clip    %s", strategy),
		"drag pan | wheel zoom | ctrl+wheel radius | R reset | F5 paste",
	}
}

func (o *Overlay) drawHUD(screen *ebiten.Image) {
	lines := hudLines(o.session, o.watcher.Strategy())

	var width float64
	for _, l := range lines {
		w, _ := text.Measure(l, hudFace, hudLineHeight)
		width = max(width, w)
	}
	height := float64(len(lines) * hudLineHeight)
	vector.DrawFilledRect(screen,
		hudMargin, hudMargin,
		float32(width+2*hudPadding), float32(height+2*hudPadding),
		color.NRGBA{A: 160}, false)

	for i, l := range lines {
		op := &text.DrawOptions{}
		op.GeoM.Translate(hudMargin+hudPadding, float64(hudMargin+hudPadding+i*hudLineHeight))
		op.ColorScale.ScaleWithColor(color.White)
		text.Draw(screen, l, hudFace, op)
	}
}
