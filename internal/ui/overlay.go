// Package ui runs the overlay window on ebiten. It owns the session and
// drives cursor polling, clipboard ingestion and input from the game loop.
package ui

import (
	"fmt"
	"image"
	"image/color"
	"log/slog"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/mj1618/redraw-master/internal/overlay"
	"github.com/mj1618/redraw-master/internal/platform"
	"github.com/mj1618/redraw-master/internal/tick"
)

// markerPenWidth matches the outline the marker is drawn with; the filled
// disc extends half of it past the radius.
const markerPenWidth = 3

// Options configures the window and its rendering.
type Options struct {
	Title          string
	Icon           image.Image
	Opacity        float64
	MarkerColor    color.NRGBA
	CursorInterval time.Duration
	MinWindow      int
	GOOS           string
}

// Overlay implements ebiten.Game.
type Overlay struct {
	session   *overlay.Session
	ingest    *overlay.Ingestor
	cursor    platform.CursorLocator
	clipboard platform.ClipboardSource
	watcher   platform.ClipboardWatcher
	opts      Options
	logger    *slog.Logger

	cursorTick    *tick.Ticker
	cursorFailing bool
	screen        image.Point
	showHUD       bool
	now           func() time.Time
	screenSize    func() image.Point

	tex     *ebiten.Image
	texGen  uint64
	retired []*ebiten.Image
}

// New wires an overlay around session. The watcher is closed when Run
// returns.
func New(session *overlay.Session, ingest *overlay.Ingestor, provider *platform.Provider, watcher platform.ClipboardWatcher, opts Options, logger *slog.Logger) *Overlay {
	if logger == nil {
		logger = slog.Default()
	}
	return &Overlay{
		session:    session,
		ingest:     ingest,
		cursor:     provider.Cursor,
		clipboard:  provider.Clipboard,
		watcher:    watcher,
		opts:       opts,
		logger:     logger,
		cursorTick: tick.New(opts.CursorInterval),
		now:        time.Now,
		screenSize: primaryScreenSize,
	}
}

// Run opens the window and blocks until it is closed.
func (o *Overlay) Run() error {
	defer o.watcher.Close()

	o.screen = o.screenSize()
	configureWindow(o.opts, o.screen)
	o.logger.Info("overlay started",
		"screen", fmt.Sprintf("%dx%d", o.screen.X, o.screen.Y),
		"clipboard", o.watcher.Strategy(),
		"image", o.session.Image().Source)

	if err := ebiten.RunGameWithOptions(o, &ebiten.RunGameOptions{ScreenTransparent: true}); err != nil {
		return fmt.Errorf("run overlay: %w", err)
	}
	return nil
}

func (o *Overlay) Update() error {
	// Textures replaced in the previous frame are no longer referenced by Draw.
	for _, img := range o.retired {
		img.Deallocate()
	}
	o.retired = o.retired[:0]

	in := pollInput(o.opts.GOOS)
	if in.quit {
		return ebiten.Termination
	}
	o.applyInput(in)
	o.tick(o.now(), in.paste)
	return nil
}

// tick runs the timed work of one frame: cursor refresh, clipboard watch
// and the manual paste shortcut.
func (o *Overlay) tick(now time.Time, paste bool) {
	if o.cursorTick.Due(now) {
		o.refreshCursor()
	}
	if data, ok := o.watcher.Poll(now); ok {
		o.ingest.Offer(data, o.watcher.Strategy().String())
	}
	if paste {
		o.pasteNow()
	}
}

func (o *Overlay) refreshCursor() {
	if size := o.screenSize(); size.X > 0 && size.Y > 0 {
		o.screen = size
	}
	p, err := o.cursor.CursorPosition()
	if err != nil {
		if !o.cursorFailing {
			o.logger.Warn("cursor query failed", "err", err)
			o.cursorFailing = true
		}
		return
	}
	if o.cursorFailing {
		o.logger.Info("cursor query recovered")
		o.cursorFailing = false
	}
	o.session.SetCursor(p)
}

// pasteNow reads the clipboard on demand, bypassing the watcher and the
// fingerprint check.
func (o *Overlay) pasteNow() {
	data, err := o.clipboard.ReadImage()
	if err != nil {
		o.logger.Warn("clipboard read failed", "err", err)
		return
	}
	if len(data) == 0 {
		o.logger.Info("clipboard holds no image")
		return
	}
	o.ingest.Force(data, "manual")
}

func (o *Overlay) Draw(screen *ebiten.Image) {
	win := screen.Bounds().Size()
	img := o.session.Image()
	natural := img.Size()
	scaled := overlay.FitSize(natural, win, o.session.Scale())
	origin := overlay.ImageOrigin(win, scaled, o.session.Offset())

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(scaled.X)/float64(natural.X), float64(scaled.Y)/float64(natural.Y))
	op.GeoM.Translate(float64(origin.X), float64(origin.Y))
	op.Filter = ebiten.FilterLinear
	op.ColorScale.ScaleAlpha(float32(o.opts.Opacity))
	screen.DrawImage(o.texture(img), op)

	marker := overlay.Project(o.session.Cursor(), o.screen, win)
	r := float32(o.session.Radius()) + markerPenWidth/2.0
	vector.DrawFilledCircle(screen, float32(marker.X), float32(marker.Y), r, o.markerColor(), true)

	if o.showHUD {
		o.drawHUD(screen)
	}
}

func (o *Overlay) Layout(outsideWidth, outsideHeight int) (int, int) {
	size := overlay.ClampWindow(image.Pt(outsideWidth, outsideHeight), o.opts.MinWindow)
	return size.X, size.Y
}

// texture returns the GPU copy of img, uploading it when the session image
// has been replaced.
func (o *Overlay) texture(img *overlay.Image) *ebiten.Image {
	if o.tex == nil || o.texGen != img.Generation {
		if o.tex != nil {
			o.retired = append(o.retired, o.tex)
		}
		o.tex = ebiten.NewImageFromImage(img.Pixels)
		o.texGen = img.Generation
	}
	return o.tex
}

func (o *Overlay) markerColor() color.NRGBA {
	c := o.opts.MarkerColor
	c.A = uint8(float64(c.A) * o.opts.Opacity)
	return c
}
