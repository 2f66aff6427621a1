package overlay

import (
	"fmt"
	"image"
	"log/slog"

	"github.com/cespare/xxhash/v2"
)

// Fingerprint is a cheap content hash of a clipboard payload.
func Fingerprint(data []byte) uint64 {
	return xxhash.Sum64(data)
}

// Ingestor turns clipboard payloads into session image replacements.
// Replacement is all-or-nothing: a payload is fully decoded before the
// session sees it, and a payload that fails to decode changes nothing.
type Ingestor struct {
	session *Session
	maxSide int
	logger  *slog.Logger

	last uint64
	seen bool
}

// NewIngestor returns an Ingestor feeding session.
func NewIngestor(session *Session, maxSide int, logger *slog.Logger) *Ingestor {
	if logger == nil {
		logger = slog.Default()
	}
	return &Ingestor{session: session, maxSide: maxSide, logger: logger}
}

// Offer ingests data when its fingerprint differs from the last payload seen.
// It reports whether the session image was replaced.
func (in *Ingestor) Offer(data []byte, source string) bool {
	return in.ingest(data, source, false)
}

// Prime records data as already seen without decoding it, so content that
// was on the clipboard before startup does not replace the opened image.
func (in *Ingestor) Prime(data []byte) {
	if len(data) == 0 {
		return
	}
	in.last, in.seen = Fingerprint(data), true
}

// Force ingests data even if it matches the last payload seen.
func (in *Ingestor) Force(data []byte, source string) bool {
	return in.ingest(data, source, true)
}

func (in *Ingestor) ingest(data []byte, source string, force bool) bool {
	if len(data) == 0 {
		return false
	}
	fp := Fingerprint(data)
	if !force && in.seen && fp == in.last {
		return false
	}
	// Remember rejected payloads too so a bad clipboard is reported once.
	in.last, in.seen = fp, true

	img, err := decodeGuarded(data, in.maxSide)
	if err != nil {
		in.logger.Warn("ignoring clipboard content", "source", source, "bytes", len(data), "err", err)
		return false
	}
	in.session.ReplaceImage(img, source)
	size := img.Bounds().Size()
	in.logger.Info("image replaced from clipboard", "source", source, "width", size.X, "height", size.Y)
	return true
}

// decodeGuarded keeps decoder panics on hostile input from reaching the UI
// loop.
func decodeGuarded(data []byte, maxSide int) (img *image.RGBA, err error) {
	defer func() {
		if r := recover(); r != nil {
			img, err = nil, fmt.Errorf("decoder panic: %v", r)
		}
	}()
	return DecodeBytes(data, maxSide)
}
