package cmd

import (
	"bytes"
	"context"
	"errors"
	"image"
	"image/png"
	"io"
	"log/slog"
	"testing"

	"github.com/mj1618/redraw-master/internal/overlay"
)

type staticClipboard struct {
	data []byte
	err  error
}

func (c *staticClipboard) ReadImage() ([]byte, error) { return c.data, c.err }
func (c *staticClipboard) WatchImage(context.Context) (<-chan []byte, error) {
	return nil, errors.New("not supported")
}

func TestPrimeIngestor(t *testing.T) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, image.NewRGBA(image.Rect(0, 0, 9, 3))); err != nil {
		t.Fatal(err)
	}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	tests := []struct {
		name    string
		clip    *staticClipboard
		replace bool
	}{
		{"existing image is skipped", &staticClipboard{data: buf.Bytes()}, false},
		{"read error leaves ingestor unprimed", &staticClipboard{err: errors.New("locked")}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			session := overlay.NewSession(image.NewRGBA(image.Rect(0, 0, 400, 400)), "gojo.png", 10, overlay.DefaultLimits())
			ingest := overlay.NewIngestor(session, 0, logger)
			primeIngestor(ingest, tt.clip, logger)

			if got := ingest.Offer(buf.Bytes(), "poll"); got != tt.replace {
				t.Errorf("Offer = %v, want %v", got, tt.replace)
			}
		})
	}
}
