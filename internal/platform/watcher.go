package platform

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/mj1618/redraw-master/internal/tick"
)

// EventDriven forwards clipboard change notifications. The subscription runs
// on its own goroutine; Poll drains it without blocking.
type EventDriven struct {
	changes <-chan []byte
	cancel  context.CancelFunc
}

// NewEventDriven subscribes to src until ctx is done or Close is called.
func NewEventDriven(ctx context.Context, src ClipboardSource) (*EventDriven, error) {
	ctx, cancel := context.WithCancel(ctx)
	ch, err := src.WatchImage(ctx)
	if err != nil {
		cancel()
		return nil, fmt.Errorf("watch clipboard: %w", err)
	}
	return &EventDriven{changes: ch, cancel: cancel}, nil
}

// Poll returns the most recent notification since the last call. Older
// notifications queued behind it are dropped.
func (w *EventDriven) Poll(time.Time) ([]byte, bool) {
	var latest []byte
	got := false
	for {
		select {
		case data, ok := <-w.changes:
			if !ok {
				w.changes = nil
				return latest, got
			}
			latest, got = data, true
		default:
			return latest, got
		}
	}
}

func (w *EventDriven) Strategy() Strategy { return StrategyEvents }

func (w *EventDriven) Close() error {
	w.cancel()
	return nil
}

// Polling reads the clipboard every interval. Comparing payloads is left to
// the consumer, which fingerprints them.
type Polling struct {
	src    ClipboardSource
	ticker *tick.Ticker
	logger *slog.Logger
}

// NewPolling returns a watcher that reads src at most once per interval.
func NewPolling(src ClipboardSource, interval time.Duration, logger *slog.Logger) *Polling {
	if logger == nil {
		logger = slog.Default()
	}
	return &Polling{src: src, ticker: tick.New(interval), logger: logger}
}

func (w *Polling) Poll(now time.Time) ([]byte, bool) {
	if !w.ticker.Due(now) {
		return nil, false
	}
	data, err := w.src.ReadImage()
	if err != nil {
		w.logger.Debug("clipboard read failed", "err", err)
		return nil, false
	}
	if len(data) == 0 {
		return nil, false
	}
	return data, true
}

func (w *Polling) Strategy() Strategy { return StrategyPoll }

func (w *Polling) Close() error { return nil }

// NewWatcher builds the watcher for strategy. When a change subscription
// cannot be set up it falls back to polling.
func NewWatcher(ctx context.Context, strategy Strategy, src ClipboardSource, interval time.Duration, logger *slog.Logger) ClipboardWatcher {
	if logger == nil {
		logger = slog.Default()
	}
	if strategy == StrategyEvents {
		w, err := NewEventDriven(ctx, src)
		if err == nil {
			return w
		}
		logger.Warn("clipboard notifications unavailable, polling instead", "err", err, "interval", interval)
	}
	return NewPolling(src, interval, logger)
}
