// Package tick paces periodic work inside a frame-driven loop.
package tick

import "time"

// Ticker fires at most once per interval when polled. It never queues
// missed ticks: after a stall the next tick is scheduled from the poll time.
type Ticker struct {
	interval time.Duration
	next     time.Time
}

// New returns a Ticker that is due on its first poll.
func New(interval time.Duration) *Ticker {
	return &Ticker{interval: interval}
}

// Due reports whether a tick is due at now and, if so, schedules the next.
func (t *Ticker) Due(now time.Time) bool {
	if !t.next.IsZero() && now.Before(t.next) {
		return false
	}
	t.next = now.Add(t.interval)
	return true
}

// Reset makes the ticker due on its next poll.
func (t *Ticker) Reset() {
	t.next = time.Time{}
}
