package platform

import (
	"fmt"
	"strings"
)

// Strategy selects how clipboard changes are detected.
type Strategy int

const (
	// StrategyAuto defers to the platform default.
	StrategyAuto Strategy = iota
	// StrategyEvents subscribes to clipboard change notifications.
	StrategyEvents
	// StrategyPoll reads the clipboard on a fixed interval.
	StrategyPoll
)

// ParseStrategy converts a config or flag value to Strategy.
func ParseStrategy(s string) (Strategy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "auto":
		return StrategyAuto, nil
	case "events", "event":
		return StrategyEvents, nil
	case "poll", "polling":
		return StrategyPoll, nil
	default:
		return StrategyAuto, fmt.Errorf("unknown clipboard strategy: %q (expected auto, events, or poll)", s)
	}
}

// Resolve replaces StrategyAuto with fallback.
func (s Strategy) Resolve(fallback Strategy) Strategy {
	if s == StrategyAuto {
		return fallback
	}
	return s
}

func (s Strategy) String() string {
	switch s {
	case StrategyEvents:
		return "events"
	case StrategyPoll:
		return "poll"
	default:
		return "auto"
	}
}
