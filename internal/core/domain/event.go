package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Event is an immutable snapshot of one upcoming match from the external
// feed. A refresh replaces the whole cached set; events are never patched
// field by field.
type Event struct {
	ID           string          `json:"id"`
	Title        string          `json:"title"`
	League       string          `json:"league"`
	Category     string          `json:"category"` // football, basketball, tennis, hockey, mma
	TeamA        string          `json:"team_a"`
	TeamB        string          `json:"team_b"`
	OddsA        decimal.Decimal `json:"odds_a"`
	OddsDraw     decimal.Decimal `json:"odds_draw"` // zero when the sport has no draw
	OddsB        decimal.Decimal `json:"odds_b"`
	CommenceTime time.Time       `json:"commence_time"`
	Status       string          `json:"status"`
}

// HasDraw reports whether the draw outcome is priced for this event.
func (e *Event) HasDraw() bool {
	return e.OddsDraw.IsPositive()
}

// EventSnapshot is the full event set of one refresh cycle plus its fetch
// time. Snapshots are replaced wholesale, never mutated in place.
type EventSnapshot struct {
	Events    []Event   `json:"events"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Age returns how stale the snapshot is at the given instant.
func (s *EventSnapshot) Age(now time.Time) time.Duration {
	return now.Sub(s.UpdatedAt)
}

// Filter returns the events matching the category, or all events when the
// filter is empty.
func (s *EventSnapshot) Filter(category string) []Event {
	if category == "" {
		return s.Events
	}
	out := make([]Event, 0, len(s.Events))
	for _, e := range s.Events {
		if e.Category == category {
			out = append(out, e)
		}
	}
	return out
}
