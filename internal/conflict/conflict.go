// Package conflict decides whether a candidate time range may be stored.
// Evaluation is pure: it never mutates the collection and has no state.
package conflict

import (
	"time"

	"github.com/divya20032004/custom-event-calendar/internal/model"
)

// Result classifies a candidate time range against the collection.
type Result int

const (
	// Clear means the range is valid and overlaps nothing.
	Clear Result = iota
	// Conflict means the range overlaps at least one existing event.
	// The caller may still proceed after explicit user confirmation.
	Conflict
	// Invalid means start >= end; the candidate is rejected unconditionally.
	Invalid
)

func (r Result) String() string {
	switch r {
	case Clear:
		return "clear"
	case Conflict:
		return "conflict"
	case Invalid:
		return "invalid"
	default:
		return "unknown"
	}
}

// Evaluation is the outcome of a check. Conflicts holds the overlapping
// events when Result is Conflict, in collection order.
type Evaluation struct {
	Result    Result
	Conflicts []model.Event
}

// Evaluate checks the [start, end) candidate range against every event in
// the collection except the one with excludeID (pass "" to exclude none).
// Overlap uses half-open semantics: touching ranges do not conflict.
//
// The scan is pairwise against every event, which is sufficient at the
// scale of a personal calendar.
func Evaluate(start, end time.Time, events []model.Event, excludeID string) Evaluation {
	if !start.Before(end) {
		return Evaluation{Result: Invalid}
	}

	var hits []model.Event
	for _, e := range events {
		if excludeID != "" && e.ID == excludeID {
			continue
		}
		if start.Before(e.End) && end.After(e.Start) {
			hits = append(hits, e)
		}
	}
	if len(hits) > 0 {
		return Evaluation{Result: Conflict, Conflicts: hits}
	}
	return Evaluation{Result: Clear}
}
