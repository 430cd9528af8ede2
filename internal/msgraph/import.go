package msgraph

import (
	"fmt"
	"strings"
	"time"

	"github.com/divya20032004/custom-event-calendar/internal/model"
)

// draftsFromGraph maps fetched entries into drafts, applying the skip rules
// and reporting per-entry mapping failures.
func draftsFromGraph(events []graphEvent, timezone string, category model.Category) (drafts []model.Draft, errCount int) {
	for _, e := range events {
		if skippable(e) {
			continue
		}
		d, err := draftFromGraph(e, timezone, category)
		if err != nil {
			fmt.Printf("  ! Error mapping event %q: %v\n", e.Subject, err)
			errCount++
			continue
		}
		drafts = append(drafts, d)
	}
	return drafts, errCount
}

// skippable reports whether the entry carries nothing worth scheduling:
// cancelled, all-day, private or free-time entries, and entries missing a
// time range.
func skippable(e graphEvent) bool {
	switch {
	case e.IsCancelled, e.IsAllDay:
		return true
	case e.Sensitivity == "private":
		return true
	case e.ShowAs == "free":
		return true
	case e.Start.DateTime == "" || e.End.DateTime == "":
		return true
	}
	return false
}

// draftFromGraph converts one Graph entry into an event draft. The Graph
// event id becomes the draft's ImportUID so re-imports stay idempotent.
func draftFromGraph(e graphEvent, timezone string, category model.Category) (model.Draft, error) {
	start, err := graphTime(e.Start.DateTime, timezone)
	if err != nil {
		return model.Draft{}, fmt.Errorf("parsing start time: %w", err)
	}
	end, err := graphTime(e.End.DateTime, timezone)
	if err != nil {
		return model.Draft{}, fmt.Errorf("parsing end time: %w", err)
	}

	return model.Draft{
		Title:          e.Subject,
		Description:    graphDescription(e),
		Start:          start,
		End:            end,
		Category:       category,
		RecurrenceType: model.RecurrenceNone,
		ImportUID:      e.ID,
	}, nil
}

// graphDescription joins body preview and location into one description.
func graphDescription(e graphEvent) string {
	var parts []string
	if e.BodyPreview != "" {
		parts = append(parts, e.BodyPreview)
	}
	if e.Location.DisplayName != "" {
		parts = append(parts, e.Location.DisplayName)
	}
	return strings.Join(parts, "\n")
}

// graphTime parses a Graph dateTime string. With a Prefer: outlook.timezone
// header set, Graph renders zoneless values like "2026-02-27T09:00:00.0000000"
// in the requested zone, so tz decides the location for those.
func graphTime(dt, tz string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, dt); err == nil {
		return t, nil
	}
	if t, err := time.Parse(time.RFC3339Nano, dt); err == nil {
		return t, nil
	}

	loc := time.UTC
	if tz != "" {
		if l, err := time.LoadLocation(tz); err == nil {
			loc = l
		}
	}
	for _, layout := range []string{
		"2006-01-02T15:04:05.0000000",
		"2006-01-02T15:04:05",
	} {
		if t, err := time.ParseInLocation(layout, dt, loc); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("cannot parse graph time %q", dt)
}
