// Package view holds the read-side projection of the collection: text
// search and category filtering. It never mutates events.
package view

import (
	"strings"
	"time"

	"github.com/divya20032004/custom-event-calendar/internal/model"
)

// FilterAll matches every category.
const FilterAll = "All"

// Filter returns the events whose title or description contains searchTerm
// (case-insensitive substring, "" matches everything) and whose category
// equals filterCategory (or filterCategory is All). Order is preserved.
func Filter(events []model.Event, searchTerm, filterCategory string) []model.Event {
	lower := strings.ToLower(searchTerm)

	var out []model.Event
	for _, ev := range events {
		if filterCategory != FilterAll && string(ev.Category) != filterCategory {
			continue
		}
		if lower != "" &&
			!strings.Contains(strings.ToLower(ev.Title), lower) &&
			!strings.Contains(strings.ToLower(ev.Description), lower) {
			continue
		}
		out = append(out, ev)
	}
	return out
}

// InRange returns the events whose time range overlaps the inclusive
// [from, to] window.
func InRange(events []model.Event, from, to time.Time) []model.Event {
	var out []model.Event
	for _, ev := range events {
		if ev.Start.After(to) || ev.End.Before(from) {
			continue
		}
		out = append(out, ev)
	}
	return out
}
