package view_test

import (
	"testing"
	"time"

	"github.com/divya20032004/custom-event-calendar/internal/model"
	"github.com/divya20032004/custom-event-calendar/internal/view"
)

func day(d, hour int) time.Time {
	return time.Date(2024, 1, d, hour, 0, 0, 0, time.UTC)
}

var sample = []model.Event{
	{ID: "1", Title: "Team standup", Category: model.CategoryWork, Start: day(1, 9), End: day(1, 10)},
	{ID: "2", Title: "Dentist", Description: "Bring insurance card", Category: model.CategoryPersonal, Start: day(2, 14), End: day(2, 15)},
	{ID: "3", Title: "Sprint review", Category: model.CategoryWork, Start: day(3, 11), End: day(3, 12)},
}

func ids(events []model.Event) []string {
	out := make([]string, len(events))
	for i, ev := range events {
		out[i] = ev.ID
	}
	return out
}

func TestFilter(t *testing.T) {
	tests := []struct {
		name     string
		search   string
		category string
		want     []string
	}{
		{"no filter", "", view.FilterAll, []string{"1", "2", "3"}},
		{"title substring", "standup", view.FilterAll, []string{"1"}},
		{"case insensitive", "SPRINT", view.FilterAll, []string{"3"}},
		{"description substring", "insurance", view.FilterAll, []string{"2"}},
		{"category only", "", "Work", []string{"1", "3"}},
		{"search and category", "review", "Work", []string{"3"}},
		{"category rules out match", "dentist", "Work", nil},
		{"no matches", "retro", view.FilterAll, nil},
	}

	for _, tt := range tests {
		got := ids(view.Filter(sample, tt.search, tt.category))
		if len(got) != len(tt.want) {
			t.Errorf("%s: Filter = %v, want %v", tt.name, got, tt.want)
			continue
		}
		for i := range got {
			if got[i] != tt.want[i] {
				t.Errorf("%s: Filter = %v, want %v", tt.name, got, tt.want)
				break
			}
		}
	}
}

func TestFilterPreservesInput(t *testing.T) {
	before := sample[0].Title
	view.Filter(sample, "standup", "Work")
	if sample[0].Title != before {
		t.Error("Filter mutated its input")
	}
}

func TestInRange(t *testing.T) {
	// Window: Jan 2 00:00 – Jan 2 23:00.
	from := day(2, 0)
	to := day(2, 23)

	got := ids(view.InRange(sample, from, to))
	if len(got) != 1 || got[0] != "2" {
		t.Errorf("InRange = %v, want [2]", got)
	}
}

func TestInRangePartialOverlap(t *testing.T) {
	events := []model.Event{
		{ID: "spans", Start: day(1, 23), End: day(2, 1)},
	}

	// An event straddling the window edge still counts.
	got := view.InRange(events, day(2, 0), day(2, 23))
	if len(got) != 1 {
		t.Errorf("InRange missed an event overlapping the window start")
	}
	got = view.InRange(events, day(1, 0), day(1, 23))
	if len(got) != 1 {
		t.Errorf("InRange missed an event overlapping the window end")
	}
	got = view.InRange(events, day(3, 0), day(3, 23))
	if len(got) != 0 {
		t.Errorf("InRange matched a disjoint event")
	}
}
