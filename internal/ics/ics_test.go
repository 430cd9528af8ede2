package ics_test

import (
	"strings"
	"testing"
	"time"

	"github.com/divya20032004/custom-event-calendar/internal/ics"
	"github.com/divya20032004/custom-event-calendar/internal/model"
)

func TestEncodeParseRoundTrip(t *testing.T) {
	events := []model.Event{
		{
			ID:             "11111111-2222-3333-4444-555555555555",
			Title:          "Standup",
			Description:    "Daily sync",
			Start:          time.Date(2026, 2, 27, 9, 0, 0, 0, time.UTC),
			End:            time.Date(2026, 2, 27, 9, 30, 0, 0, time.UTC),
			Category:       model.CategoryWork,
			RecurrenceType: model.RecurrenceNone,
		},
		{
			ID:             "66666666-7777-8888-9999-000000000000",
			Title:          "Dentist",
			Start:          time.Date(2026, 2, 27, 14, 0, 0, 0, time.UTC),
			End:            time.Date(2026, 2, 27, 15, 0, 0, 0, time.UTC),
			Category:       model.CategoryPersonal,
			RecurrenceType: model.RecurrenceNone,
		},
	}

	doc := ics.Encode(events)
	if !strings.Contains(doc, "BEGIN:VCALENDAR") || !strings.Contains(doc, "SUMMARY:Standup") {
		t.Fatalf("Encode output missing expected lines:\n%s", doc)
	}

	drafts, skipped, err := ics.Parse(strings.NewReader(doc), model.CategoryOther)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if skipped != 0 {
		t.Errorf("skipped = %d, want 0", skipped)
	}
	if len(drafts) != 2 {
		t.Fatalf("Parse returned %d drafts, want 2", len(drafts))
	}

	d := drafts[0]
	if d.Title != "Standup" || d.Description != "Daily sync" {
		t.Errorf("draft text = %q/%q", d.Title, d.Description)
	}
	if d.ImportUID != events[0].ID {
		t.Errorf("ImportUID = %q, want the VEVENT UID", d.ImportUID)
	}
	if !d.Start.Equal(events[0].Start) || !d.End.Equal(events[0].End) {
		t.Errorf("times = %v–%v", d.Start, d.End)
	}
	// CATEGORIES survives the round trip; the default is not applied.
	if d.Category != model.CategoryWork {
		t.Errorf("Category = %v, want Work", d.Category)
	}
	if drafts[1].Category != model.CategoryPersonal {
		t.Errorf("second Category = %v, want Personal", drafts[1].Category)
	}
}

func TestParseAppliesDefaultCategory(t *testing.T) {
	doc := strings.Join([]string{
		"BEGIN:VCALENDAR",
		"VERSION:2.0",
		"PRODID:-//elsewhere//EN",
		"BEGIN:VEVENT",
		"UID:ext-1",
		"SUMMARY:Offsite",
		"DTSTART:20260227T090000Z",
		"DTEND:20260227T170000Z",
		"END:VEVENT",
		"END:VCALENDAR",
		"",
	}, "\r\n")

	drafts, skipped, err := ics.Parse(strings.NewReader(doc), model.CategoryOther)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if skipped != 0 || len(drafts) != 1 {
		t.Fatalf("drafts/skipped = %d/%d", len(drafts), skipped)
	}
	if drafts[0].Category != model.CategoryOther {
		t.Errorf("Category = %v, want the default", drafts[0].Category)
	}
}

func TestParseSkipsUnusableEvents(t *testing.T) {
	doc := strings.Join([]string{
		"BEGIN:VCALENDAR",
		"VERSION:2.0",
		"PRODID:-//elsewhere//EN",
		"BEGIN:VEVENT",
		"UID:no-times",
		"SUMMARY:Floating task",
		"END:VEVENT",
		"BEGIN:VEVENT",
		"UID:no-summary",
		"DTSTART:20260227T090000Z",
		"DTEND:20260227T100000Z",
		"END:VEVENT",
		"BEGIN:VEVENT",
		"UID:good",
		"SUMMARY:Keeper",
		"DTSTART:20260227T110000Z",
		"DTEND:20260227T120000Z",
		"END:VEVENT",
		"END:VCALENDAR",
		"",
	}, "\r\n")

	drafts, skipped, err := ics.Parse(strings.NewReader(doc), model.CategoryWork)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if len(drafts) != 1 || drafts[0].ImportUID != "good" {
		t.Errorf("drafts = %+v, want only the usable event", drafts)
	}
	if skipped != 2 {
		t.Errorf("skipped = %d, want 2", skipped)
	}
}

func TestParseGarbage(t *testing.T) {
	if _, _, err := ics.Parse(strings.NewReader("this is not a calendar"), model.CategoryWork); err == nil {
		t.Error("Parse accepted a non-calendar document")
	}
}
