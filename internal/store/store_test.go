package store_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/divya20032004/custom-event-calendar/internal/model"
	"github.com/divya20032004/custom-event-calendar/internal/store"
)

func draft(title string, start, end time.Time) model.Draft {
	return model.Draft{
		Title:          title,
		Start:          start,
		End:            end,
		Category:       model.CategoryWork,
		RecurrenceType: model.RecurrenceNone,
	}
}

func at(hour int) time.Time {
	return time.Date(2024, 1, 1, hour, 0, 0, 0, time.UTC)
}

func TestOpenMissingFile(t *testing.T) {
	path := store.EventsFile(t.TempDir())
	st, err := store.Open(path)
	if err != nil {
		t.Fatalf("Open on missing file: %v", err)
	}
	if st.Len() != 0 {
		t.Errorf("Len = %d, want 0", st.Len())
	}
}

func TestCreatePersistsAndReloads(t *testing.T) {
	path := store.EventsFile(t.TempDir())
	st, err := store.Open(path)
	if err != nil {
		t.Fatal(err)
	}

	d := draft("Standup", time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC), time.Date(2024, 1, 1, 9, 30, 0, 0, time.UTC))
	d.Description = "Daily sync"
	d.RecurrenceType = model.RecurrenceCustom
	d.RecurrenceInterval = 2
	d.RecurrenceDaysOfWeek = []int{1, 3, 5}

	ev, err := st.Create(d)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if ev.ID == "" {
		t.Fatal("Create assigned no id")
	}
	if st.Len() != 1 {
		t.Fatalf("Len = %d, want 1", st.Len())
	}

	// Reload from disk and compare field by field.
	st2, err := store.Open(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	if st2.Len() != 1 {
		t.Fatalf("reloaded Len = %d, want 1", st2.Len())
	}
	got, ok := st2.Get(ev.ID)
	if !ok {
		t.Fatalf("reloaded store has no event %q", ev.ID)
	}
	if got.Title != "Standup" || got.Description != "Daily sync" {
		t.Errorf("reloaded text fields = %q/%q", got.Title, got.Description)
	}
	if !got.Start.Equal(ev.Start) || !got.End.Equal(ev.End) {
		t.Errorf("reloaded times = %v–%v, want %v–%v", got.Start, got.End, ev.Start, ev.End)
	}
	if got.Category != model.CategoryWork || got.RecurrenceType != model.RecurrenceCustom {
		t.Errorf("reloaded category/recurrence = %v/%v", got.Category, got.RecurrenceType)
	}
	if got.RecurrenceInterval != 2 || len(got.RecurrenceDaysOfWeek) != 3 {
		t.Errorf("reloaded recurrence detail = %d/%v", got.RecurrenceInterval, got.RecurrenceDaysOfWeek)
	}
}

func TestOpenCorruptBlob(t *testing.T) {
	base := t.TempDir()
	path := store.EventsFile(base)
	if err := os.WriteFile(path, []byte("{not json"), 0o600); err != nil {
		t.Fatal(err)
	}

	st, err := store.Open(path)
	if err != nil {
		t.Fatalf("Open on corrupt blob: %v", err)
	}
	if st.Len() != 0 {
		t.Errorf("Len = %d, want 0 (corrupt blob treated as no data)", st.Len())
	}

	// The broken file is moved aside, not deleted.
	if _, err := os.Stat(path + ".corrupt"); os.IsNotExist(err) {
		t.Error("expected backup file after corrupt blob")
	}
}

func TestUpdate(t *testing.T) {
	path := store.EventsFile(t.TempDir())
	st, _ := store.Open(path)

	ev, err := st.Create(draft("Before", at(9), at(10)))
	if err != nil {
		t.Fatal(err)
	}

	updated, err := st.Update(ev.ID, draft("After", at(11), at(12)))
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if updated.ID != ev.ID {
		t.Errorf("Update changed id: %q -> %q", ev.ID, updated.ID)
	}
	if updated.Title != "After" || !updated.Start.Equal(at(11)) {
		t.Errorf("Update result = %q %v", updated.Title, updated.Start)
	}
	if st.Len() != 1 {
		t.Errorf("Len = %d, want 1", st.Len())
	}
}

func TestUpdateNotFound(t *testing.T) {
	path := store.EventsFile(t.TempDir())
	st, _ := store.Open(path)

	_, err := st.Update("missing", draft("X", at(9), at(10)))
	var nf *store.NotFoundError
	if !errors.As(err, &nf) {
		t.Fatalf("Update on missing id: err = %v, want NotFoundError", err)
	}
	if nf.ID != "missing" {
		t.Errorf("NotFoundError.ID = %q, want %q", nf.ID, "missing")
	}
	if st.Len() != 0 {
		t.Errorf("Len = %d after failed update, want 0", st.Len())
	}
}

func TestMove(t *testing.T) {
	path := store.EventsFile(t.TempDir())
	st, _ := store.Open(path)

	d := draft("Review", at(9), at(10))
	d.Description = "keep me"
	ev, err := st.Create(d)
	if err != nil {
		t.Fatal(err)
	}

	moved, err := st.Move(ev.ID, at(14), at(15))
	if err != nil {
		t.Fatalf("Move: %v", err)
	}
	if moved.ID != ev.ID {
		t.Errorf("Move changed id: %q -> %q", ev.ID, moved.ID)
	}
	if !moved.Start.Equal(at(14)) || !moved.End.Equal(at(15)) {
		t.Errorf("Move times = %v–%v, want 14:00–15:00", moved.Start, moved.End)
	}
	if moved.Title != "Review" || moved.Description != "keep me" {
		t.Errorf("Move dropped fields: %q/%q", moved.Title, moved.Description)
	}

	_, err = st.Move("missing", at(9), at(10))
	var nf *store.NotFoundError
	if !errors.As(err, &nf) {
		t.Errorf("Move on missing id: err = %v, want NotFoundError", err)
	}
}

func TestMoveRejectsInvalidRange(t *testing.T) {
	path := store.EventsFile(t.TempDir())
	st, _ := store.Open(path)

	ev, err := st.Create(draft("Fixed", at(9), at(10)))
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name       string
		start, end time.Time
	}{
		{"end before start", at(15), at(14)},
		{"end equals start", at(15), at(15)},
		{"zero start", time.Time{}, at(15)},
	}
	for _, tt := range tests {
		if _, err := st.Move(ev.ID, tt.start, tt.end); err == nil {
			t.Errorf("%s: Move succeeded", tt.name)
		}
	}

	// Neither the store nor the persisted blob changed.
	got, ok := st.Get(ev.ID)
	if !ok || !got.Start.Equal(at(9)) || !got.End.Equal(at(10)) {
		t.Errorf("event after rejected moves = %v–%v, want 09:00–10:00", got.Start, got.End)
	}
	reloaded, err := store.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	persisted, ok := reloaded.Get(ev.ID)
	if !ok || !persisted.Start.Equal(at(9)) || !persisted.End.Equal(at(10)) {
		t.Errorf("persisted event = %v–%v, want 09:00–10:00", persisted.Start, persisted.End)
	}
}

func TestDeleteIdempotent(t *testing.T) {
	path := store.EventsFile(t.TempDir())
	st, _ := store.Open(path)

	ev, err := st.Create(draft("Gone", at(9), at(10)))
	if err != nil {
		t.Fatal(err)
	}

	if err := st.Delete(ev.ID); err != nil {
		t.Fatalf("first Delete: %v", err)
	}
	if st.Len() != 0 {
		t.Fatalf("Len = %d after delete, want 0", st.Len())
	}

	// Deleting again is a no-op, not an error.
	if err := st.Delete(ev.ID); err != nil {
		t.Fatalf("second Delete: %v", err)
	}
	if st.Len() != 0 {
		t.Errorf("Len = %d after second delete, want 0", st.Len())
	}
}

func TestEventsSortedCopy(t *testing.T) {
	path := store.EventsFile(t.TempDir())
	st, _ := store.Open(path)

	if _, err := st.Create(draft("Later", at(14), at(15))); err != nil {
		t.Fatal(err)
	}
	if _, err := st.Create(draft("Earlier", at(9), at(10))); err != nil {
		t.Fatal(err)
	}

	events := st.Events()
	if len(events) != 2 {
		t.Fatalf("Events = %d, want 2", len(events))
	}
	if events[0].Title != "Earlier" || events[1].Title != "Later" {
		t.Errorf("Events order = %q, %q", events[0].Title, events[1].Title)
	}

	// Mutating the copy must not affect the store.
	events[0].Title = "Changed"
	fresh := st.Events()
	if fresh[0].Title != "Earlier" {
		t.Error("Events returned a view into internal state")
	}
}

func TestFindByImportUID(t *testing.T) {
	path := store.EventsFile(t.TempDir())
	st, _ := store.Open(path)

	d := draft("Imported", at(9), at(10))
	d.ImportUID = "ext-1"
	if _, err := st.Create(d); err != nil {
		t.Fatal(err)
	}

	got, ok := st.FindByImportUID("ext-1")
	if !ok || got.Title != "Imported" {
		t.Errorf("FindByImportUID = %v/%v", got.Title, ok)
	}
	if _, ok := st.FindByImportUID("ext-2"); ok {
		t.Error("FindByImportUID matched an unknown uid")
	}
	if _, ok := st.FindByImportUID(""); ok {
		t.Error("FindByImportUID matched an empty uid")
	}
}

func TestCreateRejectsInvalidDraft(t *testing.T) {
	base := t.TempDir()
	path := store.EventsFile(base)
	st, _ := store.Open(path)

	_, err := st.Create(draft("", at(9), at(10)))
	if err == nil {
		t.Fatal("Create accepted an empty title")
	}
	if st.Len() != 0 {
		t.Errorf("Len = %d after rejected create, want 0", st.Len())
	}
	if _, statErr := os.Stat(filepath.Join(base, "events.json")); !os.IsNotExist(statErr) {
		t.Error("rejected create must not write the blob")
	}
}
