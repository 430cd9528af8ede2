// Package store owns the event collection. All reads and writes of the
// persisted blob go through a Store; nothing else touches the file.
package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/divya20032004/custom-event-calendar/internal/model"
)

// BaseDir returns the root data directory (~/.cec).
func BaseDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot determine home directory: %w", err)
	}
	return filepath.Join(home, ".cec"), nil
}

// EventsFile returns the path of the events blob inside the data directory.
func EventsFile(base string) string {
	return filepath.Join(base, "events.json")
}

// NotFoundError reports an update or move whose target id is not in the
// collection.
type NotFoundError struct {
	ID string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("no event with id %q", e.ID)
}

// Store is the single source of truth for the event collection. Every
// successful mutation re-serializes the full collection to disk.
type Store struct {
	path   string
	events []model.Event
}

// Open loads the collection from path. A missing file yields an empty
// collection. A corrupt blob also yields an empty collection rather than an
// error; the broken file is moved aside to <path>.corrupt for inspection.
func Open(path string) (*Store, error) {
	s := &Store{path: path}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return s, nil
	}
	if err != nil {
		return nil, fmt.Errorf("storage error reading %s: %w", path, err)
	}

	var events []model.Event
	if err := json.Unmarshal(data, &events); err != nil {
		_ = os.Rename(path, path+".corrupt")
		return s, nil
	}
	s.events = events
	return s, nil
}

// Len returns the number of stored events.
func (s *Store) Len() int {
	return len(s.events)
}

// Events returns a copy of the collection sorted by start time.
func (s *Store) Events() []model.Event {
	out := make([]model.Event, len(s.events))
	copy(out, s.events)
	sort.Slice(out, func(i, j int) bool { return out[i].Start.Before(out[j].Start) })
	return out
}

// Get looks up an event by id.
func (s *Store) Get(id string) (model.Event, bool) {
	for _, e := range s.events {
		if e.ID == id {
			return e, true
		}
	}
	return model.Event{}, false
}

// FindByImportUID looks up an event created by an import, keyed by the
// identifier it had in its external source.
func (s *Store) FindByImportUID(uid string) (model.Event, bool) {
	if uid == "" {
		return model.Event{}, false
	}
	for _, e := range s.events {
		if e.ImportUID == uid {
			return e, true
		}
	}
	return model.Event{}, false
}

// Create assigns a fresh id to the draft, appends it and persists.
// The caller is expected to have resolved any conflict beforehand.
func (s *Store) Create(d model.Draft) (model.Event, error) {
	if err := d.Validate(); err != nil {
		return model.Event{}, err
	}

	ev := eventFromDraft(uuid.NewString(), d)
	s.events = append(s.events, ev)
	if err := s.persist(); err != nil {
		s.events = s.events[:len(s.events)-1]
		return model.Event{}, err
	}
	return ev, nil
}

// Update replaces the event with the given id, keeping the id itself.
// It returns a NotFoundError when no such event exists.
func (s *Store) Update(id string, d model.Draft) (model.Event, error) {
	if err := d.Validate(); err != nil {
		return model.Event{}, err
	}

	for i, e := range s.events {
		if e.ID != id {
			continue
		}
		ev := eventFromDraft(id, d)
		s.events[i] = ev
		if err := s.persist(); err != nil {
			s.events[i] = e
			return model.Event{}, err
		}
		return ev, nil
	}
	return model.Event{}, &NotFoundError{ID: id}
}

// Move updates only the time range of the event with the given id, as used
// by a reschedule. All other fields are preserved.
func (s *Store) Move(id string, start, end time.Time) (model.Event, error) {
	if start.IsZero() || end.IsZero() {
		return model.Event{}, fmt.Errorf("event timestamps cannot be zero")
	}
	if !start.Before(end) {
		return model.Event{}, fmt.Errorf("event must end after it starts")
	}

	for i, e := range s.events {
		if e.ID != id {
			continue
		}
		ev := e
		ev.Start = start
		ev.End = end
		s.events[i] = ev
		if err := s.persist(); err != nil {
			s.events[i] = e
			return model.Event{}, err
		}
		return ev, nil
	}
	return model.Event{}, &NotFoundError{ID: id}
}

// Delete removes the event with the given id. Deleting an absent id is a
// no-op, so the operation is idempotent.
func (s *Store) Delete(id string) error {
	for i, e := range s.events {
		if e.ID != id {
			continue
		}
		s.events = append(s.events[:i:i], s.events[i+1:]...)
		if err := s.persist(); err != nil {
			restored := make([]model.Event, 0, len(s.events)+1)
			restored = append(restored, s.events[:i]...)
			restored = append(restored, e)
			s.events = append(restored, s.events[i:]...)
			return err
		}
		return nil
	}
	return nil
}

func eventFromDraft(id string, d model.Draft) model.Event {
	return model.Event{
		ID:                   id,
		Title:                d.Title,
		Description:          d.Description,
		Start:                d.Start,
		End:                  d.End,
		Category:             d.Category,
		RecurrenceType:       d.RecurrenceType,
		RecurrenceInterval:   d.RecurrenceInterval,
		RecurrenceDaysOfWeek: append([]int(nil), d.RecurrenceDaysOfWeek...),
		ImportUID:            d.ImportUID,
	}
}

// persist atomically rewrites the full collection: write to a temp file,
// then rename over the blob.
func (s *Store) persist() error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return fmt.Errorf("storage error creating directories: %w", err)
	}

	data, err := json.MarshalIndent(s.events, "", "  ")
	if err != nil {
		return fmt.Errorf("storage error marshalling JSON: %w", err)
	}

	tmpPath := s.path + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0o600); err != nil {
		return fmt.Errorf("storage error writing temp file: %w", err)
	}
	if err := os.Rename(tmpPath, s.path); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("storage error renaming temp file: %w", err)
	}
	return nil
}
