// Package form bridges human-editable field values and a structurally valid
// event candidate. A Form lives for the duration of one add/edit dialog;
// the store is only touched once validation and conflict checks have passed.
package form

import (
	"fmt"
	"time"

	"github.com/divya20032004/custom-event-calendar/internal/conflict"
	"github.com/divya20032004/custom-event-calendar/internal/model"
	"github.com/divya20032004/custom-event-calendar/internal/store"
	"github.com/divya20032004/custom-event-calendar/internal/timeutil"
)

// ValidationError is a hard, field-level rejection. It blocks the save
// unconditionally and leaves the form open with its state unchanged.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// Form holds the editable field state of one candidate event. Times are
// kept in the local datetime-local encoding ("2006-01-02T15:04") until
// submit, matching how a human edits them.
type Form struct {
	eventID   string // empty in create mode
	importUID string // carried through edits of imported events

	Title                string
	Description          string
	Start                string
	End                  string
	Category             model.Category
	RecurrenceType       model.RecurrenceType
	RecurrenceInterval   int
	RecurrenceDaysOfWeek []int
}

// New returns a create-mode form with the default field values: start now,
// end one hour later, category Work, no recurrence.
func New(now time.Time) *Form {
	return &Form{
		Start:              timeutil.FormatLocalDateTime(now),
		End:                timeutil.FormatLocalDateTime(now.Add(time.Hour)),
		Category:           model.CategoryWork,
		RecurrenceType:     model.RecurrenceNone,
		RecurrenceInterval: 1,
	}
}

// Edit returns an edit-mode form pre-filled from an existing event.
func Edit(ev model.Event) *Form {
	interval := ev.RecurrenceInterval
	if interval < 1 {
		interval = 1
	}
	return &Form{
		eventID:              ev.ID,
		importUID:            ev.ImportUID,
		Title:                ev.Title,
		Description:          ev.Description,
		Start:                timeutil.FormatLocalDateTime(ev.Start),
		End:                  timeutil.FormatLocalDateTime(ev.End),
		Category:             ev.Category,
		RecurrenceType:       ev.RecurrenceType,
		RecurrenceInterval:   interval,
		RecurrenceDaysOfWeek: append([]int(nil), ev.RecurrenceDaysOfWeek...),
	}
}

// Editing reports whether the form targets an existing event.
func (f *Form) Editing() bool {
	return f.eventID != ""
}

// EventID returns the id of the event being edited, or "" in create mode.
func (f *Form) EventID() string {
	return f.eventID
}

// FieldChange is one edit to a single form field. Each field kind has its
// own variant with an explicit handler; there is no dispatch on field names.
type FieldChange interface {
	apply(f *Form)
}

// SetTitle replaces the title field.
type SetTitle struct{ Value string }

// SetDescription replaces the description field.
type SetDescription struct{ Value string }

// SetStart replaces the start field with a datetime-local string.
type SetStart struct{ Value string }

// SetEnd replaces the end field with a datetime-local string.
type SetEnd struct{ Value string }

// SetCategory replaces the category field.
type SetCategory struct{ Value model.Category }

// SetRecurrenceType replaces the recurrence type field.
type SetRecurrenceType struct{ Value model.RecurrenceType }

// SetRecurrenceInterval replaces the numeric recurrence interval field.
type SetRecurrenceInterval struct{ Value int }

// ToggleRecurrenceDay adds (On) or removes exactly the toggled weekday
// (0 = Sunday .. 6 = Saturday). No other field is affected.
type ToggleRecurrenceDay struct {
	Day int
	On  bool
}

func (c SetTitle) apply(f *Form)              { f.Title = c.Value }
func (c SetDescription) apply(f *Form)        { f.Description = c.Value }
func (c SetStart) apply(f *Form)              { f.Start = c.Value }
func (c SetEnd) apply(f *Form)                { f.End = c.Value }
func (c SetCategory) apply(f *Form)           { f.Category = c.Value }
func (c SetRecurrenceType) apply(f *Form)     { f.RecurrenceType = c.Value }
func (c SetRecurrenceInterval) apply(f *Form) { f.RecurrenceInterval = c.Value }

func (c ToggleRecurrenceDay) apply(f *Form) {
	if c.On {
		f.RecurrenceDaysOfWeek = model.AddDay(f.RecurrenceDaysOfWeek, c.Day)
	} else {
		f.RecurrenceDaysOfWeek = model.RemoveDay(f.RecurrenceDaysOfWeek, c.Day)
	}
}

// Apply runs each field change against the form in order.
func (f *Form) Apply(changes ...FieldChange) {
	for _, c := range changes {
		c.apply(f)
	}
}

// Status describes how a submit concluded.
type Status int

const (
	// Saved means the event was written to the store.
	Saved Status = iota
	// NeedsConfirmation means a soft conflict was found; the caller must
	// resolve the attached ConfirmationRequest before anything is stored.
	NeedsConfirmation
)

// Result is the outcome of a successful Submit call.
type Result struct {
	Status       Status
	Event        model.Event // set when Status is Saved
	Confirmation *ConfirmationRequest
}

// Submit validates the form, evaluates conflicts against the store and, if
// clear, creates or updates the event depending on mode. A detected overlap
// pauses the submission: nothing is stored and the returned
// ConfirmationRequest carries the decision back to the caller. Validation
// failures return a ValidationError and mutate nothing.
func (f *Form) Submit(st *store.Store) (Result, error) {
	d, err := f.draft()
	if err != nil {
		return Result{}, err
	}

	eval := conflict.Evaluate(d.Start, d.End, st.Events(), f.eventID)
	switch eval.Result {
	case conflict.Invalid:
		return Result{}, &ValidationError{Field: "end", Reason: "end time must be after start time"}
	case conflict.Conflict:
		return Result{
			Status: NeedsConfirmation,
			Confirmation: &ConfirmationRequest{
				Conflicts: eval.Conflicts,
				form:      f,
				store:     st,
				draft:     d,
			},
		}, nil
	}

	ev, err := f.save(st, d)
	if err != nil {
		return Result{}, err
	}
	return Result{Status: Saved, Event: ev}, nil
}

// ConfirmationRequest represents a pending soft-conflict decision. The
// collaborator driving the form must either Confirm, which performs the
// paused save, or Decline, which abandons it with the form state intact.
type ConfirmationRequest struct {
	Conflicts []model.Event

	form  *Form
	store *store.Store
	draft model.Draft
	done  bool
}

// Confirm proceeds with the save despite the conflict.
func (r *ConfirmationRequest) Confirm() (model.Event, error) {
	if r.done {
		return model.Event{}, fmt.Errorf("confirmation already resolved")
	}
	r.done = true
	return r.form.save(r.store, r.draft)
}

// Decline abandons the submission. The store, the persisted blob and the
// form state are all left unchanged.
func (r *ConfirmationRequest) Decline() {
	r.done = true
}

func (f *Form) save(st *store.Store, d model.Draft) (model.Event, error) {
	if f.eventID == "" {
		return st.Create(d)
	}
	return st.Update(f.eventID, d)
}

// draft parses and validates the field state into a candidate event.
func (f *Form) draft() (model.Draft, error) {
	if f.Title == "" {
		return model.Draft{}, &ValidationError{Field: "title", Reason: "title cannot be empty"}
	}

	start, err := timeutil.ParseLocalDateTime(f.Start)
	if err != nil {
		return model.Draft{}, &ValidationError{Field: "start", Reason: fmt.Sprintf("cannot parse %q (expected YYYY-MM-DDTHH:MM)", f.Start)}
	}
	end, err := timeutil.ParseLocalDateTime(f.End)
	if err != nil {
		return model.Draft{}, &ValidationError{Field: "end", Reason: fmt.Sprintf("cannot parse %q (expected YYYY-MM-DDTHH:MM)", f.End)}
	}
	if !start.Before(end) {
		return model.Draft{}, &ValidationError{Field: "end", Reason: "end time must be after start time"}
	}

	if f.RecurrenceType == model.RecurrenceCustom && f.RecurrenceInterval < 1 {
		return model.Draft{}, &ValidationError{Field: "interval", Reason: "interval must be a positive number"}
	}

	return model.Draft{
		Title:                f.Title,
		Description:          f.Description,
		Start:                start,
		End:                  end,
		Category:             f.Category,
		RecurrenceType:       f.RecurrenceType,
		RecurrenceInterval:   f.RecurrenceInterval,
		RecurrenceDaysOfWeek: append([]int(nil), f.RecurrenceDaysOfWeek...),
		ImportUID:            f.importUID,
	}, nil
}
