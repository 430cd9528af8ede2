package model

import (
	"fmt"
	"time"
)

// Category classifies an event for display color and filtering only;
// it has no behavioral effect.
type Category string

const (
	CategoryWork     Category = "Work"
	CategoryPersonal Category = "Personal"
	CategoryOther    Category = "Other"
)

// Categories lists all known categories in display order.
var Categories = []Category{CategoryWork, CategoryPersonal, CategoryOther}

// CategoryColors maps each category to its display color.
var CategoryColors = map[Category]string{
	CategoryWork:     "#3a87ad",
	CategoryPersonal: "#f0ad4e",
	CategoryOther:    "#5bc0de",
}

// DefaultEventColor is used for events whose category is unknown.
const DefaultEventColor = "#3174ad"

// Color returns the display color for the category.
func (c Category) Color() string {
	if col, ok := CategoryColors[c]; ok {
		return col
	}
	return DefaultEventColor
}

// ParseCategory validates a user-supplied category name.
func ParseCategory(s string) (Category, error) {
	for _, c := range Categories {
		if string(c) == s {
			return c, nil
		}
	}
	return "", fmt.Errorf("unknown category %q (expected Work, Personal or Other)", s)
}

// RecurrenceType describes how an event repeats. Recurrence is stored as
// metadata only; repeated instances are never materialized.
type RecurrenceType string

const (
	RecurrenceNone    RecurrenceType = "none"
	RecurrenceDaily   RecurrenceType = "daily"
	RecurrenceWeekly  RecurrenceType = "weekly"
	RecurrenceMonthly RecurrenceType = "monthly"
	RecurrenceCustom  RecurrenceType = "custom"
)

// RecurrenceTypes lists all known recurrence types.
var RecurrenceTypes = []RecurrenceType{
	RecurrenceNone, RecurrenceDaily, RecurrenceWeekly, RecurrenceMonthly, RecurrenceCustom,
}

// ParseRecurrenceType validates a user-supplied recurrence type.
func ParseRecurrenceType(s string) (RecurrenceType, error) {
	for _, r := range RecurrenceTypes {
		if string(r) == s {
			return r, nil
		}
	}
	return "", fmt.Errorf("unknown recurrence type %q (expected none, daily, weekly, monthly or custom)", s)
}

// Event is a single scheduled calendar item. Start and End serialize as
// RFC 3339 instants; the ID is assigned at creation and never changes.
type Event struct {
	ID                   string         `json:"id"`
	Title                string         `json:"title"`
	Description          string         `json:"description,omitempty"`
	Start                time.Time      `json:"start"`
	End                  time.Time      `json:"end"`
	Category             Category       `json:"category"`
	RecurrenceType       RecurrenceType `json:"recurrenceType"`
	RecurrenceInterval   int            `json:"recurrenceInterval,omitempty"`
	RecurrenceDaysOfWeek []int          `json:"recurrenceDaysOfWeek,omitempty"`
	// ImportUID is the identifier from the external source (ICS UID or
	// Graph event id) for events created by an import; empty otherwise.
	ImportUID string `json:"importUid,omitempty"`
}

// Draft is a proposed event that has not been stored yet. It carries every
// Event field except the ID, which the store assigns on creation.
type Draft struct {
	Title                string
	Description          string
	Start                time.Time
	End                  time.Time
	Category             Category
	RecurrenceType       RecurrenceType
	RecurrenceInterval   int
	RecurrenceDaysOfWeek []int
	ImportUID            string
}

// Validate checks the structural invariants a stored event must satisfy.
func (d Draft) Validate() error {
	if d.Title == "" {
		return fmt.Errorf("event title cannot be empty")
	}
	if d.Start.IsZero() || d.End.IsZero() {
		return fmt.Errorf("event timestamps cannot be zero")
	}
	if !d.Start.Before(d.End) {
		return fmt.Errorf("event must end after it starts")
	}
	if _, err := ParseCategory(string(d.Category)); err != nil {
		return err
	}
	if _, err := ParseRecurrenceType(string(d.RecurrenceType)); err != nil {
		return err
	}
	if d.RecurrenceType == RecurrenceCustom && d.RecurrenceInterval < 1 {
		return fmt.Errorf("recurrence interval must be a positive number")
	}
	for _, day := range d.RecurrenceDaysOfWeek {
		if day < 0 || day > 6 {
			return fmt.Errorf("recurrence day %d out of range 0-6", day)
		}
	}
	return nil
}

// AddDay inserts day into the set, keeping it sorted and duplicate-free.
func AddDay(days []int, day int) []int {
	for i, d := range days {
		if d == day {
			return days
		}
		if d > day {
			out := make([]int, 0, len(days)+1)
			out = append(out, days[:i]...)
			out = append(out, day)
			return append(out, days[i:]...)
		}
	}
	return append(days, day)
}

// RemoveDay removes day from the set; absent days are a no-op.
func RemoveDay(days []int, day int) []int {
	for i, d := range days {
		if d == day {
			return append(days[:i:i], days[i+1:]...)
		}
	}
	return days
}
