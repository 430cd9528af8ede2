package timeutil

import (
	"fmt"
	"time"
)

// LocalDateTime is the editable datetime encoding used by forms and flags,
// interpreted in the local timezone (no zone suffix).
const LocalDateTime = "2006-01-02T15:04"

// ParseLocalDateTime parses a LocalDateTime string in the local timezone.
func ParseLocalDateTime(s string) (time.Time, error) {
	return time.ParseInLocation(LocalDateTime, s, time.Local)
}

// FormatLocalDateTime renders t in the LocalDateTime encoding, converted to
// the local timezone.
func FormatLocalDateTime(t time.Time) string {
	return t.Local().Format(LocalDateTime)
}

// FormatRange renders a time range like "09:00–10:30", adding the end date
// when the range crosses midnight.
func FormatRange(start, end time.Time) string {
	if SameDay(start, end) {
		return fmt.Sprintf("%s–%s", start.Format("15:04"), end.Format("15:04"))
	}
	return fmt.Sprintf("%s–%s %s", start.Format("15:04"), end.Format("2006-01-02"), end.Format("15:04"))
}

// WeekRange returns the Monday and Sunday of the ISO week containing t.
func WeekRange(t time.Time) (time.Time, time.Time) {
	// Go's weekday: Sunday=0, Monday=1, …, Saturday=6
	wd := int(t.Weekday())
	if wd == 0 {
		wd = 7 // treat Sunday as 7 (ISO)
	}
	monday := t.AddDate(0, 0, -(wd - 1))
	monday = time.Date(monday.Year(), monday.Month(), monday.Day(), 0, 0, 0, 0, t.Location())
	sunday := monday.AddDate(0, 0, 6)
	sunday = time.Date(sunday.Year(), sunday.Month(), sunday.Day(), 23, 59, 59, 0, t.Location())
	return monday, sunday
}

// MonthRange returns the first and last instant of the month containing t.
func MonthRange(t time.Time) (time.Time, time.Time) {
	first := time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
	last := first.AddDate(0, 1, -1)
	return first, time.Date(last.Year(), last.Month(), last.Day(), 23, 59, 59, 0, t.Location())
}

// ISOWeekLabel returns a label like "2026-W09".
func ISOWeekLabel(t time.Time) string {
	year, week := t.ISOWeek()
	return fmt.Sprintf("%d-W%02d", year, week)
}

// StartOfDay returns 00:00:00 of the same day.
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// EndOfDay returns 23:59:59 of the same day.
func EndOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, 0, t.Location())
}

// SameDay reports whether two times fall on the same calendar day.
func SameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
