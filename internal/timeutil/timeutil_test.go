package timeutil_test

import (
	"testing"
	"time"

	"github.com/divya20032004/custom-event-calendar/internal/timeutil"
)

func TestParseLocalDateTimeRoundTrip(t *testing.T) {
	in := "2026-02-27T09:30"
	parsed, err := timeutil.ParseLocalDateTime(in)
	if err != nil {
		t.Fatalf("ParseLocalDateTime(%q): %v", in, err)
	}
	if parsed.Location() != time.Local {
		t.Errorf("parsed location = %v, want Local", parsed.Location())
	}
	if got := timeutil.FormatLocalDateTime(parsed); got != in {
		t.Errorf("round trip = %q, want %q", got, in)
	}
}

func TestParseLocalDateTimeRejectsGarbage(t *testing.T) {
	for _, in := range []string{"", "tomorrow", "2026-02-27", "09:30"} {
		if _, err := timeutil.ParseLocalDateTime(in); err == nil {
			t.Errorf("ParseLocalDateTime(%q) succeeded", in)
		}
	}
}

func TestWeekRange(t *testing.T) {
	tests := []struct {
		name       string
		input      time.Time
		wantMonday time.Time
		wantSunday time.Time
	}{
		{
			name:       "wednesday",
			input:      time.Date(2026, 2, 25, 14, 30, 0, 0, time.UTC),
			wantMonday: time.Date(2026, 2, 23, 0, 0, 0, 0, time.UTC),
			wantSunday: time.Date(2026, 3, 1, 23, 59, 59, 0, time.UTC),
		},
		{
			name:       "monday stays",
			input:      time.Date(2026, 2, 23, 0, 0, 0, 0, time.UTC),
			wantMonday: time.Date(2026, 2, 23, 0, 0, 0, 0, time.UTC),
			wantSunday: time.Date(2026, 3, 1, 23, 59, 59, 0, time.UTC),
		},
		{
			name:       "sunday belongs to preceding week",
			input:      time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC),
			wantMonday: time.Date(2026, 2, 23, 0, 0, 0, 0, time.UTC),
			wantSunday: time.Date(2026, 3, 1, 23, 59, 59, 0, time.UTC),
		},
	}

	for _, tt := range tests {
		monday, sunday := timeutil.WeekRange(tt.input)
		if !monday.Equal(tt.wantMonday) {
			t.Errorf("%s: monday = %v, want %v", tt.name, monday, tt.wantMonday)
		}
		if !sunday.Equal(tt.wantSunday) {
			t.Errorf("%s: sunday = %v, want %v", tt.name, sunday, tt.wantSunday)
		}
	}
}

func TestMonthRange(t *testing.T) {
	first, last := timeutil.MonthRange(time.Date(2024, 2, 15, 10, 0, 0, 0, time.UTC))
	if !first.Equal(time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("first = %v", first)
	}
	// 2024 is a leap year.
	if !last.Equal(time.Date(2024, 2, 29, 23, 59, 59, 0, time.UTC)) {
		t.Errorf("last = %v", last)
	}
}

func TestISOWeekLabel(t *testing.T) {
	tests := []struct {
		input time.Time
		want  string
	}{
		{time.Date(2026, 2, 25, 0, 0, 0, 0, time.UTC), "2026-W09"},
		{time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC), "2026-W01"},
	}
	for _, tt := range tests {
		if got := timeutil.ISOWeekLabel(tt.input); got != tt.want {
			t.Errorf("ISOWeekLabel(%v) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestFormatRange(t *testing.T) {
	start := time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC)

	got := timeutil.FormatRange(start, start.Add(90*time.Minute))
	if got != "09:00–10:30" {
		t.Errorf("FormatRange same day = %q", got)
	}

	got = timeutil.FormatRange(start.Add(14*time.Hour), start.Add(17*time.Hour))
	if got != "23:00–2024-01-02 02:00" {
		t.Errorf("FormatRange across midnight = %q", got)
	}
}

func TestDayBounds(t *testing.T) {
	at := time.Date(2024, 1, 15, 13, 37, 42, 0, time.UTC)

	if got := timeutil.StartOfDay(at); !got.Equal(time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("StartOfDay = %v", got)
	}
	if got := timeutil.EndOfDay(at); !got.Equal(time.Date(2024, 1, 15, 23, 59, 59, 0, time.UTC)) {
		t.Errorf("EndOfDay = %v", got)
	}
}

func TestSameDay(t *testing.T) {
	a := time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)
	if !timeutil.SameDay(a, a.Add(23*time.Hour)) {
		t.Error("SameDay within one day = false")
	}
	if timeutil.SameDay(a, a.Add(25*time.Hour)) {
		t.Error("SameDay across midnight = true")
	}
}
