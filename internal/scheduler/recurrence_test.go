package scheduler

import (
	"testing"
	"time"
)

func date(y int, m time.Month, d, hh, mm int) time.Time {
	return time.Date(y, m, d, hh, mm, 0, 0, time.UTC)
}

func TestNextNone(t *testing.T) {
	t.Parallel()

	anchor := date(2026, time.March, 10, 9, 0)
	if next, ok := Next(RecurrenceNone, anchor, anchor); ok {
		t.Fatalf("Next(NONE) returned occurrence %v, want none", next)
	}
}

func TestNextDailyAndWeekly(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		rec     Recurrence
		current time.Time
		want    time.Time
	}{
		{
			name:    "daily plain",
			rec:     RecurrenceDaily,
			current: date(2026, time.March, 10, 9, 0),
			want:    date(2026, time.March, 11, 9, 0),
		},
		{
			name:    "daily across month end",
			rec:     RecurrenceDaily,
			current: date(2026, time.January, 31, 18, 30),
			want:    date(2026, time.February, 1, 18, 30),
		},
		{
			name:    "weekly keeps weekday",
			rec:     RecurrenceWeekly,
			current: date(2026, time.March, 10, 9, 0),
			want:    date(2026, time.March, 17, 9, 0),
		},
		{
			name:    "weekly across year end",
			rec:     RecurrenceWeekly,
			current: date(2026, time.December, 29, 7, 0),
			want:    date(2027, time.January, 5, 7, 0),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Next(tt.rec, tt.current, tt.current)
			if !ok {
				t.Fatalf("Next(%s) reported no occurrence", tt.rec)
			}
			if !got.Equal(tt.want) {
				t.Fatalf("Next(%s, %v) = %v, want %v", tt.rec, tt.current, got, tt.want)
			}
		})
	}
}

func TestNextMonthlyClipsToMonthEnd(t *testing.T) {
	t.Parallel()

	anchor := date(2026, time.January, 31, 10, 0)

	// The series stays anchored on day 31 and dips to the last day of
	// shorter months without drifting.
	want := []time.Time{
		date(2026, time.February, 28, 10, 0),
		date(2026, time.March, 31, 10, 0),
		date(2026, time.April, 30, 10, 0),
		date(2026, time.May, 31, 10, 0),
	}

	current := anchor
	for i, expected := range want {
		next, ok := Next(RecurrenceMonthly, anchor, current)
		if !ok {
			t.Fatalf("occurrence %d: no next", i)
		}
		if !next.Equal(expected) {
			t.Fatalf("occurrence %d: got %v, want %v", i, next, expected)
		}
		current = next
	}
}

func TestNextMonthlyLeapYear(t *testing.T) {
	t.Parallel()

	anchor := date(2028, time.January, 31, 8, 15)
	next, ok := Next(RecurrenceMonthly, anchor, anchor)
	if !ok {
		t.Fatal("expected a next occurrence")
	}
	if want := date(2028, time.February, 29, 8, 15); !next.Equal(want) {
		t.Fatalf("leap February: got %v, want %v", next, want)
	}
}

func TestNextMonthlyMidMonthAnchor(t *testing.T) {
	t.Parallel()

	anchor := date(2026, time.June, 15, 12, 0)
	current := anchor
	for i := 0; i < 24; i++ {
		next, ok := Next(RecurrenceMonthly, anchor, current)
		if !ok {
			t.Fatalf("occurrence %d: no next", i)
		}
		if next.Day() != 15 {
			t.Fatalf("occurrence %d: day drifted to %d", i, next.Day())
		}
		if next.Hour() != 12 || next.Minute() != 0 {
			t.Fatalf("occurrence %d: time of day drifted to %v", i, next)
		}
		current = next
	}
	if current.Year() != 2028 || current.Month() != time.June {
		t.Fatalf("after 24 occurrences expected June 2028, got %v", current)
	}
}

func TestNextMonthlyAcrossYearEnd(t *testing.T) {
	t.Parallel()

	anchor := date(2026, time.December, 31, 23, 45)
	next, ok := Next(RecurrenceMonthly, anchor, anchor)
	if !ok {
		t.Fatal("expected a next occurrence")
	}
	if want := date(2027, time.January, 31, 23, 45); !next.Equal(want) {
		t.Fatalf("year rollover: got %v, want %v", next, want)
	}
}

func TestRecurrenceValid(t *testing.T) {
	t.Parallel()

	for _, rec := range []Recurrence{RecurrenceNone, RecurrenceDaily, RecurrenceWeekly, RecurrenceMonthly} {
		if !rec.Valid() {
			t.Fatalf("%s should be valid", rec)
		}
	}
	if Recurrence("HOURLY").Valid() {
		t.Fatal("HOURLY should not be valid")
	}
}
