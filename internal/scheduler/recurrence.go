// Package scheduler computes notification occurrence times. The actual
// firing is delegated to River jobs scheduled at the computed instants.
package scheduler

import (
	"time"
)

// Recurrence is a definition's repeat cadence.
type Recurrence string

// Supported cadences.
const (
	RecurrenceNone    Recurrence = "NONE"
	RecurrenceDaily   Recurrence = "DAILY"
	RecurrenceWeekly  Recurrence = "WEEKLY"
	RecurrenceMonthly Recurrence = "MONTHLY"
)

// Valid reports whether r is a known cadence.
func (r Recurrence) Valid() bool {
	switch r {
	case RecurrenceNone, RecurrenceDaily, RecurrenceWeekly, RecurrenceMonthly:
		return true
	}
	return false
}

// Next returns the occurrence that follows current in the series anchored
// at anchor, and whether one exists. current must itself be an occurrence
// of the series (the anchor counts as the first occurrence).
//
// Monthly series stay anchored to the anchor's day of month. When a month
// is too short the occurrence is clipped to the month's last day, and the
// series returns to the anchor day in the next long-enough month. An
// anchor on Jan 31 fires Feb 28 (or 29), then Mar 31.
func Next(rec Recurrence, anchor, current time.Time) (time.Time, bool) {
	switch rec {
	case RecurrenceDaily:
		return current.AddDate(0, 0, 1), true
	case RecurrenceWeekly:
		return current.AddDate(0, 0, 7), true
	case RecurrenceMonthly:
		n := monthsBetween(anchor, current) + 1
		return monthlyOccurrence(anchor, n), true
	default:
		return time.Time{}, false
	}
}

// monthsBetween counts calendar months from a to b, ignoring days.
func monthsBetween(a, b time.Time) int {
	ay, am, _ := a.Date()
	by, bm, _ := b.Date()
	return (by-ay)*12 + int(bm) - int(am)
}

// monthlyOccurrence returns the n-th occurrence (0 = anchor) of a monthly
// series, clipping the anchor day to the target month's length.
func monthlyOccurrence(anchor time.Time, n int) time.Time {
	firstOfMonth := time.Date(anchor.Year(), anchor.Month(), 1, 0, 0, 0, 0, anchor.Location())
	target := firstOfMonth.AddDate(0, n, 0)

	day := anchor.Day()
	if last := daysInMonth(target.Year(), target.Month()); day > last {
		day = last
	}
	return time.Date(target.Year(), target.Month(), day,
		anchor.Hour(), anchor.Minute(), anchor.Second(), anchor.Nanosecond(), anchor.Location())
}

// daysInMonth returns the number of days in the given month. Day zero of
// the following month normalizes to this month's last day.
func daysInMonth(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
