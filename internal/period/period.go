// Package period provides month arithmetic for the ledger: month keys,
// month distances, and recurrence-window membership checks. All functions
// are pure.
package period

import (
	"fmt"
	"time"
)

// KeyFormat is the canonical year-month key layout ("2024-03").
const KeyFormat = "2006-01"

// Key returns the year-month key for a date.
func Key(t time.Time) string {
	return t.Format(KeyFormat)
}

// ParseKey parses a year-month key back into the first day of that month (UTC).
func ParseKey(key string) (time.Time, error) {
	t, err := time.Parse(KeyFormat, key)
	if err != nil {
		return time.Time{}, fmt.Errorf("parsing month key %q: %w", key, err)
	}

	return t, nil
}

// ordinal maps a date to a monotonically increasing month number.
func ordinal(t time.Time) int {
	return t.Year()*12 + int(t.Month()) - 1
}

// MonthsBetween returns the number of whole months from a to b.
// Negative when b's month precedes a's.
func MonthsBetween(a, b time.Time) int {
	return ordinal(b) - ordinal(a)
}

// SameMonth reports whether two dates fall in the same calendar month.
func SameMonth(a, b time.Time) bool {
	return ordinal(a) == ordinal(b)
}

// ClampDay builds a date in the month of ym with the given day-of-month,
// capped at 28 so the result is valid for every month.
func ClampDay(ym time.Time, day int) time.Time {
	if day > 28 {
		day = 28
	}

	if day < 1 {
		day = 1
	}

	return time.Date(ym.Year(), ym.Month(), day, 0, 0, 0, 0, time.UTC)
}

// InWindow reports whether the month of ym lies within [start, end] at
// month granularity. A zero end means the window is open-ended.
func InWindow(ym, start, end time.Time) bool {
	if ordinal(ym) < ordinal(start) {
		return false
	}

	if !end.IsZero() && ordinal(end) < ordinal(ym) {
		return false
	}

	return true
}
