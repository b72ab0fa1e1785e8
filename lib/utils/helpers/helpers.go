package helpers

import (
	"time"
)

// DayStart returns midnight of t's calendar day in t's location.
func DayStart(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, t.Location())
}

// DateUTC normalizes t's calendar day to midnight UTC, the form holiday
// dates are keyed by.
func DateUTC(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}
