// Package days holds the calendar-day helpers shared by the attendance
// handlers and store. Attendance is keyed by day, not by instant, so every
// date passes through Normalize before it is written, compared, or used in a
// uniqueness check.
package days

import (
	"fmt"
	"time"
)

// ISO is the wire format the browser date input produces.
const ISO = "2006-01-02"

// Normalize discards the time-of-day component, returning midnight UTC of the
// same calendar day. Two timestamps on the same day normalize equal.
func Normalize(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// Parse accepts a calendar date as "2006-01-02" or as RFC 3339 and returns it
// day-normalized.
func Parse(s string) (time.Time, error) {
	if t, err := time.Parse(ISO, s); err == nil {
		return Normalize(t), nil
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return Normalize(t), nil
	}
	return time.Time{}, fmt.Errorf("invalid date %q (want YYYY-MM-DD)", s)
}

// IsFuture reports whether day falls on a later calendar day than now.
// Both sides are normalized, so "later today" is not a future date.
func IsFuture(day, now time.Time) bool {
	return Normalize(day).After(Normalize(now))
}
