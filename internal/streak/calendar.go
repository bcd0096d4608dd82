// Package streak implements the streak computation engine for habits: UTC
// calendar arithmetic, recurrence rules, and the pure state transition that
// decides whether a streak continues or resets on each log event.
//
// Everything in this package is deterministic and side-effect free. All
// calendar math is done on UTC dates (year-month-day); time-of-day and the
// caller's local zone never influence the outcome.
package streak

import "time"

// DateOnly truncates t to midnight UTC of its UTC calendar date.
func DateOnly(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// SameDay reports whether a and b fall on the same UTC calendar date,
// ignoring time-of-day.
func SameDay(a, b time.Time) bool {
	return DateOnly(a).Equal(DateOnly(b))
}

// PreviousDay returns midnight UTC of the calendar date immediately before t.
func PreviousDay(t time.Time) time.Time {
	return DateOnly(t).AddDate(0, 0, -1)
}

// WeekRange returns the week containing t: the Sunday at or before t
// (midnight UTC) and the Saturday six days later. Weeks start on Sunday.
func WeekRange(t time.Time) (start, end time.Time) {
	d := DateOnly(t)
	start = d.AddDate(0, 0, -int(d.Weekday()))
	return start, start.AddDate(0, 0, 6)
}
