package engine

import "time"

// Clock abstracts time.Now() to allow deterministic testing.
// The UI reads it exactly once per validate/calculate cycle so a submission
// straddling midnight cannot see two different "today" values.
type Clock interface {
	Now() time.Time
}

// RealClock implements Clock using the standard time package.
type RealClock struct{}

// Now returns the current local time.
func (RealClock) Now() time.Time {
	return time.Now()
}

// Today reads the clock once and truncates to the local calendar date.
func Today(c Clock) CalendarDate {
	return DateFromTime(c.Now())
}
