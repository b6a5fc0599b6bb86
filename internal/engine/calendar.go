package engine

import (
	"fmt"
	"time"

	"github.com/tartampluch/go-age/internal/config"
)

// CalendarDate is a plain Gregorian calendar date (1-based month and day),
// without time-of-day or timezone. A CalendarDate produced by Validate is
// guaranteed to be a real date; zero values are only used as sentinels.
type CalendarDate struct {
	Day   int
	Month int
	Year  int
}

// DateFromTime truncates a wall-clock instant to its local calendar date.
func DateFromTime(t time.Time) CalendarDate {
	y, m, d := t.Date()
	return CalendarDate{Day: d, Month: int(m), Year: y}
}

// Time converts the date to midnight local time. Go's time.Date normalizes
// out-of-range components, which is exactly what the reconstruction check
// in Validate relies on.
func (d CalendarDate) Time() time.Time {
	return time.Date(d.Year, time.Month(d.Month), d.Day, 0, 0, 0, 0, time.Local)
}

// IsZero reports whether the date is the unset sentinel.
func (d CalendarDate) IsZero() bool {
	return d == CalendarDate{}
}

// Before reports whether d falls strictly before other on the calendar.
func (d CalendarDate) Before(other CalendarDate) bool {
	if d.Year != other.Year {
		return d.Year < other.Year
	}
	if d.Month != other.Month {
		return d.Month < other.Month
	}
	return d.Day < other.Day
}

// String renders the date in ISO order (YYYY-MM-DD).
func (d CalendarDate) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, d.Month, d.Day)
}

// IsLeapYear applies the Gregorian rule to any integer year:
// divisible by 4 and not by 100, or divisible by 400.
func IsLeapYear(year int) bool {
	if year%config.LeapCycleDivisor == 0 {
		return true
	}
	return year%config.LeapDivisor == 0 && year%config.LeapCenturyDivisor != 0
}

// MaxDaysInMonth returns the number of days in the given month of the given
// year. The month must be within 1-12; anything else is a caller bug and
// panics rather than returning a bogus length.
func MaxDaysInMonth(month, year int) int {
	if month < config.MinMonth || month > config.MaxMonth {
		panic(fmt.Sprintf("%s: %d", config.ErrMonthContract, month))
	}

	switch month {
	case config.MonthFebruary:
		if IsLeapYear(year) {
			return config.DaysFebLeap
		}
		return config.DaysFebCommon
	case 4, 6, 9, 11:
		return config.DaysShort
	default:
		return config.DaysLong
	}
}
