package engine

import "github.com/tartampluch/go-age/internal/config"

// AgeBreakdown is the elapsed time between a birth date and today, split
// into full years, remaining months (0-11), and remaining days. A fresh
// value is produced on every calculation.
type AgeBreakdown struct {
	Years  int
	Months int
	Days   int
}

// CalculateAge computes the year/month/day breakdown between birth and
// today. Precondition: birth survived Validate and is not after today
// (the validator enforces year <= current year; see the validator docs for
// the same-year edge case).
//
// When the day difference is negative, one calendar month is borrowed: the
// days of the month immediately preceding today's month are added back,
// leap-aware when that month is February.
func CalculateAge(birth, today CalendarDate) AgeBreakdown {
	years := today.Year - birth.Year
	months := today.Month - birth.Month
	days := today.Day - birth.Day

	if days < 0 {
		months--
		prevMonth := today.Month - 1
		prevYear := today.Year
		if prevMonth < 1 {
			prevMonth = config.MaxMonth
			prevYear--
		}
		days += MaxDaysInMonth(prevMonth, prevYear)
	}

	if months < 0 {
		years--
		months += config.MonthsPerYear
	}

	return AgeBreakdown{Years: years, Months: months, Days: days}
}
