package engine

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// TestIsLeapYear covers the three Gregorian rules: divisible by 4, the
// century exception, and the 400-year exception to the exception.
func TestIsLeapYear(t *testing.T) {
	tests := []struct {
		year int
		want bool
		desc string
	}{
		{2024, true, "divisible by 4"},
		{1996, true, "divisible by 4"},
		{2000, true, "divisible by 400 overrides century rule"},
		{1600, true, "divisible by 400"},
		{1900, false, "century not divisible by 400"},
		{2100, false, "century not divisible by 400"},
		{2023, false, "not divisible by 4"},
		{1999, false, "not divisible by 4"},
	}

	for _, tt := range tests {
		assert.Equalf(t, tt.want, IsLeapYear(tt.year), "year %d: %s", tt.year, tt.desc)
	}
}

func TestMaxDaysInMonth(t *testing.T) {
	tests := []struct {
		name  string
		month int
		year  int
		want  int
	}{
		{"February leap year", 2, 2024, 29},
		{"February common year", 2, 2023, 28},
		{"February century non-leap", 2, 1900, 28},
		{"February 400-year leap", 2, 2000, 29},
		{"April", 4, 2024, 30},
		{"June", 6, 2023, 30},
		{"September", 9, 2023, 30},
		{"November", 11, 2023, 30},
		{"January", 1, 2023, 31},
		{"July", 7, 2023, 31},
		{"August", 8, 2023, 31},
		{"December", 12, 2023, 31},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, MaxDaysInMonth(tt.month, tt.year))
		})
	}
}

// TestMaxDaysInMonth_Contract documents that a month outside 1-12 is a
// programming error, not a data error, and must panic.
func TestMaxDaysInMonth_Contract(t *testing.T) {
	assert.Panics(t, func() { MaxDaysInMonth(0, 2024) }, "month 0 must panic")
	assert.Panics(t, func() { MaxDaysInMonth(13, 2024) }, "month 13 must panic")
	assert.Panics(t, func() { MaxDaysInMonth(-1, 2024) }, "negative month must panic")
}

func TestCalendarDate_RoundTrip(t *testing.T) {
	d := CalendarDate{Day: 29, Month: 2, Year: 2024}
	assert.Equal(t, d, DateFromTime(d.Time()), "a real date must survive the time.Date round trip")

	// Feb 30 does not exist; time.Date normalizes it to March 1.
	bogus := CalendarDate{Day: 30, Month: 2, Year: 2023}
	assert.NotEqual(t, bogus, DateFromTime(bogus.Time()), "an impossible date must not round-trip")
}

func TestCalendarDate_Before(t *testing.T) {
	tests := []struct {
		name string
		a, b CalendarDate
		want bool
	}{
		{"earlier year", CalendarDate{1, 1, 1999}, CalendarDate{1, 1, 2000}, true},
		{"earlier month same year", CalendarDate{31, 1, 2000}, CalendarDate{1, 2, 2000}, true},
		{"earlier day same month", CalendarDate{14, 6, 2000}, CalendarDate{15, 6, 2000}, true},
		{"equal", CalendarDate{15, 6, 2000}, CalendarDate{15, 6, 2000}, false},
		{"later", CalendarDate{16, 6, 2000}, CalendarDate{15, 6, 2000}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.a.Before(tt.b))
		})
	}
}

func TestCalendarDate_String(t *testing.T) {
	assert.Equal(t, "2024-02-29", CalendarDate{Day: 29, Month: 2, Year: 2024}.String())
	assert.Equal(t, "1900-01-01", CalendarDate{Day: 1, Month: 1, Year: 1900}.String())
}

func TestToday(t *testing.T) {
	clock := fixedClock{t: time.Date(2025, 6, 15, 23, 59, 0, 0, time.Local)}
	assert.Equal(t, CalendarDate{Day: 15, Month: 6, Year: 2025}, Today(clock))
}

type fixedClock struct {
	t time.Time
}

func (c fixedClock) Now() time.Time {
	return c.t
}
