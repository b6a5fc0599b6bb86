package engine

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/tartampluch/go-age/internal/config"
)

// FieldError is a single validation failure attributed to one input field.
// Code is stable and machine-readable (the UI keys translations off it);
// Message renders the English default text.
type FieldError struct {
	Code string

	// Max carries the month length for config.CodeDayMonthFit.
	Max int
}

// Message returns the human-readable English text for the error.
func (e FieldError) Message() string {
	switch e.Code {
	case config.CodeRequired:
		return config.MsgFieldRequired
	case config.CodeNotANumber:
		return config.MsgNotANumber
	case config.CodeYearTooOld:
		return config.MsgYearTooOld
	case config.CodeYearFuture:
		return config.MsgYearFuture
	case config.CodeMonthRange:
		return config.MsgMonthRange
	case config.CodeDayTooSmall:
		return config.MsgDayTooSmall
	case config.CodeDayTooLarge:
		return config.MsgDayTooLarge
	case config.CodeDayFebLeap:
		return config.MsgDayFebLeap
	case config.CodeDayMonthFit:
		return fmt.Sprintf(config.FormatDayMonthFit, e.Max)
	case config.CodeInvalidDate:
		return config.MsgInvalidDate
	default:
		return e.Code
	}
}

// FieldErrors maps a field name (config.FieldDay, config.FieldMonth,
// config.FieldYear) to at most one error. An empty map signals validity.
type FieldErrors map[string]FieldError

// parsedField is the outcome of the required + numeric checks for one field.
type parsedField struct {
	value  int
	parsed bool
}

// checkField runs the required and parse steps for a single raw input,
// recording at most one error. Each field is checked independently; an
// error on one field never short-circuits the others.
func checkField(raw, field string, errs FieldErrors) parsedField {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		errs[field] = FieldError{Code: config.CodeRequired}
		return parsedField{}
	}

	v, err := strconv.Atoi(trimmed)
	if err != nil {
		// Malformed numeric input is reported, never silently ignored.
		errs[field] = FieldError{Code: config.CodeNotANumber}
		return parsedField{}
	}
	return parsedField{value: v, parsed: true}
}

// dayBoundError compares a day against the actual length of month/year and
// returns the precise-bound error, or ok=true if the day fits. Shared by the
// submit path and the live re-check so the two can never diverge.
// The month must already be known to be within 1-12.
func dayBoundError(day, month, year int) (FieldError, bool) {
	maxDays := MaxDaysInMonth(month, year)
	if day <= maxDays {
		return FieldError{}, true
	}
	if month == config.MonthFebruary && IsLeapYear(year) {
		return FieldError{Code: config.CodeDayFebLeap}, false
	}
	return FieldError{Code: config.CodeDayMonthFit, Max: maxDays}, false
}

// Validate checks the three raw field strings against "today" and returns
// either a real CalendarDate or the per-field errors. Errors accumulate
// across fields; within a field the latest applicable check wins.
func Validate(dayStr, monthStr, yearStr string, today CalendarDate) (CalendarDate, FieldErrors) {
	errs := FieldErrors{}

	day := checkField(dayStr, config.FieldDay, errs)
	month := checkField(monthStr, config.FieldMonth, errs)
	year := checkField(yearStr, config.FieldYear, errs)

	if year.parsed {
		switch {
		case year.value < config.MinYear:
			errs[config.FieldYear] = FieldError{Code: config.CodeYearTooOld}
		case year.value > today.Year:
			errs[config.FieldYear] = FieldError{Code: config.CodeYearFuture}
		}
	}

	monthInRange := month.parsed && month.value >= config.MinMonth && month.value <= config.MaxMonth
	if month.parsed && !monthInRange {
		errs[config.FieldMonth] = FieldError{Code: config.CodeMonthRange}
	}

	if day.parsed {
		switch {
		case day.value < config.MinDay:
			errs[config.FieldDay] = FieldError{Code: config.CodeDayTooSmall}
		case day.value > config.MaxDayCoarse:
			errs[config.FieldDay] = FieldError{Code: config.CodeDayTooLarge}
		}

		// Precise bound. A year that failed its own range check still
		// qualifies here; only a month outside 1-12 cannot, since the
		// month length would be undefined.
		if monthInRange && year.parsed && year.value != 0 {
			if e, ok := dayBoundError(day.value, month.value, year.value); !ok {
				// Overrides the coarse day message.
				errs[config.FieldDay] = e
			}
		}
	}

	if len(errs) > 0 {
		return CalendarDate{}, errs
	}

	date := CalendarDate{Day: day.value, Month: month.value, Year: year.value}

	// Final reconstruction check: time.Date normalizes impossible
	// combinations (Feb 30 becomes Mar 1/2), so a round-trip mismatch
	// means the inputs did not name a real date. Unreachable after the
	// checks above.
	if DateFromTime(date.Time()) != date {
		errs[config.FieldDay] = FieldError{Code: config.CodeInvalidDate}
		return CalendarDate{}, errs
	}

	return date, nil
}

// ValidateDayAgainstMonth is the lightweight live check used when the month
// or year field changes while a day is already present. It acts only when
// all three fields currently parse as non-zero numbers and the month is
// within range; the second return value reports whether it acted. An empty
// FieldErrors with ok=true means any previous day error must be cleared.
func ValidateDayAgainstMonth(dayStr, monthStr, yearStr string) (FieldErrors, bool) {
	day, errD := strconv.Atoi(strings.TrimSpace(dayStr))
	month, errM := strconv.Atoi(strings.TrimSpace(monthStr))
	year, errY := strconv.Atoi(strings.TrimSpace(yearStr))
	if errD != nil || errM != nil || errY != nil {
		return nil, false
	}
	if day == 0 || month == 0 || year == 0 {
		return nil, false
	}
	if month < config.MinMonth || month > config.MaxMonth {
		// The full validation pass owns month range errors.
		return nil, false
	}

	if e, ok := dayBoundError(day, month, year); !ok {
		return FieldErrors{config.FieldDay: e}, true
	}
	return FieldErrors{}, true
}
