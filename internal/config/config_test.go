package config_test

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/tartampluch/go-age/internal/config"
)

// TestConstants_Integrity ensures critical constants are not empty or malformed.
// This prevents accidental deletion of keys required for runtime or UI logic.
func TestConstants_Integrity(t *testing.T) {
	tests := []struct {
		name  string
		value string
	}{
		{"AppName", config.AppName},
		{"AppID", config.AppID},
		{"Version", config.Version},
		{"UserAgent", config.UserAgent},
		{"ICalVersion", config.ICalVersion},
		{"ICalProdid", config.ICalProdid},
		{"DefaultPort", config.DefaultPort},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.NotEmpty(t, tt.value, "Critical constant %s should not be empty", tt.name)
		})
	}
}

// TestCalendarBounds_Sanity pins the domain constants the validator and the
// age calculation are built on.
func TestCalendarBounds_Sanity(t *testing.T) {
	assert.Equal(t, 1900, config.MinYear, "Oldest accepted birth year")
	assert.Equal(t, 1, config.MinMonth)
	assert.Equal(t, 12, config.MaxMonth)
	assert.Equal(t, 1, config.MinDay)
	assert.Equal(t, 31, config.MaxDayCoarse)
	assert.Equal(t, 12, config.MonthsPerYear)
	assert.Equal(t, 2, config.MonthFebruary)

	assert.Equal(t, 29, config.DaysFebLeap)
	assert.Equal(t, 28, config.DaysFebCommon)
	assert.Equal(t, 30, config.DaysShort)
	assert.Equal(t, 31, config.DaysLong)
}

// TestValidationMessages_Exact pins the English texts shown on the form.
// These are part of the product surface; changing one is a deliberate act.
func TestValidationMessages_Exact(t *testing.T) {
	assert.Equal(t, "This field is required", config.MsgFieldRequired)
	assert.Equal(t, "Must be a number", config.MsgNotANumber)
	assert.Equal(t, "Year must be 1900 or later", config.MsgYearTooOld)
	assert.Equal(t, "Must be in the past", config.MsgYearFuture)
	assert.Equal(t, "Must be a valid month (1-12)", config.MsgMonthRange)
	assert.Equal(t, "Must be at least 1", config.MsgDayTooSmall)
	assert.Equal(t, "Must be 31 or less", config.MsgDayTooLarge)
	assert.Equal(t, "February has 29 days this year", config.MsgDayFebLeap)
	assert.Equal(t, "Must be a valid date", config.MsgInvalidDate)
	assert.Equal(t, "Must be between 1 and %d", config.FormatDayMonthFit)
}

// TestDefaults_Sanity checks that default values make sense logically.
func TestDefaults_Sanity(t *testing.T) {
	assert.Equal(t, 2000, config.DefaultLeapYear, "Default leap year must be 2000 for consistency")
	assert.Zero(t, config.DefaultLeapYear%config.LeapCycleDivisor, "Fallback year must actually be a leap year")
	assert.Equal(t, 30*time.Second, config.HTTPTimeout)
}

// TestUserAgent_Format ensures the UA string follows the standard format.
func TestUserAgent_Format(t *testing.T) {
	assert.True(t, strings.HasPrefix(config.UserAgent, "Go-Age/"), "UserAgent must start with AppName/")
}

// TestTimeoutsAndLimits ensures that operational constraints are reasonable.
func TestTimeoutsAndLimits(t *testing.T) {
	t.Parallel()

	assert.Greater(t, config.HTTPTimeout, 0*time.Second, "HTTPTimeout must be positive")
	assert.LessOrEqual(t, config.HTTPTimeout, 2*time.Minute, "HTTPTimeout should not be excessively long")
	assert.Greater(t, config.ShutdownTimeout, 0*time.Second, "ShutdownTimeout must be positive")

	assert.Greater(t, int64(config.MaxHTTPResponseSize), int64(0), "MaxHTTPResponseSize must be positive")
	// A single-contact vCard with an embedded photo stays well under 16MB.
	assert.Less(t, int64(config.MaxHTTPResponseSize), int64(1*1024*1024*1024), "MaxHTTPResponseSize should stay under 1GB to protect RAM")
}
