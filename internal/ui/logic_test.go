package ui

import (
	"testing"

	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"
	"github.com/tartampluch/go-age/internal/config"
	"github.com/tartampluch/go-age/internal/engine"
)

// newTestApp builds a GoAgeApp with a Fyne test driver and a loaded
// translation bundle. By being in package 'ui', tests can reach the private
// helpers that glue engine results to the widgets.
func newTestApp(t *testing.T) *GoAgeApp {
	t.Helper()
	a := test.NewApp()
	app := &GoAgeApp{
		App:         a,
		Preferences: a.Preferences(),
	}
	app.SetupI18n()
	return app
}

func TestTKeyForCode_AllCodesMapped(t *testing.T) {
	codes := []string{
		config.CodeRequired,
		config.CodeNotANumber,
		config.CodeYearTooOld,
		config.CodeYearFuture,
		config.CodeMonthRange,
		config.CodeDayTooSmall,
		config.CodeDayTooLarge,
		config.CodeDayMonthFit,
		config.CodeDayFebLeap,
		config.CodeInvalidDate,
	}

	seen := make(map[string]bool)
	for _, code := range codes {
		key := tkeyForCode(code)
		assert.NotEmptyf(t, key, "code %q must map to a translation key", code)
		assert.Falsef(t, seen[key], "key %q reused for code %q", key, code)
		seen[key] = true
	}

	assert.Empty(t, tkeyForCode("mystery"), "unknown codes must fall back to the English message")
}

func TestLocalizeFieldError_English(t *testing.T) {
	app := newTestApp(t)

	tests := []struct {
		name string
		fe   engine.FieldError
		want string
	}{
		{"required", engine.FieldError{Code: config.CodeRequired}, "This field is required"},
		{"month fit interpolates max", engine.FieldError{Code: config.CodeDayMonthFit, Max: 30}, "Must be between 1 and 30"},
		{"feb leap", engine.FieldError{Code: config.CodeDayFebLeap}, "February has 29 days this year"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, app.localizeFieldError(tt.fe))
		})
	}
}

func TestLocalizeFieldError_French(t *testing.T) {
	app := newTestApp(t)
	app.Preferences.SetString(config.PrefLanguage, "fr")
	app.UpdateLocalizer()

	got := app.localizeFieldError(engine.FieldError{Code: config.CodeDayMonthFit, Max: 28})
	assert.NotEqual(t, "Must be between 1 and 28", got, "French locale must not serve the English text")
	assert.Contains(t, got, "28", "Max must be interpolated in every language")
}

func TestLocalizeFieldError_FallbackWithoutLocalizer(t *testing.T) {
	app := &GoAgeApp{} // No bundle loaded

	fe := engine.FieldError{Code: config.CodeYearTooOld}
	assert.Equal(t, "Year must be 1900 or later", app.localizeFieldError(fe))
}

func TestFormatBreakdown_Pluralization(t *testing.T) {
	app := newTestApp(t)

	tests := []struct {
		name string
		b    engine.AgeBreakdown
		want string
	}{
		{"plural everywhere", engine.AgeBreakdown{Years: 24, Months: 2, Days: 10}, "24 years, 2 months, 10 days"},
		{"singular everywhere", engine.AgeBreakdown{Years: 1, Months: 1, Days: 1}, "1 year, 1 month, 1 day"},
		{"zeros take plural", engine.AgeBreakdown{Years: 0, Months: 0, Days: 0}, "0 years, 0 months, 0 days"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, app.formatBreakdown(tt.b))
		})
	}
}

func TestFormatBreakdown_FallbackWithoutLocalizer(t *testing.T) {
	app := &GoAgeApp{}

	got := app.formatBreakdown(engine.AgeBreakdown{Years: 24, Months: 0, Days: 3})
	assert.Equal(t, "24 years, 0 months, 3 days", got)
}

// TestReminderTrigger verifies the conversion of UI preferences to the
// ISO8601 trigger consumed by the exporter.
func TestReminderTrigger(t *testing.T) {
	a := test.NewApp()
	app := &GoAgeApp{
		App:         a,
		Preferences: a.Preferences(),
	}

	tests := []struct {
		name    string
		enabled bool
		days    int
		want    string
	}{
		{"disabled", false, 3, ""},
		{"one day before", true, 1, "-P1D"},
		{"week before", true, 7, "-P7D"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app.Preferences.SetBool(config.PrefReminderEnabled, tt.enabled)
			app.Preferences.SetInt(config.PrefReminderDays, tt.days)

			assert.Equal(t, tt.want, app.reminderTrigger())
		})
	}
}

func TestReminderTrigger_Default(t *testing.T) {
	a := test.NewApp()
	app := &GoAgeApp{
		App:         a,
		Preferences: a.Preferences(),
	}
	app.Preferences.SetBool(config.PrefReminderEnabled, true)
	// No day count stored: the default applies.

	assert.Equal(t, "-P1D", app.reminderTrigger())
}

// TestLoadImportConfig checks the preference-to-engine mapping. The Keyring
// lookup is skipped when no username is stored, so the test stays free of
// system keychain access.
func TestLoadImportConfig(t *testing.T) {
	a := test.NewApp()
	app := &GoAgeApp{
		App:         a,
		Preferences: a.Preferences(),
	}

	cfg := app.loadImportConfig()
	assert.Equal(t, config.SourceModeLocal, cfg.Mode, "Local file is the default source")
	assert.Empty(t, cfg.WebPass)

	app.Preferences.SetString(config.PrefSourceMode, config.SourceModeWeb)
	app.Preferences.SetString(config.PrefWebURL, "https://dav.example.com/me.vcf")
	app.Preferences.SetString(config.PrefLocalPath, "/tmp/contacts.vcf")

	cfg = app.loadImportConfig()
	assert.Equal(t, config.SourceModeWeb, cfg.Mode)
	assert.Equal(t, "https://dav.example.com/me.vcf", cfg.WebURL)
	assert.Equal(t, "/tmp/contacts.vcf", cfg.LocalPath)
}

func TestBuildSummaryFormatter(t *testing.T) {
	app := newTestApp(t)
	format := app.buildSummaryFormatter()

	assert.Equal(t, "Birthday: Alice (24)", format("Alice", 24))
	assert.Equal(t, "Birthday: Alice (birth)", format("Alice", 0))
}

func TestBuildSummaryFormatter_WithoutLocalizer(t *testing.T) {
	app := &GoAgeApp{}
	format := app.buildSummaryFormatter()

	assert.Empty(t, format("Alice", 24), "empty string defers to the exporter's fallback")
}
