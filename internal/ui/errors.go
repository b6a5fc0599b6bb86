package ui

import (
	"github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/tartampluch/go-age/internal/config"
	"github.com/tartampluch/go-age/internal/engine"
)

// tkeyForCode maps an engine validation error code to its translation key.
// Unknown codes return "" and fall back to the engine's English message.
func tkeyForCode(code string) string {
	switch code {
	case config.CodeRequired:
		return config.TKeyErrRequired
	case config.CodeNotANumber:
		return config.TKeyErrNotANumber
	case config.CodeYearTooOld:
		return config.TKeyErrYearTooOld
	case config.CodeYearFuture:
		return config.TKeyErrYearFuture
	case config.CodeMonthRange:
		return config.TKeyErrMonthRange
	case config.CodeDayTooSmall:
		return config.TKeyErrDayTooSmall
	case config.CodeDayTooLarge:
		return config.TKeyErrDayTooLarge
	case config.CodeDayMonthFit:
		return config.TKeyErrDayMonthFit
	case config.CodeDayFebLeap:
		return config.TKeyErrDayFebLeap
	case config.CodeInvalidDate:
		return config.TKeyErrInvalidDate
	default:
		return ""
	}
}

// localizeFieldError renders a field error in the user's language, falling
// back to the engine's English message when no translation exists.
func (app *GoAgeApp) localizeFieldError(fe engine.FieldError) string {
	key := tkeyForCode(fe.Code)
	if key == "" || app.Localizer == nil {
		return fe.Message()
	}

	msg, err := app.Localizer.Localize(&i18n.LocalizeConfig{
		MessageID:    key,
		TemplateData: map[string]interface{}{"Max": fe.Max},
	})
	if err != nil || msg == "" {
		return fe.Message()
	}
	return msg
}
