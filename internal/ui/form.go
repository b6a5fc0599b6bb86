package ui

import (
	"errors"
	"fmt"
	"log/slog"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
	"github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/tartampluch/go-age/internal/config"
	"github.com/tartampluch/go-age/internal/engine"
	"github.com/zalando/go-keyring"
)

// formWidgets holds references to the main form elements so the validation
// and result rendering can reach them after construction.
type formWidgets struct {
	nameEntry  *widget.Entry
	dayEntry   *NumericalEntry
	monthEntry *NumericalEntry
	yearEntry  *NumericalEntry

	resultLabel *widget.Label
	btnExport   *widget.Button

	// lastICS is the calendar generated on the last successful
	// validation, kept for the save-to-file export.
	lastICS []byte
}

// ShowMainWindow displays (or focuses) the birth date form.
func (app *GoAgeApp) ShowMainWindow() {
	if app.Window != nil {
		app.Window.RequestFocus()
		return
	}

	w := app.App.NewWindow(app.GetMsg(config.TKeyWinTitle))
	app.Window = w

	fw := &formWidgets{}

	fw.nameEntry = widget.NewEntry()
	fw.nameEntry.SetText(app.Preferences.String(config.PrefDisplayName))

	fw.dayEntry = NewNumericalEntry(config.MaxDigitsDay)
	fw.dayEntry.PlaceHolder = config.PlaceholderDay
	fw.monthEntry = NewNumericalEntry(config.MaxDigitsMonth)
	fw.monthEntry.PlaceHolder = config.PlaceholderMonth
	fw.yearEntry = NewNumericalEntry(config.MaxDigitsYear)
	fw.yearEntry.PlaceHolder = config.PlaceholderYear

	// Immediate feedback: re-check the day bound whenever the month or
	// year changes while a day is already typed in.
	fw.monthEntry.OnChanged = func(string) { app.liveCheckDay(fw) }
	fw.yearEntry.OnChanged = func(string) { app.liveCheckDay(fw) }

	fw.resultLabel = widget.NewLabel(app.GetMsg(config.TKeyResultWaiting))
	fw.resultLabel.Alignment = fyne.TextAlignCenter

	btnCalculate := widget.NewButtonWithIcon(app.GetMsg(config.TKeyBtnCalculate), theme.ConfirmIcon(), func() {
		app.calculate(fw)
	})
	btnCalculate.Importance = widget.HighImportance

	btnImport := widget.NewButtonWithIcon(app.GetMsg(config.TKeyBtnImport), theme.FolderOpenIcon(), func() {
		go app.performImport(fw)
	})

	fw.btnExport = widget.NewButtonWithIcon(app.GetMsg(config.TKeyBtnExport), theme.DocumentSaveIcon(), func() {
		app.exportCalendar(fw, w)
	})
	fw.btnExport.Disable() // Nothing to export until a date validates.

	itemName := widget.NewFormItem(app.GetMsg(config.TKeyLblName), fw.nameEntry)

	dateRow := container.NewGridWithColumns(config.LayoutColumnsTriple,
		fw.dayEntry, fw.monthEntry, fw.yearEntry)
	itemDate := widget.NewFormItem(app.GetMsg(config.TKeyLblBirthDate), dateRow)

	form := widget.NewForm(itemName, itemDate)

	resultCard := widget.NewCard("", "", fw.resultLabel)

	footerText := fmt.Sprintf(app.GetMsg(config.TKeyLblFooter), config.Version)
	footerLabel := widget.NewLabel(footerText)
	footerLabel.Alignment = fyne.TextAlignCenter
	footerLabel.TextStyle = fyne.TextStyle{Italic: true}

	content := container.NewPadded(container.NewVBox(
		form,
		container.NewGridWithColumns(config.LayoutColumnsDouble, btnImport, btnCalculate),
		resultCard,
		fw.btnExport,
		footerLabel,
	))

	w.SetContent(content)
	w.Resize(fyne.NewSize(config.MainWindowWidth, content.MinSize().Height))
	w.SetOnClosed(func() { app.Window = nil })
	w.Show()
}

// liveCheckDay runs the light day-vs-month re-check. It only touches the
// day field's validation state when all three fields currently parse.
func (app *GoAgeApp) liveCheckDay(fw *formWidgets) {
	errs, acted := engine.ValidateDayAgainstMonth(fw.dayEntry.Text, fw.monthEntry.Text, fw.yearEntry.Text)
	if !acted {
		return
	}
	if fe, found := errs[config.FieldDay]; found {
		fw.dayEntry.SetValidationError(errors.New(app.localizeFieldError(fe)))
	} else {
		fw.dayEntry.SetValidationError(nil)
	}
}

// renderFieldErrors maps the validator output onto the three entries.
// Fields without an error are explicitly cleared.
func (app *GoAgeApp) renderFieldErrors(fw *formWidgets, errs engine.FieldErrors) {
	entries := map[string]*NumericalEntry{
		config.FieldDay:   fw.dayEntry,
		config.FieldMonth: fw.monthEntry,
		config.FieldYear:  fw.yearEntry,
	}
	for field, entry := range entries {
		if fe, found := errs[field]; found {
			entry.SetValidationError(errors.New(app.localizeFieldError(fe)))
		} else {
			entry.SetValidationError(nil)
		}
	}
}

// calculate runs the full validation pass and, on success, renders the age
// breakdown and republishes the birthday calendar.
func (app *GoAgeApp) calculate(fw *formWidgets) {
	// Single clock read for the whole cycle, so validation and the age
	// arithmetic can never disagree about "today" across midnight.
	today := engine.Today(app.Clock)

	date, errs := engine.Validate(fw.dayEntry.Text, fw.monthEntry.Text, fw.yearEntry.Text, today)
	app.renderFieldErrors(fw, errs)
	if len(errs) > 0 {
		slog.Info(config.MsgValidationErr,
			config.LogKeyComponent, config.CompUI,
			config.LogKeyCount, len(errs))
		for field, fe := range errs {
			slog.Debug(config.MsgValidationErr,
				config.LogKeyComponent, config.CompUI,
				config.LogKeyField, field,
				config.LogKeyCode, fe.Code)
		}
		return
	}

	slog.Debug(config.MsgValidated,
		config.LogKeyComponent, config.CompUI,
		config.LogKeyDOB, date.String())

	breakdown := engine.CalculateAge(date, today)
	slog.Info(config.MsgAgeComputed,
		config.LogKeyComponent, config.CompUI,
		config.LogKeyDOB, date.String(),
		config.LogKeyYears, breakdown.Years,
		config.LogKeyMonths, breakdown.Months,
		config.LogKeyDays, breakdown.Days)

	fw.resultLabel.SetText(app.formatBreakdown(breakdown))

	name := fw.nameEntry.Text
	app.Preferences.SetString(config.PrefDisplayName, name)

	exporter := &engine.Exporter{
		Clock:         app.Clock,
		FormatSummary: app.buildSummaryFormatter(),
	}
	ics, err := exporter.BuildCalendar(engine.ExportConfig{
		Name:            name,
		BirthDate:       date,
		ReminderTrigger: app.reminderTrigger(),
	})
	if err != nil {
		slog.Error(config.ErrICalEncode,
			config.LogKeyComponent, config.CompUI,
			config.LogKeyError, err)
		return
	}

	app.Server.Update(ics)
	fw.lastICS = ics
	fw.btnExport.Enable()
}

// formatBreakdown renders the age as localized, pluralized parts.
func (app *GoAgeApp) formatBreakdown(b engine.AgeBreakdown) string {
	years := app.GetMsgData(config.TKeyResultYears, map[string]interface{}{"Count": b.Years}, b.Years)
	months := app.GetMsgData(config.TKeyResultMonths, map[string]interface{}{"Count": b.Months}, b.Months)
	days := app.GetMsgData(config.TKeyResultDays, map[string]interface{}{"Count": b.Days}, b.Days)

	// Missing translations come back as the raw key; fall back to the
	// English constant in that case.
	if years == config.TKeyResultYears || months == config.TKeyResultMonths || days == config.TKeyResultDays {
		return fmt.Sprintf(config.FallbackResult, b.Years, b.Months, b.Days)
	}
	return fmt.Sprintf("%s, %s, %s", years, months, days)
}

// reminderTrigger assembles the ISO8601 alarm trigger from preferences.
// Reminders always fire before the event, at day granularity.
func (app *GoAgeApp) reminderTrigger() string {
	if !app.Preferences.Bool(config.PrefReminderEnabled) {
		return ""
	}
	days := app.Preferences.IntWithFallback(config.PrefReminderDays, config.DefaultRemDays)
	return fmt.Sprintf("%s%d%s", config.ISONegativePrefix, days, config.ISODay)
}

// buildSummaryFormatter returns a closure that localizes the event summary.
// Returning "" makes the exporter fall back to its English constants.
func (app *GoAgeApp) buildSummaryFormatter() func(name string, age int) string {
	return func(name string, age int) string {
		if app.Localizer == nil {
			return ""
		}

		var msg string
		var err error
		if age == 0 {
			msg, err = app.Localizer.Localize(&i18n.LocalizeConfig{
				MessageID:    config.TKeyEvtBirth,
				TemplateData: map[string]interface{}{"Name": name},
			})
		} else {
			msg, err = app.Localizer.Localize(&i18n.LocalizeConfig{
				MessageID:    config.TKeyEvtSummaryAge,
				TemplateData: map[string]interface{}{"Name": name, "Age": age},
			})
		}
		if err != nil {
			return ""
		}
		return msg
	}
}

// loadImportConfig assembles the engine configuration from preferences and Keyring.
func (app *GoAgeApp) loadImportConfig() engine.ImportConfig {
	cfg := engine.ImportConfig{
		Mode:      app.Preferences.StringWithFallback(config.PrefSourceMode, config.SourceModeLocal),
		LocalPath: app.Preferences.String(config.PrefLocalPath),
		WebURL:    app.Preferences.String(config.PrefWebURL),
		WebUser:   app.Preferences.String(config.PrefUsername),
	}

	if cfg.WebUser != "" {
		if p, err := keyring.Get(config.KeyringService, cfg.WebUser); err == nil {
			cfg.WebPass = p
		} else {
			slog.Debug(config.MsgPassFail,
				config.LogKeyError, err,
				config.LogKeyComponent, config.CompUI)
		}
	}

	return cfg
}

// performImport fetches the configured vCard source and pre-fills the form.
// Runs off the UI thread; widget updates go through fyne.Do.
func (app *GoAgeApp) performImport(fw *formWidgets) {
	importer := &engine.Importer{Fetcher: app.Fetcher}

	person, err := importer.Run(app.Ctx, app.loadImportConfig())
	if err != nil {
		slog.Error(config.MsgImportFailed,
			config.LogKeyComponent, config.CompUI,
			config.LogKeyError, err)
		app.App.SendNotification(fyne.NewNotification(
			config.TitleImportError, app.GetMsg(config.TKeyNotifImportErr)))
		return
	}

	fyne.Do(func() {
		fw.nameEntry.SetText(person.Name)
		fw.dayEntry.SetText(fmt.Sprintf("%d", person.DateOfBirth.Day))
		fw.monthEntry.SetText(fmt.Sprintf("%d", person.DateOfBirth.Month))
		if person.YearKnown {
			fw.yearEntry.SetText(fmt.Sprintf("%d", person.DateOfBirth.Year))
		} else {
			// The user has to supply the year; --MM-DD cards omit it.
			fw.yearEntry.SetText("")
		}
	})

	app.App.SendNotification(fyne.NewNotification(
		config.AppName, app.GetMsg(config.TKeyNotifImported)))
}

// exportCalendar saves the last generated ICS to a user-chosen file.
func (app *GoAgeApp) exportCalendar(fw *formWidgets, w fyne.Window) {
	if len(fw.lastICS) == 0 {
		return
	}

	d := dialog.NewFileSave(func(writer fyne.URIWriteCloser, err error) {
		if err != nil || writer == nil {
			return
		}
		defer func() { _ = writer.Close() }()

		if _, err := writer.Write(fw.lastICS); err != nil {
			slog.Error(config.ErrWriteResp,
				config.LogKeyComponent, config.CompUI,
				config.LogKeyError, err)
			return
		}
		app.App.SendNotification(fyne.NewNotification(
			config.AppName, app.GetMsg(config.TKeyNotifExported)))
	}, w)
	d.SetFileName(config.DefaultICSFileName)
	d.SetFilter(storage.NewExtensionFileFilter([]string{config.ExtICS}))
	d.Show()
}
