package engine

import (
	"bytes"
	"crypto/sha256"
	"fmt"
	"log/slog"
	"time"

	"github.com/emersion/go-ical"
	"github.com/tartampluch/go-age/internal/config"
)

// ExportConfig describes a birthday calendar export request.
type ExportConfig struct {
	Name            string       // Display name used in event summaries
	BirthDate       CalendarDate // Must have survived Validate
	ReminderTrigger string       // ISO8601 duration string (e.g., "-P1D"), empty disables alarms
}

// Exporter renders a validated birth date as an iCalendar feed.
type Exporter struct {
	Clock Clock

	// FormatSummary allows the UI to inject localized strings into the
	// logic layer. Nil falls back to the English constants.
	FormatSummary func(name string, age int) string
}

// BuildCalendar generates all-day birthday events for the previous, current,
// and next year relative to the clock, never before the person is born.
func (e *Exporter) BuildCalendar(cfg ExportConfig) ([]byte, error) {
	start := time.Now()
	cal := ical.NewCalendar()

	cal.Props.SetText(config.PropVersion, config.ICalVersion)
	cal.Props.SetText(config.PropProdid, config.ICalProdid)
	cal.Props.SetText(config.PropXWRCalName, config.ICalCalName)
	cal.Props.SetText(config.PropCalScale, config.ICalScale)
	cal.Props.SetText(config.PropMethod, config.ICalMethod)

	refreshProp := ical.NewProp(config.PropRefresh)
	refreshProp.SetDuration(config.DefaultICalRefresh)
	cal.Props.Set(refreshProp)

	// Birthdays are local calendar dates; only the DTSTAMP is UTC.
	now := e.Clock.Now()
	dtStampProp := ical.NewProp(config.PropDTStamp)
	dtStampProp.SetDateTime(now.UTC())

	name := cfg.Name
	if name == "" {
		name = config.FallbackName
	}

	// Deterministic UID base for stability across regenerations.
	input := fmt.Sprintf(config.FormatHashInput, name, cfg.BirthDate.String(), config.UIDSalt)
	hash := sha256.Sum256([]byte(input))
	uidBase := fmt.Sprintf("%x", hash[:config.UIDHashLength])

	currentYear := now.Year()
	loc := now.Location()

	// Previous, current, and next year, so calendar clients scrolling
	// around today always have an event without an immediate re-sync.
	for _, y := range []int{currentYear - 1, currentYear, currentYear + 1} {
		if y < cfg.BirthDate.Year {
			continue
		}

		event := ical.NewEvent()
		event.Props.SetText(config.PropUID, fmt.Sprintf(config.FormatUID, uidBase, y, config.ICalDomain))

		age := y - cfg.BirthDate.Year
		event.Props.SetText(config.PropSummary, e.summary(name, age))

		// time.Date normalizes Feb 29 to Mar 1 in non-leap target years.
		eventDate := time.Date(y, time.Month(cfg.BirthDate.Month), cfg.BirthDate.Day, 0, 0, 0, 0, loc)
		dtStartProp := ical.NewProp(config.PropDTStart)
		dtStartProp.SetDate(eventDate)
		event.Props.Set(dtStartProp)

		if cfg.ReminderTrigger != "" {
			addAlarm(event, cfg.ReminderTrigger, e.summary(name, age))
		}

		event.Props.Set(dtStampProp)
		cal.Children = append(cal.Children, event.Component)
	}

	if len(cal.Children) == 0 {
		// Born after next year cannot happen for a validated date, but a
		// valid VCALENDAR stub is still the safe answer.
		return []byte(config.StubVCalendar), nil
	}

	var buf bytes.Buffer
	if err := ical.NewEncoder(&buf).Encode(cal); err != nil {
		return nil, fmt.Errorf("%s: %w", config.ErrICalEncode, err)
	}

	slog.Debug(config.MsgExportDone,
		config.LogKeyComponent, config.CompEngine,
		config.LogKeyName, name,
		config.LogKeyDOB, cfg.BirthDate.String(),
		config.LogKeyDuration, time.Since(start).Milliseconds())

	return buf.Bytes(), nil
}

func (e *Exporter) summary(name string, age int) string {
	if e.FormatSummary != nil {
		if s := e.FormatSummary(name, age); s != "" {
			return s
		}
	}
	if age == 0 {
		return fmt.Sprintf(config.FallbackSummaryBirth, name)
	}
	return fmt.Sprintf(config.FallbackSummaryAge, name, age)
}

// addAlarm appends a DISPLAY alarm (notification) to the event.
func addAlarm(event *ical.Event, trigger, description string) {
	alarm := ical.NewComponent(config.ICalComponent)
	alarm.Props.SetText(config.PropAction, config.ICalAction)
	alarm.Props.SetText(config.PropDescription, description)

	// Set trigger manually to avoid "VALUE=TEXT" param
	triggerProp := ical.NewProp(config.PropTrigger)
	triggerProp.Value = trigger
	alarm.Props.Set(triggerProp)

	event.Children = append(event.Children, alarm)
}
