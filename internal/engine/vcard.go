package engine

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"time"

	"github.com/emersion/go-vcard"
	"github.com/tartampluch/go-age/internal/config"
)

// ExtractBirthday decodes a vCard stream and returns the first contact
// carrying a parseable BDAY. Malformed cards are skipped rather than
// aborting the import, to maximize data recovery.
func ExtractBirthday(ctx context.Context, r io.Reader) (Person, error) {
	decoder := vcard.NewDecoder(r)

	for {
		if err := ctx.Err(); err != nil {
			return Person{}, err
		}

		card, err := decoder.Decode()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			slog.Warn(config.MsgSkippedCard,
				config.LogKeyComponent, config.CompEngine,
				config.LogKeyError, err)
			continue
		}

		bday := card.Get(config.VCardBDAY)
		if bday == nil || bday.Value == "" {
			continue
		}

		birthDate, yearKnown, err := parseVCardDate(bday.Value)
		if err != nil {
			slog.Debug(config.MsgSkippedDate,
				config.LogKeyComponent, config.CompEngine,
				config.LogKeyValue, bday.Value)
			continue
		}

		// Name Strategy: FN (Formatted) > N (Structured) > Fallback
		name := config.FallbackName
		if fn := card.Get(config.VCardFN); fn != nil {
			name = fn.Value
		} else if n := card.Get(config.VCardN); n != nil {
			name = n.Value
		}

		return Person{Name: name, DateOfBirth: birthDate, YearKnown: yearKnown}, nil
	}

	return Person{}, errors.New(config.ErrNoBirthday)
}

// parseVCardDate handles the vCard BDAY formats seen in the wild.
func parseVCardDate(value string) (CalendarDate, bool, error) {
	// Full dates (Year known)
	formatsWithYear := []string{
		config.DateFormatFullDash,
		config.DateFormatFullBasic,
		config.DateFormatRFC3339,
		config.DateFormatFullT,
	}

	for _, f := range formatsWithYear {
		if t, err := time.Parse(f, value); err == nil {
			return DateFromTime(t), true, nil
		}
	}

	// Truncated dates (Year unknown) - vCard specific.
	// Leap year fallback keeps --02-29 representable.
	formatsWithoutYear := []string{config.DateFormatNoYearD, config.DateFormatNoYearB}
	for _, f := range formatsWithoutYear {
		if t, err := time.Parse(f, value); err == nil {
			d := DateFromTime(t)
			d.Year = config.DefaultLeapYear
			return d, false, nil
		}
	}

	return CalendarDate{}, false, errors.New(config.ErrDateParse)
}
