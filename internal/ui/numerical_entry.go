package ui

import (
	"fyne.io/fyne/v2/driver/mobile"
	"fyne.io/fyne/v2/widget"
)

// NumericalEntry is a custom Entry widget that only accepts numeric input,
// optionally capped to a maximum number of digits (2 for day/month, 4 for
// year). It embeds widget.Entry to inherit all standard behavior.
type NumericalEntry struct {
	widget.Entry

	// MaxDigits limits the accepted length; 0 means unlimited.
	MaxDigits int
}

// NewNumericalEntry creates a new instance of NumericalEntry.
func NewNumericalEntry(maxDigits int) *NumericalEntry {
	entry := &NumericalEntry{MaxDigits: maxDigits}
	entry.ExtendBaseWidget(entry)
	return entry
}

// TypedRune intercepts text input events.
// It filters characters to allow only digits (0-9) within the length cap.
func (e *NumericalEntry) TypedRune(r rune) {
	if r < '0' || r > '9' {
		// Ignore non-numeric characters. Pasted data bypasses TypedRune;
		// the Validator handles that case.
		return
	}
	if e.MaxDigits > 0 && len(e.Entry.Text) >= e.MaxDigits {
		return
	}
	e.Entry.TypedRune(r)
}

// Keyboard overrides the default keyboard type so mobile devices show a
// numeric keypad.
func (e *NumericalEntry) Keyboard() mobile.KeyboardType {
	return mobile.NumberKeyboard
}
