package engine

// Person is the subject of an age calculation, typically imported from a
// vCard to pre-fill the form. It decouples the UI from the vCard decoding.
type Person struct {
	// Name is the display name (Formatted Name or Structured Name).
	Name string

	// DateOfBirth is the parsed birth date. When YearKnown is false the
	// year holds the leap-safe fallback and must not be trusted.
	DateOfBirth CalendarDate

	// YearKnown indicates if the vCard contained a year or just --MM-DD.
	YearKnown bool
}
