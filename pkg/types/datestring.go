package types

import (
	"fmt"
	"time"
)

const dateLayout = "2006-01-02"

// DateString is a local calendar date stored as "YYYY-MM-DD", with no
// timezone component. Zero padding keeps lexical ordering equal to
// chronological ordering, so date ranges can be compared as strings.
type DateString string

// NewDateString builds a DateString from the calendar part of t.
func NewDateString(t time.Time) DateString {
	return DateString(t.Format(dateLayout))
}

// NewDateStringFromString parses and validates a "YYYY-MM-DD" string.
func NewDateStringFromString(s string) (DateString, error) {
	ds := DateString(s)
	if err := ds.Validate(); err != nil {
		return "", err
	}
	return ds, nil
}

func (d DateString) String() string {
	return string(d)
}

// IsZero reports whether the value is empty (unset).
func (d DateString) IsZero() bool {
	return d == ""
}

// Validate checks the "YYYY-MM-DD" format. The value must be in canonical
// zero-padded form; time.Parse alone would accept "2026-9-7", which breaks
// lexical ordering.
func (d DateString) Validate() error {
	parsed, err := time.Parse(dateLayout, string(d))
	if err != nil || parsed.Format(dateLayout) != string(d) {
		return fmt.Errorf("invalid date string %q: expected YYYY-MM-DD", string(d))
	}
	return nil
}

// Before reports whether d is strictly earlier than other (lexical).
func (d DateString) Before(other DateString) bool {
	return string(d) < string(other)
}

// After reports whether d is strictly later than other (lexical).
func (d DateString) After(other DateString) bool {
	return string(d) > string(other)
}

// Time converts the date to a time.Time at midnight UTC.
func (d DateString) Time() (time.Time, error) {
	return time.Parse(dateLayout, string(d))
}
