// Package timerange parses the "HH:MM - HH:MM" class time format.
package timerange

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
)

// ErrMalformed is returned when a string does not match "HH:MM - HH:MM".
// Callers treat the slot as unparseable: it still counts as a class for the
// day, it just contributes nothing to hour totals.
var ErrMalformed = errors.New("time range: malformed")

// Anchored; hours 00-23, minutes 00-59, literal " - " separator.
var rangeRx = regexp.MustCompile(`^([01][0-9]|2[0-3]):([0-5][0-9]) - ([01][0-9]|2[0-3]):([0-5][0-9])$`)

// Range is a parsed time range as minutes from midnight.
type Range struct {
	StartMinutes int
	EndMinutes   int
}

// Parse matches s against the "HH:MM - HH:MM" pattern.
func Parse(s string) (Range, error) {
	m := rangeRx.FindStringSubmatch(s)
	if m == nil {
		return Range{}, fmt.Errorf("%w: %q", ErrMalformed, s)
	}
	h1, _ := strconv.Atoi(m[1])
	m1, _ := strconv.Atoi(m[2])
	h2, _ := strconv.Atoi(m[3])
	m2, _ := strconv.Atoi(m[4])
	return Range{StartMinutes: h1*60 + m1, EndMinutes: h2*60 + m2}, nil
}

// DurationMinutes returns the span length in minutes. A reversed range
// (end before start) is clamped to 0 rather than rejected: the slot keeps
// counting as a class but contributes no hours.
func (r Range) DurationMinutes() int {
	d := r.EndMinutes - r.StartMinutes
	if d < 0 {
		return 0
	}
	return d
}

// Hours returns the clamped duration in fractional hours.
func (r Range) Hours() float64 {
	return float64(r.DurationMinutes()) / 60
}

// String re-serializes the range in the canonical "HH:MM - HH:MM" form.
// For any input accepted by Parse, Parse(s).String() == s.
func (r Range) String() string {
	return fmt.Sprintf("%02d:%02d - %02d:%02d",
		r.StartMinutes/60, r.StartMinutes%60, r.EndMinutes/60, r.EndMinutes%60)
}
