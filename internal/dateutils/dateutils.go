// Package dateutils provides the date handling used by the tariff wire
// protocol, which transmits every date as an 8-digit YYYYMMDD string.
package dateutils

import (
	"fmt"
	"strings"
	"time"
)

// Wire and display layouts used by the protocol.
const (
	WireLayout    = "20060102"
	DisplayLayout = "02/01/2006"
	ISOLayout     = "2006-01-02"
)

// ToWireDate normalizes a date string to the 8-digit wire form by
// stripping every non-digit character. Accepts input already in wire form
// or with any separator convention ("1985-04-12", "12/04/1985", ...).
// Returns the empty string when the input carries no digits.
func ToWireDate(dateStr string) string {
	var b strings.Builder
	b.Grow(len(dateStr))
	for _, r := range dateStr {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// ParseWireDate parses an 8-digit wire date into a time.Time.
func ParseWireDate(wire string) (time.Time, error) {
	t, err := time.Parse(WireLayout, wire)
	if err != nil {
		return time.Time{}, fmt.Errorf("unable to parse wire date '%s': %w", wire, err)
	}
	return t, nil
}

// FormatWireDate renders a time.Time in the 8-digit wire form.
func FormatWireDate(date time.Time) string {
	if date.IsZero() {
		return ""
	}
	return date.Format(WireLayout)
}

// ToDisplayDate converts a wire date to the DD/MM/YYYY display form.
// Inputs that do not parse are returned unchanged rather than dropped.
func ToDisplayDate(wire string) string {
	t, err := ParseWireDate(wire)
	if err != nil {
		return wire
	}
	return t.Format(DisplayLayout)
}

// IsWireDate reports whether a string is already in the 8-digit wire form.
func IsWireDate(s string) bool {
	if len(s) != 8 {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
