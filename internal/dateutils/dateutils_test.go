package dateutils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToWireDate(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"Already wire form", "19850412", "19850412"},
		{"ISO separators", "1985-04-12", "19850412"},
		{"Slash separators", "1985/04/12", "19850412"},
		{"Dotted", "12.04.1985", "12041985"},
		{"Mixed noise", " 1985-04-12 ", "19850412"},
		{"Empty", "", ""},
		{"No digits", "unknown", ""},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, ToWireDate(tc.input))
		})
	}
}

func TestParseWireDate(t *testing.T) {
	date, err := ParseWireDate("20260115")
	require.NoError(t, err)
	assert.Equal(t, 2026, date.Year())
	assert.Equal(t, time.January, date.Month())
	assert.Equal(t, 15, date.Day())

	_, err = ParseWireDate("2026-01-15")
	assert.Error(t, err)
}

func TestFormatWireDate(t *testing.T) {
	assert.Equal(t, "", FormatWireDate(time.Time{}))

	date := time.Date(2026, time.January, 15, 10, 0, 0, 0, time.UTC)
	assert.Equal(t, "20260115", FormatWireDate(date))
}

func TestToDisplayDate(t *testing.T) {
	assert.Equal(t, "15/01/2026", ToDisplayDate("20260115"))
	// Unparseable input comes back unchanged
	assert.Equal(t, "not-a-date", ToDisplayDate("not-a-date"))
}

func TestIsWireDate(t *testing.T) {
	assert.True(t, IsWireDate("19850412"))
	assert.False(t, IsWireDate("1985-04-12"))
	assert.False(t, IsWireDate("1985041"))
	assert.False(t, IsWireDate("19850412x"))
}
