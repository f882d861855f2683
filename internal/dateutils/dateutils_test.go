package dateutils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDayMonth(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		expectedM time.Month
		expectedD int
		hasError  bool
	}{
		{"regular date", "02/05", time.May, 2, false},
		{"end of year", "31/12", time.December, 31, false},
		{"leap day parses", "29/02", time.February, 29, false},
		{"invalid day", "32/01", 0, 0, true},
		{"invalid month", "01/13", 0, 0, true},
		{"not a date", "ab/cd", 0, 0, true},
		{"empty", "", 0, 0, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			date, err := ParseDayMonth(tc.input)
			if tc.hasError {
				assert.Error(t, err)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tc.expectedM, date.Month())
				assert.Equal(t, tc.expectedD, date.Day())
			}
		})
	}
}

func TestResolveYear(t *testing.T) {
	tests := []struct {
		name     string
		dayMonth string
		emission time.Time
		expected time.Time
	}{
		{
			name:     "same month as emission",
			dayMonth: "02/05",
			emission: time.Date(2020, time.May, 16, 0, 0, 0, 0, time.UTC),
			expected: time.Date(2020, time.May, 2, 0, 0, 0, 0, time.UTC),
		},
		{
			name:     "earlier month keeps emission year",
			dayMonth: "20/04",
			emission: time.Date(2020, time.May, 16, 0, 0, 0, 0, time.UTC),
			expected: time.Date(2020, time.April, 20, 0, 0, 0, 0, time.UTC),
		},
		{
			name:     "later month rolls back a year",
			dayMonth: "18/12",
			emission: time.Date(2020, time.January, 15, 0, 0, 0, 0, time.UTC),
			expected: time.Date(2019, time.December, 18, 0, 0, 0, 0, time.UTC),
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			date, err := ResolveYear(tc.dayMonth, tc.emission)
			require.NoError(t, err)
			assert.Equal(t, tc.expected, date)
		})
	}
}

func TestParseEmission(t *testing.T) {
	date, err := ParseEmission("16/05/2020")
	require.NoError(t, err)
	assert.Equal(t, 2020, date.Year())
	assert.Equal(t, time.May, date.Month())
	assert.Equal(t, 16, date.Day())

	_, err = ParseEmission("2020-05-16")
	assert.Error(t, err)
}

func TestParseShort(t *testing.T) {
	date, err := ParseShort("15/11/14")
	require.NoError(t, err)
	assert.Equal(t, 2014, date.Year())
	assert.Equal(t, time.November, date.Month())
	assert.Equal(t, 15, date.Day())

	_, err = ParseShort("15/11/2014")
	assert.Error(t, err)
}

func TestToISO(t *testing.T) {
	date := time.Date(2020, time.May, 2, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, "2020-05-02", ToISO(date))
}
