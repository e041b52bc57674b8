package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Fixed reference day for every parser test: 15 Jun 2024.
var testToday = Date(2024, time.June, 15)

func TestParseNumericSeparators(t *testing.T) {
	want := Date(2026, time.August, 15)
	for _, raw := range []string{"15/08/2026", "15-08-2026", "15.08.2026"} {
		got, ok := Parse(raw, testToday)
		require.True(t, ok, raw)
		assert.Equal(t, want, got, raw)
	}
}

func TestParseISO(t *testing.T) {
	cases := []struct {
		raw  string
		want time.Time
	}{
		{"2026-03-05", Date(2026, time.March, 5)},
		{"2026/3/5", Date(2026, time.March, 5)},
		{"2026.12.31", Date(2026, time.December, 31)},
	}
	for _, tc := range cases {
		got, ok := Parse(tc.raw, testToday)
		require.True(t, ok, tc.raw)
		assert.Equal(t, tc.want, got, tc.raw)
	}
}

func TestParseISORejectsImpossibleDates(t *testing.T) {
	for _, raw := range []string{"2026-02-30", "2026-13-01", "2026/00/10"} {
		_, ok := Parse(raw, testToday)
		assert.False(t, ok, raw)
	}
}

func TestParseGenericLiterals(t *testing.T) {
	cases := []struct {
		raw  string
		want time.Time
	}{
		{"15 Aug 2026", Date(2026, time.August, 15)},
		{"2 January 2027", Date(2027, time.January, 2)},
		{"March 5, 2026", Date(2026, time.March, 5)},
		{"2026-03-05T10:30:00Z", Date(2026, time.March, 5)},
	}
	for _, tc := range cases {
		got, ok := Parse(tc.raw, testToday)
		require.True(t, ok, tc.raw)
		assert.Equal(t, tc.want, got, tc.raw)
	}
}

func TestParseTwoDigitYear(t *testing.T) {
	got, ok := Parse("15/08/26", testToday)
	require.True(t, ok)
	assert.Equal(t, Date(2026, time.August, 15), got)
}

func TestParseOmittedYearRollsForward(t *testing.T) {
	// "3 Jan" on 15 Jun 2024 refers to the next occurrence: 3 Jan 2025.
	got, ok := Parse("3 Jan", testToday)
	require.True(t, ok)
	assert.Equal(t, Date(2025, time.January, 3), got)

	// Same policy for the numeric form.
	got, ok = Parse("05/01", testToday)
	require.True(t, ok)
	assert.Equal(t, Date(2025, time.January, 5), got)

	// A future day/month in the current year stays in the current year.
	got, ok = Parse("20 Dec", testToday)
	require.True(t, ok)
	assert.Equal(t, Date(2024, time.December, 20), got)

	// Today itself does not roll forward.
	got, ok = Parse("15/06", testToday)
	require.True(t, ok)
	assert.Equal(t, testToday, got)
}

func TestParseMonthNameVariants(t *testing.T) {
	cases := []struct {
		raw  string
		want time.Time
	}{
		{"3 jan 2026", Date(2026, time.January, 3)},
		{"3-JAN-2026", Date(2026, time.January, 3)},
		{"3/September/2026", Date(2026, time.September, 3)},
		{"3 sept 2026", Date(2026, time.September, 3)},
	}
	for _, tc := range cases {
		got, ok := Parse(tc.raw, testToday)
		require.True(t, ok, tc.raw)
		assert.Equal(t, tc.want, got, tc.raw)
	}
}

func TestParseUnparseable(t *testing.T) {
	for _, raw := range []string{"", "   ", "invalid text", "TBD", "32/13/2026", "Q3 2026"} {
		_, ok := Parse(raw, testToday)
		assert.False(t, ok, "%q should be unparseable", raw)
	}
}

func TestMidnight(t *testing.T) {
	loc := time.FixedZone("IST", 5*3600+1800)
	late := time.Date(2024, time.June, 15, 23, 45, 0, 0, loc)
	assert.Equal(t, Date(2024, time.June, 15), Midnight(late))
}

func TestFormatDate(t *testing.T) {
	assert.Equal(t, "05 Mar 2026", FormatDate(Date(2026, time.March, 5)))
}
