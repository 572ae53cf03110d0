package parse

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDateFormats(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"01/15/2026", "2026-01-15"},
		{"01-15-2026", "2026-01-15"},
		{"2026-01-15", "2026-01-15"},
		{"January 15, 2026", "2026-01-15"},
		{"Jan 15, 2026", "2026-01-15"},
		{"15 January 2026", "2026-01-15"},
		{" 01/15/2026. ", "2026-01-15"},
	}
	for _, tc := range cases {
		got, ok := ParseDate(tc.in)
		require.True(t, ok, "should parse %q", tc.in)
		assert.Equal(t, tc.want, got.Format("2006-01-02"), "input %q", tc.in)
	}
}

func TestParseDateAmbiguityPrefersMonthFirst(t *testing.T) {
	got, ok := ParseDate("03/04/2026")
	require.True(t, ok)
	assert.Equal(t, "2026-03-04", got.Format("2006-01-02"))
}

func TestParseDateDayFirstWhenMonthImpossible(t *testing.T) {
	// 25 cannot be a month, so the day-first layout resolves it
	got, ok := ParseDate("25/03/2026")
	require.True(t, ok)
	assert.Equal(t, "2026-03-25", got.Format("2006-01-02"))
}

func TestParseDateRejectsGarbage(t *testing.T) {
	for _, in := range []string{"", "not a date", "13/45/2026", "2026"} {
		_, ok := ParseDate(in)
		assert.False(t, ok, "should reject %q", in)
	}
}

func TestSplitDateRangeDashFormattedDates(t *testing.T) {
	// dash-formatted dates joined by a spaced dash must not be torn apart
	start, end, ok := splitDateRange("01-15-2026 - 01-31-2026")
	require.True(t, ok)
	assert.Equal(t, "2026-01-15", start.Format("2006-01-02"))
	assert.Equal(t, "2026-01-31", end.Format("2006-01-02"))
}

func TestSplitDateRangeSeparators(t *testing.T) {
	for _, in := range []string{
		"01/01/2026 - 01/15/2026",
		"01/01/2026 to 01/15/2026",
		"01/01/2026 through 01/15/2026",
	} {
		start, end, ok := splitDateRange(in)
		require.True(t, ok, "should split %q", in)
		assert.Equal(t, "2026-01-01", start.Format("2006-01-02"))
		assert.Equal(t, "2026-01-15", end.Format("2006-01-02"))
	}
}

func TestSplitDateRangeRejectsReversedRange(t *testing.T) {
	_, _, ok := splitDateRange("01/15/2026 - 01/01/2026")
	assert.False(t, ok)
}
