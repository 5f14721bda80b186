package tzalign

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// TestIsWholeDay verifies the whole-day predicate for both accepted end
// conventions and the rejected near-misses.
func TestIsWholeDay(t *testing.T) {
	t.Parallel()

	zurich := mustZone(t, "Europe/Zurich")

	midnight := mustAttach(t, NaiveDate(2015, time.June, 30), zurich)
	nextMidnight := mustAttach(t, NaiveDate(2015, time.July, 1), zurich)
	lastSecond := mustAttach(t, NewNaive(2015, time.June, 30, 23, 59, 59, 0), zurich)

	whole, err := IsWholeDay(midnight, nextMidnight, zurich)
	require.NoError(t, err)
	require.True(t, whole)

	whole, err = IsWholeDay(midnight, lastSecond, zurich)
	require.NoError(t, err)
	require.True(t, whole)

	// One hour is not a day.
	oneAM := mustAttach(t, NewNaive(2015, time.June, 30, 1, 0, 0, 0), zurich)

	whole, err = IsWholeDay(midnight, oneAM, zurich)
	require.NoError(t, err)
	require.False(t, whole)

	// One second short.
	almost := mustAttach(t, NewNaive(2015, time.June, 30, 23, 59, 58, 0), zurich)

	whole, err = IsWholeDay(midnight, almost, zurich)
	require.NoError(t, err)
	require.False(t, whole)

	// A start nudged past midnight fails through the span length.
	nudged := mustAttach(t, NewNaive(2015, time.June, 30, 0, 0, 0, 999000), zurich)

	whole, err = IsWholeDay(nudged, lastSecond, zurich)
	require.NoError(t, err)
	require.False(t, whole)
}

// TestIsWholeDayOnTransitionDays verifies the predicate judges the local wall
// clock, not the physical span: the 25-hour and 23-hour days both count, and
// only in the zone whose days they are.
func TestIsWholeDayOnTransitionDays(t *testing.T) {
	t.Parallel()

	zurich := mustZone(t, "Europe/Zurich")
	istanbul := mustZone(t, "Europe/Istanbul")

	for _, day := range []Naive{
		NaiveDate(2014, time.October, 26), // fall-back, 25 physical hours
		NaiveDate(2015, time.March, 29),   // spring-forward, 23 physical hours
	} {
		start, err := Standardize(day, zurich)
		require.NoError(t, err)

		end, err := Standardize(day.Add(24*time.Hour-time.Second), zurich)
		require.NoError(t, err)

		whole, err := IsWholeDay(start, end, zurich)
		require.NoError(t, err)
		require.True(t, whole)

		whole, err = IsWholeDay(start, end, istanbul)
		require.NoError(t, err)
		require.False(t, whole)
	}
}

// TestIsWholeDayRejectsInvalidRange verifies end before start fails.
func TestIsWholeDayRejectsInvalidRange(t *testing.T) {
	t.Parallel()

	zurich := mustZone(t, "Europe/Zurich")

	start := mustAttach(t, NaiveDate(2015, time.July, 1), zurich)
	end := mustAttach(t, NaiveDate(2015, time.June, 30), zurich)

	_, err := IsWholeDay(start, end, zurich)
	require.ErrorIs(t, err, ErrInvalidRange)
}

// TestIsWholeDayRequiresAwareness verifies naive input is rejected.
func TestIsWholeDayRequiresAwareness(t *testing.T) {
	t.Parallel()

	zurich := mustZone(t, "Europe/Zurich")

	_, err := IsWholeDay(Zoned{}, Now(), zurich)
	require.ErrorIs(t, err, ErrNotTimezoneAware)
}

// TestOverlaps verifies the inclusive overlap predicate for both kinds.
func TestOverlaps(t *testing.T) {
	t.Parallel()

	noon := NewNaive(2013, time.January, 1, 12, 0, 0, 0)
	one := NewNaive(2013, time.January, 1, 13, 0, 0, 0)
	eleven := NewNaive(2013, time.January, 1, 11, 0, 0, 0)
	justBeforeNoon := NewNaive(2013, time.January, 1, 11, 59, 59, 0)

	require.True(t, Overlaps(noon, one, noon, one))
	require.True(t, Overlaps(eleven, noon, noon, one))
	require.False(t, Overlaps(eleven, justBeforeNoon, noon, one))

	zurich := mustZone(t, "Europe/Zurich")
	require.True(t, Overlaps(
		mustAttach(t, eleven, zurich), mustAttach(t, noon, zurich),
		mustAttach(t, noon, zurich), mustAttach(t, one, zurich)))
}

// TestCountOverlaps verifies counting over a span list.
func TestCountOverlaps(t *testing.T) {
	t.Parallel()

	spans := []Interval[Naive]{
		{NewNaive(2015, time.January, 1, 10, 0, 0, 0), NewNaive(2015, time.January, 1, 11, 0, 0, 0)},
		{NewNaive(2015, time.January, 1, 12, 0, 0, 0), NewNaive(2015, time.January, 1, 13, 0, 0, 0)},
	}

	count := CountOverlaps(spans,
		NewNaive(2015, time.January, 1, 10, 0, 0, 0),
		NewNaive(2015, time.January, 10, 13, 0, 0, 0))
	require.Equal(t, 2, count)
}

// TestParseTime verifies the HH:MM parser and its error cases.
func TestParseTime(t *testing.T) {
	t.Parallel()

	tod, err := ParseTime("00:00")
	require.NoError(t, err)
	require.Equal(t, TimeOfDay{}, tod)

	tod, err = ParseTime("24:00")
	require.NoError(t, err)
	require.Equal(t, TimeOfDay{}, tod)

	tod, err = ParseTime("23:59")
	require.NoError(t, err)
	require.Equal(t, TimeOfDay{Hour: 23, Minute: 59}, tod)

	for _, input := range []string{"99:99", "noon", "12", "12:xx"} {
		_, err = ParseTime(input)
		require.ErrorIs(t, err, ErrInvalidArgument, input)
	}
}

// TestDayRange verifies the plain same-day case and the rollover when the end
// time lands before the start time.
func TestDayRange(t *testing.T) {
	t.Parallel()

	zurich := mustZone(t, "Europe/Zurich")
	day := mustAttach(t, NaiveDate(2015, time.January, 1), zurich)

	span, err := DayRange(day, TimeOfDay{Hour: 12}, TimeOfDay{Hour: 18}, Policy{})
	require.NoError(t, err)
	require.Equal(t, mustAttach(t, NewNaive(2015, time.January, 1, 12, 0, 0, 0), zurich), span.Start)
	require.Equal(t, mustAttach(t, NewNaive(2015, time.January, 1, 18, 0, 0, 0), zurich), span.End)

	// End before start means the following day.
	span, err = DayRange(day, TimeOfDay{Hour: 12}, TimeOfDay{Hour: 11}, Policy{})
	require.NoError(t, err)
	require.Equal(t, mustAttach(t, NewNaive(2015, time.January, 2, 11, 0, 0, 0), zurich), span.End)
}

// TestDayRangeRequiresAwareness verifies the zero Zoned is rejected.
func TestDayRangeRequiresAwareness(t *testing.T) {
	t.Parallel()

	_, err := DayRange(Zoned{}, TimeOfDay{}, TimeOfDay{Hour: 1}, Policy{})
	require.ErrorIs(t, err, ErrNotTimezoneAware)
}
