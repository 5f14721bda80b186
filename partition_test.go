package tzalign

import (
	"iter"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// pair is a collected week partition.
type pair[T Moment] struct {
	start, end T
}

// collectPairs drains a partition sequence into a slice.
func collectPairs[T Moment](seq iter.Seq2[T, T]) []pair[T] {
	var out []pair[T]
	for s, e := range seq {
		out = append(out, pair[T]{start: s, end: e})
	}

	return out
}

// TestWeeksForward verifies the calendar-week split including partial first
// and last weeks.
func TestWeeksForward(t *testing.T) {
	t.Parallel()

	// Sunday to Sunday: a one-day partial week, then a full week.
	seq, err := Weeks(NaiveDate(2017, time.January, 1), NaiveDate(2017, time.January, 8))
	require.NoError(t, err)
	require.Equal(t, []pair[Naive]{
		{NaiveDate(2017, time.January, 1), NaiveDate(2017, time.January, 1)},
		{NaiveDate(2017, time.January, 2), NaiveDate(2017, time.January, 8)},
	}, collectPairs(seq))

	// Monday to Sunday: exactly one full week.
	seq, err = Weeks(NaiveDate(2017, time.January, 2), NaiveDate(2017, time.January, 8))
	require.NoError(t, err)
	require.Equal(t, []pair[Naive]{
		{NaiveDate(2017, time.January, 2), NaiveDate(2017, time.January, 8)},
	}, collectPairs(seq))

	// Thursday to the following Thursday: two partial weeks.
	seq, err = Weeks(NaiveDate(2017, time.January, 5), NaiveDate(2017, time.January, 12))
	require.NoError(t, err)
	require.Equal(t, []pair[Naive]{
		{NaiveDate(2017, time.January, 5), NaiveDate(2017, time.January, 8)},
		{NaiveDate(2017, time.January, 9), NaiveDate(2017, time.January, 12)},
	}, collectPairs(seq))
}

// TestWeeksSinglePoint verifies start == end yields exactly one partition.
func TestWeeksSinglePoint(t *testing.T) {
	t.Parallel()

	seq, err := Weeks(NaiveDate(2017, time.January, 1), NaiveDate(2017, time.January, 1))
	require.NoError(t, err)
	require.Equal(t, []pair[Naive]{
		{NaiveDate(2017, time.January, 1), NaiveDate(2017, time.January, 1)},
	}, collectPairs(seq))
}

// TestWeeksInsideOneWeek verifies a span that never reaches a week boundary
// yields a single partition bounded by the inputs.
func TestWeeksInsideOneWeek(t *testing.T) {
	t.Parallel()

	seq, err := Weeks(NaiveDate(2017, time.January, 5), NaiveDate(2017, time.January, 6))
	require.NoError(t, err)
	require.Equal(t, []pair[Naive]{
		{NaiveDate(2017, time.January, 5), NaiveDate(2017, time.January, 6)},
	}, collectPairs(seq))
}

// TestWeeksBackward verifies the reversed direction yields reversed pairs.
func TestWeeksBackward(t *testing.T) {
	t.Parallel()

	seq, err := Weeks(NaiveDate(2017, time.January, 12), NaiveDate(2017, time.January, 5))
	require.NoError(t, err)
	require.Equal(t, []pair[Naive]{
		{NaiveDate(2017, time.January, 12), NaiveDate(2017, time.January, 9)},
		{NaiveDate(2017, time.January, 8), NaiveDate(2017, time.January, 5)},
	}, collectPairs(seq))
}

// TestWeeksCoverage verifies partitions cover the span with no gaps: each
// partition starts the day after the previous one ends.
func TestWeeksCoverage(t *testing.T) {
	t.Parallel()

	zurich := mustZone(t, "Europe/Zurich")

	// The span crosses the 2016 spring-forward transition.
	start := mustAttach(t, NewNaive(2016, time.March, 23, 10, 0, 0, 0), zurich)
	end := mustAttach(t, NewNaive(2016, time.April, 6, 10, 0, 0, 0), zurich)

	seq, err := Weeks(start, end)
	require.NoError(t, err)

	partitions := collectPairs(seq)
	require.Len(t, partitions, 3)

	require.Equal(t, start, partitions[0].start)
	require.Equal(t, end, partitions[len(partitions)-1].end)

	for i := 1; i < len(partitions); i++ {
		previousEnd := partitions[i-1].end
		// Wall clocks advance exactly one day between partitions even when
		// the day in between is 23 physical hours long.
		require.Equal(t,
			previousEnd.Naive().AddDays(1),
			partitions[i].start.Naive())
	}

	// Week boundaries fall on Sundays.
	require.Equal(t, 6, partitions[0].end.Naive().Weekday())
	require.Equal(t, 6, partitions[1].end.Naive().Weekday())
}

// TestWeeksRejectsZeroZoned verifies zero Zoned bounds are rejected eagerly.
func TestWeeksRejectsZeroZoned(t *testing.T) {
	t.Parallel()

	_, err := Weeks(Zoned{}, Now())
	require.ErrorIs(t, err, ErrNotTimezoneAware)
}

// TestWeekNumber verifies the ISO week number for both value kinds.
func TestWeekNumber(t *testing.T) {
	t.Parallel()

	require.Equal(t, 52, WeekNumber(NaiveDate(2017, time.January, 1)))
	require.Equal(t, 1, WeekNumber(NaiveDate(2017, time.January, 2)))

	zurich := mustZone(t, "Europe/Zurich")
	z := mustAttach(t, NewNaive(2016, time.March, 28, 0, 30, 0, 0), zurich)
	require.Equal(t, 13, WeekNumber(z))
}
