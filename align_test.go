package tzalign

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// requireInstant asserts a Zoned identifies the given UTC instant.
func requireInstant(t *testing.T, expected time.Time, actual Zoned) {
	t.Helper()

	require.Equal(t, expected, actual.Time().UTC())
}

// TestAlignToDayDown verifies ordinary downward alignment, the preserved zone
// association and idempotence on already-aligned input.
func TestAlignToDayDown(t *testing.T) {
	t.Parallel()

	zurich := mustZone(t, "Europe/Zurich")

	unaligned, err := Standardize(NewNaive(2012, time.January, 24, 10, 0, 0, 0), UTC)
	require.NoError(t, err)

	aligned, err := AlignToDay(unaligned, zurich, Down)
	require.NoError(t, err)
	require.Same(t, UTC, aligned.Zone())
	// Local midnight in Zurich is 23:00 UTC the previous day.
	requireInstant(t, utcInstant(2012, time.January, 23, 23, 0, 0, 0), aligned)

	alreadyAligned := mustAttach(t, NaiveDate(2012, time.January, 1), zurich)

	same, err := AlignToDay(alreadyAligned, zurich, Down)
	require.NoError(t, err)
	require.Equal(t, alreadyAligned, same)
}

// TestAlignToDayUp verifies upward alignment and idempotence on the last
// microsecond of the day.
func TestAlignToDayUp(t *testing.T) {
	t.Parallel()

	zurich := mustZone(t, "Europe/Zurich")

	unaligned, err := Standardize(NewNaive(2012, time.January, 24, 10, 0, 0, 0), UTC)
	require.NoError(t, err)

	aligned, err := AlignToDay(unaligned, zurich, Up)
	require.NoError(t, err)
	require.Same(t, UTC, aligned.Zone())
	requireInstant(t, utcInstant(2012, time.January, 24, 22, 59, 59, 999999000), aligned)

	alreadyAligned := mustAttach(t, NewNaive(2012, time.January, 1, 23, 59, 59, 999999000), zurich)

	same, err := AlignToDay(alreadyAligned, zurich, Up)
	require.NoError(t, err)
	require.Equal(t, alreadyAligned, same)
}

// TestAlignToDaySpringForward pins the spring-forward day: local midnight is
// pre-transition, the day's last microsecond is post-transition.
func TestAlignToDaySpringForward(t *testing.T) {
	t.Parallel()

	zurich := mustZone(t, "Europe/Zurich")

	for _, hour := range []int{1, 4} {
		unaligned, err := Standardize(NewNaive(2016, time.March, 27, hour, 0, 0, 0), zurich)
		require.NoError(t, err)

		down, err := AlignToDay(unaligned, zurich, Down)
		require.NoError(t, err)
		requireInstant(t, utcInstant(2016, time.March, 26, 23, 0, 0, 0), down)

		up, err := AlignToDay(unaligned, zurich, Up)
		require.NoError(t, err)
		requireInstant(t, utcInstant(2016, time.March, 27, 21, 59, 59, 999999000), up)
	}
}

// TestAlignToDayFallBack pins the fall-back day: the day is 25 physical hours
// long and both boundaries resolve to the correct offsets.
func TestAlignToDayFallBack(t *testing.T) {
	t.Parallel()

	zurich := mustZone(t, "Europe/Zurich")

	for _, hour := range []int{1, 4} {
		unaligned, err := Standardize(NewNaive(2016, time.October, 30, hour, 0, 0, 0), zurich)
		require.NoError(t, err)

		down, err := AlignToDay(unaligned, zurich, Down)
		require.NoError(t, err)
		requireInstant(t, utcInstant(2016, time.October, 29, 22, 0, 0, 0), down)

		up, err := AlignToDay(unaligned, zurich, Up)
		require.NoError(t, err)
		requireInstant(t, utcInstant(2016, time.October, 30, 22, 59, 59, 999999000), up)
	}
}

// TestAlignToDayIdempotence verifies aligning twice equals aligning once,
// for both directions, including on a transition day.
func TestAlignToDayIdempotence(t *testing.T) {
	t.Parallel()

	zurich := mustZone(t, "Europe/Zurich")

	for _, direction := range []Direction{Down, Up} {
		unaligned, err := Standardize(NewNaive(2016, time.March, 27, 4, 0, 0, 0), zurich)
		require.NoError(t, err)

		once, err := AlignToDay(unaligned, zurich, direction)
		require.NoError(t, err)

		twice, err := AlignToDay(once, zurich, direction)
		require.NoError(t, err)
		require.Equal(t, once, twice)
	}
}

// TestAlignToDayRequiresAwareness verifies naive input is rejected.
func TestAlignToDayRequiresAwareness(t *testing.T) {
	t.Parallel()

	zurich := mustZone(t, "Europe/Zurich")

	_, err := AlignToDay(Zoned{}, zurich, Up)
	require.ErrorIs(t, err, ErrNotTimezoneAware)
}

// TestAlignToWeek verifies every day of a week aligns to the same Monday
// start and Sunday end, across the week containing a spring transition.
func TestAlignToWeek(t *testing.T) {
	t.Parallel()

	days := []int{28, 29, 30, 31}
	for _, day := range days {
		z := ZonedOf(utcInstant(2016, time.March, day, 15, 0, 0, 0), UTC)

		down, err := AlignToWeek(z, UTC, Down)
		require.NoError(t, err)
		requireInstant(t, utcInstant(2016, time.March, 28, 0, 0, 0, 0), down)

		up, err := AlignToWeek(z, UTC, Up)
		require.NoError(t, err)
		requireInstant(t, utcInstant(2016, time.April, 3, 23, 59, 59, 999999000), up)
	}

	for _, day := range []int{1, 2, 3} {
		z := ZonedOf(utcInstant(2016, time.April, day, 15, 0, 0, 0), UTC)

		down, err := AlignToWeek(z, UTC, Down)
		require.NoError(t, err)
		requireInstant(t, utcInstant(2016, time.March, 28, 0, 0, 0, 0), down)

		up, err := AlignToWeek(z, UTC, Up)
		require.NoError(t, err)
		requireInstant(t, utcInstant(2016, time.April, 3, 23, 59, 59, 999999000), up)
	}
}

// TestAlignToWeekAcrossTransition verifies the week shift does not drift when
// the week contains the spring-forward day.
func TestAlignToWeekAcrossTransition(t *testing.T) {
	t.Parallel()

	zurich := mustZone(t, "Europe/Zurich")

	// Friday 2016-04-01 belongs to the week starting Monday 2016-03-28,
	// one day after the transition.
	z := mustAttach(t, NewNaive(2016, time.April, 1, 0, 30, 0, 0), zurich)

	down, err := AlignToWeek(z, zurich, Down)
	require.NoError(t, err)
	require.Equal(t, NaiveDate(2016, time.March, 28), down.Naive())
	requireInstant(t, utcInstant(2016, time.March, 27, 22, 0, 0, 0), down)
}

// TestAlignToMonth verifies month boundaries, leap-year aware.
func TestAlignToMonth(t *testing.T) {
	t.Parallel()

	z := ZonedOf(utcInstant(2012, time.February, 26, 15, 0, 0, 0), UTC)

	down, err := AlignToMonth(z, UTC, Down)
	require.NoError(t, err)
	requireInstant(t, utcInstant(2012, time.February, 1, 0, 0, 0, 0), down)

	up, err := AlignToMonth(z, UTC, Up)
	require.NoError(t, err)
	requireInstant(t, utcInstant(2012, time.February, 29, 23, 59, 59, 999999000), up)
}

// TestAlignToMonthAcrossTransition verifies a month containing a transition
// still snaps to its local first and last day.
func TestAlignToMonthAcrossTransition(t *testing.T) {
	t.Parallel()

	zurich := mustZone(t, "Europe/Zurich")

	z := mustAttach(t, NewNaive(2016, time.March, 30, 10, 0, 0, 0), zurich)

	down, err := AlignToMonth(z, zurich, Down)
	require.NoError(t, err)
	// March 1st midnight is CET, an hour ahead of UTC.
	requireInstant(t, utcInstant(2016, time.February, 29, 23, 0, 0, 0), down)

	up, err := AlignToMonth(z, zurich, Up)
	require.NoError(t, err)
	// March 31st ends in CEST, two hours ahead.
	requireInstant(t, utcInstant(2016, time.March, 31, 21, 59, 59, 999999000), up)
}

// TestAlignRangeToDay verifies both ends align and the zone stays put.
func TestAlignRangeToDay(t *testing.T) {
	t.Parallel()

	zurich := mustZone(t, "Europe/Zurich")

	start := mustAttach(t, NewNaive(2015, time.January, 1, 10, 0, 0, 0), zurich)
	end := mustAttach(t, NewNaive(2015, time.January, 1, 11, 0, 0, 0), zurich)

	aligned, err := AlignRangeToDay(start, end, zurich)
	require.NoError(t, err)
	require.Equal(t, mustAttach(t, NaiveDate(2015, time.January, 1), zurich), aligned.Start)
	require.Equal(t,
		mustAttach(t, NewNaive(2015, time.January, 1, 23, 59, 59, 999999000), zurich),
		aligned.End)
}

// TestAlignRangeToWeek verifies an already week-aligned range is unchanged.
func TestAlignRangeToWeek(t *testing.T) {
	t.Parallel()

	start := ZonedOf(utcInstant(2016, time.March, 28, 0, 0, 0, 0), UTC)
	end := ZonedOf(utcInstant(2016, time.April, 3, 23, 59, 59, 999999000), UTC)

	aligned, err := AlignRangeToWeek(start, end, UTC)
	require.NoError(t, err)
	require.Equal(t, start, aligned.Start)
	require.Equal(t, end, aligned.End)
}

// TestAlignRangeRejectsInvalidRange verifies start after end fails.
func TestAlignRangeRejectsInvalidRange(t *testing.T) {
	t.Parallel()

	zurich := mustZone(t, "Europe/Zurich")

	start := mustAttach(t, NewNaive(2015, time.January, 2, 0, 0, 0, 0), zurich)
	end := mustAttach(t, NewNaive(2015, time.January, 1, 0, 0, 0, 0), zurich)

	for _, align := range []func(Zoned, Zoned, *Zone) (Interval[Zoned], error){
		AlignRangeToDay, AlignRangeToWeek, AlignRangeToMonth,
	} {
		_, err := align(start, end, zurich)
		require.ErrorIs(t, err, ErrInvalidRange)
	}
}
