package tzalign

import (
	"fmt"
	"time"
)

// AlignToDay snaps an instant to the start (Down) or end (Up) of its calendar
// day in the given zone. The day boundary is a local concept, so the zone
// decides where the day starts; the result is converted back into the zone
// association the input carried. Alignment is transition-safe: on a
// spring-forward day the boundary picks the offset actually in effect at the
// boundary's wall clock, which may differ from the input's offset.
func AlignToDay(z Zoned, zone *Zone, direction Direction) (Zoned, error) {
	local, err := localize(z, zone)
	if err != nil {
		return Zoned{}, err
	}

	if alignedToDay(local.t, direction) {
		return z, nil
	}

	year, month, day := local.t.Date()
	boundary := NaiveDate(year, month, day)

	if direction == Up {
		// Start of the next day minus one microsecond, so month and year
		// rollover stays correct.
		boundary = boundary.AddDays(1).Add(-time.Microsecond)
	}

	adjusted, err := Attach(boundary, zone, Policy{})
	if err != nil {
		return Zoned{}, err
	}

	return Convert(adjusted, z.zone)
}

// AlignToWeek snaps an instant to the start or end of its calendar week in the
// given zone. Weeks start on Monday. The local weekday decides the shift, the
// shift moves whole days on the wall clock, and the final snap delegates to
// AlignToDay, so a transition inside the shifted week cannot drift the result.
func AlignToWeek(z Zoned, zone *Zone, direction Direction) (Zoned, error) {
	local, err := localize(z, zone)
	if err != nil {
		return Zoned{}, err
	}

	weekday := local.Naive().Weekday()

	days := -weekday
	if direction == Up {
		days = 6 - weekday
	}

	shifted, err := OffsetDate(local, time.Duration(days)*24*time.Hour, Policy{})
	if err != nil {
		return Zoned{}, err
	}

	aligned, err := AlignToDay(shifted, zone, direction)
	if err != nil {
		return Zoned{}, err
	}

	return Convert(aligned, z.zone)
}

// AlignToMonth snaps an instant to the start or end of its calendar month in
// the given zone, leap-year aware, delegating the final snap to AlignToDay.
func AlignToMonth(z Zoned, zone *Zone, direction Direction) (Zoned, error) {
	local, err := localize(z, zone)
	if err != nil {
		return Zoned{}, err
	}

	year, month, _ := local.t.Date()
	hour, minute, second := local.t.Clock()

	day := 1
	if direction == Up {
		day = daysInMonth(year, month)
	}

	target := NewNaive(year, month, day, hour, minute, second, local.t.Nanosecond())

	adjusted, err := Attach(target, zone, Policy{})
	if err != nil {
		return Zoned{}, err
	}

	aligned, err := AlignToDay(adjusted, zone, direction)
	if err != nil {
		return Zoned{}, err
	}

	return Convert(aligned, z.zone)
}

// AlignRangeToDay aligns start down and end up to their day boundaries.
// Fails with ErrInvalidRange if start is after end.
func AlignRangeToDay(start, end Zoned, zone *Zone) (Interval[Zoned], error) {
	return alignRange(start, end, zone, AlignToDay)
}

// AlignRangeToWeek aligns start down and end up to their week boundaries.
// Fails with ErrInvalidRange if start is after end.
func AlignRangeToWeek(start, end Zoned, zone *Zone) (Interval[Zoned], error) {
	return alignRange(start, end, zone, AlignToWeek)
}

// AlignRangeToMonth aligns start down and end up to their month boundaries.
// Fails with ErrInvalidRange if start is after end.
func AlignRangeToMonth(start, end Zoned, zone *Zone) (Interval[Zoned], error) {
	return alignRange(start, end, zone, AlignToMonth)
}

// alignRange applies one aligner to both ends of a validated range.
func alignRange(
	start, end Zoned,
	zone *Zone,
	align func(Zoned, *Zone, Direction) (Zoned, error),
) (Interval[Zoned], error) {
	if start.zone == nil || end.zone == nil {
		return Interval[Zoned]{}, ErrNotTimezoneAware
	}

	if start.After(end) {
		return Interval[Zoned]{}, fmt.Errorf("%w: %s - %s", ErrInvalidRange, start, end)
	}

	alignedStart, err := align(start, zone, Down)
	if err != nil {
		return Interval[Zoned]{}, err
	}

	alignedEnd, err := align(end, zone, Up)
	if err != nil {
		return Interval[Zoned]{}, err
	}

	return Interval[Zoned]{Start: alignedStart, End: alignedEnd}, nil
}

// localize validates the inputs shared by the aligners and converts the
// instant into the alignment zone.
func localize(z Zoned, zone *Zone) (Zoned, error) {
	if z.zone == nil {
		return Zoned{}, ErrNotTimezoneAware
	}

	if zone == nil {
		return Zoned{}, fmt.Errorf("%w: a timezone is required to align", ErrInvalidArgument)
	}

	return Convert(z, zone)
}

// alignedToDay reports whether the local time already sits exactly on the
// requested day boundary. Boundaries use microsecond resolution.
func alignedToDay(t time.Time, direction Direction) bool {
	hour, minute, second := t.Clock()

	if direction == Down {
		return hour == 0 && minute == 0 && second == 0 && t.Nanosecond() == 0
	}

	return hour == 23 && minute == 59 && second == 59 &&
		time.Duration(t.Nanosecond()) == 999999*time.Microsecond
}

// daysInMonth returns the day count of a month, leap-year aware.
func daysInMonth(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
