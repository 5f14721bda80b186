package tzalign

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Overlaps reports whether the two inclusive spans share any point.
func Overlaps[T Moment](start, end, otherStart, otherEnd T) bool {
	if compareMoments(otherStart, start) <= 0 && compareMoments(start, otherEnd) <= 0 {
		return true
	}

	return compareMoments(start, otherStart) <= 0 && compareMoments(otherStart, end) <= 0
}

// CountOverlaps returns how many of the given spans overlap with the span
// from start to end.
func CountOverlaps[T Moment](spans []Interval[T], start, end T) int {
	count := 0

	for _, span := range spans {
		if Overlaps(start, end, span.Start, span.End) {
			count++
		}
	}

	return count
}

// IsWholeDay reports whether the span from start to end covers whole calendar
// days in the given zone: the local start time is midnight, the local end
// time is either midnight or 23:59:59, and at least 23h59m59s lie between
// them. The clock checks work at second granularity; sub-second precision
// only matters through the span length, so an end of 23:59:59.5 passes while
// a start nudged past midnight fails the length check. Fails with
// ErrInvalidRange when end precedes start.
func IsWholeDay(start, end Zoned, zone *Zone) (bool, error) {
	const wholeDaySpan = 24*time.Hour - time.Second

	localStart, err := localize(start, zone)
	if err != nil {
		return false, err
	}

	localEnd, err := localize(end, zone)
	if err != nil {
		return false, err
	}

	// The wall clocks carry the comparison: the local day runs midnight to
	// midnight regardless of how many physical hours the zone squeezed in.
	startWall, endWall := localStart.Naive(), localEnd.Naive()

	if startWall.After(endWall) {
		return false, fmt.Errorf("%w: %s - %s", ErrInvalidRange, start, end)
	}

	hour, minute, second := startWall.Clock()
	if hour != 0 || minute != 0 || second != 0 {
		return false, nil
	}

	hour, minute, second = endWall.Clock()

	atMidnight := hour == 0 && minute == 0 && second == 0
	atLastSecond := hour == 23 && minute == 59 && second == 59

	if !atMidnight && !atLastSecond {
		return false, nil
	}

	return endWall.wall.Sub(startWall.wall) >= wholeDaySpan, nil
}

// TimeOfDay is a clock time without a date.
type TimeOfDay struct {
	// Hour of the day, 0 through 23.
	Hour int
	// Minute of the hour, 0 through 59.
	Minute int
	// Second of the minute, 0 through 59.
	Second int
}

// ParseTime parses a "HH:MM" string into a TimeOfDay. The hour 24 wraps to 0,
// so "24:00" parses as midnight.
func ParseTime(s string) (TimeOfDay, error) {
	parts := strings.Split(s, ":")
	if len(parts) != 2 {
		return TimeOfDay{}, fmt.Errorf("%w: %q is not a HH:MM time", ErrInvalidArgument, s)
	}

	hour, err := strconv.Atoi(parts[0])
	if err != nil {
		return TimeOfDay{}, fmt.Errorf("%w: %q is not a HH:MM time", ErrInvalidArgument, s)
	}

	minute, err := strconv.Atoi(parts[1])
	if err != nil {
		return TimeOfDay{}, fmt.Errorf("%w: %q is not a HH:MM time", ErrInvalidArgument, s)
	}

	if hour == 24 {
		hour = 0
	}

	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return TimeOfDay{}, fmt.Errorf("%w: %q is out of range", ErrInvalidArgument, s)
	}

	return TimeOfDay{Hour: hour, Minute: minute}, nil
}

// DayRange builds the span covering startTime through endTime on the calendar
// day of the given instant, in that instant's zone. An end that lands before
// the start is taken to mean the following day. On a fall-back day the
// result can run backwards in physical time (02:30 standard to 03:00 DST);
// callers that need to catch that should pass a policy with FailOnAmbiguous.
func DayRange(day Zoned, startTime, endTime TimeOfDay, policy Policy) (Interval[Zoned], error) {
	if day.zone == nil {
		return Interval[Zoned]{}, ErrNotTimezoneAware
	}

	year, month, dayOfMonth := day.t.Date()

	start, err := Attach(
		NewNaive(year, month, dayOfMonth, startTime.Hour, startTime.Minute, startTime.Second, 0),
		day.zone, policy)
	if err != nil {
		return Interval[Zoned]{}, err
	}

	end, err := Attach(
		NewNaive(year, month, dayOfMonth, endTime.Hour, endTime.Minute, endTime.Second, 0),
		day.zone, policy)
	if err != nil {
		return Interval[Zoned]{}, err
	}

	if end.Before(start) {
		end, err = OffsetDate(end, 24*time.Hour, policy)
		if err != nil {
			return Interval[Zoned]{}, err
		}
	}

	return Interval[Zoned]{Start: start, End: end}, nil
}
