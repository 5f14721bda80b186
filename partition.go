package tzalign

import (
	"iter"
	"time"
)

// Weeks partitions the span from start to end inclusive into one sub-interval
// per calendar week touched, preserving the direction of the input: a start
// after its end yields reversed pairs. The first and last pairs may be partial
// weeks; full weeks run Monday through Sunday. A span inside a single week
// yields exactly one pair (start, end).
//
// The first week boundary is found by shifting whole days on the wall clock,
// not by snapping, so the partial first week is not distorted; subsequent
// boundaries step seven days at a time through Range and are therefore
// transition-safe. Zoned inputs in different zones are reconciled into the
// start's zone first.
func Weeks[T Moment](start, end T) (iter.Seq2[T, T], error) {
	if s, ok := any(start).(Zoned); ok {
		e := any(end).(Zoned)

		if s.zone == nil || e.zone == nil {
			return nil, ErrNotTimezoneAware
		}

		if e.zone != s.zone {
			converted, err := Convert(e, s.zone)
			if err != nil {
				return nil, err
			}

			end = any(converted).(T)
		}
	}

	forward := compareMoments(start, end) <= 0
	weekday := localWall(start).Weekday()

	dayStep := 24 * time.Hour
	weekStep := 7 * dayStep
	shift := 6 - weekday

	if !forward {
		dayStep, weekStep = -dayStep, -weekStep
		shift = -weekday
	}

	firstBoundary, err := OffsetDate(start, time.Duration(shift)*24*time.Hour, Policy{})
	if err != nil {
		return nil, err
	}

	// The nearest week boundary lies past end: the whole span is one
	// partial week.
	cmp := compareMoments(firstBoundary, end)
	if (forward && cmp > 0) || (!forward && cmp < 0) {
		return func(yield func(T, T) bool) {
			yield(start, end)
		}, nil
	}

	boundaries, err := Range(firstBoundary, end, weekStep, RangeOptions{})
	if err != nil {
		return nil, err
	}

	return func(yield func(T, T) bool) {
		partitionStart := start

		var lastBoundary T

		for boundary := range boundaries {
			if !yield(partitionStart, boundary) {
				return
			}

			partitionStart, _ = OffsetDate(boundary, dayStep, Policy{})
			lastBoundary = boundary
		}

		// The final boundary may land exactly on end, in which case it has
		// already been yielded.
		if compareMoments(lastBoundary, end) != 0 {
			yield(partitionStart, end)
		}
	}, nil
}

// WeekNumber returns the ISO 8601 week number of the value's local wall clock.
func WeekNumber[T Moment](v T) int {
	_, week := localWall(v).wall.ISOWeek()

	return week
}
