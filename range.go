package tzalign

import (
	"errors"
	"fmt"
	"iter"
	"time"
)

// RangeOptions tunes how Range treats DST gaps.
type RangeOptions struct {
	// SkipMissing omits elements whose wall clock falls inside a
	// spring-forward gap instead of resolving them to an adjacent offset.
	SkipMissing bool
}

// Range returns a lazy, finite, restartable sequence of values from start to
// end inclusive, stepping by a fixed duration. Direction is inferred: a start
// after its end iterates backward, and a positive step is negated to match; a
// step that cannot reach end, or a zero step, fails eagerly with
// ErrInvalidArgument.
//
// Naive values use pure wall-clock arithmetic. Zoned values in a rule-based
// zone keep a timezone-free running wall clock and re-attach the zone only
// when producing each element, so across a fall-back overlap the same wall
// clock is produced once under each offset; both instants genuinely exist.
// Across a spring-forward gap a non-existent wall clock resolves to an
// adjacent offset, which can repeat an instant already seen, unless
// SkipMissing omits it. A differing end zone is converted into the start zone
// before iteration so termination is well-defined.
func Range[T Moment](start, end T, step time.Duration, opts RangeOptions) (iter.Seq[T], error) {
	switch s := any(start).(type) {
	case Naive:
		e := any(end).(Naive)

		step, sign, err := normalizeStep(s.Compare(e), step)
		if err != nil {
			return nil, err
		}

		return func(yield func(T) bool) {
			for cur := s; sign*cur.Compare(e) <= 0; cur = cur.Add(step) {
				if !yield(any(cur).(T)) {
					return
				}
			}
		}, nil
	case Zoned:
		e := any(end).(Zoned)

		if s.zone == nil || e.zone == nil {
			return nil, ErrNotTimezoneAware
		}

		if e.zone != s.zone {
			e, _ = Convert(e, s.zone)
		}

		step, sign, err := normalizeStep(s.Compare(e), step)
		if err != nil {
			return nil, err
		}

		if s.zone.fixed {
			return func(yield func(T) bool) {
				for cur := s.t; sign*cur.Compare(e.t) <= 0; cur = cur.Add(step) {
					if !yield(any(Zoned{t: cur, zone: s.zone}).(T)) {
						return
					}
				}
			}, nil
		}

		return zonedWallSeq[T](s, e, step, sign, opts), nil
	default:
		return nil, ErrInvalidArgument
	}
}

// zonedWallSeq iterates a rule-based zone: the running value is a naive wall
// clock and the zone is attached per element.
func zonedWallSeq[T Moment](s, e Zoned, step time.Duration, sign int, opts RangeOptions) iter.Seq[T] {
	startWall, endWall, zone := s.Naive(), e.Naive(), s.zone

	policy := Policy{FailOnNonExistent: opts.SkipMissing}

	return func(yield func(T) bool) {
		for cur := startWall; sign*cur.Compare(endWall) <= 0; cur = cur.Add(step) {
			element, err := Attach(cur, zone, policy)
			if err != nil {
				var nonExistent *NonExistentTimeError
				if errors.As(err, &nonExistent) {
					continue
				}

				return
			}

			if !yield(any(element).(T)) {
				return
			}
		}
	}
}

// normalizeStep validates the step against the inferred direction. cmp is the
// start-to-end comparison; backward iteration negates a positive step, while
// a forward range rejects a negative one.
func normalizeStep(cmp int, step time.Duration) (time.Duration, int, error) {
	if step == 0 {
		return 0, 0, fmt.Errorf("%w: step must be non-zero", ErrInvalidArgument)
	}

	// A single-element range terminates with either sign.
	if cmp == 0 {
		sign := 1
		if step < 0 {
			sign = -1
		}

		return step, sign, nil
	}

	if cmp < 0 {
		if step < 0 {
			return 0, 0, fmt.Errorf("%w: negative step cannot reach a later end", ErrInvalidArgument)
		}

		return step, 1, nil
	}

	if step > 0 {
		step = -step
	}

	return step, -1, nil
}
