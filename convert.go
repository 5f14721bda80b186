package tzalign

import (
	"fmt"
	"time"
)

// Policy controls how Attach resolves wall clocks that a DST transition makes
// ambiguous or non-existent. The zero value is the default: prefer the offset
// in effect before the transition and never fail.
type Policy struct {
	// PreferLater selects the post-transition offset instead of the
	// pre-transition one. For an ambiguous wall clock that means the later of
	// the two physical instants; for a non-existent one it changes which
	// adjacent offset re-interprets the wall clock.
	PreferLater bool
	// FailOnNonExistent makes Attach return a NonExistentTimeError instead of
	// re-interpreting a wall clock that falls inside a spring-forward gap.
	FailOnNonExistent bool
	// FailOnAmbiguous makes Attach return an AmbiguousTimeError instead of
	// picking one side of a fall-back overlap.
	FailOnAmbiguous bool
}

// Attach interprets the wall clock as local time in the given zone and returns
// the resulting instant. Ambiguous wall clocks resolve to the pre-transition
// offset unless the policy says otherwise. Non-existent wall clocks are
// re-interpreted with the preferred side's offset and normalized, so the
// result is shifted past the gap and the original fields do not round-trip;
// 02:30 inside a one-hour gap comes back as 03:30.
func Attach(n Naive, zone *Zone, policy Policy) (Zoned, error) {
	if zone == nil {
		return Zoned{}, fmt.Errorf("%w: a timezone is required to attach", ErrInvalidArgument)
	}

	resolution := zone.ResolveWall(n)

	var offset int

	switch resolution.Kind {
	case ResolutionUnique:
		offset = resolution.Offsets[0]
	case ResolutionAmbiguous:
		if policy.FailOnAmbiguous {
			return Zoned{}, &AmbiguousTimeError{Wall: n, Zone: zone}
		}

		offset = resolution.Offsets[0]
		if policy.PreferLater {
			offset = resolution.Offsets[1]
		}
	case ResolutionNonExistent:
		if policy.FailOnNonExistent {
			return Zoned{}, &NonExistentTimeError{Wall: n, Zone: zone}
		}

		offset = resolution.Offsets[0]
		if policy.PreferLater {
			offset = resolution.Offsets[1]
		}
	}

	instant := n.wall.Add(-time.Duration(offset) * time.Second)

	return Zoned{t: instant.In(zone.loc), zone: zone}, nil
}

// Convert re-expresses the same physical instant under another zone. The wall
// clock changes, the instant does not. Converting is the only safe way to move
// a Zoned between zones; re-attaching its wall clock would re-interpret an
// already-absolute instant as local time.
func Convert(z Zoned, zone *Zone) (Zoned, error) {
	if z.zone == nil {
		return Zoned{}, ErrNotTimezoneAware
	}

	if zone == nil {
		return Zoned{}, fmt.Errorf("%w: a timezone is required to convert", ErrInvalidArgument)
	}

	return Zoned{t: z.t.In(zone.loc), zone: zone}, nil
}

// Standardize converts the value to UTC. Naive input is first attached to the
// given zone with the default policy, so the zone is mandatory for naive
// values even though the output is always UTC; for Zoned input the zone
// parameter is ignored.
func Standardize[T Moment](v T, zone *Zone) (Zoned, error) {
	switch m := any(v).(type) {
	case Naive:
		if zone == nil {
			return Zoned{}, fmt.Errorf(
				"%w: a timezone is required to standardize a naive value", ErrInvalidArgument)
		}

		attached, err := Attach(m, zone, Policy{})
		if err != nil {
			return Zoned{}, err
		}

		return Convert(attached, UTC)
	case Zoned:
		return Convert(m, UTC)
	default:
		return Zoned{}, ErrInvalidArgument
	}
}

// Now returns the current instant attached to UTC.
func Now() Zoned {
	return Zoned{t: time.Now().UTC(), zone: UTC}
}

// OffsetDate shifts a value by a duration. Naive values and fixed-offset zones
// get plain addition. For rule-based zones the shift preserves the wall clock:
// the delta is added to the local fields and the result re-attached under the
// policy, so crossing a transition does not drag the local time an hour off.
func OffsetDate[T Moment](v T, delta time.Duration, policy Policy) (T, error) {
	var zero T

	switch m := any(v).(type) {
	case Naive:
		return any(m.Add(delta)).(T), nil
	case Zoned:
		if m.zone == nil {
			return zero, ErrNotTimezoneAware
		}

		if m.zone.fixed {
			return any(Zoned{t: m.t.Add(delta), zone: m.zone}).(T), nil
		}

		shifted, err := Attach(m.Naive().Add(delta), m.zone, policy)
		if err != nil {
			return zero, err
		}

		return any(shifted).(T), nil
	default:
		return zero, ErrInvalidArgument
	}
}
