package tzalign

import "time"

// Direction selects which boundary of a period an alignment targets.
type Direction int

const (
	// Down aligns to the start of the containing period.
	Down Direction = iota
	// Up aligns to the end of the containing period.
	Up
)

// String implements fmt.Stringer.
func (d Direction) String() string {
	if d == Up {
		return "up"
	}

	return "down"
}

// Naive is a wall-clock date and time carrying no timezone association.
// The zero value is the zero wall clock. Naive values are immutable; every
// operation returns a new value.
type Naive struct {
	// wall stores the clock fields. Its location is pinned to time.UTC purely
	// as a field carrier and has no timezone meaning.
	wall time.Time
}

// NewNaive builds a wall clock from calendar and clock fields.
func NewNaive(year int, month time.Month, day, hour, minute, second, nanosecond int) Naive {
	return Naive{wall: time.Date(year, month, day, hour, minute, second, nanosecond, time.UTC)}
}

// NaiveDate builds a wall clock at midnight of the given calendar day.
func NaiveDate(year int, month time.Month, day int) Naive {
	return NewNaive(year, month, day, 0, 0, 0, 0)
}

// NaiveOf strips the timezone from t and keeps its wall-clock fields.
func NaiveOf(t time.Time) Naive {
	return Naive{wall: time.Date(
		t.Year(), t.Month(), t.Day(),
		t.Hour(), t.Minute(), t.Second(), t.Nanosecond(),
		time.UTC,
	)}
}

// Wall returns the clock fields as a time.Time pinned to time.UTC. The
// location on the returned value is a carrier, not an association.
func (n Naive) Wall() time.Time {
	return n.wall
}

// Date returns the calendar date fields.
func (n Naive) Date() (int, time.Month, int) {
	return n.wall.Date()
}

// Clock returns the time-of-day fields.
func (n Naive) Clock() (int, int, int) {
	return n.wall.Clock()
}

// Weekday returns the day of the week with Monday as 0 and Sunday as 6.
func (n Naive) Weekday() int {
	return (int(n.wall.Weekday()) + 6) % 7
}

// Add returns the wall clock shifted by d. Pure wall-clock arithmetic: no
// transition handling applies to naive values.
func (n Naive) Add(d time.Duration) Naive {
	return Naive{wall: n.wall.Add(d)}
}

// AddDays returns the wall clock shifted by whole calendar days.
func (n Naive) AddDays(days int) Naive {
	return Naive{wall: n.wall.AddDate(0, 0, days)}
}

// Compare orders two wall clocks, returning -1, 0 or +1.
func (n Naive) Compare(o Naive) int {
	return n.wall.Compare(o.wall)
}

// Before reports whether n is an earlier wall clock than o.
func (n Naive) Before(o Naive) bool {
	return n.wall.Before(o.wall)
}

// After reports whether n is a later wall clock than o.
func (n Naive) After(o Naive) bool {
	return n.wall.After(o.wall)
}

// Equal reports whether two wall clocks carry the same fields.
func (n Naive) Equal(o Naive) bool {
	return n.wall.Equal(o.wall)
}

// IsZero reports whether n is the zero wall clock.
func (n Naive) IsZero() bool {
	return n.wall.IsZero()
}

// String implements fmt.Stringer.
func (n Naive) String() string {
	return n.wall.Format("2006-01-02T15:04:05.999999999")
}

// Zoned is a wall clock bound to a resolved timezone, identifying exactly one
// physical instant. Its offset is always the one in effect for its wall clock
// under the zone's rules; every operation re-derives it, never reuses a stale
// one. The zero value carries no zone and fails operations that require one.
type Zoned struct {
	// t is the instant localized into the zone.
	t time.Time
	// zone is the timezone association.
	zone *Zone
}

// ZonedOf binds an already-localized time.Time to its zone. The caller is
// responsible for t actually being expressed in zone's location; use Attach to
// interpret wall clocks safely.
func ZonedOf(t time.Time, zone *Zone) Zoned {
	if zone == nil {
		return Zoned{}
	}

	return Zoned{t: t.In(zone.loc), zone: zone}
}

// Time returns the instant localized into the value's zone.
func (z Zoned) Time() time.Time {
	return z.t
}

// Zone returns the timezone association, or nil for the zero value.
func (z Zoned) Zone() *Zone {
	return z.zone
}

// IsZero reports whether z carries no timezone association.
func (z Zoned) IsZero() bool {
	return z.zone == nil
}

// Naive drops the timezone association and keeps the local wall clock.
func (z Zoned) Naive() Naive {
	return NaiveOf(z.t)
}

// Compare orders two values by physical instant, returning -1, 0 or +1.
func (z Zoned) Compare(o Zoned) int {
	return z.t.Compare(o.t)
}

// Before reports whether z is an earlier instant than o.
func (z Zoned) Before(o Zoned) bool {
	return z.t.Before(o.t)
}

// After reports whether z is a later instant than o.
func (z Zoned) After(o Zoned) bool {
	return z.t.After(o.t)
}

// Equal reports whether two values identify the same physical instant,
// regardless of the zone they are expressed in.
func (z Zoned) Equal(o Zoned) bool {
	return z.t.Equal(o.t)
}

// String implements fmt.Stringer.
func (z Zoned) String() string {
	if z.zone == nil {
		return "<naive>"
	}

	return z.t.Format(time.RFC3339Nano)
}

// Moment is the set of value kinds the range and partition operations work
// over. The input kind is always the output kind.
type Moment interface {
	Naive | Zoned
}

// Interval is an inclusive start/end pair of same-kind values.
type Interval[T Moment] struct {
	// Start is the inclusive lower bound.
	Start T
	// End is the inclusive upper bound.
	End T
}

// Process-wide range of representable instants, initialized once and never
// mutated. Useful as open-ended bounds in callers.
var (
	// MinDateTime is the earliest representable instant, in UTC.
	MinDateTime = Zoned{t: time.Date(1, time.January, 1, 0, 0, 0, 0, time.UTC), zone: UTC}
	// MaxDateTime is the latest representable instant, in UTC.
	MaxDateTime = Zoned{t: time.Date(9999, time.December, 31, 23, 59, 59, 999999000, time.UTC), zone: UTC}
)

// compareMoments orders two same-kind values: wall-clock order for Naive,
// instant order for Zoned.
func compareMoments[T Moment](a, b T) int {
	switch av := any(a).(type) {
	case Naive:
		return av.Compare(any(b).(Naive))
	case Zoned:
		return av.Compare(any(b).(Zoned))
	default:
		return 0
	}
}

// localWall returns the value's wall clock: the fields themselves for Naive,
// the localized fields for Zoned.
func localWall[T Moment](v T) Naive {
	switch av := any(v).(type) {
	case Naive:
		return av
	case Zoned:
		return av.Naive()
	default:
		return Naive{}
	}
}
