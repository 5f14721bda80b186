package timeparse

import (
	"fmt"
	"time"

	"github.com/oshokin/tzalign"
)

// naiveLayouts are the accepted shapes for input without an offset, tried in
// order. Seconds and fractions are optional, and the date alone means
// midnight.
var naiveLayouts = []string{
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05.999999999",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006-01-02",
}

// OutputLayout renders instants with microsecond precision and an explicit
// offset, matching the granularity the library works at.
const OutputLayout = "2006-01-02T15:04:05.999999Z07:00"

// ParseNaive parses a date-time string without offset information.
func ParseNaive(s string) (tzalign.Naive, error) {
	for _, layout := range naiveLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return tzalign.NaiveOf(t), nil
		}
	}

	return tzalign.Naive{}, fmt.Errorf("%w: cannot parse %q as a date-time", tzalign.ErrInvalidArgument, s)
}

// Parse parses a date-time string into an aware instant. Input carrying an
// explicit offset (RFC 3339) keeps that offset as a fixed zone; input without
// one is attached to the provided zone under the given policy. A nil zone
// rejects naive input.
func Parse(s string, zone *tzalign.Zone, policy tzalign.Policy) (tzalign.Zoned, error) {
	if t, err := time.Parse(time.RFC3339Nano, s); err == nil {
		_, offset := t.Zone()

		return tzalign.ZonedOf(t, tzalign.FixedZone(t.Format("UTC-07:00"), offset)), nil
	}

	naive, err := ParseNaive(s)
	if err != nil {
		return tzalign.Zoned{}, err
	}

	if zone == nil {
		return tzalign.Zoned{}, fmt.Errorf("%w: %q has no offset and no timezone was given",
			tzalign.ErrNotTimezoneAware, s)
	}

	return tzalign.Attach(naive, zone, policy)
}

// Format renders an aware instant in its own zone using OutputLayout.
func Format(z tzalign.Zoned) string {
	return z.Time().Format(OutputLayout)
}

// FormatNaive renders a wall clock without offset information.
func FormatNaive(n tzalign.Naive) string {
	return n.Wall().Format("2006-01-02T15:04:05.999999")
}
