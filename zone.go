package tzalign

import (
	"fmt"
	"sync"
	"time"
)

// Provider resolves timezone identifiers to shared, read-only Zone values.
// Implementations must be safe for concurrent use.
type Provider interface {
	// Resolve returns the zone for the given IANA identifier or an error
	// wrapping ErrUnknownTimezone if the identifier is not known.
	Resolve(identifier string) (*Zone, error)
}

// Zone is an identifier plus access to its offset rules. Zones are immutable,
// shared process-wide and only ever obtained through a Provider; the rule data
// itself lives in the IANA database loaded by the time package.
type Zone struct {
	name string
	loc  *time.Location

	// fixed marks zones with a constant offset and no transitions, for which
	// wall-clock arithmetic and absolute arithmetic coincide.
	fixed bool
}

// UTC is the fixed-offset zone every Standardize call converts into.
var UTC = &Zone{name: "UTC", loc: time.UTC, fixed: true}

// FixedZone returns a zone pinned to a constant offset east of UTC, given in
// seconds. Fixed zones have no transitions, so every wall clock resolves
// uniquely in them.
func FixedZone(name string, offsetSeconds int) *Zone {
	if offsetSeconds == 0 {
		return UTC
	}

	return &Zone{name: name, loc: time.FixedZone(name, offsetSeconds), fixed: true}
}

// Name returns the zone's IANA identifier.
func (z *Zone) Name() string {
	return z.name
}

// Location exposes the underlying rule set for formatting purposes.
func (z *Zone) Location() *time.Location {
	return z.loc
}

// String implements fmt.Stringer.
func (z *Zone) String() string {
	if z == nil {
		return "<nil zone>"
	}

	return z.name
}

// OffsetAt returns the zone's UTC offset in seconds at the given instant.
func (z *Zone) OffsetAt(t time.Time) int {
	_, offset := t.In(z.loc).Zone()

	return offset
}

// ResolutionKind classifies how a wall clock maps onto a zone's timeline.
type ResolutionKind int

const (
	// ResolutionUnique means exactly one offset interprets the wall clock.
	ResolutionUnique ResolutionKind = iota
	// ResolutionAmbiguous means the wall clock occurs twice (fall-back).
	ResolutionAmbiguous
	// ResolutionNonExistent means the wall clock is skipped (spring-forward).
	ResolutionNonExistent
)

// Resolution is the outcome of interpreting a wall clock in a zone.
type Resolution struct {
	// Kind says whether the wall clock is unique, ambiguous or non-existent.
	Kind ResolutionKind
	// Offsets holds candidate UTC offsets in seconds. Unique resolutions carry
	// one entry. Ambiguous resolutions carry both valid offsets ordered by the
	// physical instant they produce, earlier first. Non-existent resolutions
	// carry the valid offsets adjacent to the gap, pre-transition first.
	Offsets []int
}

// transitionWindow bounds how far ResolveWall probes around a wall clock to
// discover the offsets in effect on either side of a transition. No IANA zone
// transitions twice within this window.
const transitionWindow = 36 * time.Hour

// ResolveWall interprets a wall clock in the zone and reports whether it is
// unique, ambiguous or non-existent, together with the candidate offsets.
func (z *Zone) ResolveWall(n Naive) Resolution {
	u := n.wall

	before := z.OffsetAt(u.Add(-transitionWindow))
	after := z.OffsetAt(u.Add(transitionWindow))

	candidates := []int{before}
	if after != before {
		candidates = append(candidates, after)
	}

	// An offset is a valid interpretation iff attaching it to the wall clock
	// yields an instant at which the zone actually uses that offset.
	var valid []int

	for _, offset := range candidates {
		instant := u.Add(-time.Duration(offset) * time.Second)
		if z.OffsetAt(instant) == offset {
			valid = append(valid, offset)
		}
	}

	switch len(valid) {
	case 1:
		return Resolution{Kind: ResolutionUnique, Offsets: valid}
	case 2:
		// Overlaps only arise when the offset decreases, so the pre-transition
		// candidate already produces the earlier instant.
		return Resolution{Kind: ResolutionAmbiguous, Offsets: valid}
	default:
		return Resolution{Kind: ResolutionNonExistent, Offsets: []int{before, after}}
	}
}

// IANAProvider resolves identifiers against the IANA database available to
// the process and caches resolved zones.
type IANAProvider struct {
	// mu protects concurrent access to the zone cache.
	mu sync.RWMutex
	// zones caches zones by identifier so each rule set is loaded once.
	zones map[string]*Zone
}

// NewIANAProvider returns an empty provider ready for use.
func NewIANAProvider() *IANAProvider {
	return &IANAProvider{zones: make(map[string]*Zone)}
}

// Resolve implements Provider.
func (p *IANAProvider) Resolve(identifier string) (*Zone, error) {
	if identifier == "" {
		return nil, fmt.Errorf("%w: timezone identifier is empty", ErrInvalidArgument)
	}

	p.mu.RLock()
	zone, ok := p.zones[identifier]
	p.mu.RUnlock()

	if ok {
		return zone, nil
	}

	loc, err := time.LoadLocation(identifier)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrUnknownTimezone, identifier)
	}

	if loc == time.UTC {
		zone = UTC
	} else {
		zone = &Zone{name: identifier, loc: loc}
	}

	p.mu.Lock()
	p.zones[identifier] = zone
	p.mu.Unlock()

	return zone, nil
}

// DefaultProvider backs ResolveZone. It may be replaced before first use, for
// example with a provider over a bundled tzdata copy.
//
//nolint:gochecknoglobals // Zones are shared process-wide by design.
var DefaultProvider Provider = NewIANAProvider()

// ResolveZone resolves an identifier through the DefaultProvider.
func ResolveZone(identifier string) (*Zone, error) {
	return DefaultProvider.Resolve(identifier)
}
