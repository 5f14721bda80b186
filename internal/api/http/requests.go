package http

import (
	"fmt"

	"github.com/oshokin/tzalign"
)

// policyFields selects how wall clocks caught in a timezone transition are
// handled. The zero value shifts non-existent clocks forward and picks the
// earlier occurrence of ambiguous ones.
type policyFields struct {
	// PreferLater picks the later occurrence of an ambiguous wall clock.
	PreferLater bool `json:"prefer_later,omitempty"`
	// FailOnNonExistent rejects wall clocks inside a spring-forward gap.
	FailOnNonExistent bool `json:"fail_on_non_existent,omitempty"`
	// FailOnAmbiguous rejects wall clocks inside a fall-back overlap.
	FailOnAmbiguous bool `json:"fail_on_ambiguous,omitempty"`
}

// toPolicy converts the wire fields into the library's policy.
func (p policyFields) toPolicy() tzalign.Policy {
	return tzalign.Policy{
		PreferLater:       p.PreferLater,
		FailOnNonExistent: p.FailOnNonExistent,
		FailOnAmbiguous:   p.FailOnAmbiguous,
	}
}

// alignRequest is the body of POST /v1/align.
type alignRequest struct {
	// Time is the moment to align, RFC 3339 or a naive date-time.
	Time string `json:"time"`
	// Timezone names the calendar the alignment is judged in. Empty means the
	// server's default.
	Timezone string `json:"timezone,omitempty"`
	// Unit is the calendar unit to align to: day (default), week or month.
	Unit string `json:"unit,omitempty"`
	// Direction is "down" (default) for the start of the unit or "up" for
	// its last representable instant.
	Direction string `json:"direction,omitempty"`
	// Policy governs transition handling for naive input.
	Policy policyFields `json:"policy,omitempty"`
}

// convertRequest is the body of POST /v1/convert.
type convertRequest struct {
	// Time is the moment to convert.
	Time string `json:"time"`
	// Timezone names the target zone. Required.
	Timezone string `json:"timezone"`
	// FromTimezone names the zone attached to naive input. Empty means the
	// server's default; ignored for input carrying its own offset.
	FromTimezone string `json:"from_timezone,omitempty"`
	// Policy governs transition handling for naive input.
	Policy policyFields `json:"policy,omitempty"`
}

// standardizeRequest is the body of POST /v1/standardize.
type standardizeRequest struct {
	// Time is the moment to normalize to UTC.
	Time string `json:"time"`
	// Timezone names the zone attached to naive input. Empty means the
	// server's default.
	Timezone string `json:"timezone,omitempty"`
	// Policy governs transition handling for naive input.
	Policy policyFields `json:"policy,omitempty"`
}

// rangeRequest is the body of POST /v1/range.
type rangeRequest struct {
	// Start is the first element of the sequence.
	Start string `json:"start"`
	// End bounds the sequence inclusively.
	End string `json:"end"`
	// Step is a Go duration string such as "24h" or "-30m".
	Step string `json:"step"`
	// Timezone names the zone attached to naive bounds. Empty means the
	// server's default.
	Timezone string `json:"timezone,omitempty"`
	// SkipMissing drops elements whose wall clock falls in a transition gap
	// instead of shifting them forward.
	SkipMissing bool `json:"skip_missing,omitempty"`
}

// weeksRequest is the body of POST /v1/weeks.
type weeksRequest struct {
	// Start is the first instant of the span to partition.
	Start string `json:"start"`
	// End is the last instant of the span to partition.
	End string `json:"end"`
	// Timezone names the zone attached to naive bounds. Empty means the
	// server's default.
	Timezone string `json:"timezone,omitempty"`
}

// momentResponse carries a single rendered moment.
type momentResponse struct {
	Result string `json:"result"`
}

// rangeResponse carries the rendered elements of a sequence.
type rangeResponse struct {
	Results []string `json:"results"`
}

// spanResponse is one rendered partition.
type spanResponse struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// weeksResponse carries the rendered partitions of a span.
type weeksResponse struct {
	Partitions []spanResponse `json:"partitions"`
}

// errorResponse carries a failed request's message.
type errorResponse struct {
	Error string `json:"error"`
}

// parseDirection maps the wire direction onto the library's. Empty means down.
func parseDirection(s string) (tzalign.Direction, error) {
	switch s {
	case "", "down":
		return tzalign.Down, nil
	case "up":
		return tzalign.Up, nil
	default:
		return tzalign.Down, invalidArgumentf("unknown direction %q", s)
	}
}

// invalidArgumentf builds a 400-mapped error with a formatted message.
func invalidArgumentf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", tzalign.ErrInvalidArgument, fmt.Sprintf(format, args...))
}
