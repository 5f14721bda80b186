package tzalign

import (
	"errors"
	"fmt"
)

var (
	// ErrNotTimezoneAware is returned when an operation that needs an existing
	// timezone association receives a naive or zero value.
	ErrNotTimezoneAware = errors.New("value is not timezone-aware")

	// ErrUnknownTimezone is returned when an identifier does not resolve to a
	// timezone in the provider's database.
	ErrUnknownTimezone = errors.New("unknown timezone")

	// ErrInvalidRange is returned when a range operation receives a start that
	// lies after its end.
	ErrInvalidRange = errors.New("start is after end")

	// ErrInvalidArgument is returned for missing timezones, zero steps and
	// other argument misuse detected before any work is done.
	ErrInvalidArgument = errors.New("invalid argument")
)

// NonExistentTimeError reports a wall clock that falls inside a spring-forward
// gap of a zone and therefore never occurs. It is returned only when the
// caller opted in via Policy.FailOnNonExistent.
type NonExistentTimeError struct {
	// Wall is the wall clock that does not exist.
	Wall Naive
	// Zone is the zone whose transition skips the wall clock.
	Zone *Zone
}

// Error implements the error interface.
func (e *NonExistentTimeError) Error() string {
	return fmt.Sprintf("wall clock %s does not exist in %s", e.Wall, e.Zone)
}

// AmbiguousTimeError reports a wall clock that falls inside a fall-back
// overlap of a zone and therefore occurs twice. It is returned only when the
// caller opted in via Policy.FailOnAmbiguous.
type AmbiguousTimeError struct {
	// Wall is the wall clock that occurs twice.
	Wall Naive
	// Zone is the zone whose transition repeats the wall clock.
	Zone *Zone
}

// Error implements the error interface.
func (e *AmbiguousTimeError) Error() string {
	return fmt.Sprintf("wall clock %s is ambiguous in %s", e.Wall, e.Zone)
}
