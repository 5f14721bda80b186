// Package tzalign converts between naive wall-clock values and timezone-aware
// instants and keeps calendar arithmetic correct across DST transitions.
//
// The package centers on two immutable value kinds: Naive (a wall clock with no
// timezone association) and Zoned (a wall clock bound to a resolved timezone,
// identifying exactly one physical instant). Attach turns a Naive into a Zoned,
// handling the two local-time pathologies a rule-based zone can produce: wall
// clocks that never happen (spring-forward gaps) and wall clocks that happen
// twice (fall-back overlaps). Convert re-expresses a Zoned under another zone
// without re-interpreting its wall clock.
//
// On top of the conversion layer sit the calendar operations: AlignToDay,
// AlignToWeek and AlignToMonth snap an instant to a period boundary in a given
// zone without drifting an hour at a transition, Range produces lazy sequences
// of instants at a fixed step, and Weeks partitions a span into calendar weeks.
//
// Timezone rule data comes from the process IANA database through the Provider
// interface; the package never ships or mutates rules of its own. All
// operations are pure and safe for concurrent use.
package tzalign
