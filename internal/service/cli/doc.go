// Package cli implements the operations behind the tzalign command line
// subcommands. Each operation takes its options struct and writes rendered
// moments to the provided writer, keeping the cobra layer thin and the
// behavior testable.
package cli
