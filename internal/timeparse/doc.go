// Package timeparse converts between date-time strings and the library's
// moment types. The CLI and the HTTP API share its layouts so both surfaces
// accept and produce the same shapes.
package timeparse
