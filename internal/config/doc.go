// Package config defines runtime settings used by the binaries and provides
// helpers to load, validate and save them in YAML format.
//
// The Config type holds the default timezone, the HTTP listen address,
// the request timeout and the log level.
package config
