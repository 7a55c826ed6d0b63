// Package config provides environment-based configuration.
//
// Every knob has a sensible default, so an empty environment yields a working
// development setup. Validation is fail-fast: a malformed threshold or an
// unknown emotion mode aborts startup instead of surfacing mid-stream.
package config
