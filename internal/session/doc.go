// Package session persists the operator's presentation state between CLI
// invocations: the current slide, the freeze toggle and the page counters of
// both screens.
//
// State lives in a TOML file. Writers take an exclusive file lock next to it
// so two commands never interleave their read-modify-write cycles.
package session
