// Package logging assembles structured slog loggers used across
// dualpresenter.
//
// It owns the console and JSON handlers, the level and output plumbing, and
// the standard field keys (component, card, screen, correlation id) so every
// package emits log lines with the same shape. NewNop supplies a silent logger
// for tests and for wiring code that has no logger to pass.
package logging
