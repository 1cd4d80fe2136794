// Package logging assembles structured slog loggers used across plagcheck.
//
// It owns the console and JSON handlers, centralizes level and output
// plumbing, and exposes context-aware helpers so a comparison's run ID is
// attached to every line it logs. The package also provides a no-op logger for
// tests and wiring code that cannot fail.
//
// The CLI writes logs to stderr so stdout carries only the comparison result.
package logging
