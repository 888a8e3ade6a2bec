// Package logging provides structured logging helpers built on the
// standard library's slog package.
//
// It centralizes attribute naming so that tool handlers, the Calendar
// client and the CLI all emit the same keys, and it hashes attendee
// emails so log lines can be correlated without exposing PII.
package logging
