// Package logging provides structured logging utilities for rendezvous.
//
// Everything written here goes to stderr: stdout is reserved for the JSON
// payload each command emits, so a caller can pipe it without filtering.
//
// # Usage Patterns
//
// Build the process logger once in the command layer:
//
//	logger, err := logging.New(os.Stderr, "warn", "text")
//	logger = logging.WithRunID(logger, uuid.NewString())
//
// Domain packages accept the small Logger interface so tests can capture
// the warnings they emit:
//
//	calendar.Normalize(raw, loc, logging.NewSlogAdapter(logger))
//
// # Privacy
//
// Calendar identifiers are usually email addresses. Log them through
// CalendarHash, never verbatim.
package logging
