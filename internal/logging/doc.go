// Package logging assembles structured slog loggers and attribute helpers used
// by the namesake CLI and its batch components.
//
// It owns the console and JSON handlers, level and output plumbing, and the
// field names that WARN and decision logs must carry. NewNop provides a
// discarding logger for tests and for wiring code that has no logger.
//
// The matching core does not log; only outer components (catalog, matcher,
// tag reading, commands) do.
package logging
