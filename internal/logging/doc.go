// Package logging builds the slog loggers used across easyshell.
//
// It exposes a console handler for interactive runs (color when stdout is
// a terminal) and a JSON handler for log files, plus attribute aliases so
// call sites read uniformly. Component loggers tag every record with the
// subsystem that produced it; the run id attribute ties records from one
// application run together.
package logging
