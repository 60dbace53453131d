// Package logging constructs the process-wide slog.Logger.
// Output goes to stderr: stdout is reserved for query results.
package logging

import (
	"io"
	"log/slog"
	"os"
)

// New creates a text-format logger at the given level writing to
// stderr.
func New(level slog.Level) *slog.Logger {
	return NewWithWriter(level, os.Stderr)
}

// NewWithWriter creates a text-format logger writing to w.
func NewWithWriter(level slog.Level, w io.Writer) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// Level maps the verbose/quiet flags to a slog level.
func Level(verbose, quiet bool) slog.Level {
	switch {
	case quiet:
		return slog.LevelError
	case verbose:
		return slog.LevelDebug
	default:
		return slog.LevelInfo
	}
}
