// Package logging provides leveled slog loggers for the collection harness.
// Runs log to stderr by default; long sweeps can mirror output to a log file
// so progress survives a detached terminal.
package logging

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

// LevelTrace is a custom slog level below Debug for full content logging.
// At this level, solver case payloads and raw force series are included.
const LevelTrace = slog.LevelDebug - 4

// ParseLevel maps a string level name to a slog.Level.
// Supported values: "info", "debug", "trace" (case-insensitive).
// Unknown values default to info.
func ParseLevel(s string) slog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug
	case "trace":
		return LevelTrace
	default:
		return slog.LevelInfo
	}
}

// New creates a leveled slog.Logger writing to w.
func New(level string, w io.Writer) *slog.Logger {
	opts := &slog.HandlerOptions{
		Level: ParseLevel(level),
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			// Label the custom trace level
			if a.Key == slog.LevelKey {
				if lvl, ok := a.Value.Any().(slog.Level); ok && lvl == LevelTrace {
					a.Value = slog.StringValue("TRACE")
				}
			}
			return a
		},
	}
	return slog.New(slog.NewTextHandler(w, opts))
}

// NewWithFile creates a logger that writes to both stderr and the file at
// path, opened for append. The returned closer flushes and closes the file;
// callers should defer it for the life of the run.
func NewWithFile(level, path string) (*slog.Logger, func() error, error) {
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return nil, nil, err
	}
	logger := New(level, io.MultiWriter(os.Stderr, f))
	return logger, f.Close, nil
}

// Discard returns a logger that drops everything. Components take it as the
// default so callers that want silence pass nothing.
func Discard() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}
