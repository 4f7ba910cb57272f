package logger

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

type Logger interface {
	Info(msg string, keyvals ...interface{})

	Warn(msg string, keyvals ...interface{})

	Error(msg string, keyvals ...interface{})

	Debug(msg string, keyvals ...interface{})
}

// New returns a JSON logger writing to stderr at the given level
// (debug, info, warn or error). Unknown levels fall back to debug.
func New(level string) Logger {
	return NewWithWriter(os.Stderr, level)
}

func NewWithWriter(w io.Writer, level string) Logger {
	opts := &slog.HandlerOptions{
		Level:     ParseLevel(level),
		AddSource: true, // include file + line number
	}
	handler := slog.NewJSONHandler(w, opts)
	return slog.New(handler)
}

// Discard returns a logger that drops every record.
func Discard() Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func ParseLevel(level string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelDebug
	}
}
