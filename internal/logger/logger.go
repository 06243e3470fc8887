package logger

import (
	"io"
	"log/slog"
	"os"
)

// Logger represents application logger.
type Logger struct {
	*slog.Logger
}

// New creates a text Logger on stdout with the specified slog level.
func New(level int) *Logger {
	return NewWithFormat(os.Stdout, level, "text")
}

// NewWithFormat creates a Logger writing to w. Format "json" selects the JSON
// handler, anything else the text handler.
func NewWithFormat(w io.Writer, level int, format string) *Logger {
	opts := &slog.HandlerOptions{Level: slog.Level(level)}

	var h slog.Handler
	if format == "json" {
		h = slog.NewJSONHandler(w, opts)
	} else {
		h = slog.NewTextHandler(w, opts)
	}

	return &Logger{Logger: slog.New(h)}
}

// Fatal is equivalent to Error followed by os.Exit(1).
func (l *Logger) Fatal(msg string, args ...any) {
	l.Logger.Error(msg, args...)
	os.Exit(1)
}
