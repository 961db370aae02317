// Package log is a small level-gated logger over log/slog. It writes to
// stderr so diagnostics never mix with the rendered image on stdout.
package log

import (
	"io"
	"log/slog"
	"os"
)

// Level constants matching slog levels.
const (
	LevelDebug = slog.LevelDebug
	LevelInfo  = slog.LevelInfo
	LevelError = slog.LevelError
)

var (
	level  = new(slog.LevelVar)
	logger = newLogger(os.Stderr)
)

func newLogger(w io.Writer) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// SetOutput redirects log output, mainly for tests.
func SetOutput(w io.Writer) {
	logger = newLogger(w)
}

// SetLevel sets the global log level.
func SetLevel(l slog.Level) {
	level.Set(l)
}

// Debug logs a debug message with optional key/value attributes.
func Debug(msg string, args ...any) {
	logger.Debug(msg, args...)
}

// Warn logs a warning with optional key/value attributes.
func Warn(msg string, args ...any) {
	logger.Warn(msg, args...)
}
