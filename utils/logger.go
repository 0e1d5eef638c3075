package utils

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/lmittmann/tint"
)

// Logger provides leveled, printf-style logging on top of slog.
type Logger struct {
	sl *slog.Logger
}

// NewLogger creates a Logger writing colored records to w at the given level.
func NewLogger(w io.Writer, level slog.Level) *Logger {
	return &Logger{
		sl: slog.New(tint.NewHandler(w, &tint.Options{
			Level:      level,
			TimeFormat: "2006-01-02 15:04:05",
		})),
	}
}

// NewStderrLogger is the default logger used before configuration is loaded.
func NewStderrLogger() *Logger {
	return NewLogger(os.Stderr, slog.LevelInfo)
}

// NewNopLogger discards everything. Used by tests.
func NewNopLogger() *Logger {
	return NewLogger(io.Discard, slog.LevelError+1)
}

// ParseLevel maps debug|info|warn|error to a slog level.
func ParseLevel(s string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.TrimSpace(s))); err != nil {
		return slog.LevelInfo, fmt.Errorf("logger: parse level %q: %w", s, err)
	}
	return level, nil
}

// Enabled reports whether records at level would be written.
func (l *Logger) Enabled(level slog.Level) bool {
	return l.sl.Enabled(context.Background(), level)
}

func (l *Logger) Info(format string, args ...any) {
	l.sl.Info(fmt.Sprintf(format, args...))
}

func (l *Logger) Warn(format string, args ...any) {
	l.sl.Warn(fmt.Sprintf(format, args...))
}

func (l *Logger) Error(format string, args ...any) {
	l.sl.Error(fmt.Sprintf(format, args...))
}

func (l *Logger) Debug(format string, args ...any) {
	if !l.Enabled(slog.LevelDebug) {
		return
	}
	l.sl.Debug(fmt.Sprintf(format, args...))
}
