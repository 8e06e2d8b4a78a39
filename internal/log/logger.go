// Package log wraps log/slog with a component name carried on every record.
package log

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
)

// Logger is a slog.Logger that remembers which component it belongs to.
type Logger struct {
	*slog.Logger
	component string
}

// Config controls logger construction.
type Config struct {
	Level     slog.Level
	Component string
	Output    io.Writer
}

// New returns a text logger writing to cfg.Output (stderr when nil).
func New(cfg Config) *Logger {
	out := cfg.Output
	if out == nil {
		out = os.Stderr
	}
	component := cfg.Component
	if component == "" {
		component = "atelier"
	}
	h := slog.NewTextHandler(out, &slog.HandlerOptions{Level: cfg.Level})
	return &Logger{
		Logger:    slog.New(h).With("component", component),
		component: component,
	}
}

// Discard returns a logger that drops everything.
func Discard() *Logger {
	return New(Config{Output: io.Discard})
}

// OpenFile returns a logger appending to path, creating parent dirs. The
// returned closer must be called when the logger is no longer used.
func OpenFile(path string, level slog.Level) (*Logger, io.Closer, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return nil, nil, fmt.Errorf("creating log dir: %w", err)
	}
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0o600)
	if err != nil {
		return nil, nil, fmt.Errorf("opening log file: %w", err)
	}
	return New(Config{Level: level, Output: f}), f, nil
}

// With returns a logger with extra attributes.
func (l *Logger) With(args ...any) *Logger {
	return &Logger{Logger: l.Logger.With(args...), component: l.component}
}

// WithComponent returns a logger tagged with a different component.
func (l *Logger) WithComponent(component string) *Logger {
	return &Logger{Logger: l.Logger.With("component", component), component: component}
}

// Component returns the component name.
func (l *Logger) Component() string {
	return l.component
}

// ParseLevel maps "debug", "info", "warn" and "error" to slog levels.
// Anything else yields warn.
func ParseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "error":
		return slog.LevelError
	default:
		return slog.LevelWarn
	}
}
