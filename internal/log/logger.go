// Package log is a thin slog wrapper that tags every record with the
// component that emitted it.
package log

import (
	"io"
	"log/slog"
	"os"
)

// Field names shared across components.
const (
	FieldComponent    = "component"
	FieldFile         = "file"
	FieldAccounts     = "accounts"
	FieldTransactions = "transactions"
	FieldEntries      = "entries"
	FieldAccount      = "account"
	FieldAmount       = "amount"
	FieldDate         = "date"
	FieldFilter       = "filter"
	FieldGroup        = "group"
	FieldSource       = "source"
	FieldCount        = "count"
	FieldError        = "error"
)

// Component names.
const (
	ComponentCLI      = "cli"
	ComponentStore    = "store"
	ComponentJournal  = "journal"
	ComponentImporter = "importer"
	ComponentConfig   = "config"
)

// Logger wraps slog.Logger with a component name.
type Logger struct {
	*slog.Logger
	base      *slog.Logger // without the component attribute
	component string
}

// Config holds logger configuration. A nil Handler writes text records to
// Output (stderr when nil) at Level.
type Config struct {
	Level     slog.Level
	Component string
	Output    io.Writer
	Handler   slog.Handler
}

// DefaultConfig logs info and above to stderr.
func DefaultConfig() Config {
	return Config{
		Level:     slog.LevelInfo,
		Component: ComponentCLI,
	}
}

// New creates a logger from config.
func New(config Config) *Logger {
	handler := config.Handler
	if handler == nil {
		out := config.Output
		if out == nil {
			out = os.Stderr
		}
		handler = slog.NewTextHandler(out, &slog.HandlerOptions{Level: config.Level})
	}
	base := slog.New(handler)
	return &Logger{
		Logger:    base.With(FieldComponent, config.Component),
		base:      base,
		component: config.Component,
	}
}

// Discard returns a logger that drops every record.
func Discard() *Logger {
	return New(Config{Handler: slog.NewTextHandler(io.Discard, nil)})
}

// With returns a logger with the given attributes added.
func (l *Logger) With(args ...any) *Logger {
	return &Logger{
		Logger:    l.Logger.With(args...),
		base:      l.base.With(args...),
		component: l.component,
	}
}

// WithComponent returns a logger for another component. Attributes added with
// With are kept.
func (l *Logger) WithComponent(component string) *Logger {
	return &Logger{
		Logger:    l.base.With(FieldComponent, component),
		base:      l.base,
		component: component,
	}
}

// Component returns the logger's component name.
func (l *Logger) Component() string {
	return l.component
}

// SetDefault installs logger as the slog default.
func SetDefault(logger *Logger) {
	slog.SetDefault(logger.Logger)
}
