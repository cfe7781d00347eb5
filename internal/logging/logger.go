// Package logging wraps slog.Logger with dacviz field names.
package logging

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
)

// ErrUnknownFormat indicates a log format other than "text" or "json".
var ErrUnknownFormat = errors.New("logging: unknown format")

// Logger wraps slog.Logger with consistent field names for run lifecycle logs.
type Logger struct {
	*slog.Logger
}

// New creates a Logger writing to w. format is "text" or "json"; level is
// parsed by ParseLevel.
func New(w io.Writer, format, level string) (*Logger, error) {
	lvl, err := ParseLevel(level)
	if err != nil {
		return nil, err
	}
	opts := &slog.HandlerOptions{Level: lvl}

	var h slog.Handler
	switch strings.ToLower(format) {
	case "", "text":
		h = slog.NewTextHandler(w, opts)
	case "json":
		h = slog.NewJSONHandler(w, opts)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}

	return &Logger{Logger: slog.New(h)}, nil
}

// Noop creates a Logger that discards all output.
func Noop() *Logger {
	return &Logger{Logger: slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{
		Level: slog.Level(1000), // unreachable
	}))}
}

// ParseLevel maps "debug", "info", "warn" and "error" (any case) to slog
// levels. An empty string means info.
func ParseLevel(s string) (slog.Level, error) {
	var lvl slog.Level
	if s == "" {
		return slog.LevelInfo, nil
	}
	if err := lvl.UnmarshalText([]byte(s)); err != nil {
		return 0, fmt.Errorf("logging: %w", err)
	}

	return lvl, nil
}

// WithRun adds a run_id field.
func (l *Logger) WithRun(id string) *Logger {
	return &Logger{Logger: l.Logger.With("run_id", id)}
}

// WithAlgorithm adds an algorithm field.
func (l *Logger) WithAlgorithm(name string) *Logger {
	return &Logger{Logger: l.Logger.With("algorithm", name)}
}

// LogInput logs the size of a parsed input.
func (l *Logger) LogInput(ctx context.Context, source string, n int, err error) {
	if err != nil {
		l.ErrorContext(ctx, "input rejected",
			"source", source,
			"error", err,
		)
	} else {
		l.DebugContext(ctx, "input parsed",
			"source", source,
			"values", n,
		)
	}
}

// LogRun logs a finished engine run. The algorithm comes from WithAlgorithm.
func (l *Logger) LogRun(ctx context.Context, steps int, err error) {
	if err != nil {
		l.ErrorContext(ctx, "run failed",
			"steps", steps,
			"error", err,
		)
	} else {
		l.InfoContext(ctx, "run completed",
			"steps", steps,
		)
	}
}

// LogVerify logs the comparison of an engine answer with a reference.
func (l *Logger) LogVerify(ctx context.Context, got, want float64, ok bool) {
	if ok {
		l.DebugContext(ctx, "verification passed", "distance", got)
	} else {
		l.WarnContext(ctx, "verification failed",
			"distance", got,
			"reference", want,
		)
	}
}
