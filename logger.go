package interactome

import (
	"context"
	"log/slog"
	"os"

	"github.com/rablab/interactome/model"
)

// Logger wraps slog.Logger with interactome-specific context.
// This provides structured logging with consistent field names.
type Logger struct {
	*slog.Logger
}

// NewLogger creates a new Logger with the given handler.
// If handler is nil, uses default text handler to stderr.
func NewLogger(handler slog.Handler) *Logger {
	if handler == nil {
		handler = slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		})
	}
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NewJSONLogger creates a Logger that outputs JSON-formatted logs.
// level sets the minimum log level (e.g., slog.LevelDebug, slog.LevelInfo).
func NewJSONLogger(level slog.Level) *Logger {
	handler := slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NewTextLogger creates a Logger that outputs human-readable text logs.
func NewTextLogger(level slog.Level) *Logger {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NoopLogger creates a Logger that discards all log output.
// Use this to disable logging entirely.
func NoopLogger() *Logger {
	return &Logger{
		Logger: slog.New(slog.DiscardHandler),
	}
}

// WithMode adds a mode field to the logger.
func (l *Logger) WithMode(mode model.Mode) *Logger {
	return &Logger{
		Logger: l.Logger.With("mode", mode.String()),
	}
}

// WithCollections adds the collection names to the logger.
func (l *Logger) WithCollections(names []string) *Logger {
	return &Logger{
		Logger: l.Logger.With("collections", names),
	}
}

// LogAggregate logs an aggregation.
func (l *Logger) LogAggregate(ctx context.Context, k, universe, entries int, err error) {
	if err != nil {
		l.ErrorContext(ctx, "aggregation rejected",
			"k", k,
			"error", err,
		)
	} else {
		l.DebugContext(ctx, "aggregation completed",
			"k", k,
			"universe", universe,
			"entries", entries,
		)
	}
}

// LogNegativeTotal logs a corrected singleton total below zero.
func (l *Logger) LogNegativeTotal(ctx context.Context, collection string, value int64) {
	l.WarnContext(ctx, "corrected total is negative",
		"collection", collection,
		"value", value,
	)
}
