package prioq

import (
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with prioq-specific helpers.
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
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.Level(1000), // Unreachable level
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// WithKind adds the queue ordering direction to the logger.
func (l *Logger) WithKind(kind Kind) *Logger {
	return &Logger{
		Logger: l.Logger.With("kind", kind.String()),
	}
}

// WithSize adds the live element count to the logger.
func (l *Logger) WithSize(n int) *Logger {
	return &Logger{
		Logger: l.Logger.With("size", n),
	}
}

// LogInsert logs an insert operation.
func (l *Logger) LogInsert(value any, priority float64, owner string, err error) {
	if err != nil {
		l.Error("insert failed",
			"value", value,
			"priority", priority,
			"owner", owner,
			"error", err,
		)
	} else {
		l.Debug("insert completed",
			"value", value,
			"priority", priority,
			"owner", owner,
		)
	}
}

// LogBatchInsert logs a batch insert operation.
func (l *Logger) LogBatchInsert(count int, err error) {
	if err != nil {
		l.Error("batch insert failed",
			"count", count,
			"error", err,
		)
	} else {
		l.Debug("batch insert completed",
			"count", count,
		)
	}
}

// LogExtract logs a top extraction.
func (l *Logger) LogExtract(value any, priority float64, err error) {
	if err != nil {
		l.Debug("extract failed", "error", err)
	} else {
		l.Debug("extract completed",
			"value", value,
			"priority", priority,
		)
	}
}

// LogUpdate logs a priority update.
func (l *Logger) LogUpdate(value any, oldPriority, newPriority float64, err error) {
	if err != nil {
		l.Error("priority update failed",
			"value", value,
			"error", err,
		)
	} else {
		l.Debug("priority updated",
			"value", value,
			"old_priority", oldPriority,
			"new_priority", newPriority,
		)
	}
}

// LogRemove logs a point removal.
func (l *Logger) LogRemove(value any, err error) {
	if err != nil {
		l.Error("remove failed",
			"value", value,
			"error", err,
		)
	} else {
		l.Debug("remove completed",
			"value", value,
		)
	}
}

// LogMerge logs a merge operation.
func (l *Logger) LogMerge(moved int, err error) {
	if err != nil {
		l.Error("merge failed",
			"moved", moved,
			"error", err,
		)
	} else {
		l.Debug("merge completed",
			"moved", moved,
		)
	}
}

// LogClear logs a queue clear.
func (l *Logger) LogClear(removed int) {
	l.Debug("queue cleared",
		"removed", removed,
	)
}
