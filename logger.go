package intvec

import (
	"io"
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with intvec-specific helpers.
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
	return NewLogger(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
}

// NewTextLogger creates a Logger that outputs human-readable text logs.
func NewTextLogger(level slog.Level) *Logger {
	return NewLogger(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
}

// NoopLogger creates a Logger that discards all log output.
func NoopLogger() *Logger {
	return NewLogger(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{
		Level: slog.Level(1000), // Unreachable level
	}))
}

// LogGrow logs a reallocation of the backing block.
func (l *Logger) LogGrow(from, to, length int, bulk bool) {
	l.Debug("capacity grown",
		"from", from,
		"to", to,
		"length", length,
		"bulk", bulk,
	)
}

// LogRemove logs a removal and the number of elements shifted left.
func (l *Logger) LogRemove(index, shifted int, err error) {
	if err != nil {
		l.Debug("remove rejected",
			"index", index,
			"error", err,
		)
		return
	}
	l.Debug("remove completed",
		"index", index,
		"shifted", shifted,
	)
}

// LogClear logs a clear together with the retained capacity.
func (l *Logger) LogClear(dropped, capacity int) {
	l.Debug("cleared",
		"dropped", dropped,
		"capacity", capacity,
	)
}

// LogUnsorted warns that a binary search ran over unsorted elements.
func (l *Logger) LogUnsorted(target, length int) {
	l.Warn("binary search on unsorted elements, result is arbitrary",
		"target", target,
		"length", length,
	)
}
