package boolvec

import (
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with boolvec-specific helpers.
// This provides structured logging with consistent field names.
type Logger struct {
	*slog.Logger
}

var discardLogger = NoopLogger()

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

// LogReserve logs a reservation request.
func (l *Logger) LogReserve(requested, size, capacity int, err error) {
	if err != nil {
		l.Warn("reserve failed",
			"requested", requested,
			"size", size,
			"capacity", capacity,
			"error", err,
		)
	} else {
		l.Debug("reserve completed",
			"requested", requested,
			"size", size,
			"capacity", capacity,
		)
	}
}

// LogReallocate logs a storage replacement.
func (l *Logger) LogReallocate(op string, oldChunks, newChunks int) {
	l.Debug("storage reallocated",
		"op", op,
		"old_chunks", oldChunks,
		"new_chunks", newChunks,
	)
}

// LogRelease logs storage being returned to the allocator.
func (l *Logger) LogRelease(chunks int) {
	l.Debug("storage released",
		"chunks", chunks,
	)
}
