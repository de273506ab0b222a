package boolvec

import (
	"log/slog"

	"github.com/hupe1980/boolvec/alloc"
)

type options struct {
	allocator        alloc.Allocator
	metricsCollector MetricsCollector
	logger           *Logger
}

// Option configures a Vector.
type Option func(*options)

// WithAllocator configures the allocator that supplies the vector's storage.
// The vector uses it for its whole lifetime.
//
// If nil is passed, alloc.Default is used.
//
// Example with a bounded allocator:
//
//	v := boolvec.New(boolvec.WithAllocator(alloc.NewLimited(10)))
//	err := v.Reserve(10 * 65536) // ErrLengthExceeded
func WithAllocator(a alloc.Allocator) Option {
	return func(o *options) {
		if a == nil {
			a = alloc.Default
		}
		o.allocator = a
	}
}

// WithMetricsCollector configures a metrics collector for reservations and
// reallocations. Pass nil to disable metrics collection.
//
// Example with BasicMetricsCollector:
//
//	metrics := &boolvec.BasicMetricsCollector{}
//	v := boolvec.New(boolvec.WithMetricsCollector(metrics))
//	// ... use v ...
//	stats := metrics.GetStats()
//	fmt.Printf("Reallocations: %d\n", stats.ReallocationCount)
func WithMetricsCollector(mc MetricsCollector) Option {
	return func(o *options) {
		if mc == nil {
			mc = NoopMetricsCollector{}
		}
		o.metricsCollector = mc
	}
}

// WithLogger configures structured logging for storage events.
// Pass nil to disable logging.
//
// Example with JSON logging:
//
//	logger := boolvec.NewJSONLogger(slog.LevelDebug)
//	v := boolvec.New(boolvec.WithLogger(logger))
func WithLogger(logger *Logger) Option {
	return func(o *options) {
		if logger == nil {
			logger = discardLogger
		}
		o.logger = logger
	}
}

// WithLogLevel creates a text logger with the specified level and sets it.
// Convenience wrapper for WithLogger(NewTextLogger(level)).
func WithLogLevel(level slog.Level) Option {
	return func(o *options) {
		o.logger = NewTextLogger(level)
	}
}

func applyOptions(optFns []Option) options {
	o := options{
		allocator:        alloc.Default,
		metricsCollector: NoopMetricsCollector{},
		logger:           discardLogger,
	}
	for _, fn := range optFns {
		if fn != nil {
			fn(&o)
		}
	}
	return o
}
