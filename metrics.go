package boolvec

import (
	"sync/atomic"
	"time"
)

// MetricsCollector defines an interface for collecting storage metrics.
// Implement this interface to integrate with monitoring systems; the prommetrics
// package ships a Prometheus implementation.
type MetricsCollector interface {
	// RecordReserve is called after each Reserve call.
	// requested is the argument, err is nil if successful.
	RecordReserve(requested int, duration time.Duration, err error)

	// RecordReallocation is called whenever the vector adopts a new buffer.
	RecordReallocation(oldChunks, newChunks int)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordReserve(int, time.Duration, error) {}
func (NoopMetricsCollector) RecordReallocation(int, int)             {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and tests without external dependencies.
type BasicMetricsCollector struct {
	ReserveCount      atomic.Int64
	ReserveErrors     atomic.Int64
	ReserveTotalNanos atomic.Int64
	ReallocationCount atomic.Int64
	ChunksAllocated   atomic.Int64
	ChunksReleased    atomic.Int64
}

// RecordReserve implements MetricsCollector.
func (b *BasicMetricsCollector) RecordReserve(_ int, duration time.Duration, err error) {
	b.ReserveCount.Add(1)
	b.ReserveTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.ReserveErrors.Add(1)
	}
}

// RecordReallocation implements MetricsCollector.
func (b *BasicMetricsCollector) RecordReallocation(oldChunks, newChunks int) {
	b.ReallocationCount.Add(1)
	b.ChunksAllocated.Add(int64(newChunks))
	b.ChunksReleased.Add(int64(oldChunks))
}

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	return BasicMetricsStats{
		ReserveCount:      b.ReserveCount.Load(),
		ReserveErrors:     b.ReserveErrors.Load(),
		ReserveAvgNanos:   b.getAvgReserveNanos(),
		ReallocationCount: b.ReallocationCount.Load(),
		ChunksAllocated:   b.ChunksAllocated.Load(),
		ChunksReleased:    b.ChunksReleased.Load(),
	}
}

func (b *BasicMetricsCollector) getAvgReserveNanos() int64 {
	count := b.ReserveCount.Load()
	if count == 0 {
		return 0
	}
	return b.ReserveTotalNanos.Load() / count
}

// BasicMetricsStats is a snapshot of BasicMetricsCollector state.
type BasicMetricsStats struct {
	ReserveCount      int64
	ReserveErrors     int64
	ReserveAvgNanos   int64
	ReallocationCount int64
	ChunksAllocated   int64
	ChunksReleased    int64
}
