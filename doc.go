// Package boolvec provides a bit-packed dynamic array of booleans with pluggable storage.
//
// A Vector stores its elements 64 to a word (a chunk) in a buffer obtained from an
// alloc.Allocator. The allocator is chosen at construction and may impose a ceiling;
// the vector derives MaxSize from it and never grows past it.
//
// # Quick Start
//
//	v := boolvec.New()
//	_ = v.PushBack(true)
//	_ = v.Reserve(1000)      // capacity >= 1000, Len() still 1
//	fmt.Println(v.Get(0))    // true
//
// # Capacity
//
// Reserve(n) is a lower bound request, not a resize:
//
//   - n <= Cap(): nothing happens; the buffer is not replaced
//   - n > Cap(): ceil(n/64) chunks are allocated, elements copied, the old buffer released
//   - n > MaxSize() or the allocator refuses: ErrLengthExceeded, vector unchanged
//
// Appends (PushBack, Insert, Resize) grow to max(2*Cap(), needed), clamped to MaxSize.
//
// # Allocators
//
// Storage is requested through alloc.Allocator, so bounded or instrumented
// allocators can be swapped in without touching the container:
//
//	limited := alloc.NewLimited(10) // at most 10 chunks outstanding
//	v := boolvec.New(boolvec.WithAllocator(limited))
//
//	_ = v.Reserve(5)
//	err := v.Reserve(10 * 65536)
//	errors.Is(err, boolvec.ErrLengthExceeded) // true, v.Cap() >= 5 still holds
//
// # Failure Safety
//
// Every operation that allocates builds the new buffer first and swaps it in only
// on success. A failed Reserve, PushBack, Insert or Resize leaves Len, Cap and every
// element exactly as before.
//
// # Observability
//
// WithLogger attaches a slog-based Logger and WithMetricsCollector a MetricsCollector
// (BasicMetricsCollector in-process, prommetrics.Collector for Prometheus).
//
// # Thread Safety
//
// A Vector is not safe for concurrent use. Allocators shared between vectors are.
package boolvec
