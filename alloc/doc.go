// Package alloc defines the storage capability used by boolvec containers.
//
// A container never calls make for its packed storage. It asks an Allocator for a
// number of chunks (uint64 words) and hands them back through Deallocate when the
// storage is replaced or released. Allocators may impose a ceiling by implementing
// Limiter; containers derive their maximum element count from it.
//
// # Allocators
//
//	┌────────────┬──────────────┬──────────────────────────────────────────┐
//	│ Allocator  │ Ceiling      │ Storage                                  │
//	├────────────┼──────────────┼──────────────────────────────────────────┤
//	│ Heap       │ none         │ Go heap (Default)                        │
//	│ Minimal    │ none         │ Go heap, bare two-method implementation  │
//	│ Aligned    │ none         │ Go heap, 64-byte aligned                 │
//	│ OffHeap    │ none         │ anonymous mmap (heap fallback on windows)│
//	│ Limited    │ max chunks   │ wraps another allocator, quota enforced  │
//	│ Counting   │ forwarded    │ wraps another allocator, records stats   │
//	└────────────┴──────────────┴──────────────────────────────────────────┘
//
// # Example
//
//	a := alloc.NewCounting(alloc.NewLimited(10))
//	buf, err := a.Allocate(4)
//	if errors.Is(err, alloc.ErrCapacityExceeded) {
//	    // ceiling reached
//	}
//	defer a.Deallocate(buf)
//
// # Thread Safety
//
// Heap, Minimal, Aligned and OffHeap are stateless (OffHeap only keeps atomic
// counters). Limited and Counting use atomics and a semaphore, so a single
// instance can be shared by containers on different goroutines.
package alloc
