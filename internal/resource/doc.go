// Package resource implements the quota controller behind bounded allocators.
//
// A Controller tracks how many storage units are outstanding and, when a limit is
// configured, refuses acquisitions that would push the total past it:
//
//	┌─────────────────────────────────────────────┐
//	│                 Controller                  │
//	├──────────────────────┬──────────────────────┤
//	│  Limit (semaphore)   │  Usage (atomic)      │
//	├──────────────────────┼──────────────────────┤
//	│  TryAcquire          │  Usage               │
//	│  (non-blocking)      │  Peak                │
//	│  Release             │  Limit               │
//	└──────────────────────┴──────────────────────┘
//
// TryAcquire never blocks. It returns ErrLimitExceeded immediately and the caller
// decides what to do (allocators report it as a capacity failure):
//
//	rc := resource.NewController(resource.Config{Limit: 10})
//
//	if err := rc.TryAcquire(4); err != nil {
//	    // ErrLimitExceeded
//	}
//	defer rc.Release(4)
//
// # Thread Safety
//
// All Controller methods are safe for concurrent use, so one controller can back
// an allocator shared by many containers.
//
// # Nil Safety
//
// All methods handle a nil Controller gracefully - they become no-ops.
package resource
