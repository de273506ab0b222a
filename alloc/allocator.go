package alloc

import (
	"errors"
	"math"
)

var (
	// ErrCapacityExceeded is returned when an allocator cannot satisfy a request
	// because of its configured ceiling.
	ErrCapacityExceeded = errors.New("alloc: capacity exceeded")
	// ErrInvalidChunks is returned for negative chunk counts.
	ErrInvalidChunks = errors.New("alloc: invalid chunk count")
)

// ChunkBytes is the size of one storage chunk.
const ChunkBytes = 8

// Allocator supplies chunked storage.
//
// Allocate returns a zeroed buffer with len >= chunks. A request for zero chunks
// may return nil. Deallocate receives exactly the slice Allocate returned.
type Allocator interface {
	Allocate(chunks int) ([]uint64, error)
	Deallocate(buf []uint64)
}

// Limiter is implemented by allocators that never hand out more than a fixed
// number of chunks.
type Limiter interface {
	MaxChunks() int
}

// MaxChunks returns the chunk ceiling of a, or math.MaxInt when a has none.
func MaxChunks(a Allocator) int {
	if l, ok := a.(Limiter); ok {
		if n := l.MaxChunks(); n >= 0 {
			return n
		}
	}
	return math.MaxInt
}

// Default is the allocator used when none is configured.
var Default Allocator = Heap{}

// Heap allocates from the Go heap. It has no ceiling.
type Heap struct{}

// Allocate implements Allocator.
func (Heap) Allocate(chunks int) ([]uint64, error) {
	if chunks < 0 {
		return nil, ErrInvalidChunks
	}
	if chunks == 0 {
		return nil, nil
	}
	return make([]uint64, chunks), nil
}

// Deallocate implements Allocator. Heap storage is reclaimed by the GC.
func (Heap) Deallocate([]uint64) {}

// Minimal is the smallest allocator satisfying the interface. It exists to check
// that containers rely on nothing beyond Allocate and Deallocate.
type Minimal struct{}

// Allocate implements Allocator.
func (Minimal) Allocate(chunks int) ([]uint64, error) {
	if chunks < 0 {
		return nil, ErrInvalidChunks
	}
	return make([]uint64, chunks), nil
}

// Deallocate implements Allocator.
func (Minimal) Deallocate([]uint64) {}
