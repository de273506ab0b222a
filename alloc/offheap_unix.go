//go:build !windows

package alloc

import (
	"fmt"
	"sync/atomic"
	"unsafe"

	"golang.org/x/sys/unix"

	"github.com/hupe1980/boolvec/internal/conv"
)

// OffHeap allocates chunks from anonymous memory mappings outside the Go heap.
// Buffers are invisible to the GC and must be returned through Deallocate.
type OffHeap struct {
	mapped atomic.Int64
}

// NewOffHeap returns an mmap-backed allocator.
func NewOffHeap() *OffHeap {
	return &OffHeap{}
}

// Allocate implements Allocator.
func (o *OffHeap) Allocate(chunks int) ([]uint64, error) {
	if chunks < 0 {
		return nil, ErrInvalidChunks
	}
	if chunks == 0 {
		return nil, nil
	}

	size, err := conv.MulInt(chunks, ChunkBytes)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCapacityExceeded, err)
	}

	data, err := unix.Mmap(-1, 0, size, unix.PROT_READ|unix.PROT_WRITE, unix.MAP_ANON|unix.MAP_PRIVATE)
	if err != nil {
		return nil, fmt.Errorf("alloc: mmap %d bytes: %w", size, err)
	}
	o.mapped.Add(int64(size))

	return unsafe.Slice((*uint64)(unsafe.Pointer(&data[0])), chunks), nil //nolint:gosec // mapping is page aligned
}

// Deallocate implements Allocator.
func (o *OffHeap) Deallocate(buf []uint64) {
	if len(buf) == 0 {
		return
	}

	size := len(buf) * ChunkBytes
	data := unsafe.Slice((*byte)(unsafe.Pointer(&buf[0])), size) //nolint:gosec // reconstructs the original mapping
	if err := unix.Munmap(data); err == nil {
		o.mapped.Add(-int64(size))
	}
}

// MappedBytes returns the number of bytes currently mapped.
func (o *OffHeap) MappedBytes() int64 {
	return o.mapped.Load()
}
