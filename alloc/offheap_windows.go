//go:build windows

package alloc

import "sync/atomic"

// OffHeap falls back to heap storage on windows.
type OffHeap struct {
	mapped atomic.Int64
}

// NewOffHeap returns a heap-backed stand-in for the mmap allocator.
func NewOffHeap() *OffHeap {
	return &OffHeap{}
}

// Allocate implements Allocator.
func (o *OffHeap) Allocate(chunks int) ([]uint64, error) {
	buf, err := Heap{}.Allocate(chunks)
	if err != nil {
		return nil, err
	}
	o.mapped.Add(int64(len(buf) * ChunkBytes))
	return buf, nil
}

// Deallocate implements Allocator.
func (o *OffHeap) Deallocate(buf []uint64) {
	o.mapped.Add(-int64(len(buf) * ChunkBytes))
}

// MappedBytes returns the number of bytes currently handed out.
func (o *OffHeap) MappedBytes() int64 {
	return o.mapped.Load()
}
