package alloc

import "sync/atomic"

// Stats is a snapshot of Counting's counters.
//
// Note on semantics:
//   - Allocations / Deallocations: successful calls (historical)
//   - Failures: Allocate calls that returned an error (historical)
//   - ChunksAllocated: total chunks ever handed out (historical)
//   - ChunksInUse: chunks handed out and not yet returned (current)
type Stats struct {
	Allocations     uint64
	Deallocations   uint64
	Failures        uint64
	ChunksAllocated uint64
	ChunksInUse     int64
}

// Counting wraps an Allocator and records what passes through it.
type Counting struct {
	inner Allocator

	allocations     atomic.Uint64
	deallocations   atomic.Uint64
	failures        atomic.Uint64
	chunksAllocated atomic.Uint64
	chunksInUse     atomic.Int64
}

// NewCounting wraps inner. A nil inner uses Default.
func NewCounting(inner Allocator) *Counting {
	if inner == nil {
		inner = Default
	}
	return &Counting{inner: inner}
}

// Allocate implements Allocator.
func (c *Counting) Allocate(chunks int) ([]uint64, error) {
	buf, err := c.inner.Allocate(chunks)
	if err != nil {
		c.failures.Add(1)
		return nil, err
	}

	c.allocations.Add(1)
	c.chunksAllocated.Add(uint64(len(buf)))
	c.chunksInUse.Add(int64(len(buf)))
	return buf, nil
}

// Deallocate implements Allocator.
func (c *Counting) Deallocate(buf []uint64) {
	n := len(buf)
	c.inner.Deallocate(buf)
	if n == 0 {
		return
	}
	c.deallocations.Add(1)
	c.chunksInUse.Add(-int64(n))
}

// MaxChunks implements Limiter by forwarding to the wrapped allocator.
func (c *Counting) MaxChunks() int {
	return MaxChunks(c.inner)
}

// Stats returns a snapshot of the counters.
func (c *Counting) Stats() Stats {
	return Stats{
		Allocations:     c.allocations.Load(),
		Deallocations:   c.deallocations.Load(),
		Failures:        c.failures.Load(),
		ChunksAllocated: c.chunksAllocated.Load(),
		ChunksInUse:     c.chunksInUse.Load(),
	}
}
