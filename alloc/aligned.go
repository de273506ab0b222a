package alloc

import "github.com/hupe1980/boolvec/internal/mem"

// Aligned allocates cache-line aligned storage from the Go heap.
type Aligned struct {
	_ struct{} // construct with NewAligned
}

// NewAligned returns an allocator whose buffers start on a 64-byte boundary.
func NewAligned() *Aligned {
	return &Aligned{}
}

// Allocate implements Allocator.
func (a *Aligned) Allocate(chunks int) ([]uint64, error) {
	if chunks < 0 {
		return nil, ErrInvalidChunks
	}
	return mem.AllocAlignedWords(chunks), nil
}

// Deallocate implements Allocator.
func (a *Aligned) Deallocate([]uint64) {}
