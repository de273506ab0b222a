package alloc

import (
	"fmt"

	"github.com/hupe1980/boolvec/internal/resource"
)

// Limited caps the number of chunks outstanding at any time.
//
// The cap covers every buffer handed out and not yet returned, so a container
// that grows by reallocation briefly holds both its old and its new buffer.
// One Limited may be shared by several containers; they then draw from the same quota.
type Limited struct {
	inner     Allocator
	quota     *resource.Controller
	maxChunks int
}

// NewLimited returns a heap allocator that never has more than maxChunks
// chunks outstanding.
func NewLimited(maxChunks int) *Limited {
	return NewLimitedWith(Default, maxChunks)
}

// NewLimitedWith bounds inner to maxChunks outstanding chunks.
// A nil inner uses Default. A negative maxChunks is treated as 0.
func NewLimitedWith(inner Allocator, maxChunks int) *Limited {
	if inner == nil {
		inner = Default
	}
	if maxChunks < 0 {
		maxChunks = 0
	}

	l := &Limited{
		inner:     inner,
		maxChunks: maxChunks,
	}

	if maxChunks > 0 {
		l.quota = resource.NewController(resource.Config{Limit: int64(maxChunks)})
	}

	return l
}

// Allocate implements Allocator.
func (l *Limited) Allocate(chunks int) ([]uint64, error) {
	if chunks < 0 {
		return nil, ErrInvalidChunks
	}
	if chunks == 0 {
		return nil, nil
	}
	if chunks > l.maxChunks {
		return nil, fmt.Errorf("%w: %d chunks requested, limit %d", ErrCapacityExceeded, chunks, l.maxChunks)
	}

	if err := l.quota.TryAcquire(int64(chunks)); err != nil {
		return nil, fmt.Errorf("%w: %d chunks requested, %d of %d outstanding: %w",
			ErrCapacityExceeded, chunks, l.quota.Usage(), l.maxChunks, err)
	}

	buf, err := l.inner.Allocate(chunks)
	if err != nil {
		l.quota.Release(int64(chunks))
		return nil, err
	}

	// Account for any slack the inner allocator handed out.
	if extra := len(buf) - chunks; extra > 0 {
		if err := l.quota.TryAcquire(int64(extra)); err != nil {
			l.inner.Deallocate(buf)
			l.quota.Release(int64(chunks))
			return nil, fmt.Errorf("%w: %w", ErrCapacityExceeded, err)
		}
	}

	return buf, nil
}

// Deallocate implements Allocator.
func (l *Limited) Deallocate(buf []uint64) {
	if len(buf) == 0 {
		return
	}
	n := len(buf)
	l.inner.Deallocate(buf)
	l.quota.Release(int64(n))
}

// MaxChunks implements Limiter.
func (l *Limited) MaxChunks() int {
	return l.maxChunks
}

// Outstanding returns the number of chunks currently handed out.
func (l *Limited) Outstanding() int {
	return int(l.quota.Usage())
}

// Peak returns the highest number of chunks outstanding at once.
func (l *Limited) Peak() int {
	return int(l.quota.Peak())
}
