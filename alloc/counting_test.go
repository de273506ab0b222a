package alloc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCounting(t *testing.T) {
	c := NewCounting(nil)

	a, err := c.Allocate(3)
	require.NoError(t, err)
	b, err := c.Allocate(5)
	require.NoError(t, err)

	s := c.Stats()
	assert.Equal(t, uint64(2), s.Allocations)
	assert.Equal(t, uint64(8), s.ChunksAllocated)
	assert.Equal(t, int64(8), s.ChunksInUse)

	c.Deallocate(a)
	c.Deallocate(nil)

	s = c.Stats()
	assert.Equal(t, uint64(1), s.Deallocations)
	assert.Equal(t, int64(5), s.ChunksInUse)

	_, err = c.Allocate(-1)
	assert.ErrorIs(t, err, ErrInvalidChunks)
	assert.Equal(t, uint64(1), c.Stats().Failures)

	c.Deallocate(b)
	assert.Equal(t, int64(0), c.Stats().ChunksInUse)
}

func TestCounting_ForwardsLimit(t *testing.T) {
	c := NewCounting(NewLimited(2))
	assert.Equal(t, 2, c.MaxChunks())

	_, err := c.Allocate(3)
	assert.ErrorIs(t, err, ErrCapacityExceeded)
	assert.Equal(t, uint64(1), c.Stats().Failures)
	assert.Equal(t, uint64(0), c.Stats().Allocations)
}
