package alloc

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHeap(t *testing.T) {
	buf, err := Heap{}.Allocate(4)
	require.NoError(t, err)
	assert.Len(t, buf, 4)
	assert.Equal(t, []uint64{0, 0, 0, 0}, buf)

	buf, err = Heap{}.Allocate(0)
	require.NoError(t, err)
	assert.Nil(t, buf)

	_, err = Heap{}.Allocate(-1)
	assert.ErrorIs(t, err, ErrInvalidChunks)
}

func TestMinimal(t *testing.T) {
	var a Allocator = Minimal{}

	buf, err := a.Allocate(3)
	require.NoError(t, err)
	assert.Len(t, buf, 3)
	a.Deallocate(buf)

	_, err = a.Allocate(-2)
	assert.ErrorIs(t, err, ErrInvalidChunks)

	_, isLimiter := a.(Limiter)
	assert.False(t, isLimiter)
}

func TestAligned(t *testing.T) {
	a := NewAligned()

	for _, n := range []int{1, 3, 8, 17} {
		buf, err := a.Allocate(n)
		require.NoError(t, err)
		assert.Len(t, buf, n)
		a.Deallocate(buf)
	}

	_, err := a.Allocate(-1)
	assert.ErrorIs(t, err, ErrInvalidChunks)
}

func TestMaxChunks(t *testing.T) {
	assert.Equal(t, math.MaxInt, MaxChunks(Heap{}))
	assert.Equal(t, math.MaxInt, MaxChunks(Minimal{}))
	assert.Equal(t, 10, MaxChunks(NewLimited(10)))
	assert.Equal(t, 10, MaxChunks(NewCounting(NewLimited(10))))
	assert.Equal(t, math.MaxInt, MaxChunks(NewCounting(nil)))
}

func TestOffHeap(t *testing.T) {
	a := NewOffHeap()

	buf, err := a.Allocate(16)
	require.NoError(t, err)
	require.Len(t, buf, 16)
	assert.Equal(t, int64(16*ChunkBytes), a.MappedBytes())

	for i := range buf {
		assert.Zero(t, buf[i])
		buf[i] = uint64(i) * 3
	}
	for i := range buf {
		assert.Equal(t, uint64(i)*3, buf[i])
	}

	a.Deallocate(buf)
	assert.Equal(t, int64(0), a.MappedBytes())

	buf, err = a.Allocate(0)
	require.NoError(t, err)
	assert.Nil(t, buf)
	a.Deallocate(nil)

	_, err = a.Allocate(-1)
	assert.ErrorIs(t, err, ErrInvalidChunks)
}
