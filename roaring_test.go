package boolvec

import (
	"testing"

	"github.com/RoaringBitmap/roaring/v2/roaring64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/boolvec/alloc"
)

func TestToRoaring(t *testing.T) {
	v, err := NewWithSize(300)
	require.NoError(t, err)
	for _, i := range []int{0, 63, 64, 200, 299} {
		require.NoError(t, v.Set(i, true))
	}

	rb := v.ToRoaring()
	assert.Equal(t, uint64(5), rb.GetCardinality())
	assert.Equal(t, []uint64{0, 63, 64, 200, 299}, rb.ToArray())

	assert.True(t, New().ToRoaring().IsEmpty())
}

func TestFromRoaring(t *testing.T) {
	rb := roaring64.BitmapOf(1, 65, 130)

	v, err := FromRoaring(rb, 131)
	require.NoError(t, err)
	assert.Equal(t, 131, v.Len())
	assert.Equal(t, 3, v.Count())
	assert.True(t, v.Get(1))
	assert.True(t, v.Get(65))
	assert.True(t, v.Get(130))

	assert.Equal(t, rb.ToArray(), v.ToRoaring().ToArray())
}

func TestFromRoaring_OutOfRange(t *testing.T) {
	limited := alloc.NewLimited(4)
	rb := roaring64.BitmapOf(3, 500)

	_, err := FromRoaring(rb, 100, WithAllocator(limited))
	assert.ErrorIs(t, err, ErrIndexOutOfRange)
	assert.Equal(t, 0, limited.Outstanding())

	_, err = FromRoaring(rb, -1)
	assert.ErrorIs(t, err, ErrInvalidSize)
}
