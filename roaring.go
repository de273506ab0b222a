package boolvec

import (
	"fmt"
	"math/bits"

	"github.com/RoaringBitmap/roaring/v2/roaring64"

	"github.com/hupe1980/boolvec/internal/conv"
)

// ToRoaring returns a Roaring bitmap holding the positions of all true elements.
func (v *Vector) ToRoaring() *roaring64.Bitmap {
	rb := roaring64.New()
	for wi, w := range v.words[:v.usedWords()] {
		base := uint64(wi) * ChunkBits
		for w != 0 {
			rb.Add(base + uint64(bits.TrailingZeros64(w)))
			w &= w - 1
		}
	}
	return rb
}

// FromRoaring creates a vector of the given size whose true elements are the
// positions held by rb. Every position in rb must be below size.
func FromRoaring(rb *roaring64.Bitmap, size int, optFns ...Option) (*Vector, error) {
	v, err := NewWithSize(size, optFns...)
	if err != nil {
		return nil, err
	}

	it := rb.Iterator()
	for it.HasNext() {
		pos := it.Next()
		i, err := conv.Uint64ToInt(pos)
		if err != nil || i >= size {
			v.Release()
			return nil, fmt.Errorf("%w: bitmap position %d with size %d", ErrIndexOutOfRange, pos, size)
		}
		v.setBit(i, true)
	}
	return v, nil
}
