package boolvec

import (
	"errors"
	"fmt"
	"math"
	"math/bits"
	"strings"
	"time"

	"github.com/hupe1980/boolvec/alloc"
	"github.com/hupe1980/boolvec/internal/conv"
)

// ChunkBits is the number of elements stored per chunk (one uint64 word).
const ChunkBits = 64

// maxSize bounds the element count of allocators without a ceiling.
// Kept at half the int range so capacity doubling cannot overflow.
const maxSize = math.MaxInt / 2

// Vector is a dynamic sequence of booleans packed ChunkBits to a word.
//
// Storage comes from the configured alloc.Allocator and is owned exclusively by
// the vector. Cap is always a multiple of ChunkBits and never below Len.
// Bits at positions >= Len are kept zero.
//
// A Vector is not safe for concurrent use.
type Vector struct {
	words []uint64
	size  int

	alloc   alloc.Allocator
	logger  *Logger
	metrics MetricsCollector
}

// New creates an empty vector. No storage is allocated until it is needed.
func New(optFns ...Option) *Vector {
	o := applyOptions(optFns)
	return &Vector{
		alloc:   o.allocator,
		logger:  o.logger,
		metrics: o.metricsCollector,
	}
}

// NewWithSize creates a vector holding n false elements.
func NewWithSize(n int, optFns ...Option) (*Vector, error) {
	return NewFilled(n, false, optFns...)
}

// NewFilled creates a vector holding n copies of value.
func NewFilled(n int, value bool, optFns ...Option) (*Vector, error) {
	v := New(optFns...)
	if err := v.Resize(n, value); err != nil {
		return nil, err
	}
	return v, nil
}

// Len returns the number of elements.
func (v *Vector) Len() int {
	return v.size
}

// Cap returns the number of elements the vector can hold without reallocating.
func (v *Vector) Cap() int {
	return len(v.words) * ChunkBits
}

// Empty reports whether the vector has no elements.
func (v *Vector) Empty() bool {
	return v.size == 0
}

// MaxSize returns the largest element count the allocator permits.
func (v *Vector) MaxSize() int {
	chunks := alloc.MaxChunks(v.alloc)
	if chunks > maxSize/ChunkBits {
		return maxSize
	}
	return chunks * ChunkBits
}

// Reserve ensures Cap() >= n without changing Len or any element.
//
// If n <= Cap() (including n <= 0) nothing happens. Otherwise the vector
// allocates ceil(n/ChunkBits) chunks, copies its elements and releases the old
// buffer. If n exceeds MaxSize or the allocator reports alloc.ErrCapacityExceeded,
// Reserve returns an error matching ErrLengthExceeded and the vector is left
// exactly as it was.
func (v *Vector) Reserve(n int) error {
	start := time.Now()
	err := v.reserve(n)
	v.metrics.RecordReserve(n, time.Since(start), err)
	v.logger.LogReserve(n, v.size, v.Cap(), err)
	return err
}

func (v *Vector) reserve(n int) error {
	if n <= v.Cap() {
		return nil
	}
	if limit := v.MaxSize(); n > limit {
		return &LengthError{Op: "reserve", Requested: n, Max: limit}
	}
	return v.reallocate("reserve", n)
}

// reallocate moves the elements into a fresh buffer holding at least n
// elements. The current buffer is not touched until the new one is ready.
func (v *Vector) reallocate(op string, n int) error {
	chunks := conv.CeilDiv(n, ChunkBits)

	buf, err := v.alloc.Allocate(chunks)
	if err != nil {
		if errors.Is(err, alloc.ErrCapacityExceeded) {
			return &LengthError{Op: op, Requested: n, Max: v.MaxSize(), cause: err}
		}
		return fmt.Errorf("boolvec: %s: allocate %d chunks: %w", op, chunks, err)
	}
	if len(buf) < chunks {
		v.alloc.Deallocate(buf)
		return fmt.Errorf("boolvec: %s: allocator returned %d chunks, want %d", op, len(buf), chunks)
	}

	used := v.usedWords()
	copy(buf, v.words[:used])
	clear(buf[used:])

	old := v.words
	v.words = buf
	if len(old) > 0 {
		v.alloc.Deallocate(old)
	}

	v.metrics.RecordReallocation(len(old), len(buf))
	v.logger.LogReallocate(op, len(old), len(buf))
	return nil
}

// grow makes room for newSize elements using the amortized growth policy.
func (v *Vector) grow(op string, newSize int) error {
	if newSize <= v.Cap() {
		return nil
	}
	target, err := v.recommend(op, newSize)
	if err != nil {
		return err
	}
	return v.reallocate(op, target)
}

// recommend returns the capacity to grow to for newSize elements:
// max(2*Cap(), newSize rounded up to a chunk), clamped to MaxSize.
func (v *Vector) recommend(op string, newSize int) (int, error) {
	limit := v.MaxSize()
	if newSize > limit {
		return 0, &LengthError{Op: op, Requested: newSize, Max: limit}
	}

	c := v.Cap()
	if c >= limit/2 {
		return limit, nil
	}
	return max(2*c, alignUp(newSize)), nil
}

// ShrinkToFit releases unused chunks. The vector is unchanged on error.
func (v *Vector) ShrinkToFit() error {
	used := v.usedWords()
	if used == len(v.words) {
		return nil
	}
	if used == 0 {
		v.Release()
		return nil
	}
	return v.reallocate("shrink", v.size)
}

// Release returns the storage to the allocator and empties the vector.
// The vector stays usable.
func (v *Vector) Release() {
	if len(v.words) > 0 {
		n := len(v.words)
		v.alloc.Deallocate(v.words)
		v.logger.LogRelease(n)
	}
	v.words = nil
	v.size = 0
}

// Get returns the element at i. Positions outside [0, Len()) read as false.
func (v *Vector) Get(i int) bool {
	if i < 0 || i >= v.size {
		return false
	}
	return v.bit(i)
}

// Set stores b at position i.
func (v *Vector) Set(i int, b bool) error {
	if i < 0 || i >= v.size {
		return indexError("set", i, v.size)
	}
	v.setBit(i, b)
	return nil
}

// Flip inverts the element at position i.
func (v *Vector) Flip(i int) error {
	if i < 0 || i >= v.size {
		return indexError("flip", i, v.size)
	}
	v.words[i/ChunkBits] ^= uint64(1) << uint(i%ChunkBits)
	return nil
}

// FlipAll inverts every element.
func (v *Vector) FlipAll() {
	used := v.usedWords()
	for i := range v.words[:used] {
		v.words[i] = ^v.words[i]
	}
	v.clearTail()
}

// Count returns the number of true elements.
func (v *Vector) Count() int {
	n := 0
	for _, w := range v.words[:v.usedWords()] {
		n += bits.OnesCount64(w)
	}
	return n
}

// ForEach calls fn for each element in order until fn returns false.
func (v *Vector) ForEach(fn func(i int, b bool) bool) {
	for i := 0; i < v.size; i++ {
		if !fn(i, v.bit(i)) {
			return
		}
	}
}

// Clone returns a copy using the same allocator, logger and metrics collector.
// The copy's capacity is Len() rounded up to a chunk.
func (v *Vector) Clone() (*Vector, error) {
	c := &Vector{
		alloc:   v.alloc,
		logger:  v.logger,
		metrics: v.metrics,
	}
	if err := c.reserve(v.size); err != nil {
		return nil, err
	}
	used := v.usedWords()
	copy(c.words, v.words[:used])
	c.size = v.size
	return c, nil
}

// Equal reports whether both vectors hold the same elements.
func (v *Vector) Equal(other *Vector) bool {
	if v.size != other.size {
		return false
	}
	used := v.usedWords()
	for i := 0; i < used; i++ {
		if v.words[i] != other.words[i] {
			return false
		}
	}
	return true
}

// Swap exchanges the contents, storage and allocators of v and other.
func (v *Vector) Swap(other *Vector) {
	*v, *other = *other, *v
}

// String renders the elements as a string of 0s and 1s, index 0 first.
func (v *Vector) String() string {
	var sb strings.Builder
	sb.Grow(v.size)
	for i := 0; i < v.size; i++ {
		if v.bit(i) {
			sb.WriteByte('1')
		} else {
			sb.WriteByte('0')
		}
	}
	return sb.String()
}

func (v *Vector) usedWords() int {
	return conv.CeilDiv(v.size, ChunkBits)
}

func (v *Vector) bit(i int) bool {
	return v.words[i/ChunkBits]&(uint64(1)<<uint(i%ChunkBits)) != 0
}

func (v *Vector) setBit(i int, b bool) {
	mask := uint64(1) << uint(i%ChunkBits)
	if b {
		v.words[i/ChunkBits] |= mask
	} else {
		v.words[i/ChunkBits] &^= mask
	}
}

// fillRange sets positions [from, to) to value a word at a time.
func (v *Vector) fillRange(from, to int, value bool) {
	for from < to {
		w := from / ChunkBits
		off := from % ChunkBits
		n := min(ChunkBits-off, to-from)
		mask := lowMask(n) << uint(off)
		if value {
			v.words[w] |= mask
		} else {
			v.words[w] &^= mask
		}
		from += n
	}
}

// clearTail zeroes the bits past Len() in the last used word.
func (v *Vector) clearTail() {
	if r := v.size % ChunkBits; r != 0 {
		v.words[v.size/ChunkBits] &= lowMask(r)
	}
}

func lowMask(n int) uint64 {
	if n >= ChunkBits {
		return math.MaxUint64
	}
	return uint64(1)<<uint(n) - 1
}

func alignUp(n int) int {
	return conv.CeilDiv(n, ChunkBits) * ChunkBits
}
