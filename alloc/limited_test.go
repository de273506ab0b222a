package alloc

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLimited_Ceiling(t *testing.T) {
	l := NewLimited(10)
	assert.Equal(t, 10, l.MaxChunks())

	// Single request above the ceiling
	_, err := l.Allocate(11)
	assert.ErrorIs(t, err, ErrCapacityExceeded)
	assert.Equal(t, 0, l.Outstanding())

	a, err := l.Allocate(6)
	require.NoError(t, err)
	assert.Len(t, a, 6)
	assert.Equal(t, 6, l.Outstanding())

	// 6 + 5 > 10
	_, err = l.Allocate(5)
	assert.ErrorIs(t, err, ErrCapacityExceeded)
	assert.Equal(t, 6, l.Outstanding())

	b, err := l.Allocate(4)
	require.NoError(t, err)
	assert.Equal(t, 10, l.Outstanding())

	l.Deallocate(a)
	assert.Equal(t, 4, l.Outstanding())
	l.Deallocate(b)
	assert.Equal(t, 0, l.Outstanding())
	assert.Equal(t, 10, l.Peak())
}

func TestLimited_Zero(t *testing.T) {
	l := NewLimited(0)

	buf, err := l.Allocate(0)
	require.NoError(t, err)
	assert.Nil(t, buf)

	_, err = l.Allocate(1)
	assert.ErrorIs(t, err, ErrCapacityExceeded)

	_, err = l.Allocate(-1)
	assert.ErrorIs(t, err, ErrInvalidChunks)

	assert.Equal(t, 0, NewLimited(-3).MaxChunks())
}

type slackAllocator struct {
	slack int
}

func (s slackAllocator) Allocate(chunks int) ([]uint64, error) {
	return make([]uint64, chunks+s.slack), nil
}

func (s slackAllocator) Deallocate([]uint64) {}

func TestLimited_AccountsForSlack(t *testing.T) {
	l := NewLimitedWith(slackAllocator{slack: 2}, 10)

	buf, err := l.Allocate(4)
	require.NoError(t, err)
	assert.Len(t, buf, 6)
	assert.Equal(t, 6, l.Outstanding())

	// 4 requested fits the 10 ceiling, but 4+2 slack does not.
	_, err = l.Allocate(4)
	assert.ErrorIs(t, err, ErrCapacityExceeded)
	assert.Equal(t, 6, l.Outstanding())

	l.Deallocate(buf)
	assert.Equal(t, 0, l.Outstanding())
}

func TestLimited_Shared(t *testing.T) {
	l := NewLimited(64)

	var wg sync.WaitGroup
	for range 16 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range 200 {
				buf, err := l.Allocate(4)
				if err != nil {
					continue
				}
				l.Deallocate(buf)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 0, l.Outstanding())
	assert.LessOrEqual(t, l.Peak(), 64)
}
