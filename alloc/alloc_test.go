package alloc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHeap(t *testing.T) {
	b, err := Default.Allocate(16)
	require.NoError(t, err)
	assert.Len(t, b, 16)
	for _, w := range b {
		assert.Zero(t, w)
	}
	Default.Deallocate(b)

	_, err = Default.Allocate(Default.MaxBlocks() + 1)
	assert.ErrorIs(t, err, ErrOutOfMemory)

	assert.True(t, Compatible(Heap{}, Default))
	assert.Equal(t, Default, SelectOnCopy(Default))
}

func TestPool(t *testing.T) {
	p, err := NewPool(1024)
	require.NoError(t, err)
	defer func() { assert.NoError(t, p.Done()) }()
	assert.EqualValues(t, 1024, p.MaxBlocks())

	a, err := p.Allocate(100)
	require.NoError(t, err)
	assert.Len(t, a, 100)
	assert.EqualValues(t, 100, cap(a))
	b, err := p.Allocate(24)
	require.NoError(t, err)
	assert.EqualValues(t, 124, p.Allocated())

	for i := range a {
		a[i] = ^uint(0)
	}
	for _, w := range b {
		assert.Zero(t, w)
	}

	// only the most recent allocation rewinds
	p.Deallocate(a)
	assert.EqualValues(t, 124, p.Allocated())
	p.Deallocate(b)
	assert.EqualValues(t, 100, p.Allocated())

	_, err = p.Allocate(1000)
	assert.ErrorIs(t, err, ErrOutOfMemory)

	p.Reset()
	assert.EqualValues(t, 0, p.Allocated())
	c, err := p.Allocate(1024)
	require.NoError(t, err)
	for _, w := range c {
		if w != 0 {
			assert.FailNow(t, "reset did not clear pool")
		}
	}

	assert.True(t, Compatible(p, p))
	other, err := NewPool(8)
	require.NoError(t, err)
	assert.False(t, Compatible(p, other))
	assert.NoError(t, other.Done())
}

func TestLimited(t *testing.T) {
	l := NewLimited(nil, 10)
	a, err := l.Allocate(8)
	require.NoError(t, err)
	assert.EqualValues(t, 8, l.Live)

	_, err = l.Allocate(4)
	assert.ErrorIs(t, err, ErrOutOfMemory)
	assert.Equal(t, 1, l.Failures)

	b, err := l.Allocate(2)
	require.NoError(t, err)
	l.Deallocate(a)
	l.Deallocate(b)
	assert.EqualValues(t, 0, l.Live)
	assert.Equal(t, 2, l.Allocations)
	assert.Equal(t, 2, l.Deallocations)
	assert.EqualValues(t, 10, l.MaxBlocks())

	_, err = l.Allocate(11)
	assert.ErrorIs(t, err, ErrOutOfMemory)

	c := SelectOnCopy(l)
	require.IsType(t, &Limited{}, c)
	assert.NotSame(t, l, c)
	assert.EqualValues(t, 10, c.MaxBlocks())
	assert.False(t, Compatible(l, c))
	assert.True(t, Compatible(l, l))
}

func TestLimitedOverPool(t *testing.T) {
	p, err := NewPool(4)
	require.NoError(t, err)
	defer p.Done()

	l := NewLimited(p, 100)
	assert.EqualValues(t, 4, l.MaxBlocks())
	_, err = l.Allocate(8)
	assert.ErrorIs(t, err, ErrOutOfMemory)
	assert.EqualValues(t, 0, l.Live)
}
