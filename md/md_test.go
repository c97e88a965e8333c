package md

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConstants(t *testing.T) {
	assert.EqualValues(t, 1<<UintSizeShift, BitsPerUint)
	assert.EqualValues(t, BitsPerUint/8, BytesPerUint)
	assert.EqualValues(t, BitsPerUint-1, UintSizeMask)
	assert.True(t, MaxInt > 0)
}

func TestVAlloc(t *testing.T) {
	mem, err := VAlloc(100)
	require.NoError(t, err)
	assert.Len(t, mem, 100)
	assert.EqualValues(t, PageSize, cap(mem))
	for _, b := range mem {
		if b != 0 {
			assert.FailNow(t, "mapping not zeroed")
		}
	}
	mem[99] = 0xff
	assert.NoError(t, VFree(mem))

	mem, err = VAlloc(0)
	assert.NoError(t, err)
	assert.Nil(t, mem)
	assert.NoError(t, VFree(mem))
}

func TestPageRound(t *testing.T) {
	assert.EqualValues(t, 0, PageRound(0))
	assert.EqualValues(t, PageSize, PageRound(1))
	assert.EqualValues(t, PageSize, PageRound(PageSize))
	assert.EqualValues(t, 2*PageSize, PageRound(PageSize+1))
}
