package interop

import (
	"testing"

	"github.com/RoaringBitmap/roaring/v2"
	"github.com/bits-and-blooms/bitset"
	"github.com/pi/bitvector"
	"github.com/pi/bitvector/alloc"
	"github.com/pi/bitvector/th"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func randomVector(t *testing.T, g th.SeqGen, n int) *bitvector.BitVector {
	t.Helper()
	v := bitvector.New()
	for _, b := range th.Bools(g, n) {
		require.NoError(t, v.PushBack(b))
	}
	return v
}

func TestRoaring(t *testing.T) {
	g := th.NewSeqGen(th.SgRand)
	for _, n := range []int{0, 10, 128, 129, 5000} {
		v := randomVector(t, g, n)
		bm, err := ToRoaring(v)
		require.NoError(t, err)
		assert.EqualValues(t, v.Count(), bm.GetCardinality())
		for i := 0; i < n; i++ {
			require.Equal(t, v.At(uint(i)), bm.Contains(uint32(i)))
		}

		back, err := FromRoaring(bm, uint(n))
		require.NoError(t, err)
		assert.True(t, back.Equal(v))
	}
}

func TestFromRoaringTruncates(t *testing.T) {
	bm := roaring.BitmapOf(1, 3, 200, 1000)
	l := alloc.NewLimited(nil, 64)
	v, err := FromRoaring(bm, 201, bitvector.WithAllocator(l))
	require.NoError(t, err)
	assert.EqualValues(t, 201, v.Len())
	assert.EqualValues(t, 3, v.Count())
	assert.True(t, v.At(200))
	assert.Same(t, l, v.Allocator())
}

// bits-and-blooms bitset serves as a reference implementation.
func TestBitSetOracle(t *testing.T) {
	g := th.NewSeqGen(th.SgTwist)
	for _, n := range []int{1, 63, 64, 65, 129, 1000} {
		a := randomVector(t, g, n)
		b := randomVector(t, g, n)
		as, bs := ToBitSet(a), ToBitSet(b)
		assert.EqualValues(t, n, as.Len())
		assert.EqualValues(t, as.Count(), a.Count())

		require.NoError(t, a.Xor(b))
		as.InPlaceSymmetricDifference(bs)
		assert.EqualValues(t, as.Count(), a.Count())

		require.NoError(t, a.Or(b))
		as.InPlaceUnion(bs)
		assert.EqualValues(t, as.Count(), a.Count())

		a.FlipAll()
		as = as.Complement()
		assert.EqualValues(t, as.Count(), a.Count())
		assert.Equal(t, as.All(), a.All())
		assert.Equal(t, as.Any(), a.Any())

		back, err := FromBitSet(as)
		require.NoError(t, err)
		assert.True(t, back.Equal(a), "n=%d", n)
	}
}

func TestFromBitSet(t *testing.T) {
	bs := bitset.New(300)
	bs.Set(0).Set(64).Set(299)
	v, err := FromBitSet(bs)
	require.NoError(t, err)
	assert.EqualValues(t, 300, v.Len())
	assert.EqualValues(t, 3, v.Count())
	p, ok := v.NextSet(1)
	assert.True(t, ok)
	assert.EqualValues(t, 64, p)
}
