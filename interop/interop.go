// Package interop converts bit vectors to and from the RoaringBitmap and
// bits-and-blooms bitset representations.
package interop

import (
	"math"

	"github.com/RoaringBitmap/roaring/v2"
	"github.com/bits-and-blooms/bitset"
	"github.com/pi/bitvector"
	"github.com/pkg/errors"
)

// ToRoaring returns a bitmap holding the positions of v's set bits. Set
// positions must fit in 32 bits.
func ToRoaring(v *bitvector.BitVector) (*roaring.Bitmap, error) {
	bm := roaring.New()
	for pos, ok := v.NextSet(0); ok; pos, ok = v.NextSet(pos + 1) {
		if pos > math.MaxUint32 {
			return nil, errors.Wrapf(bitvector.ErrOverflow, "interop: position %d does not fit a roaring bitmap", pos)
		}
		bm.Add(uint32(pos))
	}
	return bm, nil
}

// FromRoaring returns a vector of n bits with the bitmap's positions set.
// Positions at or beyond n are ignored.
func FromRoaring(bm *roaring.Bitmap, n uint, opts ...bitvector.Option) (*bitvector.BitVector, error) {
	v, err := bitvector.NewSized(n, false, opts...)
	if err != nil {
		return nil, err
	}
	it := bm.Iterator()
	for it.HasNext() {
		pos := uint(it.Next())
		if pos >= n {
			break
		}
		v.Ref(pos).Set(true)
	}
	return v, nil
}

// ToBitSet returns a bitset of the same length as v.
func ToBitSet(v *bitvector.BitVector) *bitset.BitSet {
	bs := bitset.New(v.Len())
	for pos, ok := v.NextSet(0); ok; pos, ok = v.NextSet(pos + 1) {
		bs.Set(pos)
	}
	return bs
}

// FromBitSet returns a vector of bs.Len() bits.
func FromBitSet(bs *bitset.BitSet, opts ...bitvector.Option) (*bitvector.BitVector, error) {
	v, err := bitvector.NewSized(bs.Len(), false, opts...)
	if err != nil {
		return nil, err
	}
	for pos, ok := bs.NextSet(0); ok && pos < bs.Len(); pos, ok = bs.NextSet(pos + 1) {
		v.Ref(pos).Set(true)
	}
	return v, nil
}
