// Package bitvector implements a growable, bit-packed sequence of booleans.
//
// Short vectors live entirely inside the BitVector value; once they outgrow
// it, the bits move to a buffer obtained from an alloc.Allocator whose size
// is always a power of two blocks. Bits past Len in the last block are left
// as they are by mutations and ignored by every read.
//
// The zero value is an empty vector that uses alloc.Default. A BitVector is
// not safe for concurrent use.
package bitvector

import (
	"github.com/pi/bitvector/alloc"
	"github.com/pi/bitvector/bits"
	"github.com/pi/bitvector/md"
	"github.com/pkg/errors"
)

type BitVector struct {
	alloc alloc.Allocator
	size  uint
	st    storage
}

// New returns an empty vector.
func New(opts ...Option) *BitVector {
	o := buildOptions(opts)
	return &BitVector{alloc: o.alloc}
}

// NewSized returns a vector of n bits, all equal to value.
func NewSized(n uint, value bool, opts ...Option) (*BitVector, error) {
	v := New(opts...)
	if err := v.Resize(n, value); err != nil {
		return nil, err
	}
	return v, nil
}

// FromUint64 returns a vector of n bits holding the low n bits of x.
func FromUint64(x uint64, n uint, opts ...Option) (*BitVector, error) {
	v, err := NewSized(n, false, opts...)
	if err != nil {
		return nil, err
	}
	lim := min(n, 64)
	for off := uint(0); off < lim; off += bits.BitsPerBlock {
		v.putBits(off, min(bits.BitsPerBlock, lim-off), uint(x>>off))
	}
	return v, nil
}

// Len returns the number of bits.
func (v *BitVector) Len() uint {
	return v.size
}

func (v *BitVector) Empty() bool {
	return v.size == 0
}

func (v *BitVector) blocks() []Block {
	return v.st.live(v.size)
}

// tailMask masks the live bits of the last block; size must be positive.
func (v *BitVector) tailMask() Block {
	return bits.LowMask(v.size - bits.BlocksToBits(bits.BlocksFor(v.size)-1))
}

// clearTail zeroes the bits past size in the last block.
func (v *BitVector) clearTail() {
	if v.size == 0 {
		return
	}
	b := v.blocks()
	b[len(b)-1] &= v.tailMask()
}

func (v *BitVector) get(pos uint) bool {
	return v.st.all()[bits.BlockIndex(pos)]&bits.BitMask(pos) != 0
}

func (v *BitVector) put(pos uint, value bool) {
	b := v.st.all()
	if value {
		b[bits.BlockIndex(pos)] |= bits.BitMask(pos)
	} else {
		b[bits.BlockIndex(pos)] &^= bits.BitMask(pos)
	}
}

// Test reports whether the bit at pos is set.
func (v *BitVector) Test(pos uint) (bool, error) {
	if pos >= v.size {
		return false, outOfRange("test", pos, v.size)
	}
	return v.get(pos), nil
}

// Set sets the bit at pos to value.
func (v *BitVector) Set(pos uint, value bool) error {
	if pos >= v.size {
		return outOfRange("set", pos, v.size)
	}
	v.put(pos, value)
	return nil
}

// Reset clears the bit at pos.
func (v *BitVector) Reset(pos uint) error {
	if pos >= v.size {
		return outOfRange("reset", pos, v.size)
	}
	v.put(pos, false)
	return nil
}

// Flip complements the bit at pos.
func (v *BitVector) Flip(pos uint) error {
	if pos >= v.size {
		return outOfRange("flip", pos, v.size)
	}
	v.st.all()[bits.BlockIndex(pos)] ^= bits.BitMask(pos)
	return nil
}

// At returns the bit at pos. It panics if pos is out of range.
func (v *BitVector) At(pos uint) bool {
	if pos >= v.size {
		panic("bit vector index out of range")
	}
	return v.get(pos)
}

func (v *BitVector) SetAll() {
	b := v.blocks()
	for i := range b {
		b[i] = bits.AllOnes
	}
}

func (v *BitVector) ResetAll() {
	clear(v.blocks())
}

func (v *BitVector) FlipAll() {
	b := v.blocks()
	for i := range b {
		b[i] = ^b[i]
	}
}

// Count returns the number of set bits.
func (v *BitVector) Count() uint {
	if v.size == 0 {
		return 0
	}
	b := v.blocks()
	last := len(b) - 1
	var n uint
	for _, w := range b[:last] {
		n += bits.PopCount(w)
	}
	return n + bits.PopCount(b[last]&v.tailMask())
}

// All reports whether every bit is set. It is true for an empty vector.
func (v *BitVector) All() bool {
	if v.size == 0 {
		return true
	}
	b := v.blocks()
	last := len(b) - 1
	for _, w := range b[:last] {
		if w != bits.AllOnes {
			return false
		}
	}
	m := v.tailMask()
	return b[last]&m == m
}

// Any reports whether at least one bit is set.
func (v *BitVector) Any() bool {
	if v.size == 0 {
		return false
	}
	b := v.blocks()
	last := len(b) - 1
	for _, w := range b[:last] {
		if w != 0 {
			return true
		}
	}
	return b[last]&v.tailMask() != 0
}

func (v *BitVector) None() bool {
	return !v.Any()
}

// PushBack appends a bit.
func (v *BitVector) PushBack(value bool) error {
	if v.size == md.MaxUint {
		return errors.Wrapf(ErrLength, "bitvector: push beyond %d bits", v.size)
	}
	if err := v.expandToHold(v.size + 1); err != nil {
		return err
	}
	v.size++
	v.put(v.size-1, value)
	return nil
}

// PopBack removes the last bit. It panics if the vector is empty.
func (v *BitVector) PopBack() {
	if v.size == 0 {
		panic("pop from empty bit vector")
	}
	v.size--
}

// fill sets the bits in [from, to) to value; the range must be within
// capacity.
func (v *BitVector) fill(from, to uint, value bool) {
	if from >= to {
		return
	}
	var w Block
	if value {
		w = bits.AllOnes
	}
	b := v.st.all()
	first, last := bits.BlockIndex(from), bits.BlockIndex(to-1)
	head := bits.AllOnes << bits.BitIndex(from)
	tail := bits.LowMask(bits.BitIndex(to-1) + 1)
	if first == last {
		m := head & tail
		b[first] = b[first]&^m | w&m
		return
	}
	b[first] = b[first]&^head | w&head
	for i := first + 1; i < last; i++ {
		b[i] = w
	}
	b[last] = b[last]&^tail | w&tail
}

// Resize changes the size to n. New bits are set to value.
func (v *BitVector) Resize(n uint, value bool) error {
	if n > v.size {
		if err := v.expandToHold(n); err != nil {
			return err
		}
		v.fill(v.size, n, value)
	}
	v.size = n
	return nil
}

// Assign replaces the contents with n bits equal to value.
func (v *BitVector) Assign(n uint, value bool) error {
	if err := v.expandToHold(n); err != nil {
		return err
	}
	v.fill(0, n, value)
	v.size = n
	return nil
}

// Clear empties the vector but keeps its storage.
func (v *BitVector) Clear() {
	v.size = 0
}

//
// Bit ranges
//

// Bits returns the n bits starting at from as the low bits of a word.
func (v *BitVector) Bits(from, n uint) (uint, error) {
	if n > bits.BitsPerBlock {
		return 0, errors.Wrapf(ErrInvalidArgument, "bitvector: read of %d bits", n)
	}
	if from > v.size || n > v.size-from {
		return 0, outOfRange("bits", from+n, v.size)
	}
	if n == 0 {
		return 0, nil
	}
	b := v.st.all()
	lp := bits.BitIndex(from)
	wi := bits.BlockIndex(from)
	val := b[wi] >> lp
	if lp+n > bits.BitsPerBlock {
		// bits in two blocks
		val |= b[wi+1] << (bits.BitsPerBlock - lp)
	}
	return val & bits.LowMask(n), nil
}

// putBits writes the low n bits of x at from; the range must be within
// capacity.
func (v *BitVector) putBits(from, n uint, x uint) {
	if n == 0 {
		return
	}
	b := v.st.all()
	lp := bits.BitIndex(from)
	wi := bits.BlockIndex(from)
	m := bits.LowMask(n)
	x &= m
	b[wi] = b[wi]&^(m<<lp) | x<<lp
	if lp+n > bits.BitsPerBlock {
		hm := bits.LowMask(lp + n - bits.BitsPerBlock)
		b[wi+1] = b[wi+1]&^hm | x>>(bits.BitsPerBlock-lp)
	}
}

// AppendBits appends the low n bits of x, lowest first.
func (v *BitVector) AppendBits(n, x uint) error {
	if n > bits.BitsPerBlock {
		return errors.Wrapf(ErrInvalidArgument, "bitvector: append of %d bits", n)
	}
	if n > md.MaxUint-v.size {
		return errors.Wrapf(ErrLength, "bitvector: append of %d bits to %d", n, v.size)
	}
	if err := v.expandToHold(v.size + n); err != nil {
		return err
	}
	v.putBits(v.size, n, x)
	v.size += n
	return nil
}

// NextSet returns the position of the first set bit at or after from.
func (v *BitVector) NextSet(from uint) (uint, bool) {
	if from >= v.size {
		return 0, false
	}
	b := v.blocks()
	last := len(b) - 1
	i := int(bits.BlockIndex(from))
	w := b[i] & (bits.AllOnes << bits.BitIndex(from))
	for {
		if i == last {
			w &= v.tailMask()
		}
		if w != 0 {
			return bits.BlocksToBits(uint(i)) + bits.TrailingZeros(w), true
		}
		i++
		if i > last {
			return 0, false
		}
		w = b[i]
	}
}
