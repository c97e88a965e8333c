package bitvector

//
// Comparison and bitwise operators
//

import "github.com/pi/bitvector/bits"

// Equal reports whether v and o hold the same bits. Allocators are not
// compared.
func (v *BitVector) Equal(o *BitVector) bool {
	if v.size != o.size {
		return false
	}
	if v.size == 0 {
		return true
	}
	a, b := v.blocks(), o.blocks()
	last := len(a) - 1
	for i := 0; i < last; i++ {
		if a[i] != b[i] {
			return false
		}
	}
	m := v.tailMask()
	return a[last]&m == b[last]&m
}

// And sets v to v AND o. Both vectors must have the same size.
func (v *BitVector) And(o *BitVector) error {
	if v.size != o.size {
		return sizeMismatch("and", v.size, o.size)
	}
	a, b := v.blocks(), o.blocks()
	for i := range a {
		a[i] &= b[i]
	}
	return nil
}

// Or sets v to v OR o. Both vectors must have the same size.
func (v *BitVector) Or(o *BitVector) error {
	if v.size != o.size {
		return sizeMismatch("or", v.size, o.size)
	}
	a, b := v.blocks(), o.blocks()
	for i := range a {
		a[i] |= b[i]
	}
	return nil
}

// Xor sets v to v XOR o. Both vectors must have the same size.
func (v *BitVector) Xor(o *BitVector) error {
	if v.size != o.size {
		return sizeMismatch("xor", v.size, o.size)
	}
	a, b := v.blocks(), o.blocks()
	for i := range a {
		a[i] ^= b[i]
	}
	return nil
}

// Not returns a complemented copy of v.
func (v *BitVector) Not() (*BitVector, error) {
	c, err := v.Clone()
	if err != nil {
		return nil, err
	}
	c.FlipAll()
	return c, nil
}

// ShiftLeft moves every bit k positions up (bit i goes to i+k); bits
// shifted past the end are lost and the low k bits become zero.
func (v *BitVector) ShiftLeft(k uint) {
	if k >= v.size {
		v.ResetAll()
		return
	}
	b := v.blocks()
	shift, off := bits.BlockIndex(k), bits.BitIndex(k)
	for i := len(b) - 1; i >= int(shift); i-- {
		src := i - int(shift)
		w := b[src] << off
		if off != 0 && src > 0 {
			w |= b[src-1] >> (bits.BitsPerBlock - off)
		}
		b[i] = w
	}
	clear(b[:shift])
}

// ShiftRight moves every bit k positions down (bit i goes to i-k); the
// high k bits become zero.
func (v *BitVector) ShiftRight(k uint) {
	if k >= v.size {
		v.ResetAll()
		return
	}
	// stale tail bits would otherwise be shifted into range
	v.clearTail()
	b := v.blocks()
	n := len(b)
	shift, off := int(bits.BlockIndex(k)), bits.BitIndex(k)
	for i := 0; i < n-shift; i++ {
		src := i + shift
		w := b[src] >> off
		if off != 0 && src+1 < n {
			w |= b[src+1] << (bits.BitsPerBlock - off)
		}
		b[i] = w
	}
	clear(b[n-shift:])
}

// Lsh returns a copy of v shifted left by k.
func (v *BitVector) Lsh(k uint) (*BitVector, error) {
	c, err := v.Clone()
	if err != nil {
		return nil, err
	}
	c.ShiftLeft(k)
	return c, nil
}

// Rsh returns a copy of v shifted right by k.
func (v *BitVector) Rsh(k uint) (*BitVector, error) {
	c, err := v.Clone()
	if err != nil {
		return nil, err
	}
	c.ShiftRight(k)
	return c, nil
}
