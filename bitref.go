package bitvector

import "github.com/pi/bitvector/bits"

// BitRef refers to a single bit of a vector. It is invalidated by any
// operation that may grow or release the vector's storage.
type BitRef struct {
	block *Block
	mask  Block
}

// Ref returns a reference to the bit at pos. It panics if pos is out of
// range.
func (v *BitVector) Ref(pos uint) BitRef {
	if pos >= v.size {
		panic("bit vector index out of range")
	}
	return BitRef{
		block: &v.st.all()[bits.BlockIndex(pos)],
		mask:  bits.BitMask(pos),
	}
}

func (r BitRef) Get() bool {
	return *r.block&r.mask != 0
}

func (r BitRef) Set(value bool) {
	if value {
		*r.block |= r.mask
	} else {
		*r.block &^= r.mask
	}
}

func (r BitRef) Flip() {
	*r.block ^= r.mask
}
