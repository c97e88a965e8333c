package bitvector

//
// Conversions
//

import (
	"unsafe"

	"github.com/pi/bitvector/bits"
	"github.com/pkg/errors"
)

// NPos stands for "until the end of the string" in FromString.
const NPos = ^uint(0)

// Unsigned is the set of types ToIntegral converts to.
type Unsigned interface {
	~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

// String renders the vector with '0' and '1', highest position first.
func (v *BitVector) String() string {
	return v.Text('0', '1')
}

// Text renders the vector with the given characters, highest position
// first.
func (v *BitVector) Text(zero, one byte) string {
	out := make([]byte, v.size)
	b := v.blocks()
	// last (partial) block first, then the full blocks downwards
	for i := len(b) - 1; i >= 0; i-- {
		base := bits.BlocksToBits(uint(i))
		n := min(bits.BitsPerBlock, v.size-base)
		w := b[i]
		for j := uint(0); j < n; j++ {
			c := zero
			if w&1 == 1 {
				c = one
			}
			out[v.size-1-base-j] = c
			w >>= 1
		}
	}
	return string(out)
}

// checkText validates that s consists only of zero and one characters.
func checkText(s string, zero, one byte) error {
	for i := 0; i < len(s); i++ {
		if c := s[i]; c != zero && c != one {
			return errors.Wrapf(ErrInvalidArgument, "bitvector: unexpected character %q at %d", c, i)
		}
	}
	return nil
}

// FromString builds a vector from at most n characters of s starting at pos.
// The first character becomes the highest position. Characters other than
// zero and one are rejected.
func FromString(s string, pos, n uint, zero, one byte, opts ...Option) (*BitVector, error) {
	if pos > uint(len(s)) {
		return nil, errors.Wrapf(ErrOutOfRange, "bitvector: string position %d, length %d", pos, len(s))
	}
	s = s[pos:]
	if n < uint(len(s)) {
		s = s[:n]
	}
	if err := checkText(s, zero, one); err != nil {
		return nil, err
	}
	size := uint(len(s))
	v, err := NewSized(size, false, opts...)
	if err != nil {
		return nil, err
	}
	b := v.st.all()
	for i := uint(0); i < size; i++ {
		if s[i] == one {
			p := size - 1 - i
			b[bits.BlockIndex(p)] |= bits.BitMask(p)
		}
	}
	return v, nil
}

// Parse is FromString over the whole of s with '0' and '1'.
func Parse(s string, opts ...Option) (*BitVector, error) {
	return FromString(s, 0, NPos, '0', '1', opts...)
}

// ToIntegral returns the vector as an unsigned integer, position 0 being the
// least significant bit.
func ToIntegral[R Unsigned](v *BitVector) (R, error) {
	var r R
	width := uint(unsafe.Sizeof(r)) * 8
	if v.size > width {
		return 0, errors.Wrapf(ErrOverflow, "bitvector: %d bits do not fit in %d", v.size, width)
	}
	if v.size == 0 {
		return 0, nil
	}
	b := v.blocks()
	last := len(b) - 1
	for i, w := range b {
		if i == last {
			w &= v.tailMask()
		}
		r |= R(w) << bits.BlocksToBits(uint(i))
	}
	return r, nil
}

func (v *BitVector) Uint64() (uint64, error) {
	return ToIntegral[uint64](v)
}
