package bitvector

//
// Capacity management
//

import (
	"github.com/pi/bitvector/alloc"
	"github.com/pi/bitvector/bits"
	"github.com/pi/bitvector/debug"
	"github.com/pi/bitvector/md"
	"github.com/pkg/errors"
)

func (v *BitVector) allocator() alloc.Allocator {
	if v.alloc == nil {
		return alloc.Default
	}
	return v.alloc
}

// Allocator returns the allocator used for heap storage.
func (v *BitVector) Allocator() alloc.Allocator {
	return v.allocator()
}

// Cap returns the number of bits the vector can hold without allocating.
func (v *BitVector) Cap() uint {
	return v.st.capacity()
}

// IsInline reports whether the bits are stored inside the vector itself.
func (v *BitVector) IsInline() bool {
	return !v.st.isHeap()
}

// MaxLen returns the largest size the vector can reach with its allocator.
// Heap capacity is a power of two blocks, so only the largest power of two
// the allocator can serve counts.
func (v *BitVector) MaxLen() uint {
	blocks := v.allocator().MaxBlocks()
	if blocks == 0 {
		return bitsInternal
	}
	blocks = uint(1) << (bits.BitLen(blocks) - 1)
	if blocks > md.MaxUint>>bits.BlockSizeShift {
		return md.MaxUint
	}
	return max(bits.BlocksToBits(blocks), bitsInternal)
}

// allocate gives an empty vector a heap buffer of n blocks.
func (v *BitVector) allocate(n uint) error {
	b, err := v.allocator().Allocate(n)
	if err != nil {
		return errors.Wrapf(err, "bitvector: allocate %d blocks", n)
	}
	if uint(len(b)) != n {
		v.allocator().Deallocate(b)
		return errors.Wrapf(alloc.ErrOutOfMemory, "bitvector: allocator returned %d of %d blocks", len(b), n)
	}
	v.st.adopt(b)
	return nil
}

// release returns the heap buffer, if any, and leaves v empty and inline.
func (v *BitVector) release() {
	if b := v.st.detach(); b != nil {
		if debug.Enabled {
			debug.Log("bitvector: release %d blocks", len(b))
		}
		v.allocator().Deallocate(b)
	}
	v.size = 0
}

// expandToHold makes room for n bits. The new storage is built aside and
// swapped in, so v is untouched when allocation fails.
func (v *BitVector) expandToHold(n uint) error {
	if n <= v.Cap() {
		return nil
	}
	if n > v.MaxLen() {
		return errors.Wrapf(ErrLength, "bitvector: %d bits requested, max %d", n, v.MaxLen())
	}
	blocks := bits.RoundUpPow2(bits.BlocksFor(n))
	nv := BitVector{alloc: v.alloc}
	if err := nv.allocate(blocks); err != nil {
		return err
	}
	dst := nv.st.all()
	m := copy(dst, v.st.live(v.size))
	clear(dst[m:])
	nv.size = v.size
	if debug.Enabled {
		debug.Log("bitvector: grow %d -> %d bits", v.Cap(), nv.Cap())
	}
	v.Swap(&nv)
	nv.release()
	return nil
}

// Reserve makes room for at least n bits.
func (v *BitVector) Reserve(n uint) error {
	return v.expandToHold(n)
}

// ShrinkToFit moves the bits inline when they fit there, or into the
// smallest power-of-two heap buffer that holds them.
func (v *BitVector) ShrinkToFit() error {
	if !v.st.isHeap() {
		return nil
	}
	if v.size <= bitsInternal {
		var inline [inlineBlocks]Block
		copy(inline[:], v.st.live(v.size))
		size := v.size
		v.release()
		v.st.inline = inline
		v.size = size
		return nil
	}
	blocks := bits.RoundUpPow2(bits.BlocksFor(v.size))
	if blocks >= v.st.heap.cap {
		return nil
	}
	nv := BitVector{alloc: v.alloc}
	if err := nv.allocate(blocks); err != nil {
		return err
	}
	copy(nv.st.all(), v.st.live(v.size))
	nv.size = v.size
	if debug.Enabled {
		debug.Log("bitvector: shrink %d -> %d bits", v.Cap(), nv.Cap())
	}
	v.Swap(&nv)
	nv.release()
	return nil
}

// Release returns heap storage to the allocator and empties the vector.
// The vector stays usable.
func (v *BitVector) Release() {
	v.release()
}

// Swap exchanges the contents, storage and allocators of v and o.
func (v *BitVector) Swap(o *BitVector) {
	v.alloc, o.alloc = o.alloc, v.alloc
	v.size, o.size = o.size, v.size
	v.st, o.st = o.st, v.st
}

// cloneWith copies v into a new vector using a. Bits that fit inline are
// copied inline; otherwise the buffer is sized to v's size, not v's
// capacity.
func (v *BitVector) cloneWith(a alloc.Allocator) (*BitVector, error) {
	c := &BitVector{alloc: a}
	if v.size > bitsInternal {
		if v.size > c.MaxLen() {
			return nil, errors.Wrapf(ErrLength, "bitvector: copy of %d bits, max %d", v.size, c.MaxLen())
		}
		if err := c.allocate(bits.RoundUpPow2(bits.BlocksFor(v.size))); err != nil {
			return nil, err
		}
	}
	copy(c.st.all(), v.st.live(v.size))
	c.size = v.size
	return c, nil
}

// Clone returns an independent copy of v. The copy's allocator is chosen by
// alloc.SelectOnCopy.
func (v *BitVector) Clone() (*BitVector, error) {
	return v.cloneWith(alloc.SelectOnCopy(v.allocator()))
}

// CloneWithAllocator returns an independent copy of v that uses a.
func (v *BitVector) CloneWithAllocator(a alloc.Allocator) (*BitVector, error) {
	if a == nil {
		a = alloc.Default
	}
	return v.cloneWith(a)
}

// Move transfers v's bits and storage to a new vector in constant time and
// leaves v empty.
func (v *BitVector) Move() *BitVector {
	m := &BitVector{alloc: v.alloc}
	m.size = v.size
	m.st = v.st
	v.size = 0
	v.st = storage{}
	return m
}

// MoveWithAllocator is Move for a target allocator a. Storage is transferred
// when a can release it; otherwise the bits are copied into a and v is
// released.
func (v *BitVector) MoveWithAllocator(a alloc.Allocator) (*BitVector, error) {
	if a == nil {
		a = alloc.Default
	}
	if alloc.Compatible(v.allocator(), a) {
		m := v.Move()
		m.alloc = a
		return m, nil
	}
	m, err := v.cloneWith(a)
	if err != nil {
		return nil, err
	}
	v.release()
	return m, nil
}

// CopyFrom makes v a copy of src, keeping v's allocator. v is unchanged on
// error.
func (v *BitVector) CopyFrom(src *BitVector) error {
	if v == src {
		return nil
	}
	if src.size <= v.Cap() {
		copy(v.st.all(), src.st.live(src.size))
		v.size = src.size
		return nil
	}
	c, err := src.cloneWith(v.allocator())
	if err != nil {
		return err
	}
	v.Swap(c)
	c.release()
	return nil
}

// MoveFrom makes v take over src's bits and leaves src empty. When the two
// allocators are not compatible the bits are copied instead and src is
// released.
func (v *BitVector) MoveFrom(src *BitVector) error {
	if v == src {
		return nil
	}
	if !alloc.Compatible(v.allocator(), src.allocator()) {
		if err := v.CopyFrom(src); err != nil {
			return err
		}
		src.release()
		return nil
	}
	v.release()
	v.size = src.size
	v.st = src.st
	src.size = 0
	src.st = storage{}
	return nil
}
