package bitvector

//
// Storage representation
//

import (
	"unsafe"

	"github.com/pi/bitvector/bits"
)

type Block = bits.Block

type storageKind uint8

const (
	kindInline storageKind = iota
	kindHeap
)

// heapBlocks is an allocator-owned buffer of cap blocks; cap is a power of
// two.
type heapBlocks struct {
	p   *Block
	cap uint
}

// The inline buffer is as large as the heap handle it stands in for.
const inlineBlocks = unsafe.Sizeof(heapBlocks{}) / unsafe.Sizeof(Block(0))
const bitsInternal = uint(inlineBlocks) * bits.BitsPerBlock

// storage holds either inline blocks or a heap buffer. kind alone decides
// which one is active: at the transition point the capacities coincide.
type storage struct {
	kind   storageKind
	inline [inlineBlocks]Block
	heap   heapBlocks
}

func (s *storage) isHeap() bool {
	return s.kind == kindHeap
}

// capacity is in bits.
func (s *storage) capacity() uint {
	if s.kind == kindHeap {
		return bits.BlocksToBits(s.heap.cap)
	}
	return bitsInternal
}

// all returns every block of the active representation, live or not.
func (s *storage) all() []Block {
	if s.kind == kindHeap {
		return unsafe.Slice(s.heap.p, s.heap.cap)
	}
	return s.inline[:]
}

// live returns the blocks holding the first size bits.
func (s *storage) live(size uint) []Block {
	return s.all()[:bits.BlocksFor(size)]
}

func (s *storage) adopt(b []Block) {
	s.kind = kindHeap
	s.inline = [inlineBlocks]Block{}
	s.heap = heapBlocks{p: unsafe.SliceData(b), cap: uint(len(b))}
}

// detach returns the heap buffer, if any, and resets s to empty inline
// storage.
func (s *storage) detach() []Block {
	var b []Block
	if s.kind == kindHeap {
		b = unsafe.Slice(s.heap.p, s.heap.cap)
	}
	*s = storage{}
	return b
}
