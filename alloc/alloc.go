// Package alloc provides the block allocators used by bit vectors.
//
// An Allocator hands out zeroed buffers of bits.Block and takes them back.
// Containers call Allocate only when they outgrow their inline storage and
// return every buffer they obtained through Deallocate with the same length.
package alloc

import (
	"unsafe"

	"github.com/pi/bitvector/bits"
	"github.com/pi/bitvector/md"
	"github.com/pkg/errors"
)

// ErrOutOfMemory is returned (wrapped) when an allocator cannot satisfy a
// request.
var ErrOutOfMemory = errors.New("out of memory")

const bytesPerBlock = uint(unsafe.Sizeof(bits.Block(0)))

type Allocator interface {
	// Allocate returns a zeroed buffer of exactly n blocks.
	Allocate(n uint) ([]bits.Block, error)
	// Deallocate releases a buffer previously returned by Allocate.
	Deallocate(b []bits.Block)
	// MaxBlocks is the largest n Allocate can ever satisfy.
	MaxBlocks() uint
}

// CopySelector is implemented by allocators that want copies of a container
// to use a different allocator than the source container.
type CopySelector interface {
	SelectOnCopy() Allocator
}

// Equaler is implemented by allocators that can release each other's memory
// without being the same value.
type Equaler interface {
	Equal(other Allocator) bool
}

// SelectOnCopy returns the allocator a copy of a container using a should
// be built with.
func SelectOnCopy(a Allocator) Allocator {
	if cs, ok := a.(CopySelector); ok {
		return cs.SelectOnCopy()
	}
	return a
}

// Compatible reports whether memory allocated by a may be deallocated by b.
func Compatible(a, b Allocator) bool {
	if e, ok := a.(Equaler); ok {
		return e.Equal(b)
	}
	return a == b
}

// Heap allocates from the Go heap. Its zero value is ready to use.
type Heap struct{}

// Default is the allocator used when none is configured.
var Default Allocator = Heap{}

func (h Heap) Allocate(n uint) ([]bits.Block, error) {
	if n > h.MaxBlocks() {
		return nil, errors.Wrapf(ErrOutOfMemory, "heap: %d blocks", n)
	}
	return make([]bits.Block, n), nil
}

// Deallocate leaves the buffer to the garbage collector.
func (Heap) Deallocate(b []bits.Block) {}

func (Heap) MaxBlocks() uint {
	return uint(md.MaxInt) / bytesPerBlock
}

func (Heap) Equal(other Allocator) bool {
	_, ok := other.(Heap)
	return ok
}
