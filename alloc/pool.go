package alloc

import (
	"unsafe"

	"github.com/pi/bitvector/bits"
	"github.com/pi/bitvector/md"
	"github.com/pkg/errors"
)

// Pool is a bump allocator over a single anonymous mapping that lives
// outside the Go heap. Releasing the most recent allocation rewinds the
// pool; other releases are kept until Reset. A Pool is not safe for
// concurrent use.
type Pool struct {
	mem       []byte
	blocks    []bits.Block
	allocated uint
}

// NewPool maps room for n blocks.
func NewPool(n uint) (*Pool, error) {
	p := &Pool{}
	err := p.init(n)
	if err != nil {
		return nil, err
	}
	return p, nil
}

func (p *Pool) init(n uint) error {
	if n > uint(md.MaxInt)/bytesPerBlock {
		return errors.Wrapf(ErrOutOfMemory, "pool: %d blocks", n)
	}
	mem, err := md.VAlloc(n * bytesPerBlock)
	if err != nil {
		return errors.Wrap(err, "pool: map")
	}
	p.mem = mem
	if mem == nil {
		p.mem = []byte{}
	}
	if n > 0 {
		p.blocks = unsafe.Slice((*bits.Block)(unsafe.Pointer(&mem[0])), n)
	}
	return nil
}

// Reset makes the whole pool available again. Buffers handed out earlier
// must no longer be in use.
func (p *Pool) Reset() {
	clear(p.blocks[:p.allocated])
	p.allocated = 0
}

// Done unmaps the pool.
func (p *Pool) Done() error {
	m := p.mem
	if m == nil {
		panic("pool already finalized")
	}
	p.mem = nil
	p.blocks = nil
	p.allocated = 0
	return md.VFree(m)
}

// Allocated returns the number of blocks currently handed out.
func (p *Pool) Allocated() uint {
	return p.allocated
}

func (p *Pool) Allocate(n uint) ([]bits.Block, error) {
	if n > uint(len(p.blocks))-p.allocated {
		return nil, errors.Wrapf(ErrOutOfMemory, "pool: %d blocks requested, %d free", n, uint(len(p.blocks))-p.allocated)
	}
	b := p.blocks[p.allocated : p.allocated+n : p.allocated+n]
	p.allocated += n
	return b, nil
}

func (p *Pool) Deallocate(b []bits.Block) {
	n := uint(len(b))
	if n == 0 || n > p.allocated {
		return
	}
	if &b[0] == &p.blocks[p.allocated-n] {
		clear(b)
		p.allocated -= n
	}
}

func (p *Pool) MaxBlocks() uint {
	return uint(len(p.blocks))
}
