package alloc

import (
	"github.com/pi/bitvector/bits"
	"github.com/pkg/errors"
)

// Limited wraps a parent allocator with a quota on live blocks and keeps
// allocation statistics. Copies of containers that use a Limited get a fresh
// Limited with the same quota over the same parent.
type Limited struct {
	parent Allocator
	quota  uint

	Live          uint // blocks currently allocated
	Allocations   int
	Deallocations int
	Failures      int
}

// NewLimited returns an allocator that fails once more than quota blocks
// would be live at the same time. A nil parent means Default.
func NewLimited(parent Allocator, quota uint) *Limited {
	if parent == nil {
		parent = Default
	}
	return &Limited{parent: parent, quota: quota}
}

// SetQuota changes the quota for future allocations.
func (l *Limited) SetQuota(quota uint) {
	l.quota = quota
}

func (l *Limited) Allocate(n uint) ([]bits.Block, error) {
	if n > l.quota || l.Live > l.quota-n {
		l.Failures++
		return nil, errors.Wrapf(ErrOutOfMemory, "limited: %d blocks requested, %d of %d live", n, l.Live, l.quota)
	}
	b, err := l.parent.Allocate(n)
	if err != nil {
		l.Failures++
		return nil, err
	}
	l.Live += n
	l.Allocations++
	return b, nil
}

func (l *Limited) Deallocate(b []bits.Block) {
	if len(b) == 0 {
		return
	}
	l.Live -= uint(len(b))
	l.Deallocations++
	l.parent.Deallocate(b)
}

func (l *Limited) MaxBlocks() uint {
	return min(l.quota, l.parent.MaxBlocks())
}

func (l *Limited) SelectOnCopy() Allocator {
	return NewLimited(SelectOnCopy(l.parent), l.quota)
}
