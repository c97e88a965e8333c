package bitvector

import "github.com/pi/bitvector/alloc"

type options struct {
	alloc alloc.Allocator
}

// Option configures a BitVector constructor.
type Option func(*options)

// WithAllocator sets the allocator used for heap storage.
//
// If nil is passed, alloc.Default is used.
func WithAllocator(a alloc.Allocator) Option {
	return func(o *options) {
		if a == nil {
			a = alloc.Default
		}
		o.alloc = a
	}
}

func buildOptions(opts []Option) options {
	o := options{alloc: alloc.Default}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
