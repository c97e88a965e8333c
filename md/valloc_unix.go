//go:build !windows

package md

import (
	"golang.org/x/sys/unix"
)

// VAlloc maps size bytes (rounded up to pages) of zeroed anonymous memory
// outside the Go heap.
func VAlloc(size uint) ([]byte, error) {
	if size == 0 {
		return nil, nil
	}
	mem, err := unix.Mmap(-1, 0, int(PageRound(size)), unix.PROT_READ|unix.PROT_WRITE, unix.MAP_ANON|unix.MAP_PRIVATE)
	if err != nil {
		return nil, err
	}
	return mem[:size], nil
}

func VFree(mem []byte) error {
	if cap(mem) == 0 {
		return nil
	}
	return unix.Munmap(mem[:cap(mem)])
}
