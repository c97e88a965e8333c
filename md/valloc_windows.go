//go:build windows

package md

import (
	"unsafe"

	"golang.org/x/sys/windows"
)

func VAlloc(size uint) ([]byte, error) {
	if size == 0 {
		return nil, nil
	}
	rounded := PageRound(size)
	addr, err := windows.VirtualAlloc(0, uintptr(rounded), windows.MEM_RESERVE|windows.MEM_COMMIT, windows.PAGE_READWRITE)
	if err != nil {
		return nil, err
	}
	return unsafe.Slice((*byte)(unsafe.Pointer(addr)), rounded)[:size], nil
}

func VFree(mem []byte) error {
	if cap(mem) == 0 {
		return nil
	}
	return windows.VirtualFree(uintptr(unsafe.Pointer(&mem[:1][0])), 0, windows.MEM_RELEASE)
}
