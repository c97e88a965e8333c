package th

import (
	"runtime"
)

// Mallocs returns the cumulative count of heap objects allocated.
func Mallocs() uint64 {
	ms := &runtime.MemStats{}
	runtime.ReadMemStats(ms)
	return ms.Mallocs
}

// MallocsDuring runs f n times and returns the average number of heap
// allocations per run.
func MallocsDuring(n int, f func()) float64 {
	f() // warm up
	runtime.GC()
	start := Mallocs()
	for i := 0; i < n; i++ {
		f()
	}
	return float64(Mallocs()-start) / float64(n)
}
