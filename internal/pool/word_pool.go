// Package pool provides sync.Pool-backed reuse of the word slices that back
// bitstream buffers, avoiding one allocation per encoded stream.
package pool

import "sync"

// WordBufferDefaultCap is the default capacity, in 64-bit words, of a buffer
// obtained from the pool. 64 words covers the first-value-plus-a-few-dozen-
// samples case common in the encoders' benchmarks without reallocating.
const (
	WordBufferDefaultCap  = 64
	WordBufferMaxRetained = 1024 * 4 // drop buffers larger than 4k words (32KiB) back to the GC
)

var wordSlicePool = sync.Pool{
	New: func() any {
		s := make([]uint64, 0, WordBufferDefaultCap)
		return &s
	},
}

// GetWordSlice retrieves a zero-length, pool-owned []uint64 ready for append.
func GetWordSlice() *[]uint64 {
	ptr, _ := wordSlicePool.Get().(*[]uint64)
	*ptr = (*ptr)[:0]

	return ptr
}

// PutWordSlice returns a word slice to the pool for reuse.
//
// Slices whose capacity grew past WordBufferMaxRetained are dropped instead
// of pooled, so one oversized stream doesn't inflate steady-state memory for
// every subsequent encoder that borrows from the pool.
func PutWordSlice(ptr *[]uint64) {
	if ptr == nil {
		return
	}

	if cap(*ptr) > WordBufferMaxRetained {
		return
	}

	*ptr = (*ptr)[:0]
	wordSlicePool.Put(ptr)
}
