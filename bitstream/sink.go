package bitstream

import "github.com/arloliu/tsz/internal/pool"

// Sink accumulates bits MSB-first into a growable slice of 64-bit words.
//
// A Sink is not safe for concurrent use: exactly one writer may hold it at a
// time. Its
// backing word slice is borrowed from internal/pool and only returned once
// Finish or Release is called.
type Sink struct {
	words      *[]uint64
	usedInLast int
	finished   bool
}

// NewSink creates an empty bit sink backed by a pooled word buffer.
func NewSink() *Sink {
	words := pool.GetWordSlice()
	*words = append(*words, 0)

	return &Sink{words: words}
}

// Write appends the count least-significant bits of bits to the buffer,
// preserving their order (the most significant of those bits lands first).
//
// count must be in [0, 64]; higher bits of bits above position count-1 are
// masked off before writing, so callers may pass an un-masked value as long
// as its low count bits are the intended payload. Write panics if the sink
// has already been finished or released, or if count is out of range.
func (s *Sink) Write(bits uint64, count int) {
	if s.finished {
		panic("bitstream: Write called on a finished or released Sink")
	}

	if count < 0 || count > 64 {
		panic("bitstream: Write count must be in [0, 64]")
	}

	if count == 0 {
		return
	}

	if count < 64 {
		bits &= (uint64(1) << uint(count)) - 1
	}

	words := *s.words
	last := len(words) - 1

	if s.usedInLast == 64 {
		words = append(words, bits<<(64-uint(count)))
		s.usedInLast = count
		*s.words = words

		return
	}

	remaining := 64 - s.usedInLast
	if count <= remaining {
		words[last] |= bits << uint(remaining-count)
		s.usedInLast += count
	} else {
		former := count - remaining
		words[last] |= bits >> uint(former)
		words = append(words, bits<<uint(64-former))
		s.usedInLast = former
	}

	*s.words = words
}

// Len returns the total number of bits written so far.
func (s *Sink) Len() int {
	words := *s.words

	return (len(words)-1)*64 + s.usedInLast
}

// UsedInLast returns how many of the final word's 64 bits are populated
// (0-64). Combined with the word count this fully describes the buffer's
// extent, per the bit buffer invariant.
func (s *Sink) UsedInLast() int {
	return s.usedInLast
}

// Finish closes the sink and returns its contents as (words, usedInLast).
//
// The returned slice is now owned by the caller; the Sink itself becomes
// unusable and any further Write call panics. Use NewSource to build a
// reader over the returned pair.
func (s *Sink) Finish() ([]uint64, int) {
	if s.finished {
		panic("bitstream: Finish called on an already-finished Sink")
	}

	words := make([]uint64, len(*s.words))
	copy(words, *s.words)
	used := s.usedInLast

	pool.PutWordSlice(s.words)
	s.finished = true

	return words, used
}

// Release discards the sink's contents and returns its backing buffer to
// the pool. Use this instead of Finish when the accumulated bits are no
// longer needed (e.g. the caller errored out before completing a stream).
func (s *Sink) Release() {
	if s.finished {
		return
	}

	pool.PutWordSlice(s.words)
	s.finished = true
}
