package bitstream

// Source reads bits sequentially from a word buffer produced by a Sink's
// Finish (or assembled directly from (words, usedInLast) by a caller that
// persisted them some other way).
//
// A Source is forward-only and single-pass: there is no seek or rewind.
// Multiple independent Sources may read the same underlying words slice
// concurrently, each with its own cursor, as long as nothing mutates the
// slice while they do.
type Source struct {
	words         []uint64
	usedInLast    int
	index         int
	readInCurrent int
}

// NewSource creates a bit source over words, where usedInLast is the fill
// count (0-64) of the final word, exactly as returned by Sink.Finish.
func NewSource(words []uint64, usedInLast int) *Source {
	return &Source{words: words, usedInLast: usedInLast}
}

// totalBits returns the buffer's total bit length, or 0 for an empty buffer.
func (r *Source) totalBits() int {
	if len(r.words) == 0 {
		return 0
	}

	return (len(r.words)-1)*64 + r.usedInLast
}

func (r *Source) consumedBits() int {
	return r.index*64 + r.readInCurrent
}

// Read returns the next count bits as the low bits of a uint64, or (0,
// false) if fewer than count bits remain. A failed Read never advances the
// cursor, so it may be retried (e.g. after the caller learns more data is
// available) though this package has no notion of a stream growing after a
// Source has been constructed over it.
//
// count must be in [0, 64]; count == 0 is a no-op that always succeeds.
func (r *Source) Read(count int) (uint64, bool) {
	if count < 0 || count > 64 {
		panic("bitstream: Read count must be in [0, 64]")
	}

	if count == 0 {
		return 0, true
	}

	if r.totalBits()-r.consumedBits() < count {
		return 0, false
	}

	remWord := 64 - r.readInCurrent
	if count <= remWord {
		shift := remWord - count
		result := (r.words[r.index] >> uint(shift))
		if count < 64 {
			result &= (uint64(1) << uint(count)) - 1
		}

		r.readInCurrent += count
		if r.readInCurrent == 64 {
			r.index++
			r.readInCurrent = 0
		}

		return result, true
	}

	bitsFormer := remWord
	bitsLatter := count - remWord

	former := r.words[r.index] & ((uint64(1) << uint(bitsFormer)) - 1)
	latter := r.words[r.index+1] >> uint(64-bitsLatter)
	result := (former << uint(bitsLatter)) | latter

	r.index++
	r.readInCurrent = bitsLatter

	return result, true
}

// Remaining returns the number of unread bits.
func (r *Source) Remaining() int {
	return r.totalBits() - r.consumedBits()
}
