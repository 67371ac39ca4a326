package value

import (
	"math"
	"math/bits"

	"github.com/arloliu/tsz/bitstream"
)

// state tags whether an encoder/decoder has seen its first value yet.
type state int

const (
	stateInitial state = iota
	stateFollowing
)

// GorillaEncoder XOR-encodes a sequence of float64 samples onto a shared
// bitstream.Sink, re-deriving its significance window on every step from the
// xor it stored on the previous step rather than caching the window. A
// repeated value stores a zero xor, which leaves no window, so the next
// change always opens a new one.
//
// A GorillaEncoder is single-use per stream: construct one per call to
// bitstream.NewSink, Write samples in order, and discard it once the sink
// is finished.
type GorillaEncoder struct {
	state state
	value uint64
	xor   uint64
}

// NewGorillaEncoder creates a value encoder using the shrinking-window policy.
func NewGorillaEncoder() *GorillaEncoder {
	return &GorillaEncoder{}
}

// Write encodes one float64 onto sink.
func (e *GorillaEncoder) Write(sink *bitstream.Sink, v float64) {
	bits64 := math.Float64bits(v)

	switch e.state {
	case stateInitial:
		sink.Write(bits64, 64)
		e.value = bits64
		e.xor = bits64 // first xor has no meaning beyond seeding the next window derivation
		e.state = stateFollowing

	case stateFollowing:
		xor := e.value ^ bits64
		e.value = bits64

		if xor == 0 {
			sink.Write(0, 1)
			e.xor = 0

			return
		}

		leading, trailing, blockSize := windowOf(xor)
		prevLeading, prevTrailing, _ := windowOf(e.xor)

		if leading >= prevLeading && trailing >= prevTrailing {
			meaningfulBits := 64 - prevLeading - prevTrailing
			sink.Write(0b10, 2)
			sink.Write(xor>>uint(prevTrailing), meaningfulBits)
		} else {
			sink.Write(0b11, 2)
			sink.Write(uint64(leading), 5)
			sink.Write(uint64(blockSize-1), 6)
			sink.Write(xor>>uint(trailing), blockSize)
		}

		e.xor = xor
	}
}

// windowOf returns the leading zero count (capped at 31 so it fits a 5-bit
// field, per the wire format), the true trailing zero count, and the
// resulting meaningful-bit block size.
func windowOf(xor uint64) (leading, trailing, blockSize int) {
	leading = bits.LeadingZeros64(xor)
	trailing = bits.TrailingZeros64(xor)

	if leading > 31 {
		leading = 31
	}

	blockSize = 64 - leading - trailing

	return leading, trailing, blockSize
}

// GorillaDecoder is the inverse of GorillaEncoder.
type GorillaDecoder struct {
	state state
	value uint64
	xor   uint64
}

// NewGorillaDecoder creates a value decoder matching NewGorillaEncoder.
func NewGorillaDecoder() *GorillaDecoder {
	return &GorillaDecoder{}
}

// Next decodes the next float64 from src, or returns (0, false) once the
// stream is exhausted.
func (d *GorillaDecoder) Next(src *bitstream.Source) (float64, bool) {
	switch d.state {
	case stateInitial:
		raw, ok := src.Read(64)
		if !ok {
			return 0, false
		}

		d.value = raw
		d.xor = raw
		d.state = stateFollowing

		return math.Float64frombits(raw), true

	case stateFollowing:
		ctrl, ok := src.Read(1)
		if !ok {
			return 0, false
		}

		if ctrl == 0 {
			d.xor = 0

			return math.Float64frombits(d.value), true
		}

		fits, ok := src.Read(1)
		if !ok {
			return 0, false
		}

		var leading, blockSize int
		var trailing int

		if fits == 0 {
			prevLeading, prevTrailing, _ := windowOf(d.xor)
			leading = prevLeading
			trailing = prevTrailing
			blockSize = 64 - leading - trailing
		} else {
			lz, ok := src.Read(5)
			if !ok {
				return 0, false
			}

			bsz, ok := src.Read(6)
			if !ok {
				return 0, false
			}

			leading = int(lz)
			blockSize = int(bsz) + 1
			trailing = 64 - leading - blockSize
		}

		payload, ok := src.Read(blockSize)
		if !ok {
			return 0, false
		}

		xor := payload << uint(trailing)
		d.value ^= xor
		d.xor = xor

		return math.Float64frombits(d.value), true
	}

	return 0, false
}
