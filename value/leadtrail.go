package value

import (
	"math"

	"github.com/arloliu/tsz/bitstream"
)

// LeadTrailEncoder XOR-encodes a sequence of float64 samples onto a shared
// bitstream.Sink using the non-shrinking window policy: the significance
// window (leading/trailing zero bounds) is cached and reused verbatim
// across 0-bit repeats and window-fit reuses, and only replaced when a
// value's xor needs a wider window than the cached one.
//
// A LeadTrailEncoder is single-use per stream: construct one per call to
// bitstream.NewSink, Write samples in order, and discard it once the sink
// is finished.
type LeadTrailEncoder struct {
	state state
	value uint64

	haveWindow bool
	leading    int
	trailing   int
}

// NewLeadTrailEncoder creates a value encoder using the non-shrinking window policy.
func NewLeadTrailEncoder() *LeadTrailEncoder {
	return &LeadTrailEncoder{}
}

// Write encodes one float64 onto sink.
func (e *LeadTrailEncoder) Write(sink *bitstream.Sink, v float64) {
	bits64 := math.Float64bits(v)

	switch e.state {
	case stateInitial:
		sink.Write(bits64, 64)
		e.value = bits64
		e.state = stateFollowing

	case stateFollowing:
		xor := e.value ^ bits64
		e.value = bits64

		if xor == 0 {
			sink.Write(0, 1)

			return
		}

		leading, trailing, blockSize := windowOf(xor)

		if e.haveWindow && leading >= e.leading && trailing >= e.trailing {
			meaningfulBits := 64 - e.leading - e.trailing
			sink.Write(0b10, 2)
			sink.Write(xor>>uint(e.trailing), meaningfulBits)

			return
		}

		sink.Write(0b11, 2)
		sink.Write(uint64(leading), 5)
		sink.Write(uint64(blockSize-1), 6)
		sink.Write(xor>>uint(trailing), blockSize)

		e.haveWindow = true
		e.leading = leading
		e.trailing = trailing
	}
}

// LeadTrailDecoder is the inverse of LeadTrailEncoder.
type LeadTrailDecoder struct {
	state state
	value uint64

	leading  int
	trailing int
}

// NewLeadTrailDecoder creates a value decoder matching NewLeadTrailEncoder.
func NewLeadTrailDecoder() *LeadTrailDecoder {
	return &LeadTrailDecoder{}
}

// Next decodes the next float64 from src, or returns (0, false) once the
// stream is exhausted.
func (d *LeadTrailDecoder) Next(src *bitstream.Source) (float64, bool) {
	switch d.state {
	case stateInitial:
		raw, ok := src.Read(64)
		if !ok {
			return 0, false
		}

		d.value = raw
		d.state = stateFollowing

		return math.Float64frombits(raw), true

	case stateFollowing:
		ctrl, ok := src.Read(1)
		if !ok {
			return 0, false
		}

		if ctrl == 0 {
			return math.Float64frombits(d.value), true
		}

		fits, ok := src.Read(1)
		if !ok {
			return 0, false
		}

		blockSize := 64 - d.leading - d.trailing

		if fits == 1 {
			lz, ok := src.Read(5)
			if !ok {
				return 0, false
			}

			bsz, ok := src.Read(6)
			if !ok {
				return 0, false
			}

			d.leading = int(lz)
			blockSize = int(bsz) + 1
			d.trailing = 64 - d.leading - blockSize
		}

		payload, ok := src.Read(blockSize)
		if !ok {
			return 0, false
		}

		d.value ^= payload << uint(d.trailing)

		return math.Float64frombits(d.value), true
	}

	return 0, false
}
