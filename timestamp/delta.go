package timestamp

import "github.com/arloliu/tsz/bitstream"

// headerWindowBits is the width of the first-sample field: enough to budget
// slightly more than four hours of one-second samples before overflow.
const headerWindowBits = 14

// state tags whether an Encoder/Decoder has seen its first timestamp yet.
// Modeling this as an explicit tag (rather than a zero-valued "previous"
// field) makes the first-sample branch non-bypassable: there is no sentinel
// value a caller could accidentally reuse as "not yet initialized".
type state int

const (
	stateInitial state = iota
	stateFollowing
)

// Encoder delta-of-delta encodes a monotonically non-decreasing sequence of
// u64 timestamps onto a shared bitstream.Sink.
//
// An Encoder is single-use per stream: construct one per call to
// bitstream.NewSink, Write samples in increasing order, and discard it once
// the sink is finished.
type Encoder struct {
	state      state
	headerTime uint64
	value      uint64
	delta      int64
}

// NewEncoder creates a timestamp encoder anchored at headerTime.
//
// headerTime is conventionally floored to the nearest two-hour (7200s)
// boundary, but the encoder itself only enforces headerTime <= the first
// timestamp written and that the resulting offset fits in 14 bits.
func NewEncoder(headerTime uint64) *Encoder {
	return &Encoder{headerTime: headerTime}
}

// Write encodes one timestamp onto sink.
//
// Write panics if ts precedes headerTime (on the first call) or if the
// first offset does not fit in 14 bits: both are programming errors per the
// codec's error taxonomy, not corruptible stream state.
func (e *Encoder) Write(sink *bitstream.Sink, ts uint64) {
	switch e.state {
	case stateInitial:
		if ts < e.headerTime {
			panic("timestamp: first timestamp precedes header time")
		}

		delta := ts - e.headerTime
		if delta >= uint64(1)<<headerWindowBits {
			panic("timestamp: first delta does not fit in 14 bits")
		}

		sink.Write(delta, headerWindowBits)

		e.value = ts
		e.delta = int64(delta) //nolint:gosec // delta is bounded to 14 bits above
		e.state = stateFollowing

	case stateFollowing:
		delta := int64(ts - e.value) // wrapping subtraction, matches the codec's defined arithmetic
		dod := delta - e.delta

		switch {
		case dod == 0:
			sink.Write(0, 1)
		case dod >= -63 && dod <= 64:
			sink.Write(0b10, 2)
			sink.Write(uint64(dod+63), 7)
		case dod >= -255 && dod <= 256:
			sink.Write(0b110, 3)
			sink.Write(uint64(dod+255), 9)
		case dod >= -2047 && dod <= 2048:
			sink.Write(0b1110, 4)
			sink.Write(uint64(dod+2047), 12)
		default:
			sink.Write(0b1111, 4)
			sink.Write(uint64(dod), 32) // Sink masks to the low 32 bits, i.e. two's-complement truncation
		}

		e.value = ts
		e.delta = delta
	}
}

// Decoder is the inverse of Encoder: it reconstructs the exact timestamp
// sequence a matching Encoder wrote, given the same headerTime.
type Decoder struct {
	state      state
	headerTime uint64
	value      uint64
	delta      int64
}

// NewDecoder creates a timestamp decoder anchored at headerTime. headerTime
// must match the value the corresponding Encoder was constructed with; the
// wire format carries no header time of its own.
func NewDecoder(headerTime uint64) *Decoder {
	return &Decoder{headerTime: headerTime}
}

// Next decodes the next timestamp from src, or returns (0, false) once the
// stream is exhausted (a benign end-of-stream condition, not an error).
func (d *Decoder) Next(src *bitstream.Source) (uint64, bool) {
	switch d.state {
	case stateInitial:
		delta, ok := src.Read(headerWindowBits)
		if !ok {
			return 0, false
		}

		value := d.headerTime + delta
		d.value = value
		d.delta = int64(delta) //nolint:gosec
		d.state = stateFollowing

		return value, true

	case stateFollowing:
		bit, ok := src.Read(1)
		if !ok {
			return 0, false
		}

		if bit == 0 {
			d.value += uint64(d.delta)

			return d.value, true
		}

		numBits, bias, ok := d.readSizeClass(src)
		if !ok {
			return 0, false
		}

		payload, ok := src.Read(numBits)
		if !ok {
			return 0, false
		}

		var dod int64
		if numBits == 32 {
			dod = signExtend32(payload)
		} else {
			dod = int64(payload) - bias //nolint:gosec
		}

		d.delta += dod
		d.value += uint64(d.delta)

		return d.value, true
	}

	return 0, false
}

// readSizeClass discriminates the four "1*" prefixes by reading one bit at
// a time, returning the payload width and the bias to subtract from it.
func (d *Decoder) readSizeClass(src *bitstream.Source) (numBits int, bias int64, ok bool) {
	b, ok := src.Read(1)
	if !ok {
		return 0, 0, false
	}
	if b == 0 {
		return 7, 63, true
	}

	b, ok = src.Read(1)
	if !ok {
		return 0, 0, false
	}
	if b == 0 {
		return 9, 255, true
	}

	b, ok = src.Read(1)
	if !ok {
		return 0, 0, false
	}
	if b == 0 {
		return 12, 2047, true
	}

	return 32, 0, true
}

// signExtend32 sign-extends a 32-bit two's-complement payload (carried as
// the low 32 bits of v) to a full int64, performed explicitly rather than
// relying on a language-level narrowing conversion.
func signExtend32(v uint64) int64 {
	const msb = uint64(1) << 31
	if v&msb != 0 {
		v |= ^(msb - 1)
	}

	return int64(v) //nolint:gosec
}
