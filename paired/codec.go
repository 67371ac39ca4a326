package paired

import (
	"github.com/arloliu/tsz/bitstream"
	"github.com/arloliu/tsz/internal/options"
	"github.com/arloliu/tsz/timestamp"
	"github.com/arloliu/tsz/value"
)

// Sample is one (timestamp, value) observation. Timestamps are interpreted
// as seconds since an arbitrary epoch; the codec imposes no unit on them,
// only that they are non-decreasing and that the first one lies less than
// 2^14 after the header time.
type Sample struct {
	Timestamp uint64
	Value     float64
}

// valueEncoder abstracts over the two value-codec window policies so Encoder
// can drive either without depending on a concrete type.
type valueEncoder interface {
	Write(sink *bitstream.Sink, v float64)
}

// valueDecoder is the Next-side counterpart of valueEncoder.
type valueDecoder interface {
	Next(src *bitstream.Source) (float64, bool)
}

// Encoder drives a timestamp.Encoder and a value codec over one shared
// bitstream.Sink, writing each sample as timestamp bits followed by value
// bits.
//
// An Encoder is single-use per stream: construct one per call to
// bitstream.NewSink, Push samples in order, and discard it once the sink
// is finished.
type Encoder struct {
	ts  *timestamp.Encoder
	val valueEncoder
}

// EncoderOption configures an Encoder at construction time.
type EncoderOption = options.Option[*Encoder]

// WithValueEncoder overrides the default shrinking-window Gorilla value
// codec with an explicit one, e.g. value.NewLeadTrailEncoder().
func WithValueEncoder(val valueEncoder) EncoderOption {
	return options.NoError(func(e *Encoder) { e.val = val })
}

// NewEncoder creates a paired encoder anchored at headerTime, using the
// shrinking-window Gorilla value codec unless overridden by opts.
func NewEncoder(headerTime uint64, opts ...EncoderOption) *Encoder {
	e := &Encoder{
		ts:  timestamp.NewEncoder(headerTime),
		val: value.NewGorillaEncoder(),
	}

	options.Apply(e, opts...)

	return e
}

// Push encodes one sample onto sink: its timestamp, then its value.
func (e *Encoder) Push(sink *bitstream.Sink, s Sample) {
	e.ts.Write(sink, s.Timestamp)
	e.val.Write(sink, s.Value)
}

// Decoder is the inverse of Encoder.
type Decoder struct {
	ts  *timestamp.Decoder
	val valueDecoder
}

// DecoderOption configures a Decoder at construction time.
type DecoderOption = options.Option[*Decoder]

// WithValueDecoder overrides the default Gorilla value decoder with an
// explicit one, matching whichever value encoder the paired Encoder used.
func WithValueDecoder(val valueDecoder) DecoderOption {
	return options.NoError(func(d *Decoder) { d.val = val })
}

// NewDecoder creates a paired decoder matching an Encoder constructed with
// NewEncoder. headerTime must match the value the Encoder used, and opts
// must select the same value codec family the Encoder used.
func NewDecoder(headerTime uint64, opts ...DecoderOption) *Decoder {
	d := &Decoder{
		ts:  timestamp.NewDecoder(headerTime),
		val: value.NewGorillaDecoder(),
	}

	options.Apply(d, opts...)

	return d
}

// Next decodes the next sample from src, or returns (Sample{}, false) once
// the stream is exhausted or truncated mid-sample.
func (d *Decoder) Next(src *bitstream.Source) (Sample, bool) {
	ts, ok := d.ts.Next(src)
	if !ok {
		return Sample{}, false
	}

	v, ok := d.val.Next(src)
	if !ok {
		return Sample{}, false
	}

	return Sample{Timestamp: ts, Value: v}, true
}
