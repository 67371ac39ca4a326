// Package compress wraps general-purpose byte compressors as an optional
// secondary layer over an already bit-packed stream (the output of
// bitstream.Sink.Finish, serialized to bytes). The core codec's density
// comes from delta-of-delta and XOR coding; this layer exists for streams
// with enough cross-sample redundancy (e.g. long runs of identical values,
// or many streams sharing a compressor dictionary) that a second pass still
// pays for itself.
package compress
