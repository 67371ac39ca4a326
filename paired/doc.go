// Package paired interleaves the timestamp and value codecs over a single
// bitstream: one sample's timestamp bits are followed immediately by its
// value bits, then the next sample's timestamp bits, and so on. Ordering
// is deterministic and carries no framing of its own — it relies entirely
// on the two sub-codecs' self-describing prefixes.
package paired
