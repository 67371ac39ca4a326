// Package bitstream implements the MSB-first, word-packed bit buffer that
// the timestamp, value, and paired codecs write to and read from.
//
// A buffer is a sequence of 64-bit words plus a fill count for the final
// word: total bit length is (len(words)-1)*64 + usedInLast. Bits are packed
// most-significant-bit first within each word, so the very first bit ever
// written occupies bit 63 of word 0.
//
// There is no framing, no checksum, and no length prefix: a Source simply
// stops returning values once it runs out of bits. Nothing in the buffer
// marks where one logical stream ends and another begins; the paired codec,
// for example, relies on the timestamp and value codecs' own prefixes and
// reads until the Source runs out.
package bitstream
