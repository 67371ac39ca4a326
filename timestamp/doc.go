// Package timestamp implements the delta-of-delta encoder and decoder for
// monotonically non-decreasing, seconds-resolution timestamp streams, as
// used by Facebook's Gorilla time-series format.
//
// # Wire format
//
// The first timestamp is stored as a 14-bit offset from an externally
// supplied header time (aligned to a two-hour boundary by convention; the
// codec itself only requires header time <= first timestamp and the
// resulting offset to fit in 14 bits). Every following timestamp is stored
// as the delta-of-delta (the difference between the current
// timestamp-minus-previous delta and the previous such delta), prefix-coded
// into one of five size classes:
//
//	dod range           prefix   payload
//	0                    0        (none)
//	[-63, 64]            10       7 bits,  biased by 63
//	[-255, 256]          110      9 bits,  biased by 255
//	[-2047, 2048]        1110     12 bits, biased by 2047
//	otherwise            1111     32 bits, two's-complement
//
// A regular one-second cadence costs a single bit per sample after the
// second one.
package timestamp
