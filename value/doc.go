// Package value implements the XOR-based float64 encoder/decoder from
// Facebook's Gorilla paper, in two window-update policies.
//
// Both encode the first value as 64 raw bits, then for each following value
// compute xor = previous ^ current. A zero xor costs one bit. A non-zero
// xor either reuses the current significance window (leading/trailing zero
// bounds) if it fits, or starts a new one:
//
//	xor == 0                 -> 0
//	fits current window      -> 10 <meaningful bits>
//	needs a new window        -> 11 <5-bit leading><6-bit count-1><meaningful bits>
//
// [GorillaEncoder]/[GorillaDecoder] re-derive the significance window from
// the previous step's xor on every step, so the window can shrink (get
// tighter) over a run of similar values even without an explicit reset; a
// repeated value (zero xor) leaves no window, so the next change opens a new
// one. This is the package's default and the policy used when callers don't
// care.
// [LeadTrailEncoder]/[LeadTrailDecoder] instead persist the window verbatim
// across repeats and fits, changing it only when a value falls outside it.
// The wire format is identical bit-for-bit for any single step; the two
// policies can only diverge in what they choose to encode on the *next*
// step, so an encoder and decoder pair must agree on which policy they use.
package value
