package compress

import "github.com/klauspost/compress/s2"

// S2Codec is a fast, low-overhead Snappy-compatible compressor; it rarely
// beats the core codec's own entropy coding but costs almost nothing to try.
type S2Codec struct{}

var _ Codec = S2Codec{}

func (S2Codec) Compress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	return s2.Encode(nil, data), nil
}

func (S2Codec) Decompress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	return s2.Decode(nil, data)
}
