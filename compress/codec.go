package compress

import "fmt"

// Type identifies a secondary compression algorithm.
type Type string

const (
	TypeNone Type = "none"
	TypeS2   Type = "s2"
	TypeLZ4  Type = "lz4"
	TypeZstd Type = "zstd"
)

// Compressor compresses a packed bitstream's serialized bytes.
type Compressor interface {
	Compress(data []byte) ([]byte, error)
}

// Decompressor reverses a Compressor.
type Decompressor interface {
	Decompress(data []byte) ([]byte, error)
}

// Codec combines both directions of one algorithm.
type Codec interface {
	Compressor
	Decompressor
}

// Stats summarizes one compression operation, useful for deciding whether a
// secondary pass is worth keeping for a given stream.
type Stats struct {
	Algorithm      Type
	OriginalSize   int
	CompressedSize int
}

// Ratio returns CompressedSize/OriginalSize; values under 1.0 indicate a win.
func (s Stats) Ratio() float64 {
	if s.OriginalSize == 0 {
		return 0
	}

	return float64(s.CompressedSize) / float64(s.OriginalSize)
}

// CreateCodec returns the Codec for typ, or an error if typ is unrecognized.
func CreateCodec(typ Type) (Codec, error) {
	switch typ {
	case TypeNone:
		return NoOpCodec{}, nil
	case TypeS2:
		return S2Codec{}, nil
	case TypeLZ4:
		return LZ4Codec{}, nil
	case TypeZstd:
		return NewZstdCodec(), nil
	default:
		return nil, fmt.Errorf("compress: unknown codec type %q", typ)
	}
}
