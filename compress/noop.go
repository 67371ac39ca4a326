package compress

// NoOpCodec passes data through unchanged. Useful as a baseline when
// measuring how much the core codec alone saves, without a secondary pass
// muddying the comparison.
type NoOpCodec struct{}

var _ Codec = NoOpCodec{}

func (NoOpCodec) Compress(data []byte) ([]byte, error) { return data, nil }

func (NoOpCodec) Decompress(data []byte) ([]byte, error) { return data, nil }
