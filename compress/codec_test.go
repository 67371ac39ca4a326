package compress_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/tsz/compress"
)

func TestCodecs_RoundTrip(t *testing.T) {
	data := bytes.Repeat([]byte("0123456789abcdef"), 200)

	for _, typ := range []compress.Type{compress.TypeNone, compress.TypeS2, compress.TypeLZ4, compress.TypeZstd} {
		t.Run(string(typ), func(t *testing.T) {
			codec, err := compress.CreateCodec(typ)
			require.NoError(t, err)

			packed, err := codec.Compress(data)
			require.NoError(t, err)

			out, err := codec.Decompress(packed)
			require.NoError(t, err)
			require.Equal(t, data, out)
		})
	}
}

func TestCreateCodec_UnknownType(t *testing.T) {
	_, err := compress.CreateCodec(compress.Type("bogus"))
	require.Error(t, err)
}

func TestStats_Ratio(t *testing.T) {
	s := compress.Stats{OriginalSize: 100, CompressedSize: 25}
	require.InDelta(t, 0.25, s.Ratio(), 1e-9)

	require.Equal(t, float64(0), compress.Stats{}.Ratio())
}

func TestCodecs_EmptyInput(t *testing.T) {
	for _, typ := range []compress.Type{compress.TypeNone, compress.TypeS2, compress.TypeLZ4, compress.TypeZstd} {
		codec, err := compress.CreateCodec(typ)
		require.NoError(t, err)

		out, err := codec.Compress(nil)
		require.NoError(t, err)

		_, err = codec.Decompress(out)
		require.NoError(t, err)
	}
}
