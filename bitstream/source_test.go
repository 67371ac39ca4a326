package bitstream_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/tsz/bitstream"
)

func TestSource_ReadFirstWord(t *testing.T) {
	data := []uint64{0b1101000001000000000000000000010000000000000000000000000000000001}
	src := bitstream.NewSource(data, 64)

	v, ok := src.Read(4)
	require.True(t, ok)
	require.Equal(t, uint64(0b1101), v)

	v, ok = src.Read(4)
	require.True(t, ok)
	require.Equal(t, uint64(0b0000), v)

	v, ok = src.Read(1)
	require.True(t, ok)
	require.Equal(t, uint64(0), v)

	v, ok = src.Read(1)
	require.True(t, ok)
	require.Equal(t, uint64(1), v)

	v, ok = src.Read(1)
	require.True(t, ok)
	require.Equal(t, uint64(0), v)

	v, ok = src.Read(53)
	require.True(t, ok)
	require.Equal(t, uint64(0b00000000000000000010000000000000000000000000000000001), v)

	_, ok = src.Read(1)
	require.False(t, ok)
	_, ok = src.Read(2)
	require.False(t, ok)
	_, ok = src.Read(8)
	require.False(t, ok)
}

func TestSource_ReadUnalignedWord(t *testing.T) {
	const p = uint64(0b1101000001000000000000000000010000000000000000000000000000000001)
	data := []uint64{p, p}
	src := bitstream.NewSource(data, 64)

	v, ok := src.Read(63)
	require.True(t, ok)
	require.Equal(t, p>>1, v)

	v, ok = src.Read(5)
	require.True(t, ok)
	require.Equal(t, uint64(0b11101), v)
}

func TestSource_EmptyBuffer(t *testing.T) {
	src := bitstream.NewSource(nil, 0)
	_, ok := src.Read(1)
	require.False(t, ok)
}

func TestSource_ZeroCountIsNoop(t *testing.T) {
	src := bitstream.NewSource(nil, 0)
	v, ok := src.Read(0)
	require.True(t, ok)
	require.Equal(t, uint64(0), v)
}

func TestSource_Exactly64BitRead(t *testing.T) {
	src := bitstream.NewSource([]uint64{0x0123456789ABCDEF}, 64)
	v, ok := src.Read(64)
	require.True(t, ok)
	require.Equal(t, uint64(0x0123456789ABCDEF), v)

	_, ok = src.Read(1)
	require.False(t, ok)
}

func TestSource_MultipleIndependentReaders(t *testing.T) {
	data := []uint64{0xFF00FF00FF00FF00, 0x00FF00FF00FF00FF}
	src1 := bitstream.NewSource(data, 64)
	src2 := bitstream.NewSource(data, 64)

	v1, ok := src1.Read(8)
	require.True(t, ok)
	v2, ok := src2.Read(16)
	require.True(t, ok)

	require.Equal(t, uint64(0xFF), v1)
	require.Equal(t, uint64(0xFF00), v2)
}
