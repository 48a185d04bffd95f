package binaccess

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/binaccess/binaccess/endian"
)

func TestUInt16ArrayRoundTrip(t *testing.T) {
	values := []uint16{0x1122, 0x3344, 0x5566}
	for _, e := range []endian.Endianness{endian.Big, endian.Little} {
		a := OpenWritingMemory(0, 0)
		require.NoError(t, WriteEndianUInt16Array(a, e, values))
		require.NoError(t, Seek(a, 0, SeekSet))

		got, err := ReadEndianUInt16Array(a, e, len(values))
		require.NoError(t, err)
		require.Equal(t, values, got)
	}
}

func TestUInt24ArrayDecodesElementByElement(t *testing.T) {
	values := []uint32{0x010203, 0x0a0b0c}
	a := OpenWritingMemory(0, 0)
	require.NoError(t, WriteEndianUInt24Array(a, endian.Big, values))
	require.NoError(t, Seek(a, 0, SeekSet))

	got, err := ReadEndianUInt24Array(a, endian.Big, len(values))
	require.NoError(t, err)
	require.Equal(t, values, got)
}

func TestUInt64ArrayReverseSwapsElementsNotWholeBlock(t *testing.T) {
	values := []uint64{0x0102030405060708, 0x1112131415161718}
	a := OpenWritingMemory(0, 0)
	require.NoError(t, WriteEndianUInt64Array(a, endian.Big, values))
	require.NoError(t, Seek(a, 0, SeekSet))

	got, err := ReadEndianUInt64Array(a, endian.Little, len(values))
	require.NoError(t, err)
	require.Equal(t, endian.SwapUInt64(values[0]), got[0])
	require.Equal(t, endian.SwapUInt64(values[1]), got[1])
}

func TestArrayReadRecordsSingleCoverageEntry(t *testing.T) {
	a := OpenWritingMemory(0, 0)
	require.NoError(t, WriteEndianUInt32Array(a, endian.Big, []uint32{1, 2, 3, 4}))
	require.NoError(t, Seek(a, 0, SeekSet))

	a.Coverage().Allow(true)
	_, err := ReadEndianUInt32Array(a, endian.Big, 4)
	require.NoError(t, err)

	require.Equal(t, 1, a.Coverage().Len())
	rec := a.Coverage().Records()[0]
	require.Equal(t, uint64(0), rec.Offset)
	require.Equal(t, uint64(16), rec.Size)
}
