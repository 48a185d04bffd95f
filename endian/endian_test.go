package endian

import "testing"

import "github.com/stretchr/testify/require"

func TestOpposite(t *testing.T) {
	require.Equal(t, Little, Opposite(Big))
	require.Equal(t, Big, Opposite(Little))
	require.Equal(t, Reverse, Opposite(Native))
	require.Equal(t, Native, Opposite(Reverse))
}

func TestBigOrLittleCollapsesNativeReverse(t *testing.T) {
	host := native()
	require.Equal(t, host, BigOrLittle(Native))
	require.Equal(t, Opposite(host), BigOrLittle(Reverse))
	require.Equal(t, Big, BigOrLittle(Big))
	require.Equal(t, Little, BigOrLittle(Little))
}

func TestNativeOrReverse(t *testing.T) {
	host := native()
	require.Equal(t, Native, NativeOrReverse(host))
	require.Equal(t, Reverse, NativeOrReverse(Opposite(host)))
	require.Equal(t, Native, NativeOrReverse(Native))
	require.Equal(t, Reverse, NativeOrReverse(Reverse))
}

func TestSwapUIntRoundTrip(t *testing.T) {
	for n := 0; n <= MaxWidth; n++ {
		x := uint64(0x0123456789abcdef)
		got := SwapUInt(SwapUInt(x, n), n)
		require.Equal(t, x&widthMask(n), got, "n=%d", n)
	}
}

func TestSwapUIntSpecialisedWidthsAgreeWithGeneric(t *testing.T) {
	x := uint64(0x0123456789abcdef)
	for _, n := range []int{2, 3, 4, 8} {
		generic := genericSwap(x, n)
		require.Equal(t, generic, SwapUInt(x, n), "n=%d", n)
	}
}

// genericSwap mirrors the "other n" branch of SwapUInt so the
// width-specialised fast paths can be checked for equivalence against
// it.
func genericSwap(x uint64, n int) uint64 {
	var scratch [MaxWidth]byte
	v := x
	for i := 0; i < n; i++ {
		scratch[i] = byte(v)
		v >>= 8
	}
	var result uint64
	for i := 0; i < n; i++ {
		result = result<<8 | uint64(scratch[i])
	}
	return result
}

func TestSwapIntSignExtension(t *testing.T) {
	// -1 for any width swaps to -1.
	require.Equal(t, int64(-1), SwapInt(-1, 3))
	require.Equal(t, int64(-1), SwapInt(-1, 8))
}

func TestReadWriteUintRoundTrip(t *testing.T) {
	buf := make([]byte, MaxWidth)
	for _, e := range []Endianness{Big, Little, Native, Reverse} {
		for n := 1; n <= MaxWidth; n++ {
			x := uint64(0x0123456789abcdef) & widthMask(n)
			WriteUint(buf, n, e, x)
			got := ReadUint(buf, n, e)
			require.Equal(t, x, got, "endian=%v n=%d", e, n)
		}
	}
}

func TestReadAtOppositeEndiannessYieldsSwappedValue(t *testing.T) {
	buf := make([]byte, MaxWidth)
	for n := 1; n <= MaxWidth; n++ {
		x := uint64(0x0123456789abcdef) & widthMask(n)
		WriteUint(buf, n, Big, x)
		got := ReadUint(buf, n, Little)
		require.Equal(t, SwapUInt(x, n), got, "n=%d", n)
	}
}

func TestReadIntSignExtension(t *testing.T) {
	buf := make([]byte, MaxWidth)
	WriteInt(buf, 3, Big, -0x789abd)
	got := ReadInt(buf, 3, Big)
	require.Equal(t, int64(-0x789abd), got)
}
