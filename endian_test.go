package endian_test

import (
	"encoding/binary"
	"math"
	"testing"

	endian "github.com/sagernet/sing-endian"

	"github.com/stretchr/testify/require"
	"golang.org/x/sys/cpu"
)

type protocolVersion uint16

func TestHostOrder(t *testing.T) {
	t.Parallel()
	require.Equal(t, cpu.IsBigEndian, endian.IsBigEndian)
	if endian.IsBigEndian {
		require.Equal(t, binary.ByteOrder(binary.BigEndian), endian.NativeOrder)
		require.Equal(t, binary.ByteOrder(binary.LittleEndian), endian.ReversedOrder)
	} else {
		require.Equal(t, binary.ByteOrder(binary.LittleEndian), endian.NativeOrder)
		require.Equal(t, binary.ByteOrder(binary.BigEndian), endian.ReversedOrder)
	}
	expected := make([]byte, 8)
	actual := make([]byte, 8)
	binary.NativeEndian.PutUint64(expected, 0x0102030405060708)
	endian.NativeOrder.PutUint64(actual, 0x0102030405060708)
	require.Equal(t, expected, actual)
}

func TestStoredBytes(t *testing.T) {
	t.Parallel()
	big := endian.BigOf[uint32](0x12345678)
	require.Equal(t, []byte{0x12, 0x34, 0x56, 0x78}, big.Bytes())
	require.Equal(t, uint32(0x12345678), big.Load())
	little := endian.LittleOf[uint32](0x12345678)
	require.Equal(t, []byte{0x78, 0x56, 0x34, 0x12}, little.Bytes())
	require.Equal(t, uint32(0x12345678), little.Load())
	require.NotEqual(t, big.Bytes(), little.Bytes())
}

func TestNativePassThrough(t *testing.T) {
	t.Parallel()
	expected := make([]byte, 4)
	binary.NativeEndian.PutUint32(expected, 0xCAFEBABE)
	native := endian.NativeOf[uint32](0xCAFEBABE)
	require.Equal(t, expected, native.Bytes())
	if endian.IsBigEndian {
		big := endian.BigOf[uint32](0xCAFEBABE)
		require.Equal(t, expected, big.Bytes())
	} else {
		little := endian.LittleOf[uint32](0xCAFEBABE)
		require.Equal(t, expected, little.Bytes())
	}
	reversed := endian.ReversedOf[uint32](0xCAFEBABE)
	require.NotEqual(t, expected, reversed.Bytes())
}

func testRoundTrip[T endian.Integer](t *testing.T, values ...T) {
	t.Helper()
	for _, value := range values {
		var big endian.Big[T]
		big.Store(value)
		require.Equal(t, value, big.Load())
		var little endian.Little[T]
		little.Store(value)
		require.Equal(t, value, little.Load())
		var native endian.Native[T]
		native.Store(value)
		require.Equal(t, value, native.Load())
		var reversed endian.Reversed[T]
		reversed.Store(value)
		require.Equal(t, value, reversed.Load())
	}
}

func TestRoundTrip(t *testing.T) {
	t.Parallel()
	testRoundTrip[uint8](t, 0, 1, 0x7F, 0xFF)
	testRoundTrip[int8](t, math.MinInt8, -1, 0, math.MaxInt8)
	testRoundTrip[uint16](t, 0, 0x0102, 0xFFFF)
	testRoundTrip[int16](t, math.MinInt16, -1, 0x0102, math.MaxInt16)
	testRoundTrip[uint32](t, 0, 0x01020304, 0xFFFFFFFF)
	testRoundTrip[int32](t, math.MinInt32, -1, 0x01020304, math.MaxInt32)
	testRoundTrip[uint64](t, 0, 0x0102030405060708, math.MaxUint64)
	testRoundTrip[int64](t, math.MinInt64, -1, 0, math.MaxInt64)
	testRoundTrip[protocolVersion](t, 0, 1, 0x0100)
}

func TestZeroValue(t *testing.T) {
	t.Parallel()
	var big endian.Big[uint64]
	require.Zero(t, big.Load())
	require.Equal(t, make([]byte, 8), big.Bytes())
	var little endian.Little[uint64]
	require.Zero(t, little.Load())
}

func TestSwap(t *testing.T) {
	t.Parallel()
	big := endian.BigOf[uint16](0x0102)
	require.Equal(t, uint16(0x0102), big.Swap(0x0304))
	require.Equal(t, uint16(0x0304), big.Load())
	native := endian.NativeOf[uint16](1)
	require.Equal(t, uint16(1), native.Swap(2))
	require.Equal(t, uint16(2), native.Load())
}

func TestArithmetic(t *testing.T) {
	t.Parallel()
	value := uint32(0x12345678)
	big := endian.BigOf[uint32](value)

	value += 0x1111
	require.Equal(t, value, big.Add(0x1111))
	value -= 0x0101
	require.Equal(t, value, big.Sub(0x0101))
	value *= 3
	require.Equal(t, value, big.Mul(3))
	value /= 7
	require.Equal(t, value, big.Div(7))
	value %= 0x10000
	require.Equal(t, value, big.Mod(0x10000))
	value &= 0xF0F0
	require.Equal(t, value, big.And(0xF0F0))
	value |= 0x0A0A
	require.Equal(t, value, big.Or(0x0A0A))
	value ^= 0xFFFF
	require.Equal(t, value, big.Xor(0xFFFF))
	value <<= 3
	require.Equal(t, value, big.ShiftLeft(3))
	value >>= 5
	require.Equal(t, value, big.ShiftRight(5))
	value++
	require.Equal(t, value, big.Inc())
	value--
	require.Equal(t, value, big.Dec())
	require.Equal(t, value, big.Load())
}

func TestArithmeticSigned(t *testing.T) {
	t.Parallel()
	value := int32(-100)
	little := endian.LittleOf[int32](value)

	value += 42
	require.Equal(t, value, little.Add(42))
	value -= 1000
	require.Equal(t, value, little.Sub(1000))
	value *= -3
	require.Equal(t, value, little.Mul(-3))
	value /= 7
	require.Equal(t, value, little.Div(7))
	value %= 11
	require.Equal(t, value, little.Mod(11))
	value--
	require.Equal(t, value, little.Dec())
	require.Equal(t, value, little.Load())
}

func TestCellArithmetic(t *testing.T) {
	t.Parallel()
	little := endian.LittleOf[uint32](100)
	require.Equal(t, uint32(105), endian.Add(&little, uint32(5)))
	require.Equal(t, uint32(55), endian.Sub(&little, uint32(50)))
	require.Equal(t, uint32(110), endian.Mul(&little, uint32(2)))
	require.Equal(t, uint32(11), endian.Div(&little, uint32(10)))
	require.Equal(t, uint32(3), endian.Mod(&little, uint32(4)))
	require.Equal(t, uint32(2), endian.And(&little, uint32(6)))
	require.Equal(t, uint32(3), endian.Or(&little, uint32(1)))
	require.Equal(t, uint32(0), endian.Xor(&little, uint32(3)))
	big := endian.BigOf[uint16](0x0102)
	require.Equal(t, uint16(0x0408), endian.ShiftLeft[uint16](&big, 2))
	require.Equal(t, uint16(0x0102), endian.ShiftRight[uint16](&big, 2))
}

func TestEnumType(t *testing.T) {
	t.Parallel()
	big := endian.BigOf[protocolVersion](0x0102)
	require.Equal(t, []byte{0x01, 0x02}, big.Bytes())
	require.Equal(t, protocolVersion(0x0102), big.Load())
	require.Equal(t, protocolVersion(0x0103), big.Inc())
}

func TestFloat(t *testing.T) {
	t.Parallel()
	values := []float64{0, 1.5, -2.25, math.Pi, math.MaxFloat64, math.SmallestNonzeroFloat64, math.Inf(1), math.Inf(-1), math.Copysign(0, -1)}
	for _, value := range values {
		var big endian.BigFloat[float64]
		big.Store(value)
		require.Equal(t, math.Float64bits(value), math.Float64bits(big.Load()))
		var little endian.LittleFloat[float64]
		little.Store(value)
		require.Equal(t, math.Float64bits(value), math.Float64bits(little.Load()))
	}

	big32 := endian.BigFloatOf[float32](1.0)
	require.Equal(t, []byte{0x3F, 0x80, 0x00, 0x00}, big32.Bytes())
	little32 := endian.LittleFloatOf[float32](1.0)
	require.Equal(t, []byte{0x00, 0x00, 0x80, 0x3F}, little32.Bytes())

	reversed := endian.ReversedFloatOf[float32](3.5)
	require.Equal(t, float32(3.5), reversed.Load())
	require.Equal(t, float32(5.25), reversed.Add(1.75))
	require.Equal(t, float32(10.5), reversed.Mul(2))
	require.Equal(t, float32(5.25), reversed.Div(2))
	require.Equal(t, float32(4), reversed.Sub(1.25))
}

func TestFloatNaN(t *testing.T) {
	t.Parallel()
	payload := uint64(0x7FF8000000000001)
	var little endian.LittleFloat[float64]
	little.Store(math.Float64frombits(payload))
	require.Equal(t, payload, math.Float64bits(little.Load()))
	var big endian.BigFloat[float64]
	big.Store(math.Float64frombits(payload))
	require.Equal(t, payload, math.Float64bits(big.Load()))
}

func TestNetworkOrder(t *testing.T) {
	t.Parallel()
	expected := make([]byte, 8)
	actual := make([]byte, 8)

	binary.BigEndian.PutUint16(expected[:2], 0x0102)
	binary.NativeEndian.PutUint16(actual[:2], endian.Hton16(0x0102))
	require.Equal(t, expected[:2], actual[:2])

	binary.BigEndian.PutUint32(expected[:4], 0x01020304)
	binary.NativeEndian.PutUint32(actual[:4], endian.Hton32(0x01020304))
	require.Equal(t, expected[:4], actual[:4])

	binary.BigEndian.PutUint64(expected, 0x0102030405060708)
	binary.NativeEndian.PutUint64(actual, endian.Hton64(0x0102030405060708))
	require.Equal(t, expected, actual)

	require.Equal(t, uint16(0x0102), endian.Ntoh16(endian.Hton16(0x0102)))
	require.Equal(t, uint32(0x01020304), endian.Ntoh32(endian.Hton32(0x01020304)))
	require.Equal(t, uint64(0x0102030405060708), endian.Ntoh64(endian.Hton64(0x0102030405060708)))
}

func FuzzRoundTrip(f *testing.F) {
	f.Add(uint64(0))
	f.Add(uint64(1))
	f.Add(uint64(0x0102030405060708))
	f.Add(uint64(math.MaxUint64))
	f.Fuzz(func(t *testing.T, value uint64) {
		big := endian.BigOf[uint64](value)
		little := endian.LittleOf[uint64](value)
		require.Equal(t, value, big.Load())
		require.Equal(t, value, little.Load())
		expected := make([]byte, 8)
		binary.BigEndian.PutUint64(expected, value)
		require.Equal(t, expected, big.Bytes())
		binary.LittleEndian.PutUint64(expected, value)
		require.Equal(t, expected, little.Bytes())
	})
}
