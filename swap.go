package endian

import (
	"math/bits"
	"unsafe"
)

// The optimized reversal reinterprets a value as the unsigned integer of
// the same width and swaps it in a single operation. That requires those
// integers to be exactly that wide and to demand no stricter alignment
// than the types they overlay.
var (
	_ [2 - unsafe.Sizeof(uint16(0))]struct{}
	_ [4 - unsafe.Sizeof(uint32(0))]struct{}
	_ [8 - unsafe.Sizeof(uint64(0))]struct{}
	_ [unsafe.Alignof(int16(0)) - unsafe.Alignof(uint16(0))]struct{}
	_ [unsafe.Alignof(int32(0)) - unsafe.Alignof(uint32(0))]struct{}
	_ [unsafe.Alignof(int64(0)) - unsafe.Alignof(uint64(0))]struct{}
	_ [unsafe.Alignof(float32(0)) - unsafe.Alignof(uint32(0))]struct{}
	_ [unsafe.Alignof(float64(0)) - unsafe.Alignof(uint64(0))]struct{}
)

// reverse returns v with the bytes of its in-memory representation in the
// opposite order. The size switch is constant per instantiation, so each
// use compiles down to the single matching arm.
func reverse[T Value](v T) T {
	switch unsafe.Sizeof(v) {
	case 1:
		return v
	case 2:
		swapped := bits.ReverseBytes16(*(*uint16)(unsafe.Pointer(&v)))
		return *(*T)(unsafe.Pointer(&swapped))
	case 4:
		swapped := bits.ReverseBytes32(*(*uint32)(unsafe.Pointer(&v)))
		return *(*T)(unsafe.Pointer(&swapped))
	case 8:
		swapped := bits.ReverseBytes64(*(*uint64)(unsafe.Pointer(&v)))
		return *(*T)(unsafe.Pointer(&swapped))
	default:
		reverseBytes(unsafe.Slice((*byte)(unsafe.Pointer(&v)), unsafe.Sizeof(v)))
		return v
	}
}

// reverseBytes mirrors b in place. This is the ordering path for storage
// with no alignment guarantee.
func reverseBytes(b []byte) {
	for i, j := 0, len(b)-1; i < j; i, j = i+1, j-1 {
		b[i], b[j] = b[j], b[i]
	}
}

// rawBytes copies the in-memory representation of the value at p.
func rawBytes[T Value](p *T) []byte {
	return append([]byte(nil), unsafe.Slice((*byte)(unsafe.Pointer(p)), unsafe.Sizeof(*p))...)
}
