//go:build armbe || arm64be || m68k || mips || mips64 || mips64p32 || ppc || ppc64 || s390 || s390x || shbe || sparc || sparc64

package endian

import "encoding/binary"

// IsBigEndian reports whether the host stores multi-byte values most
// significant byte first.
const IsBigEndian = true

// NativeOrder is the byte order of the host.
var NativeOrder binary.ByteOrder = binary.BigEndian

// ReversedOrder is the byte order the host does not use.
var ReversedOrder binary.ByteOrder = binary.LittleEndian

// Big and Little guarantee an absolute storage order regardless of the
// host. On an unrecognized GOARCH neither this file nor its little-endian
// counterpart builds, and the module fails to compile.
type (
	Big[T Integer]       = Native[T]
	Little[T Integer]    = Reversed[T]
	BigFloat[T Float]    = NativeFloat[T]
	LittleFloat[T Float] = ReversedFloat[T]
)

func BigOf[T Integer](value T) Big[T] {
	return NativeOf(value)
}

func LittleOf[T Integer](value T) Little[T] {
	return ReversedOf(value)
}

func BigFloatOf[T Float](value T) BigFloat[T] {
	return NativeFloatOf(value)
}

func LittleFloatOf[T Float](value T) LittleFloat[T] {
	return ReversedFloatOf(value)
}
