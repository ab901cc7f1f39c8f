//go:build 386 || amd64 || amd64p32 || alpha || arm || arm64 || loong64 || mipsle || mips64le || mips64p32le || nios2 || ppc64le || riscv || riscv64 || sh || wasm

package endian

import "encoding/binary"

// IsBigEndian reports whether the host stores multi-byte values most
// significant byte first.
const IsBigEndian = false

// NativeOrder is the byte order of the host.
var NativeOrder binary.ByteOrder = binary.LittleEndian

// ReversedOrder is the byte order the host does not use.
var ReversedOrder binary.ByteOrder = binary.BigEndian

// Big and Little guarantee an absolute storage order regardless of the
// host. On an unrecognized GOARCH neither this file nor its big-endian
// counterpart builds, and the module fails to compile.
type (
	Big[T Integer]       = Reversed[T]
	Little[T Integer]    = Native[T]
	BigFloat[T Float]    = ReversedFloat[T]
	LittleFloat[T Float] = NativeFloat[T]
)

func BigOf[T Integer](value T) Big[T] {
	return ReversedOf(value)
}

func LittleOf[T Integer](value T) Little[T] {
	return NativeOf(value)
}

func BigFloatOf[T Float](value T) BigFloat[T] {
	return ReversedFloatOf(value)
}

func LittleFloatOf[T Float](value T) LittleFloat[T] {
	return NativeFloatOf(value)
}
