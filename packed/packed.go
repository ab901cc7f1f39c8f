// Package packed provides fixed byte order cells over raw byte-array
// storage: exact wire size, alignment 1, no padding. They exist for
// declaring on-wire and on-disk structures whose layout must match the
// format byte for byte; for ordinary in-memory use the naturally aligned
// cells of the parent package are faster.
//
// Conversions go through encoding/binary, which is safe at any alignment.
package packed

import (
	"encoding/binary"

	endian "github.com/sagernet/sing-endian"
)

// The width-specific constraints admit defined types, so enum-like
// integers keep their identity through Load and Store.
type (
	Integer16 interface{ ~int16 | ~uint16 }
	Integer32 interface{ ~int32 | ~uint32 }
	Integer64 interface{ ~int64 | ~uint64 }
)

// Every cell satisfies endian.Cell, so the package-level arithmetic of the
// parent package applies to packed storage too.
var (
	_ endian.Cell[uint16]  = (*Big16[uint16])(nil)
	_ endian.Cell[uint32]  = (*Little32[uint32])(nil)
	_ endian.Cell[int64]   = (*Big64[int64])(nil)
	_ endian.Cell[float32] = (*LittleFloat32)(nil)
	_ endian.Cell[float64] = (*BigFloat64)(nil)
)

// Big16 is a 16-bit integer stored big-endian.
type Big16[T Integer16] [2]byte

func Big16Of[T Integer16](value T) (c Big16[T]) {
	c.Store(value)
	return
}

func (c *Big16[T]) Store(value T) {
	binary.BigEndian.PutUint16(c[:], uint16(value))
}

func (c *Big16[T]) Load() T {
	return T(binary.BigEndian.Uint16(c[:]))
}

// Swap stores value and returns the previously stored value.
func (c *Big16[T]) Swap(value T) T {
	previous := c.Load()
	c.Store(value)
	return previous
}

// Bytes returns a copy of the storage bytes in memory order.
func (c *Big16[T]) Bytes() []byte {
	return append([]byte(nil), c[:]...)
}

// Little16 is a 16-bit integer stored little-endian.
type Little16[T Integer16] [2]byte

func Little16Of[T Integer16](value T) (c Little16[T]) {
	c.Store(value)
	return
}

func (c *Little16[T]) Store(value T) {
	binary.LittleEndian.PutUint16(c[:], uint16(value))
}

func (c *Little16[T]) Load() T {
	return T(binary.LittleEndian.Uint16(c[:]))
}

// Swap stores value and returns the previously stored value.
func (c *Little16[T]) Swap(value T) T {
	previous := c.Load()
	c.Store(value)
	return previous
}

// Bytes returns a copy of the storage bytes in memory order.
func (c *Little16[T]) Bytes() []byte {
	return append([]byte(nil), c[:]...)
}

// Big32 is a 32-bit integer stored big-endian.
type Big32[T Integer32] [4]byte

func Big32Of[T Integer32](value T) (c Big32[T]) {
	c.Store(value)
	return
}

func (c *Big32[T]) Store(value T) {
	binary.BigEndian.PutUint32(c[:], uint32(value))
}

func (c *Big32[T]) Load() T {
	return T(binary.BigEndian.Uint32(c[:]))
}

// Swap stores value and returns the previously stored value.
func (c *Big32[T]) Swap(value T) T {
	previous := c.Load()
	c.Store(value)
	return previous
}

// Bytes returns a copy of the storage bytes in memory order.
func (c *Big32[T]) Bytes() []byte {
	return append([]byte(nil), c[:]...)
}

// Little32 is a 32-bit integer stored little-endian.
type Little32[T Integer32] [4]byte

func Little32Of[T Integer32](value T) (c Little32[T]) {
	c.Store(value)
	return
}

func (c *Little32[T]) Store(value T) {
	binary.LittleEndian.PutUint32(c[:], uint32(value))
}

func (c *Little32[T]) Load() T {
	return T(binary.LittleEndian.Uint32(c[:]))
}

// Swap stores value and returns the previously stored value.
func (c *Little32[T]) Swap(value T) T {
	previous := c.Load()
	c.Store(value)
	return previous
}

// Bytes returns a copy of the storage bytes in memory order.
func (c *Little32[T]) Bytes() []byte {
	return append([]byte(nil), c[:]...)
}

// Big64 is a 64-bit integer stored big-endian.
type Big64[T Integer64] [8]byte

func Big64Of[T Integer64](value T) (c Big64[T]) {
	c.Store(value)
	return
}

func (c *Big64[T]) Store(value T) {
	binary.BigEndian.PutUint64(c[:], uint64(value))
}

func (c *Big64[T]) Load() T {
	return T(binary.BigEndian.Uint64(c[:]))
}

// Swap stores value and returns the previously stored value.
func (c *Big64[T]) Swap(value T) T {
	previous := c.Load()
	c.Store(value)
	return previous
}

// Bytes returns a copy of the storage bytes in memory order.
func (c *Big64[T]) Bytes() []byte {
	return append([]byte(nil), c[:]...)
}

// Little64 is a 64-bit integer stored little-endian.
type Little64[T Integer64] [8]byte

func Little64Of[T Integer64](value T) (c Little64[T]) {
	c.Store(value)
	return
}

func (c *Little64[T]) Store(value T) {
	binary.LittleEndian.PutUint64(c[:], uint64(value))
}

func (c *Little64[T]) Load() T {
	return T(binary.LittleEndian.Uint64(c[:]))
}

// Swap stores value and returns the previously stored value.
func (c *Little64[T]) Swap(value T) T {
	previous := c.Load()
	c.Store(value)
	return previous
}

// Bytes returns a copy of the storage bytes in memory order.
func (c *Little64[T]) Bytes() []byte {
	return append([]byte(nil), c[:]...)
}
