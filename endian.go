// Package endian provides value types that store fixed-width integers and
// floats in a fixed byte order, independent of the byte order of the host.
//
// The Big and Little types guarantee an absolute storage order; Native and
// Reversed guarantee an order relative to the host. All of them are the
// exact size and alignment of their underlying type, carry no extra state,
// and are copied bytewise like plain values. Arithmetic always happens on
// the native value; only the storage representation is ordered.
//
// The packed subpackage provides the same cells over raw byte-array storage
// for declaring on-wire and on-disk structures without padding.
package endian

import "golang.org/x/exp/constraints"

// Integer matches the fixed-width integer types, including defined types.
// int, uint and uintptr are excluded: their width depends on the target.
type Integer interface {
	~int8 | ~int16 | ~int32 | ~int64 | ~uint8 | ~uint16 | ~uint32 | ~uint64
}

// Float matches the fixed-width float types.
type Float interface {
	constraints.Float
}

// Value matches every type eligible for fixed order storage.
type Value interface {
	Integer | Float
}

// Cell is the access surface shared by every fixed order cell in this
// module, including the byte-array backed ones in the packed subpackage.
type Cell[T any] interface {
	Load() T
	Store(T)
}

var (
	_ Cell[uint32]  = (*Native[uint32])(nil)
	_ Cell[uint32]  = (*Reversed[uint32])(nil)
	_ Cell[float64] = (*NativeFloat[float64])(nil)
	_ Cell[float64] = (*ReversedFloat[float64])(nil)
)

func Add[T Value](c Cell[T], delta T) T {
	value := c.Load() + delta
	c.Store(value)
	return value
}

func Sub[T Value](c Cell[T], delta T) T {
	value := c.Load() - delta
	c.Store(value)
	return value
}

func Mul[T Value](c Cell[T], factor T) T {
	value := c.Load() * factor
	c.Store(value)
	return value
}

func Div[T Value](c Cell[T], divisor T) T {
	value := c.Load() / divisor
	c.Store(value)
	return value
}

func Mod[T Integer](c Cell[T], divisor T) T {
	value := c.Load() % divisor
	c.Store(value)
	return value
}

func And[T Integer](c Cell[T], mask T) T {
	value := c.Load() & mask
	c.Store(value)
	return value
}

func Or[T Integer](c Cell[T], mask T) T {
	value := c.Load() | mask
	c.Store(value)
	return value
}

func Xor[T Integer](c Cell[T], mask T) T {
	value := c.Load() ^ mask
	c.Store(value)
	return value
}

func ShiftLeft[T Integer](c Cell[T], count uint) T {
	value := c.Load() << count
	c.Store(value)
	return value
}

func ShiftRight[T Integer](c Cell[T], count uint) T {
	value := c.Load() >> count
	c.Store(value)
	return value
}
