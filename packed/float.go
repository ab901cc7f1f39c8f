package packed

import (
	"encoding/binary"
	"math"
)

// BigFloat32 is a float32 stored big-endian.
type BigFloat32 [4]byte

func BigFloat32Of(value float32) (c BigFloat32) {
	c.Store(value)
	return
}

func (c *BigFloat32) Store(value float32) {
	binary.BigEndian.PutUint32(c[:], math.Float32bits(value))
}

func (c *BigFloat32) Load() float32 {
	return math.Float32frombits(binary.BigEndian.Uint32(c[:]))
}

// Bytes returns a copy of the storage bytes in memory order.
func (c *BigFloat32) Bytes() []byte {
	return append([]byte(nil), c[:]...)
}

// LittleFloat32 is a float32 stored little-endian.
type LittleFloat32 [4]byte

func LittleFloat32Of(value float32) (c LittleFloat32) {
	c.Store(value)
	return
}

func (c *LittleFloat32) Store(value float32) {
	binary.LittleEndian.PutUint32(c[:], math.Float32bits(value))
}

func (c *LittleFloat32) Load() float32 {
	return math.Float32frombits(binary.LittleEndian.Uint32(c[:]))
}

// Bytes returns a copy of the storage bytes in memory order.
func (c *LittleFloat32) Bytes() []byte {
	return append([]byte(nil), c[:]...)
}

// BigFloat64 is a float64 stored big-endian.
type BigFloat64 [8]byte

func BigFloat64Of(value float64) (c BigFloat64) {
	c.Store(value)
	return
}

func (c *BigFloat64) Store(value float64) {
	binary.BigEndian.PutUint64(c[:], math.Float64bits(value))
}

func (c *BigFloat64) Load() float64 {
	return math.Float64frombits(binary.BigEndian.Uint64(c[:]))
}

// Bytes returns a copy of the storage bytes in memory order.
func (c *BigFloat64) Bytes() []byte {
	return append([]byte(nil), c[:]...)
}

// LittleFloat64 is a float64 stored little-endian.
type LittleFloat64 [8]byte

func LittleFloat64Of(value float64) (c LittleFloat64) {
	c.Store(value)
	return
}

func (c *LittleFloat64) Store(value float64) {
	binary.LittleEndian.PutUint64(c[:], math.Float64bits(value))
}

func (c *LittleFloat64) Load() float64 {
	return math.Float64frombits(binary.LittleEndian.Uint64(c[:]))
}

// Bytes returns a copy of the storage bytes in memory order.
func (c *LittleFloat64) Bytes() []byte {
	return append([]byte(nil), c[:]...)
}
