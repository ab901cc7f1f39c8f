package endian

// NativeFloat is a float value stored in host byte order.
type NativeFloat[T Float] struct {
	bits T
}

func NativeFloatOf[T Float](value T) NativeFloat[T] {
	return NativeFloat[T]{bits: value}
}

func (v *NativeFloat[T]) Store(value T) {
	v.bits = value
}

func (v *NativeFloat[T]) Load() T {
	return v.bits
}

// Swap stores value and returns the previously stored value.
func (v *NativeFloat[T]) Swap(value T) T {
	previous := v.bits
	v.bits = value
	return previous
}

// Bytes returns a copy of the storage bytes in memory order.
func (v *NativeFloat[T]) Bytes() []byte {
	return rawBytes(&v.bits)
}

func (v *NativeFloat[T]) Add(delta T) T {
	value := v.Load() + delta
	v.Store(value)
	return value
}

func (v *NativeFloat[T]) Sub(delta T) T {
	value := v.Load() - delta
	v.Store(value)
	return value
}

func (v *NativeFloat[T]) Mul(factor T) T {
	value := v.Load() * factor
	v.Store(value)
	return value
}

func (v *NativeFloat[T]) Div(divisor T) T {
	value := v.Load() / divisor
	v.Store(value)
	return value
}

// ReversedFloat is a float value stored with its bytes in the opposite of
// host byte order. The reversal is a raw byte mirror of the IEEE 754
// representation; NaN payloads survive round trips bit-for-bit.
type ReversedFloat[T Float] struct {
	bits T
}

func ReversedFloatOf[T Float](value T) ReversedFloat[T] {
	return ReversedFloat[T]{bits: reverse(value)}
}

func (v *ReversedFloat[T]) Store(value T) {
	v.bits = reverse(value)
}

func (v *ReversedFloat[T]) Load() T {
	return reverse(v.bits)
}

// Swap stores value and returns the previously stored value.
func (v *ReversedFloat[T]) Swap(value T) T {
	previous := v.bits
	v.bits = reverse(value)
	return reverse(previous)
}

// Bytes returns a copy of the storage bytes in memory order.
func (v *ReversedFloat[T]) Bytes() []byte {
	return rawBytes(&v.bits)
}

func (v *ReversedFloat[T]) Add(delta T) T {
	value := v.Load() + delta
	v.Store(value)
	return value
}

func (v *ReversedFloat[T]) Sub(delta T) T {
	value := v.Load() - delta
	v.Store(value)
	return value
}

func (v *ReversedFloat[T]) Mul(factor T) T {
	value := v.Load() * factor
	v.Store(value)
	return value
}

func (v *ReversedFloat[T]) Div(divisor T) T {
	value := v.Load() / divisor
	v.Store(value)
	return value
}
