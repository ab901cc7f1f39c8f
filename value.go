package endian

// Native is a value of type T stored in host byte order. Store and Load
// are pass-through; the storage bytes equal the plain in-memory
// representation of T.
type Native[T Integer] struct {
	bits T
}

func NativeOf[T Integer](value T) Native[T] {
	return Native[T]{bits: value}
}

func (v *Native[T]) Store(value T) {
	v.bits = value
}

func (v *Native[T]) Load() T {
	return v.bits
}

// Swap stores value and returns the previously stored value.
func (v *Native[T]) Swap(value T) T {
	previous := v.bits
	v.bits = value
	return previous
}

// Bytes returns a copy of the storage bytes in memory order.
func (v *Native[T]) Bytes() []byte {
	return rawBytes(&v.bits)
}

func (v *Native[T]) Add(delta T) T {
	value := v.Load() + delta
	v.Store(value)
	return value
}

func (v *Native[T]) Sub(delta T) T {
	value := v.Load() - delta
	v.Store(value)
	return value
}

func (v *Native[T]) Mul(factor T) T {
	value := v.Load() * factor
	v.Store(value)
	return value
}

func (v *Native[T]) Div(divisor T) T {
	value := v.Load() / divisor
	v.Store(value)
	return value
}

func (v *Native[T]) Mod(divisor T) T {
	value := v.Load() % divisor
	v.Store(value)
	return value
}

func (v *Native[T]) And(mask T) T {
	value := v.Load() & mask
	v.Store(value)
	return value
}

func (v *Native[T]) Or(mask T) T {
	value := v.Load() | mask
	v.Store(value)
	return value
}

func (v *Native[T]) Xor(mask T) T {
	value := v.Load() ^ mask
	v.Store(value)
	return value
}

func (v *Native[T]) ShiftLeft(count uint) T {
	value := v.Load() << count
	v.Store(value)
	return value
}

func (v *Native[T]) ShiftRight(count uint) T {
	value := v.Load() >> count
	v.Store(value)
	return value
}

func (v *Native[T]) Inc() T {
	return v.Add(1)
}

func (v *Native[T]) Dec() T {
	return v.Sub(1)
}

// Reversed is a value of type T stored with its bytes in the opposite of
// host byte order. Store and Load reverse the representation; arithmetic
// still happens on the native value.
type Reversed[T Integer] struct {
	bits T
}

func ReversedOf[T Integer](value T) Reversed[T] {
	return Reversed[T]{bits: reverse(value)}
}

func (v *Reversed[T]) Store(value T) {
	v.bits = reverse(value)
}

func (v *Reversed[T]) Load() T {
	return reverse(v.bits)
}

// Swap stores value and returns the previously stored value.
func (v *Reversed[T]) Swap(value T) T {
	previous := v.bits
	v.bits = reverse(value)
	return reverse(previous)
}

// Bytes returns a copy of the storage bytes in memory order.
func (v *Reversed[T]) Bytes() []byte {
	return rawBytes(&v.bits)
}

func (v *Reversed[T]) Add(delta T) T {
	value := v.Load() + delta
	v.Store(value)
	return value
}

func (v *Reversed[T]) Sub(delta T) T {
	value := v.Load() - delta
	v.Store(value)
	return value
}

func (v *Reversed[T]) Mul(factor T) T {
	value := v.Load() * factor
	v.Store(value)
	return value
}

func (v *Reversed[T]) Div(divisor T) T {
	value := v.Load() / divisor
	v.Store(value)
	return value
}

func (v *Reversed[T]) Mod(divisor T) T {
	value := v.Load() % divisor
	v.Store(value)
	return value
}

func (v *Reversed[T]) And(mask T) T {
	value := v.Load() & mask
	v.Store(value)
	return value
}

func (v *Reversed[T]) Or(mask T) T {
	value := v.Load() | mask
	v.Store(value)
	return value
}

func (v *Reversed[T]) Xor(mask T) T {
	value := v.Load() ^ mask
	v.Store(value)
	return value
}

func (v *Reversed[T]) ShiftLeft(count uint) T {
	value := v.Load() << count
	v.Store(value)
	return value
}

func (v *Reversed[T]) ShiftRight(count uint) T {
	value := v.Load() >> count
	v.Store(value)
	return value
}

func (v *Reversed[T]) Inc() T {
	return v.Add(1)
}

func (v *Reversed[T]) Dec() T {
	return v.Sub(1)
}
