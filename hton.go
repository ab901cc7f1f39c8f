package endian

import "math/bits"

// Network byte order is big-endian. On big-endian hosts these conversions
// constant-fold to the identity.

// Hton16 converts a host order uint16 into network order.
func Hton16(v uint16) uint16 {
	if IsBigEndian {
		return v
	}
	return bits.ReverseBytes16(v)
}

// Hton32 converts a host order uint32 into network order.
func Hton32(v uint32) uint32 {
	if IsBigEndian {
		return v
	}
	return bits.ReverseBytes32(v)
}

// Hton64 converts a host order uint64 into network order.
func Hton64(v uint64) uint64 {
	if IsBigEndian {
		return v
	}
	return bits.ReverseBytes64(v)
}

// Ntoh16 converts a network order uint16 into host order.
func Ntoh16(v uint16) uint16 {
	return Hton16(v)
}

// Ntoh32 converts a network order uint32 into host order.
func Ntoh32(v uint32) uint32 {
	return Hton32(v)
}

// Ntoh64 converts a network order uint64 into host order.
func Ntoh64(v uint64) uint64 {
	return Hton64(v)
}
