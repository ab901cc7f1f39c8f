//go:build armbe || arm64be || m68k || mips || mips64 || mips64p32 || ppc || ppc64 || s390 || s390x || shbe || sparc || sparc64

package packed

// Host-relative counterparts of the absolute order cells.
type (
	Native16[T Integer16]   = Big16[T]
	Native32[T Integer32]   = Big32[T]
	Native64[T Integer64]   = Big64[T]
	Reversed16[T Integer16] = Little16[T]
	Reversed32[T Integer32] = Little32[T]
	Reversed64[T Integer64] = Little64[T]

	NativeFloat32   = BigFloat32
	NativeFloat64   = BigFloat64
	ReversedFloat32 = LittleFloat32
	ReversedFloat64 = LittleFloat64
)
