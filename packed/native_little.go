//go:build 386 || amd64 || amd64p32 || alpha || arm || arm64 || loong64 || mipsle || mips64le || mips64p32le || nios2 || ppc64le || riscv || riscv64 || sh || wasm

package packed

// Host-relative counterparts of the absolute order cells.
type (
	Native16[T Integer16]   = Little16[T]
	Native32[T Integer32]   = Little32[T]
	Native64[T Integer64]   = Little64[T]
	Reversed16[T Integer16] = Big16[T]
	Reversed32[T Integer32] = Big32[T]
	Reversed64[T Integer64] = Big64[T]

	NativeFloat32   = LittleFloat32
	NativeFloat64   = LittleFloat64
	ReversedFloat32 = BigFloat32
	ReversedFloat64 = BigFloat64
)
