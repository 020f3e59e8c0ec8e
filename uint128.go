package ieee754

import (
	"math"
	"math/bits"

	"github.com/shogo82148/int128"
)

func or128(a, b int128.Uint128) int128.Uint128 {
	return int128.Uint128{H: a.H | b.H, L: a.L | b.L}
}

func and128(a, b int128.Uint128) int128.Uint128 {
	return int128.Uint128{H: a.H & b.H, L: a.L & b.L}
}

func bitLen128(a int128.Uint128) int {
	if a.H != 0 {
		return 64 + bits.Len64(a.H)
	}
	return bits.Len64(a.L)
}

// mask128 returns a pattern with the n low bits set.
func mask128(n uint) int128.Uint128 {
	switch {
	case n >= 128:
		return int128.Uint128{H: math.MaxUint64, L: math.MaxUint64}
	case n >= 64:
		return int128.Uint128{H: 1<<(n-64) - 1, L: math.MaxUint64}
	default:
		return int128.Uint128{L: 1<<n - 1}
	}
}

// uint128FromFloat converts a non-negative integral f below 2^128.
func uint128FromFloat(f float64) int128.Uint128 {
	if f < 1<<64 {
		return int128.Uint128{L: uint64(f)}
	}
	frac, exp := math.Frexp(f)
	mant := uint64(math.Ldexp(frac, 64)) // frac in [0.5, 1), exact
	return int128.Uint128{L: mant}.Lsh(uint(exp - 64))
}

// uint128ToFloat converts a to the nearest float64, ties to even.
func uint128ToFloat(a int128.Uint128) float64 {
	if a.H == 0 {
		return float64(a.L)
	}
	shift := uint(bits.Len64(a.H))
	top := a.Rsh(shift).L
	if a.L&(1<<shift-1) != 0 {
		// sticky bit; the lowest of 64 bits is never a rounding position
		top |= 1
	}
	return math.Ldexp(float64(top), int(shift))
}

// ldexp128 returns a×2**exp rounded once to the nearest float64, ties to
// even. Results below the normal range are rounded at the subnormal
// quantum rather than at 53 bits first.
func ldexp128(a int128.Uint128, exp int) float64 {
	const minExp = -1074 // exponent of the least subnormal bit
	if exp >= minExp || exp+bitLen128(a)-1 >= -1022 {
		return math.Ldexp(uint128ToFloat(a), exp)
	}
	s := uint(minExp - exp)
	if s > 128 {
		return 0
	}
	q := a.Rsh(s)
	rem := and128(a, mask128(s))
	half := int128.Uint128{L: 1}.Lsh(s - 1)
	if c := rem.Cmp(half); c > 0 || c == 0 && q.L&1 != 0 {
		q = q.Add(int128.Uint128{L: 1})
	}
	return math.Ldexp(float64(q.L), minExp)
}
