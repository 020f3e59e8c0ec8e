package ieee754

import (
	"math"

	"github.com/shogo82148/int128"
)

// word is the integer type a codec instantiation works on.
// The receiver of the constructor methods is ignored.
type word[W any] interface {
	comparable

	fromUint64(x uint64) W
	fromFloat(f float64) W // f is integral, non-negative and fits
	fromPattern(p Pattern) W
	pattern() Pattern

	or(b W) W
	and(b W) W
	add(b W) W
	lsh(n uint) W
	rsh(n uint) W
	mask(n uint) W // n low bits set

	isZero() bool
	low() uint64

	// ldexp returns the word times 2**exp as the nearest float64.
	ldexp(exp int) float64
}

// w64 serves every format up to 64 bits wide.
type w64 uint64

func (w64) fromUint64(x uint64) w64 {
	return w64(x)
}

func (w64) fromFloat(f float64) w64 {
	return w64(f)
}

func (w64) fromPattern(p Pattern) w64 {
	return w64(p.L)
}

func (a w64) pattern() Pattern {
	return Pattern{L: uint64(a)}
}

func (a w64) or(b w64) w64 {
	return a | b
}

func (a w64) and(b w64) w64 {
	return a & b
}

func (a w64) add(b w64) w64 {
	return a + b
}

func (a w64) lsh(n uint) w64 {
	return a << n
}

func (a w64) rsh(n uint) w64 {
	return a >> n
}

func (w64) mask(n uint) w64 {
	return 1<<n - 1
}

func (a w64) isZero() bool {
	return a == 0
}

func (a w64) low() uint64 {
	return uint64(a)
}

func (a w64) ldexp(exp int) float64 {
	if a < 1<<53 {
		// exact conversion, so Ldexp rounds only once
		return math.Ldexp(float64(a), exp)
	}
	return ldexp128(int128.Uint128{L: uint64(a)}, exp)
}

// w128 serves formats wider than 64 bits.
type w128 int128.Uint128

func (w128) fromUint64(x uint64) w128 {
	return w128{L: x}
}

func (w128) fromFloat(f float64) w128 {
	return w128(uint128FromFloat(f))
}

func (w128) fromPattern(p Pattern) w128 {
	return w128(p)
}

func (a w128) pattern() Pattern {
	return Pattern(a)
}

func (a w128) or(b w128) w128 {
	return w128(or128(Pattern(a), Pattern(b)))
}

func (a w128) and(b w128) w128 {
	return w128(and128(Pattern(a), Pattern(b)))
}

func (a w128) add(b w128) w128 {
	return w128(Pattern(a).Add(Pattern(b)))
}

func (a w128) lsh(n uint) w128 {
	return w128(Pattern(a).Lsh(n))
}

func (a w128) rsh(n uint) w128 {
	return w128(Pattern(a).Rsh(n))
}

func (w128) mask(n uint) w128 {
	return w128(mask128(n))
}

func (a w128) isZero() bool {
	return a.H == 0 && a.L == 0
}

func (a w128) low() uint64 {
	return a.L
}

func (a w128) ldexp(exp int) float64 {
	return ldexp128(Pattern(a), exp)
}
