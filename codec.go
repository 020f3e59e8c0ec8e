package ieee754

import "math"

// Encode returns the bit pattern of x in f.
//
// The mantissa is rounded to nearest with ties away from zero, the same
// rule as [math.Round]. IEEE 754 conversions round ties to even, so a value
// exactly halfway between two representable values may encode one unit in
// the last place above what hardware produces. Finite values too large for f
// encode as the infinity of their sign, values too small encode as the zero
// of their sign.
func (f *Format) Encode(x float64) Pattern {
	if f.wide {
		return encodeWord[w128](f, x).pattern()
	}
	return encodeWord[w64](f, x).pattern()
}

// EncodeUint64 is like [Format.Encode] but returns the pattern as a uint64.
// For a wide format it returns the low 64 bits of the pattern.
func (f *Format) EncodeUint64(x float64) uint64 {
	if f.wide {
		return encodeWord[w128](f, x).low()
	}
	return encodeWord[w64](f, x).low()
}

// Decode returns the float64 value of the pattern p of f.
// Bits of p above the width of f are ignored.
// A value of a wide format that float64 cannot represent exactly is
// rounded to float64 precision; one out of the float64 range gives an
// infinity or a zero.
func (f *Format) Decode(p Pattern) float64 {
	if f.wide {
		return decodeWord(f, w128(and128(p, mask128(f.width))))
	}
	return decodeWord(f, w64(p.L).and(w64(0).mask(f.width)))
}

// DecodeUint64 is like [Format.Decode] for a pattern given as a uint64.
func (f *Format) DecodeUint64(b uint64) float64 {
	if f.wide {
		return decodeWord(f, w128{L: b})
	}
	return decodeWord(f, w64(b).and(w64(0).mask(f.width)))
}

// Round returns the value of f nearest to x, computed as
// Decode(Encode(x)). Round is idempotent.
func (f *Format) Round(x float64) float64 {
	if f.wide {
		return decodeWord(f, encodeWord[w128](f, x))
	}
	return decodeWord(f, encodeWord[w64](f, x))
}

// IsExact reports whether x is a value of f, that is x is not NaN and
// survives [Format.Round] unchanged.
func (f *Format) IsExact(x float64) bool {
	return x == f.Round(x)
}

func encodeWord[W word[W]](f *Format, x float64) W {
	var z W
	switch special(x) {
	case NaN:
		return z.fromPattern(f.d.NaN)
	case PositiveInfinity:
		return z.fromPattern(f.d.PositiveInfinity)
	case NegativeInfinity:
		return z.fromPattern(f.d.NegativeInfinity)
	case NegativeZero:
		return z.fromPattern(f.d.NegativeZero)
	case PositiveZero:
		return z.fromPattern(f.d.PositiveZero)
	}

	shift := f.d.ExponentBits + f.d.MantissaBits
	var sign W
	if x < 0 {
		sign = z.fromUint64(1).lsh(shift)
	}
	abs := math.Abs(x)

	if abs < f.minNormal {
		// subnormal; a mantissa rounded up to 2^m lands on the smallest
		// normal number
		mant := math.Round(math.Ldexp(abs, -f.subnormExp))
		return sign.or(z.fromFloat(mant))
	}

	exp := int(math.Floor(math.Log2(abs)))
	ratio := math.Ldexp(abs, -exp)
	if ratio < 1 {
		ratio *= 2
		exp--
	} else if ratio >= 2 {
		ratio /= 2
		exp++
	}
	mant := math.Round((ratio - 1) * f.mantissaMax)
	if mant >= f.mantissaMax {
		mant = 0
		exp++
	}

	biased := exp + f.d.Bias
	if biased >= int(f.expMax) {
		if x < 0 {
			return z.fromPattern(f.d.NegativeInfinity)
		}
		return z.fromPattern(f.d.PositiveInfinity)
	}
	e := z.fromUint64(uint64(biased)).lsh(f.d.MantissaBits)
	return sign.or(e).or(z.fromFloat(mant))
}

func decodeWord[W word[W]](f *Format, b W) float64 {
	var z W
	switch b {
	case z.fromPattern(f.d.NaN):
		return math.NaN()
	case z.fromPattern(f.d.PositiveInfinity):
		return math.Inf(1)
	case z.fromPattern(f.d.NegativeInfinity):
		return math.Inf(-1)
	case z.fromPattern(f.d.NegativeZero):
		return math.Copysign(0, -1)
	case z.fromPattern(f.d.PositiveZero):
		return 0
	}

	m := f.d.MantissaBits
	neg := !b.rsh(f.d.ExponentBits + m).isZero()
	exp := b.rsh(m).low() & f.expMax
	mant := b.and(z.mask(m))

	var v float64
	switch exp {
	case 0:
		v = mant.ldexp(f.subnormExp)
	case f.expMax:
		if !mant.isZero() {
			return math.NaN()
		}
		v = math.Inf(1)
	default:
		implicit := z.fromUint64(1).lsh(m)
		e := int(exp) - f.d.Bias - int(m)
		v = mant.or(implicit).ldexp(e)
	}
	if neg {
		v = math.Copysign(v, -1)
	}
	return v
}
