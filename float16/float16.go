// Package float16 implements the IEEE 754 half precision type.
//
// Conversions from wider types use the rounding of [ieee754.Binary16]:
// round to nearest, ties away from zero.
package float16

import (
	"math"

	"github.com/shogo82148/ieee754"
)

// Float16 is the bit pattern of an IEEE 754 binary16 value.
type Float16 uint16

const (
	signMask16 = 0x8000
	shift16    = ieee754.Float16MantissaBits
	mask16     = 0x1f
	bias16     = ieee754.Float16ExponentBias
	fracMask16 = 1<<shift16 - 1

	uvnan    Float16 = ieee754.Float16NaN
	uvinf    Float16 = ieee754.Float16PositiveInfinity
	uvneginf Float16 = ieee754.Float16NegativeInfinity
)

// FromBits returns the floating point number corresponding
// the IEEE 754 binary representation b.
func FromBits(b uint16) Float16 {
	return Float16(b)
}

// Float16frombits is an alias of [FromBits].
func Float16frombits(b uint16) Float16 {
	return Float16(b)
}

// Bits returns the IEEE 754 binary representation of f.
func (f Float16) Bits() uint16 {
	return uint16(f)
}

// NaN returns the canonical quiet NaN.
func NaN() Float16 {
	return uvnan
}

// Inf returns positive infinity if sign >= 0, negative infinity if sign < 0.
func Inf(sign int) Float16 {
	if sign >= 0 {
		return uvinf
	}
	return uvneginf
}

// IsNaN reports whether f is an IEEE 754 “not-a-number” value.
func (f Float16) IsNaN() bool {
	return f&(mask16<<shift16) == mask16<<shift16 && f&fracMask16 != 0
}

// IsInf reports whether f is an infinity, according to sign.
// If sign > 0, IsInf reports whether f is positive infinity.
// If sign < 0, IsInf reports whether f is negative infinity.
// If sign == 0, IsInf reports whether f is either infinity.
func (f Float16) IsInf(sign int) bool {
	return sign >= 0 && f == uvinf || sign <= 0 && f == uvneginf
}

// Signbit reports whether f is negative or negative zero.
func (f Float16) Signbit() bool {
	return f&signMask16 != 0
}

// Neg returns -f.
func (f Float16) Neg() Float16 {
	return f ^ signMask16
}

// Abs returns the absolute value of f.
func (f Float16) Abs() Float16 {
	return f &^ signMask16
}

// FromFloat32 returns the half precision number nearest to f.
func FromFloat32(f float32) Float16 {
	return Float16(ieee754.EncodeFloat16(float64(f)))
}

// FromFloat64 returns the half precision number nearest to f.
func FromFloat64(f float64) Float16 {
	return Float16(ieee754.EncodeFloat16(f))
}

// Float32 returns the float32 representation of f.
// Every NaN converts to a quiet NaN.
func (f Float16) Float32() float32 {
	return float32(f.Float64())
}

// Float64 returns the float64 representation of f.
// Every NaN converts to a quiet NaN.
func (f Float16) Float64() float64 {
	if f.IsNaN() {
		return math.NaN()
	}
	return ieee754.DecodeFloat16(uint16(f))
}
