package ieee754

import "math"

// Reserved patterns and field layout of [Binary16].
const (
	Float16NaN              = 0x7E00
	Float16PositiveInfinity = 0x7C00
	Float16NegativeInfinity = 0xFC00
	Float16NegativeZero     = 0x8000
	Float16PositiveZero     = 0x0000
	Float16ExponentBits     = 5
	Float16MantissaBits     = 10
	Float16ExponentBias     = 15
)

// Reserved patterns and field layout of [Binary32].
const (
	Float32NaN              = 0x7FC00000
	Float32PositiveInfinity = 0x7F800000
	Float32NegativeInfinity = 0xFF800000
	Float32NegativeZero     = 0x80000000
	Float32PositiveZero     = 0x00000000
	Float32ExponentBits     = 8
	Float32MantissaBits     = 23
	Float32ExponentBias     = 127
)

// EncodeFloat16 returns the binary16 bit pattern of x.
func EncodeFloat16(x float64) uint16 {
	return uint16(encodeWord[w64](Binary16, x))
}

// DecodeFloat16 returns the value of the binary16 bit pattern b.
func DecodeFloat16(b uint16) float64 {
	return decodeWord(Binary16, w64(b))
}

// RoundFloat16 returns x rounded to half precision.
func RoundFloat16(x float64) float64 {
	return decodeWord(Binary16, encodeWord[w64](Binary16, x))
}

// F16Round is an alias of [RoundFloat16].
func F16Round(x float64) float64 {
	return RoundFloat16(x)
}

// IsFloat16 reports whether x is exactly representable in half precision.
// NaN is never representable.
func IsFloat16(x float64) bool {
	return x == RoundFloat16(x)
}

// EncodeFloat32 returns the binary32 bit pattern of x.
func EncodeFloat32(x float64) uint32 {
	return uint32(encodeWord[w64](Binary32, x))
}

// DecodeFloat32 returns the value of the binary32 bit pattern b.
func DecodeFloat32(b uint32) float64 {
	return decodeWord(Binary32, w64(b))
}

// RoundFloat32 returns x rounded to single precision.
//
// Unlike float64(float32(x)), halfway cases round away from zero.
func RoundFloat32(x float64) float64 {
	return decodeWord(Binary32, encodeWord[w64](Binary32, x))
}

// FRound is an alias of [RoundFloat32].
func FRound(x float64) float64 {
	return RoundFloat32(x)
}

// IsFloat32 reports whether x is exactly representable in single precision.
// NaN is never representable.
func IsFloat32(x float64) bool {
	return x == RoundFloat32(x)
}

// IsFiniteFloat32 is like [IsFloat32] but also excludes the infinities.
func IsFiniteFloat32(x float64) bool {
	return IsFloat32(x) && !math.IsInf(x, 0)
}

// EncodeFloat64 returns the binary64 bit pattern of x.
// It agrees with [math.Float64bits] except that every NaN encodes as the
// canonical quiet NaN.
func EncodeFloat64(x float64) uint64 {
	return uint64(encodeWord[w64](Binary64, x))
}

// DecodeFloat64 returns the value of the binary64 bit pattern b.
func DecodeFloat64(b uint64) float64 {
	return decodeWord(Binary64, w64(b))
}

// RoundFloat64 returns x itself, or the canonical NaN if x is NaN.
func RoundFloat64(x float64) float64 {
	return decodeWord(Binary64, encodeWord[w64](Binary64, x))
}

// IsFloat64 reports whether x is not NaN.
func IsFloat64(x float64) bool {
	return x == RoundFloat64(x)
}

// EncodeFloat128 returns the binary128 bit pattern of x.
// Every float64 is exactly representable in quadruple precision.
func EncodeFloat128(x float64) Pattern {
	return encodeWord[w128](Binary128, x).pattern()
}

// DecodeFloat128 returns the value of the binary128 bit pattern b,
// rounded to float64 precision.
func DecodeFloat128(b Pattern) float64 {
	return decodeWord(Binary128, w128(b))
}

// RoundFloat128 returns x rounded to quadruple precision, which is x itself
// or the canonical NaN.
func RoundFloat128(x float64) float64 {
	return decodeWord(Binary128, encodeWord[w128](Binary128, x))
}
