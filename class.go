package ieee754

import (
	"math"
	"strconv"
)

// Class is the category of a value relative to a format.
type Class uint8

const (
	// Normal is a finite value with the implicit leading one.
	Normal Class = iota

	// Subnormal is a nonzero finite value below the least normal.
	Subnormal

	// PositiveZero is +0.
	PositiveZero

	// NegativeZero is -0.
	NegativeZero

	// PositiveInfinity is +Inf, which finite overflow also rounds to.
	PositiveInfinity

	// NegativeInfinity is -Inf, which finite overflow also rounds to.
	NegativeInfinity

	// NaN is not a number.
	NaN
)

var classNames = [...]string{
	Normal:           "normal",
	Subnormal:        "subnormal",
	PositiveZero:     "+0",
	NegativeZero:     "-0",
	PositiveInfinity: "+Inf",
	NegativeInfinity: "-Inf",
	NaN:              "NaN",
}

// String returns the short name of c, such as "normal" or "-0".
func (c Class) String() string {
	if int(c) < len(classNames) {
		return classNames[c]
	}
	return "Class(" + strconv.Itoa(int(c)) + ")"
}

// IsSpecial reports whether c is one of the classes encoded by a reserved
// pattern of the format.
func (c Class) IsSpecial() bool {
	return c >= PositiveZero
}

// special classifies the values that have a reserved pattern in every format.
// It reports Normal for any other value.
func special(x float64) Class {
	switch {
	case x != x:
		return NaN
	case math.IsInf(x, 1):
		return PositiveInfinity
	case math.IsInf(x, -1):
		return NegativeInfinity
	case x == 0 && math.IsInf(1/x, -1):
		return NegativeZero
	case x == 0:
		return PositiveZero
	}
	return Normal
}

// Classify returns the class of x as a value of f.
// A finite non-zero x is Subnormal if its magnitude is below the smallest
// normal number of f, even when f cannot represent it exactly.
func (f *Format) Classify(x float64) Class {
	if c := special(x); c != Normal {
		return c
	}
	if math.Abs(x) < f.minNormal {
		return Subnormal
	}
	return Normal
}
