package float16

import (
	"github.com/shogo82148/ieee754"
)

// Sums and products of two halves are exact in float64, so Add, Sub and Mul
// round once. Quo rounds to float64 first.

// Add returns the half precision sum of a and b.
func (a Float16) Add(b Float16) Float16 {
	if a.IsNaN() || b.IsNaN() {
		// anything + NaN = NaN
		// NaN + anything = NaN
		return propagateNaN(a, b)
	}
	return round(a.Float64() + b.Float64())
}

// Sub returns the half precision difference of a and b.
func (a Float16) Sub(b Float16) Float16 {
	return a.Add(b ^ signMask16)
}

// Mul returns the half precision product of a and b.
func (a Float16) Mul(b Float16) Float16 {
	if a.IsNaN() || b.IsNaN() {
		// anything * NaN = NaN
		// NaN * anything = NaN
		return propagateNaN(a, b)
	}
	return round(a.Float64() * b.Float64())
}

// Quo returns the half precision quotient of a and b.
func (a Float16) Quo(b Float16) Float16 {
	if a.IsNaN() || b.IsNaN() {
		// anything / NaN = NaN
		// NaN / anything = NaN
		return propagateNaN(a, b)
	}
	return round(a.Float64() / b.Float64())
}

// propagateNaN returns the first NaN operand, made quiet.
func propagateNaN(a, b Float16) Float16 {
	if a.IsNaN() {
		return a | 1<<(shift16-1)
	}
	return b | 1<<(shift16-1)
}

func round(f float64) Float16 {
	return Float16(ieee754.EncodeFloat16(f))
}

// Equal reports whether a and b are equal as numbers:
// -0 equals +0 and NaN equals nothing.
func (a Float16) Equal(b Float16) bool {
	if a.IsNaN() || b.IsNaN() {
		return false
	}
	return a == b || (a|b)&^signMask16 == 0
}

// Compare compares x and y and returns:
//
//	-1 if x <  y
//	 0 if x == y (incl. -0 == 0, -Inf == -Inf, and +Inf == +Inf)
//	+1 if x >  y
//
// a NaN is considered less than any non-NaN, and two NaNs are equal.
func (a Float16) Compare(b Float16) int {
	aNaN := a.IsNaN()
	bNaN := b.IsNaN()
	if aNaN && bNaN {
		return 0
	}
	if aNaN {
		return -1
	}
	if bNaN {
		return 1
	}

	// map sign-magnitude onto two's complement so that -0 and +0 meet
	ia := int32(a &^ signMask16)
	if a&signMask16 != 0 {
		ia = -ia
	}
	ib := int32(b &^ signMask16)
	if b&signMask16 != 0 {
		ib = -ib
	}
	switch {
	case ia < ib:
		return -1
	case ia > ib:
		return 1
	}
	return 0
}
