package float16

import "math"

// Sqrt returns the square root of x.
//
// Special cases are:
//
//	Sqrt(+Inf) = +Inf
//	Sqrt(±0) = ±0
//	Sqrt(x < 0) = NaN
//	Sqrt(NaN) = NaN
func Sqrt(x Float16) Float16 {
	return x.Sqrt()
}

// Sqrt returns the square root of x.
// See [Sqrt] for the special cases.
func (x Float16) Sqrt() Float16 {
	switch {
	case x&^signMask16 == 0 || x.IsNaN() || x.IsInf(1):
		return x
	case x&signMask16 != 0:
		return uvnan
	}
	return round(math.Sqrt(x.Float64()))
}
