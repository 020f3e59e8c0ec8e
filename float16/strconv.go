package float16

import (
	"errors"
	"math"
	"math/big"
	"strconv"
)

// maximum significant decimal digits needed to identify a half
const maxDigits16 = 5

func (x Float16) String() string {
	return x.Text('g', -1)
}

// Text converts x to a string, according to the format fmt and precision
// prec, as [strconv.FormatFloat] does. The precision -1 uses the smallest
// number of digits necessary for [Parse] to return x exactly.
// The format 'b' prints the binary16 mantissa and exponent, -ddddp±dd.
func (x Float16) Text(fmt byte, prec int) string {
	return string(x.Append(make([]byte, 0, 8), fmt, prec))
}

// Append appends the string form of x, as generated by [Float16.Text],
// to buf and returns the extended buffer.
func (x Float16) Append(buf []byte, fmt byte, prec int) []byte {
	switch {
	case x.IsNaN():
		return append(buf, "NaN"...)
	case x == uvinf:
		return append(buf, "+Inf"...)
	case x == uvneginf:
		return append(buf, "-Inf"...)
	}

	switch fmt {
	case 'b':
		return x.appendBin(buf)
	case 'x', 'X':
		// hexadecimal is exact for every float64 of a half
		return strconv.AppendFloat(buf, x.Float64(), fmt, prec, 64)
	}
	if prec >= 0 {
		return strconv.AppendFloat(buf, x.Float64(), fmt, prec, 64)
	}
	return strconv.AppendFloat(buf, x.shortest(), fmt, -1, 64)
}

// shortest returns the float64 value of the shortest decimal that rounds
// to x. Its own shortest float64 form has the same digits.
func (x Float16) shortest() float64 {
	f := x.Float64()
	if f == 0 {
		return f
	}
	var tmp [32]byte
	for digits := 1; digits <= maxDigits16; digits++ {
		s := strconv.AppendFloat(tmp[:0], f, 'e', digits-1, 64)
		d, err := strconv.ParseFloat(string(s), 64)
		if err == nil && FromFloat64(d) == x {
			return d
		}
	}
	return f
}

func (x Float16) appendBin(buf []byte) []byte {
	if x&signMask16 != 0 {
		buf = append(buf, '-')
	}
	exp := int(x>>shift16&mask16) - bias16
	frac := uint64(x & fracMask16)

	if exp == -bias16 {
		exp++
	} else {
		frac |= 1 << shift16
	}
	exp -= shift16

	buf = strconv.AppendUint(buf, frac, 10)
	buf = append(buf, 'p')
	if exp >= 0 {
		buf = append(buf, '+')
	}
	return strconv.AppendInt(buf, int64(exp), 10)
}

// Parse converts the string s to the nearest half precision number,
// rounding halfway cases away from zero. It accepts the syntax of [strconv.ParseFloat].
//
// If s is well-formed but too large for a half, Parse returns ±Inf and
// an error with Err = [strconv.ErrRange].
func Parse(s string) (Float16, error) {
	const fnParse = "Parse"

	f, err := strconv.ParseFloat(s, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return 0, &strconv.NumError{Func: fnParse, Num: s, Err: errors.Unwrap(err)}
	}
	x := FromFloat64(f)
	if err == nil && x&^signMask16 != 0 && isTie(x, f) {
		// f may itself be the rounded form of a value just below the tie.
		if r, ok := new(big.Rat).SetString(s); ok {
			exact := new(big.Rat).SetFloat64(math.Abs(f))
			if r.Abs(r).Cmp(exact) < 0 {
				x--
			}
		}
	}
	if x.IsInf(0) && (err != nil || !math.IsInf(f, 0)) {
		return x, &strconv.NumError{Func: fnParse, Num: s, Err: strconv.ErrRange}
	}
	return x, nil
}

// isTie reports whether f lies halfway between x and the next half
// toward zero.
func isTie(x Float16, f float64) bool {
	if math.IsInf(f, 0) || math.IsNaN(f) {
		return false
	}
	var mid float64
	if x.IsInf(0) {
		mid = 65520
	} else {
		mid = (x.Abs().Float64() + (x.Abs() - 1).Float64()) / 2
	}
	return math.Abs(f) == mid
}
