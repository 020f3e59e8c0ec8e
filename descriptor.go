// Package ieee754 converts float64 values to and from IEEE 754 binary
// interchange formats of any supported width.
//
// A [Format] describes the layout of one binary format: the widths of the
// exponent and mantissa fields, the exponent bias and the bit patterns
// reserved for NaN, the infinities and the zeros. The same codec drives
// every format; formats up to 64 bits wide run on native integers and
// wider formats on 128-bit integers.
package ieee754

import (
	"errors"
	"fmt"
	"math"

	"github.com/shogo82148/int128"
)

// Pattern is a raw bit pattern. It is wide enough for every supported
// format; the bits above the format width are always zero.
type Pattern = int128.Uint128

// ErrInvalidFormat is returned by [NewFormat] for a descriptor that
// violates the layout invariants.
var ErrInvalidFormat = errors.New("ieee754: invalid format")

// ErrUnknownFormat is returned by [Lookup] for a name that does not
// match any predefined format.
var ErrUnknownFormat = errors.New("ieee754: unknown format")

// Descriptor is the plain description of a binary format.
type Descriptor struct {
	Name         string
	ExponentBits uint
	MantissaBits uint
	Bias         int

	NaN              Pattern
	PositiveInfinity Pattern
	NegativeInfinity Pattern
	NegativeZero     Pattern
	PositiveZero     Pattern
}

// Canonical returns the descriptor of the format with the given field
// widths, the conventional bias 2^(exponentBits-1)-1 and the canonical
// special values. NaN is the quiet NaN with a clear sign bit.
func Canonical(name string, exponentBits, mantissaBits uint) Descriptor {
	width := exponentBits + mantissaBits + 1
	one := Pattern{L: 1}
	expAll := one.Lsh(exponentBits).Sub(one).Lsh(mantissaBits)
	sign := one.Lsh(width - 1)
	var bias int
	if exponentBits >= 1 && exponentBits < 63 {
		bias = 1<<(exponentBits-1) - 1
	}
	var quiet Pattern
	if mantissaBits >= 1 {
		quiet = one.Lsh(mantissaBits - 1)
	}
	return Descriptor{
		Name:             name,
		ExponentBits:     exponentBits,
		MantissaBits:     mantissaBits,
		Bias:             bias,
		NaN:              or128(expAll, quiet),
		PositiveInfinity: expAll,
		NegativeInfinity: or128(sign, expAll),
		NegativeZero:     sign,
		PositiveZero:     Pattern{},
	}
}

// Format is a validated, immutable binary format.
// A Format is safe for concurrent use.
type Format struct {
	d     Descriptor
	width uint
	wide  bool

	expMax      uint64 // all-ones exponent field
	minNormal   float64
	subnormExp  int // exponent of the least significant subnormal bit
	mantissaMax float64
}

// NewFormat validates d and returns the format it describes.
func NewFormat(d Descriptor) (*Format, error) {
	width := d.ExponentBits + d.MantissaBits + 1
	switch width {
	case 16, 32, 64, 128:
	default:
		return nil, fmt.Errorf("%w: %q is %d bits wide, want 16, 32, 64 or 128", ErrInvalidFormat, d.Name, width)
	}
	if d.ExponentBits < 2 {
		return nil, fmt.Errorf("%w: %q needs at least 2 exponent bits", ErrInvalidFormat, d.Name)
	}
	if d.MantissaBits < 1 {
		return nil, fmt.Errorf("%w: %q needs at least 1 mantissa bit", ErrInvalidFormat, d.Name)
	}
	if d.ExponentBits > 30 {
		return nil, fmt.Errorf("%w: %q has %d exponent bits, want at most 30", ErrInvalidFormat, d.Name, d.ExponentBits)
	}
	expMax := uint64(1)<<d.ExponentBits - 1
	if d.Bias < 1 || uint64(d.Bias) > expMax-1 {
		return nil, fmt.Errorf("%w: %q has bias %d out of range [1, %d]", ErrInvalidFormat, d.Name, d.Bias, expMax-1)
	}

	specials := []struct {
		name string
		p    Pattern
	}{
		{"nan", d.NaN},
		{"positive infinity", d.PositiveInfinity},
		{"negative infinity", d.NegativeInfinity},
		{"negative zero", d.NegativeZero},
		{"positive zero", d.PositiveZero},
	}
	for i, s := range specials {
		if bitLen128(s.p) > int(width) {
			return nil, fmt.Errorf("%w: %q %s pattern does not fit in %d bits", ErrInvalidFormat, d.Name, s.name, width)
		}
		for _, t := range specials[:i] {
			if s.p == t.p {
				return nil, fmt.Errorf("%w: %q %s and %s patterns are equal", ErrInvalidFormat, d.Name, t.name, s.name)
			}
		}
	}

	subnormExp := 1 - d.Bias - int(d.MantissaBits)
	return &Format{
		d:           d,
		width:       width,
		wide:        width > 64,
		expMax:      expMax,
		minNormal:   math.Ldexp(1, 1-d.Bias),
		subnormExp:  subnormExp,
		mantissaMax: math.Ldexp(1, int(d.MantissaBits)),
	}, nil
}

// MustFormat is like [NewFormat] but panics if d is invalid.
// It is intended for package-level format variables.
func MustFormat(d Descriptor) *Format {
	f, err := NewFormat(d)
	if err != nil {
		panic(err)
	}
	return f
}

// Descriptor returns a copy of the descriptor of f.
func (f *Format) Descriptor() Descriptor {
	return f.d
}

// Name returns the name of f.
func (f *Format) Name() string {
	return f.d.Name
}

// ExponentBits returns the width of the exponent field.
func (f *Format) ExponentBits() uint {
	return f.d.ExponentBits
}

// MantissaBits returns the width of the mantissa field.
func (f *Format) MantissaBits() uint {
	return f.d.MantissaBits
}

// Bias returns the exponent bias.
func (f *Format) Bias() int {
	return f.d.Bias
}

// NaN returns the pattern every NaN encodes to.
func (f *Format) NaN() Pattern {
	return f.d.NaN
}

// PositiveInfinity returns the pattern of +Inf.
func (f *Format) PositiveInfinity() Pattern {
	return f.d.PositiveInfinity
}

// NegativeInfinity returns the pattern of -Inf.
func (f *Format) NegativeInfinity() Pattern {
	return f.d.NegativeInfinity
}

// NegativeZero returns the pattern of -0.
func (f *Format) NegativeZero() Pattern {
	return f.d.NegativeZero
}

// PositiveZero returns the pattern of +0.
func (f *Format) PositiveZero() Pattern {
	return f.d.PositiveZero
}

// Width returns the total number of bits of a pattern.
func (f *Format) Width() uint {
	return f.width
}

// Wide reports whether patterns of f do not fit in a uint64.
func (f *Format) Wide() bool {
	return f.wide
}

// String returns the name of f.
func (f *Format) String() string {
	return f.d.Name
}

var (
	// Binary16 is the IEEE 754 half precision format.
	Binary16 = MustFormat(Canonical("binary16", 5, 10))

	// Binary32 is the IEEE 754 single precision format.
	Binary32 = MustFormat(Canonical("binary32", 8, 23))

	// Binary64 is the IEEE 754 double precision format.
	Binary64 = MustFormat(Canonical("binary64", 11, 52))

	// Binary128 is the IEEE 754 quadruple precision format.
	Binary128 = MustFormat(Canonical("binary128", 15, 112))
)

var formats = map[string]*Format{
	"binary16":  Binary16,
	"float16":   Binary16,
	"half":      Binary16,
	"binary32":  Binary32,
	"float32":   Binary32,
	"single":    Binary32,
	"binary64":  Binary64,
	"float64":   Binary64,
	"double":    Binary64,
	"binary128": Binary128,
	"float128":  Binary128,
	"quad":      Binary128,
}

// Lookup returns the predefined format with the given name or alias.
func Lookup(name string) (*Format, error) {
	f, ok := formats[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, name)
	}
	return f, nil
}

// Formats returns the predefined formats, narrowest first.
func Formats() []*Format {
	return []*Format{Binary16, Binary32, Binary64, Binary128}
}
