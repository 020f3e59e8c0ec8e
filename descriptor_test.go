package ieee754

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanonical(t *testing.T) {
	tests := []struct {
		f      *Format
		width  uint
		bias   int
		nan    Pattern
		posInf Pattern
		negInf Pattern
		negZ   Pattern
	}{
		{
			f:      Binary16,
			width:  16,
			bias:   15,
			nan:    Pattern{L: 0x7e00},
			posInf: Pattern{L: 0x7c00},
			negInf: Pattern{L: 0xfc00},
			negZ:   Pattern{L: 0x8000},
		},
		{
			f:      Binary32,
			width:  32,
			bias:   127,
			nan:    Pattern{L: 0x7fc00000},
			posInf: Pattern{L: 0x7f800000},
			negInf: Pattern{L: 0xff800000},
			negZ:   Pattern{L: 0x80000000},
		},
		{
			f:      Binary64,
			width:  64,
			bias:   1023,
			nan:    Pattern{L: 0x7ff8000000000000},
			posInf: Pattern{L: 0x7ff0000000000000},
			negInf: Pattern{L: 0xfff0000000000000},
			negZ:   Pattern{L: 0x8000000000000000},
		},
		{
			f:      Binary128,
			width:  128,
			bias:   16383,
			nan:    Pattern{H: 0x7fff800000000000},
			posInf: Pattern{H: 0x7fff000000000000},
			negInf: Pattern{H: 0xffff000000000000},
			negZ:   Pattern{H: 0x8000000000000000},
		},
	}

	for _, tt := range tests {
		t.Run(tt.f.Name(), func(t *testing.T) {
			assert.Equal(t, tt.width, tt.f.Width())
			assert.Equal(t, tt.bias, tt.f.Bias())
			assert.Equal(t, tt.nan, tt.f.NaN())
			assert.Equal(t, tt.posInf, tt.f.PositiveInfinity())
			assert.Equal(t, tt.negInf, tt.f.NegativeInfinity())
			assert.Equal(t, tt.negZ, tt.f.NegativeZero())
			assert.Equal(t, Pattern{}, tt.f.PositiveZero())
			assert.Equal(t, tt.width > 64, tt.f.Wide())
			assert.Equal(t, tt.f.Name(), tt.f.String())
		})
	}
}

func TestBinaryConstants(t *testing.T) {
	assert.Equal(t, Pattern{L: Float16NaN}, Binary16.NaN())
	assert.Equal(t, Pattern{L: Float16PositiveInfinity}, Binary16.PositiveInfinity())
	assert.Equal(t, Pattern{L: Float16NegativeInfinity}, Binary16.NegativeInfinity())
	assert.Equal(t, Pattern{L: Float16NegativeZero}, Binary16.NegativeZero())
	assert.Equal(t, Pattern{L: Float16PositiveZero}, Binary16.PositiveZero())
	assert.Equal(t, uint(Float16ExponentBits), Binary16.ExponentBits())
	assert.Equal(t, uint(Float16MantissaBits), Binary16.MantissaBits())
	assert.Equal(t, Float16ExponentBias, Binary16.Bias())

	assert.Equal(t, Pattern{L: Float32NaN}, Binary32.NaN())
	assert.Equal(t, Pattern{L: Float32PositiveInfinity}, Binary32.PositiveInfinity())
	assert.Equal(t, Pattern{L: Float32NegativeInfinity}, Binary32.NegativeInfinity())
	assert.Equal(t, Pattern{L: Float32NegativeZero}, Binary32.NegativeZero())
	assert.Equal(t, Pattern{L: Float32PositiveZero}, Binary32.PositiveZero())
	assert.Equal(t, uint(Float32ExponentBits), Binary32.ExponentBits())
	assert.Equal(t, uint(Float32MantissaBits), Binary32.MantissaBits())
	assert.Equal(t, Float32ExponentBias, Binary32.Bias())
}

func TestNewFormat_Invalid(t *testing.T) {
	tests := []struct {
		name string
		d    func() Descriptor
	}{
		{"width 24", func() Descriptor { return Canonical("w24", 8, 15) }},
		{"width 8", func() Descriptor { return Canonical("w8", 4, 3) }},
		{"one exponent bit", func() Descriptor { return Canonical("e1", 1, 14) }},
		{"no mantissa", func() Descriptor { return Canonical("m0", 15, 0) }},
		{"31 exponent bits", func() Descriptor { return Canonical("e31", 31, 32) }},
		{"zero bias", func() Descriptor {
			d := Canonical("b0", 5, 10)
			d.Bias = 0
			return d
		}},
		{"negative bias", func() Descriptor {
			d := Canonical("b-1", 5, 10)
			d.Bias = -1
			return d
		}},
		{"bias reaches the all-ones exponent", func() Descriptor {
			d := Canonical("b31", 5, 10)
			d.Bias = 31
			return d
		}},
		{"nan equals infinity", func() Descriptor {
			d := Canonical("nan", 5, 10)
			d.NaN = d.PositiveInfinity
			return d
		}},
		{"zeros equal", func() Descriptor {
			d := Canonical("zero", 8, 23)
			d.NegativeZero = d.PositiveZero
			return d
		}},
		{"pattern too wide", func() Descriptor {
			d := Canonical("wide", 5, 10)
			d.NaN = Pattern{L: 0x17e00}
			return d
		}},
		{"wide pattern too wide", func() Descriptor {
			d := Canonical("wide", 11, 52)
			d.NaN = Pattern{H: 1}
			return d
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, err := NewFormat(tt.d())
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalidFormat), "got %v", err)
			assert.Nil(t, f)
		})
	}
}

func TestNewFormat_Custom(t *testing.T) {
	t.Run("bfloat16", func(t *testing.T) {
		f, err := NewFormat(Canonical("bfloat16", 8, 7))
		require.NoError(t, err)
		assert.Equal(t, uint(16), f.Width())
		assert.Equal(t, 127, f.Bias())
		assert.Equal(t, Pattern{L: 0x7fc0}, f.NaN())

		assert.Equal(t, uint64(0x3f80), f.EncodeUint64(1))
		assert.Equal(t, uint64(0x4049), f.EncodeUint64(3.14))
		assert.Equal(t, 3.140625, f.DecodeUint64(0x4049))
		assert.Equal(t, uint64(0x7f80), f.EncodeUint64(1e39))
	})

	t.Run("largest bias", func(t *testing.T) {
		d := Canonical("b30", 5, 10)
		d.Bias = 30
		f, err := NewFormat(d)
		require.NoError(t, err)
		assert.Equal(t, uint64(30<<10), f.EncodeUint64(1))
		assert.Equal(t, 1.0, f.DecodeUint64(30<<10))
	})

	t.Run("shifted bias", func(t *testing.T) {
		d := Canonical("b14", 5, 10)
		d.Bias = 14
		f, err := NewFormat(d)
		require.NoError(t, err)
		assert.Equal(t, uint64(0x3800), f.EncodeUint64(1))
		assert.Equal(t, 1.0, f.DecodeUint64(0x3800))
		assert.Equal(t, 2.0, f.DecodeUint64(0x3c00))
	})

	t.Run("non-canonical nan", func(t *testing.T) {
		d := Canonical("signaling", 5, 10)
		d.NaN = Pattern{L: 0x7c01}
		f, err := NewFormat(d)
		require.NoError(t, err)
		assert.Equal(t, uint64(0x7c01), f.EncodeUint64(math.NaN()))

		// other patterns of the all-ones exponent are still NaN
		assert.True(t, math.IsNaN(f.DecodeUint64(0x7e00)))
		assert.True(t, math.IsNaN(f.DecodeUint64(0xffff)))
	})
}

func TestMustFormat(t *testing.T) {
	assert.NotPanics(t, func() { MustFormat(Canonical("binary16", 5, 10)) })
	assert.Panics(t, func() { MustFormat(Canonical("binary24", 7, 16)) })
}

func TestFormat_Descriptor(t *testing.T) {
	d := Binary16.Descriptor()
	assert.Equal(t, Canonical("binary16", 5, 10), d)

	d.Bias = 1
	d.NaN = Pattern{}
	assert.Equal(t, 15, Binary16.Bias())
	assert.Equal(t, Pattern{L: 0x7e00}, Binary16.NaN())
}

func TestLookup(t *testing.T) {
	tests := []struct {
		name string
		want *Format
	}{
		{"binary16", Binary16},
		{"float16", Binary16},
		{"half", Binary16},
		{"binary32", Binary32},
		{"float32", Binary32},
		{"single", Binary32},
		{"binary64", Binary64},
		{"float64", Binary64},
		{"double", Binary64},
		{"binary128", Binary128},
		{"float128", Binary128},
		{"quad", Binary128},
	}
	for _, tt := range tests {
		f, err := Lookup(tt.name)
		require.NoError(t, err, tt.name)
		assert.Same(t, tt.want, f, tt.name)
	}

	_, err := Lookup("bfloat16")
	assert.ErrorIs(t, err, ErrUnknownFormat)
	assert.Contains(t, err.Error(), `"bfloat16"`)
}

func TestFormats(t *testing.T) {
	var names []string
	for _, f := range Formats() {
		names = append(names, f.Name())
	}
	assert.Equal(t, []string{"binary16", "binary32", "binary64", "binary128"}, names)
}
