// Package formatfile reads and writes tables of binary format descriptors
// in YAML.
//
// A table looks like
//
//	formats:
//	  - name: bfloat16
//	    exponent: 8
//	    mantissa: 7
//	  - name: half-signaling
//	    exponent: 5
//	    mantissa: 10
//	    nan: 0x7d00
//
// Omitted fields take the values of [ieee754.Canonical].
package formatfile

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/shogo82148/ieee754"
	"gopkg.in/yaml.v3"
)

// ErrPattern is returned for a bit pattern that is not a hexadecimal
// or decimal integer of at most 128 bits.
var ErrPattern = errors.New("formatfile: invalid pattern")

type document struct {
	Formats []entry `yaml:"formats"`
}

type entry struct {
	Name     string `yaml:"name"`
	Exponent uint   `yaml:"exponent"`
	Mantissa uint   `yaml:"mantissa"`
	Bias     *int   `yaml:"bias,omitempty"`

	NaN              *pattern `yaml:"nan,omitempty"`
	PositiveInfinity *pattern `yaml:"positive_infinity,omitempty"`
	NegativeInfinity *pattern `yaml:"negative_infinity,omitempty"`
	NegativeZero     *pattern `yaml:"negative_zero,omitempty"`
	PositiveZero     *pattern `yaml:"positive_zero,omitempty"`
}

func (e *entry) descriptor() ieee754.Descriptor {
	d := ieee754.Canonical(e.Name, e.Exponent, e.Mantissa)
	if e.Bias != nil {
		d.Bias = *e.Bias
	}
	for _, o := range []struct {
		src *pattern
		dst *ieee754.Pattern
	}{
		{e.NaN, &d.NaN},
		{e.PositiveInfinity, &d.PositiveInfinity},
		{e.NegativeInfinity, &d.NegativeInfinity},
		{e.NegativeZero, &d.NegativeZero},
		{e.PositiveZero, &d.PositiveZero},
	} {
		if o.src != nil {
			*o.dst = o.src.p
		}
	}
	return d
}

// pattern is a bit pattern written as a YAML scalar.
type pattern struct {
	p     ieee754.Pattern
	width uint
}

func (v *pattern) UnmarshalYAML(n *yaml.Node) error {
	if n.Kind != yaml.ScalarNode {
		return fmt.Errorf("%w: line %d: want a scalar", ErrPattern, n.Line)
	}
	p, err := ParsePattern(n.Value)
	if err != nil {
		return fmt.Errorf("line %d: %w", n.Line, err)
	}
	v.p = p
	return nil
}

func (v pattern) MarshalYAML() (any, error) {
	return FormatPattern(v.p, v.width), nil
}

// Load reads a table of formats from r and validates every entry.
// An empty document holds no formats.
func Load(r io.Reader) ([]*ieee754.Format, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var doc document
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, fmt.Errorf("parse formats: %w", err)
	}

	formats := make([]*ieee754.Format, 0, len(doc.Formats))
	seen := make(map[string]bool, len(doc.Formats))
	for i := range doc.Formats {
		e := &doc.Formats[i]
		if e.Name == "" {
			return nil, fmt.Errorf("format #%d: missing name", i)
		}
		if seen[e.Name] {
			return nil, fmt.Errorf("format #%d: duplicate name %q", i, e.Name)
		}
		seen[e.Name] = true

		f, err := ieee754.NewFormat(e.descriptor())
		if err != nil {
			return nil, fmt.Errorf("format #%d: %w", i, err)
		}
		formats = append(formats, f)
	}
	return formats, nil
}

// LoadFile is like [Load] but reads the named file.
func LoadFile(name string) ([]*ieee754.Format, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, fmt.Errorf("open formats: %w", err)
	}
	defer f.Close()

	formats, err := Load(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return formats, nil
}

// Write writes formats to w as a table that [Load] reads back.
// Every field is written out.
func Write(w io.Writer, formats []*ieee754.Format) error {
	var doc document
	for _, f := range formats {
		bias := f.Bias()
		width := f.Width()
		doc.Formats = append(doc.Formats, entry{
			Name:             f.Name(),
			Exponent:         f.ExponentBits(),
			Mantissa:         f.MantissaBits(),
			Bias:             &bias,
			NaN:              &pattern{f.NaN(), width},
			PositiveInfinity: &pattern{f.PositiveInfinity(), width},
			NegativeInfinity: &pattern{f.NegativeInfinity(), width},
			NegativeZero:     &pattern{f.NegativeZero(), width},
			PositiveZero:     &pattern{f.PositiveZero(), width},
		})
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(&doc); err != nil {
		return fmt.Errorf("encode formats: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("close formats: %w", err)
	}
	return nil
}

// Lookup returns the format of formats with the given name, or else the
// predefined format of that name.
func Lookup(formats []*ieee754.Format, name string) (*ieee754.Format, error) {
	for _, f := range formats {
		if f.Name() == name {
			return f, nil
		}
	}
	return ieee754.Lookup(name)
}

// ParsePattern parses a bit pattern. A pattern with a 0x prefix is
// hexadecimal and may be up to 128 bits wide; anything else is a decimal
// uint64. Underscores may separate digits.
func ParsePattern(s string) (ieee754.Pattern, error) {
	digits := strings.ReplaceAll(strings.TrimSpace(s), "_", "")
	hex, ok := strings.CutPrefix(digits, "0x")
	if !ok {
		hex, ok = strings.CutPrefix(digits, "0X")
	}

	if !ok {
		l, err := strconv.ParseUint(digits, 10, 64)
		if err != nil {
			return ieee754.Pattern{}, fmt.Errorf("%w: %q", ErrPattern, s)
		}
		return ieee754.Pattern{L: l}, nil
	}

	if hex == "" || len(hex) > 32 {
		return ieee754.Pattern{}, fmt.Errorf("%w: %q", ErrPattern, s)
	}
	var hi string
	if len(hex) > 16 {
		hi, hex = hex[:len(hex)-16], hex[len(hex)-16:]
	}
	l, err := strconv.ParseUint(hex, 16, 64)
	if err != nil {
		return ieee754.Pattern{}, fmt.Errorf("%w: %q", ErrPattern, s)
	}
	var h uint64
	if hi != "" {
		h, err = strconv.ParseUint(hi, 16, 64)
		if err != nil {
			return ieee754.Pattern{}, fmt.Errorf("%w: %q", ErrPattern, s)
		}
	}
	return ieee754.Pattern{H: h, L: l}, nil
}

// FormatPattern returns p in hexadecimal with a 0x prefix, zero-padded to
// width bits.
func FormatPattern(p ieee754.Pattern, width uint) string {
	digits := int(width+3) / 4
	if p.H != 0 || digits > 16 {
		return fmt.Sprintf("0x%0*x%016x", max(digits-16, 0), p.H, p.L)
	}
	return fmt.Sprintf("0x%0*x", digits, p.L)
}
