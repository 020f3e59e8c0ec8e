package main

import (
	"strconv"

	"github.com/shogo82148/ieee754"
	"github.com/shogo82148/ieee754/internal/formatfile"
	"go.brendoncarroll.net/star"
)

var root = star.NewDir(star.Metadata{
	Short: "convert numbers to and from IEEE 754 binary formats",
}, map[star.Symbol]star.Command{
	"encode":   encodeCmd,
	"decode":   decodeCmd,
	"round":    roundCmd,
	"classify": classifyCmd,
	"formats":  formatsCmd,
})

var encodeCmd = star.Command{
	Metadata: star.Metadata{
		Short: "print the bit pattern of each value",
	},
	Flags: []star.IParam{formatParam, formatsParam, verboseParam},
	Pos:   []star.IParam{valuesParam},
	F: func(c star.Context) error {
		return withSession(c, func(s *session) error {
			return convert(s, c.StdOut, "encode", valuesParam.LoadAll(c), encode)
		})
	},
}

var decodeCmd = star.Command{
	Metadata: star.Metadata{
		Short: "print the value of each bit pattern",
	},
	Flags: []star.IParam{formatParam, formatsParam, verboseParam},
	Pos:   []star.IParam{patternsParam},
	F: func(c star.Context) error {
		return withSession(c, func(s *session) error {
			return convert(s, c.StdOut, "decode", patternsParam.LoadAll(c), decode)
		})
	},
}

var roundCmd = star.Command{
	Metadata: star.Metadata{
		Short: "print each value rounded to the format",
	},
	Flags: []star.IParam{formatParam, formatsParam, verboseParam},
	Pos:   []star.IParam{valuesParam},
	F: func(c star.Context) error {
		return withSession(c, func(s *session) error {
			return convert(s, c.StdOut, "round", valuesParam.LoadAll(c), round)
		})
	},
}

var classifyCmd = star.Command{
	Metadata: star.Metadata{
		Short: "print the class of each value in the format",
	},
	Flags: []star.IParam{formatParam, formatsParam, verboseParam},
	Pos:   []star.IParam{valuesParam},
	F: func(c star.Context) error {
		return withSession(c, func(s *session) error {
			return convert(s, c.StdOut, "classify", valuesParam.LoadAll(c), classify)
		})
	},
}

var formatsCmd = star.Command{
	Metadata: star.Metadata{
		Short: "print the table of known formats as YAML",
	},
	Flags: []star.IParam{formatsParam, verboseParam},
	F: func(c star.Context) error {
		s, err := newSession(c, "", formatsParam.Load(c), verboseParam.Load(c))
		if err != nil {
			return err
		}
		defer s.close()
		return formatfile.Write(c.StdOut, formatTable(s.custom))
	},
}

// withSession opens the session described by the flags of c.
func withSession(c star.Context, fn func(s *session) error) error {
	s, err := newSession(c, formatParam.Load(c), formatsParam.Load(c), verboseParam.Load(c))
	if err != nil {
		return err
	}
	defer s.close()
	return fn(s)
}

var formatParam = star.Param[string]{
	Name:    "format",
	Default: star.Ptr("binary16"),
	Parse:   star.ParseString,
}

var formatsParam = star.Param[string]{
	Name:    "formats",
	Default: star.Ptr(""),
	Parse:   star.ParseString,
}

var verboseParam = star.Param[bool]{
	Name:    "v",
	Default: star.Ptr("false"),
	Parse:   strconv.ParseBool,
}

var valuesParam = star.Param[float64]{
	Name:     "values",
	Repeated: true,
	Parse:    parseValue,
}

var patternsParam = star.Param[ieee754.Pattern]{
	Name:     "patterns",
	Repeated: true,
	Parse:    formatfile.ParsePattern,
}
