package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/shogo82148/ieee754"
	"github.com/shogo82148/ieee754/internal/formatfile"
	"go.brendoncarroll.net/stdctx/logctx"
	"go.uber.org/zap"
)

// session is the state shared by the commands of one invocation.
type session struct {
	ctx    context.Context
	logger *zap.Logger
	custom []*ieee754.Format
	format *ieee754.Format // nil unless a format name was given
}

// newSession loads formatsFile, if any, and selects formatName, if any.
// With verbose set the session logs to stderr.
func newSession(ctx context.Context, formatName, formatsFile string, verbose bool) (*session, error) {
	logger := zap.NewNop()
	if verbose {
		l, err := zap.NewDevelopment()
		if err != nil {
			return nil, fmt.Errorf("create logger: %w", err)
		}
		logger = l
	}
	s := &session{
		ctx:    logctx.NewContext(ctx, logger),
		logger: logger,
	}

	if formatsFile != "" {
		custom, err := formatfile.LoadFile(formatsFile)
		if err != nil {
			s.close()
			return nil, err
		}
		s.custom = custom
		logctx.Debug(s.ctx, "loaded formats", zap.String("file", formatsFile), zap.Int("count", len(custom)))
	}

	if formatName != "" {
		f, err := formatfile.Lookup(s.custom, formatName)
		if err != nil {
			s.close()
			return nil, err
		}
		s.format = f
		logctx.Debug(s.ctx, "selected format",
			zap.String("name", f.Name()),
			zap.Uint("exponent", f.ExponentBits()),
			zap.Uint("mantissa", f.MantissaBits()),
			zap.Int("bias", f.Bias()),
		)
	}
	return s, nil
}

func (s *session) close() {
	_ = s.logger.Sync()
}

// convert writes conv of each input to w, one per line.
func convert[T any](s *session, w io.Writer, op string, in []T, conv func(f *ieee754.Format, x T) string) error {
	if len(in) == 0 {
		return fmt.Errorf("%s: missing operand", op)
	}
	for _, x := range in {
		out := conv(s.format, x)
		logctx.Debug(s.ctx, op, zap.Any("in", x), zap.String("out", out))
		if _, err := fmt.Fprintln(w, out); err != nil {
			return err
		}
	}
	return nil
}

func encode(f *ieee754.Format, x float64) string {
	return formatfile.FormatPattern(f.Encode(x), f.Width())
}

func decode(f *ieee754.Format, p ieee754.Pattern) string {
	return formatValue(f.Decode(p))
}

func round(f *ieee754.Format, x float64) string {
	return formatValue(f.Round(x))
}

func classify(f *ieee754.Format, x float64) string {
	return f.Classify(x).String()
}

// formatTable returns custom followed by the predefined formats that
// custom does not redefine.
func formatTable(custom []*ieee754.Format) []*ieee754.Format {
	seen := make(map[string]bool, len(custom))
	table := make([]*ieee754.Format, 0, len(custom)+len(ieee754.Formats()))
	for _, f := range custom {
		seen[f.Name()] = true
		table = append(table, f)
	}
	for _, f := range ieee754.Formats() {
		if !seen[f.Name()] {
			table = append(table, f)
		}
	}
	return table
}

// parseValue accepts the syntax of strconv.ParseFloat, including "NaN",
// "Inf" and "-0". Out of range values become infinities or zeros.
func parseValue(s string) (float64, error) {
	x, err := strconv.ParseFloat(s, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return 0, err
	}
	return x, nil
}

func formatValue(x float64) string {
	return strconv.FormatFloat(x, 'g', -1, 64)
}
