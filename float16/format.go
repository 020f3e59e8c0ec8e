package float16

import "fmt"

var _ fmt.Formatter = Float16(0)

// Format implements [fmt.Formatter]. It accepts the verbs of float64
// ('b', 'e', 'E', 'f', 'F', 'g', 'G', 'x', 'X' and 'v') and the flags
// '+', ' ', '-' and '0' with width and precision.
func (x Float16) Format(s fmt.State, verb rune) {
	prec, hasPrec := s.Precision()
	if !hasPrec {
		prec = -1
	}

	var data []byte
	switch verb {
	case 'b', 'e', 'E', 'f', 'g', 'G', 'x', 'X':
		data = x.Abs().Append(data, byte(verb), prec)
	case 'F':
		data = x.Abs().Append(data, 'f', prec)
	case 'v':
		data = x.Abs().Append(data, 'g', prec)
	default:
		fmt.Fprintf(s, "%%!%c(float16.Float16=%s)", verb, x.String())
		return
	}

	var prefix []byte
	switch {
	case x.IsNaN():
		if s.Flag('+') {
			prefix = append(prefix, '+')
		}
	case x.IsInf(0):
		// Append wrote "+Inf" for the absolute value
		data = data[1:]
		if x.Signbit() {
			prefix = append(prefix, '-')
		} else {
			prefix = append(prefix, '+')
		}
	case x.Signbit():
		prefix = append(prefix, '-')
	case s.Flag('+'):
		prefix = append(prefix, '+')
	case s.Flag(' '):
		prefix = append(prefix, ' ')
	}

	w, ok := s.Width()
	pad := w - len(prefix) - len(data)
	if !ok || pad <= 0 {
		s.Write(prefix)
		s.Write(data)
		return
	}

	finite := !x.IsNaN() && !x.IsInf(0)
	switch {
	case s.Flag('-'):
		s.Write(prefix)
		s.Write(data)
		writePad(s, ' ', pad)
	case s.Flag('0') && finite:
		s.Write(prefix)
		writePad(s, '0', pad)
		s.Write(data)
	default:
		writePad(s, ' ', pad)
		s.Write(prefix)
		s.Write(data)
	}
}

func writePad(s fmt.State, c byte, n int) {
	buf := [1]byte{c}
	for i := 0; i < n; i++ {
		s.Write(buf[:])
	}
}
