package quadratic

import "strconv"

// AppendSolution appends the one-line report for s, including the newline:
//
//	(a, b, c) => ROOTS EXTREMUM
func AppendSolution(dst []byte, s Solution) []byte {
	c := s.Coefficients
	dst = append(dst, '(')
	dst = strconv.AppendInt(dst, int64(c.A), 10)
	dst = append(dst, ", "...)
	dst = strconv.AppendInt(dst, int64(c.B), 10)
	dst = append(dst, ", "...)
	dst = strconv.AppendInt(dst, int64(c.C), 10)
	dst = append(dst, ") => "...)

	switch s.Kind {
	case AnyRoot:
		dst = append(dst, "(any)"...)
	case NoRoots:
		dst = append(dst, "(no roots)"...)
	default:
		dst = append(dst, '(')
		for i, r := range s.Roots {
			if i > 0 {
				dst = append(dst, ", "...)
			}
			dst = append(dst, '[')
			dst = appendFloat(dst, r)
			dst = append(dst, ']')
		}
		dst = append(dst, ')')
	}

	if s.Extremum == nil {
		return append(dst, " (no extremum)\n"...)
	}
	dst = append(dst, " (extremum: X=["...)
	dst = appendFloat(dst, s.Extremum.X)
	dst = append(dst, "], Y=["...)
	dst = appendFloat(dst, s.Extremum.Y)
	return append(dst, "])\n"...)
}

// AppendRejection appends the report line for a group that failed to parse.
func AppendRejection(dst []byte, err error) []byte {
	dst = append(dst, err.Error()...)
	return append(dst, '\n')
}

func (s Solution) String() string {
	b := AppendSolution(nil, s)
	return string(b[:len(b)-1])
}

// appendFloat matches printf's %g: six significant digits, trailing zeros dropped.
func appendFloat(dst []byte, f float64) []byte {
	return strconv.AppendFloat(dst, f, 'g', 6, 64)
}
