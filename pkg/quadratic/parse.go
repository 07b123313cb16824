package quadratic

import (
	"bufio"
	"io"
	"strconv"
)

// CoefficientsPerEquation is the number of tokens consumed per equation
const CoefficientsPerEquation = 3

// ParseCoefficient parses one token. Only an optional leading '-' followed by
// decimal digits that fit in 32 bits is accepted.
func ParseCoefficient(s string) (int, bool) {
	if s == "" || s[0] == '+' {
		return 0, false
	}
	v, err := strconv.ParseInt(s, 10, 32)
	if err != nil {
		return 0, false
	}
	return int(v), true
}

// ParseTriple turns three tokens into coefficients, or an *ArgumentError
// wrapping ErrInvalidArguments.
func ParseTriple(a, b, c string) (Coefficients, error) {
	va, okA := ParseCoefficient(a)
	vb, okB := ParseCoefficient(b)
	vc, okC := ParseCoefficient(c)
	if !okA || !okB || !okC {
		return Coefficients{}, &ArgumentError{Args: []string{a, b, c}, Err: ErrInvalidArguments}
	}
	return Coefficients{A: va, B: vb, C: vc}, nil
}

// Group is the outcome of parsing one run of up to three tokens: either
// Coefficients or a non-nil Err.
type Group struct {
	Coefficients Coefficients
	Err          error
}

// ParseGroups walks tokens three at a time and calls fn for every group.
// A trailing group of one or two tokens is reported with ErrNotEnoughArguments.
// Iteration stops at the first error returned by fn.
func ParseGroups(tokens []string, fn func(Group) error) error {
	for i := 0; i < len(tokens); i += CoefficientsPerEquation {
		if i+CoefficientsPerEquation > len(tokens) {
			return fn(Group{Err: &ArgumentError{Args: tokens[i:], Err: ErrNotEnoughArguments}})
		}
		c, err := ParseTriple(tokens[i], tokens[i+1], tokens[i+2])
		if err := fn(Group{Coefficients: c, Err: err}); err != nil {
			return err
		}
	}
	return nil
}

// Tokens reads r and splits it on whitespace.
func Tokens(r io.Reader) ([]string, error) {
	sc := bufio.NewScanner(r)
	sc.Split(bufio.ScanWords)

	var tokens []string
	for sc.Scan() {
		tokens = append(tokens, sc.Text())
	}
	return tokens, sc.Err()
}
