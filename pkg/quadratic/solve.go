package quadratic

import (
	"math"
	"math/big"
)

// Coefficients of a*x^2 + b*x + c = 0
type Coefficients struct {
	A, B, C int
}

// RootKind classifies the real solution set
type RootKind int

const (
	NoRoots RootKind = iota
	OneRoot
	TwoRoots
	AnyRoot // 0 = 0
)

type Point struct {
	X, Y float64
}

type Solution struct {
	Coefficients Coefficients
	Kind         RootKind
	Roots        []float64
	// Extremum is nil when a == 0
	Extremum *Point
}

// Solve finds the real roots and, for a parabola, its vertex.
func Solve(c Coefficients) Solution {
	s := Solution{Coefficients: c}
	a, b := float64(c.A), float64(c.B)

	if c.A == 0 {
		switch {
		case c.B == 0 && c.C == 0:
			s.Kind = AnyRoot
		case c.B == 0:
			s.Kind = NoRoots
		default:
			s.Kind = OneRoot
			s.Roots = []float64{float64(-c.C) / b}
		}
		return s
	}

	// Negating the integer keeps a zero numerator at +0
	x := float64(-c.B) / (2 * a)
	s.Extremum = &Point{X: x, Y: a*x*x + b*x + float64(c.C)}

	sign, d := discriminant(c)
	switch {
	case sign < 0:
		s.Kind = NoRoots
	case sign == 0:
		s.Kind = OneRoot
		s.Roots = []float64{-0.5 * b / a}
	default:
		// Avoids cancellation between -b and sqrt(D) for the smaller root
		t := -0.5 * (b + copySign(math.Sqrt(d), b))
		s.Kind = TwoRoots
		s.Roots = []float64{t / a, float64(c.C) / t}
	}
	return s
}

// discriminant returns the sign and magnitude of b^2 - 4ac. The exact sign is
// computed in arbitrary precision since 4ac overflows int64 for 32-bit inputs.
func discriminant(c Coefficients) (int, float64) {
	bb := new(big.Int).Mul(big.NewInt(int64(c.B)), big.NewInt(int64(c.B)))
	ac := new(big.Int).Mul(big.NewInt(int64(c.A)), big.NewInt(int64(c.C)))
	d := bb.Sub(bb, ac.Lsh(ac, 2))

	f, _ := new(big.Float).SetInt(d).Float64()
	return d.Sign(), f
}

// copySign treats zero as positive
func copySign(v, sign float64) float64 {
	if sign < 0 {
		return -v
	}
	return v
}
