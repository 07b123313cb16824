package generator

import (
	"errors"
	"io"
	"math/rand/v2"
	"strconv"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

const (
	DefaultLineCount     = 51225
	DefaultNumericRatio  = 0.9
	DefaultMinValue      = -10000
	DefaultMaxValue      = 10000
	DefaultMinGarbageLen = 1
	DefaultMaxGarbageLen = 4

	TokensPerLine = 3
)

const letters = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ"

// CoefficientGenerator writes lines of three tokens meant as quadratic
// equation coefficients. Each token is an integer in [MinValue, MaxValue]
// with probability NumericRatio, otherwise a garbage word of
// MinGarbageLen..MaxGarbageLen ASCII letters.
type CoefficientGenerator struct {
	NumericRatio  float64
	MinValue      int
	MaxValue      int
	MinGarbageLen int
	MaxGarbageLen int

	rand *rand.Rand
	line []byte
}

// NewCoefficientGenerator returns a generator with the default distribution.
func NewCoefficientGenerator() *CoefficientGenerator {
	return &CoefficientGenerator{
		NumericRatio:  DefaultNumericRatio,
		MinValue:      DefaultMinValue,
		MaxValue:      DefaultMaxValue,
		MinGarbageLen: DefaultMinGarbageLen,
		MaxGarbageLen: DefaultMaxGarbageLen,
	}
}

func (g *CoefficientGenerator) Validate() error {
	return validation.ValidateStruct(g,
		validation.Field(&g.NumericRatio, validation.By(func(any) error {
			if g.NumericRatio < 0 || g.NumericRatio > 1 {
				return errors.New("must be between 0 and 1")
			}
			return nil
		})),
		validation.Field(&g.MaxValue, validation.By(func(any) error {
			if g.MaxValue < g.MinValue {
				return errors.New("must not be less than MinValue")
			}
			return nil
		})),
		validation.Field(&g.MinGarbageLen, validation.Required, validation.Min(1)),
		validation.Field(&g.MaxGarbageLen, validation.By(func(any) error {
			if g.MaxGarbageLen < g.MinGarbageLen {
				return errors.New("must not be less than MinGarbageLen")
			}
			return nil
		})),
	)
}

func (g *CoefficientGenerator) Init(r *rand.Rand) {
	g.rand = r
}

// Token draws a single token.
func (g *CoefficientGenerator) Token() string {
	return string(g.appendToken(nil))
}

func (g *CoefficientGenerator) appendToken(b []byte) []byte {
	if g.rand.Float64() < g.NumericRatio {
		v := g.MinValue + g.rand.IntN(g.MaxValue-g.MinValue+1)
		return strconv.AppendInt(b, int64(v), 10)
	}

	n := g.MinGarbageLen + g.rand.IntN(g.MaxGarbageLen-g.MinGarbageLen+1)
	for range n {
		b = append(b, letters[g.rand.IntN(len(letters))])
	}
	return b
}

func (g *CoefficientGenerator) WriteLine(w io.Writer) error {
	g.line = g.line[:0]
	for i := range TokensPerLine {
		if i > 0 {
			g.line = append(g.line, ' ')
		}
		g.line = g.appendToken(g.line)
	}
	g.line = append(g.line, '\n')

	_, err := w.Write(g.line)
	return err
}

func (g *CoefficientGenerator) Description() string {
	if g.NumericRatio >= 1 {
		return "Quadratic coefficients: a b c (integers only)"
	}
	return "Quadratic coefficients: a b c (integers, occasionally garbage words)"
}

func (g *CoefficientGenerator) DefaultCount() int64 {
	return DefaultLineCount
}
