package generator

import (
	"io"
	"math/rand/v2"
)

// Generator produces one line of test data per WriteLine call
type Generator interface {
	// Init hands the generator its random source. Generators never touch
	// the global source, so a seeded *rand.Rand gives reproducible files.
	Init(r *rand.Rand)

	// WriteLine writes a single line of test data, including the trailing newline
	WriteLine(w io.Writer) error

	// Description returns a human-readable description of the data format
	Description() string

	// DefaultCount returns the number of lines to generate when none is requested
	DefaultCount() int64
}

// Progress is notified once per written line. *progressbar.ProgressBar satisfies it.
type Progress interface {
	Add(num int) error
}

// NewRand returns a PCG-backed source. The same seed always yields the same stream.
func NewRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}
