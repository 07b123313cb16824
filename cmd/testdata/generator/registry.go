package generator

import (
	"errors"
	"fmt"
	"sort"

	"github.com/samber/lo"
)

// DefaultName is the generator used when none is requested
const DefaultName = "coefficients"

var ErrUnknownGenerator = errors.New("unknown generator")

// Registry maps generator names to factories so each Get returns fresh state
var Registry = map[string]func() Generator{
	"coefficients": func() Generator { return NewCoefficientGenerator() },
	"clean": func() Generator {
		g := NewCoefficientGenerator()
		g.NumericRatio = 1
		return g
	},
}

// Get returns a generator by name
func Get(name string) (Generator, error) {
	factory, exists := Registry[name]
	if !exists {
		return nil, fmt.Errorf("%w: %s", ErrUnknownGenerator, name)
	}
	return factory(), nil
}

// List returns all available generator names, sorted
func List() []string {
	names := lo.Keys(Registry)
	sort.Strings(names)
	return names
}
