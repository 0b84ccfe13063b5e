// Package problems holds the benchmark problems shipped with the nmsimplex
// driver: Rosenbrock's function on a 0.01 grid and the load resistance that
// maximizes power out of a resistive divider.
package problems

import (
	"fmt"
	"sort"

	"github.com/thalesfsp/nm"
)

// Problem is a named minimization problem with the settings it is usually
// run with.
type Problem struct {
	// Name is the registry key.
	Name string

	// Description is a one-line summary.
	Description string

	// Objective is the function to minimize.
	Objective nm.ObjectiveFunc

	// Constraint is the projection applied to trial points. May be nil.
	Constraint nm.ConstraintFunc

	// Start is the default starting point. Its length is the dimension.
	Start []float64

	// Epsilon is the default convergence tolerance.
	Epsilon float64

	// Scale is the default initial simplex edge length.
	Scale float64

	// Optimum is the known minimizer.
	Optimum []float64

	// OptimumValue is the objective at Optimum.
	OptimumValue float64
}

// Dimension returns the problem dimension.
func (p Problem) Dimension() int {
	return len(p.Start)
}

// Config returns nm.DefaultConfig with the problem's epsilon, scale and
// constraint applied.
func (p Problem) Config() nm.OptimizationConfig {
	config := nm.DefaultConfig()
	config.Epsilon = p.Epsilon
	config.Scale = p.Scale
	config.Constraint = p.Constraint

	return config
}

var registry = map[string]func() Problem{
	"rosenbrock":        Rosenbrock,
	"rosenbrock-origin": RosenbrockOrigin,
	"maxpower":          MaxPower,
}

// Names returns the registered problem names in lexical order.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}

	sort.Strings(names)

	return names
}

// Lookup returns the problem registered under name.
func Lookup(name string) (Problem, error) {
	build, ok := registry[name]
	if !ok {
		return Problem{}, fmt.Errorf("unknown problem %q (available: %v)", name, Names())
	}

	return build(), nil
}
