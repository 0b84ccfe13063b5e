package problems

import "github.com/thalesfsp/nm"

// RosenbrockFunc is Rosenbrock's banana function in two dimensions,
// f(x0, x1) = 100(x1 - x0^2)^2 + (1 - x0)^2, with its minimum 0 at (1, 1).
func RosenbrockFunc(x []float64) float64 {
	a := x[1] - x[0]*x[0]
	b := 1.0 - x[0]

	return 100*a*a + b*b
}

// Rosenbrock starts from the classic (-1.2, 1) with every trial point
// rounded to two decimal places.
func Rosenbrock() Problem {
	return Problem{
		Name:         "rosenbrock",
		Description:  "Rosenbrock's function from (-1.2, 1) on a 0.01 grid",
		Objective:    RosenbrockFunc,
		Constraint:   nm.Round(2),
		Start:        []float64{-1.2, 1.0},
		Epsilon:      1.0e-4,
		Scale:        1,
		Optimum:      []float64{1, 1},
		OptimumValue: 0,
	}
}

// RosenbrockOrigin is Rosenbrock started from the origin.
func RosenbrockOrigin() Problem {
	p := Rosenbrock()
	p.Name = "rosenbrock-origin"
	p.Description = "Rosenbrock's function from (0, 0) on a 0.01 grid"
	p.Start = []float64{0, 0}

	return p
}
