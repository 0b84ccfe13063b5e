package nm

import "fmt"

// ObjectiveFunc is the function being minimized.
//
// Parameters:
// - x: The point to evaluate. Its length always equals the problem dimension.
//
// Returns:
// - float64: The objective value at x (lower is better)
//
// Usage example:
//
//	// Rosenbrock's banana function, minimum at (1, 1).
//	rosen := ObjectiveFunc(func(x []float64) float64 {
//	    a := x[1] - x[0]*x[0]
//	    b := 1 - x[0]
//	    return 100*a*a + b*b
//	})
//
// Implementation notes:
// - Must be deterministic
// - Must not modify x
// - Must return a finite value for every point the optimizer may build,
//   including negative coordinates unless a Constraint prevents them
// - Must not call Minimize recursively with shared state.
type ObjectiveFunc func(x []float64) float64

// ConstraintFunc projects x, in place, onto the feasible region. It is applied
// to every point before the objective sees it.
//
// Usage example:
//
//	// Keep every coordinate on a 0.01 grid.
//	config.Constraint = Round(2)
//
//	// Custom: resistances must be positive.
//	config.Constraint = func(x []float64) {
//	    for i := range x {
//	        x[i] = math.Abs(x[i])
//	    }
//	}
//
// A ConstraintFunc must be idempotent: applying it twice must give the same
// point as applying it once.
type ConstraintFunc func(x []float64)

// Vertex is one trial point of the simplex and its cached objective value.
type Vertex struct {
	// Position of the vertex. Length equals the problem dimension.
	Position []float64

	// Value is the objective evaluated at Position.
	Value float64
}

// clone returns a deep copy, safe to hand out of the optimizer.
func (v Vertex) clone() Vertex {
	p := make([]float64, len(v.Position))
	copy(p, v.Position)

	return Vertex{Position: p, Value: v.Value}
}

// Move identifies the transformation applied during one iteration.
type Move int

const (
	// MoveReflect means the reflected point replaced the worst vertex.
	MoveReflect Move = iota

	// MoveExpand means the expanded point replaced the worst vertex.
	MoveExpand

	// MoveContractOutside means the outside contraction point replaced the
	// worst vertex.
	MoveContractOutside

	// MoveContractInside means the inside contraction point replaced the
	// worst vertex.
	MoveContractInside

	// MoveShrink means every vertex but the best moved halfway toward it.
	MoveShrink
)

// String implements fmt.Stringer.
func (m Move) String() string {
	switch m {
	case MoveReflect:
		return "reflect"
	case MoveExpand:
		return "expand"
	case MoveContractOutside:
		return "contract-outside"
	case MoveContractInside:
		return "contract-inside"
	case MoveShrink:
		return "shrink"
	default:
		return fmt.Sprintf("Move(%d)", int(m))
	}
}

// ProgressUpdate represents the state of the simplex after one iteration.
type ProgressUpdate struct {
	// Iteration is the 1-based iteration number. The initial simplex is
	// reported with Iteration 0.
	Iteration int

	// Move is the transformation applied in this iteration. Meaningless for
	// Iteration 0.
	Move Move

	// Vertices is a copy of the n+1 vertices, in storage order.
	Vertices []Vertex

	// Best is a copy of the vertex with the smallest value.
	Best Vertex

	// Evaluations is the number of objective calls made so far.
	Evaluations int
}

// Observer receives a ProgressUpdate after the initial evaluation and after
// every iteration. It runs synchronously on the optimizer's goroutine, so it
// should return quickly.
type Observer func(update ProgressUpdate)

// Coefficients holds the Nelder-Mead transformation coefficients.
type Coefficients struct {
	// Reflection (alpha) scales the step from the centroid away from the
	// worst vertex. Must be > 0. Default: 1.0
	Reflection float64

	// Expansion (gamma) scales the step from the centroid through the
	// reflected point. Must be > 1. Default: 2.0
	Expansion float64

	// Contraction (beta) scales the step from the centroid toward the
	// reflected point (outside) or the worst vertex (inside). Must be in
	// (0, 1). Default: 0.5
	Contraction float64
}

// OptimizationConfig holds all configuration parameters for one run of the
// downhill simplex method.
//
// Fields explanation:
// - Epsilon: Convergence tolerance on the spread of the vertex values
// - Scale: Edge scale of the initial simplex
// - MaxIterations: Hard cap on the number of iterations
// - Coefficients: Reflection, expansion and contraction coefficients
// - Constraint: Optional projection applied before every evaluation
// - Observer: Optional per-iteration callback
//
// Usage example:
//
//	config := DefaultConfig()
//	config.Epsilon = 1e-4
//	config.Constraint = Round(2)
//
//	result, err := Minimize(rosen, []float64{-1.2, 1.0}, config)
//
// Note:
// - The problem dimension is the length of the start point.
type OptimizationConfig struct {
	// Epsilon stops the run once the sample standard deviation of the n+1
	// vertex values falls below it. Must be > 0.
	Epsilon float64

	// Scale controls the size of the initial simplex. Roughly the distance
	// between the start point and every other initial vertex. Must be > 0.
	Scale float64

	// MaxIterations caps the number of iterations. A run that hits the cap
	// returns its best vertex with Converged set to false. Must be > 0.
	MaxIterations int

	// Coefficients of the reflection, expansion and contraction steps.
	Coefficients Coefficients

	// Constraint, if not nil, is applied to every point before it is
	// evaluated.
	Constraint ConstraintFunc

	// Observer, if not nil, is called with the state of the simplex after
	// every iteration.
	Observer Observer
}

// OptimizationResult contains the outcome of a run.
type OptimizationResult struct {
	// Best is the vertex with the smallest value in the final simplex.
	Best Vertex

	// Evaluations is the total number of objective calls.
	Evaluations int

	// Iterations is the number of iterations executed.
	Iterations int

	// Converged is true when the run stopped because the spread of the
	// vertex values fell below Epsilon.
	Converged bool

	// StdDev is the sample standard deviation of the final vertex values.
	StdDev float64

	// Reason explains why the run stopped.
	Reason string
}
