package nm

import "fmt"

//////
// Const, vars, types.
//////

const (
	// DefaultMaxIterations is the iteration cap used by DefaultConfig.
	DefaultMaxIterations = 1000

	// DefaultEpsilon is the convergence tolerance used by DefaultConfig.
	DefaultEpsilon = 1.0e-8

	// DefaultScale is the initial simplex edge length used by DefaultConfig.
	DefaultScale = 1.0
)

// Reasons reported in OptimizationResult.Reason.
const (
	ReasonConverged     = "spread of vertex values below epsilon"
	ReasonMaxIterations = "max iterations reached"
)

//////
// Exported functionalities.
//////

// DefaultCoefficients returns the standard Nelder-Mead coefficients:
// reflection 1, expansion 2, contraction 0.5.
func DefaultCoefficients() Coefficients {
	return Coefficients{
		Reflection:  1.0,
		Expansion:   2.0,
		Contraction: 0.5,
	}
}

// DefaultConfig returns a default configuration.
func DefaultConfig() OptimizationConfig {
	return OptimizationConfig{
		Epsilon:       DefaultEpsilon,
		Scale:         DefaultScale,
		MaxIterations: DefaultMaxIterations,
		Coefficients:  DefaultCoefficients(),
		Constraint:    nil, // Unconstrained.
		Observer:      nil, // Default to no progress updates.
	}
}

// Minimize searches for a local minimum of objective with the Nelder-Mead
// downhill simplex method, starting from start.
//
// Parameters:
// - objective: The function to minimize
// - start: Starting point; its length is the problem dimension. Not modified
// - config: OptimizationConfig controlling the run
//
// Returns:
// - *OptimizationResult: Best vertex, counters and convergence status
// - error: Wraps ErrInvalidConfig for a bad configuration, or is a
//   *NonFiniteError if the objective produced NaN or ±Inf
//
// Usage example:
//
//	config := DefaultConfig()
//	config.Epsilon = 1e-4
//	config.Constraint = Round(2)
//
//	result, err := Minimize(rosen, []float64{-1.2, 1.0}, config)
//	if err != nil {
//	    return err
//	}
//
//	fmt.Println(result.Best.Position, result.Best.Value, result.Converged)
//
// How it works:
// 1. Builds a regular simplex of n+1 vertices around start
// 2. For each iteration:
//   - Ranks the vertices and reflects the worst through the centroid of the
//     others
//   - Accepts, expands, contracts or shrinks depending on the reflected value
//   - Stops once the standard deviation of the vertex values drops below
//     Epsilon
//
// 3. Returns the best vertex found
//
// Important notes:
// - Hitting MaxIterations is not an error; check Converged
// - The objective is called sequentially, one point at a time
// - Separate calls share no state and may run concurrently.
func Minimize(objective ObjectiveFunc, start []float64, config OptimizationConfig) (*OptimizationResult, error) {
	if err := validate(objective, start, config); err != nil {
		return nil, err
	}

	s := newSimplex(objective, config.Constraint, start, config.Scale)

	if err := s.initialize(); err != nil {
		return nil, fmt.Errorf("evaluating initial simplex: %w", err)
	}

	notify := func(iteration int, move Move) {
		if config.Observer == nil {
			return
		}

		config.Observer(ProgressUpdate{
			Iteration:   iteration,
			Move:        move,
			Vertices:    s.snapshot(),
			Best:        s.vertices[s.best()].clone(),
			Evaluations: s.evaluations,
		})
	}

	notify(0, MoveReflect)

	result := &OptimizationResult{Reason: ReasonMaxIterations}

	for itr := 1; itr <= config.MaxIterations; itr++ {
		move, err := s.step(config.Coefficients)
		if err != nil {
			return nil, fmt.Errorf("iteration %d (%s): %w", itr, move, err)
		}

		result.Iterations = itr

		notify(itr, move)

		result.StdDev = s.stdDev()
		if result.StdDev < config.Epsilon {
			result.Converged = true
			result.Reason = ReasonConverged

			break
		}
	}

	result.Best = s.vertices[s.best()].clone()
	result.Evaluations = s.evaluations

	return result, nil
}

// Simplex is the classic entry point: it minimizes objective over n
// dimensions starting from start and, on success, overwrites start with the
// best point found.
//
// Parameters:
// - objective: The function to minimize
// - start: Starting point of length n; receives the best point
// - n: Problem dimension, must equal len(start)
// - epsilon: Convergence tolerance
// - scale: Initial simplex edge length
// - constraint: Optional projection, may be nil
//
// Returns:
// - float64: The minimal value found
// - error: See Minimize
//
// Usage example:
//
//	start := []float64{100}
//	min, err := Simplex(negPower, start, 1, 1e-8, 1, NonNegative())
//	// start[0] now holds the best resistance.
func Simplex(
	objective ObjectiveFunc,
	start []float64,
	n int,
	epsilon, scale float64,
	constraint ConstraintFunc,
) (float64, error) {
	if n != len(start) {
		return 0, invalidConfig("dimension %d does not match start point of length %d", n, len(start))
	}

	config := DefaultConfig()
	config.Epsilon = epsilon
	config.Scale = scale
	config.Constraint = constraint

	result, err := Minimize(objective, start, config)
	if err != nil {
		return 0, err
	}

	copy(start, result.Best.Position)

	return result.Best.Value, nil
}

//////
// Helper functions.
//////

// validate rejects a configuration before any simplex storage is allocated.
func validate(objective ObjectiveFunc, start []float64, config OptimizationConfig) error {
	c := config.Coefficients

	switch {
	case objective == nil:
		return invalidConfig("objective is required")
	case len(start) < 1:
		return invalidConfig("dimension must be >= 1, got %d", len(start))
	case !(config.Scale > 0):
		return invalidConfig("scale must be > 0, got %v", config.Scale)
	case !(config.Epsilon > 0):
		return invalidConfig("epsilon must be > 0, got %v", config.Epsilon)
	case config.MaxIterations <= 0:
		return invalidConfig("max iterations must be > 0, got %d", config.MaxIterations)
	case !(c.Reflection > 0):
		return invalidConfig("reflection coefficient must be > 0, got %v", c.Reflection)
	case !(c.Expansion > 1):
		return invalidConfig("expansion coefficient must be > 1, got %v", c.Expansion)
	case !(c.Contraction > 0 && c.Contraction < 1):
		return invalidConfig("contraction coefficient must be in (0, 1), got %v", c.Contraction)
	}

	if !allFinite(start) {
		return invalidConfig("start point must be finite, got %v", start)
	}

	return nil
}
