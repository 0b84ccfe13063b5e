// Package nm provides derivative-free local minimization with the
// Nelder-Mead downhill simplex method. Given a scalar objective of an
// n-dimensional point it searches for a local minimum using only function
// evaluations and geometric moves on a simplex of n+1 trial points.
//
// # Features
//
// The package includes the following key features:
//
//   - Gradient-free: only evaluates the objective, never differentiates it
//   - Projections: an optional ConstraintFunc maps every trial point onto the
//     feasible region before evaluation (rounding, bounds, sign)
//   - Structured results: best vertex, evaluation and iteration counts, and
//     an explicit Converged flag
//   - Progress monitoring: an optional Observer sees the simplex after every
//     iteration, with channel and slog based observers built in
//   - Fail fast: invalid configurations and non-finite objective values are
//     reported as errors
//
// # Installation
//
// To install the package, use:
//
//	go get github.com/thalesfsp/nm
//
// # The Algorithm
//
// Each iteration ranks the vertices, computes the centroid m of all vertices
// but the worst, and reflects the worst through it. Depending on the value at
// the reflected point r the iteration then:
//
//  1. Reflects: keeps r when it is no better than the best vertex but better
//     than the second-worst.
//  2. Expands: tries e = m + gamma*(r - m) when r beats the best vertex, and
//     keeps the better of e and r.
//  3. Contracts: tries a point halfway between m and r (outside) or between m
//     and the worst vertex (inside), and keeps it if it beats the worst.
//  4. Shrinks: otherwise moves every vertex halfway toward the best one.
//
// The run stops when the sample standard deviation of the n+1 vertex values
// drops below Epsilon, or after MaxIterations.
//
// # Configuration
//
// The OptimizationConfig struct allows customization of a run:
//
//	type OptimizationConfig struct {
//	    Epsilon       float64        // Convergence tolerance
//	    Scale         float64        // Initial simplex edge length
//	    MaxIterations int            // Iteration cap
//	    Coefficients  Coefficients   // Reflection, expansion, contraction
//	    Constraint    ConstraintFunc // Optional projection
//	    Observer      Observer       // Optional progress callback
//	}
//
// Example:
//
//	config := DefaultConfig()
//	config.Epsilon = 1e-4
//	config.Constraint = Round(2)
//
//	result, err := Minimize(rosenbrock, []float64{-1.2, 1.0}, config)
//
// # Thread Safety
//
// A run is single-threaded and synchronous. Independent calls to Minimize
// share no state and can run concurrently, provided the objective and
// constraint functions they use are safe to call concurrently.
package nm
