package nm

import (
	"context"
	"log/slog"
	"math"

	"golang.org/x/exp/constraints"
)

//////
// Projections.
//////

// RoundTo rounds x to the given number of decimal places, halves away from
// zero.
//
// Usage example:
//
//	RoundTo(0.374, 2)        // 0.37
//	RoundTo(-0.125, 2)       // -0.13
//	RoundTo(float32(2.5), 0) // 3
//
// Important notes:
// - Zero is returned unchanged (keeps the sign of -0)
// - Idempotent: RoundTo(RoundTo(x, p), p) == RoundTo(x, p)
func RoundTo[T constraints.Float](x T, precision int) T {
	if x == 0 {
		return x
	}

	pow := math.Pow10(precision)
	r := float64(x) * pow

	if r < 0 {
		r = math.Trunc(r - 0.5)
	} else {
		r = math.Trunc(r + 0.5)
	}

	return T(r / pow)
}

// Round returns a ConstraintFunc that rounds every coordinate to precision
// decimal places.
func Round(precision int) ConstraintFunc {
	return func(x []float64) {
		for i := range x {
			x[i] = RoundTo(x[i], precision)
		}
	}
}

// NonNegative returns a ConstraintFunc that replaces every negative coordinate
// with its absolute value, mirroring the point back into the feasible
// orthant.
func NonNegative() ConstraintFunc {
	return func(x []float64) {
		for i := range x {
			if x[i] < 0 {
				x[i] = math.Abs(x[i])
			}
		}
	}
}

// Clamp returns a ConstraintFunc that limits coordinate i to
// [lower[i], upper[i]]. A nil bound slice leaves that side open.
//
// Panics if a non-nil bound slice has a different length than the point.
func Clamp(lower, upper []float64) ConstraintFunc {
	return func(x []float64) {
		if lower != nil && len(lower) != len(x) {
			panic("nm: lower bound length mismatch")
		}

		if upper != nil && len(upper) != len(x) {
			panic("nm: upper bound length mismatch")
		}

		for i := range x {
			if lower != nil {
				x[i] = math.Max(x[i], lower[i])
			}

			if upper != nil {
				x[i] = math.Min(x[i], upper[i])
			}
		}
	}
}

// Chain applies the given projections in order. Nil entries are skipped.
// The chain is only idempotent if the composition is.
func Chain(projections ...ConstraintFunc) ConstraintFunc {
	return func(x []float64) {
		for _, p := range projections {
			if p != nil {
				p(x)
			}
		}
	}
}

//////
// Observers.
//////

// ChannelObserver returns an Observer that forwards every update to ch. Sends
// never block: an update is dropped when ch is full.
//
// Usage example:
//
//	updates := make(chan ProgressUpdate, 100)
//	config.Observer = ChannelObserver(updates)
func ChannelObserver(ch chan<- ProgressUpdate) Observer {
	return func(update ProgressUpdate) {
		select {
		case ch <- update:
		default:
			// Skip update if channel is full.
		}
	}
}

// LogObserver returns an Observer that dumps the simplex at debug level: one
// record per iteration followed by one record per vertex.
func LogObserver(logger *slog.Logger) Observer {
	return func(update ProgressUpdate) {
		ctx := context.Background()
		if !logger.Enabled(ctx, slog.LevelDebug) {
			return
		}

		if update.Iteration == 0 {
			logger.DebugContext(ctx, "initial simplex",
				"evaluations", update.Evaluations,
				"best", update.Best.Value,
			)
		} else {
			logger.DebugContext(ctx, "iteration",
				"iteration", update.Iteration,
				"move", update.Move.String(),
				"evaluations", update.Evaluations,
				"best", update.Best.Value,
			)
		}

		for i, v := range update.Vertices {
			logger.DebugContext(ctx, "vertex",
				"index", i,
				"position", v.Position,
				"value", v.Value,
			)
		}
	}
}

//////
// Helper functions.
//////

// toFloat64s converts a slice of numbers to a new slice of float64 values.
// The input is not modified.
func toFloat64s[T constraints.Integer | constraints.Float](in []T) []float64 {
	out := make([]float64, len(in))

	for i, v := range in {
		out[i] = float64(v)
	}

	return out
}

// allFinite reports whether no element of x is NaN or ±Inf.
func allFinite(x []float64) bool {
	for _, v := range x {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}

	return true
}
