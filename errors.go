package nm

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidConfig is wrapped by every configuration error returned
	// before a run starts.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrNonFiniteValue is wrapped by NonFiniteError.
	ErrNonFiniteValue = errors.New("objective returned a non-finite value")
)

// NonFiniteError reports a NaN or infinite objective value. Ranking cannot
// order such values, so the run is aborted.
type NonFiniteError struct {
	// Position is a copy of the point that produced Value.
	Position []float64

	// Value is the offending objective value.
	Value float64
}

func (e *NonFiniteError) Error() string {
	return fmt.Sprintf("%s: f(%v) = %v", ErrNonFiniteValue, e.Position, e.Value)
}

// Unwrap allows errors.Is(err, ErrNonFiniteValue).
func (e *NonFiniteError) Unwrap() error {
	return ErrNonFiniteValue
}

func invalidConfig(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidConfig, fmt.Sprintf(format, args...))
}
