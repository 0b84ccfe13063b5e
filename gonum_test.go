package nm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/optimize"
)

// Results should agree with gonum's independent Nelder-Mead implementation
// on smooth problems with a single minimum.
func TestAgreesWithGonumNelderMead(t *testing.T) {
	tests := []struct {
		name  string
		f     func([]float64) float64
		start []float64
	}{
		{"ellipse", func(x []float64) float64 { return (x[0]-3)*(x[0]-3) + 2*(x[1]+1)*(x[1]+1) }, []float64{0, 0}},
		{"shifted sphere", func(x []float64) float64 {
			return (x[0]-1)*(x[0]-1) + (x[1]-2)*(x[1]-2) + (x[2]+3)*(x[2]+3)
		}, []float64{0, 0, 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reference, err := optimize.Minimize(optimize.Problem{Func: tt.f}, tt.start, nil, &optimize.NelderMead{})
			require.NoError(t, err)

			config := DefaultConfig()
			config.Epsilon = 1e-10

			result, err := Minimize(tt.f, tt.start, config)
			require.NoError(t, err)
			require.True(t, result.Converged)

			assert.InDeltaSlice(t, reference.X, result.Best.Position, 1e-3)
			assert.InDelta(t, reference.F, result.Best.Value, 1e-6)
		})
	}
}
