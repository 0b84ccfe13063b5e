package problems

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thalesfsp/nm"
)

func TestLookup(t *testing.T) {
	for _, name := range Names() {
		p, err := Lookup(name)
		require.NoError(t, err)

		assert.Equal(t, name, p.Name)
		assert.NotEmpty(t, p.Description)
		assert.NotNil(t, p.Objective)
		assert.Len(t, p.Optimum, p.Dimension())
		assert.InDelta(t, p.OptimumValue, p.Objective(p.Optimum), 1e-12)
	}

	_, err := Lookup("himmelblau")
	assert.ErrorContains(t, err, "unknown problem")
}

func TestNamesAreSorted(t *testing.T) {
	assert.Equal(t, []string{"maxpower", "rosenbrock", "rosenbrock-origin"}, Names())
}

func TestProblemsConverge(t *testing.T) {
	tests := []struct {
		name  string
		delta float64
	}{
		{"rosenbrock", 0.01},
		{"rosenbrock-origin", 0.01},
		{"maxpower", 0.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := Lookup(tt.name)
			require.NoError(t, err)

			result, err := nm.Minimize(p.Objective, p.Start, p.Config())
			require.NoError(t, err)

			assert.True(t, result.Converged)
			assert.InDeltaSlice(t, p.Optimum, result.Best.Position, tt.delta)
			assert.InDelta(t, p.OptimumValue, result.Best.Value, 0.01)
		})
	}
}

func TestLookupReturnsFreshStart(t *testing.T) {
	p, err := Lookup("rosenbrock")
	require.NoError(t, err)

	p.Start[0] = 99

	again, err := Lookup("rosenbrock")
	require.NoError(t, err)

	assert.Equal(t, []float64{-1.2, 1.0}, again.Start)
}

func TestDivider(t *testing.T) {
	d := DefaultDivider

	assert.InDelta(t, 319.73, d.Thevenin(), 0.01)
	assert.Zero(t, d.LoadPower(0))

	// Power peaks at the Thevenin resistance.
	peak := d.LoadPower(d.Thevenin())
	assert.Greater(t, peak, d.LoadPower(200))
	assert.Greater(t, peak, d.LoadPower(500))
	assert.InDelta(t, 0.006474, peak, 1e-6)

	assert.Equal(t, -d.LoadPower(320), d.Objective()([]float64{320}))
}

func TestRosenbrockFunc(t *testing.T) {
	assert.Zero(t, RosenbrockFunc([]float64{1, 1}))
	assert.InDelta(t, 24.2, RosenbrockFunc([]float64{-1.2, 1}), 1e-9)
}
