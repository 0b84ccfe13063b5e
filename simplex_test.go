package nm

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/floats"
)

func zero(x []float64) float64 { return 0 }

// withValues builds an n-dimensional simplex and overwrites its cached values.
func withValues(values ...float64) *simplex {
	s := newSimplex(zero, nil, make([]float64, len(values)-1), 1)
	for i, v := range values {
		s.vertices[i].Value = v
	}

	return s
}

func TestNewSimplexLayout(t *testing.T) {
	s := newSimplex(zero, nil, []float64{0, 0}, 1)

	require.Len(t, s.vertices, 3)

	p, q := initialOffsets(2, 1)
	assert.InDelta(t, 0.9659258, p, 1e-7)
	assert.InDelta(t, 0.2588190, q, 1e-7)

	assert.Equal(t, []float64{0, 0}, s.vertices[0].Position)
	assert.Equal(t, []float64{p, q}, s.vertices[1].Position)
	assert.Equal(t, []float64{q, p}, s.vertices[2].Position)
}

func TestNewSimplexIsRegular(t *testing.T) {
	for _, n := range []int{1, 2, 3, 5, 8} {
		for _, scale := range []float64{0.1, 1, 2.5} {
			start := make([]float64, n)
			for i := range start {
				start[i] = float64(i) - 1.5
			}

			s := newSimplex(zero, nil, start, scale)
			require.Len(t, s.vertices, n+1)

			for i := range s.vertices {
				for j := i + 1; j < len(s.vertices); j++ {
					d := floats.Distance(s.vertices[i].Position, s.vertices[j].Position, 2)
					assert.InDelta(t, scale, d, 1e-9, "n=%d scale=%v edge %d-%d", n, scale, i, j)
				}
			}
		}
	}
}

func TestNewSimplexCopiesStart(t *testing.T) {
	start := []float64{1, 2, 3}
	s := newSimplex(zero, nil, start, 1)

	s.vertices[0].Position[0] = 42

	assert.Equal(t, []float64{1, 2, 3}, start)
}

func TestSimplexRowsDoNotOverlap(t *testing.T) {
	s := newSimplex(zero, nil, []float64{1, 2}, 1)

	for i := range s.vertices {
		assert.Len(t, s.vertices[i].Position, 2)
		assert.Equal(t, 2, cap(s.vertices[i].Position))
	}

	// Appending to a row must not clobber the next one.
	before := toFloat64s(s.vertices[1].Position)
	_ = append(s.vertices[0].Position, 99)

	assert.Equal(t, before, s.vertices[1].Position)
}

func TestInitializeProjectsAndEvaluates(t *testing.T) {
	s := newSimplex(rosen, Round(1), []float64{-1.2, 1.0}, 1)
	require.NoError(t, s.initialize())

	assert.Equal(t, 3, s.evaluations)

	for _, v := range s.vertices {
		projected := toFloat64s(v.Position)
		Round(1)(projected)

		assert.Equal(t, projected, v.Position)
		assert.Equal(t, rosen(v.Position), v.Value)
	}
}

func TestRanking(t *testing.T) {
	tests := []struct {
		name   string
		values []float64
		best   int
		worst  int
		second int
	}{
		{"distinct", []float64{2, 5, 4, 1, 3}, 3, 1, 2},
		{"ties go to the earliest index", []float64{2, 5, 4, 1, 4, 5, 1}, 3, 1, 2},
		{"all equal", []float64{7, 7, 7}, 0, 0, 0},
		{"one dimension", []float64{3, 1}, 1, 0, 1},
		{"second-worst falls back to best", []float64{1, 9, 9}, 0, 1, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := withValues(tt.values...)

			vs, vg, vh := s.rank()

			assert.Equal(t, tt.best, vs, "best")
			assert.Equal(t, tt.worst, vg, "worst")
			assert.Equal(t, tt.second, vh, "second-worst")
		})
	}
}

func TestComputeCentroid(t *testing.T) {
	s := newSimplex(zero, nil, []float64{0, 0}, 1)
	copy(s.vertices[0].Position, []float64{0, 0})
	copy(s.vertices[1].Position, []float64{4, 0})
	copy(s.vertices[2].Position, []float64{0, 6})

	s.computeCentroid(2)
	assert.Equal(t, []float64{2, 0}, s.centroid)

	s.computeCentroid(0)
	assert.Equal(t, []float64{2, 3}, s.centroid)
}

func TestShrinkMovesToMidpoints(t *testing.T) {
	s := newSimplex(zero, nil, []float64{1, -2, 0.5}, 2)

	before := s.snapshot()
	const vs = 2

	s.shrink(vs)

	require.Len(t, s.vertices, 4)
	assert.Equal(t, before[vs].Position, s.vertices[vs].Position, "best vertex must not move")

	for i, v := range s.vertices {
		if i == vs {
			continue
		}

		for j := range v.Position {
			mid := (before[i].Position[j] + before[vs].Position[j]) / 2
			assert.InDelta(t, mid, v.Position[j], 1e-15)
		}
	}
}

func TestStdDev(t *testing.T) {
	tests := []struct {
		name   string
		values []float64
		want   float64
	}{
		{"equal values", []float64{4, 4, 4}, 0},
		{"spread", []float64{1, 2, 3}, 1},
		{"one dimension", []float64{0, 2}, math.Sqrt2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := withValues(tt.values...)

			assert.InDelta(t, tt.want, s.stdDev(), 1e-12)
		})
	}
}

func TestEvaluateRejectsNonFinite(t *testing.T) {
	for _, bad := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
		s := newSimplex(func([]float64) float64 { return bad }, nil, []float64{1}, 1)

		_, err := s.evaluate([]float64{3})

		var nf *NonFiniteError
		require.ErrorAs(t, err, &nf)
		assert.Equal(t, []float64{3}, nf.Position)
		assert.Equal(t, 1, s.evaluations)
	}
}
