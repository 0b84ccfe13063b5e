package nm

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

//////
// Const, vars, types.
//////

// simplex holds the n+1 vertices of one optimization run together with the
// objective, the optional projection and the scratch vectors used by the
// moves.
//
// Fields:
// - n: Problem dimension
// - vertices: The n+1 vertices; each Position is a row of arena
// - arena: Backing storage for all vertex positions, (n+1)*n values
// - values: Scratch copy of the vertex values for the spread computation
// - centroid, reflected, expanded, contracted: Per-iteration scratch points
// - evaluations: Number of objective calls so far
//
// Invariants:
// - len(vertices) == n+1 for the whole run
// - vertices[i].Value == objective(vertices[i].Position) after every step
//
// Thread safety:
// - None. A simplex is owned by exactly one Minimize call.
type simplex struct {
	n int

	objective  ObjectiveFunc
	constraint ConstraintFunc

	vertices []Vertex
	arena    []float64
	values   []float64

	centroid   []float64
	reflected  []float64
	expanded   []float64
	contracted []float64

	evaluations int
}

//////
// Methods.
//////

// evaluate projects x in place, when a constraint is set, and returns the
// objective value at the projected point.
//
// Returns:
// - float64: Objective value
// - error: *NonFiniteError if the value is NaN or ±Inf
func (s *simplex) evaluate(x []float64) (float64, error) {
	if s.constraint != nil {
		s.constraint(x)
	}

	fx := s.objective(x)
	s.evaluations++

	if math.IsNaN(fx) || math.IsInf(fx, 0) {
		return fx, &NonFiniteError{Position: toFloat64s(x), Value: fx}
	}

	return fx, nil
}

// evaluateVertex re-projects and re-evaluates vertex i in place.
func (s *simplex) evaluateVertex(i int) error {
	fx, err := s.evaluate(s.vertices[i].Position)
	if err != nil {
		return err
	}

	s.vertices[i].Value = fx

	return nil
}

// replace overwrites vertex i with an already evaluated point.
func (s *simplex) replace(i int, x []float64, fx float64) {
	copy(s.vertices[i].Position, x)
	s.vertices[i].Value = fx
}

// initialize projects and evaluates every vertex of the freshly built simplex.
func (s *simplex) initialize() error {
	for i := range s.vertices {
		if err := s.evaluateVertex(i); err != nil {
			return err
		}
	}

	return nil
}

// worst returns the index of the largest value. Ties go to the lowest index.
func (s *simplex) worst() int {
	vg := 0

	for j := range s.vertices {
		if s.vertices[j].Value > s.vertices[vg].Value {
			vg = j
		}
	}

	return vg
}

// best returns the index of the smallest value. Ties go to the lowest index.
func (s *simplex) best() int {
	vs := 0

	for j := range s.vertices {
		if s.vertices[j].Value < s.vertices[vs].Value {
			vs = j
		}
	}

	return vs
}

// secondWorst returns the index of the largest value strictly below the
// value of vg. The scan starts from vs, so vs is returned when every other
// vertex ties with vg.
func (s *simplex) secondWorst(vs, vg int) int {
	vh := vs

	for j := range s.vertices {
		if s.vertices[j].Value > s.vertices[vh].Value && s.vertices[j].Value < s.vertices[vg].Value {
			vh = j
		}
	}

	return vh
}

// rank returns the best, worst and second-worst indices.
func (s *simplex) rank() (vs, vg, vh int) {
	vg = s.worst()
	vs = s.best()
	vh = s.secondWorst(vs, vg)

	return vs, vg, vh
}

// computeCentroid stores in s.centroid the mean position of every vertex
// except vg.
func (s *simplex) computeCentroid(vg int) {
	for j := range s.centroid {
		s.centroid[j] = 0
	}

	for i := range s.vertices {
		if i != vg {
			floats.Add(s.centroid, s.vertices[i].Position)
		}
	}

	for j := range s.centroid {
		s.centroid[j] /= float64(s.n)
	}
}

// shrink moves every vertex except vs halfway toward vs. Values are not
// updated; callers must re-evaluate.
func (s *simplex) shrink(vs int) {
	best := s.vertices[vs].Position

	for i := range s.vertices {
		if i == vs {
			continue
		}

		p := s.vertices[i].Position

		floats.SubTo(p, p, best)
		floats.AddScaledTo(p, best, 0.5, p)
	}
}

// stdDev returns the sample standard deviation of the vertex values,
// sqrt(sum((f_j - mean)^2) / n) over the n+1 vertices.
func (s *simplex) stdDev() float64 {
	for i := range s.vertices {
		s.values[i] = s.vertices[i].Value
	}

	return stat.StdDev(s.values, nil)
}

// snapshot returns deep copies of all vertices.
func (s *simplex) snapshot() []Vertex {
	out := make([]Vertex, len(s.vertices))
	for i, v := range s.vertices {
		out[i] = v.clone()
	}

	return out
}

//////
// Factory.
//////

// newSimplex allocates the simplex for a start point of dimension n and lays
// out the initial vertices. Nothing is evaluated yet.
//
// Vertex 0 is the start point. Vertex i (1..n) is the start point moved by p
// along dimension i-1 and by q along every other dimension:
//
//	p = scale * (sqrt(n+1) - 1 + n) / (n * sqrt(2))
//	q = scale * (sqrt(n+1) - 1) / (n * sqrt(2))
//
// The result is a regular simplex with edge length scale.
func newSimplex(objective ObjectiveFunc, constraint ConstraintFunc, start []float64, scale float64) *simplex {
	n := len(start)

	s := &simplex{
		n:          n,
		objective:  objective,
		constraint: constraint,
		vertices:   make([]Vertex, n+1),
		arena:      make([]float64, (n+1)*n),
		values:     make([]float64, n+1),
		centroid:   make([]float64, n),
		reflected:  make([]float64, n),
		expanded:   make([]float64, n),
		contracted: make([]float64, n),
	}

	for i := range s.vertices {
		s.vertices[i].Position = s.arena[i*n : (i+1)*n : (i+1)*n]
	}

	pn, qn := initialOffsets(n, scale)

	copy(s.vertices[0].Position, start)

	for i := 1; i <= n; i++ {
		for j := 0; j < n; j++ {
			if i-1 == j {
				s.vertices[i].Position[j] = pn + start[j]
			} else {
				s.vertices[i].Position[j] = qn + start[j]
			}
		}
	}

	return s
}

// initialOffsets returns the axis offset p and the off-axis offset q of the
// initial simplex.
func initialOffsets(n int, scale float64) (p, q float64) {
	fn := float64(n)
	root := math.Sqrt(fn + 1)

	p = scale * (root - 1 + fn) / (fn * math.Sqrt2)
	q = scale * (root - 1) / (fn * math.Sqrt2)

	return p, q
}
