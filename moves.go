package nm

import "gonum.org/v1/gonum/floats"

//////
// Point construction for the simplex transformations.
// Each function writes into dst and returns it. dst must not alias centroid.
//////

// along computes dst = centroid + k*(through - centroid).
func along(dst, centroid, through []float64, k float64) []float64 {
	floats.SubTo(dst, through, centroid)

	return floats.AddScaledTo(dst, centroid, k, dst)
}

// reflect computes dst = centroid + alpha*(centroid - worst).
func reflect(dst, centroid, worst []float64, alpha float64) []float64 {
	return along(dst, centroid, worst, -alpha)
}

// expand computes dst = centroid + gamma*(reflected - centroid).
func expand(dst, centroid, reflected []float64, gamma float64) []float64 {
	return along(dst, centroid, reflected, gamma)
}

// contractOutside computes dst = centroid + beta*(reflected - centroid).
func contractOutside(dst, centroid, reflected []float64, beta float64) []float64 {
	return along(dst, centroid, reflected, beta)
}

// contractInside computes dst = centroid - beta*(centroid - worst).
func contractInside(dst, centroid, worst []float64, beta float64) []float64 {
	return along(dst, centroid, worst, beta)
}

//////
// Iteration.
//////

// step performs one Nelder-Mead iteration on s and reports which move it
// made.
//
// How it works:
// 1. Rank the vertices and compute the centroid of all but the worst
// 2. Reflect the worst vertex through the centroid
// 3. Accept the reflection if it lands between the best and second-worst
// 4. Try an expansion if it beats the best
// 5. Otherwise contract (outside or inside) and, if that fails, shrink
//
// Only the worst vertex changes, except on shrink.
func (s *simplex) step(c Coefficients) (Move, error) {
	vs, vg, vh := s.rank()

	s.computeCentroid(vg)

	reflect(s.reflected, s.centroid, s.vertices[vg].Position, c.Reflection)

	fr, err := s.evaluate(s.reflected)
	if err != nil {
		return MoveReflect, err
	}

	fs := s.vertices[vs].Value
	fh := s.vertices[vh].Value
	fg := s.vertices[vg].Value

	switch {
	case fr < fh && fr >= fs:
		s.replace(vg, s.reflected, fr)

		return MoveReflect, nil

	case fr < fs:
		expand(s.expanded, s.centroid, s.reflected, c.Expansion)

		fe, err := s.evaluate(s.expanded)
		if err != nil {
			return MoveExpand, err
		}

		// Compared against fr, not fs.
		if fe < fr {
			s.replace(vg, s.expanded, fe)

			return MoveExpand, nil
		}

		s.replace(vg, s.reflected, fr)

		return MoveReflect, nil
	}

	move := MoveContractOutside
	if fr < fg {
		contractOutside(s.contracted, s.centroid, s.reflected, c.Contraction)
	} else {
		move = MoveContractInside
		contractInside(s.contracted, s.centroid, s.vertices[vg].Position, c.Contraction)
	}

	fc, err := s.evaluate(s.contracted)
	if err != nil {
		return move, err
	}

	if fc < fg {
		s.replace(vg, s.contracted, fc)

		return move, nil
	}

	return MoveShrink, s.shrinkAndReevaluate(vs)
}

// shrinkAndReevaluate halves the simplex toward vs, re-evaluates every
// vertex, then re-projects and re-evaluates the new worst and second-worst
// vertices once more.
func (s *simplex) shrinkAndReevaluate(vs int) error {
	s.shrink(vs)

	for i := range s.vertices {
		if err := s.evaluateVertex(i); err != nil {
			return err
		}
	}

	_, vg, vh := s.rank()

	if err := s.evaluateVertex(vg); err != nil {
		return err
	}

	return s.evaluateVertex(vh)
}
