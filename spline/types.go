// SPDX-License-Identifier: MIT

package spline

// Spline is a monotone cubic spline through a fixed set of control points.
//
// Invariants (established by New, never violated afterwards):
//   - len(x) == len(y) == len(m) >= 2
//   - x is strictly increasing and finite
//   - x, y and m are owned by the Spline and never mutated
//
// A *Spline is safe for concurrent use by multiple goroutines.
type Spline struct {
	x      []float64 // knot abscissae
	y      []float64 // knot ordinates
	m      []float64 // per-knot tangents
	search SearchMode
}

// Len returns the number of control points.
func (s *Spline) Len() int {
	return len(s.x)
}

// Domain returns the closed interval [x[0], x[n-1]] outside of which
// Interpolate clamps.
func (s *Spline) Domain() (lo, hi float64) {
	return s.x[0], s.x[len(s.x)-1]
}

// Knots returns copies of the control point coordinates.
func (s *Spline) Knots() (x, y []float64) {
	return cloneFloats(s.x), cloneFloats(s.y)
}

// Tangents returns a copy of the per-knot tangents after monotonicity correction.
func (s *Spline) Tangents() []float64 {
	return cloneFloats(s.m)
}

// Search reports the segment lookup strategy the spline was built with.
func (s *Spline) Search() SearchMode {
	return s.search
}

func cloneFloats(src []float64) []float64 {
	dst := make([]float64, len(src))
	copy(dst, src)

	return dst
}
