// SPDX-License-Identifier: MIT

package spline

import (
	"fmt"
	"math"
)

// fcBound is the Fritsch–Carlson radius: a segment stays monotone when
// (m[i]/d[i])² + (m[i+1]/d[i])² <= fcBound².
const fcBound = 3.0

// New builds a monotone cubic spline through the control points (x[i], y[i]).
//
// The spline passes through every control point exactly. When y is monotonic
// (non-decreasing or non-increasing) the interpolated values are monotonic too.
// Tangents follow the Fritsch–Carlson method:
//
//	https://en.wikipedia.org/wiki/Monotone_cubic_interpolation
//
// x and y are copied; later changes to the caller's slices do not affect the
// returned spline.
//
// Errors (all wrap ErrInvalidInput), checked in this order:
//   - ErrNilInput       — x or y is nil.
//   - ErrLengthMismatch — len(x) != len(y).
//   - ErrTooFewPoints   — fewer than two points.
//   - ErrNonFinite      — NaN/Inf in x, or in y unless WithAllowNonFiniteY.
//   - ErrNonIncreasingX — x[i+1]-x[i] <= 0.
//
// Complexity: O(n) time and memory.
func New(x, y []float64, opts ...Option) (*Spline, error) {
	o := gatherOptions(opts...)

	if err := validatePoints(x, y, o); err != nil {
		return nil, err
	}

	s := &Spline{
		x:      cloneFloats(x),
		y:      cloneFloats(y),
		search: o.search,
	}
	d := secants(s.x, s.y)
	s.m = initialTangents(d, o.flattenExtrema)
	enforceMonotone(s.m, d)

	return s, nil
}

// validatePoints enforces the construction preconditions. It allocates nothing.
func validatePoints(x, y []float64, o Options) error {
	if x == nil || y == nil {
		return fmt.Errorf("New: %w", ErrNilInput)
	}
	if len(x) != len(y) {
		return fmt.Errorf("New: len(x)=%d, len(y)=%d: %w", len(x), len(y), ErrLengthMismatch)
	}
	if len(x) < 2 {
		return fmt.Errorf("New: n=%d: %w", len(x), ErrTooFewPoints)
	}

	for i := range x {
		if math.IsNaN(x[i]) || math.IsInf(x[i], 0) {
			return fmt.Errorf("New: x[%d]=%v: %w", i, x[i], ErrNonFinite)
		}
		if !o.allowNonFiniteY && (math.IsNaN(y[i]) || math.IsInf(y[i], 0)) {
			return fmt.Errorf("New: y[%d]=%v: %w", i, y[i], ErrNonFinite)
		}
	}

	for i := 0; i < len(x)-1; i++ {
		if x[i+1]-x[i] <= 0 {
			return fmt.Errorf("New: x[%d]=%v, x[%d]=%v: %w", i, x[i], i+1, x[i+1], ErrNonIncreasingX)
		}
	}

	return nil
}

// secants returns d[i] = (y[i+1]-y[i]) / (x[i+1]-x[i]) for i in [0, n-2].
func secants(x, y []float64) []float64 {
	d := make([]float64, len(x)-1)
	for i := range d {
		d[i] = (y[i+1] - y[i]) / (x[i+1] - x[i])
	}

	return d
}

// initialTangents averages adjacent secants; the end points take the slope of
// their single neighbouring secant.
func initialTangents(d []float64, flattenExtrema bool) []float64 {
	n := len(d) + 1
	m := make([]float64, n)

	m[0] = d[0]
	for i := 1; i < n-1; i++ {
		if flattenExtrema && d[i-1]*d[i] < 0 {
			m[i] = 0

			continue
		}
		m[i] = (d[i-1] + d[i]) * 0.5
	}
	m[n-1] = d[n-2]

	return m
}

// enforceMonotone rescales tangents in place so every segment satisfies the
// Fritsch–Carlson condition. Flat segments get zero tangents at both ends.
func enforceMonotone(m, d []float64) {
	for i := range d {
		if d[i] == 0 {
			m[i] = 0
			m[i+1] = 0

			continue
		}

		a := m[i] / d[i]
		b := m[i+1] / d[i]
		h := math.Hypot(a, b)
		if h > fcBound {
			t := fcBound / h
			m[i] = t * a * d[i]
			m[i+1] = t * b * d[i]
		}
	}
}
