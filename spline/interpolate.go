// SPDX-License-Identifier: MIT

package spline

import (
	"fmt"
	"math"
	"sort"
)

// Interpolate returns the spline value at t.
//
// Behavior:
//   - NaN → NaN.
//   - t <= x[0] → y[0]; t >= x[n-1] → y[n-1] (clamped, no extrapolation).
//   - t equal to a knot → that knot's y exactly.
//   - otherwise the cubic Hermite segment [x[i], x[i+1]) containing t.
//
// Interpolate never fails and has no side effects.
func (s *Spline) Interpolate(t float64) float64 {
	n := len(s.x)
	if math.IsNaN(t) {
		return t
	}
	if t <= s.x[0] {
		return s.y[0]
	}
	if t >= s.x[n-1] {
		return s.y[n-1]
	}

	var (
		i   int
		hit bool
	)
	if s.search == BinarySearch {
		i, hit = s.segmentBinary(t)
	} else {
		i, hit = s.segmentLinear(t)
	}
	if hit {
		return s.y[i]
	}

	return s.hermite(i, t)
}

// segmentLinear scans from the left for the last knot with x <= t.
// Precondition: x[0] < t < x[n-1].
func (s *Spline) segmentLinear(t float64) (int, bool) {
	i := 0
	for t >= s.x[i+1] {
		i++
		if t == s.x[i] {
			return i, true
		}
	}

	return i, false
}

// segmentBinary bisects for the last knot with x <= t.
// Precondition: x[0] < t < x[n-1], so k lands in [1, n-1].
func (s *Spline) segmentBinary(t float64) (int, bool) {
	k := sort.SearchFloat64s(s.x, t)
	if s.x[k] == t {
		return k, true
	}

	return k - 1, false
}

// hermite evaluates the cubic Hermite basis on segment i.
func (s *Spline) hermite(i int, t float64) float64 {
	h := s.x[i+1] - s.x[i]
	u := (t - s.x[i]) / h
	v := 1 - u

	return (s.y[i]*(1+2*u)+h*s.m[i]*u)*v*v +
		(s.y[i+1]*(3-2*u)+h*s.m[i+1]*(u-1))*u*u
}

// InterpolateAll evaluates the spline at every element of ts and returns the
// values in a new slice of the same length.
func (s *Spline) InterpolateAll(ts []float64) []float64 {
	out := make([]float64, len(ts))
	for i, t := range ts {
		out[i] = s.Interpolate(t)
	}

	return out
}

// Sample evaluates the spline at n evenly spaced abscissae spanning the domain,
// both end points included.
//
// Errors: ErrBadSampleCount if n < 2.
func (s *Spline) Sample(n int) (ts, vs []float64, err error) {
	if n < 2 {
		return nil, nil, fmt.Errorf("Sample: n=%d: %w", n, ErrBadSampleCount)
	}

	lo, hi := s.Domain()
	step := (hi - lo) / float64(n-1)
	ts = make([]float64, n)
	for i := range ts {
		ts[i] = lo + float64(i)*step
	}
	ts[n-1] = hi

	return ts, s.InterpolateAll(ts), nil
}
