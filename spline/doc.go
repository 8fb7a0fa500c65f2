// SPDX-License-Identifier: MIT

// Package spline builds and evaluates monotone cubic splines through a set of
// control points.
//
// 🚀 What is a monotone cubic spline?
//
//	A piecewise cubic Hermite curve that passes through every control point
//	exactly and, when the control points are monotonic (y non-decreasing or
//	non-increasing), never overshoots between them. Typical uses:
//	  • Animation and easing curves
//	  • Lookup-table smoothing (gamma ramps, sensor calibration)
//	  • Response curves (throttle maps, volume curves)
//
// ✨ Key features:
//   - Fritsch–Carlson tangent estimation and monotonicity correction
//   - exact interpolation at every control point
//   - clamped boundaries: no extrapolation outside [x[0], x[n-1]]
//   - NaN in, NaN out; evaluation never fails
//   - immutable after construction: share one *Spline across goroutines freely
//   - optional O(log n) segment lookup (WithSearch(BinarySearch))
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/lvspline/spline"
//
//	s, err := spline.New([]float64{0, 1, 2, 3}, []float64{0, 1, 1, 2})
//	if err != nil {
//	  // errors.Is(err, spline.ErrInvalidInput)
//	}
//	v := s.Interpolate(1.5)
//
// Algorithm outline:
//  1. d[i] = (y[i+1]-y[i]) / (x[i+1]-x[i])            secant slopes
//  2. m[0]=d[0], m[n-1]=d[n-2], m[i]=(d[i-1]+d[i])/2   initial tangents
//  3. for each segment: d[i]==0 ⇒ m[i]=m[i+1]=0;
//     otherwise a=m[i]/d[i], b=m[i+1]/d[i], h=√(a²+b²);
//     h>3 ⇒ rescale both tangents by 3/h
//  4. evaluate with the cubic Hermite basis on the segment containing t
//
// Performance:
//
//   - New:         O(n) time, O(n) memory (inputs are copied)
//   - Interpolate: O(n) worst case (LinearScan) or O(log n) (BinarySearch)
package spline
