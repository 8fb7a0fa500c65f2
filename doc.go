// Package lvspline is a small toolkit for overshoot-free curves derived from
// sparse samples: animation easing, lookup-table smoothing, response curves.
//
// 🚀 What's inside?
//
//	spline/         — monotone cubic spline (Fritsch–Carlson) construction & evaluation
//	curvefile/      — YAML control-point tables → *spline.Spline
//	cmd/splinedemo  — command-line harness that builds a curve and logs samples
//
// ✨ Guarantees:
//
//   - exact interpolation at every control point
//   - monotone data ⇒ monotone curve, no overshoot
//   - clamped boundaries, NaN propagation, no panics on user data
//   - immutable splines, safe for concurrent readers without locks
//
// Quick example:
//
//	s, _ := spline.New([]float64{0, 1, 2, 3}, []float64{0, 1, 1, 2})
//	s.Interpolate(2.5) // 1.375
//
//	go get github.com/katalvlaran/lvspline
package lvspline
