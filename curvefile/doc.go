// SPDX-License-Identifier: MIT

// Package curvefile loads control-point tables from YAML and turns them into
// monotone cubic splines.
//
// A curve document lists its control points either as pairs or as columns:
//
//	name: gamma
//	search: binary     # optional: linear (default) | binary
//	points:
//	  - [0, 0]
//	  - ["0.5", 0.21]  # numeric strings are accepted
//	  - [1, 1]
//
//	name: throttle
//	x: [0, 10, 50, 100]
//	y: [0, 2, 40, 100]
//
// Scalars are coerced to float64 with github.com/spf13/cast, so hand-edited
// tables may mix integers, floats and quoted numbers. Exactly one of the two
// layouts must be present.
//
// Usage:
//
//	c, err := curvefile.Load("gamma.yaml")
//	if err != nil { ... }
//	s, err := c.Build()    // *spline.Spline; errors wrap spline.ErrInvalidInput
//	v := s.Interpolate(0.3)
package curvefile
