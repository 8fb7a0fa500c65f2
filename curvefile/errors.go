// SPDX-License-Identifier: MIT

package curvefile

import "errors"

var (
	// ErrNoPoints indicates the document has neither `points` nor `x`/`y`.
	ErrNoPoints = errors.New("curvefile: no control points")

	// ErrAmbiguousPoints indicates both `points` and `x`/`y` were given.
	ErrAmbiguousPoints = errors.New("curvefile: both points and x/y given")

	// ErrBadPoint indicates a `points` entry that is not an [x, y] pair.
	ErrBadPoint = errors.New("curvefile: point must be an [x, y] pair")

	// ErrBadValue indicates a scalar that cannot be read as a number.
	ErrBadValue = errors.New("curvefile: value is not a number")

	// ErrBadSearch indicates an unknown `search` value.
	ErrBadSearch = errors.New("curvefile: unknown search mode")
)
