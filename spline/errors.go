// SPDX-License-Identifier: MIT

package spline

import (
	"errors"
	"fmt"
)

// ErrInvalidInput is the single error kind returned by New. Every other
// construction sentinel wraps it, so callers that only care whether the
// control points were rejected can test errors.Is(err, ErrInvalidInput).
var ErrInvalidInput = errors.New("spline: invalid input")

var (
	// ErrNilInput indicates that x or y is nil.
	ErrNilInput = fmt.Errorf("%w: x and y must be non-nil", ErrInvalidInput)

	// ErrLengthMismatch indicates len(x) != len(y).
	ErrLengthMismatch = fmt.Errorf("%w: x and y must have equal length", ErrInvalidInput)

	// ErrTooFewPoints indicates fewer than two control points.
	ErrTooFewPoints = fmt.Errorf("%w: at least two control points are required", ErrInvalidInput)

	// ErrNonIncreasingX indicates x[i+1]-x[i] <= 0 for some i.
	ErrNonIncreasingX = fmt.Errorf("%w: x must be strictly increasing", ErrInvalidInput)

	// ErrNonFinite indicates a NaN or ±Inf coordinate.
	ErrNonFinite = fmt.Errorf("%w: NaN or Inf coordinate", ErrInvalidInput)
)

// ErrBadSampleCount is returned by Sample when fewer than two samples are requested.
var ErrBadSampleCount = errors.New("spline: sample count must be >= 2")
