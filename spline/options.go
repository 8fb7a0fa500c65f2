// SPDX-License-Identifier: MIT

// Package spline: functional configuration for New.
//
// Defaults reproduce the plain Fritsch–Carlson construction: averaged secant
// tangents, linear segment scan, finite-value validation for both axes.
// Option constructors panic only on nonsensical values (programmer error);
// user data errors are always returned from New.
package spline

// SearchMode selects how Interpolate locates the segment containing t.
type SearchMode int

const (
	// LinearScan walks the knots from the left. O(n), fastest for short tables.
	LinearScan SearchMode = iota

	// BinarySearch bisects the knots. O(log n), preferable for long tables.
	BinarySearch
)

// String implements fmt.Stringer.
func (m SearchMode) String() string {
	switch m {
	case LinearScan:
		return "linear"
	case BinarySearch:
		return "binary"
	default:
		return "unknown"
	}
}

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultSearch is the segment lookup strategy.
	DefaultSearch = LinearScan

	// DefaultFlattenExtrema leaves interior tangents at the secant average
	// even at local extrema.
	DefaultFlattenExtrema = false

	// DefaultAllowNonFiniteY rejects NaN/Inf in y.
	DefaultAllowNonFiniteY = false
)

const panicSearchInvalid = "spline: WithSearch: unknown search mode"

// Option mutates internal options.
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; callers configure through ...Option.
type Options struct {
	search          SearchMode
	flattenExtrema  bool
	allowNonFiniteY bool
}

// WithSearch sets the segment lookup strategy. Panics on an unknown mode.
func WithSearch(mode SearchMode) Option {
	if mode != LinearScan && mode != BinarySearch {
		panic(panicSearchInvalid)
	}

	return func(o *Options) {
		o.search = mode
	}
}

// WithExtremumFlattening zeroes the tangent at interior points where the
// adjacent secants change sign, so non-monotone data does not overshoot its
// peaks and valleys. Monotone data is unaffected.
func WithExtremumFlattening() Option {
	return func(o *Options) {
		o.flattenExtrema = true
	}
}

// WithAllowNonFiniteY accepts NaN/Inf in y. x is always validated because a
// NaN abscissa defeats the strict ordering check.
func WithAllowNonFiniteY() Option {
	return func(o *Options) {
		o.allowNonFiniteY = true
	}
}

func defaultOptions() Options {
	return Options{
		search:          DefaultSearch,
		flattenExtrema:  DefaultFlattenExtrema,
		allowNonFiniteY: DefaultAllowNonFiniteY,
	}
}

// gatherOptions applies opts over the defaults; nil options are skipped.
func gatherOptions(opts ...Option) Options {
	o := defaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}
