package spline_test

import (
	"math"
	"math/rand"
	"sort"
	"testing"

	"github.com/katalvlaran/lvspline/spline"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// monoTol absorbs last-bit rounding of the Hermite basis on flat segments.
const monoTol = 1e-9

// TestNew_Validation checks every rejection path and that each one is an ErrInvalidInput.
func TestNew_Validation(t *testing.T) {
	cases := []struct {
		name string
		x, y []float64
		want error
	}{
		{"nil x", nil, []float64{1, 2}, spline.ErrNilInput},
		{"nil y", []float64{1, 2}, nil, spline.ErrNilInput},
		{"length mismatch", []float64{1, 2, 3}, []float64{1, 2}, spline.ErrLengthMismatch},
		{"empty", []float64{}, []float64{}, spline.ErrTooFewPoints},
		{"single point", []float64{1}, []float64{1}, spline.ErrTooFewPoints},
		{"equal x", []float64{1, 1, 2}, []float64{0, 1, 2}, spline.ErrNonIncreasingX},
		{"decreasing x", []float64{0, 2, 1}, []float64{0, 1, 2}, spline.ErrNonIncreasingX},
		{"NaN x", []float64{0, math.NaN(), 2}, []float64{0, 1, 2}, spline.ErrNonFinite},
		{"Inf x", []float64{0, 1, math.Inf(1)}, []float64{0, 1, 2}, spline.ErrNonFinite},
		{"NaN y", []float64{0, 1, 2}, []float64{0, math.NaN(), 2}, spline.ErrNonFinite},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s, err := spline.New(tc.x, tc.y)
			assert.Nil(t, s, "rejected input must not yield a spline")
			assert.ErrorIs(t, err, tc.want)
			assert.ErrorIs(t, err, spline.ErrInvalidInput, "every construction error is ErrInvalidInput")
		})
	}
}

// TestNew_ValidationOrder ensures length checks win over ordering checks.
func TestNew_ValidationOrder(t *testing.T) {
	_, err := spline.New([]float64{3, 2, 1}, []float64{1})
	assert.ErrorIs(t, err, spline.ErrLengthMismatch)
	assert.NotErrorIs(t, err, spline.ErrNonIncreasingX)
}

// TestNew_AllowNonFiniteY accepts NaN ordinates when asked and still rejects NaN abscissae.
func TestNew_AllowNonFiniteY(t *testing.T) {
	s, err := spline.New([]float64{0, 1, 2}, []float64{0, math.NaN(), 2}, spline.WithAllowNonFiniteY())
	require.NoError(t, err)
	assert.True(t, math.IsNaN(s.Interpolate(1)), "NaN knot value is returned verbatim")
	assert.Equal(t, 0.0, s.Interpolate(-1))

	_, err = spline.New([]float64{0, math.NaN()}, []float64{0, 1}, spline.WithAllowNonFiniteY())
	assert.ErrorIs(t, err, spline.ErrNonFinite)
}

// TestInterpolate_Exactness verifies the curve hits every control point.
func TestInterpolate_Exactness(t *testing.T) {
	x := []float64{-2, -0.5, 0, 1, 4, 4.5, 10}
	y := []float64{3, -1, 7, 7, 2, 9, -4}
	for _, mode := range []spline.SearchMode{spline.LinearScan, spline.BinarySearch} {
		s, err := spline.New(x, y, spline.WithSearch(mode))
		require.NoError(t, err)
		for i := range x {
			assert.Equal(t, y[i], s.Interpolate(x[i]), "%s: knot %d", mode, i)
		}
	}
}

// TestInterpolate_Clamping verifies no extrapolation happens outside the domain.
func TestInterpolate_Clamping(t *testing.T) {
	s, err := spline.New([]float64{1, 2, 3}, []float64{1, 4, 2})
	require.NoError(t, err)

	for _, v := range []float64{1, 0.999, 0, -1e9, math.Inf(-1)} {
		assert.Equal(t, 1.0, s.Interpolate(v), "left clamp at %v", v)
	}
	for _, v := range []float64{3, 3.001, 1e9, math.Inf(1)} {
		assert.Equal(t, 2.0, s.Interpolate(v), "right clamp at %v", v)
	}
}

// TestInterpolate_NaN verifies NaN propagates.
func TestInterpolate_NaN(t *testing.T) {
	s, err := spline.New([]float64{0, 1}, []float64{0, 1})
	require.NoError(t, err)
	assert.True(t, math.IsNaN(s.Interpolate(math.NaN())))
}

// TestInterpolate_NonMonotoneScenario covers x=[1,2,3], y=[1,4,2].
func TestInterpolate_NonMonotoneScenario(t *testing.T) {
	s, err := spline.New([]float64{1, 2, 3}, []float64{1, 4, 2})
	require.NoError(t, err)

	assert.Equal(t, 1.0, s.Interpolate(1))
	assert.Equal(t, 4.0, s.Interpolate(2))
	assert.Equal(t, 2.0, s.Interpolate(3))

	v := s.Interpolate(1.9)
	assert.Greater(t, v, 1.0)
	assert.Less(t, v, 4.0)
	assert.InDelta(t, 3.9025, v, 1e-12)
	assert.Greater(t, v, 1+3*0.9, "the curve bows above the chord")
}

// TestInterpolate_MonotoneScenario covers x=[0,1,2,3], y=[0,1,1,2].
func TestInterpolate_MonotoneScenario(t *testing.T) {
	s, err := spline.New([]float64{0, 1, 2, 3}, []float64{0, 1, 1, 2})
	require.NoError(t, err)

	assert.Equal(t, []float64{1, 0, 0, 1}, s.Tangents(), "flat middle segment zeroes both tangents")
	assert.InDelta(t, 0.625, s.Interpolate(0.5), 1e-12)
	assert.InDelta(t, 1.0, s.Interpolate(1.5), 1e-12)
	assert.InDelta(t, 1.375, s.Interpolate(2.5), 1e-12)

	prev := s.Interpolate(0)
	for k := 1; k <= 3000; k++ {
		v := s.Interpolate(float64(k) / 1000)
		require.GreaterOrEqual(t, v, prev-monoTol, "t=%v", float64(k)/1000)
		prev = v
	}
}

// TestInterpolate_MonotoneRandom checks monotonicity on random non-decreasing
// and non-increasing data, including flat runs and steep jumps.
func TestInterpolate_MonotoneRandom(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for trial := 0; trial < 200; trial++ {
		n := 2 + rng.Intn(12)
		x := make([]float64, n)
		y := make([]float64, n)
		for i := 1; i < n; i++ {
			x[i] = x[i-1] + 0.01 + rng.Float64()*5
			switch rng.Intn(4) {
			case 0:
				y[i] = y[i-1] // flat run
			case 1:
				y[i] = y[i-1] + rng.Float64()*100 // steep jump
			default:
				y[i] = y[i-1] + rng.Float64()
			}
		}
		decreasing := trial%2 == 1
		if decreasing {
			for i := range y {
				y[i] = -y[i]
			}
		}

		mode := spline.LinearScan
		if trial%3 == 0 {
			mode = spline.BinarySearch
		}
		s, err := spline.New(x, y, spline.WithSearch(mode))
		require.NoError(t, err)

		ts := make([]float64, 400)
		for i := range ts {
			ts[i] = x[0] - 1 + rng.Float64()*(x[n-1]-x[0]+2)
		}
		sort.Float64s(ts)

		prev := s.Interpolate(ts[0])
		for _, tt := range ts[1:] {
			v := s.Interpolate(tt)
			if decreasing {
				require.LessOrEqual(t, v, prev+monoTol, "trial %d: t=%v", trial, tt)
			} else {
				require.GreaterOrEqual(t, v, prev-monoTol, "trial %d: t=%v", trial, tt)
			}
			prev = v
		}
	}
}

// TestTangents_FritschCarlsonBound verifies every segment ends inside the radius-3 circle.
func TestTangents_FritschCarlsonBound(t *testing.T) {
	x := []float64{0, 1, 2, 3, 4}
	y := []float64{0, 0.1, 10, 10.5, 30}
	s, err := spline.New(x, y)
	require.NoError(t, err)

	m := s.Tangents()
	require.Len(t, m, len(x), "one tangent per control point")
	for i := 0; i < len(x)-1; i++ {
		d := (y[i+1] - y[i]) / (x[i+1] - x[i])
		assert.LessOrEqual(t, math.Hypot(m[i]/d, m[i+1]/d), 3+1e-9, "segment %d", i)
		assert.GreaterOrEqual(t, m[i], 0.0)
	}
}

// TestWithExtremumFlattening verifies the peak no longer overshoots.
func TestWithExtremumFlattening(t *testing.T) {
	x := []float64{1, 2, 3}
	y := []float64{1, 4, 2}

	plain, err := spline.New(x, y)
	require.NoError(t, err)
	assert.Greater(t, plain.Interpolate(2.1), 4.0, "averaged tangent overshoots the peak")

	flat, err := spline.New(x, y, spline.WithExtremumFlattening())
	require.NoError(t, err)
	assert.Equal(t, 0.0, flat.Tangents()[1])
	_, vs, err := flat.Sample(201)
	require.NoError(t, err)
	for _, v := range vs {
		assert.LessOrEqual(t, v, 4.0+monoTol)
	}
}

// TestSearchModes_Agree compares linear and binary lookup on a long table.
func TestSearchModes_Agree(t *testing.T) {
	n := 257
	x := make([]float64, n)
	y := make([]float64, n)
	for i := range x {
		x[i] = float64(i) * 0.5
		y[i] = math.Sin(x[i])
	}
	lin, err := spline.New(x, y, spline.WithSearch(spline.LinearScan))
	require.NoError(t, err)
	bin, err := spline.New(x, y, spline.WithSearch(spline.BinarySearch))
	require.NoError(t, err)
	assert.Equal(t, spline.BinarySearch, bin.Search())

	for k := -10; k <= 1300; k++ {
		tt := float64(k) * 0.1
		assert.Equal(t, lin.Interpolate(tt), bin.Interpolate(tt), "t=%v", tt)
	}
}

// TestWithSearch_PanicsOnUnknownMode guards the programmer-error path.
func TestWithSearch_PanicsOnUnknownMode(t *testing.T) {
	assert.Panics(t, func() { spline.WithSearch(spline.SearchMode(7)) })
	assert.Equal(t, "unknown", spline.SearchMode(7).String())
}

// TestNew_CopiesInput ensures later mutation of the caller's slices has no effect.
func TestNew_CopiesInput(t *testing.T) {
	x := []float64{0, 1, 2}
	y := []float64{0, 1, 4}
	s, err := spline.New(x, y)
	require.NoError(t, err)
	before := s.Interpolate(1.5)

	x[1], y[1] = 1.9, -100
	assert.Equal(t, before, s.Interpolate(1.5))

	kx, ky := s.Knots()
	kx[0], ky[0] = 99, 99
	lo, hi := s.Domain()
	assert.Equal(t, 0.0, lo)
	assert.Equal(t, 2.0, hi)
	assert.Equal(t, 0.0, s.Interpolate(-1), "Knots returns copies")
	assert.Equal(t, 3, s.Len())
}

// TestSample covers even spacing and the bad-count error.
func TestSample(t *testing.T) {
	s, err := spline.New([]float64{0, 1, 2, 3}, []float64{0, 1, 1, 2})
	require.NoError(t, err)

	ts, vs, err := s.Sample(7)
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 0.5, 1, 1.5, 2, 2.5, 3}, ts)
	assert.Equal(t, s.InterpolateAll(ts), vs)
	assert.Equal(t, 0.0, vs[0])
	assert.Equal(t, 2.0, vs[6])

	_, _, err = s.Sample(1)
	assert.ErrorIs(t, err, spline.ErrBadSampleCount)
}

// TestInterpolateAll_Empty returns an empty, non-nil slice.
func TestInterpolateAll_Empty(t *testing.T) {
	s, err := spline.New([]float64{0, 1}, []float64{5, 5})
	require.NoError(t, err)
	out := s.InterpolateAll(nil)
	assert.NotNil(t, out)
	assert.Empty(t, out)
	assert.Equal(t, []float64{5, 5, 5}, s.InterpolateAll([]float64{-1, 0.5, 2}))
}
