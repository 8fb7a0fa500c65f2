// SPDX-License-Identifier: MIT

package curvefile

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/katalvlaran/lvspline/spline"
	"github.com/spf13/cast"
	"gopkg.in/yaml.v3"
)

// Curve is a decoded control-point table.
type Curve struct {
	Name   string
	Search spline.SearchMode
	X, Y   []float64
}

// document is the on-disk layout. Values stay untyped until coerced.
type document struct {
	Name   string  `yaml:"name,omitempty"`
	Search string  `yaml:"search,omitempty"`
	Points [][]any `yaml:"points,omitempty"`
	X      []any   `yaml:"x,omitempty"`
	Y      []any   `yaml:"y,omitempty"`
}

// encoded is the layout written by Encode: pairs in flow style.
type encoded struct {
	Name   string      `yaml:"name,omitempty"`
	Search string      `yaml:"search,omitempty"`
	Points [][]float64 `yaml:"points,flow"`
}

// Load reads and decodes the curve file at path.
func Load(path string) (*Curve, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("curvefile: open %s: %w", path, err)
	}
	defer f.Close()

	c, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return c, nil
}

// Decode reads one YAML curve document from r. Unknown keys are rejected.
// Ordering of x is not checked here; Build reports it.
func Decode(r io.Reader) (*Curve, error) {
	var doc document

	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrNoPoints
		}

		return nil, fmt.Errorf("curvefile: decode: %w", err)
	}

	mode, err := ParseSearch(doc.Search)
	if err != nil {
		return nil, err
	}

	c := &Curve{Name: doc.Name, Search: mode}

	hasPairs := len(doc.Points) > 0
	hasColumns := len(doc.X) > 0 || len(doc.Y) > 0
	switch {
	case hasPairs && hasColumns:
		return nil, ErrAmbiguousPoints
	case hasPairs:
		c.X, c.Y, err = fromPairs(doc.Points)
	case hasColumns:
		c.X, c.Y, err = fromColumns(doc.X, doc.Y)
	default:
		return nil, ErrNoPoints
	}
	if err != nil {
		return nil, err
	}

	return c, nil
}

// Build constructs the spline. Errors from spline.New are returned unchanged
// apart from the curve name prefix.
func (c *Curve) Build() (*spline.Spline, error) {
	s, err := spline.New(c.X, c.Y, spline.WithSearch(c.Search))
	if err != nil {
		return nil, fmt.Errorf("curve %q: %w", c.Name, err)
	}

	return s, nil
}

// Encode writes c as a YAML document using the pairs layout.
func (c *Curve) Encode(w io.Writer) error {
	if len(c.X) != len(c.Y) {
		return fmt.Errorf("curvefile: encode %q: %w", c.Name, spline.ErrLengthMismatch)
	}

	out := encoded{Name: c.Name, Points: make([][]float64, len(c.X))}
	if c.Search != spline.LinearScan {
		out.Search = c.Search.String()
	}
	for i := range c.X {
		out.Points[i] = []float64{c.X[i], c.Y[i]}
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(out); err != nil {
		return fmt.Errorf("curvefile: encode %q: %w", c.Name, err)
	}

	return enc.Close()
}

// ParseSearch maps a `search` value to a spline.SearchMode. Empty means linear.
func ParseSearch(s string) (spline.SearchMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "linear":
		return spline.LinearScan, nil
	case "binary":
		return spline.BinarySearch, nil
	default:
		return 0, fmt.Errorf("%q: %w", s, ErrBadSearch)
	}
}

func fromPairs(points [][]any) (x, y []float64, err error) {
	x = make([]float64, len(points))
	y = make([]float64, len(points))
	for i, p := range points {
		if len(p) != 2 {
			return nil, nil, fmt.Errorf("points[%d] has %d entries: %w", i, len(p), ErrBadPoint)
		}
		if x[i], err = toFloat(p[0]); err != nil {
			return nil, nil, fmt.Errorf("points[%d].x: %w", i, err)
		}
		if y[i], err = toFloat(p[1]); err != nil {
			return nil, nil, fmt.Errorf("points[%d].y: %w", i, err)
		}
	}

	return x, y, nil
}

// fromColumns coerces both columns; a length mismatch is left for spline.New.
func fromColumns(xs, ys []any) (x, y []float64, err error) {
	x = make([]float64, len(xs))
	for i, v := range xs {
		if x[i], err = toFloat(v); err != nil {
			return nil, nil, fmt.Errorf("x[%d]: %w", i, err)
		}
	}
	y = make([]float64, len(ys))
	for i, v := range ys {
		if y[i], err = toFloat(v); err != nil {
			return nil, nil, fmt.Errorf("y[%d]: %w", i, err)
		}
	}

	return x, y, nil
}

// toFloat coerces a YAML scalar. cast maps nil and booleans to numbers, which
// would silently turn a typo into a control point, so both are refused.
func toFloat(v any) (float64, error) {
	switch v.(type) {
	case nil, bool:
		return 0, fmt.Errorf("%v: %w", v, ErrBadValue)
	}

	f, err := cast.ToFloat64E(v)
	if err != nil {
		return 0, fmt.Errorf("%v: %w", v, ErrBadValue)
	}

	return f, nil
}
