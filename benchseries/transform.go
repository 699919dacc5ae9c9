// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchseries

import (
	"fmt"

	"github.com/aclements/go-moremath/vec"
	"github.com/lsmtree/perf/benchcsv"
)

// A Transform maps the cells of a value column to plotted y values.
type Transform int

const (
	// Identity plots values as they are.
	Identity Transform = iota
	// Reciprocal plots 1/value, turning a time per unit of work
	// into a rate.
	Reciprocal
	// Ratio plots key/value, where key is a second column such as
	// the amount of data the time in value was spent on.
	Ratio
)

var transformNames = []string{
	Identity:   "identity",
	Reciprocal: "reciprocal",
	Ratio:      "ratio",
}

func (t Transform) String() string {
	if t >= 0 && int(t) < len(transformNames) {
		return transformNames[t]
	}
	return fmt.Sprintf("Transform(%d)", int(t))
}

// ParseTransform returns the Transform named s.
func ParseTransform(s string) (Transform, error) {
	for i, name := range transformNames {
		if s == name {
			return Transform(i), nil
		}
	}
	return 0, fmt.Errorf("unknown transform %q (want identity, reciprocal, or ratio)", s)
}

func (t Transform) MarshalText() ([]byte, error) {
	if t < 0 || int(t) >= len(transformNames) {
		return nil, fmt.Errorf("cannot marshal %v", t)
	}
	return []byte(t.String()), nil
}

func (t *Transform) UnmarshalText(text []byte) error {
	v, err := ParseTransform(string(text))
	if err != nil {
		return err
	}
	*t = v
	return nil
}

// A DivisorError reports a zero value used as a divisor by Reciprocal
// or Ratio. Row is the 0-based index of the offending value.
type DivisorError struct {
	Row int
}

func (e *DivisorError) Error() string {
	return fmt.Sprintf("row %d: division by zero", e.Row+1)
}

func (e *DivisorError) Is(target error) bool {
	return target == benchcsv.ErrMalformed
}

// Apply computes the y values for vals. keys is used only by Ratio,
// and must then have the same length as vals.
//
// Reciprocal and Ratio reject a zero value with a *DivisorError rather
// than producing an infinite point.
func (t Transform) Apply(vals, keys []float64) ([]float64, error) {
	switch t {
	case Identity:
		return append([]float64(nil), vals...), nil
	case Reciprocal, Ratio:
		for i, v := range vals {
			if v == 0 {
				return nil, &DivisorError{i}
			}
		}
	default:
		return nil, fmt.Errorf("unknown transform %v", t)
	}

	if t == Reciprocal {
		return vec.Map(func(v float64) float64 { return 1 / v }, vals), nil
	}
	if len(keys) != len(vals) {
		return nil, fmt.Errorf("ratio of %d keys to %d values", len(keys), len(vals))
	}
	out := make([]float64, len(vals))
	for i, v := range vals {
		out[i] = keys[i] / v
	}
	return out, nil
}
