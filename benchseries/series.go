// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package benchseries derives plottable series from benchmark tables
// and renders them as charts.
package benchseries

import (
	"errors"
	"fmt"
	"image/color"

	"github.com/lsmtree/perf/benchcsv"
	"gonum.org/v1/plot/vg/draw"
)

// A YSpec selects the y values of one series.
type YSpec struct {
	// Column is the value column.
	Column string `json:"column"`

	// Transform maps Column to y values.
	Transform Transform `json:"transform,omitempty"`

	// Key is the numerator column for Ratio. If empty, the x
	// column is used.
	Key string `json:"key,omitempty"`

	// Label is the legend text. If empty, Column is used.
	Label string `json:"label,omitempty"`

	// Glyph and Color style the series. See ParseGlyph and
	// ParseColor. Empty values pick from a default palette.
	Glyph string `json:"glyph,omitempty"`
	Color string `json:"color,omitempty"`
}

// A Series is one line of points. Points are placed at nominal x
// positions 0, 1, ..., each labeled with the literal x cell it came
// from, so len(Labels) == len(X) == len(Y).
type Series struct {
	Name   string // Legend text
	Column string // Source column of Y

	Labels []string
	X, Y   []float64

	Glyph draw.GlyphDrawer // nil for the default of the series' position
	Color color.Color      // nil for the default of the series' position
}

// Len returns the number of points in s.
func (s *Series) Len() int {
	return len(s.Y)
}

// Derive computes the series y selects from ds, against the x column x.
//
// Errors about ds content match benchcsv.ErrMalformed: a missing
// column, a non-numeric cell, a zero divisor, or a table with no rows.
func Derive(ds *benchcsv.Dataset, x string, y YSpec) (*Series, error) {
	labels, err := ds.Strings(x)
	if err != nil {
		return nil, err
	}
	if len(labels) == 0 {
		return nil, &benchcsv.SyntaxError{FileName: ds.Name, Msg: "table has no data rows"}
	}
	vals, err := ds.Floats(y.Column)
	if err != nil {
		return nil, err
	}
	var keys []float64
	if y.Transform == Ratio {
		key := y.Key
		if key == "" {
			key = x
		}
		if keys, err = ds.Floats(key); err != nil {
			return nil, err
		}
	}
	ys, err := y.Transform.Apply(vals, keys)
	if err != nil {
		var de *DivisorError
		if errors.As(err, &de) {
			return nil, &benchcsv.SyntaxError{FileName: ds.Name, Line: ds.Line(de.Row), Msg: fmt.Sprintf("column %q: zero cannot be a divisor", y.Column)}
		}
		return nil, err
	}

	glyph, err := ParseGlyph(y.Glyph)
	if err != nil {
		return nil, err
	}
	clr, err := ParseColor(y.Color)
	if err != nil {
		return nil, err
	}

	xs := make([]float64, len(labels))
	for i := range xs {
		xs[i] = float64(i)
	}
	name := y.Label
	if name == "" {
		name = y.Column
	}
	return &Series{
		Name:   name,
		Column: y.Column,
		Labels: append([]string(nil), labels...),
		X:      xs,
		Y:      ys,
		Glyph:  glyph,
		Color:  clr,
	}, nil
}
