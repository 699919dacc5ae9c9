// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchcsv

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/aclements/go-gg/table"
)

// A Dataset is one table of benchmark results. All columns hold the
// literal cell text; use Floats to interpret a column as numbers.
//
// A Dataset is immutable once loaded.
type Dataset struct {
	// Name identifies the source of the table in error messages.
	// For files it is the path that was loaded.
	Name string

	t *table.Table

	// lines[i] is the 1-based source line (or worksheet row) of
	// data row i.
	lines []int
}

// newDataset builds a Dataset from a header and its data rows. Every
// row must have exactly len(header) cells.
func newDataset(name string, header []string, rows [][]string, lines []int) (*Dataset, error) {
	if len(header) == 0 {
		return nil, &SyntaxError{name, 1, "missing header row"}
	}
	seen := make(map[string]bool, len(header))
	cols := make([]string, len(header))
	for i, h := range header {
		if i == 0 {
			h = strings.TrimPrefix(h, "\ufeff")
		}
		h = strings.TrimSpace(h)
		if h == "" {
			return nil, &SyntaxError{name, 1, fmt.Sprintf("column %d has an empty name", i+1)}
		}
		if seen[h] {
			return nil, &SyntaxError{name, 1, fmt.Sprintf("duplicate column %q", h)}
		}
		seen[h] = true
		cols[i] = h
	}
	return &Dataset{Name: name, t: table.TableFromStrings(cols, rows, false), lines: lines}, nil
}

// Len returns the number of data rows, not counting the header.
func (d *Dataset) Len() int {
	return d.t.Len()
}

// Columns returns the column names in header order.
func (d *Dataset) Columns() []string {
	return d.t.Columns()
}

// Has reports whether d has a column named col.
func (d *Dataset) Has(col string) bool {
	return d.t.Column(col) != nil
}

// Table returns the underlying table. Every column is a []string.
// The caller must not modify it.
func (d *Dataset) Table() *table.Table {
	return d.t
}

// Line returns the source line of data row i.
func (d *Dataset) Line(i int) int {
	if i < 0 || i >= len(d.lines) {
		return 0
	}
	return d.lines[i]
}

// Strings returns the literal cells of column col.
func (d *Dataset) Strings(col string) ([]string, error) {
	c := d.t.Column(col)
	if c == nil {
		return nil, &ColumnError{d.Name, col, d.Columns()}
	}
	return c.([]string), nil
}

// Floats parses column col as finite floating-point numbers.
// Surrounding whitespace in a cell is ignored.
func (d *Dataset) Floats(col string) ([]float64, error) {
	ss, err := d.Strings(col)
	if err != nil {
		return nil, err
	}
	out := make([]float64, len(ss))
	for i, s := range ss {
		v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
		if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, &SyntaxError{d.Name, d.Line(i), fmt.Sprintf("column %q: %q is not a finite number", col, s)}
		}
		out[i] = v
	}
	return out, nil
}
