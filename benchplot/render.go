// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchplot

import (
	"fmt"

	"github.com/aclements/go-moremath/stats"
	"github.com/lsmtree/perf/benchcsv"
)

// A Renderer renders charts and hands them to a Sink.
type Renderer struct {
	// Sink stores rendered charts. If nil, FileSink is used.
	Sink Sink

	// Logf, if non-nil, receives a summary of each saved chart.
	Logf func(format string, args ...interface{})
}

// A Result describes one saved chart.
type Result struct {
	Spec ChartSpec

	// Points is the number of points in each series.
	Points int

	// YMin and YMax bound the y values of all series.
	YMin, YMax float64
}

// Render loads the input of spec, derives its series, and saves the
// chart. Nothing is saved if any step fails.
//
// Errors match ErrInputNotFound if the input does not exist,
// ErrMalformedInput if it cannot be plotted as spec describes, and
// ErrWrite if the output cannot be written.
func (r *Renderer) Render(spec ChartSpec) (*Result, error) {
	if err := spec.Validate(); err != nil {
		return nil, err
	}
	ds, err := benchcsv.Load(spec.Input, &benchcsv.Options{Sheet: spec.Sheet})
	if err != nil {
		return nil, fmt.Errorf("chart %s: %w", spec.Name, err)
	}
	c, err := spec.Chart(ds)
	if err != nil {
		return nil, fmt.Errorf("chart %s: %w", spec.Name, err)
	}

	sink := r.Sink
	if sink == nil {
		sink = FileSink{}
	}
	if err := sink.Save(c, spec); err != nil {
		return nil, fmt.Errorf("chart %s: %w", spec.Name, err)
	}

	res := &Result{Spec: spec, Points: ds.Len()}
	for i, s := range c.Series {
		lo, hi := stats.Bounds(s.Y)
		if i == 0 || lo < res.YMin {
			res.YMin = lo
		}
		if i == 0 || hi > res.YMax {
			res.YMax = hi
		}
	}
	if r.Logf != nil {
		r.Logf("%s: %d series of %d points, y in [%g, %g], wrote %s",
			spec.Name, len(c.Series), res.Points, res.YMin, res.YMax, spec.Output)
	}
	return res, nil
}

// RenderAll renders specs in order and stops at the first error. It
// returns the results of the charts saved before that.
func (r *Renderer) RenderAll(specs []ChartSpec) ([]*Result, error) {
	var results []*Result
	for _, spec := range specs {
		res, err := r.Render(spec)
		if err != nil {
			return results, err
		}
		results = append(results, res)
	}
	return results, nil
}
