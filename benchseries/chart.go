// Copyright 2022 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchseries

import (
	"fmt"
	"io"

	"github.com/lsmtree/perf/benchunit"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// A Chart is a line chart of one or more series over the same x
// labels.
type Chart struct {
	Title  string
	XLabel string
	YLabel string

	// YUnit is the unit of the y values, such as "MB/Sec". It
	// selects how y tick labels are scaled; see benchunit.ClassOf.
	YUnit string

	// Grid draws horizontal and vertical grid lines.
	Grid bool

	Series []*Series
}

const pointRad = 3

// Plot builds the plot of c. Every series must have the same x labels.
func (c *Chart) Plot() (*plot.Plot, error) {
	if len(c.Series) == 0 {
		return nil, fmt.Errorf("chart %q has no series", c.Title)
	}
	labels := c.Series[0].Labels
	if len(labels) == 0 {
		return nil, fmt.Errorf("chart %q has no points", c.Title)
	}

	pl := plot.New()
	pl.Title.Text = c.Title
	pl.X.Label.Text = c.XLabel
	pl.Y.Label.Text = c.YLabel

	if c.Grid {
		pl.Add(plotter.NewGrid())
	}

	for i, s := range c.Series {
		if !sameLabels(labels, s.Labels) || len(s.X) != len(labels) || len(s.Y) != len(labels) {
			return nil, fmt.Errorf("chart %q: series %q does not match the x values of %q", c.Title, s.Name, c.Series[0].Name)
		}
		xys := make(plotter.XYs, len(s.Y))
		for j := range xys {
			xys[j].X, xys[j].Y = s.X[j], s.Y[j]
		}
		line, points, err := plotter.NewLinePoints(xys)
		if err != nil {
			return nil, fmt.Errorf("chart %q: series %q: %w", c.Title, s.Name, err)
		}
		clr := s.color(i)
		line.Color = clr
		points.Color = clr
		points.Shape = s.glyph(i)
		points.Radius = vg.Points(pointRad)

		pl.Add(line, points)
		if s.Name != "" {
			pl.Legend.Add(s.Name, line, points)
		}
	}
	pl.Legend.Top = true

	// Literal x cells as tick labels, one per point.
	pl.NominalX(labels...)
	pl.X.Tick.Width = vg.Points(0.5)
	pl.X.Tick.Length = vg.Points(4)
	pl.X.Tick.Label.YAlign = draw.YTop
	pl.X.Min, pl.X.Max = -0.5, float64(len(labels))-0.5

	pl.Y.Tick.Marker = unitTicks{benchunit.ClassOf(c.YUnit)}

	return pl, nil
}

// Encode draws c on a new canvas and writes it to w in the canvas'
// format.
func (c *Chart) Encode(w io.Writer, cv Canvas) (int64, error) {
	pl, err := c.Plot()
	if err != nil {
		return 0, err
	}
	can, err := cv.new()
	if err != nil {
		return 0, err
	}
	pl.Draw(draw.New(can))
	return can.WriteTo(w)
}

func sameLabels(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// unitTicks places ticks like plot.DefaultTicks, but labels the major
// ticks with a common benchunit scale, such as "500k" and "1000k".
type unitTicks struct {
	cls benchunit.Class
}

func (u unitTicks) Ticks(min, max float64) []plot.Tick {
	ticks := plot.DefaultTicks{}.Ticks(min, max)
	var major []float64
	for _, t := range ticks {
		if t.IsMinor() {
			continue
		}
		major = append(major, t.Value)
	}
	s := benchunit.CommonScale(major, u.cls)
	for i := range ticks {
		if !ticks[i].IsMinor() {
			ticks[i].Label = s.Trim(ticks[i].Value)
		}
	}
	return ticks
}
