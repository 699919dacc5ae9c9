// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchplot

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/lsmtree/perf/benchcsv"
	"github.com/lsmtree/perf/benchseries"
	"gonum.org/v1/plot/vg"
)

// A ChartSpec describes one chart: where its table comes from, which
// columns it plots, how it is labeled, and where the image goes.
type ChartSpec struct {
	// Name identifies the chart in log messages and the HTML index.
	Name string `json:"name"`

	// Input is the path of the table. Sheet selects the worksheet
	// of an XLSX input.
	Input string `json:"input"`
	Sheet string `json:"sheet,omitempty"`

	// X is the column whose literal cells label the x axis.
	X string `json:"x"`

	// Y selects one series per entry, all drawn on the same axes.
	Y []benchseries.YSpec `json:"y"`

	Title  string `json:"title,omitempty"`
	XLabel string `json:"xlabel,omitempty"`
	YLabel string `json:"ylabel,omitempty"`
	YUnit  string `json:"yunit,omitempty"`
	Grid   bool   `json:"grid,omitempty"`

	// Output is the image path. Its extension selects the format.
	Output string `json:"output"`

	// Width and Height are the image size in inches. DPI is the
	// resolution of raster formats. Zero values select 8, 6, and
	// benchseries.DefaultDPI.
	Width  float64 `json:"width,omitempty"`
	Height float64 `json:"height,omitempty"`
	DPI    int     `json:"dpi,omitempty"`

	// CSV, if set, is a path to write the derived series to.
	CSV string `json:"csv,omitempty"`
}

const (
	defaultWidth  = 8
	defaultHeight = 6
)

// Validate checks that s names everything a chart needs. It does not
// look at the input.
func (s *ChartSpec) Validate() error {
	switch {
	case s.Input == "":
		return fmt.Errorf("chart %q: no input", s.Name)
	case s.X == "":
		return fmt.Errorf("chart %q: no x column", s.Name)
	case len(s.Y) == 0:
		return fmt.Errorf("chart %q: no y columns", s.Name)
	case s.Output == "":
		return fmt.Errorf("chart %q: no output", s.Name)
	case s.Width < 0 || s.Height < 0 || s.DPI < 0:
		return fmt.Errorf("chart %q: negative size", s.Name)
	}
	for _, y := range s.Y {
		if y.Column == "" {
			return fmt.Errorf("chart %q: y entry with no column", s.Name)
		}
		if _, err := benchseries.ParseGlyph(y.Glyph); err != nil {
			return fmt.Errorf("chart %q: %w", s.Name, err)
		}
		if _, err := benchseries.ParseColor(y.Color); err != nil {
			return fmt.Errorf("chart %q: %w", s.Name, err)
		}
	}
	if _, err := benchseries.FormatOf(s.Output); err != nil {
		return fmt.Errorf("chart %q: %w", s.Name, err)
	}
	return nil
}

// Chart derives every series of s from ds.
func (s *ChartSpec) Chart(ds *benchcsv.Dataset) (*benchseries.Chart, error) {
	c := &benchseries.Chart{
		Title:  s.Title,
		XLabel: s.XLabel,
		YLabel: s.YLabel,
		YUnit:  s.YUnit,
		Grid:   s.Grid,
	}
	for _, y := range s.Y {
		series, err := benchseries.Derive(ds, s.X, y)
		if err != nil {
			return nil, err
		}
		c.Series = append(c.Series, series)
	}
	return c, nil
}

// Canvas returns the image s describes.
func (s *ChartSpec) Canvas() (benchseries.Canvas, error) {
	format, err := benchseries.FormatOf(s.Output)
	if err != nil {
		return benchseries.Canvas{}, err
	}
	cv := benchseries.Canvas{
		Format: format,
		Width:  vg.Length(s.Width) * vg.Inch,
		Height: vg.Length(s.Height) * vg.Inch,
		DPI:    s.DPI,
	}
	if s.Width == 0 {
		cv.Width = defaultWidth * vg.Inch
	}
	if s.Height == 0 {
		cv.Height = defaultHeight * vg.Inch
	}
	return cv, nil
}

// A Config is a list of charts, as read from a JSON file.
type Config struct {
	Charts []ChartSpec `json:"charts"`
}

// ReadConfig reads a JSON Config from path and validates every chart.
func ReadConfig(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	cfg := new(Config)
	dec := json.NewDecoder(f)
	dec.DisallowUnknownFields()
	if err := dec.Decode(cfg); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if len(cfg.Charts) == 0 {
		return nil, fmt.Errorf("%s: no charts", path)
	}
	for i := range cfg.Charts {
		if cfg.Charts[i].Name == "" {
			cfg.Charts[i].Name = fmt.Sprintf("chart%d", i)
		}
		if err := cfg.Charts[i].Validate(); err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
	}
	return cfg, nil
}
