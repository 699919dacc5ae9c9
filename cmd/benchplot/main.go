// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Benchplot draws charts of storage engine benchmark results.
//
// Usage:
//
//	benchplot [flags] [preset...]
//
// Each preset is a built-in set of charts:
//
//	throughput  put, get, and scan throughput over data size, read from
//	            step3{put,get,scan}.csv and drawn to step2{put,get,scan}.png
//	btree       binary search vs. B-tree query throughput, read from
//	            binary_vs_btree_results.csv and drawn to
//	            report/query_throughput_comparison.png
//
// With no presets and no -config, benchplot draws both presets, reading
// from the current directory and writing into it.
//
// The -config flag reads additional charts from a JSON file of the form
//
//	{"charts": [{"input": "results.csv", "x": "Size",
//	  "y": [{"column": "Time", "transform": "reciprocal", "label": "ops"}],
//	  "title": "...", "output": "chart.svg"}]}
//
// Transforms are "identity", "reciprocal" (1/y), and "ratio" (key/y,
// where key defaults to the x column). The output extension selects
// the image format: png, jpg, tif, svg, or pdf.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/lsmtree/perf/benchplot"
)

func main() {
	log.SetPrefix("benchplot: ")
	log.SetFlags(0)
	if err := run(os.Stderr, os.Args[1:]); err != nil {
		if err == flag.ErrHelp {
			os.Exit(0)
		}
		log.Fatal(err)
	}
}

func run(stderr io.Writer, args []string) error {
	fs := flag.NewFlagSet("benchplot", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(), `Usage: benchplot [flags] [preset...]

benchplot draws charts of benchmark tables. Presets are %s.
With no presets and no -config, it draws every preset.

`, strings.Join(benchplot.PresetNames(), ", "))
		fs.PrintDefaults()
	}
	var (
		flagIn      = fs.String("in", ".", "read preset inputs from `dir`")
		flagOut     = fs.String("out", ".", "write preset charts into `dir`")
		flagConfig  = fs.String("config", "", "also draw the charts described in JSON `file`")
		flagDPI     = fs.Int("dpi", 0, "render raster images at `n` dots per inch (default 300)")
		flagFormat  = fs.String("format", "", "write charts as `format` png, jpg, tif, svg, or pdf instead of by output extension")
		flagCSV     = fs.Bool("csv", false, "write the plotted series next to each chart in CSV form")
		flagHTML    = fs.String("html", "", "write an HTML index of the charts to `file`")
		flagVerbose = fs.Bool("v", false, "print a summary of each chart")
	)
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *flagDPI < 0 {
		return fmt.Errorf("bad -dpi %d", *flagDPI)
	}

	presets := fs.Args()
	if len(presets) == 0 && *flagConfig == "" {
		presets = []string{"throughput", "btree"}
	}
	var specs []benchplot.ChartSpec
	for _, name := range presets {
		ps, err := benchplot.Preset(name, *flagIn, *flagOut)
		if err != nil {
			return err
		}
		specs = append(specs, ps...)
	}
	if *flagConfig != "" {
		cfg, err := benchplot.ReadConfig(*flagConfig)
		if err != nil {
			return err
		}
		specs = append(specs, cfg.Charts...)
	}

	for i := range specs {
		s := &specs[i]
		if *flagDPI != 0 {
			s.DPI = *flagDPI
		}
		if *flagFormat != "" {
			s.Output = replaceExt(s.Output, "."+*flagFormat)
		}
		if *flagCSV && s.CSV == "" {
			s.CSV = replaceExt(s.Output, ".csv")
		}
	}

	r := new(benchplot.Renderer)
	if *flagVerbose {
		r.Logf = log.New(stderr, "benchplot: ", 0).Printf
	}
	results, err := r.RenderAll(specs)
	if err != nil {
		return err
	}

	if *flagHTML != "" {
		return writeIndex(*flagHTML, results)
	}
	return nil
}

func replaceExt(path, ext string) string {
	return strings.TrimSuffix(path, filepath.Ext(path)) + ext
}

func writeIndex(path string, results []*benchplot.Result) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := benchplot.WriteIndex(f, "Benchmark charts", filepath.Dir(path), results); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
