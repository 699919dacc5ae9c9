// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchplot

import (
	"fmt"
	"path/filepath"
	"sort"

	"github.com/lsmtree/perf/benchseries"
)

// Operations are the storage operations measured by the data size
// sweep, in plotting order.
var Operations = []string{"put", "get", "scan"}

// ThroughputCharts returns one chart per operation of the data size
// sweep. Each reads step3<op>.csv from inDir, whose Key column is the
// data size in MB and whose Value column is the seconds the operation
// took, and writes step2<op>.png to outDir.
//
// Put timings cover all Key MB inserted so far, so put throughput is
// Key/Value. Get and scan timings cover a fixed 1 MB of work, so their
// throughput is 1/Value.
func ThroughputCharts(inDir, outDir string) []ChartSpec {
	var specs []ChartSpec
	for _, op := range Operations {
		tr := benchseries.Reciprocal
		if op == "put" {
			tr = benchseries.Ratio
		}
		specs = append(specs, ChartSpec{
			Name:  op,
			Input: filepath.Join(inDir, "step3"+op+".csv"),
			X:     "Key",
			Y: []benchseries.YSpec{{
				Column:    "Value",
				Transform: tr,
				Label:     "Memtable Size: 1 MB",
				Glyph:     "o",
				Color:     "b",
			}},
			Title:  op + " throughput over different data sizes",
			XLabel: "Data Size",
			YLabel: "Throughput (MB/Sec)",
			YUnit:  "MB/Sec",
			Output: filepath.Join(outDir, "step2"+op+".png"),
			Width:  8,
			Height: 6,
		})
	}
	return specs
}

// QueryComparisonChart returns the chart comparing point query
// throughput of binary search over sorted runs with a static B-tree.
// It reads binary_vs_btree_results.csv from inDir and writes
// report/query_throughput_comparison.png under outDir.
func QueryComparisonChart(inDir, outDir string) ChartSpec {
	return ChartSpec{
		Name:  "btree",
		Input: filepath.Join(inDir, "binary_vs_btree_results.csv"),
		X:     "Data Size (MB)",
		Y: []benchseries.YSpec{
			{Column: "Binary Search Throughput (queries/sec)", Label: "Binary Search", Glyph: "o"},
			{Column: "B-Tree Throughput (queries/sec)", Label: "B-Tree", Glyph: "s"},
		},
		Title:  "Binary Search vs. B-Tree Query Throughput",
		XLabel: "Data Size (MB)",
		YLabel: "Query Throughput (queries/sec)",
		YUnit:  "queries/sec",
		Grid:   true,
		Output: filepath.Join(outDir, "report", "query_throughput_comparison.png"),
		Width:  10,
		Height: 6,
	}
}

var presets = map[string]func(inDir, outDir string) []ChartSpec{
	"throughput": ThroughputCharts,
	"btree": func(inDir, outDir string) []ChartSpec {
		return []ChartSpec{QueryComparisonChart(inDir, outDir)}
	},
}

// PresetNames returns the names accepted by Preset, sorted.
func PresetNames() []string {
	var names []string
	for name := range presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Preset returns the charts of the named preset.
func Preset(name, inDir, outDir string) ([]ChartSpec, error) {
	f, ok := presets[name]
	if !ok {
		return nil, fmt.Errorf("unknown preset %q (have %v)", name, PresetNames())
	}
	return f(inDir, outDir), nil
}
