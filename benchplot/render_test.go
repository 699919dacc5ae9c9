// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchplot

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/lsmtree/perf/benchseries"
)

// recordSink records charts instead of drawing them.
type recordSink struct {
	charts []*benchseries.Chart
	specs  []ChartSpec
	err    error
}

func (s *recordSink) Save(c *benchseries.Chart, spec ChartSpec) error {
	if s.err != nil {
		return s.err
	}
	s.charts = append(s.charts, c)
	s.specs = append(s.specs, spec)
	return nil
}

func writeFile(t *testing.T, name, data string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(data), 0666); err != nil {
		t.Fatal(err)
	}
	return path
}

func simpleSpec(input string, tr benchseries.Transform) ChartSpec {
	return ChartSpec{
		Name:   "test",
		Input:  input,
		X:      "Key",
		Y:      []benchseries.YSpec{{Column: "Value", Transform: tr}},
		Output: "unused.png",
	}
}

func TestRenderIdentity(t *testing.T) {
	sink := new(recordSink)
	r := &Renderer{Sink: sink}
	res, err := r.Render(QueryComparisonChart("testdata", "out"))
	if err != nil {
		t.Fatal(err)
	}
	if len(sink.charts) != 1 {
		t.Fatalf("saved %d charts, want 1", len(sink.charts))
	}
	c := sink.charts[0]
	if len(c.Series) != 2 {
		t.Fatalf("got %d series, want 2", len(c.Series))
	}

	wantLabels := []string{"1", "2", "4", "8"}
	want := map[string][]float64{
		"Binary Search": {1250000, 1100000, 980000, 870000},
		"B-Tree":        {1900000, 1750000, 1620000, 1500000},
	}
	for _, s := range c.Series {
		if diff := cmp.Diff(wantLabels, s.Labels); diff != "" {
			t.Errorf("%s: labels differ (-want +got):\n%s", s.Name, diff)
		}
		if diff := cmp.Diff(want[s.Name], s.Y); diff != "" {
			t.Errorf("%s: y differs (-want +got):\n%s", s.Name, diff)
		}
	}

	if res.Points != 4 {
		t.Errorf("got %d points, want 4", res.Points)
	}
	if res.YMin != 870000 || res.YMax != 1900000 {
		t.Errorf("got y bounds [%g, %g], want [870000, 1900000]", res.YMin, res.YMax)
	}
}

func TestRenderRatio(t *testing.T) {
	input := writeFile(t, "ratio.csv", "Key,Value\n1,2\n2,4\n")
	sink := new(recordSink)
	r := &Renderer{Sink: sink}
	if _, err := r.Render(simpleSpec(input, benchseries.Ratio)); err != nil {
		t.Fatal(err)
	}
	s := sink.charts[0].Series[0]
	if diff := cmp.Diff([]string{"1", "2"}, s.Labels); diff != "" {
		t.Errorf("labels differ (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]float64{0.5, 0.5}, s.Y); diff != "" {
		t.Errorf("y differs (-want +got):\n%s", diff)
	}
}

func TestRenderThroughput(t *testing.T) {
	sink := new(recordSink)
	r := &Renderer{Sink: sink}
	results, err := r.RenderAll(ThroughputCharts("testdata", "out"))
	if err != nil {
		t.Fatal(err)
	}
	if len(results) != len(Operations) || len(sink.charts) != len(Operations) {
		t.Fatalf("got %d results and %d charts, want %d", len(results), len(sink.charts), len(Operations))
	}

	keys := []float64{1, 2, 4, 8, 16, 32}
	vals := map[string][]float64{
		"put":  {0.42, 0.81, 1.7, 3.35, 6.9, 14.2},
		"get":  {0.0021, 0.0024, 0.0029, 0.0035, 0.0042, 0.0051},
		"scan": {0.011, 0.012, 0.014, 0.017, 0.02, 0.026},
	}
	for i, op := range Operations {
		var want []float64
		for j, v := range vals[op] {
			if op == "put" {
				want = append(want, keys[j]/v)
			} else {
				want = append(want, 1/v)
			}
		}
		s := sink.charts[i].Series[0]
		if s.Len() != len(keys) {
			t.Errorf("%s: got %d points, want %d", op, s.Len(), len(keys))
		}
		if diff := cmp.Diff(want, s.Y); diff != "" {
			t.Errorf("%s: y differs (-want +got):\n%s", op, diff)
		}
		if s.Name != "Memtable Size: 1 MB" {
			t.Errorf("%s: legend %q", op, s.Name)
		}
	}
}

func TestRenderErrors(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "missing.csv")
	for _, test := range []struct {
		name string
		spec ChartSpec
		want error
	}{
		{"missing file", simpleSpec(missing, benchseries.Identity), ErrInputNotFound},
		{"missing column", simpleSpec("testdata/nocolumn.csv", benchseries.Identity), ErrMalformedInput},
		{"zero reciprocal", simpleSpec("testdata/zero.csv", benchseries.Reciprocal), ErrMalformedInput},
		{"zero ratio", simpleSpec("testdata/zero.csv", benchseries.Ratio), ErrMalformedInput},
		{"empty table", simpleSpec(writeFile(t, "empty.csv", "Key,Value\n"), benchseries.Identity), ErrMalformedInput},
		{"not a number", simpleSpec(writeFile(t, "nan.csv", "Key,Value\n1,fast\n"), benchseries.Identity), ErrMalformedInput},
	} {
		t.Run(test.name, func(t *testing.T) {
			sink := new(recordSink)
			r := &Renderer{Sink: sink}
			_, err := r.Render(test.spec)
			if !errors.Is(err, test.want) {
				t.Fatalf("got error %v, want %v", err, test.want)
			}
			if len(sink.charts) != 0 {
				t.Errorf("saved %d charts after error", len(sink.charts))
			}
		})
	}
}

func TestRenderMissingInputWritesNothing(t *testing.T) {
	out := t.TempDir()
	spec := ThroughputCharts(t.TempDir(), out)[0]
	r := new(Renderer)
	if _, err := r.Render(spec); !errors.Is(err, ErrInputNotFound) {
		t.Fatalf("got error %v, want %v", err, ErrInputNotFound)
	}
	ents, err := os.ReadDir(out)
	if err != nil {
		t.Fatal(err)
	}
	if len(ents) != 0 {
		t.Errorf("output directory has %d entries, want 0", len(ents))
	}
}

func TestRenderSinkError(t *testing.T) {
	werr := &WriteError{Path: "x.png", Err: os.ErrPermission}
	r := &Renderer{Sink: &recordSink{err: werr}}
	_, err := r.Render(QueryComparisonChart("testdata", "out"))
	if !errors.Is(err, ErrWrite) {
		t.Errorf("got error %v, want %v", err, ErrWrite)
	}
	if !errors.Is(err, os.ErrPermission) {
		t.Errorf("error %v does not wrap %v", err, os.ErrPermission)
	}
}

func TestRenderAllStops(t *testing.T) {
	good := QueryComparisonChart("testdata", "out")
	bad := simpleSpec(filepath.Join(t.TempDir(), "missing.csv"), benchseries.Identity)
	sink := new(recordSink)
	r := &Renderer{Sink: sink}
	results, err := r.RenderAll([]ChartSpec{good, bad, good})
	if !errors.Is(err, ErrInputNotFound) {
		t.Fatalf("got error %v, want %v", err, ErrInputNotFound)
	}
	if len(results) != 1 || len(sink.charts) != 1 {
		t.Errorf("got %d results and %d charts, want 1 and 1", len(results), len(sink.charts))
	}
}

func TestRenderLog(t *testing.T) {
	var log []string
	r := &Renderer{
		Sink: new(recordSink),
		Logf: func(format string, args ...interface{}) {
			log = append(log, fmt.Sprintf(format, args...))
		},
	}
	if _, err := r.Render(QueryComparisonChart("testdata", "out")); err != nil {
		t.Fatal(err)
	}
	if len(log) != 1 {
		t.Fatalf("got %d log lines, want 1", len(log))
	}
	if !strings.HasPrefix(log[0], "btree: 2 series of 4 points") {
		t.Errorf("unexpected log line %q", log[0])
	}
}
