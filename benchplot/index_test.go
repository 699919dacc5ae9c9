// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchplot

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"
)

func TestWriteIndex(t *testing.T) {
	out := filepath.Join("tmp", "out")
	put := ThroughputCharts("testdata", out)[0]
	put.CSV = filepath.Join(out, "step2put.csv")
	results := []*Result{
		{Spec: put, Points: 6, YMin: 2.2, YMax: 2.4},
		{Spec: QueryComparisonChart("testdata", out), Points: 4, YMin: 870000, YMax: 1900000},
	}

	var buf bytes.Buffer
	if err := WriteIndex(&buf, "LSM <results>", out, results); err != nil {
		t.Fatal(err)
	}
	got := buf.String()
	for _, want := range []string{
		"<title>LSM &lt;results&gt;</title>",
		`<h2>put throughput over different data sizes</h2>`,
		`<img src="step2put.png"`,
		`<a href="step2put.csv">data</a>`,
		`<img src="report/query_throughput_comparison.png"`,
		"<p>4 points, y from 870k to 1900k queries/sec</p>",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("index does not contain %q:\n%s", want, got)
		}
	}
	if n := strings.Count(got, "<h2>"); n != 2 {
		t.Errorf("index has %d charts, want 2", n)
	}
}
