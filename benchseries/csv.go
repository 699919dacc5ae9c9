// Copyright 2022 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchseries

import (
	"fmt"
	"io"

	"github.com/lsmtree/perf/benchcsv"
	"github.com/lsmtree/perf/benchunit"
)

// WriteCSV writes series as a table with one row per x label. The
// first column, named xName, holds the labels; each series follows in
// a column named after its legend text. All series must share labels.
func WriteCSV(out io.Writer, xName string, series ...*Series) error {
	if len(series) == 0 {
		return fmt.Errorf("no series to write")
	}
	hdr := []string{xName}
	for _, s := range series {
		if !sameLabels(series[0].Labels, s.Labels) || len(s.Y) != len(s.Labels) {
			return fmt.Errorf("series %q does not match the x values of %q", s.Name, series[0].Name)
		}
		hdr = append(hdr, s.Name)
	}

	w := benchcsv.NewWriter(out, hdr...)
	row := make([]string, len(hdr))
	for i, label := range series[0].Labels {
		row[0] = label
		for j, s := range series {
			row[j+1] = benchunit.NoOpScaler.Format(s.Y[i])
		}
		if err := w.Write(row...); err != nil {
			return err
		}
	}
	return w.Flush()
}
