// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchcsv

import (
	"strings"
	"testing"
)

func TestWriter(t *testing.T) {
	var buf strings.Builder
	w := NewWriter(&buf, "Data Size", "put")
	if err := w.Write("1", "0.5"); err != nil {
		t.Fatal(err)
	}
	if err := w.Write("a,b", "2"); err != nil {
		t.Fatal(err)
	}
	if err := w.Write("too", "many", "cells"); err == nil {
		t.Error("want error for wrong cell count")
	}
	if err := w.Flush(); err != nil {
		t.Fatal(err)
	}
	want := "Data Size,put\n1,0.5\n\"a,b\",2\n"
	if got := buf.String(); got != want {
		t.Errorf("got:\n%s\nwant:\n%s", got, want)
	}

	// A table with no rows still has a header, and it round-trips.
	buf.Reset()
	if err := NewWriter(&buf, "Key", "Value").Flush(); err != nil {
		t.Fatal(err)
	}
	ds, err := Read(strings.NewReader(buf.String()), "out", ',')
	if err != nil {
		t.Fatal(err)
	}
	if ds.Len() != 0 || !ds.Has("Value") {
		t.Errorf("round trip: Len=%d columns=%q", ds.Len(), ds.Columns())
	}
}
