// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchcsv

import (
	"encoding/csv"
	"fmt"
	"io"
)

// A Writer writes a table in CSV form. The header is emitted before
// the first row, or by Flush if no rows were written.
type Writer struct {
	w      *csv.Writer
	header []string
	first  bool
}

// NewWriter returns a Writer that writes a table with the given
// column names to w.
func NewWriter(w io.Writer, header ...string) *Writer {
	return &Writer{w: csv.NewWriter(w), header: header, first: true}
}

// Write writes one row. It must have one cell per header column.
func (w *Writer) Write(row ...string) error {
	if len(row) != len(w.header) {
		return fmt.Errorf("row has %d cells, header has %d", len(row), len(w.header))
	}
	if err := w.writeHeader(); err != nil {
		return err
	}
	return w.w.Write(row)
}

// Flush writes any buffered data to the underlying io.Writer.
func (w *Writer) Flush() error {
	if err := w.writeHeader(); err != nil {
		return err
	}
	w.w.Flush()
	return w.w.Error()
}

func (w *Writer) writeHeader() error {
	if !w.first {
		return nil
	}
	w.first = false
	return w.w.Write(w.header)
}
