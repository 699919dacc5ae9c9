// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchplot

import (
	"bufio"
	"io"
	"os"
	"path/filepath"

	"github.com/lsmtree/perf/benchseries"
)

// A Sink stores rendered charts.
type Sink interface {
	// Save stores c, which was derived from spec. It either stores
	// all of c or nothing.
	Save(c *benchseries.Chart, spec ChartSpec) error
}

// FileSink saves charts to the files their specs name, creating
// parent directories as needed. If spec.CSV is set, the derived
// series are written there too.
//
// Each file is written to a temporary file in the same directory and
// renamed into place, so a failed save never leaves a partial file.
type FileSink struct{}

func (FileSink) Save(c *benchseries.Chart, spec ChartSpec) error {
	cv, err := spec.Canvas()
	if err != nil {
		return err
	}
	err = writeAtomic(spec.Output, func(w io.Writer) error {
		_, err := c.Encode(w, cv)
		return err
	})
	if err != nil {
		return err
	}
	if spec.CSV == "" {
		return nil
	}
	return writeAtomic(spec.CSV, func(w io.Writer) error {
		return benchseries.WriteCSV(w, spec.X, c.Series...)
	})
}

// writeAtomic replaces the file at path with what write produces.
func writeAtomic(path string, write func(w io.Writer) error) (err error) {
	defer func() {
		if err != nil {
			err = &WriteError{Path: path, Err: err}
		}
	}()

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0777); err != nil {
		return err
	}
	f, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*")
	if err != nil {
		return err
	}
	tmp := f.Name()
	defer func() {
		if err != nil {
			f.Close()
			os.Remove(tmp)
		}
	}()

	bw := bufio.NewWriter(f)
	if err := write(bw); err != nil {
		return err
	}
	if err := bw.Flush(); err != nil {
		return err
	}
	if err := f.Chmod(0644); err != nil {
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	return os.Rename(tmp, path)
}
