// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchplot

import (
	"errors"

	"github.com/lsmtree/perf/benchcsv"
)

var (
	// ErrInputNotFound is matched by errors for chart inputs that
	// do not exist.
	ErrInputNotFound = benchcsv.ErrNotFound

	// ErrMalformedInput is matched by errors for chart inputs that
	// lack a column or hold a value that cannot be plotted.
	ErrMalformedInput = benchcsv.ErrMalformed

	// ErrWrite is matched by errors writing chart outputs.
	ErrWrite = errors.New("cannot write output")
)

// A WriteError reports a failure to write an output file.
type WriteError struct {
	Path string
	Err  error
}

func (e *WriteError) Error() string {
	return "writing " + e.Path + ": " + e.Err.Error()
}

func (e *WriteError) Unwrap() error {
	return e.Err
}

func (e *WriteError) Is(target error) bool {
	return target == ErrWrite
}
