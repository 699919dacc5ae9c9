// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchcsv

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrNotFound is matched by errors for input files that do not exist.
	ErrNotFound = errors.New("input not found")

	// ErrMalformed is matched by errors for inputs that exist but
	// do not have the required shape or content.
	ErrMalformed = errors.New("malformed input")
)

// A SyntaxError represents a problem with the content of a particular
// line of a table file.
type SyntaxError struct {
	FileName string
	Line     int // 1-based; 0 if the error is not tied to a line
	Msg      string
}

func (e *SyntaxError) Pos() (fileName string, line int) {
	return e.FileName, e.Line
}

func (e *SyntaxError) Error() string {
	if e.Line == 0 {
		return fmt.Sprintf("%s: %s", e.FileName, e.Msg)
	}
	return fmt.Sprintf("%s:%d: %s", e.FileName, e.Line, e.Msg)
}

func (e *SyntaxError) Is(target error) bool {
	return target == ErrMalformed
}

// A ColumnError reports a reference to a column that a table does not
// have.
type ColumnError struct {
	FileName string
	Column   string
	Have     []string
}

func (e *ColumnError) Error() string {
	return fmt.Sprintf("%s: no column %q (have %s)", e.FileName, e.Column, quoteAll(e.Have))
}

func (e *ColumnError) Is(target error) bool {
	return target == ErrMalformed
}

func quoteAll(ss []string) string {
	q := make([]string, len(ss))
	for i, s := range ss {
		q[i] = fmt.Sprintf("%q", s)
	}
	return strings.Join(q, ", ")
}
