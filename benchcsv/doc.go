// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package benchcsv reads tables of benchmark results.
//
// A table is a delimited text file (CSV or TSV) or an XLSX worksheet
// whose first row names the columns. Every following row is one
// measurement. Tables are loaded into an immutable Dataset whose cells
// keep their literal text, so that x-axis labels can be rendered
// exactly as written; numeric access parses cells on demand.
//
// Errors returned by this package match one of two sentinels under
// errors.Is: ErrNotFound when an input file does not exist, and
// ErrMalformed when the input exists but cannot be interpreted as the
// caller asked (missing column, non-numeric cell, ragged row, ...).
package benchcsv
