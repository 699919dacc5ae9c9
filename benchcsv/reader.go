// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchcsv

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// Options control how Load interprets a table file.
type Options struct {
	// Comma is the field delimiter for delimited files. If zero,
	// it is chosen from the file extension: tab for ".tsv" and
	// ".tab", comma otherwise.
	Comma rune

	// Sheet names the worksheet to read from an XLSX workbook.
	// If empty, the first sheet is used.
	Sheet string
}

// Load reads the table stored at path.
//
// Files ending in ".xlsx" are read as workbooks; everything else is
// read as delimited text. If path does not exist, the returned error
// matches ErrNotFound.
func Load(path string, opts *Options) (*Dataset, error) {
	if opts == nil {
		opts = new(Options)
	}
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %w", ErrNotFound, err)
		}
		return nil, err
	}

	ext := strings.ToLower(filepath.Ext(path))
	if ext == ".xlsx" {
		return readXLSX(path, opts.Sheet)
	}

	comma := opts.Comma
	if comma == 0 {
		comma = ','
		if ext == ".tsv" || ext == ".tab" {
			comma = '\t'
		}
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Read(f, path, comma)
}

// Read reads a delimited table from r. The first record is the
// header; every following record must have the same number of fields.
// fileName is used in error messages; it is purely diagnostic.
func Read(r io.Reader, fileName string, comma rune) (*Dataset, error) {
	cr := csv.NewReader(r)
	cr.Comma = comma

	header, err := cr.Read()
	if err == io.EOF {
		return nil, &SyntaxError{fileName, 1, "missing header row"}
	} else if err != nil {
		return nil, readError(fileName, err)
	}

	var rows [][]string
	var lines []int
	for {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		} else if err != nil {
			return nil, readError(fileName, err)
		}
		line, _ := cr.FieldPos(0)
		rows = append(rows, rec)
		lines = append(lines, line)
	}
	return newDataset(fileName, header, rows, lines)
}

// readError converts an error from encoding/csv into a *SyntaxError
// when it describes the input's content.
func readError(fileName string, err error) error {
	var pe *csv.ParseError
	if errors.As(err, &pe) {
		return &SyntaxError{fileName, pe.Line, pe.Err.Error()}
	}
	return fmt.Errorf("reading %s: %w", fileName, err)
}
