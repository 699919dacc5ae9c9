// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchcsv

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

// readXLSX reads one worksheet of an XLSX workbook. The first
// non-empty row is the header. Completely empty rows are skipped, and
// rows shorter than the header are padded with empty cells, since
// workbooks do not store trailing blank cells.
func readXLSX(path, sheet string) (*Dataset, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, &SyntaxError{FileName: path, Msg: fmt.Sprintf("not a workbook: %v", err)}
	}
	defer f.Close()

	if sheet == "" {
		sheets := f.GetSheetList()
		if len(sheets) == 0 {
			return nil, &SyntaxError{FileName: path, Msg: "workbook has no sheets"}
		}
		sheet = sheets[0]
	}
	name := path + "#" + sheet

	all, err := f.GetRows(sheet)
	if err != nil {
		return nil, &SyntaxError{FileName: name, Msg: err.Error()}
	}

	var header []string
	var rows [][]string
	var lines []int
	for i, row := range all {
		if isBlank(row) {
			continue
		}
		if header == nil {
			header = row
			continue
		}
		if len(row) > len(header) {
			return nil, &SyntaxError{name, i + 1, fmt.Sprintf("row has %d cells, header has %d", len(row), len(header))}
		}
		for len(row) < len(header) {
			row = append(row, "")
		}
		rows = append(rows, row)
		lines = append(lines, i+1)
	}
	if header == nil {
		return nil, &SyntaxError{name, 1, "missing header row"}
	}
	return newDataset(name, header, rows, lines)
}

func isBlank(row []string) bool {
	for _, c := range row {
		if c != "" {
			return false
		}
	}
	return true
}
