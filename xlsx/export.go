// Copyright 2026 Tamás Gulácsi.
//
// SPDX-License-Identifier: Apache-2.0

package xlsx

import (
	"fmt"
	"math"
	"strconv"

	"github.com/UNO-SOFT/fluentsheet"
)

// Export copies every sheet of the book into w, in workbook order.
// A first row of bold, non-empty cells becomes the column header.
// Numbers without a number format are passed as fluentsheet.Number,
// everything else as its formatted string.
//
// w is not closed.
func (b *Book) Export(w fluentsheet.Writer) error {
	if b.err != nil {
		return b.err
	}
	for _, name := range b.SheetNames() {
		if err := b.exportSheet(w, b.Sheet(name)); err != nil {
			return fmt.Errorf("export %q: %w", name, err)
		}
	}
	return nil
}

func (b *Book) exportSheet(w fluentsheet.Writer, s *Sheet) error {
	rows, err := s.rows(false)
	if err != nil {
		return err
	}
	raw, err := s.rows(true)
	if err != nil {
		return err
	}
	cols, err := s.header(rows)
	if err != nil {
		return err
	}
	if cols != nil {
		rows, raw = rows[1:], raw[1:]
	}
	sheet, err := w.NewSheet(s.name, cols)
	if err != nil {
		return err
	}
	var values []any
	for i, row := range rows {
		values = values[:0]
		for j, v := range row {
			var r string
			if i < len(raw) && j < len(raw[i]) {
				r = raw[i][j]
			}
			values = append(values, exportValue(v, r))
		}
		if err = sheet.AppendRow(values...); err != nil {
			return err
		}
	}
	b.logger.Debug("exported", "sheet", s.name, "rows", len(rows), "header", cols != nil)
	return sheet.Close()
}

// header returns the columns of rows[0] if it is a header row.
func (s *Sheet) header(rows [][]string) ([]fluentsheet.Column, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, nil
	}
	cols := make([]fluentsheet.Column, len(rows[0]))
	for i, v := range rows[0] {
		if v == "" {
			return nil, nil
		}
		bold, err := s.Cell(0, i).IsBold()
		if err != nil || !bold {
			return nil, err
		}
		cols[i] = fluentsheet.Column{Name: v, Header: fluentsheet.Style{FontBold: true}}
	}
	return cols, nil
}

func exportValue(formatted, raw string) any {
	if formatted != "" && formatted == raw {
		if f, err := strconv.ParseFloat(raw, 64); err == nil && !math.IsInf(f, 0) && !math.IsNaN(f) {
			return fluentsheet.Number(raw)
		}
	}
	return formatted
}
