// Copyright 2026 Tamás Gulácsi.
//
// SPDX-License-Identifier: Apache-2.0

package xlsx

import (
	"fmt"

	"github.com/UNO-SOFT/fluentsheet"
	"github.com/mattn/go-runewidth"
	"github.com/xuri/excelize/v2"
)

var _ = (fluentsheet.Sheet)((*Sheet)(nil))

// MaxRowCount is the number of maximum rows.
const MaxRowCount = excelize.TotalRows

// Sheet is a cursor on a worksheet.
type Sheet struct {
	book *Book
	name string
	// next is the index AppendRow writes to, valid if counted.
	next    int
	counted bool
}

// Name of the worksheet.
func (s *Sheet) Name() string { return s.name }

// Done returns the Book of the sheet.
func (s *Sheet) Done() *Book { return s.book }

// Row returns the row at the zero-based index.
func (s *Sheet) Row(index int) *Row { return &Row{sheet: s, index: index} }

// Cell returns the cell at the zero-based row and column.
// Its End returns the row, not the sheet.
func (s *Sheet) Cell(row, col int) *Cell { return s.Row(row).Cell(col) }

// SetValue sets the value of the cell at row, col.
func (s *Sheet) SetValue(row, col int, value any) *Sheet {
	s.Cell(row, col).SetValue(value)
	return s
}

// RowCount returns the number of rows holding at least one non-empty cell.
func (s *Sheet) RowCount() (int, error) {
	rows, err := s.rows(true)
	if err != nil {
		return 0, err
	}
	var n int
	for _, row := range rows {
		for _, v := range row {
			if v != "" {
				n++
				break
			}
		}
	}
	return n, nil
}

// Erase removes every row of the sheet.
func (s *Sheet) Erase() *Sheet {
	b := s.book
	if b.err != nil {
		return s
	}
	rows, err := s.rows(true)
	if err != nil {
		b.setErr(err)
		return s
	}
	last := len(rows)
	if dim, err := b.xl.GetSheetDimension(s.name); err == nil {
		if n := dimensionLastRow(dim); n > last {
			last = n
		}
	}
	for r := last; r >= 1; r-- {
		if err := b.xl.RemoveRow(s.name, r); err != nil {
			b.setErr(fmt.Errorf("%s: remove row %d: %w", s.name, r, err))
			return s
		}
	}
	s.next, s.counted = 0, true
	b.logger.Debug("erased", "sheet", s.name, "rows", last)
	return s
}

// dimensionLastRow returns the last row of a dimension reference like "A1:C3".
func dimensionLastRow(dim string) int {
	for i := len(dim) - 1; i >= 0; i-- {
		if dim[i] == ':' {
			dim = dim[i+1:]
			break
		}
	}
	if _, row, err := excelize.CellNameToCoordinates(dim); err == nil {
		return row
	}
	return 0
}

// AutosizeColumn sets the width of the zero-based column to fit its widest
// formatted value. Empty columns are left alone.
func (s *Sheet) AutosizeColumn(col int) *Sheet {
	b := s.book
	if b.err != nil {
		return s
	}
	name, err := excelize.ColumnNumberToName(col + 1)
	if err != nil {
		b.setErr(fmt.Errorf("%s: column %d: %w", s.name, col, err))
		return s
	}
	rows, err := s.rows(false)
	if err != nil {
		b.setErr(err)
		return s
	}
	var width int
	for _, row := range rows {
		if col < len(row) {
			width = max(width, runewidth.StringWidth(row[col]))
		}
	}
	if width == 0 {
		return s
	}
	w := min(float64(width)*1.1+2, float64(excelize.MaxColumnWidth))
	if err = b.xl.SetColWidth(s.name, name, name, w); err != nil {
		b.setErr(fmt.Errorf("%s: width of %s: %w", s.name, name, err))
	}
	return s
}

// AppendRow writes values into the row after the last non-empty one.
func (s *Sheet) AppendRow(values ...any) error {
	b := s.book
	if b.err != nil {
		return b.err
	}
	if !s.counted {
		rows, err := s.rows(true)
		if err != nil {
			return err
		}
		s.next, s.counted = len(rows), true
	}
	if s.next >= MaxRowCount {
		return fluentsheet.ErrTooManyRows
	}
	s.Row(s.next).SetValues(values...)
	s.next++
	return b.err
}

// Close is a no-op, to satisfy fluentsheet.Sheet.
func (s *Sheet) Close() error { return nil }

func (s *Sheet) rows(raw bool) ([][]string, error) {
	xl, err := s.book.file()
	if err != nil {
		return nil, err
	}
	var rows [][]string
	if raw {
		rows, err = xl.GetRows(s.name, excelize.Options{RawCellValue: true})
	} else {
		rows, err = xl.GetRows(s.name)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: rows: %w", s.name, err)
	}
	return rows, nil
}
