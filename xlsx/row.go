// Copyright 2026 Tamás Gulácsi.
//
// SPDX-License-Identifier: Apache-2.0

package xlsx

// Row is a cursor on a worksheet row.
type Row struct {
	sheet *Sheet
	index int
}

// Index is the zero-based row index.
func (r *Row) Index() int { return r.index }

// Cell returns the cell at the zero-based column.
func (r *Row) Cell(col int) *Cell { return &Cell{row: r, col: col} }

// SetValues sets the cells of the row from column 0 onwards.
func (r *Row) SetValues(values ...any) *Row {
	for i, v := range values {
		if r.sheet.book.err != nil {
			break
		}
		r.Cell(i).SetValue(v)
	}
	return r
}

// End returns the sheet of the row.
func (r *Row) End() *Sheet { return r.sheet }
