// Copyright 2020, 2023, 2026 Tamás Gulácsi.
//
// SPDX-License-Identifier: Apache-2.0

package xlsx

import (
	"fmt"
	"io"

	"github.com/UNO-SOFT/fluentsheet"
	"github.com/xuri/excelize/v2"
)

var _ = (fluentsheet.Writer)((*Writer)(nil))

// Writer is a fluentsheet.Writer building a Book and writing it
// to w on Close.
//
// This writer collects everything in memory, so big sheets may impose problems.
// Sheets must not be written concurrently.
type Writer struct {
	w    io.Writer
	book *Book
}

// NewWriter returns a new fluentsheet.Writer.
func NewWriter(w io.Writer, opts ...Option) *Writer {
	return &Writer{w: w, book: Create(opts...)}
}

// Book returns the Book under construction.
func (xlw *Writer) Book() *Book { return xlw.book }

// Close writes the workbook and releases it.
func (xlw *Writer) Close() error {
	if xlw == nil || xlw.w == nil {
		return nil
	}
	w, book := xlw.w, xlw.book
	xlw.w = nil
	_, err := book.WriteTo(w)
	if closeErr := book.Close(); err == nil {
		err = closeErr
	}
	return err
}

// NewSheet creates the sheet with a header row from the named columns.
// Column styles apply to the whole column, header styles to the header cell.
func (xlw *Writer) NewSheet(name string, columns []fluentsheet.Column) (fluentsheet.Sheet, error) {
	b := xlw.book
	sheet := b.Sheet(name)
	if b.err != nil {
		return nil, b.err
	}
	var hasHeader bool
	for i, c := range columns {
		col, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return nil, err
		}
		if !c.Column.IsZero() {
			s, err := b.styles.get(c.Column)
			if err != nil {
				return nil, err
			}
			if err = b.xl.SetColStyle(name, col, s); err != nil {
				return nil, fmt.Errorf("%s: style of %s: %w", name, col, err)
			}
		}
		cell := sheet.Cell(0, i)
		if !c.Header.IsZero() {
			header := c.Header
			cell.restyle(func(s *fluentsheet.Style) {
				s.FontBold = s.FontBold || header.FontBold
				if header.HasNumberFormat() {
					s.Format, s.NumFmt = header.Format, header.NumFmt
				}
			})
		}
		if c.Name != "" {
			hasHeader = true
			cell.SetValue(c.Name)
		}
		if b.err != nil {
			return nil, b.err
		}
	}
	if hasHeader {
		sheet.next, sheet.counted = 1, true
	}
	return sheet, nil
}
