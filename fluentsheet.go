// Copyright 2020, 2026 Tamás Gulácsi.
//
// SPDX-License-Identifier: Apache-2.0

// Package fluentsheet holds the format-independent pieces of the fluent
// spreadsheet builder: the Writer/Sheet interfaces the export formats
// implement, the Style descriptor and the shared sentinel errors.
//
// The fluent Book → Sheet → Row → Cell API lives in the xlsx subpackage.
package fluentsheet

import (
	"errors"
	"io"
	"strconv"
)

// Writer writes the spreadsheet consisting of the sheets created
// with NewSheet. The write finishes when Close is called.
//
// Implementations document whether separate sheets may be written
// concurrently; none of the ones in this module allow it.
type Writer interface {
	io.Closer
	NewSheet(name string, cols []Column) (Sheet, error)
}

// Sheet should be Closed when finished.
type Sheet interface {
	io.Closer
	AppendRow(values ...any) error
}

// Style is a style for a column/row/cell.
type Style struct {
	// Format is the custom number format
	Format string
	// NumFmt is a built-in number format id, used only when Format is empty.
	NumFmt int
	// FontBold is true if the font is bold
	FontBold bool
}

// IsZero reports whether s is the default style.
func (s Style) IsZero() bool { return s == Style{} }

// HasNumberFormat reports whether s carries any number format.
func (s Style) HasNumberFormat() bool { return s.Format != "" || s.NumFmt != 0 }

// Column contains the Name of the column and header's style and column's style.
type Column struct {
	Name           string
	Header, Column Style
}

var (
	ErrTooManyRows = errors.New("too many rows")
	// ErrFileNotFound is returned when a workbook path does not resolve.
	ErrFileNotFound = errors.New("book file not found")
	// ErrUnsupportedValue is returned for cell values of unknown type.
	ErrUnsupportedValue = errors.New("unsupported cell value")
	// ErrClosed is returned by operations on a closed book.
	ErrClosed = errors.New("book is closed")
)

// Number is a string that contains a number.
type Number string

// Float64 parses the number.
func (n Number) Float64() (float64, error) { return strconv.ParseFloat(string(n), 64) }
