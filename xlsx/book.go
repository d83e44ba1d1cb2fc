// Copyright 2020, 2026 Tamás Gulácsi.
//
// SPDX-License-Identifier: Apache-2.0

// Package xlsx is a fluent builder over excelize workbooks.
//
//	book := xlsx.Create().
//		Sheet("Explore").
//		SetValue(0, 0, time.Now()).
//		Cell(0, 1).Format("dd-mmm-yy").SetValue(time.Now()).End().End().
//		Done()
//	err := book.Write("explore.xlsx")
//
// Cursors (Sheet, Row, Cell) are thin: they hold their coordinates and a
// pointer to their parent, and apply every call to the workbook at once.
// Chained calls cannot return errors, so the first failure is kept on the
// Book; later mutations are skipped and Err, Write, WriteTo and Close
// report it.
//
// A Book is not safe for concurrent use.
package xlsx

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/UNO-SOFT/fluentsheet"
	"github.com/xuri/excelize/v2"
)

// Book is the top-level handle of a workbook.
type Book struct {
	xl     *excelize.File
	styles *styleCache
	config
	err error
	// fresh is true until the first sheet of a Created book is requested,
	// which then renames excelize's placeholder sheet.
	fresh bool
}

// Create returns a new, empty Book.
func Create(opts ...Option) *Book {
	return newBook(excelize.NewFile(), true, opts)
}

// Open loads the workbook at path.
// A missing path yields an error wrapping fluentsheet.ErrFileNotFound.
func Open(path string, opts ...Option) (*Book, error) {
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("open %q: %w", path, fluentsheet.ErrFileNotFound)
		}
		return nil, fmt.Errorf("open %q: %w", path, err)
	}
	xl, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open %q: %w", path, err)
	}
	b := newBook(xl, false, opts)
	b.logger.Debug("opened", "path", path, "sheets", xl.GetSheetList())
	return b, nil
}

// OpenReader loads a workbook from r.
func OpenReader(r io.Reader, opts ...Option) (*Book, error) {
	xl, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("read workbook: %w", err)
	}
	return newBook(xl, false, opts), nil
}

func newBook(xl *excelize.File, fresh bool, opts []Option) *Book {
	c := newConfig(opts)
	return &Book{
		xl: xl, fresh: fresh,
		config: c,
		styles: newStyleCache(xl, c.logger),
	}
}

// Sheet returns the named sheet, creating it if it does not exist yet.
func (b *Book) Sheet(name string) *Sheet {
	s := &Sheet{book: b, name: name}
	if b.err != nil {
		return s
	}
	if b.fresh {
		b.fresh = false
		old := b.xl.GetSheetName(0)
		if old != name {
			if err := b.xl.SetSheetName(old, name); err != nil {
				b.setErr(fmt.Errorf("rename %q to %q: %w", old, name, err))
			}
		}
		return s
	}
	idx, err := b.xl.GetSheetIndex(name)
	if err != nil {
		b.setErr(fmt.Errorf("sheet %q: %w", name, err))
		return s
	}
	if idx < 0 {
		if _, err = b.xl.NewSheet(name); err != nil {
			b.setErr(fmt.Errorf("new sheet %q: %w", name, err))
		} else {
			b.logger.Debug("new sheet", "name", name)
		}
	}
	return s
}

// SheetNames returns the names of the sheets in workbook order.
func (b *Book) SheetNames() []string {
	if b.xl == nil || b.fresh {
		return nil
	}
	return b.xl.GetSheetList()
}

// Err returns the first error recorded by a chained call.
func (b *Book) Err() error { return b.err }

// Write saves the workbook to path.
func (b *Book) Write(path string) error {
	if b.err != nil {
		return b.err
	}
	if err := b.xl.SaveAs(path); err != nil {
		return fmt.Errorf("write %q: %w", path, err)
	}
	b.logger.Debug("written", "path", path)
	return nil
}

// WriteTo writes the workbook to w.
func (b *Book) WriteTo(w io.Writer) (int64, error) {
	if b.err != nil {
		return 0, b.err
	}
	return b.xl.WriteTo(w)
}

// Close releases the underlying workbook.
// It returns the first error recorded by a chained call, if any.
func (b *Book) Close() error {
	if b == nil || b.xl == nil {
		return nil
	}
	xl := b.xl
	b.xl = nil
	err := xl.Close()
	if b.err == nil {
		b.err = fluentsheet.ErrClosed
		return err
	}
	if errors.Is(b.err, fluentsheet.ErrClosed) {
		return err
	}
	return errors.Join(b.err, err)
}

// File returns the underlying excelize workbook, nil after Close.
func (b *Book) File() *excelize.File { return b.xl }

func (b *Book) file() (*excelize.File, error) {
	if b.xl == nil {
		return nil, fluentsheet.ErrClosed
	}
	return b.xl, nil
}

func (b *Book) setErr(err error) {
	if b.err == nil && err != nil {
		b.err = err
		b.logger.Debug("chain failed", "error", err)
	}
}
