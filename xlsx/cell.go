// Copyright 2026 Tamás Gulácsi.
//
// SPDX-License-Identifier: Apache-2.0

package xlsx

import (
	"fmt"
	"strconv"
	"time"

	"github.com/UNO-SOFT/fluentsheet"
	"github.com/xuri/excelize/v2"
)

// Cell is a cursor on a single cell.
//
// Style toggles and SetValue are independent: a format set after the
// value applies just as well as one set before it.
type Cell struct {
	row *Row
	col int
}

func (c *Cell) book() *Book { return c.row.sheet.book }

// Axis returns the A1-style name of the cell, or "" for invalid coordinates.
func (c *Cell) Axis() string {
	axis, _ := c.axis()
	return axis
}

func (c *Cell) axis() (string, error) {
	axis, err := excelize.CoordinatesToCellName(c.col+1, c.row.index+1)
	if err != nil {
		return "", fmt.Errorf("%s: %d/%d: %w", c.row.sheet.name, c.row.index, c.col, err)
	}
	return axis, nil
}

// End returns the row of the cell.
func (c *Cell) End() *Row { return c.row }

// Bold sets the font of the cell to bold.
func (c *Cell) Bold() *Cell {
	return c.restyle(func(s *fluentsheet.Style) { s.FontBold = true })
}

// Currency formats the cell with the Book's currency format.
func (c *Cell) Currency() *Cell {
	format := c.book().currencyFormat
	return c.Format(format)
}

// Format sets the number (or date) format of the cell, like "dd-mmm-yy".
// An empty pattern removes the format.
func (c *Cell) Format(pattern string) *Cell {
	return c.restyle(func(s *fluentsheet.Style) { s.Format, s.NumFmt = pattern, 0 })
}

func (c *Cell) restyle(fn func(*fluentsheet.Style)) *Cell {
	b := c.book()
	if b.err != nil {
		return c
	}
	if err := c.setStyle(fn); err != nil {
		b.setErr(err)
	}
	return c
}

func (c *Cell) setStyle(fn func(*fluentsheet.Style)) error {
	b := c.book()
	axis, err := c.axis()
	if err != nil {
		return err
	}
	sheet := c.row.sheet.name
	base, err := b.xl.GetCellStyle(sheet, axis)
	if err != nil {
		return fmt.Errorf("%s[%s]: %w", sheet, axis, err)
	}
	id, err := b.styles.restyle(base, fn)
	if err != nil {
		return fmt.Errorf("%s[%s]: %w", sheet, axis, err)
	}
	if id == base {
		return nil
	}
	if err = b.xl.SetCellStyle(sheet, axis, axis, id); err != nil {
		return fmt.Errorf("%s[%s]: %w", sheet, axis, err)
	}
	return nil
}

// SetValue writes value into the cell.
//
// Strings, numbers, bools, time.Time, fluentsheet.Number, fmt.Stringer and
// driver.Valuer (sql.Null*) are accepted; nil clears the value.
// A date written into a cell without a number format gets the Book's date format;
// dates are stored as wall clock time in the Book's location.
func (c *Cell) SetValue(value any) *Cell {
	b := c.book()
	if b.err != nil {
		return c
	}
	if err := c.setValue(value); err != nil {
		b.setErr(err)
	}
	return c
}

func (c *Cell) setValue(value any) error {
	b := c.book()
	axis, err := c.axis()
	if err != nil {
		return err
	}
	sheet := c.row.sheet.name
	v, err := cellValue(value)
	if err != nil {
		return fmt.Errorf("%s[%s]: %w", sheet, axis, err)
	}
	switch x := v.(type) {
	case time.Time:
		if err = c.setStyle(func(s *fluentsheet.Style) {
			if !s.HasNumberFormat() {
				s.Format = b.dateFormat
			}
		}); err != nil {
			return err
		}
		err = b.xl.SetCellValue(sheet, axis, x.In(b.location))
	case string:
		err = b.xl.SetCellStr(sheet, axis, x)
	default:
		err = b.xl.SetCellValue(sheet, axis, x)
	}
	if err != nil {
		return fmt.Errorf("%s[%s]: %w", sheet, axis, err)
	}
	return nil
}

// ValueAsString returns the value rendered with the cell's number format.
func (c *Cell) ValueAsString() (string, error) {
	return c.value(false)
}

// Float returns the numeric value of the cell. Dates are serial day numbers.
func (c *Cell) Float() (float64, error) {
	s, err := c.value(true)
	if err != nil {
		return 0, err
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("%s[%s]: %w", c.row.sheet.name, c.Axis(), err)
	}
	return f, nil
}

// Time returns the date value of the cell in the Book's location.
func (c *Cell) Time() (time.Time, error) {
	f, err := c.Float()
	if err != nil {
		return time.Time{}, err
	}
	props, err := c.book().xl.GetWorkbookProps()
	if err != nil {
		return time.Time{}, err
	}
	date1904 := props.Date1904 != nil && *props.Date1904
	t, err := excelize.ExcelDateToTime(f, date1904)
	if err != nil {
		return time.Time{}, err
	}
	// the serial date is wall clock time, excelize labels it UTC
	return time.Date(t.Year(), t.Month(), t.Day(),
		t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), c.book().location), nil
}

// Style returns the style descriptor of the cell.
func (c *Cell) Style() (fluentsheet.Style, error) {
	b := c.book()
	if _, err := b.file(); err != nil {
		return fluentsheet.Style{}, err
	}
	axis, err := c.axis()
	if err != nil {
		return fluentsheet.Style{}, err
	}
	id, err := b.xl.GetCellStyle(c.row.sheet.name, axis)
	if err != nil {
		return fluentsheet.Style{}, fmt.Errorf("%s[%s]: %w", c.row.sheet.name, axis, err)
	}
	return b.styles.describe(id)
}

// IsBold reports whether the font of the cell is bold.
func (c *Cell) IsBold() (bool, error) {
	style, err := c.Style()
	return style.FontBold, err
}

func (c *Cell) value(raw bool) (string, error) {
	xl, err := c.book().file()
	if err != nil {
		return "", err
	}
	axis, err := c.axis()
	if err != nil {
		return "", err
	}
	var s string
	if raw {
		s, err = xl.GetCellValue(c.row.sheet.name, axis, excelize.Options{RawCellValue: true})
	} else {
		s, err = xl.GetCellValue(c.row.sheet.name, axis)
	}
	if err != nil {
		return "", fmt.Errorf("%s[%s]: %w", c.row.sheet.name, axis, err)
	}
	return s, nil
}
