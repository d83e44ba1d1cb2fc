// Copyright 2020, 2026 Tamás Gulácsi.
//
// SPDX-License-Identifier: Apache-2.0

// Package ods writes OpenDocument spreadsheets.
package ods

import (
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/UNO-SOFT/fluentsheet"
	"github.com/klauspost/compress/zip"
	"github.com/valyala/quicktemplate"
)

var _ = (fluentsheet.Writer)((*Writer)(nil))

const mimetype = "application/vnd.oasis.opendocument.spreadsheet"

// Writer streams the sheets into content.xml of the ods zip.
//
// Sheets are written one after the other: NewSheet finishes the previous
// sheet, so sheets must not be written concurrently.
type Writer struct {
	zw    *zip.Writer
	qw    *quicktemplate.Writer
	sheet *Sheet
}

// Sheet of an ods Writer.
type Sheet struct {
	w    *Writer
	cols []fluentsheet.Column
	rows int
}

// NewWriter starts the ods document on w.
func NewWriter(w io.Writer) (*Writer, error) {
	zw := zip.NewWriter(w)
	// mimetype must be the first, uncompressed entry.
	fh, err := zw.CreateHeader(&zip.FileHeader{Name: "mimetype", Method: zip.Store})
	if err != nil {
		return nil, err
	}
	if _, err = io.WriteString(fh, mimetype); err != nil {
		return nil, err
	}
	if fh, err = zw.Create("META-INF/manifest.xml"); err != nil {
		return nil, err
	}
	if _, err = io.WriteString(fh, manifest); err != nil {
		return nil, err
	}
	if fh, err = zw.Create("content.xml"); err != nil {
		return nil, err
	}
	qw := quicktemplate.AcquireWriter(fh)
	qw.N().S(contentHead)
	return &Writer{zw: zw, qw: qw}, nil
}

// NewSheet starts a new table with a header row from the named columns.
func (w *Writer) NewSheet(name string, cols []fluentsheet.Column) (fluentsheet.Sheet, error) {
	if w.zw == nil {
		return nil, fluentsheet.ErrClosed
	}
	w.endSheet()
	qn, qe := w.qw.N(), w.qw.E()
	qn.S(`<table:table table:name="`)
	qe.S(name)
	qn.S(`">`)
	for _, c := range cols {
		qn.S(`<table:table-column table:style-name="co1"`)
		if style := cellStyle(c.Column); style != "" {
			qn.S(` table:default-cell-style-name="`)
			qn.S(style)
			qn.S(`"`)
		}
		qn.S(`/>`)
	}
	w.sheet = &Sheet{w: w, cols: cols}
	var hasHeader bool
	for _, c := range cols {
		if c.Name != "" {
			hasHeader = true
			break
		}
	}
	if hasHeader {
		qn.S(`<table:table-row>`)
		for _, c := range cols {
			w.cell(c.Name, cellStyle(c.Header))
		}
		qn.S(`</table:table-row>`)
		w.sheet.rows++
	}
	return w.sheet, nil
}

// MaxRowCount is the number of maximum rows of a table.
const MaxRowCount = 1_048_576

// AppendRow writes a row into the table.
func (s *Sheet) AppendRow(values ...any) error {
	w := s.w
	if w.sheet != s {
		return fmt.Errorf("sheet is finished: %w", fluentsheet.ErrClosed)
	}
	if s.rows >= MaxRowCount {
		return fluentsheet.ErrTooManyRows
	}
	s.rows++
	qn := w.qw.N()
	qn.S(`<table:table-row>`)
	for i, v := range values {
		var style string
		if i < len(s.cols) {
			style = cellStyle(s.cols[i].Column)
		}
		w.cell(v, style)
	}
	qn.S(`</table:table-row>`)
	return nil
}

// Close finishes the table; the next NewSheet or Writer.Close does the same.
func (s *Sheet) Close() error {
	if s.w.sheet == s {
		s.w.endSheet()
	}
	return nil
}

func (w *Writer) endSheet() {
	if w.sheet == nil {
		return
	}
	qn := w.qw.N()
	if w.sheet.rows == 0 {
		// a table needs at least one row
		qn.S(`<table:table-row><table:table-cell/></table:table-row>`)
	}
	qn.S(`</table:table>`)
	w.sheet = nil
}

func (w *Writer) cell(v any, style string) {
	qn, qe := w.qw.N(), w.qw.E()
	qn.S(`<table:table-cell`)
	if style != "" {
		qn.S(` table:style-name="`)
		qn.S(style)
		qn.S(`"`)
	}
	var text string
	switch x := v.(type) {
	case nil:
		qn.S(`/>`)
		return
	case time.Time:
		if x.IsZero() {
			qn.S(`/>`)
			return
		}
		qn.S(` office:value-type="date" office:date-value="`)
		qn.S(x.Format("2006-01-02T15:04:05"))
		qn.S(`"`)
		text = x.Format("2006-01-02")
	case fluentsheet.Number:
		if _, err := strconv.ParseFloat(string(x), 64); err == nil {
			qn.S(` office:value-type="float" office:value="`)
			qe.S(string(x))
			qn.S(`"`)
		} else {
			qn.S(` office:value-type="string"`)
		}
		text = string(x)
	case float64:
		text = strconv.FormatFloat(x, 'f', -1, 64)
		qn.S(` office:value-type="float" office:value="`)
		qn.S(text)
		qn.S(`"`)
	case int:
		text = strconv.Itoa(x)
		qn.S(` office:value-type="float" office:value="`)
		qn.S(text)
		qn.S(`"`)
	case int64:
		text = strconv.FormatInt(x, 10)
		qn.S(` office:value-type="float" office:value="`)
		qn.S(text)
		qn.S(`"`)
	case bool:
		text = strconv.FormatBool(x)
		qn.S(` office:value-type="boolean" office:boolean-value="`)
		qn.S(text)
		qn.S(`"`)
	case string:
		text = x
		qn.S(` office:value-type="string"`)
	case []byte:
		text = string(x)
		qn.S(` office:value-type="string"`)
	case fmt.Stringer:
		text = x.String()
		qn.S(` office:value-type="string"`)
	default:
		text = fmt.Sprint(x)
		qn.S(` office:value-type="string"`)
	}
	qn.S(`><text:p>`)
	qe.S(text)
	qn.S(`</text:p></table:table-cell>`)
}

// Close finishes content.xml and the zip. It does not close the underlying writer.
func (w *Writer) Close() error {
	if w == nil || w.zw == nil {
		return nil
	}
	w.endSheet()
	w.qw.N().S(contentTail)
	quicktemplate.ReleaseWriter(w.qw)
	zw := w.zw
	w.zw, w.qw = nil, nil
	return zw.Close()
}

// cellStyle returns the automatic style name for style.
// Only boldness is kept; number formats are not carried into ods.
func cellStyle(style fluentsheet.Style) string {
	if style.FontBold {
		return "ce1"
	}
	return ""
}

const manifest = `<?xml version="1.0" encoding="UTF-8"?>
<manifest:manifest xmlns:manifest="urn:oasis:names:tc:opendocument:xmlns:manifest:1.0" manifest:version="1.2">
 <manifest:file-entry manifest:full-path="/" manifest:version="1.2" manifest:media-type="` + mimetype + `"/>
 <manifest:file-entry manifest:full-path="content.xml" manifest:media-type="text/xml"/>
</manifest:manifest>
`

const contentHead = `<?xml version="1.0" encoding="UTF-8"?>
<office:document-content xmlns:office="urn:oasis:names:tc:opendocument:xmlns:office:1.0" xmlns:style="urn:oasis:names:tc:opendocument:xmlns:style:1.0" xmlns:text="urn:oasis:names:tc:opendocument:xmlns:text:1.0" xmlns:table="urn:oasis:names:tc:opendocument:xmlns:table:1.0" xmlns:fo="urn:oasis:names:tc:opendocument:xmlns:xsl-fo-compatible:1.0" office:version="1.2">
<office:automatic-styles>
<style:style style:name="co1" style:family="table-column"><style:table-column-properties fo:break-before="auto" style:column-width="2.5cm"/></style:style>
<style:style style:name="ce1" style:family="table-cell" style:parent-style-name="Default"><style:text-properties fo:font-weight="bold"/></style:style>
</office:automatic-styles>
<office:body><office:spreadsheet>`

const contentTail = `</office:spreadsheet></office:body></office:document-content>`
