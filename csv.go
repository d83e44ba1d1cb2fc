// Copyright 2020, 2026 Tamás Gulácsi.
//
// SPDX-License-Identifier: Apache-2.0

package fluentsheet

import (
	"bufio"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"
	"unicode"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/htmlindex"
)

// EncName is the default CSV charset, taken from $LANG.
var EncName = "utf-8"

func init() {
	EncName = os.Getenv("LANG")
	if i := strings.IndexByte(EncName, '.'); i >= 0 {
		EncName = strings.ToLower(EncName[i+1:])
	}
	if EncName == "" || EncName == "c" || EncName == "posix" {
		EncName = "utf-8"
	}
}

// GetEncoding returns the named encoding, or nil for UTF-8.
func GetEncoding(encName string) (encoding.Encoding, error) {
	encName = strings.ToLower(encName)
	if encName == "" || encName == "utf-8" || encName == "utf8" {
		return nil, nil
	}
	enc, err := htmlindex.Get(encName)
	if err != nil {
		err = fmt.Errorf("%q: %w", encName, err)
	}
	return enc, err
}

type csvReadCloser struct {
	*csv.Reader
	io.Closer
}

// OpenCsv opens fn ("" or "-" is stdin), decodes it from encName
// and sniffs the field separator from the first KiB.
func OpenCsv(fn, encName string) (csvReadCloser, error) {
	var enc encoding.Encoding
	if encName != "" {
		var err error
		if enc, err = GetEncoding(encName); err != nil {
			return csvReadCloser{}, err
		}
	}
	fh := os.Stdin
	if !(fn == "" || fn == "-") {
		var err error
		if fh, err = os.Open(fn); err != nil {
			return csvReadCloser{}, err
		}
	}
	return NewCsvReader(fh, enc)
}

// NewCsvReader wraps r the same way OpenCsv does.
func NewCsvReader(r io.ReadCloser, enc encoding.Encoding) (csvReadCloser, error) {
	if enc != nil {
		r = struct {
			io.Reader
			io.Closer
		}{enc.NewDecoder().Reader(r), r}
	}
	br := bufio.NewReaderSize(r, 1<<20)
	b, err := br.Peek(1024)
	if err != nil && len(b) == 0 {
		return csvReadCloser{}, err
	}
	sep := rune(',')
	for _, r := range string(b) {
		if r == '"' || r == '_' || unicode.IsLetter(r) || unicode.IsNumber(r) {
			continue
		}
		sep = r
		break
	}

	cr := csv.NewReader(br)
	cr.ReuseRecord = true
	cr.Comma = sep
	return csvReadCloser{cr, r}, nil
}

// CopyCsv copies the records of cr into a new sheet of w.
// The first record is the header, written in bold.
// With numbers, fields that parse as a float are written as Number.
func CopyCsv(w Writer, sheetName string, cr *csv.Reader, numbers bool) error {
	row, err := cr.Read()
	if err != nil {
		return err
	}
	cols := make([]Column, len(row))
	for i, r := range row {
		cols[i].Name = r
		cols[i].Header.FontBold = true
	}
	sheet, err := w.NewSheet(sheetName, cols)
	if err != nil {
		return err
	}

	var rowI []any
	for {
		if row, err = cr.Read(); err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return err
		}
		rowI = rowI[:0]
		for _, s := range row {
			if numbers && s != "" {
				if isFinite(s) {
					rowI = append(rowI, Number(s))
					continue
				}
			}
			rowI = append(rowI, s)
		}
		if err = sheet.AppendRow(rowI...); err != nil {
			return fmt.Errorf("%s: %w", sheetName, err)
		}
	}
	return sheet.Close()
}

// isFinite reports whether s is a finite number.
// strconv.ParseFloat also accepts "NaN" and "Inf", which are text here.
func isFinite(s string) bool {
	f, err := strconv.ParseFloat(s, 64)
	return err == nil && !math.IsInf(f, 0) && !math.IsNaN(f)
}
