// Copyright 2026 Tamás Gulácsi.
//
// SPDX-License-Identifier: Apache-2.0

package fluentsheet_test

import (
	"bytes"
	"io"
	"testing"

	"github.com/UNO-SOFT/fluentsheet"
	"github.com/UNO-SOFT/fluentsheet/xlsx"
	"golang.org/x/text/encoding/charmap"
)

func TestCopyCsv(t *testing.T) {
	latin1, err := charmap.ISO8859_1.NewEncoder().String("Név;Fizetés\nÁrpád;100000\nZoé;n/a\nJane;inf\nJoe;NaN\n")
	if err != nil {
		t.Fatal(err)
	}
	enc, err := fluentsheet.GetEncoding("iso-8859-1")
	if err != nil {
		t.Fatal(err)
	}
	cr, err := fluentsheet.NewCsvReader(io.NopCloser(bytes.NewReader([]byte(latin1))), enc)
	if err != nil {
		t.Fatal(err)
	}
	defer cr.Close()
	if cr.Comma != ';' {
		t.Errorf("got separator %q, wanted ;", cr.Comma)
	}

	var buf bytes.Buffer
	w := xlsx.NewWriter(&buf)
	if err = fluentsheet.CopyCsv(w, "Pay", cr.Reader, true); err != nil {
		t.Fatal(err)
	}
	if err = w.Close(); err != nil {
		t.Fatal(err)
	}

	book, err := xlsx.OpenReader(&buf)
	if err != nil {
		t.Fatal(err)
	}
	defer book.Close()
	sheet := book.Sheet("Pay")
	if s, _ := sheet.Cell(0, 0).ValueAsString(); s != "Név" {
		t.Errorf("header: got %q", s)
	}
	if bold, err := sheet.Cell(0, 1).IsBold(); err != nil || !bold {
		t.Errorf("header is not bold (%v)", err)
	}
	if s, _ := sheet.Cell(1, 0).ValueAsString(); s != "Árpád" {
		t.Errorf("got %q, wanted Árpád", s)
	}
	if f, err := sheet.Cell(1, 1).Float(); err != nil || f != 100000 {
		t.Errorf("got %v (%v), wanted 100000", f, err)
	}
	for row, want := range map[int]string{2: "n/a", 3: "inf", 4: "NaN"} {
		if s, _ := sheet.Cell(row, 1).ValueAsString(); s != want {
			t.Errorf("row %d: got %q, wanted %q", row, s, want)
		}
	}
}

func TestGetEncodingUTF8(t *testing.T) {
	for _, name := range []string{"", "utf-8", "UTF8"} {
		if enc, err := fluentsheet.GetEncoding(name); err != nil || enc != nil {
			t.Errorf("%q: got %v, %v", name, enc, err)
		}
	}
	if _, err := fluentsheet.GetEncoding("no-such-charset"); err == nil {
		t.Error("unknown charset accepted")
	}
}
