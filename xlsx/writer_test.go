// Copyright 2026 Tamás Gulácsi.
//
// SPDX-License-Identifier: Apache-2.0

package xlsx

import (
	"bytes"
	"errors"
	"testing"
	"time"

	"github.com/UNO-SOFT/fluentsheet"
)

func TestWriter(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf)
	sheet, err := w.NewSheet("People", []fluentsheet.Column{
		{Name: "Name", Header: fluentsheet.Style{FontBold: true}},
		{Name: "Salary", Header: fluentsheet.Style{FontBold: true}, Column: fluentsheet.Style{Format: DefaultCurrencyFormat}},
	})
	if err != nil {
		t.Fatal(err)
	}
	for _, row := range [][]any{{"Luke", 100_000.0}, {"Jane", fluentsheet.Number("90000")}} {
		if err = sheet.AppendRow(row...); err != nil {
			t.Fatal(err)
		}
	}
	if err = sheet.Close(); err != nil {
		t.Fatal(err)
	}
	if err = w.Close(); err != nil {
		t.Fatal(err)
	}

	book, err := OpenReader(&buf)
	if err != nil {
		t.Fatal(err)
	}
	defer book.Close()
	s := book.Sheet("People")
	if n, err := s.RowCount(); err != nil {
		t.Fatal(err)
	} else if n != 3 {
		t.Errorf("got %d rows, wanted 3", n)
	}
	if bold, err := s.Cell(0, 1).IsBold(); err != nil {
		t.Fatal(err)
	} else if !bold {
		t.Error("header is not bold")
	}
	if got, err := s.Cell(2, 0).ValueAsString(); err != nil {
		t.Fatal(err)
	} else if got != "Jane" {
		t.Errorf("got %q, wanted Jane", got)
	}
	if f, err := s.Cell(2, 1).Float(); err != nil {
		t.Fatal(err)
	} else if f != 90_000 {
		t.Errorf("got %v, wanted 90000", f)
	}
}

func TestAppendRowAfterContent(t *testing.T) {
	book := Create()
	defer book.Close()
	sheet := book.Sheet("Log").SetValue(0, 0, "first").SetValue(1, 0, "second")
	if err := sheet.AppendRow("third", 3); err != nil {
		t.Fatal(err)
	}
	if got, err := sheet.Cell(2, 0).ValueAsString(); err != nil {
		t.Fatal(err)
	} else if got != "third" {
		t.Errorf("got %q, wanted third", got)
	}
	if err := sheet.Erase().AppendRow("again"); err != nil {
		t.Fatal(err)
	}
	if got, _ := sheet.Cell(0, 0).ValueAsString(); got != "again" {
		t.Errorf("got %q, wanted again", got)
	}
}

type recordingWriter struct {
	sheets []*recordingSheet
}

type recordingSheet struct {
	name   string
	cols   []fluentsheet.Column
	rows   [][]any
	closed bool
}

func (w *recordingWriter) Close() error { return nil }
func (w *recordingWriter) NewSheet(name string, cols []fluentsheet.Column) (fluentsheet.Sheet, error) {
	s := &recordingSheet{name: name, cols: cols}
	w.sheets = append(w.sheets, s)
	return s, nil
}
func (s *recordingSheet) Close() error { s.closed = true; return nil }
func (s *recordingSheet) AppendRow(values ...any) error {
	s.rows = append(s.rows, append([]any(nil), values...))
	return nil
}

func TestExport(t *testing.T) {
	book := Create().
		Sheet("Jobs").
		Row(0).Cell(0).Bold().SetValue("Name").End().Cell(1).Bold().SetValue("Hired").End().End().
		SetValue(1, 0, "Luke").
		SetValue(1, 1, time.Date(2020, 9, 27, 0, 0, 0, 0, time.Local)).
		Done().
		Sheet("Plain").
		SetValue(0, 0, "x").
		SetValue(0, 1, 2.5).
		Done()
	defer book.Close()

	var w recordingWriter
	if err := book.Export(&w); err != nil {
		t.Fatal(err)
	}
	if len(w.sheets) != 2 {
		t.Fatalf("got %d sheets, wanted 2", len(w.sheets))
	}
	jobs, plain := w.sheets[0], w.sheets[1]
	if jobs.name != "Jobs" || len(jobs.cols) != 2 || jobs.cols[1].Name != "Hired" || !jobs.closed {
		t.Errorf("jobs: %+v", jobs)
	}
	if len(jobs.rows) != 1 || jobs.rows[0][1] != "27/09/2020" {
		t.Errorf("jobs rows: %v", jobs.rows)
	}
	if plain.cols != nil || len(plain.rows) != 1 || plain.rows[0][1] != fluentsheet.Number("2.5") {
		t.Errorf("plain: %+v", plain)
	}
}

func TestExportValue(t *testing.T) {
	for _, tc := range []struct {
		Formatted, Raw string
		Want           any
	}{
		{"2.5", "2.5", fluentsheet.Number("2.5")},
		{"inf", "inf", "inf"},
		{"NaN", "NaN", "NaN"},
		{"Infinity", "Infinity", "Infinity"},
		{"27/09/2020", "44101", "27/09/2020"},
		{"", "", ""},
	} {
		if got := exportValue(tc.Formatted, tc.Raw); got != tc.Want {
			t.Errorf("%q/%q: got %#v, wanted %#v", tc.Formatted, tc.Raw, got, tc.Want)
		}
	}
}

func TestExportStickyError(t *testing.T) {
	book := Create()
	defer book.Close()
	book.Sheet("S").SetValue(0, 0, make(chan int))
	if err := book.Export(&recordingWriter{}); !errors.Is(err, fluentsheet.ErrUnsupportedValue) {
		t.Errorf("got %v", err)
	}
}
