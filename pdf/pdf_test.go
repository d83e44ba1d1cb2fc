// Copyright 2026 Tamás Gulácsi.
//
// SPDX-License-Identifier: Apache-2.0

package pdf

import (
	"bytes"
	"testing"
	"time"

	"github.com/UNO-SOFT/fluentsheet"
)

func TestWriter(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf, Options{AlternateColor: &DefaultAlternateColor})
	sheet, err := w.NewSheet("Jobs", []fluentsheet.Column{{Name: "Name"}, {Name: "Hired"}})
	if err != nil {
		t.Fatal(err)
	}
	for _, row := range [][]any{
		{"Luke", time.Date(2020, 9, 27, 0, 0, 0, 0, time.UTC)},
		{"Jane", nil},
		{"Leia", fluentsheet.Number("3")},
	} {
		if err = sheet.AppendRow(row...); err != nil {
			t.Fatal(err)
		}
	}
	if got := sheet.(*Sheet).rows[0][1]; got != "2020-09-27" {
		t.Errorf("got %q, wanted 2020-09-27", got)
	}
	if err = w.Close(); err != nil {
		t.Fatal(err)
	}
	if !bytes.HasPrefix(buf.Bytes(), []byte("%PDF")) {
		t.Errorf("not a PDF: %q", buf.Bytes()[:min(16, buf.Len())])
	}
	if _, err = w.NewSheet("late", nil); err == nil {
		t.Error("NewSheet after Close succeeded")
	}
}
