// Copyright 2026 Tamás Gulácsi.
//
// SPDX-License-Identifier: Apache-2.0

package ods

import (
	"bytes"
	"encoding/xml"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/UNO-SOFT/fluentsheet"
	"github.com/klauspost/compress/zip"
)

func TestWriter(t *testing.T) {
	var buf bytes.Buffer
	w, err := NewWriter(&buf)
	if err != nil {
		t.Fatal(err)
	}
	sheet, err := w.NewSheet("Jobs & <People>", []fluentsheet.Column{
		{Name: "Name", Header: fluentsheet.Style{FontBold: true}},
		{Name: "Salary", Header: fluentsheet.Style{FontBold: true}},
		{Name: "Hired"},
	})
	if err != nil {
		t.Fatal(err)
	}
	if err = sheet.AppendRow("Luke", fluentsheet.Number("100000"), time.Date(2020, 9, 27, 0, 0, 0, 0, time.UTC)); err != nil {
		t.Fatal(err)
	}
	if err = sheet.Close(); err != nil {
		t.Fatal(err)
	}
	if _, err = w.NewSheet("Empty", nil); err != nil {
		t.Fatal(err)
	}
	if err = w.Close(); err != nil {
		t.Fatal(err)
	}

	zr, err := zip.NewReader(bytes.NewReader(buf.Bytes()), int64(buf.Len()))
	if err != nil {
		t.Fatal(err)
	}
	if len(zr.File) == 0 || zr.File[0].Name != "mimetype" || zr.File[0].Method != zip.Store {
		t.Fatalf("mimetype is not the first stored entry: %+v", zr.File)
	}
	var content string
	for _, f := range zr.File {
		if f.Name != "content.xml" {
			continue
		}
		rc, err := f.Open()
		if err != nil {
			t.Fatal(err)
		}
		b, err := io.ReadAll(rc)
		rc.Close()
		if err != nil {
			t.Fatal(err)
		}
		content = string(b)
	}
	if content == "" {
		t.Fatal("no content.xml")
	}

	dec := xml.NewDecoder(strings.NewReader(content))
	var tables []string
	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		} else if err != nil {
			t.Fatalf("content.xml is not well-formed: %+v\n%s", err, content)
		}
		if se, ok := tok.(xml.StartElement); ok && se.Name.Local == "table" {
			for _, a := range se.Attr {
				if a.Name.Local == "name" {
					tables = append(tables, a.Value)
				}
			}
		}
	}
	if len(tables) != 2 || tables[0] != "Jobs & <People>" || tables[1] != "Empty" {
		t.Errorf("got tables %q", tables)
	}
	for _, want := range []string{
		`office:value-type="float" office:value="100000"`,
		`office:date-value="2020-09-27T00:00:00"`,
		`table:style-name="ce1"`,
	} {
		if !strings.Contains(content, want) {
			t.Errorf("content.xml misses %s", want)
		}
	}
}

func TestAppendAfterNextSheet(t *testing.T) {
	w, err := NewWriter(io.Discard)
	if err != nil {
		t.Fatal(err)
	}
	defer w.Close()
	first, _ := w.NewSheet("1", nil)
	if _, err = w.NewSheet("2", nil); err != nil {
		t.Fatal(err)
	}
	if err = first.AppendRow("late"); err == nil {
		t.Error("append to a finished sheet succeeded")
	}
}
