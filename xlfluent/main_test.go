// Copyright 2026 Tamás Gulácsi.
//
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"bytes"
	"context"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/UNO-SOFT/fluentsheet"
)

func TestParseValue(t *testing.T) {
	for _, tc := range []struct {
		In, Type string
		Want     any
	}{
		{"12.5", "auto", fluentsheet.Number("12.5")},
		{"2020-09-27", "auto", time.Date(2020, 9, 27, 0, 0, 0, 0, time.Local)},
		{"hi there", "auto", "hi there"},
		{"12", "string", "12"},
	} {
		got, err := parseValue(tc.In, tc.Type)
		if err != nil {
			t.Errorf("%q: %+v", tc.In, err)
			continue
		}
		if got != tc.Want {
			t.Errorf("%q: got %#v, wanted %#v", tc.In, got, tc.Want)
		}
	}
	if _, err := parseValue("x", "number"); err == nil {
		t.Error("number x accepted")
	}
}

func TestSetGetErase(t *testing.T) {
	ctx := context.Background()
	fn := filepath.Join(t.TempDir(), "cli.xlsx")
	for _, args := range [][]string{
		{"set", "-bold", fn, "Explore", "0", "0", "Name"},
		{"set", "-format", "dd-mmm-yy", fn, "Explore", "1", "0", "2020-09-28"},
		{"set", fn, "Explore", "2", "0", "hi there"},
	} {
		if err := run(ctx, &bytes.Buffer{}, args); err != nil {
			t.Fatalf("%q: %+v", args, err)
		}
	}
	for _, tc := range []struct{ Row, Want string }{{"1", "28-Sep-20"}, {"2", "hi there"}} {
		var buf bytes.Buffer
		if err := run(ctx, &buf, []string{"get", fn, "Explore", tc.Row, "0"}); err != nil {
			t.Fatal(err)
		}
		if got := strings.TrimSpace(buf.String()); got != tc.Want {
			t.Errorf("row %s: got %q, wanted %q", tc.Row, got, tc.Want)
		}
	}

	var buf bytes.Buffer
	if err := run(ctx, &buf, []string{"rows", fn, "Explore"}); err != nil {
		t.Fatal(err)
	}
	if got := strings.TrimSpace(buf.String()); got != "3" {
		t.Errorf("got %s rows, wanted 3", got)
	}
	if err := run(ctx, &bytes.Buffer{}, []string{"erase", fn, "Explore"}); err != nil {
		t.Fatal(err)
	}
	buf.Reset()
	if err := run(ctx, &buf, []string{"rows", fn, "Explore"}); err != nil {
		t.Fatal(err)
	}
	if got := strings.TrimSpace(buf.String()); got != "0" {
		t.Errorf("got %s rows after erase, wanted 0", got)
	}
}
