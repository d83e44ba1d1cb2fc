// Copyright 2021, 2026 Tamas Gulacsi. All rights reserved.

// Package pdf renders spreadsheets as PDF tables.
package pdf

import (
	"fmt"
	"io"
	"time"

	"github.com/UNO-SOFT/fluentsheet"
	"github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/orientation"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
)

var _ = (fluentsheet.Writer)((*Writer)(nil))

// Options of the rendering.
type Options struct {
	// AlternateColor is the background of every second row; nil for none.
	AlternateColor *props.Color
	// FontSize of the content; headers are 1.375 times bigger.
	FontSize float64
	// Landscape orientation (default: portrait).
	Landscape bool
}

// DefaultAlternateColor is a light grey.
var DefaultAlternateColor = props.Color{Red: 230, Green: 230, Blue: 230}

// Writer collects the sheets and renders them on Close.
// Sheets must not be written concurrently.
type Writer struct {
	w      io.Writer
	sheets []*Sheet
	Options
}

// Sheet collects rows of a table.
type Sheet struct {
	name    string
	headers []string
	rows    [][]string
}

// NewWriter returns a Writer rendering to w on Close.
func NewWriter(w io.Writer, opts Options) *Writer {
	if opts.FontSize <= 0 {
		opts.FontSize = 8
	}
	return &Writer{w: w, Options: opts}
}

// NewSheet starts a new table; the column names are its header.
func (w *Writer) NewSheet(name string, cols []fluentsheet.Column) (fluentsheet.Sheet, error) {
	if w.w == nil {
		return nil, fluentsheet.ErrClosed
	}
	s := &Sheet{name: name}
	for _, c := range cols {
		if c.Name != "" {
			s.headers = make([]string, len(cols))
			for i, c := range cols {
				s.headers[i] = c.Name
			}
			break
		}
	}
	w.sheets = append(w.sheets, s)
	return s, nil
}

// AppendRow adds a row, formatting every value as text.
func (s *Sheet) AppendRow(values ...any) error {
	row := make([]string, len(values))
	for i, v := range values {
		switch x := v.(type) {
		case nil:
		case string:
			row[i] = x
		case fluentsheet.Number:
			row[i] = string(x)
		case time.Time:
			if !x.IsZero() {
				row[i] = x.Format("2006-01-02")
			}
		default:
			row[i] = fmt.Sprint(x)
		}
	}
	s.rows = append(s.rows, row)
	return nil
}

// Close is a no-op; the rows are rendered by Writer.Close.
func (s *Sheet) Close() error { return nil }

func (s *Sheet) width() int {
	n := len(s.headers)
	for _, row := range s.rows {
		n = max(n, len(row))
	}
	return n
}

// Close renders the collected sheets into the underlying writer.
func (w *Writer) Close() error {
	if w == nil || w.w == nil {
		return nil
	}
	out := w.w
	w.w = nil

	gridSize := 1
	for _, s := range w.sheets {
		gridSize = max(gridSize, s.width())
	}
	b := config.NewBuilder().WithMaxGridSize(gridSize)
	if w.Landscape {
		b = b.WithOrientation(orientation.Horizontal)
	}
	m := maroto.New(b.Build())

	headerProp := props.Text{Size: w.FontSize * 1.375, Style: fontstyle.Bold}
	contentProp := props.Text{Size: w.FontSize, Style: fontstyle.Normal}
	for _, s := range w.sheets {
		n := s.width()
		if n == 0 {
			continue
		}
		size := max(1, gridSize/n)
		m.AddAutoRow(text.NewCol(gridSize, s.name, props.Text{Size: w.FontSize * 1.75, Style: fontstyle.Bold}))
		if s.headers != nil {
			m.AddAutoRow(cols(s.headers, n, size, headerProp)...)
		}
		for i, row := range s.rows {
			r := m.AddAutoRow(cols(row, n, size, contentProp)...)
			if w.AlternateColor != nil && i%2 == 1 {
				r.WithStyle(&props.Cell{BackgroundColor: w.AlternateColor})
			}
		}
	}
	doc, err := m.Generate()
	if err != nil {
		return fmt.Errorf("render pdf: %w", err)
	}
	_, err = out.Write(doc.GetBytes())
	return err
}

func cols(values []string, n, size int, prop props.Text) []core.Col {
	cs := make([]core.Col, n)
	for i := range cs {
		var s string
		if i < len(values) {
			s = values[i]
		}
		cs[i] = text.NewCol(size, s, prop)
	}
	return cs
}
