// Copyright 2020, 2023, 2026 Tamás Gulácsi.
//
// SPDX-License-Identifier: Apache-2.0

package xlsx

import (
	"fmt"
	"log/slog"

	"github.com/UNO-SOFT/fluentsheet"
	"github.com/xuri/excelize/v2"
)

// styleCache memoizes the excelize style ids of the styles this book created.
// It belongs to a single Book.
type styleCache struct {
	xl     *excelize.File
	logger *slog.Logger
	ids    map[fluentsheet.Style]int
	styles map[int]fluentsheet.Style
}

func newStyleCache(xl *excelize.File, logger *slog.Logger) *styleCache {
	return &styleCache{
		xl: xl, logger: logger,
		ids:    make(map[fluentsheet.Style]int),
		styles: map[int]fluentsheet.Style{0: {}},
	}
}

// get returns the id of style, creating it on first use.
func (sc *styleCache) get(style fluentsheet.Style) (int, error) {
	if style.IsZero() {
		return 0, nil
	}
	if s, ok := sc.ids[style]; ok {
		return s, nil
	}
	var st excelize.Style
	apply(&st, style)
	s, err := sc.xl.NewStyle(&st)
	if err != nil {
		return 0, fmt.Errorf("new style %+v: %w", style, err)
	}
	sc.logger.Debug("new style", "id", s, "bold", style.FontBold, "format", style.Format, "numFmt", style.NumFmt)
	sc.ids[style] = s
	sc.styles[s] = style
	return s, nil
}

// restyle returns the id of the style base modified by fn.
// Styles not created by this cache (read from an opened file) keep
// their other attributes (fill, border, alignment).
func (sc *styleCache) restyle(base int, fn func(*fluentsheet.Style)) (int, error) {
	if style, ok := sc.styles[base]; ok {
		fn(&style)
		return sc.get(style)
	}
	st, err := sc.xl.GetStyle(base)
	if err != nil {
		return 0, fmt.Errorf("style %d: %w", base, err)
	}
	style := describe(st)
	fn(&style)
	apply(st, style)
	return sc.xl.NewStyle(st)
}

// describe returns the style descriptor of the style id.
func (sc *styleCache) describe(id int) (fluentsheet.Style, error) {
	if style, ok := sc.styles[id]; ok {
		return style, nil
	}
	st, err := sc.xl.GetStyle(id)
	if err != nil {
		return fluentsheet.Style{}, fmt.Errorf("style %d: %w", id, err)
	}
	return describe(st), nil
}

func describe(st *excelize.Style) fluentsheet.Style {
	var style fluentsheet.Style
	if st == nil {
		return style
	}
	style.FontBold = st.Font != nil && st.Font.Bold
	if st.CustomNumFmt != nil && *st.CustomNumFmt != "" {
		style.Format = *st.CustomNumFmt
	} else {
		style.NumFmt = st.NumFmt
	}
	return style
}

func apply(st *excelize.Style, style fluentsheet.Style) {
	if style.FontBold {
		if st.Font == nil {
			st.Font = &excelize.Font{}
		}
		st.Font.Bold = true
	} else if st.Font != nil {
		st.Font.Bold = false
	}
	if style.Format != "" {
		format := style.Format
		st.CustomNumFmt, st.NumFmt = &format, 0
	} else {
		st.CustomNumFmt, st.NumFmt = nil, style.NumFmt
	}
}
