// Copyright 2026 Tamás Gulácsi.
//
// SPDX-License-Identifier: Apache-2.0

// Command xlfluent reads and edits single cells and sheets of xlsx files.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/UNO-SOFT/fluentsheet"
	"github.com/UNO-SOFT/fluentsheet/ods"
	"github.com/UNO-SOFT/fluentsheet/pdf"
	"github.com/UNO-SOFT/fluentsheet/xlsx"
	"github.com/UNO-SOFT/zlog/v2"
	"github.com/peterbourgon/ff/v3"
	"github.com/peterbourgon/ff/v3/ffcli"
)

var verbose zlog.VerboseVar
var logger = zlog.NewLogger(zlog.MaybeConsoleHandler(&verbose, os.Stderr)).SLog()

func main() {
	if err := Main(); err != nil {
		logger.Error("MAIN", "error", err)
		os.Exit(1)
	}
}

func Main() error {
	ctx, cancel := signal.NotifyContext(context.Background(),
		os.Interrupt, syscall.SIGTERM)
	defer cancel()
	return run(ctx, os.Stdout, os.Args[1:])
}

type globals struct {
	dateFormat, currencyFormat string
}

func (g *globals) options() []xlsx.Option {
	return []xlsx.Option{
		xlsx.WithLogger(logger),
		xlsx.WithDateFormat(g.dateFormat),
		xlsx.WithCurrencyFormat(g.currencyFormat),
	}
}

// open opens path, or creates a new book if create is set and path is missing.
func (g *globals) open(path string, create bool) (*xlsx.Book, error) {
	book, err := xlsx.Open(path, g.options()...)
	if err != nil && create && errors.Is(err, fluentsheet.ErrFileNotFound) {
		return xlsx.Create(g.options()...), nil
	}
	return book, err
}

func run(ctx context.Context, stdout io.Writer, args []string) error {
	var g globals
	fs := flag.NewFlagSet("xlfluent", flag.ContinueOnError)
	fs.Var(&verbose, "v", "logging verbosity")
	fs.StringVar(&g.dateFormat, "date-format", xlsx.DefaultDateFormat, "default format of dates")
	fs.StringVar(&g.currencyFormat, "currency-format", xlsx.DefaultCurrencyFormat, "format of currency cells")
	opts := []ff.Option{ff.WithEnvVarPrefix("XLFLUENT")}

	getCmd := ffcli.Command{Name: "get", FlagSet: flag.NewFlagSet("get", flag.ContinueOnError), Options: opts,
		ShortUsage: "get file.xlsx sheet row col",
		ShortHelp:  "print the formatted value of a cell (zero-based coordinates)",
		Exec: func(ctx context.Context, args []string) error {
			if len(args) != 4 {
				return flag.ErrHelp
			}
			row, col, err := coords(args[2], args[3])
			if err != nil {
				return err
			}
			book, err := g.open(args[0], false)
			if err != nil {
				return err
			}
			defer book.Close()
			s, err := book.Sheet(args[1]).Cell(row, col).ValueAsString()
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(stdout, s)
			return err
		},
	}

	setFS := flag.NewFlagSet("set", flag.ContinueOnError)
	flagBold := setFS.Bool("bold", false, "bold font")
	flagCurrency := setFS.Bool("currency", false, "currency format")
	flagFormat := setFS.String("format", "", "number format, such as dd-mmm-yy")
	flagType := setFS.String("type", "auto", "value type: auto, string, number or date (2006-01-02)")
	setCmd := ffcli.Command{Name: "set", ShortUsage: "set [flags] file.xlsx sheet row col value",
		ShortHelp: "set the value and style of a cell, creating the file if needed",
		FlagSet:   setFS, Options: opts,
		Exec: func(ctx context.Context, args []string) error {
			if len(args) != 5 {
				return flag.ErrHelp
			}
			row, col, err := coords(args[2], args[3])
			if err != nil {
				return err
			}
			value, err := parseValue(args[4], *flagType)
			if err != nil {
				return err
			}
			book, err := g.open(args[0], true)
			if err != nil {
				return err
			}
			defer book.Close()
			cell := book.Sheet(args[1]).Cell(row, col)
			if *flagBold {
				cell.Bold()
			}
			if *flagCurrency {
				cell.Currency()
			}
			if *flagFormat != "" {
				cell.Format(*flagFormat)
			}
			return cell.SetValue(value).End().End().Done().Write(args[0])
		},
	}

	eraseCmd := ffcli.Command{Name: "erase", FlagSet: flag.NewFlagSet("erase", flag.ContinueOnError), Options: opts,
		ShortUsage: "erase file.xlsx sheet",
		ShortHelp:  "remove every row of a sheet",
		Exec: func(ctx context.Context, args []string) error {
			if len(args) != 2 {
				return flag.ErrHelp
			}
			book, err := g.open(args[0], false)
			if err != nil {
				return err
			}
			defer book.Close()
			return book.Sheet(args[1]).Erase().Done().Write(args[0])
		},
	}

	autosizeCmd := ffcli.Command{Name: "autosize", FlagSet: flag.NewFlagSet("autosize", flag.ContinueOnError), Options: opts,
		ShortUsage: "autosize file.xlsx sheet col...",
		ShortHelp:  "fit the width of the given columns to their content",
		Exec: func(ctx context.Context, args []string) error {
			if len(args) < 3 {
				return flag.ErrHelp
			}
			book, err := g.open(args[0], false)
			if err != nil {
				return err
			}
			defer book.Close()
			sheet := book.Sheet(args[1])
			for _, a := range args[2:] {
				col, err := strconv.Atoi(a)
				if err != nil {
					return fmt.Errorf("column %q: %w", a, err)
				}
				sheet.AutosizeColumn(col)
			}
			return sheet.Done().Write(args[0])
		},
	}

	rowsCmd := ffcli.Command{Name: "rows", FlagSet: flag.NewFlagSet("rows", flag.ContinueOnError), Options: opts,
		ShortUsage: "rows file.xlsx sheet",
		ShortHelp:  "print the number of non-empty rows",
		Exec: func(ctx context.Context, args []string) error {
			if len(args) != 2 {
				return flag.ErrHelp
			}
			book, err := g.open(args[0], false)
			if err != nil {
				return err
			}
			defer book.Close()
			n, err := book.Sheet(args[1]).RowCount()
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(stdout, n)
			return err
		},
	}

	sheetsCmd := ffcli.Command{Name: "sheets", FlagSet: flag.NewFlagSet("sheets", flag.ContinueOnError), Options: opts,
		ShortUsage: "sheets file.xlsx",
		ShortHelp:  "list the sheets",
		Exec: func(ctx context.Context, args []string) error {
			if len(args) != 1 {
				return flag.ErrHelp
			}
			book, err := g.open(args[0], false)
			if err != nil {
				return err
			}
			defer book.Close()
			_, err = fmt.Fprintln(stdout, strings.Join(book.SheetNames(), "\n"))
			return err
		},
	}

	exportFS := flag.NewFlagSet("export", flag.ContinueOnError)
	flagLandscape := exportFS.Bool("L", false, "pdf landscape orientation")
	flagFontSize := exportFS.Float64("f", 8, "pdf font size")
	exportCmd := ffcli.Command{Name: "export", ShortUsage: "export [flags] file.xlsx out.{ods,pdf}",
		ShortHelp: "convert the workbook to ods or pdf",
		FlagSet:   exportFS, Options: opts,
		Exec: func(ctx context.Context, args []string) error {
			if len(args) != 2 {
				return flag.ErrHelp
			}
			book, err := g.open(args[0], false)
			if err != nil {
				return err
			}
			defer book.Close()
			fh, err := os.Create(args[1])
			if err != nil {
				return err
			}
			defer fh.Close()
			var w fluentsheet.Writer
			switch ext := strings.ToLower(filepath.Ext(args[1])); ext {
			case ".ods":
				if w, err = ods.NewWriter(fh); err != nil {
					return err
				}
			case ".pdf":
				w = pdf.NewWriter(fh, pdf.Options{
					AlternateColor: &pdf.DefaultAlternateColor,
					FontSize:       *flagFontSize,
					Landscape:      *flagLandscape,
				})
			default:
				return fmt.Errorf("unknown export format %q", ext)
			}
			if err = book.Export(w); err != nil {
				w.Close()
				return err
			}
			if err = w.Close(); err != nil {
				return err
			}
			return fh.Close()
		},
	}

	app := ffcli.Command{Name: "xlfluent", FlagSet: fs, Options: opts,
		ShortUsage: "xlfluent [flags] <subcommand> ...",
		Subcommands: []*ffcli.Command{
			&getCmd, &setCmd, &eraseCmd, &autosizeCmd, &rowsCmd, &sheetsCmd, &exportCmd,
		},
		Exec: func(ctx context.Context, args []string) error { return flag.ErrHelp },
	}
	if err := app.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}
	return app.Run(ctx)
}

func coords(rowS, colS string) (row, col int, err error) {
	if row, err = strconv.Atoi(rowS); err != nil {
		return 0, 0, fmt.Errorf("row %q: %w", rowS, err)
	}
	if col, err = strconv.Atoi(colS); err != nil {
		return 0, 0, fmt.Errorf("column %q: %w", colS, err)
	}
	return row, col, nil
}

// parseValue converts s according to typ; "auto" tries number, then date.
func parseValue(s, typ string) (any, error) {
	switch typ {
	case "string":
		return s, nil
	case "number":
		if _, err := strconv.ParseFloat(s, 64); err != nil {
			return nil, fmt.Errorf("number %q: %w", s, err)
		}
		return fluentsheet.Number(s), nil
	case "date":
		t, err := time.ParseInLocation("2006-01-02", s, time.Local)
		if err != nil {
			return nil, fmt.Errorf("date %q: %w", s, err)
		}
		return t, nil
	case "auto", "":
		if _, err := strconv.ParseFloat(s, 64); err == nil {
			return fluentsheet.Number(s), nil
		}
		if t, err := time.ParseInLocation("2006-01-02", s, time.Local); err == nil {
			return t, nil
		}
		return s, nil
	}
	return nil, fmt.Errorf("unknown type %q", typ)
}
