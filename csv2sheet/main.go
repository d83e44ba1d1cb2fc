// Copyright 2021, 2026 Tamas Gulacsi. All rights reserved.

// Command csv2sheet converts CSV files into the sheets of an xlsx, ods or pdf file.
//
//	csv2sheet [flags] out.xlsx [sheetname:]in.csv...
package main

import (
	"context"
	"encoding/hex"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/UNO-SOFT/fluentsheet"
	"github.com/UNO-SOFT/fluentsheet/ods"
	"github.com/UNO-SOFT/fluentsheet/pdf"
	"github.com/UNO-SOFT/fluentsheet/xlsx"
	"github.com/UNO-SOFT/zlog/v2"
	"github.com/johnfercher/maroto/v2/pkg/props"
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
	alternateColor := Color{Color: pdf.DefaultAlternateColor}

	fs := flag.NewFlagSet("csv2sheet", flag.ContinueOnError)
	fs.Var(&verbose, "v", "logging verbosity")
	flagEnc := fs.String("charset", fluentsheet.EncName, "csv charset name")
	flagNumbers := fs.Bool("numbers", true, "write numeric fields as numbers")
	flagAutosize := fs.Bool("autosize", true, "autosize the xlsx columns")
	flagDateFormat := fs.String("date-format", xlsx.DefaultDateFormat, "xlsx default date format")
	flagColor := fs.String("alternate-color", alternateColor.String(), "pdf alternate row color")
	flagLandscape := fs.Bool("L", false, "pdf landscape orientation (default: portrait)")
	flagFontSize := fs.Float64("f", 8, "pdf font size")

	app := ffcli.Command{Name: "csv2sheet", FlagSet: fs,
		ShortUsage: "csv2sheet [flags] out.{xlsx,ods,pdf} [sheetname:]in.csv...",
		Options:    []ff.Option{ff.WithEnvVarPrefix("CSV2SHEET")},
		Exec: func(ctx context.Context, args []string) error {
			if len(args) == 0 {
				return flag.ErrHelp
			}
			if err := alternateColor.Parse(*flagColor); err != nil {
				return fmt.Errorf("alternate-color %q: %w", *flagColor, err)
			}
			enc, err := fluentsheet.GetEncoding(*flagEnc)
			if err != nil {
				return err
			}
			logger.Debug("encoding", "charset", *flagEnc, "enc", enc)

			fn := args[0]
			fh := os.Stdout
			if !(fn == "" || fn == "-") {
				if fh, err = os.Create(fn); err != nil {
					return err
				}
			}
			defer fh.Close()

			var w fluentsheet.Writer
			var book *xlsx.Book
			switch strings.ToLower(filepath.Ext(fn)) {
			case ".ods":
				if w, err = ods.NewWriter(fh); err != nil {
					return err
				}
			case ".pdf":
				w = pdf.NewWriter(fh, pdf.Options{
					AlternateColor: &alternateColor.Color,
					FontSize:       *flagFontSize,
					Landscape:      *flagLandscape,
				})
			default:
				xw := xlsx.NewWriter(fh, xlsx.WithLogger(logger), xlsx.WithDateFormat(*flagDateFormat))
				w, book = xw, xw.Book()
			}

			inputs := args[1:]
			if len(inputs) == 0 {
				inputs = []string{"-"}
			}
			for i, fn := range inputs {
				if err := ctx.Err(); err != nil {
					return err
				}
				sheetName := fmt.Sprintf("Sheet%d", i+1)
				if i := strings.IndexByte(fn, ':'); i >= 0 {
					sheetName, fn = fn[:i], fn[i+1:]
				} else if fn != "" && fn != "-" {
					sheetName = strings.TrimSuffix(filepath.Base(fn), ".csv")
				}
				n, err := copyFile(w, sheetName, *flagEnc, fn, *flagNumbers)
				if err != nil {
					return fmt.Errorf("%q: %w", fn, err)
				}
				if book != nil && *flagAutosize {
					sheet := book.Sheet(sheetName)
					for col := 0; col < n; col++ {
						sheet.AutosizeColumn(col)
					}
				}
				logger.Info("copied", "file", fn, "sheet", sheetName)
			}

			if err := w.Close(); err != nil {
				return err
			}
			return fh.Close()
		},
	}

	if err := app.Parse(os.Args[1:]); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	ctx, cancel := signal.NotifyContext(context.Background(),
		os.Interrupt, syscall.SIGTERM)
	defer cancel()
	return app.Run(ctx)
}

// copyFile copies the CSV fn into a new sheet, returning the number of columns.
func copyFile(w fluentsheet.Writer, sheetName, encName, fn string, numbers bool) (int, error) {
	cr, err := fluentsheet.OpenCsv(fn, encName)
	if err != nil {
		return 0, err
	}
	defer cr.Close()
	var n int
	counter := countingWriter{Writer: w, n: &n}
	if err = fluentsheet.CopyCsv(counter, sheetName, cr.Reader, numbers); err != nil {
		return 0, err
	}
	logger.Debug("sheet", "name", sheetName, "columns", n)
	return n, nil
}

type countingWriter struct {
	fluentsheet.Writer
	n *int
}

func (cw countingWriter) NewSheet(name string, cols []fluentsheet.Column) (fluentsheet.Sheet, error) {
	*cw.n = len(cols)
	return cw.Writer.NewSheet(name, cols)
}

type Color struct {
	props.Color
}

func (c *Color) String() string {
	return fmt.Sprintf("%02x%02x%02x", c.Red, c.Green, c.Blue)
}
func (c *Color) Parse(s string) error {
	b, err := hex.DecodeString(s)
	if err != nil {
		return err
	}
	if len(b) != 3 {
		return fmt.Errorf("%q: want 3 bytes (rrggbb)", s)
	}
	c.Red, c.Green, c.Blue = int(b[0]), int(b[1]), int(b[2])
	return nil
}
