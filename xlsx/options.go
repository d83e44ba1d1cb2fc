// Copyright 2026 Tamás Gulácsi.
//
// SPDX-License-Identifier: Apache-2.0

package xlsx

import (
	"log/slog"
	"time"
)

const (
	// DefaultDateFormat is applied to dates written into cells without a number format.
	DefaultDateFormat = "dd/mm/yyyy"
	// DefaultCurrencyFormat is used by Cell.Currency.
	DefaultCurrencyFormat = "$#,##0.00"
)

type config struct {
	logger         *slog.Logger
	dateFormat     string
	currencyFormat string
	location       *time.Location
}

// Option configures a Book.
type Option func(*config)

// WithLogger sets the logger of the Book. The default discards everything.
func WithLogger(logger *slog.Logger) Option {
	return func(c *config) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithDateFormat overrides DefaultDateFormat.
func WithDateFormat(format string) Option {
	return func(c *config) {
		if format != "" {
			c.dateFormat = format
		}
	}
}

// WithCurrencyFormat overrides DefaultCurrencyFormat.
func WithCurrencyFormat(format string) Option {
	return func(c *config) {
		if format != "" {
			c.currencyFormat = format
		}
	}
}

// WithLocation sets the time zone of the dates in the book.
// Dates are stored as wall clock time in this zone and Cell.Time
// returns them in it. The default is time.Local.
func WithLocation(loc *time.Location) Option {
	return func(c *config) {
		if loc != nil {
			c.location = loc
		}
	}
}

func newConfig(opts []Option) config {
	c := config{
		logger:         slog.New(slog.DiscardHandler),
		dateFormat:     DefaultDateFormat,
		currencyFormat: DefaultCurrencyFormat,
		location:       time.Local,
	}
	for _, o := range opts {
		o(&c)
	}
	return c
}
