// Package formatter renders generated statements as aligned text tables
// and as Word-compatible HTML documents.
package formatter

import (
	"fmt"
	"io"
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/shopspring/decimal"

	"github.com/nepdocs/stmtgen/statement"
)

const (
	// DefaultDescriptionWidth is the default column width for narrations.
	DefaultDescriptionWidth = 32

	// DefaultAmountWidth is the default column width for debit, credit,
	// and balance figures.
	DefaultAmountWidth = 14

	// DateWidth is the width of a formatted date (YYYY-MM-DD).
	DateWidth = 10

	// ReferenceWidth is the width of a 7-digit reference column.
	ReferenceWidth = 9

	// MinimumSpacing is the gap between adjacent columns.
	MinimumSpacing = 2

	dateFormat = "2006-01-02"
)

// Formatter renders statement results as text tables.
//
// Configure it using functional options passed to New:
//
//	f := formatter.New(formatter.WithDescriptionWidth(40))
type Formatter struct {
	// DescriptionWidth is the column width for narrations. Wider
	// narrations are truncated with an ellipsis.
	DescriptionWidth int

	// AmountWidth is the column width for monetary figures.
	AmountWidth int
}

// Option configures a Formatter.
type Option func(*Formatter)

// WithDescriptionWidth sets the narration column width.
func WithDescriptionWidth(w int) Option {
	return func(f *Formatter) {
		f.DescriptionWidth = w
	}
}

// WithAmountWidth sets the monetary column width.
func WithAmountWidth(w int) Option {
	return func(f *Formatter) {
		f.AmountWidth = w
	}
}

// New creates a Formatter with the given options.
func New(opts ...Option) *Formatter {
	f := &Formatter{
		DescriptionWidth: DefaultDescriptionWidth,
		AmountWidth:      DefaultAmountWidth,
	}

	for _, opt := range opts {
		opt(f)
	}

	return f
}

// Format writes result as an aligned table followed by a totals footer.
func (f *Formatter) Format(result *statement.Result, w io.Writer) error {
	gap := strings.Repeat(" ", MinimumSpacing)

	header := strings.Join([]string{
		pad("Date", DateWidth),
		pad("Description", f.DescriptionWidth),
		pad("Ref", ReferenceWidth),
		padLeft("Debit", f.AmountWidth),
		padLeft("Credit", f.AmountWidth),
		padLeft("Balance", f.AmountWidth),
	}, gap)

	if _, err := fmt.Fprintln(w, header); err != nil {
		return err
	}
	if _, err := fmt.Fprintln(w, strings.Repeat("-", runewidth.StringWidth(header))); err != nil {
		return err
	}

	for _, row := range result.Rows {
		line := strings.Join([]string{
			pad(row.Date.Format(dateFormat), DateWidth),
			pad(f.truncate(row.Description), f.DescriptionWidth),
			pad(row.Reference, ReferenceWidth),
			padLeft(amount(row.Debit), f.AmountWidth),
			padLeft(amount(row.Credit), f.AmountWidth),
			padLeft(row.Balance.StringFixed(2), f.AmountWidth),
		}, gap)

		if _, err := fmt.Fprintln(w, strings.TrimRight(line, " ")); err != nil {
			return err
		}
	}

	footer := strings.Join([]string{
		pad("", DateWidth),
		pad("Total", f.DescriptionWidth),
		pad("", ReferenceWidth),
		padLeft(result.TotalDebit.StringFixed(2), f.AmountWidth),
		padLeft(result.TotalCredit.StringFixed(2), f.AmountWidth),
		padLeft(result.FinalBalance.StringFixed(2), f.AmountWidth),
	}, gap)

	if _, err := fmt.Fprintln(w, strings.Repeat("-", runewidth.StringWidth(header))); err != nil {
		return err
	}
	if _, err := fmt.Fprintln(w, footer); err != nil {
		return err
	}

	return nil
}

// truncate shortens a narration to the configured display width. Widths are
// measured in terminal cells, not bytes, so Devanagari narrations align.
func (f *Formatter) truncate(s string) string {
	if runewidth.StringWidth(s) <= f.DescriptionWidth {
		return s
	}
	return runewidth.Truncate(s, f.DescriptionWidth, "…")
}

// amount formats a monetary cell, leaving zero cells empty.
func amount(d decimal.Decimal) string {
	if d.IsZero() {
		return ""
	}
	return d.StringFixed(2)
}

// pad right-pads s to width terminal cells.
func pad(s string, width int) string {
	if diff := width - runewidth.StringWidth(s); diff > 0 {
		return s + strings.Repeat(" ", diff)
	}
	return s
}

// padLeft left-pads s to width terminal cells.
func padLeft(s string, width int) string {
	if diff := width - runewidth.StringWidth(s); diff > 0 {
		return strings.Repeat(" ", diff) + s
	}
	return s
}
