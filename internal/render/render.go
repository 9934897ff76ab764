// Package render writes report tables as aligned text, colored text or CSV.
package render

import (
	"fmt"
	"io"
	"os"

	"github.com/Rhymond/go-money"
	"github.com/mattn/go-isatty"
	"github.com/shopspring/decimal"

	"github.com/cleared-dev/ledger/internal/model"
	"github.com/cleared-dev/ledger/internal/report"
)

// Output formats accepted by New.
const (
	FormatAuto  = "auto"
	FormatPlain = "plain"
	FormatColor = "color"
	FormatCSV   = "csv"
)

// DisplayCurrency is the currency amounts are formatted in. There is no
// conversion; the symbol is cosmetic.
const DisplayCurrency = "USD"

// Renderer writes a table to w.
type Renderer interface {
	Render(w io.Writer, t report.Table) error
}

// New returns the renderer for format. Auto (or "") picks Color when out is
// a terminal and allowColor is set, Plain otherwise.
func New(format string, out io.Writer, allowColor bool) (Renderer, error) {
	switch format {
	case "", FormatAuto:
		if allowColor && IsTerminal(out) {
			return NewColor(), nil
		}
		return Plain{}, nil
	case FormatPlain:
		return Plain{}, nil
	case FormatColor:
		return NewColor(), nil
	case FormatCSV:
		return CSV{}, nil
	default:
		return nil, fmt.Errorf("%w: unknown format %q (want plain, color or csv)", model.ErrInvalidInput, format)
	}
}

// IsTerminal reports whether w is a terminal file.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// FormatAmount formats d for display, rounded to the currency's minor unit:
// 3000 -> "$3,000.00", -2.5 -> "-$2.50".
func FormatAmount(d decimal.Decimal) string {
	cur := money.GetCurrency(DisplayCurrency)
	minor := d.Shift(int32(cur.Fraction)).Round(0)
	return money.New(minor.IntPart(), DisplayCurrency).Display()
}
