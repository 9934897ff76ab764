// Package report turns journal results into renderer-neutral tables.
package report

import (
	"github.com/shopspring/decimal"
)

// Cell is a single table value. Amount is set for monetary cells so that
// renderers can format and style them; Text is used otherwise.
type Cell struct {
	Text   string
	Amount *decimal.Decimal
}

// Text returns a plain text cell.
func Text(s string) Cell {
	return Cell{Text: s}
}

// Amount returns a monetary cell.
func Amount(d decimal.Decimal) Cell {
	return Cell{Amount: &d}
}

// IsAmount reports whether the cell holds a monetary value.
func (c Cell) IsAmount() bool {
	return c.Amount != nil
}

// Row is one table line. A Section row is a heading spanning the table; its
// label is the first cell.
type Row struct {
	Cells   []Cell
	Section bool
}

// Label returns the first cell's text, or "".
func (r Row) Label() string {
	if len(r.Cells) == 0 {
		return ""
	}
	return r.Cells[0].Text
}

// Table is a titled grid of rows.
type Table struct {
	Title   string
	Headers []string
	Rows    []Row
}

func (t *Table) add(cells ...Cell) {
	t.Rows = append(t.Rows, Row{Cells: cells})
}

func (t *Table) section(label string) {
	t.Rows = append(t.Rows, Row{Cells: []Cell{Text(label)}, Section: true})
}
