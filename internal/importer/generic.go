package importer

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/cleared-dev/ledger/internal/model"
)

// GenericParser reads CSV files with a header row naming the columns
// date, description, name, amount, debit and credit. Columns may appear in
// any order; amount, debit and credit are each optional, as is name (the
// description is used in its place).
type GenericParser struct{}

const (
	colDate        = "date"
	colDescription = "description"
	colName        = "name"
	colAmount      = "amount"
	colDebit       = "debit"
	colCredit      = "credit"
)

// Format returns the parser name.
func (p *GenericParser) Format() string { return "generic" }

// Parse reads a generic CSV and returns BankTransactions.
func (p *GenericParser) Parse(r io.Reader, opts ParseOptions) ([]model.BankTransaction, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("%w: reading csv: %w", model.ErrSourceFormat, err)
	}
	if len(records) <= 1 {
		return nil, nil
	}

	cols := indexColumns(records[0])
	if _, ok := cols[colDate]; !ok {
		return nil, fmt.Errorf("%w: missing %q column", model.ErrSourceFormat, colDate)
	}

	var txns []model.BankTransaction
	for i, rec := range records[1:] {
		txn, err := parseGenericRow(cols, rec, opts)
		if err != nil {
			return nil, fmt.Errorf("%w: row %d: %w", model.ErrSourceFormat, i+2, err)
		}
		txns = append(txns, txn)
	}
	return txns, nil
}

func indexColumns(header []string) map[string]int {
	cols := make(map[string]int, len(header))
	for i, h := range header {
		cols[strings.ToLower(strings.TrimSpace(h))] = i
	}
	return cols
}

func parseGenericRow(cols map[string]int, rec []string, opts ParseOptions) (model.BankTransaction, error) {
	field := func(name string) string {
		i, ok := cols[name]
		if !ok || i >= len(rec) {
			return ""
		}
		return strings.TrimSpace(rec[i])
	}

	date, err := time.Parse(model.DateLayout, field(colDate))
	if err != nil {
		return model.BankTransaction{}, fmt.Errorf("parsing date %q: %w", field(colDate), err)
	}

	amount, err := resolveAmount(field(colAmount), field(colDebit), field(colCredit), opts.Invert)
	if err != nil {
		return model.BankTransaction{}, err
	}

	desc := field(colDescription)
	name := field(colName)
	if name == "" {
		name = desc
	}

	return model.BankTransaction{
		Date:        date,
		Name:        name,
		Description: desc,
		Amount:      amount,
	}, nil
}

// resolveAmount applies the column priority: the amount column (negated when
// invert is set), else debit as is, else credit negated. Empty cells count
// as absent.
func resolveAmount(amount, debit, credit string, invert bool) (decimal.Decimal, error) {
	switch {
	case amount != "":
		d, err := decimal.NewFromString(amount)
		if err != nil {
			return decimal.Zero, fmt.Errorf("parsing amount %q: %w", amount, err)
		}
		if invert {
			d = d.Neg()
		}
		return d, nil
	case debit != "":
		d, err := decimal.NewFromString(debit)
		if err != nil {
			return decimal.Zero, fmt.Errorf("parsing debit %q: %w", debit, err)
		}
		return d, nil
	case credit != "":
		d, err := decimal.NewFromString(credit)
		if err != nil {
			return decimal.Zero, fmt.Errorf("parsing credit %q: %w", credit, err)
		}
		return d.Neg(), nil
	default:
		return decimal.Zero, fmt.Errorf("row needs an amount, debit or credit value")
	}
}
