package importer

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/cleared-dev/ledger/internal/model"
)

// ChaseParser parses Chase bank checking CSV exports:
// Details, Posting Date, Description, Amount, Type, Balance, Check or Slip #.
type ChaseParser struct{}

const (
	chaseDateFormat = "01/02/2006"
	chaseNumFields  = 7
	chaseColDate    = 1
	chaseColDesc    = 2
	chaseColAmount  = 3
)

// Format returns the parser name.
func (p *ChaseParser) Format() string { return "chase" }

// Parse reads a Chase CSV and returns BankTransactions. The payee name is the
// trimmed description.
func (p *ChaseParser) Parse(r io.Reader, opts ParseOptions) ([]model.BankTransaction, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = chaseNumFields

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("%w: reading chase csv: %w", model.ErrSourceFormat, err)
	}

	if len(records) <= 1 {
		return nil, nil
	}

	var txns []model.BankTransaction
	for i, rec := range records[1:] {
		txn, err := parseChaseRow(rec, opts)
		if err != nil {
			return nil, fmt.Errorf("%w: row %d: %w", model.ErrSourceFormat, i+2, err)
		}
		txns = append(txns, txn)
	}
	return txns, nil
}

func parseChaseRow(rec []string, opts ParseOptions) (model.BankTransaction, error) {
	date, err := time.Parse(chaseDateFormat, rec[chaseColDate])
	if err != nil {
		return model.BankTransaction{}, fmt.Errorf("parsing date %q: %w", rec[chaseColDate], err)
	}

	amount, err := resolveAmount(strings.TrimSpace(rec[chaseColAmount]), "", "", opts.Invert)
	if err != nil {
		return model.BankTransaction{}, err
	}

	desc := strings.TrimSpace(rec[chaseColDesc])
	return model.BankTransaction{
		Date:        date,
		Name:        desc,
		Description: desc,
		Amount:      amount,
	}, nil
}
