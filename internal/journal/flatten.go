// Package journal turns ledger transactions into elementary entries and
// computes balances, period totals and budget comparisons from them.
package journal

import (
	"github.com/cleared-dev/ledger/internal/model"
)

// Flatten expands every transaction in doc into elementary entries.
// Entries from one transaction stay contiguous and in transaction order.
func Flatten(doc *model.Document) []model.Entry {
	entries := make([]model.Entry, 0, 2*len(doc.Transactions))
	for _, t := range doc.Transactions {
		entries = append(entries, FlattenTransaction(t)...)
	}
	return entries
}

// FlattenTransaction expands a single transaction.
//
// A composite transaction yields one entry per split, in split order, and its
// scalar account and amount are ignored. A simple transaction yields the
// account leg followed by the negated offset leg. A transaction with no
// account, no offset and no splits yields nothing.
func FlattenTransaction(t model.Transaction) []model.Entry {
	if t.IsComposite() {
		entries := make([]model.Entry, 0, len(t.Splits))
		for _, s := range t.Splits {
			entries = append(entries, model.Entry{
				Date:        t.Date,
				Description: t.Description,
				Account:     s.Account,
				Amount:      s.Amount,
				Source:      model.SourceComposite,
			})
		}
		return entries
	}

	if t.Account == "" && t.Offset == "" {
		return nil
	}

	return []model.Entry{
		{
			Date:        t.Date,
			Description: t.Description,
			Account:     t.Account,
			Amount:      t.Amount,
			Source:      model.SourceSimple,
		},
		{
			Date:        t.Date,
			Description: t.Description,
			Account:     t.Offset,
			Amount:      t.Amount.Neg(),
			Source:      model.SourceSimple,
		},
	}
}
