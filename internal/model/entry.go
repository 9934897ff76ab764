package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// EntrySource records which transaction shape produced an entry.
type EntrySource int

const (
	SourceSimple EntrySource = iota
	SourceComposite
)

func (s EntrySource) String() string {
	if s == SourceComposite {
		return "composite"
	}
	return "simple"
}

// Entry is a single-account, single-amount line derived from a transaction.
// Entries are never persisted.
type Entry struct {
	Date        time.Time
	Description string
	Account     string
	Amount      decimal.Decimal
	Source      EntrySource
}

// Type returns the AccountType of the entry's account.
func (e Entry) Type() AccountType {
	return AccountTypeOf(e.Account)
}

// SearchFields returns the fields matched by free-text filters. Entries have
// no offset account, so only four fields are searched.
func (e Entry) SearchFields() []string {
	return []string{
		e.Date.Format(DateLayout),
		e.Amount.String(),
		e.Account,
		e.Description,
	}
}

// Searchable is implemented by records that can be matched by a text filter.
type Searchable interface {
	SearchFields() []string
}
