package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// DateLayout is the on-disk and display format for transaction dates.
const DateLayout = "2006-01-02"

// Split is one (account, amount) leg of a composite transaction.
type Split struct {
	Account string
	Amount  decimal.Decimal
}

// Transaction is a persisted ledger transaction. A transaction with splits is
// composite; otherwise it is simple and moves Amount from Offset into Account.
// Missing account fields are "" and a missing amount is zero.
type Transaction struct {
	Date        time.Time
	Description string
	Account     string
	Offset      string
	Amount      decimal.Decimal
	Splits      []Split
}

// IsComposite reports whether the transaction carries explicit splits.
func (t Transaction) IsComposite() bool {
	return len(t.Splits) > 0
}

// SearchFields returns the fields matched by free-text filters.
func (t Transaction) SearchFields() []string {
	return []string{
		t.Date.Format(DateLayout),
		t.Amount.String(),
		t.Account,
		t.Offset,
		t.Description,
	}
}

// BankTransaction represents a parsed bank CSV row.
type BankTransaction struct {
	Date        time.Time
	Name        string // payee, used for account matching
	Description string
	Amount      decimal.Decimal // negative = money out, positive = money in
}
