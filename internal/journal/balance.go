package journal

import (
	"github.com/shopspring/decimal"

	"github.com/cleared-dev/ledger/internal/model"
)

// AccountBalance is the final balance of one declared account.
type AccountBalance struct {
	Account string
	Balance decimal.Decimal
}

// Type returns the account's AccountType.
func (b AccountBalance) Type() model.AccountType {
	return model.AccountTypeOf(b.Account)
}

// Section is a run of consecutive balances sharing an AccountType.
type Section struct {
	Type     model.AccountType
	Balances []AccountBalance
}

// BalanceSheet holds final balances in declared order.
type BalanceSheet struct {
	Balances []AccountBalance
	// Check is the sum of all balances; zero for a balanced ledger. It is
	// informational and never an error.
	Check decimal.Decimal
	// Unmatched holds entries whose account is not declared. They do not
	// contribute to any balance.
	Unmatched []model.Entry
}

// Balances combines opening amounts with every flattened entry.
//
// Each entry is added to every declared account whose name matches under the
// two-part rule (model.SameAccount). Entries matching nothing are skipped.
func Balances(doc *model.Document) BalanceSheet {
	sheet := BalanceSheet{
		Balances: make([]AccountBalance, len(doc.Accounts)),
		Check:    decimal.Zero,
	}
	for i, a := range doc.Accounts {
		sheet.Balances[i] = AccountBalance{Account: a.Name, Balance: a.Opening}
	}

	for _, e := range Flatten(doc) {
		matched := false
		for i := range sheet.Balances {
			if model.SameAccount(sheet.Balances[i].Account, e.Account) {
				sheet.Balances[i].Balance = sheet.Balances[i].Balance.Add(e.Amount)
				matched = true
			}
		}
		if !matched {
			sheet.Unmatched = append(sheet.Unmatched, e)
		}
	}

	for _, b := range sheet.Balances {
		sheet.Check = sheet.Check.Add(b.Balance)
	}
	return sheet
}

// Sections groups balances by AccountType without reordering: a new section
// starts whenever the type differs from the previous row.
func (s BalanceSheet) Sections() []Section {
	var sections []Section
	for _, b := range s.Balances {
		t := b.Type()
		if len(sections) == 0 || sections[len(sections)-1].Type != t {
			sections = append(sections, Section{Type: t})
		}
		last := &sections[len(sections)-1]
		last.Balances = append(last.Balances, b)
	}
	return sections
}
