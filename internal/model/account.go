package model

import (
	"strings"

	"github.com/shopspring/decimal"
)

// AccountType is the leading path segment of an account name.
type AccountType string

const (
	AccountTypeAsset     AccountType = "asset"
	AccountTypeLiability AccountType = "liability"
	AccountTypeEquity    AccountType = "equity"
	AccountTypeIncome    AccountType = "income"
	AccountTypeExpense   AccountType = "expense"
)

// AccountSeparator delimits path segments in an account name.
const AccountSeparator = ":"

// Account is a declared account with its opening amount and optional budget targets.
type Account struct {
	Name        string
	Opening     decimal.Decimal
	BudgetMonth *decimal.Decimal // nil = no monthly target
	BudgetYear  *decimal.Decimal // nil = no yearly target
}

// Type returns the account's AccountType.
func (a Account) Type() AccountType {
	return AccountTypeOf(a.Name)
}

// AccountTypeOf returns the first path segment of name.
// "expense:food:groceries" -> "expense"
func AccountTypeOf(name string) AccountType {
	before, _, _ := strings.Cut(name, AccountSeparator)
	return AccountType(before)
}

// SameAccount reports whether two account names refer to the same account:
// the full paths match case-insensitively and the account types match exactly.
func SameAccount(a, b string) bool {
	return strings.EqualFold(a, b) && AccountTypeOf(a) == AccountTypeOf(b)
}
