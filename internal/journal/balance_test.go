package journal

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cleared-dev/ledger/internal/model"
)

func balanceOf(t *testing.T, sheet BalanceSheet, account string) string {
	t.Helper()
	for _, b := range sheet.Balances {
		if b.Account == account {
			return b.Balance.String()
		}
	}
	t.Fatalf("account %s not in balance sheet", account)
	return ""
}

func TestBalances_SingleTransaction(t *testing.T) {
	doc := &model.Document{
		Accounts: []model.Account{
			{Name: "asset:cash", Opening: dec("100")},
			{Name: "expense:foo"},
		},
		Transactions: []model.Transaction{
			simple(jan1, "lunch", "asset:cash", "expense:foo", "10"),
		},
	}

	sheet := Balances(doc)
	assert.Equal(t, "110", balanceOf(t, sheet, "asset:cash"))
	assert.Equal(t, "-10", balanceOf(t, sheet, "expense:foo"))
	assert.Equal(t, "100", sheet.Check.String())
	assert.Empty(t, sheet.Unmatched)
}

func TestBalances_Example(t *testing.T) {
	sheet := Balances(testDoc())

	require.Len(t, sheet.Balances, 4)
	assert.Equal(t, "18", balanceOf(t, sheet, "asset:cash"))
	assert.Equal(t, "32", balanceOf(t, sheet, "expense:foo"))
	assert.Equal(t, "20", balanceOf(t, sheet, "expense:bar"))
	assert.Equal(t, "30", balanceOf(t, sheet, "expense:baz"))
	assert.Equal(t, "100", sheet.Check.String())
}

func TestBalances_DeclaredOrderPreserved(t *testing.T) {
	doc := &model.Document{
		Accounts: []model.Account{
			{Name: "expense:zeta"},
			{Name: "asset:alpha"},
			{Name: "expense:beta"},
		},
	}

	sheet := Balances(doc)
	names := make([]string, len(sheet.Balances))
	for i, b := range sheet.Balances {
		names[i] = b.Account
	}
	assert.Equal(t, []string{"expense:zeta", "asset:alpha", "expense:beta"}, names)
}

func TestBalances_UnmatchedEntriesDropped(t *testing.T) {
	doc := &model.Document{
		Accounts: []model.Account{{Name: "asset:cash", Opening: dec("5")}},
		Transactions: []model.Transaction{
			simple(jan1, "to nowhere", "asset:cash", "expense:undeclared", "3"),
		},
	}

	sheet := Balances(doc)
	require.Len(t, sheet.Balances, 1)
	assert.Equal(t, "8", balanceOf(t, sheet, "asset:cash"))
	assert.Equal(t, "8", sheet.Check.String(), "non-zero check is informational only")

	require.Len(t, sheet.Unmatched, 1)
	assert.Equal(t, "expense:undeclared", sheet.Unmatched[0].Account)
}

func TestBalances_CaseInsensitivePath(t *testing.T) {
	doc := &model.Document{
		Accounts: []model.Account{{Name: "asset:Cash"}},
		Transactions: []model.Transaction{
			{Date: jan1, Splits: []model.Split{{Account: "asset:cash", Amount: dec("7")}}},
		},
	}

	sheet := Balances(doc)
	assert.Equal(t, "7", balanceOf(t, sheet, "asset:Cash"))
}

func TestBalances_AccountTypeMustMatch(t *testing.T) {
	doc := &model.Document{
		Accounts: []model.Account{
			{Name: "income:general"},
			{Name: "expense:general"},
		},
		Transactions: []model.Transaction{
			simple(jan1, "coffee", "expense:general", "income:general", "4"),
			{Date: jan1, Splits: []model.Split{{Account: "Expense:general", Amount: dec("1")}}},
		},
	}

	sheet := Balances(doc)
	assert.Equal(t, "4", balanceOf(t, sheet, "expense:general"))
	assert.Equal(t, "-4", balanceOf(t, sheet, "income:general"))
	require.Len(t, sheet.Unmatched, 1, "a differently-cased type is a different account")
	assert.Equal(t, "Expense:general", sheet.Unmatched[0].Account)
}

func TestBalances_EmptyAccountLegIsUnmatched(t *testing.T) {
	doc := &model.Document{
		Accounts:     []model.Account{{Name: "asset:cash"}},
		Transactions: []model.Transaction{{Date: jan1, Account: "asset:cash", Amount: dec("2")}},
	}

	sheet := Balances(doc)
	assert.Equal(t, "2", balanceOf(t, sheet, "asset:cash"))
	require.Len(t, sheet.Unmatched, 1)
	assert.Equal(t, "", sheet.Unmatched[0].Account)
}

func TestBalanceSheet_Sections(t *testing.T) {
	doc := &model.Document{
		Accounts: []model.Account{
			{Name: "asset:cash"},
			{Name: "asset:bank"},
			{Name: "expense:food"},
			{Name: "asset:house"},
			{Name: "income:salary"},
		},
	}

	sections := Balances(doc).Sections()
	require.Len(t, sections, 4)

	assert.Equal(t, model.AccountTypeAsset, sections[0].Type)
	assert.Len(t, sections[0].Balances, 2)
	assert.Equal(t, model.AccountTypeExpense, sections[1].Type)
	assert.Equal(t, model.AccountTypeAsset, sections[2].Type, "no resort: a type may appear in two sections")
	assert.Equal(t, "asset:house", sections[2].Balances[0].Account)
	assert.Equal(t, model.AccountTypeIncome, sections[3].Type)
}

func TestBalanceSheet_SectionsEmpty(t *testing.T) {
	assert.Empty(t, Balances(&model.Document{}).Sections())
}
