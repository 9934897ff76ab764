package journal

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/cleared-dev/ledger/internal/model"
)

var (
	jan1  = date(2020, 1, 1)
	feb15 = date(2020, 2, 15)
	feb20 = date(2020, 2, 20)
)

func date(y, m, d int) time.Time {
	return time.Date(y, time.Month(m), d, 0, 0, 0, 0, time.UTC)
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func decPtr(s string) *decimal.Decimal {
	d := dec(s)
	return &d
}

func simple(d time.Time, desc, account, offset, amount string) model.Transaction {
	return model.Transaction{
		Date:        d,
		Description: desc,
		Account:     account,
		Offset:      offset,
		Amount:      dec(amount),
	}
}

// testDoc mirrors the canonical example ledger: two summary transactions and
// one detailed three-way split, all on 2020-01-01.
func testDoc() *model.Document {
	return &model.Document{
		Accounts: []model.Account{
			{Name: "asset:cash", Opening: dec("100")},
			{Name: "expense:foo"},
			{Name: "expense:bar"},
			{Name: "expense:baz"},
		},
		Transactions: []model.Transaction{
			simple(jan1, "summary_transaction", "asset:cash", "expense:foo", "10"),
			simple(jan1, "summary_transaction", "asset:cash", "expense:foo", "-42"),
			{
				Date:        jan1,
				Description: "detailed_transaction",
				Splits: []model.Split{
					{Account: "asset:cash", Amount: dec("-50")},
					{Account: "expense:bar", Amount: dec("20")},
					{Account: "expense:baz", Amount: dec("30")},
				},
			},
		},
	}
}

// budgetDoc extends testDoc with budget targets and activity in February.
func budgetDoc() *model.Document {
	doc := testDoc()
	doc.Accounts = []model.Account{
		{Name: "asset:cash", Opening: dec("100")},
		{Name: "asset:checking"},
		{Name: "liability:credit_card"},
		{Name: "income:salary", BudgetMonth: decPtr("-3000"), BudgetYear: decPtr("-36000")},
		{Name: "expense:foo"},
		{Name: "expense:bar", BudgetMonth: decPtr("25"), BudgetYear: decPtr("300")},
		{Name: "expense:baz", BudgetMonth: decPtr("40")},
	}
	doc.Transactions = append(doc.Transactions,
		simple(feb15, "paycheck", "asset:checking", "income:salary", "3000"),
		simple(feb20, "groceries", "expense:bar", "liability:credit_card", "18.5"),
	)
	return doc
}

func sumEntries(entries []model.Entry) decimal.Decimal {
	total := decimal.Zero
	for _, e := range entries {
		total = total.Add(e.Amount)
	}
	return total
}
