package journal

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/cleared-dev/ledger/internal/accounts"
	"github.com/cleared-dev/ledger/internal/model"
)

// BudgetRow compares an account's actual activity with its budget target.
type BudgetRow struct {
	Account string
	Budget  decimal.Decimal
	Actual  decimal.Decimal
	Delta   decimal.Decimal // Budget - Actual
}

// Budget reports income and expense activity for one period.
//
// period is compared for exact equality with the entry date formatted by g's
// period token: "2020" for yearly, "03" for monthly, "15" for daily. Monthly
// and yearly targets come from the matching account; daily has no target.
func Budget(doc *model.Document, period string, g Granularity) ([]BudgetRow, error) {
	if g == None {
		return nil, fmt.Errorf("%w: budget needs a daily, monthly or yearly group", model.ErrInvalidInput)
	}

	var survivors []model.Entry
	for _, e := range Flatten(doc) {
		if !isIncomeStatement(e.Type()) {
			continue
		}
		if g.PeriodToken(e.Date) != period {
			continue
		}
		survivors = append(survivors, e)
	}

	// With no period granularity every survivor lands in the single "" bucket.
	actuals, ok := SumByPeriodAccount(survivors, None).Bucket("")
	if !ok {
		return nil, nil
	}

	svc := accounts.NewService(doc.Accounts)
	rows := make([]BudgetRow, 0, actuals.Len())
	for _, name := range actuals.Keys() {
		actual, _ := actuals.Get(name)
		target := decimal.Zero
		if acct, found := svc.Lookup(name); found {
			target = budgetTarget(acct, g)
		}
		rows = append(rows, BudgetRow{
			Account: name,
			Budget:  target,
			Actual:  actual,
			Delta:   target.Sub(actual),
		})
	}
	return rows, nil
}

func isIncomeStatement(t model.AccountType) bool {
	return t == model.AccountTypeIncome || t == model.AccountTypeExpense
}

func budgetTarget(a model.Account, g Granularity) decimal.Decimal {
	var target *decimal.Decimal
	switch g {
	case Monthly:
		target = a.BudgetMonth
	case Yearly:
		target = a.BudgetYear
	}
	if target == nil {
		return decimal.Zero
	}
	return *target
}
