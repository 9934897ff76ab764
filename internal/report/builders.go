package report

import (
	"fmt"

	"github.com/cleared-dev/ledger/internal/journal"
	"github.com/cleared-dev/ledger/internal/model"
)

// AllPeriods labels the single bucket produced when no granularity is set.
const AllPeriods = "all"

// Accounts lists declared accounts in declared order.
func Accounts(accts []model.Account) Table {
	t := Table{
		Title:   "Accounts",
		Headers: []string{"Account", "Type", "Opening"},
	}
	for _, a := range accts {
		t.add(Text(a.Name), Text(string(a.Type())), Amount(a.Opening))
	}
	return t
}

// Balance lists final balances grouped into sections, followed by the check
// figure.
func Balance(sheet journal.BalanceSheet) Table {
	t := Table{
		Title:   "Balance",
		Headers: []string{"Account", "Balance"},
	}
	for _, s := range sheet.Sections() {
		t.section(string(s.Type))
		for _, b := range s.Balances {
			t.add(Text(b.Account), Amount(b.Balance))
		}
	}
	t.section("check")
	t.add(Text("total"), Amount(sheet.Check))
	return t
}

// Register lists entries one per row.
func Register(entries []model.Entry) Table {
	t := Table{
		Title:   "Register",
		Headers: []string{"Date", "Description", "Account", "Amount"},
	}
	for _, e := range entries {
		t.add(
			Text(e.Date.Format(model.DateLayout)),
			Text(e.Description),
			Text(e.Account),
			Amount(e.Amount),
		)
	}
	return t
}

// RegisterTotals lists one total per period in chronological order.
func RegisterTotals(totals *journal.Totals, g journal.Granularity) Table {
	t := Table{
		Title:   fmt.Sprintf("Register (%s)", g),
		Headers: []string{"Period", "Amount"},
	}
	for _, key := range totals.SortedKeys() {
		amt, _ := totals.Get(key)
		t.add(Text(periodLabel(key)), Amount(amt))
	}
	return t
}

// RegisterByAccount lists per-account totals under one section per period.
// Accounts keep first-seen order inside each period.
func RegisterByAccount(grouped *journal.Grouped, g journal.Granularity) Table {
	t := Table{
		Title:   fmt.Sprintf("Register by account (%s)", g),
		Headers: []string{"Account", "Amount"},
	}
	for _, key := range grouped.SortedBuckets() {
		bucket, _ := grouped.Bucket(key)
		t.section(periodLabel(key))
		for _, name := range bucket.Keys() {
			amt, _ := bucket.Get(name)
			t.add(Text(name), Amount(amt))
		}
	}
	return t
}

// Budget lists budget rows for one period.
func Budget(rows []journal.BudgetRow, period string, g journal.Granularity) Table {
	t := Table{
		Title:   fmt.Sprintf("Budget %s (%s)", period, g),
		Headers: []string{"Account", "Budget", "Actual", "Delta"},
	}
	for _, r := range rows {
		t.add(Text(r.Account), Amount(r.Budget), Amount(r.Actual), Amount(r.Delta))
	}
	return t
}

func periodLabel(key string) string {
	if key == "" {
		return AllPeriods
	}
	return key
}
