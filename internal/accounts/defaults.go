package accounts

import "github.com/cleared-dev/ledger/internal/model"

// Fallback accounts for imported rows that match no existing transaction.
const (
	GeneralExpense = "expense:general"
	GeneralIncome  = "income:general"
)

// Chart templates accepted by DefaultChart.
const (
	TemplateHousehold = "household"
	TemplateMinimal   = "minimal"
)

// DefaultChart returns the starter accounts for a template name. Unknown
// names get the household chart.
func DefaultChart(template string) []model.Account {
	if template == TemplateMinimal {
		return minimalChart()
	}
	return householdChart()
}

// minimalChart holds only what an import needs to post against.
func minimalChart() []model.Account {
	return []model.Account{
		{Name: "asset:checking"},
		{Name: "equity:opening"},
		{Name: GeneralIncome},
		{Name: GeneralExpense},
	}
}

func householdChart() []model.Account {
	return []model.Account{
		{Name: "asset:cash"},
		{Name: "asset:checking"},
		{Name: "asset:savings"},
		{Name: "liability:credit_card"},
		{Name: "equity:opening"},
		{Name: GeneralIncome},
		{Name: "income:salary"},
		{Name: GeneralExpense},
		{Name: "expense:groceries"},
		{Name: "expense:rent"},
		{Name: "expense:utilities"},
	}
}
