package journal

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/cleared-dev/ledger/internal/accounts"
	"github.com/cleared-dev/ledger/internal/model"
)

// Finding kinds reported by Validate.
const (
	FindingUnbalanced = iota + 1
	FindingUndeclaredAccount
	FindingEmptyTransaction
	FindingDuplicateAccount
)

// ValidationError describes a single ledger inconsistency. None of them stop
// a report from being produced.
type ValidationError struct {
	Kind        int
	Ref         string // "transaction N" or "account NAME"
	Description string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("check %d [%s]: %s", e.Kind, e.Ref, e.Description)
}

// Validate lints a ledger document.
func Validate(doc *model.Document) []ValidationError {
	var errs []ValidationError

	// Duplicate declarations would double-count every matching entry.
	for i, a := range doc.Accounts {
		for _, prev := range doc.Accounts[:i] {
			if model.SameAccount(prev.Name, a.Name) {
				errs = append(errs, ValidationError{
					Kind:        FindingDuplicateAccount,
					Ref:         "account " + a.Name,
					Description: fmt.Sprintf("duplicates %s", prev.Name),
				})
				break
			}
		}
	}

	svc := accounts.NewService(doc.Accounts)
	for i, t := range doc.Transactions {
		ref := fmt.Sprintf("transaction %d", i+1)
		entries := FlattenTransaction(t)

		if len(entries) == 0 {
			errs = append(errs, ValidationError{
				Kind:        FindingEmptyTransaction,
				Ref:         ref,
				Description: fmt.Sprintf("%q has no account, offset or splits", t.Description),
			})
			continue
		}

		if t.IsComposite() {
			total := decimal.Zero
			for _, e := range entries {
				total = total.Add(e.Amount)
			}
			if !total.IsZero() {
				errs = append(errs, ValidationError{
					Kind:        FindingUnbalanced,
					Ref:         ref,
					Description: fmt.Sprintf("splits of %q sum to %s", t.Description, total),
				})
			}
		}

		for _, e := range entries {
			if !svc.Exists(e.Account) {
				errs = append(errs, ValidationError{
					Kind:        FindingUndeclaredAccount,
					Ref:         ref,
					Description: fmt.Sprintf("account %q is not declared", e.Account),
				})
			}
		}
	}

	return errs
}
