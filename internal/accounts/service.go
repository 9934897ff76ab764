package accounts

import (
	"github.com/cleared-dev/ledger/internal/model"
)

// Service provides in-memory lookup over the declared accounts.
type Service struct {
	accounts []model.Account
}

// NewService creates a Service from a slice of accounts. Declared order is kept.
func NewService(accounts []model.Account) *Service {
	return &Service{accounts: accounts}
}

// All returns all accounts in declared order.
func (s *Service) All() []model.Account {
	return s.accounts
}

// Lookup returns the first declared account matching name under the
// two-part rule (case-insensitive path, exact account type).
func (s *Service) Lookup(name string) (model.Account, bool) {
	for _, a := range s.accounts {
		if model.SameAccount(a.Name, name) {
			return a, true
		}
	}
	return model.Account{}, false
}

// Exists reports whether name matches a declared account.
func (s *Service) Exists(name string) bool {
	_, ok := s.Lookup(name)
	return ok
}

// ByType returns all accounts of the given type.
func (s *Service) ByType(accountType model.AccountType) []model.Account {
	var result []model.Account
	for _, a := range s.accounts {
		if a.Type() == accountType {
			result = append(result, a)
		}
	}
	return result
}
