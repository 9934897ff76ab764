package journal

import (
	"strings"

	"github.com/cleared-dev/ledger/internal/model"
)

// Filter returns the records for which token is a case-sensitive substring of
// any search field. An empty token keeps every record.
func Filter[T model.Searchable](records []T, token string) []T {
	if token == "" {
		return records
	}
	var out []T
	for _, r := range records {
		if Matches(r, token) {
			out = append(out, r)
		}
	}
	return out
}

// Matches reports whether token occurs in any of r's search fields.
func Matches(r model.Searchable, token string) bool {
	for _, field := range r.SearchFields() {
		if strings.Contains(field, token) {
			return true
		}
	}
	return false
}
