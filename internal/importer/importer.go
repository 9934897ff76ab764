// Package importer converts bank CSV exports into ledger transactions.
package importer

import (
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/cleared-dev/ledger/internal/accounts"
	"github.com/cleared-dev/ledger/internal/model"
)

// ParseOptions adjusts how rows are read.
type ParseOptions struct {
	// Invert negates amounts read from an amount column. Debit and credit
	// columns are unaffected.
	Invert bool
}

// Parser converts a bank CSV file into BankTransactions.
type Parser interface {
	Parse(r io.Reader, opts ParseOptions) ([]model.BankTransaction, error)
	Format() string
}

// Registry holds named parsers.
type Registry struct {
	parsers map[string]Parser
}

// NewRegistry creates an empty parser registry.
func NewRegistry() *Registry {
	return &Registry{parsers: make(map[string]Parser)}
}

// Register adds a parser. Panics on duplicate format.
func (r *Registry) Register(p Parser) {
	key := strings.ToLower(p.Format())
	if _, ok := r.parsers[key]; ok {
		panic("duplicate parser format: " + key)
	}
	r.parsers[key] = p
}

// Get returns the parser for format, or nil.
func (r *Registry) Get(format string) Parser {
	return r.parsers[strings.ToLower(format)]
}

// Lookup is Get with an ErrInvalidInput error for unknown formats.
func (r *Registry) Lookup(format string) (Parser, error) {
	p := r.Get(format)
	if p == nil {
		return nil, fmt.Errorf("%w: unknown csv source %q (want %s)",
			model.ErrInvalidInput, format, strings.Join(r.Formats(), ", "))
	}
	return p, nil
}

// Formats returns the registered format names, sorted.
func (r *Registry) Formats() []string {
	names := make([]string, 0, len(r.parsers))
	for name := range r.parsers {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// DefaultRegistry returns a registry with all built-in parsers.
func DefaultRegistry() *Registry {
	r := NewRegistry()
	r.Register(&GenericParser{})
	r.Register(&ChaseParser{})
	return r
}

// MatchAccount picks the account for a bank row. It is the account of the
// first existing transaction whose description equals name; transactions
// without an account are skipped. With no match, negative amounts go to
// accounts.GeneralExpense and the rest to accounts.GeneralIncome.
func MatchAccount(bt model.BankTransaction, existing []model.Transaction) string {
	for _, t := range existing {
		if t.Account == "" {
			continue
		}
		if t.Description == bt.Name {
			return t.Account
		}
	}
	if bt.Amount.IsNegative() {
		return accounts.GeneralExpense
	}
	return accounts.GeneralIncome
}

// Build turns bank rows into simple transactions against offset. Matching
// only considers existing; rows built earlier in the same call are not
// candidates.
func Build(rows []model.BankTransaction, existing []model.Transaction, offset string) ([]model.Transaction, error) {
	if offset == "" {
		return nil, fmt.Errorf("%w: an offset account is required", model.ErrInvalidInput)
	}
	txns := make([]model.Transaction, 0, len(rows))
	for _, bt := range rows {
		txns = append(txns, model.Transaction{
			Date:        bt.Date,
			Description: bt.Name,
			Account:     MatchAccount(bt, existing),
			Offset:      offset,
			Amount:      bt.Amount,
		})
	}
	return txns, nil
}

// Request describes one import.
type Request struct {
	Source string // parser format name
	Offset string
	Invert bool
}

// Import parses in with the requested parser and builds transactions matched
// against doc.
func (r *Registry) Import(in io.Reader, doc *model.Document, req Request) ([]model.Transaction, error) {
	p, err := r.Lookup(req.Source)
	if err != nil {
		return nil, err
	}
	rows, err := p.Parse(in, ParseOptions{Invert: req.Invert})
	if err != nil {
		return nil, err
	}
	return Build(rows, doc.Transactions, req.Offset)
}
