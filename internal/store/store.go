// Package store reads and writes the YAML ledger file.
package store

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"github.com/cleared-dev/ledger/internal/model"
)

type fileRecord struct {
	Accounts     []accountRecord     `yaml:"accounts"`
	Transactions []transactionRecord `yaml:"transactions"`
}

type accountRecord struct {
	Account     string  `yaml:"account"`
	Amount      amount  `yaml:"amount"`
	BudgetMonth *amount `yaml:"budget_month,omitempty"`
	BudgetYear  *amount `yaml:"budget_year,omitempty"`
}

type transactionRecord struct {
	Date        string        `yaml:"date"`
	Description string        `yaml:"description"`
	Account     *string       `yaml:"account,omitempty"`
	Offset      *string       `yaml:"offset_account,omitempty"`
	Amount      *amount       `yaml:"amount,omitempty"`
	Splits      []splitRecord `yaml:"transactions,omitempty"`
}

type splitRecord struct {
	Account string `yaml:"account"`
	Amount  amount `yaml:"amount"`
}

// amount is a decimal read from and written to a plain YAML number without
// passing through float64.
type amount struct {
	decimal.Decimal
}

func (a *amount) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: amount must be a number", node.Line)
	}
	d, err := decimal.NewFromString(node.Value)
	if err != nil {
		return fmt.Errorf("line %d: invalid amount %q: %w", node.Line, node.Value, err)
	}
	a.Decimal = d
	return nil
}

func (a amount) MarshalYAML() (any, error) {
	value := a.String()
	tag := "!!int"
	if strings.Contains(value, ".") {
		tag = "!!float"
	}
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: tag, Value: value}, nil
}

// Load reads a ledger file from disk.
func Load(path string) (*model.Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: opening ledger: %w", model.ErrIO, err)
	}
	defer f.Close()

	doc, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("reading ledger %s: %w", path, err)
	}
	return doc, nil
}

// Decode parses a ledger document. Absent optional fields resolve here, once:
// missing accounts become "" and missing amounts become zero.
func Decode(r io.Reader) (*model.Document, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("%w: reading ledger: %w", model.ErrIO, err)
	}

	var rec fileRecord
	if err := yaml.Unmarshal(data, &rec); err != nil {
		return nil, fmt.Errorf("%w: decoding ledger: %w", model.ErrParsing, err)
	}

	doc := &model.Document{
		Accounts:     make([]model.Account, 0, len(rec.Accounts)),
		Transactions: make([]model.Transaction, 0, len(rec.Transactions)),
	}
	for _, a := range rec.Accounts {
		doc.Accounts = append(doc.Accounts, unmarshalAccount(a))
	}
	for i, t := range rec.Transactions {
		txn, err := unmarshalTransaction(t)
		if err != nil {
			return nil, fmt.Errorf("transaction %d: %w", i+1, err)
		}
		doc.Transactions = append(doc.Transactions, txn)
	}
	return doc, nil
}

// Encode writes doc as YAML.
func Encode(w io.Writer, doc *model.Document) error {
	rec := fileRecord{
		Accounts:     make([]accountRecord, 0, len(doc.Accounts)),
		Transactions: make([]transactionRecord, 0, len(doc.Transactions)),
	}
	for _, a := range doc.Accounts {
		rec.Accounts = append(rec.Accounts, marshalAccount(a))
	}
	for _, t := range doc.Transactions {
		rec.Transactions = append(rec.Transactions, marshalTransaction(t))
	}
	return encodeRecord(w, rec)
}

// EncodeTransactions writes txns as a YAML document holding only a
// transactions list, suitable for pasting into a ledger file.
func EncodeTransactions(w io.Writer, txns []model.Transaction) error {
	out := struct {
		Transactions []transactionRecord `yaml:"transactions"`
	}{Transactions: make([]transactionRecord, 0, len(txns))}
	for _, t := range txns {
		out.Transactions = append(out.Transactions, marshalTransaction(t))
	}
	return encodeRecord(w, out)
}

// Save writes doc to path, replacing any existing file.
func Save(path string, doc *model.Document) error {
	var buf bytes.Buffer
	if err := Encode(&buf, doc); err != nil {
		return err
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("%w: writing ledger: %w", model.ErrIO, err)
	}
	return nil
}

// AppendTransactions loads the ledger at path, appends txns and writes it back.
func AppendTransactions(path string, txns []model.Transaction) error {
	doc, err := Load(path)
	if err != nil {
		return err
	}
	doc.Transactions = append(doc.Transactions, txns...)
	return Save(path, doc)
}

func encodeRecord(w io.Writer, v any) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("%w: encoding ledger: %w", model.ErrIO, err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("%w: encoding ledger: %w", model.ErrIO, err)
	}
	return nil
}

func unmarshalAccount(a accountRecord) model.Account {
	acct := model.Account{
		Name:    a.Account,
		Opening: a.Amount.Decimal,
	}
	if a.BudgetMonth != nil {
		v := a.BudgetMonth.Decimal
		acct.BudgetMonth = &v
	}
	if a.BudgetYear != nil {
		v := a.BudgetYear.Decimal
		acct.BudgetYear = &v
	}
	return acct
}

func marshalAccount(a model.Account) accountRecord {
	rec := accountRecord{
		Account: a.Name,
		Amount:  amount{a.Opening},
	}
	if a.BudgetMonth != nil {
		rec.BudgetMonth = &amount{*a.BudgetMonth}
	}
	if a.BudgetYear != nil {
		rec.BudgetYear = &amount{*a.BudgetYear}
	}
	return rec
}

var errEmptyDate = errors.New("missing date")

func unmarshalTransaction(t transactionRecord) (model.Transaction, error) {
	if t.Date == "" {
		return model.Transaction{}, fmt.Errorf("%w: %w", model.ErrParsing, errEmptyDate)
	}
	date, err := time.Parse(model.DateLayout, t.Date)
	if err != nil {
		return model.Transaction{}, fmt.Errorf("%w: parsing date %q: %w", model.ErrParsing, t.Date, err)
	}

	txn := model.Transaction{
		Date:        date,
		Description: t.Description,
		Amount:      decimal.Zero,
	}
	if t.Account != nil {
		txn.Account = *t.Account
	}
	if t.Offset != nil {
		txn.Offset = *t.Offset
	}
	if t.Amount != nil {
		txn.Amount = t.Amount.Decimal
	}
	for _, s := range t.Splits {
		txn.Splits = append(txn.Splits, model.Split{
			Account: s.Account,
			Amount:  s.Amount.Decimal,
		})
	}
	return txn, nil
}

func marshalTransaction(t model.Transaction) transactionRecord {
	rec := transactionRecord{
		Date:        t.Date.Format(model.DateLayout),
		Description: t.Description,
	}
	if t.Account != "" {
		rec.Account = &t.Account
	}
	if t.Offset != "" {
		rec.Offset = &t.Offset
	}
	if !t.IsComposite() || !t.Amount.IsZero() {
		rec.Amount = &amount{t.Amount}
	}
	for _, s := range t.Splits {
		rec.Splits = append(rec.Splits, splitRecord{
			Account: s.Account,
			Amount:  amount{s.Amount},
		})
	}
	return rec
}
