package store

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cleared-dev/ledger/internal/model"
)

func TestLoadTestdata(t *testing.T) {
	doc, err := Load("../../testdata/example.yaml")
	require.NoError(t, err)

	require.Len(t, doc.Accounts, 8)
	assert.Equal(t, "asset:cash", doc.Accounts[0].Name)
	assert.True(t, doc.Accounts[0].Opening.Equal(decimal.NewFromInt(100)))
	assert.Nil(t, doc.Accounts[0].BudgetMonth)

	bar := doc.Accounts[6]
	assert.Equal(t, "expense:bar", bar.Name)
	require.NotNil(t, bar.BudgetMonth)
	require.NotNil(t, bar.BudgetYear)
	assert.True(t, bar.BudgetMonth.Equal(decimal.NewFromInt(25)))
	assert.True(t, bar.BudgetYear.Equal(decimal.NewFromInt(300)))

	require.Len(t, doc.Transactions, 5)
	first := doc.Transactions[0]
	assert.Equal(t, time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC), first.Date)
	assert.Equal(t, "asset:cash", first.Account)
	assert.Equal(t, "expense:foo", first.Offset)
	assert.False(t, first.IsComposite())

	split := doc.Transactions[2]
	assert.True(t, split.IsComposite())
	assert.Len(t, split.Splits, 3)
	assert.Equal(t, "", split.Account, "missing account resolves to empty string")
	assert.True(t, split.Amount.IsZero(), "missing amount resolves to zero")
}

func TestDecode_QuotedDate(t *testing.T) {
	doc, err := Decode(strings.NewReader(`
accounts: []
transactions:
  - date: "2021-12-31"
    description: quoted
    account: asset:cash
    amount: 1.25
`))
	require.NoError(t, err)
	require.Len(t, doc.Transactions, 1)
	assert.Equal(t, 2021, doc.Transactions[0].Date.Year())
	assert.Equal(t, "1.25", doc.Transactions[0].Amount.String())
	assert.Equal(t, "", doc.Transactions[0].Offset)
}

func TestDecode_BadDate(t *testing.T) {
	_, err := Decode(strings.NewReader(`
transactions:
  - date: 01/02/2020
    description: bad
`))
	require.Error(t, err)
	assert.True(t, errors.Is(err, model.ErrParsing))
	assert.Contains(t, err.Error(), "parsing date")
}

func TestDecode_MissingDate(t *testing.T) {
	_, err := Decode(strings.NewReader("transactions:\n  - description: undated\n"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, model.ErrParsing))
}

func TestDecode_MalformedYAML(t *testing.T) {
	_, err := Decode(strings.NewReader("accounts: [\n"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, model.ErrParsing))
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, model.ErrIO))
}

func TestEncodeRoundTrip(t *testing.T) {
	orig, err := Load("../../testdata/example.yaml")
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, orig))

	got, err := Decode(&buf)
	require.NoError(t, err)

	require.Len(t, got.Accounts, len(orig.Accounts))
	for i := range orig.Accounts {
		assert.Equal(t, orig.Accounts[i].Name, got.Accounts[i].Name)
		assert.True(t, orig.Accounts[i].Opening.Equal(got.Accounts[i].Opening))
		assert.Equal(t, orig.Accounts[i].BudgetMonth == nil, got.Accounts[i].BudgetMonth == nil)
	}
	require.Len(t, got.Transactions, len(orig.Transactions))
	for i := range orig.Transactions {
		assert.Equal(t, orig.Transactions[i].Account, got.Transactions[i].Account)
		assert.Equal(t, orig.Transactions[i].Offset, got.Transactions[i].Offset)
		assert.True(t, orig.Transactions[i].Amount.Equal(got.Transactions[i].Amount))
		assert.Len(t, got.Transactions[i].Splits, len(orig.Transactions[i].Splits))
	}
}

func TestAmounts_ExactRoundTrip(t *testing.T) {
	doc, err := Decode(strings.NewReader(`accounts:
  - account: asset:savings
    amount: 12345678901234567.89
    budget_month: 0.10
transactions:
  - date: 2020-01-01
    description: interest
    account: asset:savings
    offset_account: income:interest
    amount: 0.1000000000000000055511
`))
	require.NoError(t, err)
	assert.Equal(t, "12345678901234567.89", doc.Accounts[0].Opening.String())
	assert.Equal(t, "0.1", doc.Accounts[0].BudgetMonth.String())
	assert.Equal(t, "0.1000000000000000055511", doc.Transactions[0].Amount.String())

	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, doc))
	out := buf.String()
	assert.Contains(t, out, "amount: 12345678901234567.89\n")
	assert.Contains(t, out, "budget_month: 0.1\n")
	assert.Contains(t, out, "amount: 0.1000000000000000055511\n")
	assert.NotContains(t, out, "!!", "amounts are written as plain numbers")
}

func TestAmounts_IntegersStayIntegers(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, EncodeTransactions(&buf, []model.Transaction{{
		Date:        time.Date(2020, 3, 2, 0, 0, 0, 0, time.UTC),
		Description: "paycheck",
		Account:     "income:salary",
		Offset:      "asset:checking",
		Amount:      decimal.RequireFromString("3000.00"),
	}}))
	assert.Contains(t, buf.String(), "amount: 3000\n")
	assert.NotContains(t, buf.String(), "!!")
}

func TestDecode_InvalidAmount(t *testing.T) {
	_, err := Decode(strings.NewReader(`accounts:
  - account: asset:cash
    amount: lots
`))
	require.Error(t, err)
	assert.True(t, errors.Is(err, model.ErrParsing))
	assert.Contains(t, err.Error(), `invalid amount "lots"`)
}

func TestEncode_CompositeOmitsScalarFields(t *testing.T) {
	doc := &model.Document{
		Transactions: []model.Transaction{{
			Date:        time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC),
			Description: "split",
			Splits: []model.Split{
				{Account: "asset:cash", Amount: decimal.NewFromInt(-5)},
				{Account: "expense:foo", Amount: decimal.NewFromInt(5)},
			},
		}},
	}

	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, doc))
	out := buf.String()

	assert.NotContains(t, out, "offset_account")
	assert.Contains(t, out, "transactions:")
	assert.Contains(t, out, "account: expense:foo")
}

func TestAppendTransactions(t *testing.T) {
	src, err := os.ReadFile("../../testdata/example.yaml")
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "ledger.yaml")
	require.NoError(t, os.WriteFile(path, src, 0o644))

	added := model.Transaction{
		Date:        time.Date(2020, 3, 1, 0, 0, 0, 0, time.UTC),
		Description: "coffee",
		Account:     "expense:general",
		Offset:      "liability:credit_card",
		Amount:      decimal.NewFromFloat(2.5),
	}
	require.NoError(t, AppendTransactions(path, []model.Transaction{added}))

	doc, err := Load(path)
	require.NoError(t, err)
	require.Len(t, doc.Transactions, 6)
	last := doc.Transactions[5]
	assert.Equal(t, "coffee", last.Description)
	assert.Equal(t, "liability:credit_card", last.Offset)
	assert.Equal(t, "2.5", last.Amount.String())
}

func TestEncodeTransactions(t *testing.T) {
	var buf bytes.Buffer
	err := EncodeTransactions(&buf, []model.Transaction{{
		Date:        time.Date(2020, 3, 1, 0, 0, 0, 0, time.UTC),
		Description: "coffee",
		Account:     "expense:general",
		Offset:      "liability:amex",
		Amount:      decimal.NewFromFloat(-2.5),
	}})
	require.NoError(t, err)

	out := buf.String()
	assert.True(t, strings.HasPrefix(out, "transactions:"))
	assert.Contains(t, out, "offset_account: liability:amex")
	assert.Contains(t, out, "amount: -2.5")
	assert.NotContains(t, out, "accounts:")
}
