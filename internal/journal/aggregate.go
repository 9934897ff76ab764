package journal

import (
	"fmt"
	"slices"
	"time"

	"github.com/shopspring/decimal"

	"github.com/cleared-dev/ledger/internal/model"
)

// Granularity selects the period used to bucket entries.
type Granularity int

const (
	None Granularity = iota
	Daily
	Monthly
	Yearly
)

var granularityNames = map[Granularity]string{
	None:    "none",
	Daily:   "daily",
	Monthly: "monthly",
	Yearly:  "yearly",
}

func (g Granularity) String() string {
	if name, ok := granularityNames[g]; ok {
		return name
	}
	return fmt.Sprintf("granularity(%d)", int(g))
}

// ParseGranularity parses "daily", "monthly", "yearly" or "none".
// The empty string means none.
func ParseGranularity(s string) (Granularity, error) {
	if s == "" {
		return None, nil
	}
	for g, name := range granularityNames {
		if name == s {
			return g, nil
		}
	}
	return None, fmt.Errorf("%w: unknown group %q (want daily, monthly or yearly)", model.ErrInvalidInput, s)
}

// BucketKey returns the bucket an entry dated d falls in:
// "2006-01-02", "2006-01", "2006", or "" for None.
func (g Granularity) BucketKey(d time.Time) string {
	switch g {
	case Daily:
		return d.Format("2006-01-02")
	case Monthly:
		return d.Format("2006-01")
	case Yearly:
		return d.Format("2006")
	default:
		return ""
	}
}

// PeriodToken returns the single date component a budget period is matched
// on: day of month "02", month "01" or year "2006". None has no token.
func (g Granularity) PeriodToken(d time.Time) string {
	switch g {
	case Daily:
		return d.Format("02")
	case Monthly:
		return d.Format("01")
	case Yearly:
		return d.Format("2006")
	default:
		return ""
	}
}

// Totals is an insertion-ordered map of key to cumulative amount.
type Totals struct {
	keys []string
	sums map[string]decimal.Decimal
}

// NewTotals returns an empty Totals.
func NewTotals() *Totals {
	return &Totals{sums: make(map[string]decimal.Decimal)}
}

// Add accumulates amount under key.
func (t *Totals) Add(key string, amount decimal.Decimal) {
	prev, ok := t.sums[key]
	if !ok {
		t.keys = append(t.keys, key)
	}
	t.sums[key] = prev.Add(amount)
}

// Get returns the total for key.
func (t *Totals) Get(key string) (decimal.Decimal, bool) {
	v, ok := t.sums[key]
	return v, ok
}

// Keys returns keys in first-seen order.
func (t *Totals) Keys() []string {
	return slices.Clone(t.keys)
}

// SortedKeys returns keys in ascending order. Bucket keys are formatted so
// that this is chronological.
func (t *Totals) SortedKeys() []string {
	keys := t.Keys()
	slices.Sort(keys)
	return keys
}

// Len returns the number of keys.
func (t *Totals) Len() int {
	return len(t.keys)
}

// Sum returns the total over all keys.
func (t *Totals) Sum() decimal.Decimal {
	sum := decimal.Zero
	for _, v := range t.sums {
		sum = sum.Add(v)
	}
	return sum
}

// Grouped is a two-level aggregation: bucket -> account -> total.
type Grouped struct {
	buckets []string
	totals  map[string]*Totals
}

// NewGrouped returns an empty Grouped.
func NewGrouped() *Grouped {
	return &Grouped{totals: make(map[string]*Totals)}
}

// Add accumulates amount under (bucket, account).
func (g *Grouped) Add(bucket, account string, amount decimal.Decimal) {
	t, ok := g.totals[bucket]
	if !ok {
		t = NewTotals()
		g.totals[bucket] = t
		g.buckets = append(g.buckets, bucket)
	}
	t.Add(account, amount)
}

// Bucket returns the per-account totals for bucket.
func (g *Grouped) Bucket(bucket string) (*Totals, bool) {
	t, ok := g.totals[bucket]
	return t, ok
}

// Buckets returns bucket keys in first-seen order.
func (g *Grouped) Buckets() []string {
	return slices.Clone(g.buckets)
}

// SortedBuckets returns bucket keys in chronological order.
func (g *Grouped) SortedBuckets() []string {
	keys := g.Buckets()
	slices.Sort(keys)
	return keys
}

// SumByPeriod totals entry amounts per bucket.
//
// Entries already carry their own leg: split amounts for composite
// transactions and one leg per side for simple ones, so each entry is added
// exactly once.
func SumByPeriod(entries []model.Entry, g Granularity) *Totals {
	totals := NewTotals()
	for _, e := range entries {
		totals.Add(g.BucketKey(e.Date), e.Amount)
	}
	return totals
}

// SumByPeriodAccount totals entry amounts per bucket and account.
func SumByPeriodAccount(entries []model.Entry, g Granularity) *Grouped {
	grouped := NewGrouped()
	for _, e := range entries {
		grouped.Add(g.BucketKey(e.Date), e.Account, e.Amount)
	}
	return grouped
}
