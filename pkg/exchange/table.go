// Package exchange is the single source of truth for corridor rates, fees and
// delivery estimates. The quote calculator, the repository seed and the CLI
// all read from the same Table.
package exchange

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// DefaultDelivery is the estimate used for corridors without an explicit one.
const DefaultDelivery = "1-3 Business Days"

// RateEntry is one directed corridor of the rate table.
type RateEntry struct {
	From     string
	To       string
	Rate     decimal.Decimal
	Delivery string
}

// Key returns the "<from>-<to>" lookup key of the entry.
func (e RateEntry) Key() string {
	return PairKey(e.From, e.To)
}

// PairKey builds the lookup key for an ordered currency pair.
func PairKey(from, to string) string {
	return from + "-" + to
}

// Table is an immutable rate table. Lookups are direct key matches: a rate for
// GH-US says nothing about US-GH.
type Table struct {
	rates map[string]RateEntry
	fees  map[string]decimal.Decimal
	order []string
}

// NewTable validates and indexes the given entries and per-source-country fees.
func NewTable(entries []RateEntry, fees map[string]decimal.Decimal) (*Table, error) {
	t := &Table{
		rates: make(map[string]RateEntry, len(entries)),
		fees:  make(map[string]decimal.Decimal, len(fees)),
	}
	for _, e := range entries {
		if !e.Rate.IsPositive() {
			return nil, fmt.Errorf("%s: %w", e.Key(), ErrInvalidRate)
		}
		if _, dup := t.rates[e.Key()]; dup {
			return nil, fmt.Errorf("duplicate rate entry %s", e.Key())
		}
		t.rates[e.Key()] = e
		t.order = append(t.order, e.Key())
	}
	for country, fee := range fees {
		if fee.IsNegative() {
			return nil, fmt.Errorf("negative fee for %s", country)
		}
		t.fees[country] = fee
	}
	return t, nil
}

// MustNewTable is like NewTable but panics on invalid input.
func MustNewTable(entries []RateEntry, fees map[string]decimal.Decimal) *Table {
	t, err := NewTable(entries, fees)
	if err != nil {
		panic(err)
	}
	return t
}

var defaultTable = MustNewTable(
	[]RateEntry{
		{From: "GH", To: "US", Rate: decimal.RequireFromString("0.08325"), Delivery: "1-2 Business Days"},
		{From: "GH", To: "EU", Rate: decimal.RequireFromString("0.07628"), Delivery: "1-3 Business Days"},
		{From: "US", To: "GH", Rate: decimal.RequireFromString("12.01205"), Delivery: "1-2 Business Days"},
		{From: "US", To: "EU", Rate: decimal.RequireFromString("0.91686"), Delivery: "Same Day"},
		{From: "EU", To: "GH", Rate: decimal.RequireFromString("13.10967"), Delivery: "1-3 Business Days"},
		{From: "EU", To: "US", Rate: decimal.RequireFromString("1.09068"), Delivery: "Same Day"},
	},
	map[string]decimal.Decimal{
		"GH": decimal.RequireFromString("15.00"),
		"US": decimal.RequireFromString("5.00"),
		"EU": decimal.RequireFromString("4.50"),
	},
)

// DefaultTable returns the seeded GH/US/EU table.
func DefaultTable() *Table {
	return defaultTable
}

// LookupRate returns the rate for the ordered pair or ErrRateNotFound.
func (t *Table) LookupRate(from, to string) (decimal.Decimal, error) {
	e, ok := t.rates[PairKey(from, to)]
	if !ok {
		return decimal.Zero, fmt.Errorf("%s: %w", PairKey(from, to), ErrRateNotFound)
	}
	return e.Rate, nil
}

// LookupFee returns the fee charged in the source currency, zero when unknown.
func (t *Table) LookupFee(from string) decimal.Decimal {
	if fee, ok := t.fees[from]; ok {
		return fee
	}
	return decimal.Zero
}

// LookupDelivery returns the delivery estimate for the pair or DefaultDelivery.
func (t *Table) LookupDelivery(from, to string) string {
	if e, ok := t.rates[PairKey(from, to)]; ok && e.Delivery != "" {
		return e.Delivery
	}
	return DefaultDelivery
}

// Entries returns the rate entries in table order.
func (t *Table) Entries() []RateEntry {
	out := make([]RateEntry, 0, len(t.order))
	for _, k := range t.order {
		out = append(out, t.rates[k])
	}
	return out
}
