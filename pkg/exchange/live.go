package exchange

import (
	"fmt"
	"sync"

	"github.com/shopspring/decimal"
)

// Rates is the read side of a rate table.
type Rates interface {
	LookupRate(from, to string) (decimal.Decimal, error)
	LookupFee(from string) decimal.Decimal
	LookupDelivery(from, to string) string
	Entries() []RateEntry
}

var (
	_ Rates = (*Table)(nil)
	_ Rates = (*LiveTable)(nil)
)

// LiveTable is a rate table that accepts rate edits. Every edit swaps in a
// new immutable Table, so readers never see a half-applied change.
type LiveTable struct {
	mu    sync.RWMutex
	table *Table
}

// NewLiveTable starts a live table from base. A nil base uses DefaultTable.
func NewLiveTable(base *Table) *LiveTable {
	if base == nil {
		base = DefaultTable()
	}
	return &LiveTable{table: base}
}

// Snapshot returns the current immutable table.
func (l *LiveTable) Snapshot() *Table {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.table
}

// LookupRate returns the current rate for the ordered pair.
func (l *LiveTable) LookupRate(from, to string) (decimal.Decimal, error) {
	return l.Snapshot().LookupRate(from, to)
}

// LookupFee returns the fee charged in the source currency.
func (l *LiveTable) LookupFee(from string) decimal.Decimal {
	return l.Snapshot().LookupFee(from)
}

// LookupDelivery returns the delivery estimate for the pair.
func (l *LiveTable) LookupDelivery(from, to string) string {
	return l.Snapshot().LookupDelivery(from, to)
}

// Entries returns the current rate entries in table order.
func (l *LiveTable) Entries() []RateEntry {
	return l.Snapshot().Entries()
}

// SetRate replaces the rate of a pair, adding the pair when it is unknown.
// Fees and delivery estimates are kept.
func (l *LiveTable) SetRate(from, to string, rate decimal.Decimal) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	next, err := l.table.WithRate(from, to, rate)
	if err != nil {
		return err
	}
	l.table = next
	return nil
}

// WithRate returns a copy of the table with the pair's rate replaced.
func (t *Table) WithRate(from, to string, rate decimal.Decimal) (*Table, error) {
	if !rate.IsPositive() {
		return nil, fmt.Errorf("%s: %w", PairKey(from, to), ErrInvalidRate)
	}
	next := &Table{
		rates: make(map[string]RateEntry, len(t.rates)+1),
		fees:  t.fees,
		order: append([]string(nil), t.order...),
	}
	for k, e := range t.rates {
		next.rates[k] = e
	}
	key := PairKey(from, to)
	e, ok := next.rates[key]
	if !ok {
		e = RateEntry{From: from, To: to}
		next.order = append(next.order, key)
	}
	e.Rate = rate
	next.rates[key] = e
	return next, nil
}
