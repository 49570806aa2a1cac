package events

import "github.com/shopspring/decimal"

// ExchangeRateUpdated is emitted when an administrator changes a stored rate.
type ExchangeRateUpdated struct {
	Meta
	RateID       int64           `json:"rateId"`
	FromCurrency string          `json:"fromCurrency"`
	ToCurrency   string          `json:"toCurrency"`
	OldRate      decimal.Decimal `json:"oldRate"`
	NewRate      decimal.Decimal `json:"newRate"`
}

// Type implements Event.
func (e ExchangeRateUpdated) Type() string { return EventTypeExchangeRateUpdated.String() }

// NewExchangeRateUpdated builds an ExchangeRateUpdated event with fresh metadata.
func NewExchangeRateUpdated(e ExchangeRateUpdated, opts ...Option) *ExchangeRateUpdated {
	e.Meta = buildMeta(opts)
	return &e
}
