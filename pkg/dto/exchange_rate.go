package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// ExchangeRateCreate represents a stored rate to insert.
type ExchangeRateCreate struct {
	FromCurrency string
	ToCurrency   string
	Rate         decimal.Decimal
}

// ExchangeRateUpdate carries the new value of a stored rate.
type ExchangeRateUpdate struct {
	Rate decimal.Decimal
}

// ExchangeRateRead represents a read-optimized view of a stored rate.
type ExchangeRateRead struct {
	ID           int64           `json:"id"`
	FromCurrency string          `json:"fromCurrency"`
	ToCurrency   string          `json:"toCurrency"`
	Rate         decimal.Decimal `json:"rate"`
	UpdatedAt    time.Time       `json:"updatedAt"`
}
