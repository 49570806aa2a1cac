// Package quote turns a corridor and a send amount into the fee, rate,
// converted amount and delivery estimate shown to the sender.
package quote

import (
	"errors"
	"fmt"

	"github.com/amirasaad/globalremit/pkg/currency"
	"github.com/amirasaad/globalremit/pkg/exchange"
	"github.com/shopspring/decimal"
)

// ErrInvalidAmount is returned when the send amount is not strictly positive.
var ErrInvalidAmount = errors.New("send amount must be greater than zero")

// SameCurrencyDelivery is the delivery estimate of an identity corridor.
const SameCurrencyDelivery = "Instant"

// Quote is the derived projection of (from, to, sendAmount).
type Quote struct {
	From          string          `json:"from"`
	To            string          `json:"to"`
	SendAmount    decimal.Decimal `json:"sendAmount"`
	ExchangeRate  decimal.Decimal `json:"exchangeRate"`
	Fee           decimal.Decimal `json:"fee"`
	ReceiveAmount decimal.Decimal `json:"receiveAmount"`
	DeliveryTime  string          `json:"deliveryTime"`
}

// TotalCharged is the amount debited from the sender: send amount plus fee.
func (q Quote) TotalCharged() decimal.Decimal {
	return q.SendAmount.Add(q.Fee)
}

// Quoter computes quotes. Calculator is the production implementation.
type Quoter interface {
	Compute(from, to string, sendAmount decimal.Decimal) (Quote, error)
}

// Calculator is a pure quote function over a rate table.
type Calculator struct {
	table      exchange.Rates
	currencies *currency.Registry
}

// NewCalculator creates a calculator. Nil arguments fall back to the default
// table and currency registry. Pass an *exchange.LiveTable to price with
// edited rates.
func NewCalculator(table exchange.Rates, currencies *currency.Registry) *Calculator {
	if table == nil {
		table = exchange.DefaultTable()
	}
	if currencies == nil {
		currencies = currency.Default()
	}
	return &Calculator{table: table, currencies: currencies}
}

// Compute returns the quote for sending sendAmount from one country to another.
// The receive amount is rounded to two decimal places.
func (c *Calculator) Compute(from, to string, sendAmount decimal.Decimal) (Quote, error) {
	if !sendAmount.IsPositive() {
		return Quote{}, ErrInvalidAmount
	}
	for _, country := range []string{from, to} {
		if !c.currencies.IsSupported(country) {
			return Quote{}, fmt.Errorf("%q: %w", country, currency.ErrUnsupportedCurrency)
		}
	}

	if from == to {
		return Quote{
			From:          from,
			To:            to,
			SendAmount:    sendAmount,
			ExchangeRate:  decimal.NewFromInt(1),
			Fee:           decimal.Zero,
			ReceiveAmount: sendAmount.Round(2),
			DeliveryTime:  SameCurrencyDelivery,
		}, nil
	}

	rate, err := c.table.LookupRate(from, to)
	if err != nil {
		return Quote{}, err
	}
	return Quote{
		From:          from,
		To:            to,
		SendAmount:    sendAmount,
		ExchangeRate:  rate,
		Fee:           c.table.LookupFee(from),
		ReceiveAmount: sendAmount.Mul(rate).Round(2),
		DeliveryTime:  c.table.LookupDelivery(from, to),
	}, nil
}

var _ Quoter = (*Calculator)(nil)
