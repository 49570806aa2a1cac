package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransferCreate represents the data needed to persist a completed transfer.
type TransferCreate struct {
	UserID             *int64
	TransactionID      string
	FromCountry        string
	ToCountry          string
	SendAmount         decimal.Decimal
	ReceiveAmount      decimal.Decimal
	Fee                decimal.Decimal
	ExchangeRate       decimal.Decimal
	Status             string
	PaymentMethod      string
	RecipientFirstName string
	RecipientLastName  string
	RecipientEmail     string
	RecipientPhone     string
}

// TransferRead represents a read-optimized view of a transfer.
type TransferRead struct {
	ID                 int64           `json:"id"`
	UserID             *int64          `json:"userId"`
	TransactionID      string          `json:"transactionId"`
	FromCountry        string          `json:"fromCountry"`
	ToCountry          string          `json:"toCountry"`
	SendAmount         decimal.Decimal `json:"sendAmount"`
	ReceiveAmount      decimal.Decimal `json:"receiveAmount"`
	Fee                decimal.Decimal `json:"fee"`
	ExchangeRate       decimal.Decimal `json:"exchangeRate"`
	Status             string          `json:"status"`
	PaymentMethod      string          `json:"paymentMethod"`
	RecipientFirstName string          `json:"recipientFirstName"`
	RecipientLastName  string          `json:"recipientLastName"`
	RecipientEmail     string          `json:"recipientEmail"`
	RecipientPhone     string          `json:"recipientPhone"`
	CreatedAt          time.Time       `json:"createdAt"`
}
