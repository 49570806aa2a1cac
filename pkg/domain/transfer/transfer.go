// Package transfer holds the persisted money-transfer record.
package transfer

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

// ErrTransferNotFound is returned when no transfer matches a lookup.
var ErrTransferNotFound = errors.New("transfer not found")

// Status is the lifecycle status of a persisted transfer.
type Status string

// StatusCompleted is the only status a demo transfer ever reaches.
const StatusCompleted Status = "completed"

// Recipient is the beneficiary of a transfer.
type Recipient struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
}

// FullName joins the first and last name.
func (r Recipient) FullName() string {
	switch {
	case r.FirstName == "":
		return r.LastName
	case r.LastName == "":
		return r.FirstName
	}
	return r.FirstName + " " + r.LastName
}

// Transfer is a completed transfer as stored by the repository.
type Transfer struct {
	ID            int64
	UserID        *int64
	TransactionID string
	FromCountry   string
	ToCountry     string
	SendAmount    decimal.Decimal
	ReceiveAmount decimal.Decimal
	Fee           decimal.Decimal
	ExchangeRate  decimal.Decimal
	Status        Status
	PaymentMethod string
	Recipient     Recipient
	CreatedAt     time.Time
}

// TotalCharged is the send amount plus the fee.
func (t Transfer) TotalCharged() decimal.Decimal {
	return t.SendAmount.Add(t.Fee)
}
