package events

import (
	"github.com/shopspring/decimal"
)

// TransferCompleted is emitted once a wizard payment has been finalized and
// the transfer persisted.
type TransferCompleted struct {
	Meta
	TransferID    int64           `json:"transferId"`
	UserID        *int64          `json:"userId,omitempty"`
	TransactionID string          `json:"transactionId"`
	FromCountry   string          `json:"fromCountry"`
	ToCountry     string          `json:"toCountry"`
	SendAmount    decimal.Decimal `json:"sendAmount"`
	ReceiveAmount decimal.Decimal `json:"receiveAmount"`
	Fee           decimal.Decimal `json:"fee"`
	PaymentMethod string          `json:"paymentMethod"`
}

// Type implements Event.
func (e TransferCompleted) Type() string { return EventTypeTransferCompleted.String() }

// NewTransferCompleted builds a TransferCompleted event with fresh metadata.
func NewTransferCompleted(e TransferCompleted, opts ...Option) *TransferCompleted {
	e.Meta = buildMeta(opts)
	return &e
}
