// Package workflow implements the four-step transfer wizard: Details, Review,
// Payment and Confirmation.
package workflow

import (
	"errors"
	"fmt"

	"github.com/amirasaad/globalremit/pkg/currency"
	"github.com/amirasaad/globalremit/pkg/domain"
	"github.com/shopspring/decimal"
)

var (
	// ErrInvalidTransition is returned when an operation is not allowed in
	// the wizard's current step.
	ErrInvalidTransition = errors.New("invalid step transition")
	// ErrStaleQuote is returned when the derived amounts do not reflect the
	// current corridor and send amount.
	ErrStaleQuote = errors.New("quote does not match transfer inputs")
)

// Step is a wizard step.
type Step int

const (
	StepDetails Step = iota + 1
	StepReview
	StepPayment
	StepConfirmation
)

func (s Step) String() string {
	switch s {
	case StepDetails:
		return "details"
	case StepReview:
		return "review"
	case StepPayment:
		return "payment"
	case StepConfirmation:
		return "confirmation"
	}
	return fmt.Sprintf("step(%d)", int(s))
}

// Valid reports whether s is one of the four wizard steps.
func (s Step) Valid() bool {
	return s >= StepDetails && s <= StepConfirmation
}

// TransferDraft is the in-progress transfer. ExchangeRate, Fee,
// ReceiveAmount and DeliveryTime are derived from the corridor and the send
// amount and are replaced as a whole on every recompute.
type TransferDraft struct {
	FromCountry   string          `json:"fromCountry"`
	ToCountry     string          `json:"toCountry"`
	SendAmount    decimal.Decimal `json:"sendAmount"`
	ReceiveAmount decimal.Decimal `json:"receiveAmount"`
	Fee           decimal.Decimal `json:"fee"`
	ExchangeRate  decimal.Decimal `json:"exchangeRate"`
	DeliveryTime  string          `json:"deliveryTime"`
	PaymentMethod string          `json:"paymentMethod"`
}

// TotalCharged is the send amount plus the fee.
func (d TransferDraft) TotalCharged() decimal.Decimal {
	return d.SendAmount.Add(d.Fee)
}

// RecipientDraft is the beneficiary being entered on the Details step.
type RecipientDraft struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
}

// FinalizedTransfer is the immutable record produced by a successful payment.
type FinalizedTransfer struct {
	TransactionID   string         `json:"transactionId"`
	TransactionDate string         `json:"transactionDate"`
	Transfer        TransferDraft  `json:"transfer"`
	Recipient       RecipientDraft `json:"recipient"`
}

// Settings are the values a fresh or reset wizard starts from.
type Settings struct {
	FromCountry   string
	ToCountry     string
	SendAmount    decimal.Decimal
	PaymentMethod string
}

// DefaultSettings sends 1000 GHS to the US by bank transfer.
func DefaultSettings() Settings {
	return Settings{
		FromCountry:   currency.Ghana,
		ToCountry:     currency.UnitedStates,
		SendAmount:    decimal.NewFromInt(1000),
		PaymentMethod: domain.PaymentBankTransfer,
	}
}

// State is a serialisable snapshot of a wizard.
type State struct {
	Step       Step               `json:"step"`
	Transfer   TransferDraft      `json:"transfer"`
	Recipient  RecipientDraft     `json:"recipient"`
	Finalized  *FinalizedTransfer `json:"finalized,omitempty"`
	QuoteError string             `json:"quoteError,omitempty"`
}

func (s State) clone() State {
	if s.Finalized != nil {
		f := *s.Finalized
		s.Finalized = &f
	}
	return s
}
