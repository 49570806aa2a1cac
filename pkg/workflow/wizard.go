package workflow

import (
	"context"
	"fmt"

	"github.com/amirasaad/globalremit/pkg/quote"
	"github.com/amirasaad/globalremit/pkg/validation"
	"github.com/shopspring/decimal"
)

// Finalizer mints the finalized transfer once payment fields are valid.
type Finalizer interface {
	Finalize(ctx context.Context, draft TransferDraft, recipient RecipientDraft) (FinalizedTransfer, error)
}

// Wizard is the transfer state machine. It is not safe for concurrent use;
// callers serialise access per session.
type Wizard struct {
	quoter    quote.Quoter
	finalizer Finalizer
	settings  Settings
	state     State
}

// New returns a wizard on the Details step seeded from settings.
func New(quoter quote.Quoter, finalizer Finalizer, settings Settings) *Wizard {
	w := &Wizard{quoter: quoter, finalizer: finalizer, settings: settings}
	w.state = State{
		Step: StepDetails,
		Transfer: TransferDraft{
			FromCountry:   settings.FromCountry,
			ToCountry:     settings.ToCountry,
			SendAmount:    settings.SendAmount,
			PaymentMethod: settings.PaymentMethod,
		},
	}
	_ = w.Recompute()
	return w
}

// Restore rebuilds a wizard from a snapshot taken with Snapshot.
func Restore(quoter quote.Quoter, finalizer Finalizer, settings Settings, s State) (*Wizard, error) {
	if !s.Step.Valid() {
		return nil, fmt.Errorf("restore wizard: %w: %s", ErrInvalidTransition, s.Step)
	}
	if s.Step == StepConfirmation && s.Finalized == nil {
		return nil, fmt.Errorf("restore wizard: confirmation without finalized transfer")
	}
	return &Wizard{quoter: quoter, finalizer: finalizer, settings: settings, state: s.clone()}, nil
}

// Snapshot returns a copy of the wizard state.
func (w *Wizard) Snapshot() State {
	return w.state.clone()
}

// Step returns the current step.
func (w *Wizard) Step() Step {
	return w.state.Step
}

// Recompute replaces the derived transfer fields with a fresh quote. On
// failure the derived fields are zeroed and the error is kept in the state
// until the next successful recompute.
func (w *Wizard) Recompute() error {
	t := &w.state.Transfer
	q, err := w.quoter.Compute(t.FromCountry, t.ToCountry, t.SendAmount)
	if err != nil {
		t.ExchangeRate = decimal.Zero
		t.Fee = decimal.Zero
		t.ReceiveAmount = decimal.Zero
		t.DeliveryTime = ""
		w.state.QuoteError = err.Error()
		return err
	}
	t.ExchangeRate = q.ExchangeRate
	t.Fee = q.Fee
	t.ReceiveAmount = q.ReceiveAmount
	t.DeliveryTime = q.DeliveryTime
	w.state.QuoteError = ""
	return nil
}

func (w *Wizard) requireStep(op string, want Step) error {
	if w.state.Step != want {
		return fmt.Errorf("%s: %w: wizard is on %s", op, ErrInvalidTransition, w.state.Step)
	}
	return nil
}

// SetCorridor changes the countries and recomputes the quote.
func (w *Wizard) SetCorridor(from, to string) error {
	if err := w.requireStep("set corridor", StepDetails); err != nil {
		return err
	}
	w.state.Transfer.FromCountry = from
	w.state.Transfer.ToCountry = to
	return w.Recompute()
}

// SetSendAmount changes the send amount and recomputes the quote.
func (w *Wizard) SetSendAmount(amount decimal.Decimal) error {
	if err := w.requireStep("set send amount", StepDetails); err != nil {
		return err
	}
	w.state.Transfer.SendAmount = amount
	return w.Recompute()
}

// SetPaymentMethod records the chosen payment method.
func (w *Wizard) SetPaymentMethod(method string) error {
	if err := w.requireStep("set payment method", StepDetails); err != nil {
		return err
	}
	w.state.Transfer.PaymentMethod = method
	return nil
}

// SetRecipient replaces the recipient draft.
func (w *Wizard) SetRecipient(r RecipientDraft) error {
	if err := w.requireStep("set recipient", StepDetails); err != nil {
		return err
	}
	w.state.Recipient = r
	return nil
}

// SubmitDetails validates the Details form and moves to Review. The wizard
// stays on Details when validation or the quote fails.
func (w *Wizard) SubmitDetails(in validation.DetailsInput) error {
	if err := w.requireStep("submit details", StepDetails); err != nil {
		return err
	}
	if err := validation.ValidateDetails(in); err != nil {
		return err
	}
	w.state.Transfer.FromCountry = in.FromCountry
	w.state.Transfer.ToCountry = in.ToCountry
	w.state.Transfer.SendAmount = in.SendAmount
	w.state.Transfer.PaymentMethod = in.PaymentMethod
	w.state.Recipient = RecipientDraft{
		FirstName: in.FirstName,
		LastName:  in.LastName,
		Email:     in.Email,
		Phone:     in.Phone,
	}
	if err := w.Recompute(); err != nil {
		return fmt.Errorf("submit details: %w", err)
	}
	w.state.Step = StepReview
	return nil
}

// Confirm accepts the review and moves to Payment.
func (w *Wizard) Confirm() error {
	if err := w.requireStep("confirm", StepReview); err != nil {
		return err
	}
	if w.state.QuoteError != "" {
		return fmt.Errorf("confirm: %w", ErrStaleQuote)
	}
	w.state.Step = StepPayment
	return nil
}

// Back moves one step backwards from Review or Payment. Nothing is discarded.
func (w *Wizard) Back() error {
	switch w.state.Step {
	case StepReview:
		w.state.Step = StepDetails
	case StepPayment:
		w.state.Step = StepReview
	default:
		return fmt.Errorf("back: %w: wizard is on %s", ErrInvalidTransition, w.state.Step)
	}
	return nil
}

// Pay validates the card fields, finalizes the transfer and moves to
// Confirmation. The card data is not retained.
func (w *Wizard) Pay(ctx context.Context, in validation.PaymentInput) (FinalizedTransfer, error) {
	if err := w.requireStep("pay", StepPayment); err != nil {
		return FinalizedTransfer{}, err
	}
	if err := validation.ValidatePayment(in); err != nil {
		return FinalizedTransfer{}, err
	}
	if w.state.QuoteError != "" {
		return FinalizedTransfer{}, fmt.Errorf("pay: %w", ErrStaleQuote)
	}
	ft, err := w.finalizer.Finalize(ctx, w.state.Transfer, w.state.Recipient)
	if err != nil {
		return FinalizedTransfer{}, fmt.Errorf("pay: %w", err)
	}
	w.state.Finalized = &ft
	w.state.Step = StepConfirmation
	return ft, nil
}

// Reset starts a new transfer from any step. The corridor and payment method
// are kept, the recipient is cleared, the send amount returns to its default
// and the finalized transfer is discarded.
func (w *Wizard) Reset() {
	w.state.Step = StepDetails
	w.state.Recipient = RecipientDraft{}
	w.state.Finalized = nil
	w.state.Transfer.SendAmount = w.settings.SendAmount
	_ = w.Recompute()
}

// Finalized returns the finalized transfer, if the wizard reached Confirmation.
func (w *Wizard) Finalized() (FinalizedTransfer, bool) {
	if w.state.Finalized == nil {
		return FinalizedTransfer{}, false
	}
	return *w.state.Finalized, true
}
