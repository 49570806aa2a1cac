package wizard

import (
	"time"

	"github.com/amirasaad/globalremit/pkg/service/wizard"
	"github.com/amirasaad/globalremit/pkg/session"
	"github.com/amirasaad/globalremit/pkg/workflow"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// StartRequest is the optional body of POST /api/wizard.
type StartRequest struct {
	UserID *int64 `json:"userId" validate:"omitempty,gt=0"`
}

// DraftRequest is the body of PATCH /api/wizard/:id/draft. Omitted fields
// are left unchanged.
type DraftRequest struct {
	FromCountry   *string                  `json:"fromCountry"`
	ToCountry     *string                  `json:"toCountry"`
	SendAmount    *decimal.Decimal         `json:"sendAmount"`
	PaymentMethod *string                  `json:"paymentMethod"`
	Recipient     *workflow.RecipientDraft `json:"recipient"`
}

// ToUpdate converts the request to a service draft update.
func (r DraftRequest) ToUpdate() wizard.DraftUpdate {
	return wizard.DraftUpdate{
		FromCountry:   r.FromCountry,
		ToCountry:     r.ToCountry,
		SendAmount:    r.SendAmount,
		PaymentMethod: r.PaymentMethod,
		Recipient:     r.Recipient,
	}
}

// SessionView is the JSON representation of a wizard session.
type SessionView struct {
	ID           uuid.UUID                   `json:"id"`
	UserID       *int64                      `json:"userId,omitempty"`
	Step         workflow.Step               `json:"step"`
	StepName     string                      `json:"stepName"`
	Transfer     workflow.TransferDraft      `json:"transfer"`
	Recipient    workflow.RecipientDraft     `json:"recipient"`
	TotalCharged decimal.Decimal             `json:"totalCharged"`
	QuoteError   string                      `json:"quoteError,omitempty"`
	Finalized    *workflow.FinalizedTransfer `json:"finalized,omitempty"`
	CreatedAt    time.Time                   `json:"createdAt"`
	UpdatedAt    time.Time                   `json:"updatedAt"`
}

// ToView maps a stored session to its response shape.
func ToView(rec *session.Record) SessionView {
	st := rec.State
	return SessionView{
		ID:           rec.ID,
		UserID:       rec.UserID,
		Step:         st.Step,
		StepName:     st.Step.String(),
		Transfer:     st.Transfer,
		Recipient:    st.Recipient,
		TotalCharged: st.Transfer.TotalCharged(),
		QuoteError:   st.QuoteError,
		Finalized:    st.Finalized,
		CreatedAt:    rec.CreatedAt,
		UpdatedAt:    rec.UpdatedAt,
	}
}
