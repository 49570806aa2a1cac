// Package wizard drives transfer wizards whose state lives in a session
// store, one wizard per session id.
package wizard

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/amirasaad/globalremit/pkg/domain/events"
	"github.com/amirasaad/globalremit/pkg/quote"
	"github.com/amirasaad/globalremit/pkg/receipt"
	"github.com/amirasaad/globalremit/pkg/service/transfer"
	"github.com/amirasaad/globalremit/pkg/session"
	"github.com/amirasaad/globalremit/pkg/validation"
	"github.com/amirasaad/globalremit/pkg/workflow"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ErrNotFinalized is returned when a receipt is requested before payment.
var ErrNotFinalized = errors.New("transfer has not been paid yet")

// DraftUpdate changes the Details step. Nil fields are left as they are.
type DraftUpdate struct {
	FromCountry   *string
	ToCountry     *string
	SendAmount    *decimal.Decimal
	PaymentMethod *string
	Recipient     *workflow.RecipientDraft
}

// Service runs wizard operations against stored sessions. Operations on the
// same session are serialised.
type Service struct {
	store     session.Store
	quoter    quote.Quoter
	finalizer workflow.Finalizer
	transfers *transfer.Service
	settings  workflow.Settings
	logger    *slog.Logger
	now       func() time.Time

	locksMu sync.Mutex
	locks   map[uuid.UUID]*sessionLock
}

// sessionLock serialises operations on one session. refs counts the holders
// and waiters so the entry can be dropped when the last one leaves.
type sessionLock struct {
	mu   sync.Mutex
	refs int
}

// New creates a new Service.
func New(
	store session.Store,
	quoter quote.Quoter,
	finalizer workflow.Finalizer,
	transfers *transfer.Service,
	settings workflow.Settings,
	logger *slog.Logger,
) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{
		store:     store,
		quoter:    quoter,
		finalizer: finalizer,
		transfers: transfers,
		settings:  settings,
		logger:    logger,
		now:       time.Now,
		locks:     make(map[uuid.UUID]*sessionLock),
	}
}

func (s *Service) lock(id uuid.UUID) func() {
	s.locksMu.Lock()
	l, ok := s.locks[id]
	if !ok {
		l = &sessionLock{}
		s.locks[id] = l
	}
	l.refs++
	s.locksMu.Unlock()

	l.mu.Lock()
	return func() {
		l.mu.Unlock()
		s.locksMu.Lock()
		l.refs--
		if l.refs == 0 {
			delete(s.locks, id)
		}
		s.locksMu.Unlock()
	}
}

// Start opens a new session on the Details step. A set userID must name an
// existing user.
func (s *Service) Start(ctx context.Context, userID *int64) (*session.Record, error) {
	if userID != nil {
		if err := s.transfers.RequireUser(ctx, *userID); err != nil {
			return nil, fmt.Errorf("start wizard: %w", err)
		}
	}
	w := workflow.New(s.quoter, s.finalizer, s.settings)
	now := s.now().UTC()
	rec := &session.Record{
		ID:        uuid.New(),
		UserID:    userID,
		State:     w.Snapshot(),
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.store.Save(ctx, rec); err != nil {
		return nil, fmt.Errorf("start wizard: %w", err)
	}
	s.logger.Info("Wizard session started", "session_id", rec.ID)
	return rec, nil
}

// Get returns the stored session.
func (s *Service) Get(ctx context.Context, id uuid.UUID) (*session.Record, error) {
	return s.store.Get(ctx, id)
}

// Delete discards a session.
func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	return s.store.Delete(ctx, id)
}

// UpdateDraft applies corridor, amount, payment method or recipient changes
// on the Details step. Quote failures are kept in the state instead of being
// returned, so a client can show them while the user is still typing.
func (s *Service) UpdateDraft(ctx context.Context, id uuid.UUID, u DraftUpdate) (*session.Record, error) {
	return s.mutate(ctx, id, func(w *workflow.Wizard, _ *session.Record) error {
		state := w.Snapshot()
		from, to := state.Transfer.FromCountry, state.Transfer.ToCountry
		if u.FromCountry != nil {
			from = *u.FromCountry
		}
		if u.ToCountry != nil {
			to = *u.ToCountry
		}
		var quoteErr error
		if u.FromCountry != nil || u.ToCountry != nil {
			if err := w.SetCorridor(from, to); err != nil {
				if errors.Is(err, workflow.ErrInvalidTransition) {
					return err
				}
				quoteErr = err
			}
		}
		if u.SendAmount != nil {
			if err := w.SetSendAmount(*u.SendAmount); err != nil {
				if errors.Is(err, workflow.ErrInvalidTransition) {
					return err
				}
				quoteErr = err
			}
		}
		if u.PaymentMethod != nil {
			if err := w.SetPaymentMethod(*u.PaymentMethod); err != nil {
				return err
			}
		}
		if u.Recipient != nil {
			if err := w.SetRecipient(*u.Recipient); err != nil {
				return err
			}
		}
		if quoteErr != nil {
			s.logger.Debug("Draft quote unavailable", "session_id", id, "error", quoteErr)
		}
		return nil
	})
}

// SubmitDetails validates the Details form and advances to Review.
func (s *Service) SubmitDetails(ctx context.Context, id uuid.UUID, in validation.DetailsInput) (*session.Record, error) {
	return s.mutate(ctx, id, func(w *workflow.Wizard, _ *session.Record) error {
		return w.SubmitDetails(in)
	})
}

// Confirm accepts the review and advances to Payment.
func (s *Service) Confirm(ctx context.Context, id uuid.UUID) (*session.Record, error) {
	return s.mutate(ctx, id, func(w *workflow.Wizard, _ *session.Record) error {
		return w.Confirm()
	})
}

// Back returns to the previous step.
func (s *Service) Back(ctx context.Context, id uuid.UUID) (*session.Record, error) {
	return s.mutate(ctx, id, func(w *workflow.Wizard, _ *session.Record) error {
		return w.Back()
	})
}

// Reset starts over on the Details step.
func (s *Service) Reset(ctx context.Context, id uuid.UUID) (*session.Record, error) {
	return s.mutate(ctx, id, func(w *workflow.Wizard, _ *session.Record) error {
		w.Reset()
		return nil
	})
}

// Pay validates the card, finalizes the transfer, records it and advances to
// Confirmation. If recording fails the session stays on Payment.
func (s *Service) Pay(ctx context.Context, id uuid.UUID, in validation.PaymentInput) (*session.Record, error) {
	return s.mutate(ctx, id, func(w *workflow.Wizard, rec *session.Record) error {
		ft, err := w.Pay(ctx, in)
		if err != nil {
			return err
		}
		if s.transfers == nil {
			return nil
		}
		created, err := s.transfers.RecordFinalized(ctx, rec.UserID, ft, events.WithCorrelationID(id))
		if err != nil {
			return fmt.Errorf("record transfer: %w", err)
		}
		s.logger.Info("Wizard payment completed",
			"session_id", id,
			"transaction_id", ft.TransactionID,
			"transfer_id", created.ID,
			"card_brand", validation.DetectCardBrand(in.CardNumber),
		)
		return nil
	})
}

// Receipt returns the receipt of a paid session.
func (s *Service) Receipt(ctx context.Context, id uuid.UUID) (receipt.Receipt, error) {
	rec, err := s.store.Get(ctx, id)
	if err != nil {
		return receipt.Receipt{}, err
	}
	if rec.State.Finalized == nil {
		return receipt.Receipt{}, ErrNotFinalized
	}
	return receipt.FromFinalized(*rec.State.Finalized), nil
}

// mutate loads the session, applies fn and saves the new state. The stored
// state is left untouched when fn fails.
func (s *Service) mutate(
	ctx context.Context,
	id uuid.UUID,
	fn func(w *workflow.Wizard, rec *session.Record) error,
) (*session.Record, error) {
	unlock := s.lock(id)
	defer unlock()

	rec, err := s.store.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	w, err := workflow.Restore(s.quoter, s.finalizer, s.settings, rec.State)
	if err != nil {
		return nil, err
	}
	if err := fn(w, rec); err != nil {
		return nil, err
	}

	rec.State = w.Snapshot()
	rec.UpdatedAt = s.now().UTC()
	if err := s.store.Save(ctx, rec); err != nil {
		return nil, fmt.Errorf("save wizard session: %w", err)
	}
	return rec, nil
}
