// Package transfer records completed transfers and reads them back.
package transfer

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/amirasaad/globalremit/pkg/domain/events"
	"github.com/amirasaad/globalremit/pkg/domain/transfer"
	"github.com/amirasaad/globalremit/pkg/dto"
	"github.com/amirasaad/globalremit/pkg/eventbus"
	"github.com/amirasaad/globalremit/pkg/receipt"
	"github.com/amirasaad/globalremit/pkg/repository"
	"github.com/amirasaad/globalremit/pkg/workflow"
)

// Service provides transfer operations.
type Service struct {
	uow      repository.UnitOfWork
	bus      eventbus.Bus
	ids      workflow.IDGenerator
	location *time.Location
	logger   *slog.Logger
}

// Option configures a Service.
type Option func(*Service)

// WithIDGenerator replaces the random transaction id generator.
func WithIDGenerator(g workflow.IDGenerator) Option {
	return func(s *Service) { s.ids = g }
}

// WithLocation sets the zone receipt dates are rendered in.
func WithLocation(loc *time.Location) Option {
	return func(s *Service) { s.location = loc }
}

// New creates a new Service. bus may be nil.
func New(
	uow repository.UnitOfWork,
	bus eventbus.Bus,
	logger *slog.Logger,
	opts ...Option,
) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	s := &Service{
		uow:      uow,
		bus:      bus,
		ids:      workflow.IDGeneratorFunc(workflow.RandomTransactionID),
		location: time.Local,
		logger:   logger,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// CreateTransfer stores a completed transfer and publishes TransferCompleted.
// An empty TransactionID is filled with a fresh unused one; a supplied id that
// is already taken yields an error wrapping domain.ErrAlreadyExists. A set
// UserID must name an existing user, otherwise the error wraps
// domain.ErrNotFound.
func (s *Service) CreateTransfer(
	ctx context.Context,
	create *dto.TransferCreate,
	opts ...events.Option,
) (*dto.TransferRead, error) {
	in := *create
	if in.Status == "" {
		in.Status = string(transfer.StatusCompleted)
	}
	logger := s.logger.With("transaction_id", in.TransactionID, "from", in.FromCountry, "to", in.ToCountry)

	var created *dto.TransferRead
	err := s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		if in.UserID != nil {
			if err := requireUser(ctx, uow, *in.UserID); err != nil {
				return err
			}
		}
		repo, err := uow.TransferRepository()
		if err != nil {
			return err
		}
		if in.TransactionID == "" {
			if in.TransactionID, err = s.allocateID(ctx, repo.ExistsByTransactionID); err != nil {
				return err
			}
		}
		created, err = repo.Create(ctx, &in)
		return err
	})
	if err != nil {
		logger.Error("CreateTransfer failed", "error", err)
		return nil, err
	}

	s.publish(ctx, created, opts)
	logger.Info("Transfer recorded", "transfer_id", created.ID, "transaction_id", created.TransactionID)
	return created, nil
}

// RequireUser returns an error wrapping domain.ErrNotFound when no user has
// the given id.
func (s *Service) RequireUser(ctx context.Context, userID int64) error {
	return s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		return requireUser(ctx, uow, userID)
	})
}

func requireUser(ctx context.Context, uow repository.UnitOfWork, userID int64) error {
	users, err := uow.UserRepository()
	if err != nil {
		return err
	}
	if _, err := users.Get(ctx, userID); err != nil {
		return fmt.Errorf("sender: %w", err)
	}
	return nil
}

// RecordFinalized stores the transfer produced by a completed wizard.
func (s *Service) RecordFinalized(
	ctx context.Context,
	userID *int64,
	ft workflow.FinalizedTransfer,
	opts ...events.Option,
) (*dto.TransferRead, error) {
	return s.CreateTransfer(ctx, &dto.TransferCreate{
		UserID:             userID,
		TransactionID:      ft.TransactionID,
		FromCountry:        ft.Transfer.FromCountry,
		ToCountry:          ft.Transfer.ToCountry,
		SendAmount:         ft.Transfer.SendAmount,
		ReceiveAmount:      ft.Transfer.ReceiveAmount,
		Fee:                ft.Transfer.Fee,
		ExchangeRate:       ft.Transfer.ExchangeRate,
		Status:             string(transfer.StatusCompleted),
		PaymentMethod:      ft.Transfer.PaymentMethod,
		RecipientFirstName: ft.Recipient.FirstName,
		RecipientLastName:  ft.Recipient.LastName,
		RecipientEmail:     ft.Recipient.Email,
		RecipientPhone:     ft.Recipient.Phone,
	}, opts...)
}

func (s *Service) allocateID(
	ctx context.Context,
	exists func(context.Context, string) (bool, error),
) (string, error) {
	for range workflow.MaxIDAttempts {
		id := s.ids.NewTransactionID()
		taken, err := exists(ctx, id)
		if err != nil {
			return "", err
		}
		if !taken {
			return id, nil
		}
		s.logger.Warn("Transaction id collision, regenerating", "transaction_id", id)
	}
	return "", workflow.ErrTransactionIDExhausted
}

func (s *Service) publish(ctx context.Context, t *dto.TransferRead, opts []events.Option) {
	if s.bus == nil {
		return
	}
	evt := events.NewTransferCompleted(events.TransferCompleted{
		TransferID:    t.ID,
		UserID:        t.UserID,
		TransactionID: t.TransactionID,
		FromCountry:   t.FromCountry,
		ToCountry:     t.ToCountry,
		SendAmount:    t.SendAmount,
		ReceiveAmount: t.ReceiveAmount,
		Fee:           t.Fee,
		PaymentMethod: t.PaymentMethod,
	}, opts...)
	if err := s.bus.Emit(ctx, evt); err != nil {
		s.logger.Warn("TransferCompleted publish failed", "transaction_id", t.TransactionID, "error", err)
	}
}

// GetTransfer retrieves a transfer by ID.
func (s *Service) GetTransfer(ctx context.Context, id int64) (*dto.TransferRead, error) {
	var t *dto.TransferRead
	err := s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		repo, err := uow.TransferRepository()
		if err != nil {
			return err
		}
		t, err = repo.Get(ctx, id)
		return err
	})
	if err != nil {
		return nil, err
	}
	return t, nil
}

// GetByTransactionID retrieves a transfer by its transaction id.
func (s *Service) GetByTransactionID(ctx context.Context, transactionID string) (*dto.TransferRead, error) {
	var t *dto.TransferRead
	err := s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		repo, err := uow.TransferRepository()
		if err != nil {
			return err
		}
		t, err = repo.GetByTransactionID(ctx, transactionID)
		return err
	})
	if err != nil {
		return nil, err
	}
	return t, nil
}

// ListByUser returns a user's transfers, oldest first.
func (s *Service) ListByUser(ctx context.Context, userID int64) ([]*dto.TransferRead, error) {
	var list []*dto.TransferRead
	err := s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		repo, err := uow.TransferRepository()
		if err != nil {
			return err
		}
		list, err = repo.ListByUser(ctx, userID)
		return err
	})
	return list, err
}

// TransactionExists reports whether a transaction id is already recorded. It
// matches workflow.ExistsFunc.
func (s *Service) TransactionExists(ctx context.Context, transactionID string) (bool, error) {
	var taken bool
	err := s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		repo, err := uow.TransferRepository()
		if err != nil {
			return err
		}
		taken, err = repo.ExistsByTransactionID(ctx, transactionID)
		return err
	})
	return taken, err
}

// Receipt builds the receipt of a recorded transfer.
func (s *Service) Receipt(ctx context.Context, transactionID string) (receipt.Receipt, error) {
	t, err := s.GetByTransactionID(ctx, transactionID)
	if err != nil {
		return receipt.Receipt{}, err
	}
	return receipt.Receipt{
		TransactionID:   t.TransactionID,
		TransactionDate: workflow.FormatTransactionDate(t.CreatedAt.In(s.location)),
		FromCountry:     t.FromCountry,
		ToCountry:       t.ToCountry,
		SendAmount:      t.SendAmount,
		Fee:             t.Fee,
		ReceiveAmount:   t.ReceiveAmount,
		ExchangeRate:    t.ExchangeRate,
		RecipientFirst:  t.RecipientFirstName,
		RecipientLast:   t.RecipientLastName,
		RecipientEmail:  t.RecipientEmail,
		RecipientPhone:  t.RecipientPhone,
		PaymentMethod:   t.PaymentMethod,
	}, nil
}
