package memory

import (
	"context"
	"fmt"
	"sort"

	"github.com/amirasaad/globalremit/pkg/domain"
	"github.com/amirasaad/globalremit/pkg/domain/transfer"
	"github.com/amirasaad/globalremit/pkg/dto"
)

type transferRepository struct {
	view
}

func (r *transferRepository) Create(_ context.Context, create *dto.TransferCreate) (*dto.TransferRead, error) {
	var out dto.TransferRead
	err := r.with(func(s *Store) error {
		if _, taken := s.transferByTxID[create.TransactionID]; taken {
			return fmt.Errorf("transfer %s: %w", create.TransactionID, domain.ErrAlreadyExists)
		}
		status := create.Status
		if status == "" {
			status = string(transfer.StatusCompleted)
		}
		s.nextTransferID++
		out = dto.TransferRead{
			ID:                 s.nextTransferID,
			UserID:             create.UserID,
			TransactionID:      create.TransactionID,
			FromCountry:        create.FromCountry,
			ToCountry:          create.ToCountry,
			SendAmount:         create.SendAmount,
			ReceiveAmount:      create.ReceiveAmount,
			Fee:                create.Fee,
			ExchangeRate:       create.ExchangeRate,
			Status:             status,
			PaymentMethod:      create.PaymentMethod,
			RecipientFirstName: create.RecipientFirstName,
			RecipientLastName:  create.RecipientLastName,
			RecipientEmail:     create.RecipientEmail,
			RecipientPhone:     create.RecipientPhone,
			CreatedAt:          s.now(),
		}
		s.transfers[out.ID] = out
		s.transferByTxID[out.TransactionID] = out.ID
		id, txID := out.ID, out.TransactionID
		r.onRollback(func() {
			delete(s.transfers, id)
			delete(s.transferByTxID, txID)
			s.nextTransferID--
		})
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *transferRepository) Get(_ context.Context, id int64) (*dto.TransferRead, error) {
	var out dto.TransferRead
	err := r.with(func(s *Store) error {
		t, ok := s.transfers[id]
		if !ok {
			return fmt.Errorf("transfer %d: %w", id, domain.ErrNotFound)
		}
		out = t
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *transferRepository) GetByTransactionID(_ context.Context, transactionID string) (*dto.TransferRead, error) {
	var out dto.TransferRead
	err := r.with(func(s *Store) error {
		id, ok := s.transferByTxID[transactionID]
		if !ok {
			return fmt.Errorf("transfer %s: %w", transactionID, domain.ErrNotFound)
		}
		out = s.transfers[id]
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *transferRepository) ExistsByTransactionID(_ context.Context, transactionID string) (bool, error) {
	var found bool
	_ = r.with(func(s *Store) error {
		_, found = s.transferByTxID[transactionID]
		return nil
	})
	return found, nil
}

func (r *transferRepository) ListByUser(_ context.Context, userID int64) ([]*dto.TransferRead, error) {
	var out []*dto.TransferRead
	_ = r.with(func(s *Store) error {
		for _, t := range s.transfers {
			if t.UserID != nil && *t.UserID == userID {
				t := t
				out = append(out, &t)
			}
		}
		return nil
	})
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	if out == nil {
		out = []*dto.TransferRead{}
	}
	return out, nil
}
