package repository

import (
	"context"
	"fmt"

	"github.com/amirasaad/globalremit/pkg/domain/transfer"
	"github.com/amirasaad/globalremit/pkg/dto"
	transferrepo "github.com/amirasaad/globalremit/pkg/repository/transfer"
	"gorm.io/gorm"
)

type transferRepository struct {
	db *gorm.DB
}

// NewTransferRepository returns a gorm-backed transfer repository.
func NewTransferRepository(db *gorm.DB) transferrepo.Repository {
	return &transferRepository{db: db}
}

func (r *transferRepository) Create(
	ctx context.Context,
	create *dto.TransferCreate,
) (*dto.TransferRead, error) {
	status := create.Status
	if status == "" {
		status = string(transfer.StatusCompleted)
	}
	t := &Transfer{
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
	}
	if err := r.db.WithContext(ctx).Create(t).Error; err != nil {
		return nil, MapGormErrorToDomain(err)
	}
	return mapTransferToDTO(t), nil
}

func (r *transferRepository) Get(
	ctx context.Context,
	id int64,
) (*dto.TransferRead, error) {
	var t Transfer
	if err := r.db.WithContext(ctx).First(&t, "id = ?", id).Error; err != nil {
		return nil, fmt.Errorf("transfer %d: %w", id, MapGormErrorToDomain(err))
	}
	return mapTransferToDTO(&t), nil
}

func (r *transferRepository) GetByTransactionID(
	ctx context.Context,
	transactionID string,
) (*dto.TransferRead, error) {
	var t Transfer
	if err := r.db.WithContext(ctx).Where("transaction_id = ?", transactionID).First(&t).Error; err != nil {
		return nil, fmt.Errorf("transfer %s: %w", transactionID, MapGormErrorToDomain(err))
	}
	return mapTransferToDTO(&t), nil
}

func (r *transferRepository) ExistsByTransactionID(
	ctx context.Context,
	transactionID string,
) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&Transfer{}).Where("transaction_id = ?", transactionID).Count(&count).Error
	return count > 0, err
}

func (r *transferRepository) ListByUser(
	ctx context.Context,
	userID int64,
) ([]*dto.TransferRead, error) {
	var rows []Transfer
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).Order("id").Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]*dto.TransferRead, 0, len(rows))
	for i := range rows {
		out = append(out, mapTransferToDTO(&rows[i]))
	}
	return out, nil
}

func mapTransferToDTO(t *Transfer) *dto.TransferRead {
	return &dto.TransferRead{
		ID:                 t.ID,
		UserID:             t.UserID,
		TransactionID:      t.TransactionID,
		FromCountry:        t.FromCountry,
		ToCountry:          t.ToCountry,
		SendAmount:         t.SendAmount,
		ReceiveAmount:      t.ReceiveAmount,
		Fee:                t.Fee,
		ExchangeRate:       t.ExchangeRate,
		Status:             t.Status,
		PaymentMethod:      t.PaymentMethod,
		RecipientFirstName: t.RecipientFirstName,
		RecipientLastName:  t.RecipientLastName,
		RecipientEmail:     t.RecipientEmail,
		RecipientPhone:     t.RecipientPhone,
		CreatedAt:          t.CreatedAt,
	}
}
