package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/amirasaad/globalremit/pkg/dto"
	"github.com/amirasaad/globalremit/pkg/repository/exchangerate"
	"gorm.io/gorm"
)

type exchangeRateRepository struct {
	db *gorm.DB
}

// NewExchangeRateRepository returns a gorm-backed exchange rate repository.
func NewExchangeRateRepository(db *gorm.DB) exchangerate.Repository {
	return &exchangeRateRepository{db: db}
}

func (r *exchangeRateRepository) Create(
	ctx context.Context,
	create *dto.ExchangeRateCreate,
) (*dto.ExchangeRateRead, error) {
	rate := &ExchangeRate{
		FromCurrency: create.FromCurrency,
		ToCurrency:   create.ToCurrency,
		Rate:         create.Rate,
	}
	if err := r.db.WithContext(ctx).Create(rate).Error; err != nil {
		return nil, MapGormErrorToDomain(err)
	}
	return mapRateToDTO(rate), nil
}

func (r *exchangeRateRepository) Get(
	ctx context.Context,
	from, to string,
) (*dto.ExchangeRateRead, error) {
	var rate ExchangeRate
	err := r.db.WithContext(ctx).
		Where("from_currency = ? AND to_currency = ?", from, to).
		First(&rate).Error
	if err != nil {
		return nil, fmt.Errorf("rate %s-%s: %w", from, to, MapGormErrorToDomain(err))
	}
	return mapRateToDTO(&rate), nil
}

func (r *exchangeRateRepository) GetByID(
	ctx context.Context,
	id int64,
) (*dto.ExchangeRateRead, error) {
	var rate ExchangeRate
	if err := r.db.WithContext(ctx).First(&rate, "id = ?", id).Error; err != nil {
		return nil, fmt.Errorf("rate %d: %w", id, MapGormErrorToDomain(err))
	}
	return mapRateToDTO(&rate), nil
}

func (r *exchangeRateRepository) Update(
	ctx context.Context,
	id int64,
	update *dto.ExchangeRateUpdate,
) (*dto.ExchangeRateRead, error) {
	res := r.db.WithContext(ctx).Model(&ExchangeRate{}).
		Where("id = ?", id).
		Updates(map[string]any{"rate": update.Rate, "updated_at": time.Now().UTC()})
	if res.Error != nil {
		return nil, MapGormErrorToDomain(res.Error)
	}
	if res.RowsAffected == 0 {
		return nil, fmt.Errorf("rate %d: %w", id, MapGormErrorToDomain(gorm.ErrRecordNotFound))
	}
	return r.GetByID(ctx, id)
}

func (r *exchangeRateRepository) List(ctx context.Context) ([]*dto.ExchangeRateRead, error) {
	var rows []ExchangeRate
	if err := r.db.WithContext(ctx).Order("id").Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]*dto.ExchangeRateRead, 0, len(rows))
	for i := range rows {
		out = append(out, mapRateToDTO(&rows[i]))
	}
	return out, nil
}

func (r *exchangeRateRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&ExchangeRate{}).Count(&count).Error
	return count, err
}

func mapRateToDTO(r *ExchangeRate) *dto.ExchangeRateRead {
	return &dto.ExchangeRateRead{
		ID:           r.ID,
		FromCurrency: r.FromCurrency,
		ToCurrency:   r.ToCurrency,
		Rate:         r.Rate,
		UpdatedAt:    r.UpdatedAt,
	}
}
