package exchangerate

import (
	"context"

	"github.com/amirasaad/globalremit/pkg/dto"
)

// Repository defines the interface for stored exchange rate operations.
type Repository interface {
	// Create inserts a rate and returns it with its assigned ID.
	Create(ctx context.Context, create *dto.ExchangeRateCreate) (*dto.ExchangeRateRead, error)

	// Get retrieves the rate for an ordered currency pair.
	Get(ctx context.Context, from, to string) (*dto.ExchangeRateRead, error)

	// GetByID retrieves a rate by its ID.
	GetByID(ctx context.Context, id int64) (*dto.ExchangeRateRead, error)

	// Update replaces the rate value and bumps UpdatedAt.
	Update(ctx context.Context, id int64, update *dto.ExchangeRateUpdate) (*dto.ExchangeRateRead, error)

	// List returns all rates ordered by ID.
	List(ctx context.Context) ([]*dto.ExchangeRateRead, error)

	// Count returns the number of stored rates.
	Count(ctx context.Context) (int64, error)
}
