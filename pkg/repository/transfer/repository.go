package transfer

import (
	"context"

	"github.com/amirasaad/globalremit/pkg/dto"
)

// Repository defines the interface for transfer data access operations.
type Repository interface {
	// Create inserts a transfer and returns it with its assigned ID and
	// creation time.
	Create(ctx context.Context, create *dto.TransferCreate) (*dto.TransferRead, error)

	// Get retrieves a transfer by its ID. Unknown IDs yield domain.ErrNotFound.
	Get(ctx context.Context, id int64) (*dto.TransferRead, error)

	// GetByTransactionID retrieves a transfer by its "TR-" transaction id.
	GetByTransactionID(ctx context.Context, transactionID string) (*dto.TransferRead, error)

	// ExistsByTransactionID reports whether the transaction id is taken.
	ExistsByTransactionID(ctx context.Context, transactionID string) (bool, error)

	// ListByUser lists a user's transfers, oldest first.
	ListByUser(ctx context.Context, userID int64) ([]*dto.TransferRead, error)
}
