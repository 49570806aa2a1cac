package user

import (
	"context"

	"github.com/amirasaad/globalremit/pkg/dto"
)

// Repository defines the interface for user data access operations.
type Repository interface {
	// Create inserts a new user and returns it with its assigned ID.
	Create(ctx context.Context, create *dto.UserCreate) (*dto.UserRead, error)

	// Get retrieves a user by its ID. Unknown IDs yield domain.ErrNotFound.
	Get(ctx context.Context, id int64) (*dto.UserRead, error)

	// GetByUsername retrieves a user by username.
	GetByUsername(ctx context.Context, username string) (*dto.UserRead, error)

	// ExistsByUsername checks if a user with the given username exists.
	ExistsByUsername(ctx context.Context, username string) (bool, error)

	// ExistsByEmail checks if a user with the given email exists.
	ExistsByEmail(ctx context.Context, email string) (bool, error)
}
