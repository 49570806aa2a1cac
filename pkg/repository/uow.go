package repository

import (
	"context"

	"github.com/amirasaad/globalremit/pkg/repository/exchangerate"
	"github.com/amirasaad/globalremit/pkg/repository/transfer"
	"github.com/amirasaad/globalremit/pkg/repository/user"
)

// UnitOfWork defines the contract for transactional work and type-safe
// repository access. Repositories obtained inside Do share its transaction.
type UnitOfWork interface {
	// Do executes the given function within a transaction boundary.
	// If the function returns an error, the transaction is rolled back.
	Do(ctx context.Context, fn func(uow UnitOfWork) error) error

	UserRepository() (user.Repository, error)
	TransferRepository() (transfer.Repository, error)
	ExchangeRateRepository() (exchangerate.Repository, error)
}
