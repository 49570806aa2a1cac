package repository

import (
	"context"

	"github.com/amirasaad/globalremit/pkg/repository"
	"github.com/amirasaad/globalremit/pkg/repository/exchangerate"
	"github.com/amirasaad/globalremit/pkg/repository/transfer"
	"github.com/amirasaad/globalremit/pkg/repository/user"
	"gorm.io/gorm"
)

// UoW provides transaction boundary and repository access in one abstraction.
// Outside Do, repositories run on the root connection.
type UoW struct {
	db *gorm.DB
	tx *gorm.DB
}

// NewUoW creates a new UoW for the given *gorm.DB.
func NewUoW(db *gorm.DB) *UoW {
	return &UoW{db: db}
}

// Do runs fn in a database transaction. Repositories obtained from the UoW
// passed to fn share that transaction.
func (u *UoW) Do(ctx context.Context, fn func(uow repository.UnitOfWork) error) error {
	return u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&UoW{db: u.db, tx: tx})
	})
}

func (u *UoW) session() *gorm.DB {
	if u.tx != nil {
		return u.tx
	}
	return u.db
}

func (u *UoW) UserRepository() (user.Repository, error) {
	return NewUserRepository(u.session()), nil
}

func (u *UoW) TransferRepository() (transfer.Repository, error) {
	return NewTransferRepository(u.session()), nil
}

func (u *UoW) ExchangeRateRepository() (exchangerate.Repository, error) {
	return NewExchangeRateRepository(u.session()), nil
}

var _ repository.UnitOfWork = (*UoW)(nil)
