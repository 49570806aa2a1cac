// Package mocks holds testify mocks of the repository contracts.
package mocks

import (
	"context"

	"github.com/amirasaad/globalremit/pkg/dto"
	"github.com/amirasaad/globalremit/pkg/repository"
	"github.com/amirasaad/globalremit/pkg/repository/exchangerate"
	"github.com/amirasaad/globalremit/pkg/repository/transfer"
	"github.com/amirasaad/globalremit/pkg/repository/user"
	"github.com/stretchr/testify/mock"
)

// TestingT is the subset of testing.TB the constructors need.
type TestingT interface {
	mock.TestingT
	Cleanup(func())
}

// MockUnitOfWork runs Do callbacks against itself and hands out the mock
// repositories it was built with.
type MockUnitOfWork struct {
	mock.Mock
	Users     *MockUserRepository
	Transfers *MockTransferRepository
	Rates     *MockExchangeRateRepository
}

// NewMockUnitOfWork creates a unit of work wired to fresh repository mocks
// and asserts all expectations at test cleanup.
func NewMockUnitOfWork(t TestingT) *MockUnitOfWork {
	u := &MockUnitOfWork{
		Users:     &MockUserRepository{},
		Transfers: &MockTransferRepository{},
		Rates:     &MockExchangeRateRepository{},
	}
	for _, m := range []*mock.Mock{&u.Mock, &u.Users.Mock, &u.Transfers.Mock, &u.Rates.Mock} {
		m.Test(t)
	}
	t.Cleanup(func() {
		u.AssertExpectations(t)
		u.Users.AssertExpectations(t)
		u.Transfers.AssertExpectations(t)
		u.Rates.AssertExpectations(t)
	})
	return u
}

func (u *MockUnitOfWork) Do(ctx context.Context, fn func(uow repository.UnitOfWork) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return fn(u)
}

func (u *MockUnitOfWork) UserRepository() (user.Repository, error) { return u.Users, nil }

func (u *MockUnitOfWork) TransferRepository() (transfer.Repository, error) { return u.Transfers, nil }

func (u *MockUnitOfWork) ExchangeRateRepository() (exchangerate.Repository, error) {
	return u.Rates, nil
}

// MockUserRepository mocks user.Repository.
type MockUserRepository struct{ mock.Mock }

func (m *MockUserRepository) Create(ctx context.Context, create *dto.UserCreate) (*dto.UserRead, error) {
	args := m.Called(ctx, create)
	return readOrNil[dto.UserRead](args, 0), args.Error(1)
}

func (m *MockUserRepository) Get(ctx context.Context, id int64) (*dto.UserRead, error) {
	args := m.Called(ctx, id)
	return readOrNil[dto.UserRead](args, 0), args.Error(1)
}

func (m *MockUserRepository) GetByUsername(ctx context.Context, username string) (*dto.UserRead, error) {
	args := m.Called(ctx, username)
	return readOrNil[dto.UserRead](args, 0), args.Error(1)
}

func (m *MockUserRepository) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	args := m.Called(ctx, username)
	return args.Bool(0), args.Error(1)
}

func (m *MockUserRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	args := m.Called(ctx, email)
	return args.Bool(0), args.Error(1)
}

// MockTransferRepository mocks transfer.Repository.
type MockTransferRepository struct{ mock.Mock }

func (m *MockTransferRepository) Create(ctx context.Context, create *dto.TransferCreate) (*dto.TransferRead, error) {
	args := m.Called(ctx, create)
	return readOrNil[dto.TransferRead](args, 0), args.Error(1)
}

func (m *MockTransferRepository) Get(ctx context.Context, id int64) (*dto.TransferRead, error) {
	args := m.Called(ctx, id)
	return readOrNil[dto.TransferRead](args, 0), args.Error(1)
}

func (m *MockTransferRepository) GetByTransactionID(ctx context.Context, transactionID string) (*dto.TransferRead, error) {
	args := m.Called(ctx, transactionID)
	return readOrNil[dto.TransferRead](args, 0), args.Error(1)
}

func (m *MockTransferRepository) ExistsByTransactionID(ctx context.Context, transactionID string) (bool, error) {
	args := m.Called(ctx, transactionID)
	return args.Bool(0), args.Error(1)
}

func (m *MockTransferRepository) ListByUser(ctx context.Context, userID int64) ([]*dto.TransferRead, error) {
	args := m.Called(ctx, userID)
	list, _ := args.Get(0).([]*dto.TransferRead)
	return list, args.Error(1)
}

// MockExchangeRateRepository mocks exchangerate.Repository.
type MockExchangeRateRepository struct{ mock.Mock }

func (m *MockExchangeRateRepository) Create(ctx context.Context, create *dto.ExchangeRateCreate) (*dto.ExchangeRateRead, error) {
	args := m.Called(ctx, create)
	return readOrNil[dto.ExchangeRateRead](args, 0), args.Error(1)
}

func (m *MockExchangeRateRepository) Get(ctx context.Context, from, to string) (*dto.ExchangeRateRead, error) {
	args := m.Called(ctx, from, to)
	return readOrNil[dto.ExchangeRateRead](args, 0), args.Error(1)
}

func (m *MockExchangeRateRepository) GetByID(ctx context.Context, id int64) (*dto.ExchangeRateRead, error) {
	args := m.Called(ctx, id)
	return readOrNil[dto.ExchangeRateRead](args, 0), args.Error(1)
}

func (m *MockExchangeRateRepository) Update(ctx context.Context, id int64, update *dto.ExchangeRateUpdate) (*dto.ExchangeRateRead, error) {
	args := m.Called(ctx, id, update)
	return readOrNil[dto.ExchangeRateRead](args, 0), args.Error(1)
}

func (m *MockExchangeRateRepository) List(ctx context.Context) ([]*dto.ExchangeRateRead, error) {
	args := m.Called(ctx)
	list, _ := args.Get(0).([]*dto.ExchangeRateRead)
	return list, args.Error(1)
}

func (m *MockExchangeRateRepository) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func readOrNil[T any](args mock.Arguments, i int) *T {
	v, _ := args.Get(i).(*T)
	return v
}

var (
	_ repository.UnitOfWork   = (*MockUnitOfWork)(nil)
	_ user.Repository         = (*MockUserRepository)(nil)
	_ transfer.Repository     = (*MockTransferRepository)(nil)
	_ exchangerate.Repository = (*MockExchangeRateRepository)(nil)
)
