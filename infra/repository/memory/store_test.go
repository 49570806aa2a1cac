package memory

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"
	"testing"

	"github.com/amirasaad/globalremit/pkg/domain"
	"github.com/amirasaad/globalremit/pkg/dto"
	"github.com/amirasaad/globalremit/pkg/repository"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTransfer(txID string, userID *int64) *dto.TransferCreate {
	return &dto.TransferCreate{
		UserID:        userID,
		TransactionID: txID,
		FromCountry:   "GH",
		ToCountry:     "US",
		SendAmount:    decimal.NewFromInt(1000),
		ReceiveAmount: decimal.RequireFromString("83.25"),
		Fee:           decimal.NewFromInt(15),
		ExchangeRate:  decimal.RequireFromString("0.08325"),
		PaymentMethod: "bank-transfer",
	}
}

func TestTransferIDsAreSequentialUnderParallelCreate(t *testing.T) {
	uow := NewUoW(NewStore())
	repo, err := uow.TransferRepository()
	require.NoError(t, err)

	const n = 64
	ids := make([]int64, n)
	var wg sync.WaitGroup
	for i := range n {
		wg.Add(1)
		go func() {
			defer wg.Done()
			tr, err := repo.Create(context.Background(), newTransfer(fmt.Sprintf("TR-%08d", i), nil))
			assert.NoError(t, err)
			ids[i] = tr.ID
		}()
	}
	wg.Wait()

	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	for i, id := range ids {
		assert.Equal(t, int64(i+1), id)
	}
}

func TestTransferRepository(t *testing.T) {
	ctx := context.Background()
	uow := NewUoW(NewStore())
	repo, err := uow.TransferRepository()
	require.NoError(t, err)

	userID := int64(7)
	created, err := repo.Create(ctx, newTransfer("TR-AAAA0001", &userID))
	require.NoError(t, err)
	assert.Equal(t, "completed", created.Status)
	_, err = repo.Create(ctx, newTransfer("TR-AAAA0002", &userID))
	require.NoError(t, err)
	_, err = repo.Create(ctx, newTransfer("TR-AAAA0003", nil))
	require.NoError(t, err)

	_, err = repo.Create(ctx, newTransfer("TR-AAAA0001", nil))
	assert.ErrorIs(t, err, domain.ErrAlreadyExists)

	got, err := repo.GetByTransactionID(ctx, "TR-AAAA0001")
	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)

	_, err = repo.Get(ctx, 99)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	list, err := repo.ListByUser(ctx, userID)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Less(t, list[0].ID, list[1].ID)

	empty, err := repo.ListByUser(ctx, 12345)
	require.NoError(t, err)
	assert.NotNil(t, empty)
	assert.Empty(t, empty)
}

func TestUserRepository(t *testing.T) {
	ctx := context.Background()
	repo, err := NewUoW(NewStore()).UserRepository()
	require.NoError(t, err)

	u, err := repo.Create(ctx, &dto.UserCreate{Username: "kwame", Email: "kwame@example.com", Password: "hash"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), u.ID)

	_, err = repo.Create(ctx, &dto.UserCreate{Username: "kwame", Email: "x@example.com"})
	assert.ErrorIs(t, err, domain.ErrAlreadyExists)
	_, err = repo.Create(ctx, &dto.UserCreate{Username: "other", Email: "kwame@example.com"})
	assert.ErrorIs(t, err, domain.ErrAlreadyExists)

	byName, err := repo.GetByUsername(ctx, "kwame")
	require.NoError(t, err)
	assert.Equal(t, u.ID, byName.ID)

	ok, _ := repo.ExistsByEmail(ctx, "kwame@example.com")
	assert.True(t, ok)
	ok, _ = repo.ExistsByUsername(ctx, "nobody")
	assert.False(t, ok)

	_, err = repo.Get(ctx, 2)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestExchangeRateRepository(t *testing.T) {
	ctx := context.Background()
	repo, err := NewUoW(NewStore()).ExchangeRateRepository()
	require.NoError(t, err)

	for _, pair := range [][2]string{{"GH", "US"}, {"US", "GH"}} {
		_, err := repo.Create(ctx, &dto.ExchangeRateCreate{FromCurrency: pair[0], ToCurrency: pair[1], Rate: decimal.NewFromInt(2)})
		require.NoError(t, err)
	}
	_, err = repo.Create(ctx, &dto.ExchangeRateCreate{FromCurrency: "GH", ToCurrency: "US", Rate: decimal.NewFromInt(3)})
	assert.ErrorIs(t, err, domain.ErrAlreadyExists)

	n, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)

	rate, err := repo.Get(ctx, "US", "GH")
	require.NoError(t, err)
	assert.Equal(t, int64(2), rate.ID)

	updated, err := repo.Update(ctx, rate.ID, &dto.ExchangeRateUpdate{Rate: decimal.RequireFromString("12.5")})
	require.NoError(t, err)
	assert.True(t, updated.Rate.Equal(decimal.RequireFromString("12.5")))
	assert.False(t, updated.UpdatedAt.Before(rate.UpdatedAt))

	_, err = repo.Get(ctx, "EU", "GH")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	list, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "GH", list[0].FromCurrency)
}

func TestDoRollsBackEveryWrite(t *testing.T) {
	ctx := context.Background()
	store := NewStore()
	uow := NewUoW(store)
	rates, _ := uow.ExchangeRateRepository()
	seed, err := rates.Create(ctx, &dto.ExchangeRateCreate{FromCurrency: "GH", ToCurrency: "US", Rate: decimal.NewFromInt(1)})
	require.NoError(t, err)

	boom := errors.New("boom")
	err = uow.Do(ctx, func(tx repository.UnitOfWork) error {
		users, _ := tx.UserRepository()
		if _, err := users.Create(ctx, &dto.UserCreate{Username: "kwame", Email: "k@example.com"}); err != nil {
			return err
		}
		transfers, _ := tx.TransferRepository()
		if _, err := transfers.Create(ctx, newTransfer("TR-ROLLBACK", nil)); err != nil {
			return err
		}
		txRates, _ := tx.ExchangeRateRepository()
		if _, err := txRates.Update(ctx, seed.ID, &dto.ExchangeRateUpdate{Rate: decimal.NewFromInt(9)}); err != nil {
			return err
		}
		return boom
	})
	require.ErrorIs(t, err, boom)

	users, _ := uow.UserRepository()
	ok, _ := users.ExistsByUsername(ctx, "kwame")
	assert.False(t, ok)
	transfers, _ := uow.TransferRepository()
	ok, _ = transfers.ExistsByTransactionID(ctx, "TR-ROLLBACK")
	assert.False(t, ok)
	rate, err := rates.GetByID(ctx, seed.ID)
	require.NoError(t, err)
	assert.True(t, rate.Rate.Equal(decimal.NewFromInt(1)))

	again, err := users.Create(ctx, &dto.UserCreate{Username: "ama", Email: "a@example.com"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), again.ID)
}

func TestDoCommitsAndAllowsNesting(t *testing.T) {
	ctx := context.Background()
	uow := NewUoW(NewStore())

	err := uow.Do(ctx, func(tx repository.UnitOfWork) error {
		return tx.Do(ctx, func(inner repository.UnitOfWork) error {
			users, _ := inner.UserRepository()
			_, err := users.Create(ctx, &dto.UserCreate{Username: "kwame", Email: "k@example.com"})
			return err
		})
	})
	require.NoError(t, err)

	users, _ := uow.UserRepository()
	ok, _ := users.ExistsByUsername(ctx, "kwame")
	assert.True(t, ok)
}

func TestDoHonoursCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	called := false
	err := NewUoW(NewStore()).Do(ctx, func(repository.UnitOfWork) error {
		called = true
		return nil
	})
	assert.ErrorIs(t, err, context.Canceled)
	assert.False(t, called)
}
