package transfer_test

import (
	"context"
	"log/slog"
	"regexp"
	"testing"
	"time"

	"github.com/amirasaad/globalremit/infra/eventbus"
	"github.com/amirasaad/globalremit/infra/repository/memory"
	"github.com/amirasaad/globalremit/pkg/domain"
	"github.com/amirasaad/globalremit/pkg/domain/events"
	"github.com/amirasaad/globalremit/pkg/dto"
	"github.com/amirasaad/globalremit/pkg/repository"
	transfersvc "github.com/amirasaad/globalremit/pkg/service/transfer"
	"github.com/amirasaad/globalremit/pkg/workflow"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var txPattern = regexp.MustCompile(`^TR-[A-Z0-9]{8}$`)

func sequence(ids ...string) workflow.IDGenerator {
	i := 0
	return workflow.IDGeneratorFunc(func() string {
		id := ids[i%len(ids)]
		i++
		return id
	})
}

func newCreate() *dto.TransferCreate {
	return &dto.TransferCreate{
		FromCountry:        "GH",
		ToCountry:          "US",
		SendAmount:         decimal.NewFromInt(1000),
		ReceiveAmount:      decimal.RequireFromString("83.25"),
		Fee:                decimal.RequireFromString("15.00"),
		ExchangeRate:       decimal.RequireFromString("0.08325"),
		PaymentMethod:      domain.PaymentBankTransfer,
		RecipientFirstName: "Kofi",
		RecipientLastName:  "Boateng",
		RecipientEmail:     "kofi@example.com",
		RecipientPhone:     "+233200000000",
	}
}

func TestCreateTransfer_GeneratesTransactionID(t *testing.T) {
	bus := eventbus.NewWithMemory(slog.Default())
	svc := transfersvc.New(memory.NewUoW(memory.NewStore()), bus, slog.Default())
	ctx := context.Background()

	created, err := svc.CreateTransfer(ctx, newCreate())
	require.NoError(t, err)
	assert.Regexp(t, txPattern, created.TransactionID)
	assert.Equal(t, "completed", created.Status)

	got, err := svc.GetByTransactionID(ctx, created.TransactionID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)

	require.Len(t, bus.Published(), 1)
	evt := bus.Published()[0].(*events.TransferCompleted)
	assert.Equal(t, created.TransactionID, evt.TransactionID)
}

func TestCreateTransfer_RegeneratesOnCollision(t *testing.T) {
	svc := transfersvc.New(
		memory.NewUoW(memory.NewStore()), nil, slog.Default(),
		transfersvc.WithIDGenerator(sequence("TR-AAAAAAAA", "TR-AAAAAAAA", "TR-BBBBBBBB")),
	)
	ctx := context.Background()

	first, err := svc.CreateTransfer(ctx, newCreate())
	require.NoError(t, err)
	second, err := svc.CreateTransfer(ctx, newCreate())
	require.NoError(t, err)

	assert.Equal(t, "TR-AAAAAAAA", first.TransactionID)
	assert.Equal(t, "TR-BBBBBBBB", second.TransactionID)
	assert.Equal(t, first.ID+1, second.ID)
}

func TestCreateTransfer_Exhausted(t *testing.T) {
	svc := transfersvc.New(
		memory.NewUoW(memory.NewStore()), nil, slog.Default(),
		transfersvc.WithIDGenerator(sequence("TR-AAAAAAAA")),
	)
	ctx := context.Background()
	_, err := svc.CreateTransfer(ctx, newCreate())
	require.NoError(t, err)

	_, err = svc.CreateTransfer(ctx, newCreate())
	assert.ErrorIs(t, err, workflow.ErrTransactionIDExhausted)
}

func TestCreateTransfer_DuplicateSuppliedID(t *testing.T) {
	svc := transfersvc.New(memory.NewUoW(memory.NewStore()), nil, slog.Default())
	ctx := context.Background()

	in := newCreate()
	in.TransactionID = "TR-12345678"
	_, err := svc.CreateTransfer(ctx, in)
	require.NoError(t, err)

	_, err = svc.CreateTransfer(ctx, in)
	assert.ErrorIs(t, err, domain.ErrAlreadyExists)

	taken, err := svc.TransactionExists(ctx, "TR-12345678")
	require.NoError(t, err)
	assert.True(t, taken)
}

func createUser(t *testing.T, uow repository.UnitOfWork, username string) int64 {
	t.Helper()
	var id int64
	err := uow.Do(context.Background(), func(uow repository.UnitOfWork) error {
		users, err := uow.UserRepository()
		if err != nil {
			return err
		}
		u, err := users.Create(context.Background(), &dto.UserCreate{
			Username: username,
			Password: "hashed",
			Email:    username + "@example.com",
		})
		if err != nil {
			return err
		}
		id = u.ID
		return nil
	})
	require.NoError(t, err)
	return id
}

func TestCreateTransfer_UnknownSender(t *testing.T) {
	uow := memory.NewUoW(memory.NewStore())
	bus := eventbus.NewWithMemory(slog.Default())
	svc := transfersvc.New(uow, bus, slog.Default())
	ctx := context.Background()

	in := newCreate()
	missing := int64(42)
	in.UserID = &missing
	_, err := svc.CreateTransfer(ctx, in)
	require.ErrorIs(t, err, domain.ErrNotFound)
	assert.Empty(t, bus.Published())
	assert.ErrorIs(t, svc.RequireUser(ctx, missing), domain.ErrNotFound)

	userID := createUser(t, uow, "ama")
	in.UserID = &userID
	created, err := svc.CreateTransfer(ctx, in)
	require.NoError(t, err)
	require.NotNil(t, created.UserID)
	assert.Equal(t, userID, *created.UserID)
	assert.NoError(t, svc.RequireUser(ctx, userID))
}

func TestRecordFinalized_AndReceipt(t *testing.T) {
	bus := eventbus.NewWithMemory(slog.Default())
	uow := memory.NewUoW(memory.NewStore())
	svc := transfersvc.New(uow, bus, slog.Default(),
		transfersvc.WithLocation(time.UTC))
	ctx := context.Background()
	userID := createUser(t, uow, "lena")
	sessionID := uuid.New()

	ft := workflow.FinalizedTransfer{
		TransactionID:   "TR-ZX81QW0P",
		TransactionDate: "ignored",
		Transfer: workflow.TransferDraft{
			FromCountry:   "US",
			ToCountry:     "EU",
			SendAmount:    decimal.NewFromInt(100),
			ReceiveAmount: decimal.RequireFromString("91.69"),
			Fee:           decimal.RequireFromString("5.00"),
			ExchangeRate:  decimal.RequireFromString("0.91686"),
			PaymentMethod: domain.PaymentDebitCard,
		},
		Recipient: workflow.RecipientDraft{FirstName: "Lena", LastName: "Vogel", Email: "lena@example.com", Phone: "+49301234"},
	}

	created, err := svc.RecordFinalized(ctx, &userID, ft, events.WithCorrelationID(sessionID))
	require.NoError(t, err)
	assert.Equal(t, "TR-ZX81QW0P", created.TransactionID)

	evt := bus.Published()[0].(*events.TransferCompleted)
	assert.Equal(t, sessionID, evt.CorrelationID)
	require.NotNil(t, evt.UserID)
	assert.Equal(t, userID, *evt.UserID)

	list, err := svc.ListByUser(ctx, userID)
	require.NoError(t, err)
	require.Len(t, list, 1)

	r, err := svc.Receipt(ctx, "TR-ZX81QW0P")
	require.NoError(t, err)
	assert.Equal(t, "Lena", r.RecipientFirst)
	assert.True(t, r.ReceiveAmount.Equal(decimal.RequireFromString("91.69")))
	assert.Equal(t, workflow.FormatTransactionDate(created.CreatedAt.In(time.UTC)), r.TransactionDate)

	_, err = svc.Receipt(ctx, "TR-MISSING0")
	assert.ErrorIs(t, err, domain.ErrNotFound)
	_, err = svc.GetTransfer(ctx, 42)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
