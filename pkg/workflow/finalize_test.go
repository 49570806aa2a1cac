package workflow

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var txIDPattern = regexp.MustCompile(`^TR-[A-Z0-9]{8}$`)

func TestRandomTransactionID_Format(t *testing.T) {
	for range 200 {
		assert.Regexp(t, txIDPattern, RandomTransactionID())
	}
}

func TestFinalize_SnapshotAndDate(t *testing.T) {
	at := time.Date(2025, time.March, 4, 14, 7, 0, 0, time.UTC)
	var slept time.Duration
	f := NewFinalizer(
		WithClock(func() time.Time { return at }),
		WithLocation(time.UTC),
		WithSleeper(func(d time.Duration) { slept += d }),
	)
	draft := TransferDraft{FromCountry: "GH", ToCountry: "US"}
	recipient := RecipientDraft{FirstName: "Ama"}

	ft, err := f.Finalize(context.Background(), draft, recipient)
	require.NoError(t, err)
	assert.Regexp(t, txIDPattern, ft.TransactionID)
	assert.Equal(t, "March 4, 2025 at 02:07 PM UTC", ft.TransactionDate)
	assert.Equal(t, draft, ft.Transfer)
	assert.Equal(t, recipient, ft.Recipient)
	assert.Equal(t, DefaultPaymentDelay, slept)
}

func TestFinalize_DelayIgnoresCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	f := NewFinalizer(WithDelay(5 * time.Millisecond))

	start := time.Now()
	_, err := f.Finalize(ctx, TransferDraft{}, RecipientDraft{})
	require.NoError(t, err)
	assert.GreaterOrEqual(t, time.Since(start), 5*time.Millisecond)
}

func TestFinalize_RegeneratesCollidingIDs(t *testing.T) {
	ids := []string{"TR-AAAAAAAA", "TR-BBBBBBBB", "TR-CCCCCCCC"}
	next := 0
	taken := map[string]bool{"TR-AAAAAAAA": true, "TR-BBBBBBBB": true}
	f := NewFinalizer(
		WithDelay(0),
		WithIDGenerator(IDGeneratorFunc(func() string {
			id := ids[next]
			next++
			return id
		})),
		WithUniquenessCheck(func(_ context.Context, id string) (bool, error) {
			return taken[id], nil
		}),
	)

	ft, err := f.Finalize(context.Background(), TransferDraft{}, RecipientDraft{})
	require.NoError(t, err)
	assert.Equal(t, "TR-CCCCCCCC", ft.TransactionID)
	assert.Equal(t, 3, next)
}

func TestFinalize_GivesUpAfterMaxAttempts(t *testing.T) {
	calls := 0
	f := NewFinalizer(
		WithDelay(0),
		WithIDGenerator(IDGeneratorFunc(func() string { return "TR-SAMESAME" })),
		WithUniquenessCheck(func(context.Context, string) (bool, error) {
			calls++
			return true, nil
		}),
	)
	_, err := f.Finalize(context.Background(), TransferDraft{}, RecipientDraft{})
	assert.ErrorIs(t, err, ErrTransactionIDExhausted)
	assert.Equal(t, MaxIDAttempts, calls)
}

func TestFinalize_UniquenessCheckError(t *testing.T) {
	boom := errors.New("db down")
	f := NewFinalizer(
		WithDelay(0),
		WithUniquenessCheck(func(context.Context, string) (bool, error) { return false, boom }),
	)
	_, err := f.Finalize(context.Background(), TransferDraft{}, RecipientDraft{})
	assert.ErrorIs(t, err, boom)
}
