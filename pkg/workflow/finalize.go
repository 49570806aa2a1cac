package workflow

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"time"
)

const (
	// TransactionIDPrefix starts every transaction id.
	TransactionIDPrefix = "TR-"
	// DateLayout is the long-form transaction date, e.g.
	// "March 4, 2025 at 02:07 PM GMT".
	DateLayout = "January 2, 2006 at 03:04 PM MST"
	// DefaultPaymentDelay is the simulated processing time of a payment.
	DefaultPaymentDelay = 1500 * time.Millisecond
	// MaxIDAttempts bounds transaction id regeneration on collision.
	MaxIDAttempts = 5

	idLength   = 8
	idAlphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"
)

// ErrTransactionIDExhausted is returned when every generated id collided
// with an existing transaction.
var ErrTransactionIDExhausted = errors.New("could not allocate a unique transaction id")

// IDGenerator produces candidate transaction ids.
type IDGenerator interface {
	NewTransactionID() string
}

// IDGeneratorFunc adapts a function to IDGenerator.
type IDGeneratorFunc func() string

// NewTransactionID implements IDGenerator.
func (f IDGeneratorFunc) NewTransactionID() string { return f() }

// RandomTransactionID returns "TR-" followed by 8 random base-36 characters.
// The source is not cryptographic.
func RandomTransactionID() string {
	b := make([]byte, idLength)
	for i := range b {
		b[i] = idAlphabet[rand.IntN(len(idAlphabet))]
	}
	return TransactionIDPrefix + string(b)
}

// ExistsFunc reports whether a transaction id is already taken.
type ExistsFunc func(ctx context.Context, transactionID string) (bool, error)

// PaymentFinalizer simulates a payment and mints the FinalizedTransfer.
// It never contacts a payment gateway.
type PaymentFinalizer struct {
	ids      IDGenerator
	now      func() time.Time
	location *time.Location
	delay    time.Duration
	sleep    func(time.Duration)
	exists   ExistsFunc
}

// FinalizerOption configures a PaymentFinalizer.
type FinalizerOption func(*PaymentFinalizer)

// WithIDGenerator overrides the transaction id source.
func WithIDGenerator(g IDGenerator) FinalizerOption {
	return func(f *PaymentFinalizer) { f.ids = g }
}

// WithClock overrides the time source.
func WithClock(now func() time.Time) FinalizerOption {
	return func(f *PaymentFinalizer) { f.now = now }
}

// WithLocation sets the zone the transaction date is rendered in.
func WithLocation(loc *time.Location) FinalizerOption {
	return func(f *PaymentFinalizer) { f.location = loc }
}

// WithDelay sets the simulated processing time. Zero disables it.
func WithDelay(d time.Duration) FinalizerOption {
	return func(f *PaymentFinalizer) { f.delay = d }
}

// WithSleeper replaces time.Sleep for the simulated delay.
func WithSleeper(sleep func(time.Duration)) FinalizerOption {
	return func(f *PaymentFinalizer) { f.sleep = sleep }
}

// WithUniquenessCheck makes Finalize regenerate ids that already exist.
func WithUniquenessCheck(exists ExistsFunc) FinalizerOption {
	return func(f *PaymentFinalizer) { f.exists = exists }
}

// NewFinalizer creates a finalizer with the default delay, random ids and
// the local clock.
func NewFinalizer(opts ...FinalizerOption) *PaymentFinalizer {
	f := &PaymentFinalizer{
		ids:      IDGeneratorFunc(RandomTransactionID),
		now:      time.Now,
		location: time.Local,
		delay:    DefaultPaymentDelay,
		sleep:    time.Sleep,
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Finalize waits out the processing delay and returns the finalized
// transfer. The wait ignores ctx: once a payment has started it completes.
func (f *PaymentFinalizer) Finalize(
	ctx context.Context,
	draft TransferDraft,
	recipient RecipientDraft,
) (FinalizedTransfer, error) {
	if f.delay > 0 {
		f.sleep(f.delay)
	}
	id, err := f.allocateID(ctx)
	if err != nil {
		return FinalizedTransfer{}, err
	}
	return FinalizedTransfer{
		TransactionID:   id,
		TransactionDate: FormatTransactionDate(f.now().In(f.location)),
		Transfer:        draft,
		Recipient:       recipient,
	}, nil
}

func (f *PaymentFinalizer) allocateID(ctx context.Context) (string, error) {
	if f.exists == nil {
		return f.ids.NewTransactionID(), nil
	}
	for range MaxIDAttempts {
		id := f.ids.NewTransactionID()
		taken, err := f.exists(ctx, id)
		if err != nil {
			return "", fmt.Errorf("check transaction id: %w", err)
		}
		if !taken {
			return id, nil
		}
	}
	return "", ErrTransactionIDExhausted
}

// FormatTransactionDate renders t with DateLayout.
func FormatTransactionDate(t time.Time) string {
	return t.Format(DateLayout)
}

var _ Finalizer = (*PaymentFinalizer)(nil)
