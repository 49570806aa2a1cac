package eventbus

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/amirasaad/globalremit/pkg/config"
	"github.com/amirasaad/globalremit/pkg/domain/events"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryEventBus_DispatchesByType(t *testing.T) {
	bus := NewWithMemory(slog.Default())

	var got []string
	bus.Register(events.EventTypeTransferCompleted, func(_ context.Context, e events.Event) error {
		got = append(got, e.(*events.TransferCompleted).TransactionID)
		return nil
	})
	bus.Register(events.EventTypeTransferCompleted, func(context.Context, events.Event) error {
		return errors.New("downstream unavailable")
	})
	bus.Register(events.EventTypeUserRegistered, func(context.Context, events.Event) error {
		t.Fatal("user handler must not receive transfer events")
		return nil
	})

	evt := events.NewTransferCompleted(events.TransferCompleted{TransactionID: "TR-ABCDEFGH"})
	require.NoError(t, bus.Emit(context.Background(), evt))

	assert.Equal(t, []string{"TR-ABCDEFGH"}, got)
	require.Len(t, bus.Published(), 1)

	bus.ClearPublished()
	assert.Empty(t, bus.Published())
}

func TestMemoryEventBus_RecoversHandlerPanic(t *testing.T) {
	bus := NewWithMemory(nil)
	bus.Register(events.EventTypeUserRegistered, func(context.Context, events.Event) error {
		panic("boom")
	})
	assert.NotPanics(t, func() {
		_ = bus.Emit(context.Background(), events.NewUserRegistered(1, "ama", "ama@example.com"))
	})
}

func TestEnvelope_RestoresConcreteEvent(t *testing.T) {
	userID := int64(7)
	in := events.NewTransferCompleted(events.TransferCompleted{
		TransferID:    3,
		UserID:        &userID,
		TransactionID: "TR-12345678",
		FromCountry:   "GH",
		ToCountry:     "US",
		SendAmount:    decimal.NewFromInt(1000),
		ReceiveAmount: decimal.RequireFromString("83.25"),
		Fee:           decimal.RequireFromString("15.00"),
		PaymentMethod: "bank-transfer",
	})

	raw, err := encodeEnvelope(in)
	require.NoError(t, err)

	out, err := decodeEnvelope(raw)
	require.NoError(t, err)
	got, ok := out.(*events.TransferCompleted)
	require.True(t, ok)
	assert.Equal(t, in.ID, got.ID)
	assert.Equal(t, in.TransactionID, got.TransactionID)
	assert.True(t, got.ReceiveAmount.Equal(in.ReceiveAmount))
	require.NotNil(t, got.UserID)
	assert.Equal(t, userID, *got.UserID)

	_, err = decodeEnvelope([]byte(`{"type":"Nope","payload":{}}`))
	assert.Error(t, err)
	_, err = decodeEnvelope([]byte(`not json`))
	assert.Error(t, err)
}

func TestKafkaHelpers(t *testing.T) {
	assert.Equal(t, []string{"a:9092", "b:9092"}, parseBrokers(" a:9092, ,b:9092 "))
	assert.Equal(t, "globalremit.events.transfer.completed",
		topicNameFor("", events.EventTypeTransferCompleted))
	assert.Equal(t, "x.dlq.user.registered",
		dlqTopicNameFor("x", events.EventTypeUserRegistered))

	m, err := saslMechanism("", "")
	require.NoError(t, err)
	assert.Nil(t, m)

	_, err = saslMechanism("user", "")
	assert.Error(t, err)

	m, err = saslMechanism("user", "secret")
	require.NoError(t, err)
	assert.Equal(t, "PLAIN", m.Name())
}

func TestNewWithKafka_RequiresBrokers(t *testing.T) {
	_, err := NewWithKafka(&config.Kafka{}, nil)
	assert.Error(t, err)
	_, err = NewWithKafka(nil, nil)
	assert.Error(t, err)
}

func TestKafkaEventBus_Integration(t *testing.T) {
	brokers := os.Getenv("KAFKA_TEST_BROKERS")
	if brokers == "" {
		t.Skip("KAFKA_TEST_BROKERS not set")
	}
	bus, err := NewWithKafka(&config.Kafka{Brokers: brokers, GroupID: "globalremit-test"}, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = bus.Close() })

	received := make(chan events.Event, 1)
	bus.Register(events.EventTypeUserRegistered, func(_ context.Context, e events.Event) error {
		received <- e
		return nil
	})

	require.NoError(t, bus.Emit(context.Background(), events.NewUserRegistered(1, "ama", "ama@example.com")))
	select {
	case e := <-received:
		assert.Equal(t, events.EventTypeUserRegistered.String(), e.Type())
	case <-time.After(30 * time.Second):
		t.Fatal("timed out waiting for event")
	}
}
