// Command kafka_smoketest publishes a Transfer.Completed event through the
// Kafka event bus and waits for its own consumer to receive it.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	infra_eventbus "github.com/amirasaad/globalremit/infra/eventbus"
	"github.com/amirasaad/globalremit/pkg/config"
	"github.com/amirasaad/globalremit/pkg/domain/events"
	"github.com/amirasaad/globalremit/pkg/workflow"
	"github.com/shopspring/decimal"
)

// RunSmokeTest round-trips one event through the configured brokers.
func RunSmokeTest() error {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))

	brokers := strings.TrimSpace(os.Getenv("BROKERS"))
	if brokers == "" {
		brokers = "localhost:9093,localhost:9092"
	}
	groupID := strings.TrimSpace(os.Getenv("GROUP_ID"))
	if groupID == "" {
		groupID = fmt.Sprintf("globalremit-smoke-%d", time.Now().Unix())
	}

	bus, err := infra_eventbus.NewWithKafka(&config.Kafka{
		Brokers:     brokers,
		GroupID:     groupID,
		TopicPrefix: "globalremit.smoke",
	}, logger)
	if err != nil {
		return err
	}
	defer func() { _ = bus.Close() }()

	txID := workflow.RandomTransactionID()
	received := make(chan string, 1)
	bus.Register(events.EventTypeTransferCompleted, func(_ context.Context, e events.Event) error {
		if tc, ok := e.(*events.TransferCompleted); ok && tc.TransactionID == txID {
			select {
			case received <- tc.TransactionID:
			default:
			}
		}
		return nil
	})

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	err = bus.Emit(ctx, events.NewTransferCompleted(events.TransferCompleted{
		TransactionID: txID,
		FromCountry:   "GH",
		ToCountry:     "US",
		SendAmount:    decimal.NewFromInt(1000),
		ReceiveAmount: decimal.RequireFromString("83.25"),
		Fee:           decimal.NewFromInt(15),
		PaymentMethod: "bank-transfer",
	}))
	if err != nil {
		return fmt.Errorf("emit: %w", err)
	}
	logger.Info("produced", "transaction_id", txID)

	select {
	case id := <-received:
		logger.Info("consumed", "transaction_id", id)
		return nil
	case <-ctx.Done():
		return errors.New("timed out waiting for Transfer.Completed")
	}
}

func main() {
	if err := RunSmokeTest(); err != nil {
		slog.Error("smoke test failed", "error", err)
		os.Exit(1)
	}
}
