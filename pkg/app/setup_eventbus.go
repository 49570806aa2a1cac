package app

import (
	"context"
	"log/slog"

	"github.com/amirasaad/globalremit/pkg/domain/events"
	"github.com/amirasaad/globalremit/pkg/eventbus"
)

// SetupBus registers the audit handlers for every domain event.
func SetupBus(bus eventbus.Bus, logger *slog.Logger) {
	audit := logger.With("component", "audit")

	bus.Register(events.EventTypeTransferCompleted, func(_ context.Context, e events.Event) error {
		evt, ok := e.(*events.TransferCompleted)
		if !ok {
			return nil
		}
		audit.Info("💸 Transfer completed",
			"transaction_id", evt.TransactionID,
			"corridor", evt.FromCountry+"-"+evt.ToCountry,
			"send_amount", evt.SendAmount,
			"receive_amount", evt.ReceiveAmount,
			"payment_method", evt.PaymentMethod,
			"correlation_id", evt.CorrelationID,
		)
		return nil
	})

	bus.Register(events.EventTypeUserRegistered, func(_ context.Context, e events.Event) error {
		if evt, ok := e.(*events.UserRegistered); ok {
			audit.Info("👤 User registered", "user_id", evt.UserID, "username", evt.Username)
		}
		return nil
	})

	bus.Register(events.EventTypeExchangeRateUpdated, func(_ context.Context, e events.Event) error {
		if evt, ok := e.(*events.ExchangeRateUpdated); ok {
			audit.Info("📈 Exchange rate updated",
				"pair", evt.FromCurrency+"-"+evt.ToCurrency,
				"old_rate", evt.OldRate,
				"new_rate", evt.NewRate,
			)
		}
		return nil
	})
}
