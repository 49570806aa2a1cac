package eventbus

import (
	"context"
	"log/slog"
	"sync"

	"github.com/amirasaad/globalremit/pkg/domain/events"
	"github.com/amirasaad/globalremit/pkg/eventbus"
)

// MemoryEventBus dispatches events synchronously to in-process handlers and
// records everything it publishes.
type MemoryEventBus struct {
	handlers  map[events.EventType][]eventbus.HandlerFunc
	mu        sync.RWMutex
	logger    *slog.Logger
	published []events.Event
}

// NewWithMemory creates a new in-memory event bus.
func NewWithMemory(logger *slog.Logger) *MemoryEventBus {
	if logger == nil {
		logger = slog.Default()
	}
	return &MemoryEventBus{
		handlers: make(map[events.EventType][]eventbus.HandlerFunc),
		logger:   logger.With("bus", "memory"),
	}
}

// Register registers a handler for a specific event type.
func (b *MemoryEventBus) Register(eventType events.EventType, handler eventbus.HandlerFunc) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.handlers[eventType] = append(b.handlers[eventType], handler)
}

// Emit records the event and runs its handlers in registration order. Handler
// failures are logged and do not fail the publisher.
func (b *MemoryEventBus) Emit(ctx context.Context, e events.Event) error {
	eventType := events.EventType(e.Type())

	b.mu.Lock()
	b.published = append(b.published, e)
	handlers := append([]eventbus.HandlerFunc(nil), b.handlers[eventType]...)
	b.mu.Unlock()

	for _, handler := range handlers {
		b.dispatch(ctx, eventType, e, handler)
	}
	return nil
}

func (b *MemoryEventBus) dispatch(
	ctx context.Context,
	eventType events.EventType,
	e events.Event,
	handler eventbus.HandlerFunc,
) {
	defer func() {
		if r := recover(); r != nil {
			b.logger.Error("panic recovered in event handler", "event_type", eventType, "panic", r)
		}
	}()
	if err := handler(ctx, e); err != nil {
		b.logger.Error("failed to process event", "event_type", eventType, "error", err)
	}
}

// Published returns a copy of the events emitted so far.
func (b *MemoryEventBus) Published() []events.Event {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return append([]events.Event(nil), b.published...)
}

// ClearPublished forgets previously emitted events.
func (b *MemoryEventBus) ClearPublished() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.published = nil
}

var _ eventbus.Bus = (*MemoryEventBus)(nil)
