// Package eventbus defines the contract for publishing domain events.
package eventbus

import (
	"context"

	"github.com/amirasaad/globalremit/pkg/domain/events"
)

// HandlerFunc handles one delivered event.
type HandlerFunc func(ctx context.Context, e events.Event) error

// Bus publishes events and dispatches them to registered handlers.
type Bus interface {
	Emit(ctx context.Context, e events.Event) error
	Register(eventType events.EventType, handler HandlerFunc)
}

// Closer is implemented by buses that hold network resources.
type Closer interface {
	Close() error
}
