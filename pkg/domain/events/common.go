// Package events defines the domain events published on the event bus.
package events

import (
	"time"

	"github.com/google/uuid"
)

// Event is implemented by every domain event.
type Event interface {
	Type() string
}

// Meta carries the envelope fields shared by all events.
type Meta struct {
	ID            uuid.UUID `json:"id"`
	CorrelationID uuid.UUID `json:"correlationId"`
	OccurredAt    time.Time `json:"occurredAt"`
}

func newMeta() Meta {
	return Meta{
		ID:         uuid.New(),
		OccurredAt: time.Now().UTC(),
	}
}

// Option mutates the shared metadata of an event under construction.
type Option func(*Meta)

// WithCorrelationID ties an event to the request or wizard session that
// produced it.
func WithCorrelationID(id uuid.UUID) Option {
	return func(m *Meta) { m.CorrelationID = id }
}

// WithOccurredAt overrides the event timestamp.
func WithOccurredAt(t time.Time) Option {
	return func(m *Meta) { m.OccurredAt = t.UTC() }
}

func buildMeta(opts []Option) Meta {
	m := newMeta()
	for _, opt := range opts {
		opt(&m)
	}
	return m
}
