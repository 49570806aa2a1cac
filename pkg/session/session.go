// Package session defines how wizard sessions are persisted between HTTP
// requests.
package session

import (
	"context"
	"errors"
	"time"

	"github.com/amirasaad/globalremit/pkg/workflow"
	"github.com/google/uuid"
)

// ErrSessionNotFound is returned for unknown or expired session ids.
var ErrSessionNotFound = errors.New("wizard session not found")

// Record is a stored wizard session.
type Record struct {
	ID        uuid.UUID      `json:"id"`
	UserID    *int64         `json:"userId,omitempty"`
	State     workflow.State `json:"state"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
}

// Store persists wizard sessions. Implementations expire records after
// their configured time to live.
type Store interface {
	Get(ctx context.Context, id uuid.UUID) (*Record, error)
	Save(ctx context.Context, rec *Record) error
	Delete(ctx context.Context, id uuid.UUID) error
}
