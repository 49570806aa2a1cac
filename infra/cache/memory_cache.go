package cache

import (
	"context"
	"sync"
	"time"

	"github.com/amirasaad/globalremit/pkg/session"
	"github.com/google/uuid"
)

// MemorySessionStore implements session.Store in process memory.
type MemorySessionStore struct {
	entries map[uuid.UUID]*cacheEntry
	ttl     time.Duration
	now     func() time.Time
	mu      sync.RWMutex

	stop     chan struct{}
	stopOnce sync.Once
}

type cacheEntry struct {
	record    session.Record
	expiresAt time.Time
}

// NewMemorySessionStore creates a store whose records expire after ttl and
// starts the background cleanup goroutine. Call Close to stop it.
func NewMemorySessionStore(ttl time.Duration) *MemorySessionStore {
	s := &MemorySessionStore{
		entries: make(map[uuid.UUID]*cacheEntry),
		ttl:     ttl,
		now:     time.Now,
		stop:    make(chan struct{}),
	}
	go s.cleanup(5 * time.Minute)
	return s
}

// Get returns a copy of the stored record.
func (s *MemorySessionStore) Get(_ context.Context, id uuid.UUID) (*session.Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	entry, ok := s.entries[id]
	if !ok || s.now().After(entry.expiresAt) {
		return nil, session.ErrSessionNotFound
	}
	rec := entry.record
	return &rec, nil
}

// Save stores rec and refreshes its expiry.
func (s *MemorySessionStore) Save(_ context.Context, rec *session.Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries[rec.ID] = &cacheEntry{
		record:    *rec,
		expiresAt: s.now().Add(s.ttl),
	}
	return nil
}

// Delete removes a session. Unknown ids are ignored.
func (s *MemorySessionStore) Delete(_ context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.entries, id)
	return nil
}

// Len returns the number of stored, possibly expired, sessions.
func (s *MemorySessionStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}

// Close stops the cleanup goroutine.
func (s *MemorySessionStore) Close() error {
	s.stopOnce.Do(func() { close(s.stop) })
	return nil
}

func (s *MemorySessionStore) cleanup(every time.Duration) {
	ticker := time.NewTicker(every)
	defer ticker.Stop()

	for {
		select {
		case <-s.stop:
			return
		case <-ticker.C:
			s.evictExpired()
		}
	}
}

func (s *MemorySessionStore) evictExpired() {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := s.now()
	for id, entry := range s.entries {
		if now.After(entry.expiresAt) {
			delete(s.entries, id)
		}
	}
}

var _ session.Store = (*MemorySessionStore)(nil)
