package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/amirasaad/globalremit/pkg/session"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// RedisSessionStore implements session.Store on Redis. Records are JSON
// documents stored under prefix+id with the store's TTL.
type RedisSessionStore struct {
	client *redis.Client
	prefix string
	ttl    time.Duration
	logger *slog.Logger
}

// NewRedisSessionStore connects to the Redis server described by opt and
// pings it.
func NewRedisSessionStore(
	ctx context.Context,
	opt *redis.Options,
	prefix string,
	ttl time.Duration,
	logger *slog.Logger,
) (*RedisSessionStore, error) {
	if logger == nil {
		logger = slog.Default()
	}
	client := redis.NewClient(opt)
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis session store: ping: %w", err)
	}
	return &RedisSessionStore{client: client, prefix: prefix, ttl: ttl, logger: logger}, nil
}

func (r *RedisSessionStore) key(id uuid.UUID) string {
	return r.prefix + id.String()
}

func (r *RedisSessionStore) Get(ctx context.Context, id uuid.UUID) (*session.Record, error) {
	val, err := r.client.Get(ctx, r.key(id)).Bytes()
	if errors.Is(err, redis.Nil) {
		r.logger.Debug("Redis session miss", "session_id", id)
		return nil, session.ErrSessionNotFound
	}
	if err != nil {
		r.logger.Error("Redis session get error", "session_id", id, "error", err)
		return nil, err
	}
	var rec session.Record
	if err := json.Unmarshal(val, &rec); err != nil {
		r.logger.Error("Redis session unmarshal error", "session_id", id, "error", err)
		return nil, err
	}
	return &rec, nil
}

func (r *RedisSessionStore) Save(ctx context.Context, rec *session.Record) error {
	data, err := json.Marshal(rec)
	if err != nil {
		return err
	}
	if err := r.client.Set(ctx, r.key(rec.ID), data, r.ttl).Err(); err != nil {
		r.logger.Error("Redis session set error", "session_id", rec.ID, "error", err)
		return err
	}
	r.logger.Debug("Redis session saved", "session_id", rec.ID, "step", rec.State.Step, "ttl", r.ttl)
	return nil
}

func (r *RedisSessionStore) Delete(ctx context.Context, id uuid.UUID) error {
	if err := r.client.Del(ctx, r.key(id)).Err(); err != nil {
		r.logger.Error("Redis session delete error", "session_id", id, "error", err)
		return err
	}
	return nil
}

// Close closes the Redis client.
func (r *RedisSessionStore) Close() error {
	return r.client.Close()
}

var _ session.Store = (*RedisSessionStore)(nil)
