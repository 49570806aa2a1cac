// Package initializer builds the application's infrastructure from
// configuration.
package initializer

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/amirasaad/globalremit/infra"
	"github.com/amirasaad/globalremit/infra/cache"
	infra_eventbus "github.com/amirasaad/globalremit/infra/eventbus"
	infra_repository "github.com/amirasaad/globalremit/infra/repository"
	"github.com/amirasaad/globalremit/infra/repository/memory"
	"github.com/amirasaad/globalremit/pkg/app"
	"github.com/amirasaad/globalremit/pkg/config"
	"github.com/amirasaad/globalremit/pkg/currency"
	"github.com/amirasaad/globalremit/pkg/eventbus"
	"github.com/amirasaad/globalremit/pkg/exchange"
	"github.com/amirasaad/globalremit/pkg/repository"
	"github.com/amirasaad/globalremit/pkg/session"
	"github.com/redis/go-redis/v9"
)

// InitializeDependencies builds the logger, repositories, session store and
// event bus described by cfg.
func InitializeDependencies(cfg *config.App) (*app.Deps, error) {
	logger := setupLogger(cfg.Log)

	uow, err := initUnitOfWork(cfg, logger)
	if err != nil {
		return nil, err
	}

	deps := &app.Deps{
		Uow:        uow,
		RateTable:  exchange.DefaultTable(),
		Currencies: currency.Default(),
		Sessions:   initSessionStore(cfg, logger),
		EventBus:   initEventBus(cfg, logger),
		Logger:     logger,
	}
	return deps, nil
}

func initUnitOfWork(cfg *config.App, logger *slog.Logger) (repository.UnitOfWork, error) {
	if cfg.DB == nil || cfg.DB.Driver == "" || cfg.DB.Driver == config.DriverMemory {
		logger.Info("Using in-memory repository")
		return memory.NewUoW(memory.NewStore()), nil
	}
	db, err := infra.NewDBConnection(cfg.DB, cfg.Env)
	if err != nil {
		logger.Error("Failed to initialize database", "driver", cfg.DB.Driver, "error", err)
		return nil, fmt.Errorf("initialize database: %w", err)
	}
	logger.Info("Database connected", "driver", cfg.DB.Driver)
	return infra_repository.NewUoW(db), nil
}

// initSessionStore prefers Redis and falls back to memory when Redis is not
// configured or unreachable.
func initSessionStore(cfg *config.App, logger *slog.Logger) session.Store {
	ttl := 24 * time.Hour
	if cfg.Workflow != nil && cfg.Workflow.SessionTTL > 0 {
		ttl = cfg.Workflow.SessionTTL
	}
	if cfg.Redis == nil || cfg.Redis.URL == "" {
		logger.Info("Using in-memory wizard session store", "ttl", ttl)
		return cache.NewMemorySessionStore(ttl)
	}

	opt, err := redisOptions(cfg.Redis)
	if err != nil {
		logger.Warn("Invalid Redis URL, using in-memory session store", "error", err)
		return cache.NewMemorySessionStore(ttl)
	}
	ctx, cancel := context.WithTimeout(context.Background(), cfg.Redis.DialTimeout+time.Second)
	defer cancel()
	store, err := cache.NewRedisSessionStore(ctx, opt, cfg.Redis.KeyPrefix, ttl, logger)
	if err != nil {
		logger.Warn("Redis unavailable, using in-memory session store", "error", err)
		return cache.NewMemorySessionStore(ttl)
	}
	logger.Info("Using Redis wizard session store", "addr", opt.Addr, "ttl", ttl)
	return store
}

func redisOptions(cfg *config.Redis) (*redis.Options, error) {
	opt, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, err
	}
	if cfg.PoolSize > 0 {
		opt.PoolSize = cfg.PoolSize
	}
	if cfg.DialTimeout > 0 {
		opt.DialTimeout = cfg.DialTimeout
	}
	if cfg.ReadTimeout > 0 {
		opt.ReadTimeout = cfg.ReadTimeout
	}
	if cfg.WriteTimeout > 0 {
		opt.WriteTimeout = cfg.WriteTimeout
	}
	return opt, nil
}

// initEventBus prefers Kafka and falls back to the memory bus when Kafka is
// not configured or unreachable.
func initEventBus(cfg *config.App, logger *slog.Logger) eventbus.Bus {
	if cfg.Kafka == nil || cfg.Kafka.Brokers == "" {
		return infra_eventbus.NewWithMemory(logger)
	}
	bus, err := infra_eventbus.NewWithKafka(cfg.Kafka, logger)
	if err != nil {
		logger.Warn("Kafka unavailable, using in-memory event bus", "error", err)
		return infra_eventbus.NewWithMemory(logger)
	}
	return bus
}
