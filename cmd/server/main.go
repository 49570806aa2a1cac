package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/amirasaad/globalremit/infra/initializer"
	"github.com/amirasaad/globalremit/pkg/app"
	"github.com/amirasaad/globalremit/pkg/config"
	"github.com/amirasaad/globalremit/webapi"
	log "github.com/charmbracelet/log"
)

const shutdownTimeout = 10 * time.Second

// @title GlobalRemit API
// @version 1.0.0
// @description Money transfer quotes, wizard sessions and receipts
// @license.name MIT
// @host localhost:5000
// @BasePath /
func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	cfg, err := config.Load(".env")
	if err != nil {
		return fmt.Errorf("failed to load application configuration: %w", err)
	}

	deps, err := initializer.InitializeDependencies(cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize dependencies: %w", err)
	}
	logger := deps.Logger
	defer func() {
		if err := deps.Close(); err != nil {
			logger.Warn("Failed to release dependencies", "error", err)
		}
	}()

	a := app.New(deps, cfg)
	seeded, err := a.ExchangeService.Seed(context.Background())
	if err != nil {
		return fmt.Errorf("failed to seed exchange rates: %w", err)
	}
	if seeded > 0 {
		logger.Info("Exchange rates seeded", "count", seeded)
	}

	fiberApp := webapi.SetupApp(a)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	errCh := make(chan error, 1)
	go func() {
		logger.Info("Starting server",
			"env", cfg.Env,
			"address", addr,
			"scheme", cfg.Server.Scheme,
		)
		errCh <- fiberApp.Listen(addr)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logger.Info("Shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := fiberApp.ShutdownWithContext(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	logger.Info("Server stopped")
	return nil
}
