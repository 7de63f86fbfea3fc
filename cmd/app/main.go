package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/osse101/Scavenger_Go/internal/bootstrap"
	"github.com/osse101/Scavenger_Go/internal/codec"
	"github.com/osse101/Scavenger_Go/internal/config"
	"github.com/osse101/Scavenger_Go/internal/encounter"
	"github.com/osse101/Scavenger_Go/internal/fleet"
	"github.com/osse101/Scavenger_Go/internal/random"
	"github.com/osse101/Scavenger_Go/internal/server"
	"github.com/osse101/Scavenger_Go/internal/validation"
)

// @title Scavenger API
// @version 1.0
// @description Scavenger fleet, artifact evaluation and encounter log replay.
// @BasePath /api/v1
func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("Configuration failed", "error", err)
		os.Exit(1)
	}

	logFile, err := bootstrap.SetupLogger(cfg)
	if err != nil {
		slog.Error("Failed to set up logging", "error", err)
		os.Exit(1)
	}
	if logFile != nil {
		defer logFile.Close()
	}

	warnings, err := config.ValidateEnvWithWarnings()
	if err != nil {
		slog.Error("Environment validation failed", "error", err)
		os.Exit(1)
	}
	for _, w := range warnings {
		slog.Warn(w)
	}

	if err := run(cfg); err != nil {
		slog.Error("Server exited", "error", err)
		if logFile != nil {
			_ = logFile.Close()
		}
		os.Exit(1)
	}
}

func run(cfg *config.Config) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store, err := bootstrap.OpenStore(ctx, cfg)
	if err != nil {
		return err
	}

	rng, err := random.NewFromSeed(cfg.RNGSeed)
	if err != nil {
		store.Close()
		return err
	}
	if cfg.RNGSeed != 0 {
		slog.Info(bootstrap.LogMsgFixedSeed, "seed", cfg.RNGSeed)
	}

	fleetService := fleet.NewService(
		store.Fleet,
		encounter.NewEngine(rng),
		validation.NewSchemaValidator(),
		cfg.CacheSize,
		cfg.CacheTTL,
	)

	if cfg.RosterPath != "" {
		added, err := fleetService.LoadRoster(ctx, cfg.RosterPath)
		if err != nil {
			store.Close()
			return err
		}
		slog.Info(bootstrap.LogMsgRosterLoaded, "path", cfg.RosterPath, "added", added)
	}

	srv := server.NewServer(cfg.Port, cfg.TrustedProxies, store.Pool, fleetService, codec.NewReplayer(rng))

	serveErr := make(chan error, 1)
	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case <-ctx.Done():
	case err := <-serveErr:
		if err != nil {
			store.Close()
			return err
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), bootstrap.ShutdownTimeout)
	defer cancel()
	bootstrap.GracefulShutdown(shutdownCtx, bootstrap.ShutdownComponents{
		Server: srv,
		Store:  store,
	})
	return nil
}
