package bootstrap

import (
	"context"
	"log/slog"

	"github.com/osse101/Scavenger_Go/internal/server"
)

// ShutdownComponents holds all components that need graceful shutdown.
type ShutdownComponents struct {
	Server *server.Server
	Store  *Store
}

// GracefulShutdown stops the HTTP server first so no new encounters start,
// then closes storage once in-flight requests have drained.
//
// Errors during shutdown are logged but do not stop the shutdown sequence.
func GracefulShutdown(ctx context.Context, components ShutdownComponents) {
	slog.Info(LogMsgShuttingDownServer)

	if components.Server != nil {
		if err := components.Server.Stop(ctx); err != nil {
			slog.Error(LogMsgServerForcedShutdown, "error", err)
		}
	}

	if components.Store != nil {
		slog.Info(LogMsgClosingStorage)
		components.Store.Close()
	}

	slog.Info(LogMsgServerStopped)
}
