package bootstrap

import (
	"context"
	"log/slog"

	"github.com/osse101/CookieClicker_Go/internal/server"
	"github.com/osse101/CookieClicker_Go/internal/session"
)

// ShutdownComponents holds all components that need graceful shutdown.
type ShutdownComponents struct {
	Server    *server.Server
	Session   *session.Session
	Events    *EventSystem
	Store     *Store
	Telemetry func(context.Context) error
}

// GracefulShutdown stops the application in dependency order:
// 1. HTTP server (stop accepting new requests)
// 2. Session (stop ticking and flush the save)
// 3. Event tracker (drain queued events), then the stream hub
// 4. Storage and telemetry
//
// Errors during shutdown are logged but do not stop the shutdown sequence.
func GracefulShutdown(ctx context.Context, components ShutdownComponents) {
	slog.Info(LogMsgShuttingDownServer)

	if components.Server != nil {
		if err := components.Server.Stop(ctx); err != nil {
			slog.Error(LogMsgServerForcedShutdown, "error", err)
		}
	}

	if components.Session != nil {
		if err := components.Session.Close(ctx); err != nil {
			slog.Error(LogMsgSessionCloseFailed, "error", err)
		}
	}

	if components.Events != nil {
		slog.Info(LogMsgShuttingDownEventTracker)
		components.Events.BusTracker.Close()
		components.Events.Hub.Stop()
	}

	if components.Store != nil {
		components.Store.Close()
	}

	if components.Telemetry != nil {
		if err := components.Telemetry(ctx); err != nil {
			slog.Error(LogMsgTelemetryShutdownFailed, "error", err)
		}
	}

	slog.Info(LogMsgServerStopped)
}
