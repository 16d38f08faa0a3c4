package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"go.opentelemetry.io/otel"

	"github.com/osse101/CookieClicker_Go/internal/bootstrap"
	"github.com/osse101/CookieClicker_Go/internal/catalog"
	"github.com/osse101/CookieClicker_Go/internal/config"
	"github.com/osse101/CookieClicker_Go/internal/identity"
	"github.com/osse101/CookieClicker_Go/internal/progression"
	"github.com/osse101/CookieClicker_Go/internal/server"
	"github.com/osse101/CookieClicker_Go/internal/session"
	"github.com/osse101/CookieClicker_Go/internal/telemetry"
)

func main() {
	if err := run(); err != nil {
		slog.Error("Fatal error", "error", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	logFile, err := bootstrap.SetupLogger(cfg)
	if err != nil {
		return err
	}
	if logFile != nil {
		defer logFile.Close()
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdownTelemetry, err := telemetry.Setup(ctx, telemetry.Config{
		Enabled:     cfg.OTELEnabled,
		Endpoint:    cfg.OTELEndpoint,
		ServiceName: cfg.ServiceName,
		Version:     cfg.Version,
	})
	if err != nil {
		return fmt.Errorf("failed to set up tracing: %w", err)
	}

	producers, err := catalog.LoadOrDefault(cfg.CatalogPath)
	if err != nil {
		return fmt.Errorf("failed to load producer catalog: %w", err)
	}

	pricing, err := progression.PricingFor(cfg.PricingPolicy)
	if err != nil {
		return err
	}

	store, err := bootstrap.OpenStore(ctx, cfg)
	if err != nil {
		return err
	}

	var players identity.Provider = identity.NewStatic(cfg.PlayerID, cfg.PlayerName)
	user := players.Current()

	events := bootstrap.InitializeEventSystem(user.ID)

	game, err := session.New(session.Config{
		Catalog:           producers,
		User:              user,
		Store:             store,
		Tracker:           events.Tracker,
		Bus:               events.Bus,
		Pricing:           pricing,
		MilestoneInterval: cfg.MilestoneInterval,
		TickInterval:      cfg.TickInterval,
		SaveMode:          cfg.SaveMode,
		SaveInterval:      cfg.SaveInterval,
		TracerProvider:    otel.GetTracerProvider(),
	})
	if err != nil {
		bootstrap.GracefulShutdown(context.Background(), bootstrap.ShutdownComponents{
			Events:    events,
			Store:     store,
			Telemetry: shutdownTelemetry,
		})
		return fmt.Errorf("failed to create session: %w", err)
	}

	srv := server.NewServer(server.Options{
		Port:           cfg.Port,
		APIKey:         cfg.APIKey,
		TrustedProxies: cfg.TrustedProxies,
		Version:        cfg.Version,
	}, game, store, events.Hub)

	serverErr := make(chan error, 1)
	go func() {
		slog.Info("Starting server", "port", cfg.Port)
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	// Readiness flips once the saved game is applied; the server answers
	// meanwhile with 503 on game routes.
	go func() {
		result, err := game.Start(ctx)
		if err != nil {
			slog.Error("Failed to start session", "error", err)
			return
		}
		if result.Err != nil {
			slog.Warn("Saved game unavailable, starting fresh", "error", result.Err)
		}
	}()

	var runErr error
	select {
	case <-ctx.Done():
	case runErr = <-serverErr:
		slog.Error("Server failed", "error", runErr)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	bootstrap.GracefulShutdown(shutdownCtx, bootstrap.ShutdownComponents{
		Server:    srv,
		Session:   game,
		Events:    events,
		Store:     store,
		Telemetry: shutdownTelemetry,
	})

	return runErr
}
