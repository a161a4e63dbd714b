package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/osse101/LootTally_Go/internal/actor"
	"github.com/osse101/LootTally_Go/internal/catalog"
	"github.com/osse101/LootTally_Go/internal/classify"
	"github.com/osse101/LootTally_Go/internal/config"
	"github.com/osse101/LootTally_Go/internal/dedupe"
	"github.com/osse101/LootTally_Go/internal/domain"
	"github.com/osse101/LootTally_Go/internal/event"
	"github.com/osse101/LootTally_Go/internal/handler"
	"github.com/osse101/LootTally_Go/internal/metrics"
	"github.com/osse101/LootTally_Go/internal/roll"
	"github.com/osse101/LootTally_Go/internal/server"
	"github.com/osse101/LootTally_Go/internal/tracker"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("Configuration failed", "error", err)
		os.Exit(1)
	}

	if err := config.ValidateEnv(); err != nil {
		slog.Error("Environment validation failed", "error", err)
		os.Exit(1)
	}

	initLogger(cfg)

	lookup, err := catalog.NewFileCatalog(cfg.CatalogPath, cfg.EventCatalogPath)
	if err != nil {
		slog.Error("Failed to load item catalog", "error", err, "path", cfg.CatalogPath)
		os.Exit(1)
	}
	resolver := catalog.NewResolver(lookup, cfg.ResolveCacheSize, time.Duration(cfg.ResolveCacheTTL)*time.Second)

	actorState := actor.NewState()

	bus := event.NewMemoryBus()
	publisher := event.NewResilientPublisher(bus, event.ResilientConfig{
		DeadLetterPath: cfg.EventDeadLetterPath,
	})

	collector := metrics.NewEventMetricsCollector()
	if err := collector.Register(bus); err != nil {
		slog.Error("Failed to register event metrics collector", "error", err)
		os.Exit(1)
	}

	logEvent := func(ctx context.Context, evt event.Event) error {
		slog.Debug("Event published", "type", evt.Type, "version", evt.Version)
		return nil
	}
	bus.Subscribe(domain.EventTypeLootObtained, logEvent)
	bus.Subscribe(domain.EventTypeRollsUpdated, logEvent)

	trackerService := tracker.NewService(
		classify.NewClassifier(resolver, actorState),
		dedupe.NewWindow(
			time.Duration(cfg.DedupeWindowMS)*time.Millisecond,
			time.Duration(cfg.DedupeHorizonMS)*time.Millisecond,
		),
		roll.NewTracker(),
		publisher,
		cfg.MaxRecentEvents,
	)

	handler.InitValidator()

	srv := server.NewServer(cfg.Port, cfg.APIKey, nil, trackerService, resolver, actorState)

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Start()
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		if err != nil {
			slog.Error("Server failed", "error", err)
			os.Exit(1)
		}
	case sig := <-stop:
		slog.Info("Shutting down", "signal", sig.String())
	}

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Stop(ctx); err != nil {
		slog.Error("Graceful shutdown failed", "error", err)
		os.Exit(1)
	}
	slog.Info("Shutdown complete")
}
