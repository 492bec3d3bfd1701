package main

import (
	"context"
	"encoding/json"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ThreeDotsLabs/watermill/message"

	"github.com/ghuser/shipstream/pkg/app"
	"github.com/ghuser/shipstream/pkg/cache"
	"github.com/ghuser/shipstream/pkg/config"
	"github.com/ghuser/shipstream/pkg/database"
	"github.com/ghuser/shipstream/pkg/events"
	"github.com/ghuser/shipstream/pkg/logger"
	"github.com/ghuser/shipstream/pkg/telemetry"
	shipmentEvents "github.com/ghuser/shipstream/services/shipment/domain/events"
	shipmentPostgres "github.com/ghuser/shipstream/services/shipment/infrastructure/persistence/postgres"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	if err := config.ValidateForProduction(cfg); err != nil {
		slog.Error("production config validation failed", "error", err)
		os.Exit(1)
	}

	log := logger.New(cfg)

	ctx := context.Background()

	otelShutdown, _, err := telemetry.Setup(ctx, cfg)
	if err != nil {
		log.Error("failed to setup otel", "error", err)
		os.Exit(1)
	}
	defer otelShutdown(ctx) //nolint:errcheck

	if err := telemetry.SetupSentry(cfg); err != nil {
		log.Warn("failed to setup sentry, continuing without crash reporting", "error", err)
	}
	defer telemetry.SentryFlush()

	pool, err := database.NewPool(ctx, cfg.DatabaseURL, log)
	if err != nil {
		log.Error("failed to connect to database", "error", err)
		os.Exit(1) //nolint:gocritic
	}
	defer pool.Close()
	log.Info("database pool connected")

	eventBus, err := events.NewEventBus(cfg, log)
	if err != nil {
		log.Error("failed to setup event bus", "error", err)
		os.Exit(1) //nolint:gocritic
	}
	defer eventBus.Close() //nolint:errcheck

	redisClient, err := cache.NewRedisClient(cfg)
	if err != nil {
		log.Error("failed to connect to redis", "error", err)
		os.Exit(1) //nolint:gocritic
	}
	defer redisClient.Close() //nolint:errcheck
	log.Info("redis connected")

	appConfig := &app.Application{
		Db:       pool,
		Logger:   log,
		EventBus: eventBus,
		Redis:    redisClient,
	}

	if err := registerSubscribers(ctx, appConfig); err != nil {
		log.Error("failed to register subscribers", "error", err)
		os.Exit(1) //nolint:gocritic
	}

	outboxCtx, cancelOutbox := context.WithCancel(ctx)
	go runOutboxRelay(outboxCtx, appConfig)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down worker...")
	cancelOutbox()

	// EventBus.Close() (via defer) waits up to 30s for in-flight handlers.
	log.Info("worker stopped")
}

// registerSubscribers wires all domain event handlers.
// Add new topics here as more services publish events.
func registerSubscribers(ctx context.Context, a *app.Application) error {
	topics := map[string]func(context.Context, *message.Message) error{
		shipmentEvents.TopicShipmentCreated:       handleShipmentCreated(a),
		shipmentEvents.TopicShipmentStatusChanged: handleShipmentStatusChanged(a),
	}

	names := make([]string, 0, len(topics))
	for topic, handler := range topics {
		errCh, err := a.EventBus.Subscribe(ctx, topic, handler)
		if err != nil {
			return err
		}
		names = append(names, topic)

		// Drain subscriber errors in background so the channel never blocks.
		topic := topic
		go func() {
			for err := range errCh {
				a.Logger.ErrorContext(ctx, "subscriber error",
					"topic", topic,
					"error", err,
				)
			}
		}()
	}

	a.Logger.Info("event subscribers registered", "topics", names)
	return nil
}

// handleShipmentCreated returns a handler for shipment.created events.
// Handlers must be idempotent: EventBus retries up to 3x on failure.
// Warms the Redis read-model cache so subsequent GetByID calls are served from cache.
func handleShipmentCreated(a *app.Application) func(context.Context, *message.Message) error {
	repo := shipmentPostgres.NewShipmentRepository(a.Db, nil)
	shipmentCache := cache.NewShipmentCache(a.Redis)
	return func(ctx context.Context, msg *message.Message) error {
		var evt shipmentEvents.ShipmentCreatedEvent
		if err := json.Unmarshal(msg.Payload, &evt); err != nil {
			return err
		}

		// The event carries only identifiers; load the full aggregate.
		shipment, err := repo.GetByID(ctx, evt.UserID, evt.ShipmentID)
		if err != nil {
			// Shipment may already be deleted; that is not a handler failure.
			a.Logger.WarnContext(ctx, "shipment gone before cache warm",
				"shipment_id", evt.ShipmentID, "error", err)
			return nil
		}

		if err := shipmentCache.Set(ctx, shipment); err != nil {
			// Cache warming is best-effort; log but do not fail the handler.
			a.Logger.WarnContext(ctx, "cache warm failed for shipment.created",
				"shipment_id", evt.ShipmentID, "error", err)
		} else {
			a.Logger.InfoContext(ctx, "cache warmed",
				"shipment_id", evt.ShipmentID, "user_id", evt.UserID)
		}

		return nil
	}
}

// handleShipmentStatusChanged returns a handler for shipment.status_changed
// events. It logs the milestone and refreshes the cached read model so stale
// statuses never outlive the transition.
func handleShipmentStatusChanged(a *app.Application) func(context.Context, *message.Message) error {
	repo := shipmentPostgres.NewShipmentRepository(a.Db, nil)
	shipmentCache := cache.NewShipmentCache(a.Redis)
	return func(ctx context.Context, msg *message.Message) error {
		var evt shipmentEvents.ShipmentStatusChangedEvent
		if err := json.Unmarshal(msg.Payload, &evt); err != nil {
			return err
		}

		a.Logger.InfoContext(ctx, "shipment status changed",
			"shipment_id", evt.ShipmentID,
			"tracking_number", evt.TrackingNumber,
			"from", evt.From,
			"to", evt.To,
		)

		shipment, err := repo.GetByID(ctx, evt.UserID, evt.ShipmentID)
		if err != nil {
			_ = shipmentCache.Delete(ctx, evt.UserID, evt.ShipmentID)
			return nil
		}
		if err := shipmentCache.Set(ctx, shipment); err != nil {
			a.Logger.WarnContext(ctx, "cache refresh failed for shipment.status_changed",
				"shipment_id", evt.ShipmentID, "error", err)
		}
		return nil
	}
}

// runOutboxRelay polls the outbox for unpublished events and forwards them to
// the EventBus. Runs until ctx is cancelled.
// The Watermill Forwarder (started in cmd/api/main.go) handles at-least-once
// delivery; this relay is a secondary safety net for future outbox tables.
func runOutboxRelay(ctx context.Context, a *app.Application) {
	ticker := time.NewTicker(time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			a.Logger.Info("outbox relay shutting down")
			return
		case <-ticker.C:
			// TODO: query outbox table, publish unpublished events, mark as published
		}
	}
}
