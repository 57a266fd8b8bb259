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
	"go.temporal.io/sdk/worker"

	"github.com/ghuser/gamestore/pkg/app"
	"github.com/ghuser/gamestore/pkg/cache"
	"github.com/ghuser/gamestore/pkg/config"
	"github.com/ghuser/gamestore/pkg/database"
	"github.com/ghuser/gamestore/pkg/events"
	"github.com/ghuser/gamestore/pkg/logger"
	"github.com/ghuser/gamestore/pkg/telemetry"
	"github.com/ghuser/gamestore/pkg/workflows"
	catalogEvents "github.com/ghuser/gamestore/services/catalog/domain/events"
	purchaseEvents "github.com/ghuser/gamestore/services/purchase/domain/events"
	purchaseWorkflows "github.com/ghuser/gamestore/services/purchase/workflows"
	userEvents "github.com/ghuser/gamestore/services/user/domain/events"
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

	temporalClient, err := workflows.NewTemporalClient(ctx, cfg.TemporalHostPort, cfg.TemporalNamespace, log)
	if err != nil {
		log.Error("failed to initialize temporal client", "error", err)
		os.Exit(1) //nolint:gocritic
	}
	defer temporalClient.Close()

	appConfig := &app.Application{
		Db:             pool,
		Logger:         log,
		EventBus:       eventBus,
		Redis:          redisClient,
		TemporalClient: temporalClient,
	}

	if err := registerSubscribers(ctx, appConfig); err != nil {
		log.Error("failed to register subscribers", "error", err)
		os.Exit(1) //nolint:gocritic
	}

	receiptWorker := worker.New(temporalClient.Client, purchaseWorkflows.TaskQueue, worker.Options{})
	receiptWorker.RegisterWorkflow(purchaseWorkflows.PurchaseReceipt)
	receiptWorker.RegisterActivity(&purchaseWorkflows.ReceiptActivities{Log: log})
	if err := receiptWorker.Start(); err != nil {
		log.Error("failed to start temporal worker", "error", err)
		os.Exit(1) //nolint:gocritic
	}
	defer receiptWorker.Stop()
	log.Info("temporal worker started", "task_queue", purchaseWorkflows.TaskQueue)

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
		catalogEvents.TopicGameCreated:        handleGameCreated(a),
		userEvents.TopicUserRegistered:        handleUserRegistered(a),
		purchaseEvents.TopicPurchaseCompleted: handlePurchaseCompleted(a),
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
				a.Logger.ErrorContext(ctx, "subscriber error", "topic", topic, "error", err)
			}
		}()
	}

	a.Logger.Info("event subscribers registered", "topics", names)
	return nil
}

// handleGameCreated returns a handler for catalog.game.created events.
// Handlers must be idempotent — EventBus retries up to 3× on failure.
// Warms the Redis read-model cache so subsequent GetByID calls are served from cache.
func handleGameCreated(a *app.Application) func(context.Context, *message.Message) error {
	gameCache := cache.NewGameCache(a.Redis)
	return func(ctx context.Context, msg *message.Message) error {
		var evt catalogEvents.GameCreatedEvent
		if err := json.Unmarshal(msg.Payload, &evt); err != nil {
			return err
		}

		if err := gameCache.Set(ctx, &cache.CachedGame{
			ID:          evt.GameID,
			Title:       evt.Title,
			Description: evt.Description,
			Genre:       evt.Genre,
			Price:       evt.Price,
			CreatedAt:   evt.OccurredAt,
		}); err != nil {
			// Cache warming is best-effort; log but do not fail the handler.
			a.Logger.WarnContext(ctx, "cache warm failed for game.created",
				"game_id", evt.GameID, "error", err)
		} else {
			a.Logger.InfoContext(ctx, "cache warmed", "game_id", evt.GameID)
		}

		return nil
	}
}

// handleUserRegistered records new registrations for audit.
func handleUserRegistered(a *app.Application) func(context.Context, *message.Message) error {
	return func(ctx context.Context, msg *message.Message) error {
		var evt userEvents.UserRegisteredEvent
		if err := json.Unmarshal(msg.Payload, &evt); err != nil {
			return err
		}
		a.Logger.InfoContext(ctx, "user registered",
			"user_id", evt.UserID, "role", evt.Role, "occurred_at", evt.OccurredAt)
		return nil
	}
}

// handlePurchaseCompleted records completed purchases for audit.
func handlePurchaseCompleted(a *app.Application) func(context.Context, *message.Message) error {
	return func(ctx context.Context, msg *message.Message) error {
		var evt purchaseEvents.PurchaseCompletedEvent
		if err := json.Unmarshal(msg.Payload, &evt); err != nil {
			return err
		}
		a.Logger.InfoContext(ctx, "purchase completed",
			"user_id", evt.UserID, "games", len(evt.GameIDs), "total", evt.Total)
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
