package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	httpadapter "drivead/internal/adapter/http"
	"drivead/internal/adapter/postgres"
	"drivead/internal/adapter/rabbitmq"
	"drivead/internal/adapter/usecase"
	"drivead/internal/config"
	"drivead/internal/db"
	"drivead/internal/jobs"
)

// main is the entry point of the drivead service. It loads configuration,
// optionally runs database migrations, wires the repositories, use cases,
// queue workers and cron scheduler, then starts the HTTP server. On
// receiving a termination signal it gracefully shuts everything down.
func main() {
	exitCode := 1
	defer func() {
		if r := recover(); r != nil {
			panic(r)
		} else {
			os.Exit(exitCode)
		}
	}()

	// Load configuration from environment variables.
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", slog.Any("error", err))
		os.Exit(1)
	}

	var logger *slog.Logger
	{
		// Initialise structured logger based on configuration.
		var handler slog.Handler
		level := cfg.Log.SlogLevel()
		switch cfg.Log.SlogFormat() {
		case "json":
			handler = slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level})
		default:
			handler = slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: level})
		}
		logger = slog.New(handler)
	}

	// Optionally run migrations if configured. We use the Psql sub-config.
	if cfg.Psql.RunMigrations {
		if err = db.Migrate(cfg.Psql.Addr.String()); err != nil {
			logger.Error("migration error", slog.Any("error", err))
		} else {
			logger.Info("migrations applied successfully")
		}
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	pool, err := db.NewPostgresPool(ctx, cfg.Psql)
	if err != nil {
		logger.Error("database connection error", slog.Any("error", err))
		os.Exit(1)
	}
	defer pool.Close()

	if cfg.Env == "dev" {
		if err = db.Seed(ctx, pool); err != nil {
			logger.Warn("seed error", slog.Any("error", err))
		}
	}

	broker, err := rabbitmq.Connect(cfg.Amqp, logger)
	if err != nil {
		logger.Error("rabbitmq connection error", slog.Any("error", err))
		os.Exit(1)
	}
	defer broker.Close()
	notifier := rabbitmq.NewEventPublisher(broker)

	drivers := postgres.NewDriverRepository(pool)
	campaigns := postgres.NewCampaignRepository(pool)
	assignments := postgres.NewAssignmentRepository(pool)
	positions := postgres.NewPositionRepository(pool)
	metrics := postgres.NewMetricRepository(pool)
	proofs := postgres.NewProofRepository(pool)
	alerts := postgres.NewFraudAlertRepository(pool)

	telemetrySvc := usecase.NewTelemetryUseCase(drivers, assignments, positions, alerts, notifier, logger)
	assignmentSvc := usecase.NewAssignmentUseCase(drivers, campaigns, assignments, proofs, logger)
	adminSvc := usecase.NewAdminUseCase(campaigns, assignments, proofs, alerts, notifier, logger)
	webhookSvc := usecase.NewPaymentWebhookUseCase(campaigns, logger)
	jobsSvc := usecase.NewJobsUseCase(campaigns, assignments, positions, metrics, alerts, broker, notifier, logger)

	workers := jobs.NewWorkers(broker, jobsSvc, logger)
	if err = workers.Start(ctx); err != nil {
		logger.Error("worker startup error", slog.Any("error", err))
		os.Exit(1)
	}

	scheduler, err := jobs.NewScheduler(cfg.Jobs, jobsSvc, logger)
	if err != nil {
		logger.Error("scheduler startup error", slog.Any("error", err))
		os.Exit(1)
	}
	scheduler.Start()
	defer scheduler.Stop()

	auth := httpadapter.NewAuthMiddleware(cfg.Auth.AccessSecret)
	handler := httpadapter.NewHandler(telemetrySvc, assignmentSvc, adminSvc, webhookSvc, auth, logger)
	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.HTTP.Port),
		Handler: handler.Router(),
	}

	go func() {
		logger.Info("server listening", slog.Int("port", int(cfg.HTTP.Port)))
		if err = srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", slog.Any("error", err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	value := <-quit
	exitCode = 128 + int(value.(syscall.Signal))

	// The signal already cancelled ctx; the drain window needs its own
	// parent or Shutdown returns immediately.
	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancelShutdown()
	if err = srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown error", slog.Any("error", err))
	} else {
		logger.Info("server gracefully stopped")
	}
}
