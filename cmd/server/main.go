package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/clustereddata/fx-deal-warehouse/internal/config"
	"github.com/clustereddata/fx-deal-warehouse/internal/eventbus"
	"github.com/clustereddata/fx-deal-warehouse/internal/handler"
	"github.com/clustereddata/fx-deal-warehouse/internal/server"
	"github.com/clustereddata/fx-deal-warehouse/internal/service"
	"github.com/clustereddata/fx-deal-warehouse/internal/storage"
	"github.com/clustereddata/fx-deal-warehouse/pkg/logger"
)

func main() {
	cfg := config.Load()

	log := logger.New(cfg.Logging.Level)
	defer log.Sync()

	ctx := context.Background()
	log.Info(ctx, "Starting application")

	repo := storage.NewMemoryStore()
	log.Info(ctx, "Repository initialized")

	eventBusCfg := &eventbus.Config{
		ChannelBuffer: cfg.EventBus.ChannelBufferSize,
		MaxRetries:    cfg.Worker.MaxRetries,
	}
	bus := eventbus.New(log, eventBusCfg)

	auditConsumer := eventbus.NewAuditConsumer(repo, log, cfg.Worker.PoolSize)
	if err := bus.Subscribe(eventbus.EventTypeRowOutcome, auditConsumer); err != nil {
		log.Fatal(ctx, "Failed to subscribe audit consumer",
			"error", err,
		)
	}

	if err := bus.Start(ctx); err != nil {
		log.Fatal(ctx, "Failed to start event bus",
			"error", err,
		)
	}
	log.Info(ctx, "Event bus started",
		"worker_count", cfg.Worker.PoolSize,
	)

	importer := service.NewImporter(repo, bus, log, cfg.Import.NormalizeCurrencyCodes)
	dealService := service.NewDealService(repo, importer, log)
	log.Info(ctx, "Services initialized",
		"normalize_currency_codes", cfg.Import.NormalizeCurrencyCodes,
	)

	dealHandler := handler.NewDealHandler(dealService, log)
	healthHandler := handler.NewHealthHandler()

	srv := server.New(cfg, log, dealHandler, healthHandler)

	go func() {
		if err := srv.Start(); err != nil && err != http.ErrServerClosed {
			log.Fatal(ctx, "Failed to start HTTP server",
				"error", err,
			)
		}
	}()

	log.Info(ctx, "Application started successfully")

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info(ctx, "Received shutdown signal")

	shutdownCtx, cancel := context.WithTimeout(ctx, cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error(shutdownCtx, "HTTP server shutdown error",
			"error", err,
		)
	}

	if err := bus.Shutdown(shutdownCtx); err != nil {
		log.Error(shutdownCtx, "Event bus shutdown error",
			"error", err,
		)
	}

	log.Info(ctx, "Application stopped gracefully")
}
