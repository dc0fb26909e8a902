package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/nekogravitycat/auditorium-booking-backend/internal/app"
	"github.com/nekogravitycat/auditorium-booking-backend/internal/config"
	"github.com/nekogravitycat/auditorium-booking-backend/internal/db"
	"github.com/nekogravitycat/auditorium-booking-backend/internal/notify"
	"github.com/nekogravitycat/auditorium-booking-backend/internal/pkg/storage"
)

func main() {
	// For receiving Ctrl+C / SIGTERM
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := app.NewLogger(cfg.IsProduction())
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	pool, err := db.NewPool(ctx, cfg.DBDSN)
	if err != nil {
		logger.Fatal("failed to connect to db", zap.Error(err))
	}
	defer pool.Close()

	if cfg.MigrateOnStart {
		migrator, err := app.NewMigrator(pool, logger)
		if err != nil {
			logger.Fatal("failed to init migrator", zap.Error(err))
		}
		if err := migrator.Run(ctx); err != nil {
			logger.Fatal("failed to migrate database", zap.Error(err))
		}
		_ = migrator.Close()
	}

	store, err := storage.NewLocalStorage(cfg.StoragePath)
	if err != nil {
		logger.Fatal("failed to init storage", zap.Error(err))
	}

	var notifier notify.Notifier = notify.NewLogNotifier(logger.Named("notify"))
	if cfg.AMQPURL != "" {
		pub, err := notify.NewPublisher(cfg.AMQPURL, cfg.AMQPExchange)
		if err != nil {
			logger.Fatal("failed to connect to rabbitmq", zap.Error(err))
		}
		defer pub.Close()
		notifier = pub
	} else {
		logger.Warn("AMQP_URL not set, booking notifications will only be logged")
	}

	container := app.NewContainer(app.Config{
		IsProduction: cfg.IsProduction(),
		ProdOrigins:  cfg.Origins(),
		DBPool:       pool,
		JWTSecret:    cfg.JWTSecret,
		JWTTTL:       cfg.JWTAccessTokenTTL,
		BcryptCost:   cfg.BcryptCost,
		Storage:      store,
		Notifier:     notifier,
		Logger:       logger,
	})

	// Use http.Server for graceful shutdown
	server := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           container.Router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Info("server running", zap.String("addr", cfg.HTTPAddr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("server error", zap.Error(err))
		}
	}()

	<-ctx.Done()
	logger.Info("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("server forced to shutdown", zap.Error(err))
	}

	logger.Info("server exited gracefully")
}
