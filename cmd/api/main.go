package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Dan9191/gig-score/internal/config"
	"github.com/Dan9191/gig-score/internal/handler"
	"github.com/Dan9191/gig-score/internal/integrations/ratefeed"
	"github.com/Dan9191/gig-score/internal/repository"
	"github.com/Dan9191/gig-score/internal/service"
	"github.com/Dan9191/gig-score/internal/utils/email"
	_ "github.com/lib/pq"
	"github.com/sirupsen/logrus"
)

// store is what both storage backends provide
type store interface {
	service.UserStore
	service.SnapshotStore
	handler.Pinger
}

func main() {
	// Initialize logger
	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{})

	// Load configuration
	cfg, err := config.NewConfig()
	if err != nil {
		logger.Fatalf("Failed to load config: %v", err)
	}
	logLevel, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		logLevel = logrus.InfoLevel
	}
	logger.SetLevel(logLevel)

	ctx := context.Background()
	sealer := repository.NewSealer(cfg.EncryptionKey, cfg.HMACSecret)

	// Initialize storage
	st, closeStore, err := openStore(ctx, cfg, sealer, logger)
	if err != nil {
		logger.Fatalf("Failed to initialize storage: %v", err)
	}
	defer closeStore()

	// Initialize layers
	svc := service.NewService(st, st, logger, cfg).
		WithRateSource(ratefeed.NewClient(cfg, logger))
	if cfg.MailEnabled() {
		svc.WithNotifier(email.NewSender(cfg, logger))
	}
	if err := svc.SeedDemoUser(ctx); err != nil {
		logger.Fatalf("Failed to seed demo user: %v", err)
	}

	retention, err := svc.StartRetention(cfg.RetentionSchedule)
	if err != nil {
		logger.Fatalf("Failed to schedule retention: %v", err)
	}

	h := handler.NewHandler(svc, st, logger)
	router := handler.NewRouter(h, cfg)

	// Start server
	addr := fmt.Sprintf(":%s", cfg.Port)
	server := &http.Server{
		Addr:         addr,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Infof("Starting server on %s", addr)
		errCh <- server.ListenAndServe()
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-sigCh:
		logger.Infof("Received %s, shutting down", sig)
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Errorf("Server failed: %v", err)
		}
	}

	<-retention.Stop().Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Errorf("Graceful shutdown failed: %v", err)
	}
}

func openStore(ctx context.Context, cfg *config.Config, sealer *repository.Sealer, logger *logrus.Logger) (store, func(), error) {
	if cfg.Storage == config.StorageMemory {
		logger.Warn("Using in-memory storage; data is lost on restart")
		return repository.NewMemoryStore(sealer), func() {}, nil
	}

	db, err := sql.Open("postgres", cfg.DBConn)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, nil, fmt.Errorf("failed to ping database: %w", err)
	}

	repo := repository.NewRepository(db, sealer)
	if err := repo.Migrate(ctx); err != nil {
		db.Close()
		return nil, nil, fmt.Errorf("failed to migrate schema: %w", err)
	}
	return repo, func() { db.Close() }, nil
}
