package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/sheikh-saqib/gpa-calculator/internal/config"
	"github.com/sheikh-saqib/gpa-calculator/internal/events/kafka"
	"github.com/sheikh-saqib/gpa-calculator/internal/httpapi"
	interfaces "github.com/sheikh-saqib/gpa-calculator/internal/interfaces"
	"github.com/sheikh-saqib/gpa-calculator/internal/ledger"
	"github.com/sheikh-saqib/gpa-calculator/internal/logging"
	"github.com/sheikh-saqib/gpa-calculator/internal/storage"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger, err := logging.New(cfg.LogLevel, cfg.Development)
	if err != nil {
		return err
	}
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store, err := storage.Open(ctx, cfg)
	if err != nil {
		return fmt.Errorf("open %s store: %w", cfg.Store, err)
	}
	defer store.Close()

	opts := []ledger.Option{ledger.WithLogger(logger)}
	var publisher interfaces.EventPublisher
	if len(cfg.KafkaBrokers) > 0 {
		kp := kafka.NewPublisher(cfg.KafkaBrokers)
		defer kp.Close()
		publisher = kp
		opts = append(opts, ledger.WithPublisher(kp))
		logger.Info("publishing events to kafka", zap.Strings("brokers", cfg.KafkaBrokers))
	}

	ledgerService := ledger.NewLedger(store, opts...)
	restored := ledgerService.Restore(ctx)

	app := httpapi.NewServer(ledgerService, publisher, logger).App()

	errCh := make(chan error, 1)
	go func() {
		logger.Info("starting server",
			zap.String("addr", cfg.HTTPAddr),
			zap.String("store", cfg.Store),
			zap.Int("subjects", restored))
		errCh <- app.Listen(cfg.HTTPAddr)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return app.ShutdownWithContext(shutdownCtx)
}
