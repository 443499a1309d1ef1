package main

import (
	"challenge-clips/internal/adapters/eventbroker/nats"
	"challenge-clips/internal/adapters/repository/postgres"
	"challenge-clips/internal/adapters/storage/objectstore"
	"challenge-clips/internal/config"
	"challenge-clips/internal/core/port"
	"challenge-clips/internal/core/service/orphan"
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"
)

func main() {

	ctx, stop := signal.NotifyContext(
		context.Background(),
		os.Interrupt,
		syscall.SIGTERM,
	)
	defer stop()
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	cfg, err := config.Load()
	if err != nil {
		logger.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	db, err := postgres.OpenDB(ctx, cfg.Database)
	if err != nil {
		logger.Error("failed to init database", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := db.Close(); err != nil {
			logger.Error("failed to close database", "error", err)
		}
	}()
	logger.Info("db connection established")

	store, err := objectstore.New(ctx, cfg, logger)
	if err != nil {
		logger.Error("failed to init object store", "backend", cfg.Storage.Backend, "error", err)
		os.Exit(1)
	}

	reconciler := orphan.NewReconciler(store, postgres.NewUnitOfWork(db), cfg.Orphan, logger)
	logger.Info("orphan reconciler initialized", "mode", cfg.Orphan.Mode, "grace_period", cfg.Orphan.GracePeriod)

	g, gctx := errgroup.WithContext(ctx)

	if cfg.NATS.URL != "" {
		consumer, err := nats.NewNATSConsumer(cfg.NATS, logger)
		if err != nil {
			logger.Error("failed to create NATS consumer", "error", err)
			os.Exit(1)
		}
		g.Go(func() error {
			return consume(gctx, consumer, reconciler, logger)
		})
	} else {
		logger.Warn("NATS_URL not set, bucket events disabled, relying on sweeps")
	}

	g.Go(func() error {
		sweep(gctx, reconciler, cfg.Orphan.SweepEvery, logger)
		return nil
	})

	if err := g.Wait(); err != nil {
		logger.Error("reconciler stopped with error", "error", err)
		os.Exit(1)
	}
	logger.Info("reconciler shutdown complete")
}

// consume handles bucket events until ctx is done
func consume(ctx context.Context, consumer port.EventConsumer, handler port.MessageService, logger *slog.Logger) error {
	defer func() {
		if err := consumer.Close(); err != nil {
			logger.Error("failed to close NATS consumer", "error", err)
		}
	}()

	if err := consumer.Subscribe(ctx, handler); err != nil {
		return err
	}
	logger.Info("NATS subscription active")

	<-ctx.Done()
	return nil
}

// sweep runs the periodic backstop sweep until ctx is done
func sweep(ctx context.Context, service port.OrphanService, every time.Duration, logger *slog.Logger) {
	ticker := time.NewTicker(every)
	defer ticker.Stop()

	logger.Info("orphan sweep initialized", "interval", every)

	for {
		select {
		case <-ticker.C:
			resolved, err := service.SweepOrphans(ctx, time.Now())
			if err != nil {
				logger.Error("orphan sweep failed", "resolved", resolved, "error", err)
			}
		case <-ctx.Done():
			logger.Info("orphan sweep stopped")
			return
		}
	}
}
