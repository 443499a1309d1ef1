package main

import (
	"challenge-clips/internal/adapters/eventbroker/nats"
	"challenge-clips/internal/adapters/handlers/http/chi"
	challenge2 "challenge-clips/internal/adapters/handlers/http/chi/v1/challenge"
	"challenge-clips/internal/adapters/handlers/http/chi/v1/video"
	"challenge-clips/internal/adapters/media"
	"challenge-clips/internal/adapters/repository/postgres"
	"challenge-clips/internal/adapters/storage/objectstore"
	"challenge-clips/internal/config"
	"challenge-clips/internal/core/domain"
	"challenge-clips/internal/core/port"
	"challenge-clips/internal/core/service/challenge"
	"challenge-clips/internal/core/service/library"
	"challenge-clips/internal/core/service/notify"
	"challenge-clips/internal/core/service/upload"
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"
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
	if cfg.Auth.JWTSecret == "" {
		logger.Error("AUTH_JWT_SECRET is required")
		os.Exit(1)
	}

	db, err := postgres.OpenDB(ctx, cfg.Database)
	if err != nil {
		logger.Error("failed to init database", "error", err)
		os.Exit(1)
	}
	defer func(db *sql.DB) {
		err := db.Close()
		if err != nil {
			logger.Error("failed to close database", "error", err)
		}
	}(db)
	logger.Info("db connection established")

	//storage
	store, err := objectstore.New(ctx, cfg, logger)
	if err != nil {
		logger.Error("failed to init object store", "backend", cfg.Storage.Backend, "error", err)
		os.Exit(1)
	}

	readers, err := media.Readers(
		domain.Runtime(cfg.Upload.Runtime),
		media.OSFileSystem{},
		media.NewFetchReader(cfg.Upload.FetchTimeout, cfg.Storage.MaxObjectSize),
	)
	if err != nil {
		logger.Error("failed to init payload readers", "error", err)
		os.Exit(1)
	}

	//events
	var sinks []port.NotificationSink
	if cfg.NATS.URL != "" {
		publisher, err := nats.NewNATSPublisher(ctx, cfg.NATS, logger)
		if err != nil {
			logger.Error("failed to init NATS publisher", "error", err)
			os.Exit(1)
		}
		defer func() {
			if err := publisher.Close(); err != nil {
				logger.Error("failed to close NATS publisher", "error", err)
			}
		}()
		sinks = append(sinks, nats.NewEventSink(publisher, cfg.NATS.UploadSubject))
		logger.Info("upload events enabled", "subject", cfg.NATS.UploadSubject)
	}

	//repositories
	unitOfWork := postgres.NewUnitOfWork(db)

	uploadService := upload.NewUploadService(store, unitOfWork, readers, logger)
	libraryService := library.NewLibraryService(unitOfWork)
	challengeService := challenge.NewChallengeService(unitOfWork)
	notifier := notify.NewNotifier(cfg.Storage.MaxObjectSize, logger, sinks...)

	//http
	challengeHandler := challenge2.NewChallengeHandlerV1(challengeService, logger)
	videoHandler := video.NewVideoHandlerV1(uploadService, libraryService, challengeService, notifier, cfg.Upload.TempDir, logger)

	router := chi.NewRouter(logger, chi.RouterOptions{
		Env:           cfg.Env.Env,
		JWTSecret:     []byte(cfg.Auth.JWTSecret),
		MaxUploadSize: cfg.Storage.MaxObjectSize,
	}, challengeHandler, videoHandler)
	server := &http.Server{
		Addr:              fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		logger.Info("starting server", "host", cfg.Server.Host, "port", cfg.Server.Port, "runtime", cfg.Upload.Runtime)
		servErr := server.ListenAndServe()
		if servErr != nil && !errors.Is(servErr, http.ErrServerClosed) {
			logger.Error("failed to start server", "error", servErr)
			stop()
		}
	}()

	//wait for context cancel
	<-ctx.Done()
	logger.Info("gracefully shutting down app")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("failed to shutdown server", "error", err)
	} else {
		logger.Info("server gracefully shutdown complete")
	}

	wg.Wait()
	logger.Info("app shutdown complete")

}
