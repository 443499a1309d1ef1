package main

import (
	"challenge-clips/internal/adapters/auth"
	"challenge-clips/internal/adapters/device"
	"challenge-clips/internal/adapters/eventbroker/nats"
	"challenge-clips/internal/adapters/media"
	"challenge-clips/internal/adapters/repository/postgres"
	"challenge-clips/internal/adapters/storage/objectstore"
	"challenge-clips/internal/config"
	"challenge-clips/internal/core/domain"
	"challenge-clips/internal/core/port"
	"challenge-clips/internal/core/service/capture"
	"challenge-clips/internal/core/service/challenge"
	"challenge-clips/internal/core/service/notify"
	"challenge-clips/internal/core/service/upload"
	"challenge-clips/internal/core/service/workflow"
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"
)

func main() {
	var (
		source      string
		challengeID string
	)
	flag.StringVar(&source, "source", string(domain.SourceCamera), "Where to get the video from: camera or library")
	flag.StringVar(&challengeID, "challenge", "", "Challenge id, defaults to today's active challenge")
	flag.Parse()

	ctx, stop := signal.NotifyContext(
		context.Background(),
		os.Interrupt,
		syscall.SIGTERM,
	)
	defer stop()

	// diagnostics go to stderr, stdout is for the user
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	src := domain.Source(source)
	if src != domain.SourceCamera && src != domain.SourceLibrary {
		logger.Error("invalid source", "source", source)
		os.Exit(2)
	}

	cfg, clientCfg, err := config.LoadClient()
	if err != nil {
		logger.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	identity, _, err := auth.LoadSession(clientCfg.SessionToken, clientCfg.SessionFile)
	if err != nil {
		logger.Error("failed to load session", "error", err)
		os.Exit(1)
	}

	db, err := postgres.OpenDB(ctx, cfg.Database)
	if err != nil {
		logger.Error("failed to init database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

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

	sinks := []port.NotificationSink{device.NewTerminalSink(os.Stdout)}
	if cfg.NATS.URL != "" {
		publisher, err := nats.NewNATSPublisher(ctx, cfg.NATS, logger)
		if err != nil {
			logger.Error("failed to init NATS publisher", "error", err)
			os.Exit(1)
		}
		defer publisher.Close()
		sinks = append(sinks, nats.NewEventSink(publisher, cfg.NATS.UploadSubject))
	}

	unitOfWork := postgres.NewUnitOfWork(db)
	challengeService := challenge.NewChallengeService(unitOfWork)

	active, err := resolveChallenge(ctx, challengeService, challengeID)
	if err != nil {
		logger.Error("failed to resolve challenge", "challenge", challengeID, "error", err)
		os.Exit(1)
	}

	recorder := device.NewCommandRecorder(clientCfg.CaptureCommand, cfg.Upload.TempDir, logger)
	picker := device.NewPicker(recorder, device.NewDirectoryLibrary(clientCfg.LibraryDir, os.Stdin, os.Stdout))
	gate := device.NewTerminalGate(os.Stdin, os.Stdout, clientCfg.AssumeYes, logger)

	flow := workflow.NewFlow(
		capture.NewCaptureService(gate, picker, logger),
		upload.NewUploadService(store, unitOfWork, readers, logger),
		notify.NewNotifier(cfg.Storage.MaxObjectSize, logger, sinks...),
		cfg.Upload.MaxCaptureDuration,
		logger,
	)

	notification, err := flow.Run(ctx, src, identity, *active)
	if discardErr := recorder.Discard(); discardErr != nil {
		logger.Warn("failed to remove recordings", "error", discardErr)
	}
	switch {
	case err != nil:
		logger.Error("capture failed", "error", err)
		os.Exit(1)
	case notification == nil:
		logger.Info("capture cancelled")
	case notification.Level == domain.NotificationError:
		os.Exit(1)
	}
}

func resolveChallenge(ctx context.Context, service port.ChallengeService, rawID string) (*domain.Challenge, error) {
	if rawID == "" {
		return service.GetActiveChallenge(ctx, time.Now())
	}
	id, err := uuid.Parse(rawID)
	if err != nil {
		return nil, err
	}
	return service.GetChallenge(ctx, id)
}
