package main

import (
	"challenge-clips/internal/adapters/repository/postgres"
	"challenge-clips/internal/config"
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/golang-migrate/migrate/v4"
	migratepg "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
)

func main() {
	var (
		source string
		up     bool
		down   bool
	)

	flag.StringVar(&source, "source", "db/migrations", "Path to migrations directory")
	flag.BoolVar(&up, "up", false, "Run up migrations")
	flag.BoolVar(&down, "down", false, "Run down migrations")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	if up == down {
		logger.Error("exactly one of -up or -down is required")
		os.Exit(2)
	}

	cfg, err := config.Load()
	if err != nil {
		logger.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	db, err := postgres.OpenDB(context.Background(), cfg.Database)
	if err != nil {
		logger.Error("failed to init database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	driver, err := migratepg.WithInstance(db, &migratepg.Config{})
	if err != nil {
		logger.Error("failed to create database driver", "error", err)
		os.Exit(1)
	}
	m, err := migrate.NewWithDatabaseInstance(fmt.Sprintf("file://%s", source), "postgres", driver)
	if err != nil {
		logger.Error("failed to create migrate instance", "error", err)
		os.Exit(1)
	}

	direction, run := "up", m.Up
	if down {
		direction, run = "down", m.Down
	}

	logger.Info("running migrations", "direction", direction, "source", source)
	if err := run(); err != nil {
		if errors.Is(err, migrate.ErrNoChange) {
			logger.Info("no migration to apply", "direction", direction)
			return
		}
		logger.Error("failed to run migrations", "direction", direction, "error", err)
		os.Exit(1)
	}

	version, dirty, err := m.Version()
	if err != nil && !errors.Is(err, migrate.ErrNilVersion) {
		logger.Error("failed to read schema version", "error", err)
		os.Exit(1)
	}
	logger.Info("migrations completed", "direction", direction, "version", version, "dirty", dirty)
}
