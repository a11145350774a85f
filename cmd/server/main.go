package main

import (
	"context"
	"database/sql"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/sqlitedialect"
	"github.com/uptrace/bun/driver/sqliteshim"

	"github.com/taskflow/taskflow/internal/auth"
	"github.com/taskflow/taskflow/internal/config"
	"github.com/taskflow/taskflow/internal/repository"
	"github.com/taskflow/taskflow/internal/server"
)

func main() {
	logger := auth.DefaultLogger()

	cfg, err := config.Load()
	if err != nil {
		logger.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(
		context.Background(),
		os.Interrupt,
		syscall.SIGTERM,
	)
	defer stop()

	sqldb, err := sql.Open(sqliteshim.ShimName, cfg.DatabaseDSN)
	if err != nil {
		logger.Error("failed to open database", "error", err)
		os.Exit(1)
	}
	db := bun.NewDB(sqldb, sqlitedialect.New())
	defer db.Close()

	if err := repository.CreateTables(ctx, db); err != nil {
		logger.Error("failed to initialize schema", "error", err)
		os.Exit(1)
	}

	repos := repository.NewManager(db)
	if err := repos.Validate(); err != nil {
		logger.Error("failed to initialize repositories", "error", err)
		os.Exit(1)
	}

	srv, err := server.New(cfg, repos, logger)
	if err != nil {
		logger.Error("failed to initialize server", "error", err)
		os.Exit(1)
	}

	go func() {
		if err := srv.Listen(":" + cfg.AppPort); err != nil {
			logger.Error("http server failed", "error", err)
			stop()
		}
	}()

	logger.Info("taskflow started", "port", cfg.AppPort, "env", cfg.AppEnv)

	<-ctx.Done()

	logger.Info("shutdown signal received")

	done := make(chan error, 1)
	go func() { done <- srv.Shutdown() }()

	select {
	case err := <-done:
		if err != nil {
			logger.Error("graceful shutdown failed", "error", err)
			os.Exit(1)
		}
	case <-time.After(10 * time.Second):
		logger.Error("graceful shutdown timed out")
		os.Exit(1)
	}

	logger.Info("taskflow stopped cleanly")
}
