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

	metawall "github.com/kelvin80121/metawall"
)

func main() {
	cfg, err := metawall.LoadConfig()
	if err != nil {
		os.Stderr.WriteString("config: " + err.Error() + "\n")
		os.Exit(1)
	}

	logger := metawall.NewLogger("server", cfg.IsDevelopment())

	sqldb, err := sql.Open(sqliteshim.ShimName, cfg.DatabaseDSN)
	if err != nil {
		logger.Error("failed to open database", "error", err)
		os.Exit(1)
	}

	db := bun.NewDB(sqldb, sqlitedialect.New())
	defer db.Close()

	ctx := context.Background()
	if err := metawall.CreateSchema(ctx, db); err != nil {
		logger.Error("failed to create schema", "error", err)
		os.Exit(1)
	}

	tokens := metawall.NewTokenService(
		[]byte(cfg.SigningKey),
		cfg.TokenExpiration,
		"metawall",
		logger,
	)

	app := metawall.NewServer(metawall.ServerOptions{
		Config: cfg,
		Logger: logger,
		Repo:   metawall.NewRepositoryManager(db),
		Tokens: tokens,
	})

	go func() {
		logger.Info("server listening", "addr", cfg.HTTPAddr, "env", cfg.Environment)
		if err := app.Listen(cfg.HTTPAddr); err != nil {
			logger.Error("server stopped", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down")
	if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
		logger.Error("shutdown error", "error", err)
	}
}
