// Package main is the entry point for the Bite Tracker CLI.
// Its sole responsibility is wiring dependencies together and starting the
// menu loop. No business logic belongs here.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"bitetracker/internal/cli"
	"bitetracker/internal/config"
	"bitetracker/internal/repo"
	"bitetracker/internal/service"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func run() error {
	ctx := context.Background()

	// --- Config -----------------------------------------------------------
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	// --- Logger -----------------------------------------------------------
	// Structured JSON lines go to a file so they never interleave with the
	// menu on stdout.
	if dir := filepath.Dir(cfg.LogFile); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create log dir: %w", err)
		}
	}
	logFile, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}
	defer logFile.Close()

	var logLevel slog.Level
	if err := logLevel.UnmarshalText([]byte(cfg.LogLevel)); err != nil {
		logLevel = slog.LevelInfo
	}
	logger := slog.New(slog.NewJSONHandler(logFile, &slog.HandlerOptions{
		Level: logLevel,
	}))
	slog.SetDefault(logger)

	// --- Database ---------------------------------------------------------
	db, err := repo.Open(cfg.DBPath)
	if err != nil {
		return err
	}
	defer db.Close()

	if err := repo.Migrate(ctx, db); err != nil {
		return err
	}
	logger.Info("database ready", "path", cfg.DBPath)

	// --- Wiring -----------------------------------------------------------
	// Repositories → services → menu, constructed once and passed down.
	restaurantRepo := repo.NewRestaurantRepo(db)
	visitRepo := repo.NewVisitRepo(db)

	restaurantSvc := service.NewRestaurantService(restaurantRepo, visitRepo)
	visitSvc := service.NewVisitService(visitRepo, restaurantRepo)
	exportSvc := service.NewExportService(restaurantRepo, visitRepo)

	menu, err := cli.New(restaurantSvc, visitSvc, exportSvc, logger)
	if err != nil {
		return err
	}
	defer menu.Close()

	return menu.Run(ctx)
}
