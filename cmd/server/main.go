package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/procomhq/attendance-portal/internal/api"
	"github.com/procomhq/attendance-portal/internal/config"
	"github.com/procomhq/attendance-portal/internal/factory"
	"github.com/procomhq/attendance-portal/internal/roster"
	"github.com/procomhq/attendance-portal/internal/sheetlog"
	redisstorage "github.com/procomhq/attendance-portal/internal/storage/redis"
)

func main() {
	// Set up logging with JSON output
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	cfg, err := config.Load()
	if err != nil {
		logger.Error("invalid configuration", slog.String("error", err.Error()))
		os.Exit(1)
	}
	if cfg.SpreadsheetID == "" {
		logger.Error("SPREADSHEET_ID is required")
		os.Exit(1)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// The sheets client is built once and reused for the process lifetime
	sheetsService, err := sheetlog.NewSheetsService(ctx, cfg)
	if err != nil {
		logger.Error("failed to create sheets client", slog.String("error", err.Error()))
		os.Exit(1)
	}
	reconciler := sheetlog.New(sheetsService, cfg.SpreadsheetID, cfg.SyncPolicy, logger)

	// Build factory config
	factoryCfg := factory.Config{
		Logger:      logger,
		Reconciler:  reconciler,
		StorageType: cfg.StorageType,
	}
	if cfg.StorageType == config.StorageTypeRedis {
		redisCfg := redisstorage.DefaultConfig()
		redisCfg.URL = cfg.RedisURL
		factoryCfg.RedisConfig = &redisCfg
	}

	app, err := factory.New(factoryCfg)
	if err != nil {
		logger.Error("failed to create application", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Load the registration workbook
	participants, err := roster.Load(cfg.RosterPath)
	if err != nil {
		logger.Error("failed to load roster", slog.String("error", err.Error()))
		os.Exit(1)
	}
	if err := app.AttendanceController.SeedRoster(ctx, participants); err != nil {
		logger.Error("failed to seed roster", slog.String("error", err.Error()))
		os.Exit(1)
	}
	logger.Info("roster loaded",
		slog.String("path", cfg.RosterPath),
		slog.Int("participants", len(participants)),
	)

	// Rehydrate present flags from the attendance log
	if cfg.SeedFromLog {
		if err := app.AttendanceController.SeedFromLog(ctx); err != nil {
			logger.Error("failed to seed attendance from log", slog.String("error", err.Error()))
			os.Exit(1)
		}
	}

	// Create router
	router := api.NewRouter(api.RouterConfig{
		Logger:               logger,
		AttendanceController: app.AttendanceController,
	})

	// Create server
	serverConfig := api.DefaultServerConfig()
	serverConfig.Port = cfg.Port
	server := api.NewServer(router, serverConfig, logger)

	// Handle graceful shutdown
	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh
		logger.Info("shutdown signal received")
		cancel()
	}()

	// Start server in goroutine
	errCh := make(chan error, 1)
	go func() {
		errCh <- server.Start()
	}()

	logger.Info("server started", slog.String("addr", server.Addr()))

	// Wait for shutdown or error
	select {
	case err := <-errCh:
		if err != nil {
			logger.Error("server error", slog.String("error", err.Error()))
			os.Exit(1)
		}
	case <-ctx.Done():
		if err := server.Shutdown(context.Background()); err != nil {
			logger.Error("shutdown error", slog.String("error", err.Error()))
			os.Exit(1)
		}
	}

	logger.Info("server stopped")
}
