package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/mcoot/stackline/internal/api"
	"github.com/mcoot/stackline/internal/factory"
	"github.com/mcoot/stackline/internal/sse"
	redisstorage "github.com/mcoot/stackline/internal/storage/redis"
)

func main() {
	// Set up logging with JSON output
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	// run returns instead of exiting so its deferred cleanup always happens
	if err := run(logger); err != nil {
		logger.Error("server exited", slog.String("error", err.Error()))
		os.Exit(1)
	}
	logger.Info("server stopped")
}

func run(logger *slog.Logger) error {
	// A missing .env file is fine; the environment may already be set
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		logger.Warn("could not load .env", slog.String("error", err.Error()))
	}

	cfg, err := factoryConfig(logger)
	if err != nil {
		return err
	}

	serverConfig := api.DefaultServerConfig()
	if port := os.Getenv("PORT"); port != "" {
		p, err := strconv.Atoi(port)
		if err != nil {
			return fmt.Errorf("invalid PORT %q: %w", port, err)
		}
		serverConfig.Port = p
	}

	// Create application factory
	app, err := factory.New(cfg)
	if err != nil {
		return fmt.Errorf("creating application: %w", err)
	}
	defer func() { _ = app.Close() }()

	// Handle graceful shutdown
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Placements made by CLI processes arrive over the shared bus
	go func() {
		if err := app.RunRelay(ctx, nil); err != nil {
			logger.Error("event relay stopped", slog.String("error", err.Error()))
		}
	}()
	go app.HubManager.RunCleanup(ctx, sse.CleanupInterval)

	router := api.NewRouter(api.RouterConfig{
		Logger:         logger,
		GameController: app.GameController,
		HubManager:     app.HubManager,
	})
	server := api.NewServer(router, serverConfig, logger)

	logger.Info("server started", slog.String("addr", server.Addr()))

	return server.Run(ctx)
}

// factoryConfig reads STORAGE_TYPE and REDIS_URL
func factoryConfig(logger *slog.Logger) (factory.Config, error) {
	cfg := factory.Config{
		Logger:      logger,
		StorageType: os.Getenv("STORAGE_TYPE"),
	}

	switch cfg.StorageType {
	case factory.StorageTypeRedis:
		redisURL := os.Getenv("REDIS_URL")
		if redisURL == "" {
			return cfg, errors.New("REDIS_URL required when STORAGE_TYPE=redis")
		}
		redisCfg := redisstorage.DefaultConfig()
		redisCfg.URL = redisURL
		cfg.RedisConfig = &redisCfg
	case "", factory.StorageTypeMemory:
		// The API never places pieces, so a private store stays empty
		logger.Warn("serving from memory storage; no games can be created here, set STORAGE_TYPE=redis to share games with the CLI",
			slog.String("storage_type", cfg.StorageType))
	}
	return cfg, nil
}
