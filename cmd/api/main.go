package main

// @title Restaurant Data Explorer API
// @version 1.0
// @description Looks up restaurants near a free-text location through a third-party places provider.

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:5000
// @BasePath /
// @schemes http https

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/restaurant-explorer/docs/swagger"
	"github.com/restaurant-explorer/internal/config"
	httpDelivery "github.com/restaurant-explorer/internal/delivery/http"
	"github.com/restaurant-explorer/internal/delivery/http/handler"
	"github.com/restaurant-explorer/internal/infrastructure/provider"
	"github.com/restaurant-explorer/internal/pkg/logger"
	"github.com/restaurant-explorer/internal/usecase"
	"go.uber.org/zap"
)

func main() {
	// 1. Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	// 2. Initialize logger
	log, err := logger.New(cfg.Log.Level, cfg.Server.Env)
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer log.Sync()

	log.Info("Starting Restaurant Data Explorer")
	log.Info("Configuration loaded",
		zap.String("env", cfg.Server.Env),
		zap.String("server_addr", cfg.GetServerAddr()),
		zap.String("default_provider", cfg.Providers.Default),
		zap.Bool("strict_providers", cfg.Providers.Strict),
		zap.Duration("provider_timeout", cfg.Providers.RequestTimeout),
	)

	// 3. Providers
	registry := provider.NewDefaultRegistry(cfg, log)

	// 4. Use cases
	restaurantUC := usecase.NewRestaurantUseCase(
		registry,
		log,
		cfg.Providers.Default,
		cfg.Providers.Strict,
	)

	// 5. HTTP handlers and server
	server := httpDelivery.NewServer(
		cfg,
		log,
		handler.NewRestaurantHandler(restaurantUC, log),
		handler.NewInfoHandler(),
	)

	go func() {
		if err := server.Start(); err != nil {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	log.Info("Server started successfully",
		zap.String("address", cfg.GetServerAddr()),
		zap.String("env", cfg.Server.Env),
	)

	// 6. Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server gracefully...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Error("Server shutdown error", zap.Error(err))
	}

	log.Info("Server stopped successfully")
}
