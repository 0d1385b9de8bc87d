// main.go
package main

import (
	"log"

	"venue-booking/cmd"
	"venue-booking/internal/data/repository"
	"venue-booking/internal/wire"
	"venue-booking/pkg/cache"
	"venue-booking/pkg/database"
	"venue-booking/pkg/events"
	"venue-booking/pkg/utils"

	"go.uber.org/zap"
)

func main() {
	// Load config
	config, err := utils.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize logger
	logger, err := utils.InitLogger(config.App.LogPath, config.App.Debug)
	if err != nil {
		log.Printf("Failed to init logger: %v. Using standard log.", err)
		logger, _ = zap.NewProduction()
	}
	defer logger.Sync()

	logger.Info("Starting application",
		zap.String("app", config.App.Name),
		zap.String("port", config.App.Port),
		zap.Bool("debug", config.App.Debug),
	)

	// Connect to database
	db, err := database.InitDB(config.Database)
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	logger.Info("Database connected successfully")

	// Redis read cache (optional, no-op when disabled)
	redisClient := cache.NewRedisClient(config.Redis)
	readCache := cache.NewCache(redisClient, config.Redis.TTL, logger)
	if redisClient != nil {
		logger.Info("Redis cache connected", zap.String("addr", config.Redis.Addr))
		defer redisClient.Close()
	}

	// Lifecycle event publisher (optional, no-op when disabled)
	publisher, err := events.NewPublisher(config.Events, logger)
	if err != nil {
		logger.Warn("Event publisher unavailable, continuing without events", zap.Error(err))
	}
	defer publisher.Close()

	// Initialize all repositories
	repos := repository.NewRepository(db, logger)

	// Wire all dependencies
	app := wire.Wiring(repos, config, readCache, publisher, logger)

	// Start server
	logger.Info("Starting HTTP server", zap.String("port", config.App.Port))

	cmd.APIServer(app.Router, config.App.Port)
}
