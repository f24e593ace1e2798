// main.go
package main

import (
	"log"

	"airline-booking/cmd"
	"airline-booking/internal/cache"
	"airline-booking/internal/data/repository"
	"airline-booking/internal/wire"
	"airline-booking/pkg/database"
	"airline-booking/pkg/token"
	"airline-booking/pkg/utils"

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

	// Initialize repositories and collaborators
	repos := repository.NewRepository(db, logger)
	txManager := database.NewTxManager(db)
	tokenManager := token.NewManager(config.JWT)
	flightCache := cache.NewFlightCache(config.Redis, logger)

	// Wire all dependencies
	app := wire.Wiring(repos, txManager, tokenManager, flightCache, logger)

	// Start server
	logger.Info("Starting HTTP server", zap.String("port", config.App.Port))

	cmd.APIServer(app.Router, config.App.Port)
}
