package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/lalitaditya04/EcomStore-Platform/config"
	"github.com/lalitaditya04/EcomStore-Platform/internal/app"
	"github.com/lalitaditya04/EcomStore-Platform/internal/infrastructure/database/mongodb"
	"github.com/rs/zerolog/log"
)

func main() {
	config := config.CreateNewConfig()
	app.SetupLogger(config.LogLevel)

	if config.JWTSecret == "" {
		log.Fatal().Msg("JWT_SECRET must be set")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	db, err := mongodb.ConnectToMongoDB(ctx, config.MongoDBConfig)
	if err != nil {
		cancel()
		log.Fatal().Err(err).Msg("Failed to connect to the database")
	}

	if err := mongodb.EnsureIndexes(ctx, db); err != nil {
		cancel()
		log.Fatal().Err(err).Msg("Failed to create indexes")
	}
	cancel()

	defer db.Client().Disconnect(context.Background())

	server := app.App{
		DB:     db,
		Config: config,
	}

	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
		<-quit

		if err := server.StopServer(); err != nil {
			log.Error().Err(err).Msg("Failed to stop server")
		}
	}()

	if err := server.Start(); err != nil {
		log.Error().Err(err).Msg("Server stopped")
	}
}
