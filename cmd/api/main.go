package main

import (
	"os"

	"github.com/joho/godotenv"

	"github.com/scholarstream/scholarstream/internal/pkg/logger"
	"github.com/scholarstream/scholarstream/internal/server"
)

// @title ScholarStream API
// @version 1.0
// @description API for the ScholarStream scholarship discovery platform

// @contact.name API Support
// @contact.email support@scholarstream.app

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /
// @schemes http https

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Identity provider token for authorization

func main() {
	// Local development keeps secrets in a .env file
	if err := godotenv.Load(); err != nil {
		logger.Debug().Msg("No .env file found, relying on environment")
	}

	srv, err := server.NewServer()
	if err != nil {
		logger.Error().Err(err).Msg("Failed to initialize server")
		os.Exit(1)
	}

	// Run blocks until shutdown signal
	if err := srv.Run(); err != nil {
		logger.Error().Err(err).Msg("Server execution failed or shutdown encountered errors")
		os.Exit(1)
	}

	logger.Info().Msg("Application finished gracefully.")
	os.Exit(0)
}
