package main

import (
	"net/http"
	"time"

	"github.com/Sapuran-Berperan/customer-viewer/internal/config"
	"github.com/Sapuran-Berperan/customer-viewer/internal/database"
	"github.com/Sapuran-Berperan/customer-viewer/internal/handler"
	"github.com/Sapuran-Berperan/customer-viewer/internal/logging"
	"github.com/Sapuran-Berperan/customer-viewer/internal/repository"
	"github.com/joho/godotenv"
)

func main() {
	// Load .env file if exists
	envErr := godotenv.Load()

	// Load configuration
	cfg := config.Load()
	logger := logging.New(cfg.LogLevel, cfg.Environment)

	if envErr != nil {
		logger.Info().Msg("No .env file found, using environment variables")
	}

	// Initialize database
	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to connect to database")
	}
	defer db.Close()

	// Run migrations in dev environment
	if cfg.Environment == "dev" {
		logger.Info().Msg("Running database migrations...")
		if err := database.Migrate(cfg.MigrationsPath, cfg.DatabaseURL); err != nil {
			logger.Fatal().Err(err).Msg("Failed to run migrations")
		}
		logger.Info().Msg("Migrations completed successfully")
	}

	// Initialize repository and handlers
	queries := repository.New(db)
	customerHandler := handler.NewCustomerHandler(queries, logger)

	r := handler.NewRouter(customerHandler, logger, cfg.AllowedOrigins)

	// Start server
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	logger.Info().Str("port", cfg.Port).Str("env", cfg.Environment).Msg("Server is running")
	if err := srv.ListenAndServe(); err != nil {
		logger.Fatal().Err(err).Msg("Server failed to start")
	}
}
