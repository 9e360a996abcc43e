// Package main is the entry point for the application
// It initializes all components and starts the HTTP server
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/lDirtyl/goit-final-aws-email-db/config"
	httpDelivery "github.com/lDirtyl/goit-final-aws-email-db/delivery/http"
	"github.com/lDirtyl/goit-final-aws-email-db/domain/model"
	pgRepository "github.com/lDirtyl/goit-final-aws-email-db/repository/postgres"
	"github.com/lDirtyl/goit-final-aws-email-db/usecase"

	"github.com/lDirtyl/goit-final-aws-email-db/pkg/database"
	"github.com/lDirtyl/goit-final-aws-email-db/pkg/logger"
	"github.com/lDirtyl/goit-final-aws-email-db/pkg/secrets"
)

// main is the entry point of the application
// It performs the following steps:
// 1. Initializes the logger
// 2. Loads configuration from files or environment variables
// 3. Resolves database credentials from AWS Secrets Manager when needed
// 4. Sets up the database connection and ensures the schema exists
// 5. Initializes the repository, usecase, and handler layers
// 6. Sets up HTTP routes
// 7. Starts the HTTP server with graceful shutdown
func main() {
	// configure logger
	appLogger := logger.NewJSONDefault()

	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		appLogger.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	dbCfg := cfg.Infrastructure.Database

	// Resolve credentials from the secret store when they are not configured directly
	if dbCfg.Host != "" && dbCfg.Password == "" {
		resolver, err := secrets.NewResolver(cfg.Infrastructure.Secrets.Region)
		if err != nil {
			appLogger.Error("Failed to initialize secret resolver", "error", err)
			os.Exit(1)
		}

		creds, err := resolver.Resolve(cfg.Infrastructure.Secrets.SecretID)
		if err != nil {
			appLogger.Error("Failed to resolve database credentials", "secret_id", cfg.Infrastructure.Secrets.SecretID, "error", err)
			os.Exit(1)
		}
		if creds.Password == "" {
			appLogger.Error("Resolved secret does not contain a password", "secret_id", cfg.Infrastructure.Secrets.SecretID)
			os.Exit(1)
		}

		if dbCfg.User == "" {
			dbCfg.User = creds.Username
		}
		dbCfg.Password = creds.Password
		appLogger.Info("Database credentials resolved from secret store", "secret_id", cfg.Infrastructure.Secrets.SecretID)
	}

	// Initialize database client
	dbClient, err := database.NewClient(database.Config{
		Host:            dbCfg.Host,
		Port:            dbCfg.Port,
		User:            dbCfg.User,
		Password:        dbCfg.Password,
		DBName:          dbCfg.DBName,
		SSLMode:         dbCfg.SSLMode,
		SQLitePath:      dbCfg.SQLitePath,
		MaxIdleConns:    dbCfg.MaxIdleConns,
		MaxOpenConns:    dbCfg.MaxOpenConns,
		ConnMaxIdleTime: dbCfg.ConnMaxIdleTime,
		ConnMaxLifetime: dbCfg.ConnMaxLifetime,
		Debug:           dbCfg.Debug,
	})
	if err != nil {
		appLogger.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}

	if dbCfg.IsUseMigrate {
		// Ensure the contacts table exists, once, before serving requests
		if err := dbClient.Migrate(&model.Contact{}); err != nil {
			appLogger.Error("Failed to migrate database", "error", err)
			os.Exit(1)
		}
	}

	// Initialize repository
	contactRepo := pgRepository.NewContactRepository(dbClient.GetDB(), appLogger)

	// Initialize usecase
	contactUsecase := usecase.NewContactUseCase(contactRepo, appLogger)

	if dbCfg.IsUseSeed {
		// Starter records for an empty table; failure is not fatal
		if err := contactUsecase.SeedContacts(context.Background()); err != nil {
			appLogger.Warn("Seed skipped", "error", err)
		}
	}

	// Initialize handlers
	contactHandler := httpDelivery.NewContactHandler(contactUsecase, appLogger, cfg.Application.Name)
	apiHandler := httpDelivery.NewAPIHandler(contactUsecase, appLogger)
	healthHandler := httpDelivery.NewHealthHandler(dbClient.GetDB(), appLogger)

	// Initialize router
	router := httpDelivery.NewRouter(contactHandler, apiHandler, healthHandler, appLogger)

	// Setup routes
	httpHandler := router.SetupRoutes()

	// Start server
	server := &http.Server{
		Addr:         ":" + strconv.Itoa(cfg.Server.Port),
		Handler:      httpHandler,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
	}

	// Create channel to listen for interrupt signal
	quit := make(chan os.Signal, 1)

	// Register the channel to receive specific signals
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	// Server failures surface here so the database still closes cleanly
	serverErr := make(chan error, 1)

	// Start HTTP server in a separate goroutine
	go func() {
		appLogger.Info("Service starting", "name", cfg.Application.Name, "version", cfg.Application.Version, "port", cfg.Server.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErr <- err
		}
	}()

	// Block until the server fails or a signal is received
	select {
	case err := <-serverErr:
		appLogger.Error("Failed to start server", "error", err)
		if cerr := dbClient.Close(); cerr != nil {
			appLogger.Warn("Error closing database connection", "error", cerr)
		}
		os.Exit(1)
	case <-quit:
	}
	appLogger.Info("Shutting down server...")

	// Create a context with timeout for graceful shutdown
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Server.ShutdownTimeout)*time.Second)
	defer cancel()

	// Shutdown the server gracefully
	if err := server.Shutdown(ctx); err != nil {
		appLogger.Error("Server forced to shutdown", "error", err)
		os.Exit(1)
	}

	// Close database connection
	if err := dbClient.Close(); err != nil {
		appLogger.Warn("Error closing database connection", "error", err)
	}

	appLogger.Info("Server exited")
}
