package main

import (
	"database/sql"
	"flag"
	"log"
	"net/http"

	httpapi "libtrack-backend/internal/api/http"
	"libtrack-backend/internal/config"
	"libtrack-backend/internal/logger"
	"libtrack-backend/internal/repository/postgres"
	"libtrack-backend/internal/security"
	"libtrack-backend/internal/service"

	"github.com/gorilla/mux"
	_ "github.com/lib/pq"
)

func main() {
	// Parse command-line flags
	configPath := flag.String("config", "config/config.dev.yaml", "Path to configuration file")
	flag.Parse()

	// Load configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize logger
	logger.Initialize(cfg.Log.Level, cfg.Log.Format)
	logger.Info("Starting Libtrack Backend...", "log_level", cfg.Log.Level, "log_format", cfg.Log.Format)
	logger.Info("Server configuration", "address", cfg.GetServerAddress())
	logger.Info("Database configuration", "host", cfg.Database.Host, "port", cfg.Database.Port, "database", cfg.Database.Database, "user", cfg.Database.User)

	// Initialize Database
	db, err := sql.Open("postgres", cfg.GetDatabaseConnectionString())
	if err != nil {
		logger.Error("Failed to connect to database", "error", err)
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	// Test database connection
	if err := db.Ping(); err != nil {
		logger.Error("Failed to ping database", "error", err)
		log.Fatalf("Failed to ping database: %v", err)
	}
	logger.Info("Database connection established")

	// Initialize Repositories
	store := postgres.NewStore(db)

	// Initialize Security
	tokenManager := security.NewTokenManager(cfg.JWT.Secret)
	staffAuth := httpapi.NewStaffAuthMiddleware(tokenManager)

	// Initialize Services
	lendingSvc := service.NewLendingService(
		store.AssetRepository,
		store.BorrowerRepository,
		store.LoanRepository,
	)
	catalogSvc := service.NewCatalogService(store.AssetRepository, store.LoanRepository)
	circulationSvc := service.NewCirculationService(store.LoanRepository)

	// Initialize HTTP handlers
	kioskHandler := httpapi.NewKioskHandler(lendingSvc)
	adminHandler := httpapi.NewAdminHandler(catalogSvc, lendingSvc, circulationSvc)

	router := mux.NewRouter()
	httpapi.RegisterRoutes(router, kioskHandler, adminHandler, staffAuth)

	logger.Info("HTTP server listening", "address", cfg.GetServerAddress())
	if err := http.ListenAndServe(cfg.GetServerAddress(), router); err != nil {
		logger.Error("HTTP server error", "error", err)
		log.Fatalf("Failed to serve: %v", err)
	}
}
