package main

import (
	"database/sql"
	"flag"
	"log"
	"net/http"

	api "irentstuff-transactions/internal/api/http"
	"irentstuff-transactions/internal/client"
	"irentstuff-transactions/internal/config"
	"irentstuff-transactions/internal/logger"
	"irentstuff-transactions/internal/repository/postgres"
	"irentstuff-transactions/internal/service"

	_ "github.com/lib/pq"
)

func main() {
	configPath := flag.String("config", "config/config.dev.yaml", "Path to configuration file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger.Initialize(cfg.Log.Level, cfg.Log.Format)
	logger.Info("Starting iRentStuff transactions backend...", "log_level", cfg.Log.Level, "log_format", cfg.Log.Format)
	logger.Info("Server configuration", "address", cfg.GetServerAddress())
	logger.Info("Database configuration", "host", cfg.Database.Host, "port", cfg.Database.Port, "database", cfg.Database.Database, "user", cfg.Database.User)
	logger.Info("Collaborators", "auth_mode", cfg.Auth.Mode, "items_base_url", cfg.Items.BaseURL, "messages_url", cfg.Messages.URL)

	// No further work is possible without the transactions store, so a
	// failed connection at startup is fatal.
	db, err := sql.Open("postgres", cfg.GetDatabaseConnectionString())
	if err != nil {
		logger.Error("Failed to connect to database", "error", err)
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		logger.Error("Failed to ping database", "error", err)
		log.Fatalf("Failed to ping database: %v", err)
	}
	logger.Info("Database connection established")

	store := postgres.NewStore(db)

	var verifier client.IdentityVerifier
	if cfg.Auth.Mode == "jwt" {
		verifier = client.NewJWTVerifier(cfg.Auth.Secret)
	} else {
		verifier = client.NewRemoteVerifier(cfg.Auth.Endpoint)
	}
	items := client.NewItemsGateway(cfg.Items.BaseURL)
	notifier := client.NewWebsocketNotifier(cfg.Messages.URL)

	admission := service.NewAdmissionController(store.RentalRepository)
	rentalSvc := service.NewRentalService(store.RentalRepository, verifier, items, notifier, admission)
	purchaseSvc := service.NewPurchaseService(store.PurchaseRepository, verifier, items, notifier, admission)

	router := api.NewRouter(rentalSvc, purchaseSvc)

	logger.Info("HTTP server listening", "address", cfg.GetServerAddress())
	if err := http.ListenAndServe(cfg.GetServerAddress(), router); err != nil {
		logger.Error("HTTP server error", "error", err)
		log.Fatalf("Failed to serve: %v", err)
	}
}
