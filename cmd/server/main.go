package main

import (
	"database/sql"
	"flag"
	"log"
	"net/http"

	_ "github.com/lib/pq"

	httpapi "motorcycle-rental-backend/internal/api/http"
	"motorcycle-rental-backend/internal/config"
	"motorcycle-rental-backend/internal/logger"
	"motorcycle-rental-backend/internal/messaging"
	"motorcycle-rental-backend/internal/pricing"
	"motorcycle-rental-backend/internal/repository/postgres"
	"motorcycle-rental-backend/internal/service"
	"motorcycle-rental-backend/internal/storage"
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
	logger.Info("Starting Motorcycle Rental Backend...", "log_level", cfg.Log.Level, "log_format", cfg.Log.Format)
	logger.Info("Server configuration", "address", cfg.GetServerAddress())
	logger.Info("Database configuration", "host", cfg.Database.Host, "port", cfg.Database.Port, "database", cfg.Database.Database, "user", cfg.Database.User)
	logger.Info("Broker configuration", "exchange", cfg.Broker.Exchange, "queue", cfg.Broker.Queue)

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

	// Initialize Broker
	broker, err := messaging.NewRabbitMQBroker(messaging.RabbitMQConfig{
		URL:        cfg.Broker.URL,
		Exchange:   cfg.Broker.Exchange,
		Queue:      cfg.Broker.Queue,
		RoutingKey: cfg.Broker.RoutingKey,
	})
	if err != nil {
		logger.Error("Failed to connect to message broker", "error", err)
		log.Fatalf("Failed to connect to message broker: %v", err)
	}
	defer broker.Close()
	logger.Info("Message broker connection established", "exchange", cfg.Broker.Exchange)

	// Initialize Storage
	licenseStorage, err := storage.NewLocalStorage(cfg.Storage.UploadDir)
	if err != nil {
		logger.Error("Failed to initialize storage", "error", err, "upload_dir", cfg.Storage.UploadDir)
		log.Fatalf("Failed to initialize storage: %v", err)
	}

	// Initialize Services
	publisher := messaging.NewPublisher(broker)
	motoSvc := service.NewMotorcycleService(store.MotorcycleRepository, publisher)
	driverSvc := service.NewDriverService(store.DriverRepository, licenseStorage)
	rentalSvc := service.NewRentalService(
		store.RentalRepository,
		store.MotorcycleRepository,
		store.DriverRepository,
		pricing.DefaultRates(),
	)
	noteSvc := service.NewNotificationService(store.NotificationRepository)

	// Set up HTTP server
	router := httpapi.NewRouter(motoSvc, driverSvc, rentalSvc, noteSvc, db, broker)

	logger.Info("HTTP server listening", "address", cfg.GetServerAddress())
	if err := http.ListenAndServe(cfg.GetServerAddress(), router); err != nil {
		logger.Error("HTTP server error", "error", err)
		log.Fatalf("Failed to serve: %v", err)
	}
}
