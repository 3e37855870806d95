package main

import (
	"context"
	"database/sql"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	_ "github.com/lib/pq"

	"motorcycle-rental-backend/internal/config"
	"motorcycle-rental-backend/internal/jobs"
	"motorcycle-rental-backend/internal/logger"
	"motorcycle-rental-backend/internal/messaging"
	"motorcycle-rental-backend/internal/repository/postgres"
	"motorcycle-rental-backend/internal/scheduler"
)

func main() {
	// Parse command-line flags
	configPath := flag.String("config", "config/config.dev.yaml", "Path to configuration file")
	runOnce := flag.String("run-once", "", "Run a specific job once and exit (e.g., 'sweep-overdue-rentals')")
	flag.Parse()

	// Load configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize logger
	logger.Initialize(cfg.Log.Level, cfg.Log.Format)
	logger.Info("Starting Motorcycle Rental Worker...", "log_level", cfg.Log.Level)

	// Initialize Database
	logger.Info("Connecting to database...", "host", cfg.Database.Host, "port", cfg.Database.Port)
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

	// Initialize Job Runner
	jobRunner := jobs.NewJobRunner(store.RentalRepository, store.NotificationRepository, cfg)

	// Check if running a single job
	if *runOnce != "" {
		logger.Info("Running job once", "job", *runOnce)
		runJobOnce(jobRunner, *runOnce)
		logger.Info("Job execution completed", "job", *runOnce)
		return
	}

	// Initialize Broker and Consumer
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
	logger.Info("Message broker connection established", "queue", cfg.Broker.Queue)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	consumer := messaging.NewConsumer(broker, store.NotificationRepository)
	consumerDone := make(chan error, 1)
	go func() {
		consumerDone <- consumer.Run(ctx)
	}()
	logger.Info("Registration event consumer is running")

	// Initialize Scheduler
	cronScheduler := scheduler.NewScheduler(jobRunner)
	cronScheduler.Start()
	logger.Info("Worker is running. Press Ctrl+C to stop.")

	// Wait for interrupt signal or consumer failure
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	select {
	case sig := <-sigChan:
		logger.Info("Received shutdown signal", "signal", sig.String())
	case err := <-consumerDone:
		if err != nil && err != context.Canceled {
			logger.Error("Consumer stopped unexpectedly", "error", err)
		}
	}

	// Graceful shutdown
	logger.Info("Shutting down worker...")
	cancel()
	cronScheduler.Stop()
	logger.Info("Worker stopped. Goodbye!")
}

// runJobOnce runs a specific job once and exits
func runJobOnce(jobRunner *jobs.JobRunner, jobName string) {
	switch jobName {
	case "sweep-overdue-rentals":
		jobRunner.SweepOverdueRentals()
	default:
		logger.Error("Unknown job name", "job", jobName)
		fmt.Printf("Available jobs:\n")
		fmt.Printf("  - sweep-overdue-rentals\n")
		os.Exit(1)
	}
}
