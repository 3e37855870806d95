package jobs

import (
	"motorcycle-rental-backend/internal/config"
	"motorcycle-rental-backend/internal/logger"
	"motorcycle-rental-backend/internal/repository"
)

// JobRunner coordinates all scheduled jobs
type JobRunner struct {
	rentalRepo repository.RentalRepository
	noteRepo   repository.NotificationRepository
	config     *config.Config
}

// NewJobRunner creates a new job runner with all dependencies
func NewJobRunner(rentalRepo repository.RentalRepository, noteRepo repository.NotificationRepository, cfg *config.Config) *JobRunner {
	return &JobRunner{
		rentalRepo: rentalRepo,
		noteRepo:   noteRepo,
		config:     cfg,
	}
}

// Config exposes the configuration for schedule registration
func (jr *JobRunner) Config() *config.Config {
	return jr.config
}

// runWithRecovery wraps job execution with panic recovery
func (jr *JobRunner) runWithRecovery(jobName string, jobFunc func()) {
	defer func() {
		if r := recover(); r != nil {
			logger.Error("Job panicked", "job", jobName, "panic", r)
		}
	}()

	logger.Info("Starting job", "job", jobName)
	jobFunc()
	logger.Info("Job completed", "job", jobName)
}
