package jobs

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"motorcycle-rental-backend/internal/domain"
	"motorcycle-rental-backend/internal/logger"
)

// SweepOverdueRentals records a notification log entry for every open
// rental past its expected end date, giving operations a nightly audit
// trail of outstanding fleet vehicles.
func (jr *JobRunner) SweepOverdueRentals() {
	jr.runWithRecovery("SweepOverdueRentals", func() {
		ctx := context.Background()

		overdue, err := jr.rentalRepo.ListOverdue(ctx)
		if err != nil {
			logger.Error("Failed to list overdue rentals", "error", err)
			return
		}

		count := 0
		for _, rental := range overdue {
			note := &domain.NotificationLog{
				ID:           uuid.NewString(),
				MotorcycleID: rental.MotorcycleID,
				Message: fmt.Sprintf("Rental %s overdue: expected return on %s",
					rental.ID, rental.ExpectedEndDate.Format("2006-01-02")),
			}
			if err := jr.noteRepo.Create(ctx, note); err != nil {
				logger.Error("Failed to record overdue notification", "rentalID", rental.ID, "error", err)
				continue
			}
			count++
		}

		logger.Info("Overdue rental sweep finished", "overdue", len(overdue), "recorded", count)
	})
}
