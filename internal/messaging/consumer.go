package messaging

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	"motorcycle-rental-backend/internal/domain"
	"motorcycle-rental-backend/internal/logger"
	"motorcycle-rental-backend/internal/repository"
)

// NotificationYear is the model year the consumer reacts to. Events for
// any other year are acknowledged and dropped.
const NotificationYear = 2024

// Consumer subscribes to the registration event queue and records a
// notification log entry for each qualifying event. Messages are processed
// one at a time in delivery order and acknowledged only after the record
// is durably persisted.
type Consumer struct {
	broker   Broker
	noteRepo repository.NotificationRepository
}

func NewConsumer(broker Broker, noteRepo repository.NotificationRepository) *Consumer {
	return &Consumer{broker: broker, noteRepo: noteRepo}
}

// Run consumes until ctx is cancelled or the delivery channel closes.
func (c *Consumer) Run(ctx context.Context) error {
	deliveries, err := c.broker.Consume(ctx)
	if err != nil {
		return fmt.Errorf("consumer failed to subscribe: %w", err)
	}

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case d, ok := <-deliveries:
			if !ok {
				return nil
			}
			c.handle(ctx, d)
		}
	}
}

func (c *Consumer) handle(ctx context.Context, d Delivery) {
	var event MotorcycleRegisteredEvent
	if err := json.Unmarshal(d.Body, &event); err != nil {
		// Poison message: never retried.
		logger.Error("Failed to decode motorcycle registered event", "error", err)
		if nackErr := d.Nack(false); nackErr != nil {
			logger.Error("Failed to nack poison message", "error", nackErr)
		}
		return
	}

	if event.Year != NotificationYear {
		if err := d.Ack(); err != nil {
			logger.Error("Failed to ack filtered message", "motorcycleID", event.ID, "error", err)
		}
		return
	}

	note := &domain.NotificationLog{
		ID:           uuid.NewString(),
		MotorcycleID: event.ID,
		Message:      fmt.Sprintf("%d Motorcycle registered: %s - %s", event.Year, event.Model, event.LicensePlate),
	}

	if err := c.noteRepo.Create(ctx, note); err != nil {
		// Best-effort on store outage: the message is dropped, not requeued.
		logger.Error("Failed to persist notification", "motorcycleID", event.ID, "error", err)
		if nackErr := d.Nack(false); nackErr != nil {
			logger.Error("Failed to nack message after persistence failure", "error", nackErr)
		}
		return
	}

	if err := d.Ack(); err != nil {
		logger.Error("Failed to ack processed message", "motorcycleID", event.ID, "error", err)
		return
	}
	logger.Info("Notification recorded", "motorcycleID", event.ID, "notificationID", note.ID)
}
