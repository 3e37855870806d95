package messaging

import (
	"context"
	"encoding/json"

	"motorcycle-rental-backend/internal/domain"
	"motorcycle-rental-backend/internal/logger"
)

// Publisher emits fleet-registration events. Publish failures surface to
// the registration flow: a registration whose event cannot be published
// does not silently succeed.
type Publisher struct {
	broker Broker
}

func NewPublisher(broker Broker) *Publisher {
	return &Publisher{broker: broker}
}

func (p *Publisher) PublishMotorcycleRegistered(ctx context.Context, m *domain.Motorcycle) error {
	logger.Info("Publishing motorcycle registered event", "motorcycleID", m.ID)

	event := NewMotorcycleRegisteredEvent(m)
	body, err := json.Marshal(event)
	if err != nil {
		return domain.Unavailable("failed to serialize motorcycle registered event", err)
	}

	if err := p.broker.Publish(ctx, body); err != nil {
		logger.Error("Failed to publish motorcycle registered event", "motorcycleID", m.ID, "error", err)
		return domain.Unavailable("failed to publish motorcycle registered event", err)
	}

	logger.Info("Motorcycle registered event published", "motorcycleID", m.ID)
	return nil
}
