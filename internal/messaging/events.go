package messaging

import (
	"time"

	"motorcycle-rental-backend/internal/domain"
)

// MotorcycleRegisteredEvent is the wire envelope published once per
// successful motorcycle registration. Timestamps are serialized as
// ISO-8601 UTC.
type MotorcycleRegisteredEvent struct {
	ID           string    `json:"id"`
	Year         int       `json:"year"`
	Model        string    `json:"model"`
	LicensePlate string    `json:"licensePlate"`
	Timestamp    time.Time `json:"timestamp"`
}

// NewMotorcycleRegisteredEvent builds the envelope for a freshly
// registered motorcycle. The timestamp is read here, once, by the caller
// side of the pipeline.
func NewMotorcycleRegisteredEvent(m *domain.Motorcycle) MotorcycleRegisteredEvent {
	return MotorcycleRegisteredEvent{
		ID:           m.ID,
		Year:         m.Year,
		Model:        m.Model,
		LicensePlate: m.LicensePlate,
		Timestamp:    time.Now().UTC(),
	}
}
