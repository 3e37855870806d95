package domain

import "time"

// NotificationLog is the derived record written by the event consumer for
// qualifying motorcycle-registered events. Insert-only: entries are never
// updated or deleted.
type NotificationLog struct {
	ID           string    `json:"id"`
	MotorcycleID string    `json:"motorcycle_id"`
	Message      string    `json:"message"`
	CreatedOn    time.Time `json:"created_on"`
}
