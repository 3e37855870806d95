package domain

import "time"

type Motorcycle struct {
	ID           string    `json:"id"`
	Year         int       `json:"year"`
	Model        string    `json:"model"`
	LicensePlate string    `json:"license_plate"`
	CreatedOn    time.Time `json:"created_on"`
}
