package domain

import "time"

type RentalStatus string

const (
	RentalStatusOpen   RentalStatus = "OPEN"
	RentalStatusClosed RentalStatus = "CLOSED"
)

type Rental struct {
	ID               string     `json:"id"`
	MotorcycleID     string     `json:"motorcycle_id"`
	DeliveryDriverID string     `json:"delivery_driver_id"`
	StartDate        time.Time  `json:"start_date"`
	EndDate          time.Time  `json:"end_date"`
	ExpectedEndDate  time.Time  `json:"expected_end_date"`
	ActualEndDate    *time.Time `json:"actual_end_date,omitempty"`
	PlanDays         int        `json:"plan_days"`
	// DailyRateCents is the rate snapshot taken from the rate table when the
	// rental was created. Cost calculations use this value, not the live table.
	DailyRateCents int64     `json:"daily_rate_cents"`
	TotalCostCents *int64    `json:"total_cost_cents,omitempty"`
	CreatedOn      time.Time `json:"created_on"`
}

// Status derives the lifecycle state: a rental is closed exactly when a
// return date has been recorded.
func (r *Rental) Status() RentalStatus {
	if r.ActualEndDate != nil {
		return RentalStatusClosed
	}
	return RentalStatusOpen
}
