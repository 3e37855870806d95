package pricing

import "fmt"

// Plan is an enumerated rental duration in days. Only the five listed
// durations exist; there are no intermediate plans.
type Plan int

const (
	PlanSevenDays     Plan = 7
	PlanFifteenDays   Plan = 15
	PlanThirtyDays    Plan = 30
	PlanFortyFiveDays Plan = 45
	PlanFiftyDays     Plan = 50
)

// Days returns the plan duration in days.
func (p Plan) Days() int {
	return int(p)
}

// PlanRate holds the pricing parameters bound to a plan. Monetary values
// are integer cents; PenaltyPercent is the share of each unused day's rate
// charged on early return.
type PlanRate struct {
	DailyRateCents int64
	PenaltyPercent int64
}

// RateTable maps each plan to its pricing parameters. The table is
// read-only after construction and safe for concurrent reads.
type RateTable map[Plan]PlanRate

// DefaultRates returns the standard rate schedule.
func DefaultRates() RateTable {
	return RateTable{
		PlanSevenDays:     {DailyRateCents: 3000, PenaltyPercent: 20},
		PlanFifteenDays:   {DailyRateCents: 2800, PenaltyPercent: 40},
		PlanThirtyDays:    {DailyRateCents: 2200, PenaltyPercent: 0},
		PlanFortyFiveDays: {DailyRateCents: 2000, PenaltyPercent: 0},
		PlanFiftyDays:     {DailyRateCents: 1800, PenaltyPercent: 0},
	}
}

// Rate looks up the pricing parameters for a plan. Unknown plans fail;
// there is no default rate.
func (t RateTable) Rate(p Plan) (PlanRate, error) {
	rate, ok := t[p]
	if !ok {
		return PlanRate{}, fmt.Errorf("%w: %d days", ErrInvalidPlan, int(p))
	}
	return rate, nil
}
