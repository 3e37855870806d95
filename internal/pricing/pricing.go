package pricing

import (
	"errors"
	"fmt"
	"time"
)

// LateFeeCentsPerDay is the flat surcharge per day past the planned end
// date. Lateness is penalized uniformly, independent of plan or daily rate.
const LateFeeCentsPerDay int64 = 5000

var (
	ErrInvalidPlan       = errors.New("invalid rental plan")
	ErrInvalidReturnDate = errors.New("return date precedes start date")
)

// Breakdown is the cost result for a returned rental. PenaltyCents is set
// only on early return and AdditionalCents only on late return; an on-time
// return carries neither and TotalCents equals BaseCents.
type Breakdown struct {
	TotalCents      int64
	BaseCents       int64
	PenaltyCents    *int64
	AdditionalCents *int64
	ActualDays      int
	PlanDays        int
}

// Engine computes rental costs against an injected rate table. Construct
// one per process; the zero value is not usable.
type Engine struct {
	rates RateTable
}

func NewEngine(rates RateTable) *Engine {
	return &Engine{rates: rates}
}

// Quote computes the total cost of a rental returned on returnDate.
//
// The base cost always covers the full planned duration. An early return
// adds a penalty on the unused days at the plan's penalty rate; a late
// return adds the flat per-day late fee. dailyRateCents is the rate
// snapshotted at rental creation, not the engine's current table rate.
//
// Quote is pure: identical inputs always produce identical output, and it
// never reads the clock.
func (e *Engine) Quote(plan Plan, dailyRateCents int64, startDate, returnDate time.Time) (Breakdown, error) {
	rate, err := e.rates.Rate(plan)
	if err != nil {
		return Breakdown{}, err
	}

	planDays := plan.Days()
	actualDays := inclusiveDays(startDate, returnDate)
	if actualDays < 1 {
		return Breakdown{}, fmt.Errorf("%w: start %s, return %s",
			ErrInvalidReturnDate, startDate.Format("2006-01-02"), returnDate.Format("2006-01-02"))
	}

	b := Breakdown{
		BaseCents:  dailyRateCents * int64(planDays),
		ActualDays: actualDays,
		PlanDays:   planDays,
	}

	switch {
	case actualDays < planDays:
		unusedDays := int64(planDays - actualDays)
		penalty := dailyRateCents * unusedDays * rate.PenaltyPercent / 100
		b.PenaltyCents = &penalty
	case actualDays > planDays:
		extraDays := int64(actualDays - planDays)
		additional := LateFeeCentsPerDay * extraDays
		b.AdditionalCents = &additional
	}

	b.TotalCents = b.BaseCents
	if b.PenaltyCents != nil {
		b.TotalCents += *b.PenaltyCents
	}
	if b.AdditionalCents != nil {
		b.TotalCents += *b.AdditionalCents
	}
	return b, nil
}

// inclusiveDays counts calendar days between the two dates with both ends
// included. Time-of-day and zone offsets are discarded first so a rental
// returned late in the evening of its start day still counts one day.
func inclusiveDays(start, end time.Time) int {
	startDay := time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, time.UTC)
	endDay := time.Date(end.Year(), end.Month(), end.Day(), 0, 0, 0, 0, time.UTC)
	return int(endDay.Sub(startDay).Hours()/24) + 1
}
