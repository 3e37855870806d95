package pricing

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(n int) time.Time {
	return time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC).AddDate(0, 0, n)
}

func TestRateTable_Rate(t *testing.T) {
	rates := DefaultRates()

	t.Run("All plans present", func(t *testing.T) {
		tests := []struct {
			plan           Plan
			dailyRateCents int64
			penaltyPercent int64
		}{
			{PlanSevenDays, 3000, 20},
			{PlanFifteenDays, 2800, 40},
			{PlanThirtyDays, 2200, 0},
			{PlanFortyFiveDays, 2000, 0},
			{PlanFiftyDays, 1800, 0},
		}
		for _, tt := range tests {
			rate, err := rates.Rate(tt.plan)
			assert.NoError(t, err)
			assert.Equal(t, tt.dailyRateCents, rate.DailyRateCents)
			assert.Equal(t, tt.penaltyPercent, rate.PenaltyPercent)
		}
	})

	t.Run("Unknown plan fails, never defaults", func(t *testing.T) {
		_, err := rates.Rate(Plan(10))
		assert.ErrorIs(t, err, ErrInvalidPlan)
	})
}

func TestEngine_Quote_OnTimeReturn(t *testing.T) {
	engine := NewEngine(DefaultRates())

	// Returning on the planned end date charges exactly the base cost for
	// every plan.
	for _, plan := range []Plan{PlanSevenDays, PlanFifteenDays, PlanThirtyDays, PlanFortyFiveDays, PlanFiftyDays} {
		rate, err := DefaultRates().Rate(plan)
		require.NoError(t, err)

		b, err := engine.Quote(plan, rate.DailyRateCents, day(0), day(plan.Days()-1))
		require.NoError(t, err)

		assert.Equal(t, plan.Days(), b.ActualDays)
		assert.Equal(t, plan.Days(), b.PlanDays)
		assert.Equal(t, rate.DailyRateCents*int64(plan.Days()), b.BaseCents)
		assert.Equal(t, b.BaseCents, b.TotalCents)
		assert.Nil(t, b.PenaltyCents)
		assert.Nil(t, b.AdditionalCents)
	}
}

func TestEngine_Quote_EarlyReturn(t *testing.T) {
	engine := NewEngine(DefaultRates())

	t.Run("Seven day plan charges 20% of unused days", func(t *testing.T) {
		// Start day 0, return day 1: 2 actual days, 5 unused.
		b, err := engine.Quote(PlanSevenDays, 3000, day(0), day(1))
		require.NoError(t, err)

		assert.Equal(t, 2, b.ActualDays)
		assert.Equal(t, int64(21000), b.BaseCents)
		require.NotNil(t, b.PenaltyCents)
		assert.Equal(t, int64(3000), *b.PenaltyCents) // 3000 * 5 * 20%
		assert.Nil(t, b.AdditionalCents)
		assert.Equal(t, int64(24000), b.TotalCents)
	})

	t.Run("Fifteen day plan charges 40% of unused days", func(t *testing.T) {
		b, err := engine.Quote(PlanFifteenDays, 2800, day(0), day(9))
		require.NoError(t, err)

		assert.Equal(t, 10, b.ActualDays)
		assert.Equal(t, int64(42000), b.BaseCents)
		require.NotNil(t, b.PenaltyCents)
		assert.Equal(t, int64(5600), *b.PenaltyCents) // 2800 * 5 * 40%
		assert.Equal(t, int64(47600), b.TotalCents)
	})

	t.Run("Thirty day plan has no penalty despite early return", func(t *testing.T) {
		b, err := engine.Quote(PlanThirtyDays, 2200, day(0), day(4))
		require.NoError(t, err)

		assert.Equal(t, 5, b.ActualDays)
		require.NotNil(t, b.PenaltyCents)
		assert.Equal(t, int64(0), *b.PenaltyCents)
		assert.Equal(t, int64(66000), b.TotalCents)
	})
}

func TestEngine_Quote_LateReturn(t *testing.T) {
	engine := NewEngine(DefaultRates())

	t.Run("Flat late fee per extra day", func(t *testing.T) {
		// Start day 0, return day 9 on a 7-day plan: 10 actual days, 3 extra.
		b, err := engine.Quote(PlanSevenDays, 3000, day(0), day(9))
		require.NoError(t, err)

		assert.Equal(t, 10, b.ActualDays)
		assert.Equal(t, int64(21000), b.BaseCents)
		assert.Nil(t, b.PenaltyCents)
		require.NotNil(t, b.AdditionalCents)
		assert.Equal(t, int64(15000), *b.AdditionalCents) // 5000 * 3
		assert.Equal(t, int64(36000), b.TotalCents)
	})

	t.Run("Late fee is independent of the daily rate", func(t *testing.T) {
		b7, err := engine.Quote(PlanSevenDays, 3000, day(0), day(8))
		require.NoError(t, err)
		b50, err := engine.Quote(PlanFiftyDays, 1800, day(0), day(51))
		require.NoError(t, err)

		require.NotNil(t, b7.AdditionalCents)
		require.NotNil(t, b50.AdditionalCents)
		assert.Equal(t, *b7.AdditionalCents, *b50.AdditionalCents) // 2 extra days each
	})
}

func TestEngine_Quote_Errors(t *testing.T) {
	engine := NewEngine(DefaultRates())

	t.Run("Return before start date", func(t *testing.T) {
		_, err := engine.Quote(PlanSevenDays, 3000, day(5), day(2))
		assert.ErrorIs(t, err, ErrInvalidReturnDate)
	})

	t.Run("Unknown plan", func(t *testing.T) {
		_, err := engine.Quote(Plan(12), 3000, day(0), day(11))
		assert.ErrorIs(t, err, ErrInvalidPlan)
	})
}

func TestEngine_Quote_Deterministic(t *testing.T) {
	engine := NewEngine(DefaultRates())

	first, err := engine.Quote(PlanFifteenDays, 2800, day(0), day(6))
	require.NoError(t, err)
	second, err := engine.Quote(PlanFifteenDays, 2800, day(0), day(6))
	require.NoError(t, err)

	assert.Equal(t, first.TotalCents, second.TotalCents)
	assert.Equal(t, *first.PenaltyCents, *second.PenaltyCents)
}

func TestEngine_Quote_TimeOfDayIgnored(t *testing.T) {
	engine := NewEngine(DefaultRates())

	morning := time.Date(2024, 3, 1, 8, 0, 0, 0, time.UTC)
	lateNight := time.Date(2024, 3, 7, 23, 59, 0, 0, time.UTC)

	b, err := engine.Quote(PlanSevenDays, 3000, morning, lateNight)
	require.NoError(t, err)
	assert.Equal(t, 7, b.ActualDays)
	assert.Equal(t, int64(21000), b.TotalCents)
}

func TestEngine_Quote_SubstituteRateSchedule(t *testing.T) {
	// The engine works against whatever table it is constructed with.
	custom := RateTable{
		PlanSevenDays: {DailyRateCents: 1000, PenaltyPercent: 50},
	}
	engine := NewEngine(custom)

	b, err := engine.Quote(PlanSevenDays, 1000, day(0), day(2))
	require.NoError(t, err)
	require.NotNil(t, b.PenaltyCents)
	assert.Equal(t, int64(2000), *b.PenaltyCents) // 1000 * 4 unused * 50%
	assert.Equal(t, int64(9000), b.TotalCents)
}
