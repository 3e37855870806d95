package postgres_test

import (
	"context"
	"testing"
	"time"

	"motorcycle-rental-backend/internal/domain"
	"motorcycle-rental-backend/internal/repository/postgres"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
)

func startOfTodayUTC() time.Time {
	now := time.Now().UTC()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
}

var rentalColumns = []string{
	"id", "motorcycle_id", "delivery_driver_id", "start_date", "end_date",
	"expected_end_date", "actual_end_date", "plan_days", "daily_rate_cents",
	"total_cost_cents", "created_on",
}

func TestRentalRepository_Create(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := postgres.NewRentalRepository(db)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		start := time.Date(2024, 6, 2, 0, 0, 0, 0, time.UTC)
		rental := &domain.Rental{
			ID:               "rental-1",
			MotorcycleID:     "moto-1",
			DeliveryDriverID: "driver-1",
			StartDate:        start,
			EndDate:          start.AddDate(0, 0, 6),
			ExpectedEndDate:  start.AddDate(0, 0, 6),
			PlanDays:         7,
			DailyRateCents:   3000,
		}

		mock.ExpectExec("INSERT INTO rentals").
			WithArgs(rental.ID, rental.MotorcycleID, rental.DeliveryDriverID, rental.StartDate, rental.EndDate, rental.ExpectedEndDate, rental.PlanDays, rental.DailyRateCents, sqlmock.AnyArg()).
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := repo.Create(ctx, rental)
		assert.NoError(t, err)
	})
}

func TestRentalRepository_GetByID(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := postgres.NewRentalRepository(db)
	ctx := context.Background()

	t.Run("OpenRental", func(t *testing.T) {
		start := time.Date(2024, 6, 2, 0, 0, 0, 0, time.UTC)
		rows := sqlmock.NewRows(rentalColumns).
			AddRow("rental-1", "moto-1", "driver-1", start, start.AddDate(0, 0, 6), start.AddDate(0, 0, 6), nil, 7, 3000, nil, time.Now())

		mock.ExpectQuery("SELECT (.+) FROM rentals WHERE id = \\$1").
			WithArgs("rental-1").
			WillReturnRows(rows)

		rental, err := repo.GetByID(ctx, "rental-1")
		assert.NoError(t, err)
		assert.NotNil(t, rental)
		assert.Equal(t, domain.RentalStatusOpen, rental.Status())
		assert.Nil(t, rental.TotalCostCents)
	})

	t.Run("ClosedRental", func(t *testing.T) {
		start := time.Date(2024, 6, 2, 0, 0, 0, 0, time.UTC)
		returned := start.AddDate(0, 0, 6)
		rows := sqlmock.NewRows(rentalColumns).
			AddRow("rental-2", "moto-1", "driver-1", start, start.AddDate(0, 0, 6), start.AddDate(0, 0, 6), returned, 7, 3000, int64(21000), time.Now())

		mock.ExpectQuery("SELECT (.+) FROM rentals WHERE id = \\$1").
			WithArgs("rental-2").
			WillReturnRows(rows)

		rental, err := repo.GetByID(ctx, "rental-2")
		assert.NoError(t, err)
		assert.Equal(t, domain.RentalStatusClosed, rental.Status())
		assert.Equal(t, int64(21000), *rental.TotalCostCents)
	})

	t.Run("NotFound", func(t *testing.T) {
		mock.ExpectQuery("SELECT (.+) FROM rentals WHERE id = \\$1").
			WithArgs("missing").
			WillReturnRows(sqlmock.NewRows(rentalColumns))

		rental, err := repo.GetByID(ctx, "missing")
		assert.Nil(t, rental)
		assert.True(t, domain.IsNotFound(err))
	})
}

func TestRentalRepository_Update(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := postgres.NewRentalRepository(db)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		returned := time.Date(2024, 6, 8, 0, 0, 0, 0, time.UTC)
		total := int64(21000)
		rental := &domain.Rental{ID: "rental-1", ActualEndDate: &returned, TotalCostCents: &total}

		mock.ExpectExec("UPDATE rentals SET actual_end_date").
			WithArgs(rental.ActualEndDate, rental.TotalCostCents, rental.ID).
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := repo.Update(ctx, rental)
		assert.NoError(t, err)
	})

	t.Run("NotFound", func(t *testing.T) {
		returned := time.Now().UTC()
		total := int64(21000)
		rental := &domain.Rental{ID: "missing", ActualEndDate: &returned, TotalCostCents: &total}

		mock.ExpectExec("UPDATE rentals SET actual_end_date").
			WithArgs(rental.ActualEndDate, rental.TotalCostCents, rental.ID).
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := repo.Update(ctx, rental)
		assert.True(t, domain.IsNotFound(err))
	})
}

func TestRentalRepository_ListOpenByMotorcycle(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := postgres.NewRentalRepository(db)
	ctx := context.Background()

	t.Run("HasOpenRental", func(t *testing.T) {
		start := time.Date(2024, 6, 2, 0, 0, 0, 0, time.UTC)
		rows := sqlmock.NewRows(rentalColumns).
			AddRow("rental-1", "moto-1", "driver-1", start, start.AddDate(0, 0, 6), start.AddDate(0, 0, 6), nil, 7, 3000, nil, time.Now())

		mock.ExpectQuery("SELECT (.+) FROM rentals").
			WithArgs("moto-1", sqlmock.AnyArg()).
			WillReturnRows(rows)

		rentals, err := repo.ListOpenByMotorcycle(ctx, "moto-1")
		assert.NoError(t, err)
		assert.Len(t, rentals, 1)
	})

	t.Run("NoOpenRentals", func(t *testing.T) {
		mock.ExpectQuery("SELECT (.+) FROM rentals").
			WithArgs("moto-2", sqlmock.AnyArg()).
			WillReturnRows(sqlmock.NewRows(rentalColumns))

		rentals, err := repo.ListOpenByMotorcycle(ctx, "moto-2")
		assert.NoError(t, err)
		assert.Empty(t, rentals)
	})

	// An unreturned rental whose planned window has elapsed no longer holds
	// the motorcycle: the query bounds on expected_end_date with today's
	// UTC date, so such rows are excluded server-side.
	t.Run("ElapsedWindowExcluded", func(t *testing.T) {
		mock.ExpectQuery("SELECT (.+) FROM rentals WHERE motorcycle_id = \\$1 AND actual_end_date IS NULL AND expected_end_date >= \\$2").
			WithArgs("moto-3", startOfTodayUTC()).
			WillReturnRows(sqlmock.NewRows(rentalColumns))

		rentals, err := repo.ListOpenByMotorcycle(ctx, "moto-3")
		assert.NoError(t, err)
		assert.Empty(t, rentals)
	})
}

func TestRentalRepository_ListOverdue(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := postgres.NewRentalRepository(db)
	ctx := context.Background()

	start := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	rows := sqlmock.NewRows(rentalColumns).
		AddRow("rental-1", "moto-1", "driver-1", start, start.AddDate(0, 0, 6), start.AddDate(0, 0, 6), nil, 7, 3000, nil, time.Now())

	mock.ExpectQuery("SELECT (.+) FROM rentals").
		WithArgs(sqlmock.AnyArg()).
		WillReturnRows(rows)

	rentals, err := repo.ListOverdue(ctx)
	assert.NoError(t, err)
	assert.Len(t, rentals, 1)
	assert.Equal(t, "rental-1", rentals[0].ID)
}
