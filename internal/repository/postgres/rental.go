package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"motorcycle-rental-backend/internal/domain"
	"motorcycle-rental-backend/internal/repository"
)

type rentalRepository struct {
	db *sql.DB
}

func NewRentalRepository(db *sql.DB) repository.RentalRepository {
	return &rentalRepository{db: db}
}

const rentalColumns = `id, motorcycle_id, delivery_driver_id, start_date, end_date, expected_end_date, actual_end_date, plan_days, daily_rate_cents, total_cost_cents, created_on`

func (r *rentalRepository) Create(ctx context.Context, rt *domain.Rental) error {
	query := `INSERT INTO rentals (id, motorcycle_id, delivery_driver_id, start_date, end_date, expected_end_date, plan_days, daily_rate_cents, created_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	rt.CreatedOn = time.Now().UTC()
	_, err := r.db.ExecContext(ctx, query, rt.ID, rt.MotorcycleID, rt.DeliveryDriverID, rt.StartDate, rt.EndDate, rt.ExpectedEndDate, rt.PlanDays, rt.DailyRateCents, rt.CreatedOn)
	return err
}

func (r *rentalRepository) GetByID(ctx context.Context, id string) (*domain.Rental, error) {
	rt := &domain.Rental{}
	query := `SELECT ` + rentalColumns + ` FROM rentals WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).
		Scan(&rt.ID, &rt.MotorcycleID, &rt.DeliveryDriverID, &rt.StartDate, &rt.EndDate, &rt.ExpectedEndDate, &rt.ActualEndDate, &rt.PlanDays, &rt.DailyRateCents, &rt.TotalCostCents, &rt.CreatedOn)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.NotFound("rental %q not found", id)
	}
	if err != nil {
		return nil, err
	}
	return rt, nil
}

func (r *rentalRepository) Update(ctx context.Context, rt *domain.Rental) error {
	query := `UPDATE rentals SET actual_end_date = $1, total_cost_cents = $2 WHERE id = $3`
	result, err := r.db.ExecContext(ctx, query, rt.ActualEndDate, rt.TotalCostCents, rt.ID)
	if err != nil {
		return err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return domain.NotFound("rental %q not found", rt.ID)
	}
	return nil
}

// ListOpenByMotorcycle returns the unreturned rentals still inside their
// planned window. A rental whose expected end date has elapsed no longer
// holds the motorcycle, even if it was never returned.
func (r *rentalRepository) ListOpenByMotorcycle(ctx context.Context, motorcycleID string) ([]domain.Rental, error) {
	query := `SELECT ` + rentalColumns + ` FROM rentals
	          WHERE motorcycle_id = $1 AND actual_end_date IS NULL AND expected_end_date >= $2`
	rows, err := r.db.QueryContext(ctx, query, motorcycleID, todayUTC())
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanRentals(rows)
}

func (r *rentalRepository) ListOverdue(ctx context.Context) ([]domain.Rental, error) {
	query := `SELECT ` + rentalColumns + ` FROM rentals
	          WHERE actual_end_date IS NULL AND expected_end_date < $1`
	rows, err := r.db.QueryContext(ctx, query, time.Now().UTC())
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanRentals(rows)
}

func todayUTC() time.Time {
	now := time.Now().UTC()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
}

func scanRentals(rows *sql.Rows) ([]domain.Rental, error) {
	var rentals []domain.Rental
	for rows.Next() {
		var rt domain.Rental
		if err := rows.Scan(&rt.ID, &rt.MotorcycleID, &rt.DeliveryDriverID, &rt.StartDate, &rt.EndDate, &rt.ExpectedEndDate, &rt.ActualEndDate, &rt.PlanDays, &rt.DailyRateCents, &rt.TotalCostCents, &rt.CreatedOn); err != nil {
			return nil, err
		}
		rentals = append(rentals, rt)
	}
	return rentals, rows.Err()
}
