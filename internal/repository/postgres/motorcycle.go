package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"motorcycle-rental-backend/internal/domain"
	"motorcycle-rental-backend/internal/repository"
)

type motorcycleRepository struct {
	db *sql.DB
}

func NewMotorcycleRepository(db *sql.DB) repository.MotorcycleRepository {
	return &motorcycleRepository{db: db}
}

func (r *motorcycleRepository) Create(ctx context.Context, m *domain.Motorcycle) error {
	query := `INSERT INTO motorcycles (id, year, model, license_plate, created_on)
	          VALUES ($1, $2, $3, $4, $5)`
	m.CreatedOn = time.Now().UTC()
	_, err := r.db.ExecContext(ctx, query, m.ID, m.Year, m.Model, m.LicensePlate, m.CreatedOn)
	return err
}

func (r *motorcycleRepository) GetByID(ctx context.Context, id string) (*domain.Motorcycle, error) {
	m := &domain.Motorcycle{}
	query := `SELECT id, year, model, license_plate, created_on FROM motorcycles WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(&m.ID, &m.Year, &m.Model, &m.LicensePlate, &m.CreatedOn)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.NotFound("motorcycle %q not found", id)
	}
	if err != nil {
		return nil, err
	}
	return m, nil
}

func (r *motorcycleRepository) GetByLicensePlate(ctx context.Context, plate string) (*domain.Motorcycle, error) {
	m := &domain.Motorcycle{}
	query := `SELECT id, year, model, license_plate, created_on FROM motorcycles WHERE license_plate = $1`
	err := r.db.QueryRowContext(ctx, query, plate).Scan(&m.ID, &m.Year, &m.Model, &m.LicensePlate, &m.CreatedOn)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.NotFound("motorcycle with plate %q not found", plate)
	}
	if err != nil {
		return nil, err
	}
	return m, nil
}

func (r *motorcycleRepository) List(ctx context.Context, plateFilter string) ([]domain.Motorcycle, error) {
	query := `SELECT id, year, model, license_plate, created_on FROM motorcycles`
	args := []interface{}{}
	if plateFilter != "" {
		query += ` WHERE license_plate = $1`
		args = append(args, plateFilter)
	}
	query += ` ORDER BY created_on DESC`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var motorcycles []domain.Motorcycle
	for rows.Next() {
		var m domain.Motorcycle
		if err := rows.Scan(&m.ID, &m.Year, &m.Model, &m.LicensePlate, &m.CreatedOn); err != nil {
			return nil, err
		}
		motorcycles = append(motorcycles, m)
	}
	return motorcycles, rows.Err()
}

func (r *motorcycleRepository) Update(ctx context.Context, m *domain.Motorcycle) error {
	query := `UPDATE motorcycles SET license_plate = $1 WHERE id = $2`
	result, err := r.db.ExecContext(ctx, query, m.LicensePlate, m.ID)
	if err != nil {
		return err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return domain.NotFound("motorcycle %q not found", m.ID)
	}
	return nil
}

func (r *motorcycleRepository) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM motorcycles WHERE id = $1`, id)
	if err != nil {
		return err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return domain.NotFound("motorcycle %q not found", id)
	}
	return nil
}

func (r *motorcycleRepository) HasRentals(ctx context.Context, motorcycleID string) (bool, error) {
	var count int64
	query := `SELECT count(*) FROM rentals WHERE motorcycle_id = $1`
	if err := r.db.QueryRowContext(ctx, query, motorcycleID).Scan(&count); err != nil {
		return false, err
	}
	return count > 0, nil
}
