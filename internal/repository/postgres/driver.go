package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"motorcycle-rental-backend/internal/domain"
	"motorcycle-rental-backend/internal/repository"
)

type driverRepository struct {
	db *sql.DB
}

func NewDriverRepository(db *sql.DB) repository.DriverRepository {
	return &driverRepository{db: db}
}

func (r *driverRepository) Create(ctx context.Context, d *domain.DeliveryDriver) error {
	query := `INSERT INTO delivery_drivers (id, name, cnpj, birth_date, license_number, license_type, license_image_path, created_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	d.CreatedOn = time.Now().UTC()
	_, err := r.db.ExecContext(ctx, query, d.ID, d.Name, d.CNPJ, d.BirthDate, d.LicenseNumber, d.LicenseType, d.LicenseImagePath, d.CreatedOn)
	return err
}

func (r *driverRepository) GetByID(ctx context.Context, id string) (*domain.DeliveryDriver, error) {
	return r.getBy(ctx, `id`, id, "delivery driver %q not found", id)
}

func (r *driverRepository) GetByCNPJ(ctx context.Context, cnpj string) (*domain.DeliveryDriver, error) {
	return r.getBy(ctx, `cnpj`, cnpj, "delivery driver with cnpj %q not found", cnpj)
}

func (r *driverRepository) GetByLicenseNumber(ctx context.Context, licenseNumber string) (*domain.DeliveryDriver, error) {
	return r.getBy(ctx, `license_number`, licenseNumber, "delivery driver with license %q not found", licenseNumber)
}

func (r *driverRepository) getBy(ctx context.Context, column, value, notFoundFmt string, notFoundArg string) (*domain.DeliveryDriver, error) {
	d := &domain.DeliveryDriver{}
	query := `SELECT id, name, cnpj, birth_date, license_number, license_type, license_image_path, created_on
	          FROM delivery_drivers WHERE ` + column + ` = $1`
	err := r.db.QueryRowContext(ctx, query, value).
		Scan(&d.ID, &d.Name, &d.CNPJ, &d.BirthDate, &d.LicenseNumber, &d.LicenseType, &d.LicenseImagePath, &d.CreatedOn)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.NotFound(notFoundFmt, notFoundArg)
	}
	if err != nil {
		return nil, err
	}
	return d, nil
}

func (r *driverRepository) Update(ctx context.Context, d *domain.DeliveryDriver) error {
	query := `UPDATE delivery_drivers SET name = $1, license_image_path = $2 WHERE id = $3`
	result, err := r.db.ExecContext(ctx, query, d.Name, d.LicenseImagePath, d.ID)
	if err != nil {
		return err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return domain.NotFound("delivery driver %q not found", d.ID)
	}
	return nil
}
