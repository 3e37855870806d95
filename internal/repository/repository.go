package repository

import (
	"context"
	"motorcycle-rental-backend/internal/domain"
)

type MotorcycleRepository interface {
	Create(ctx context.Context, m *domain.Motorcycle) error
	GetByID(ctx context.Context, id string) (*domain.Motorcycle, error)
	GetByLicensePlate(ctx context.Context, plate string) (*domain.Motorcycle, error)
	List(ctx context.Context, plateFilter string) ([]domain.Motorcycle, error)
	Update(ctx context.Context, m *domain.Motorcycle) error
	Delete(ctx context.Context, id string) error
	HasRentals(ctx context.Context, motorcycleID string) (bool, error)
}

type DriverRepository interface {
	Create(ctx context.Context, d *domain.DeliveryDriver) error
	GetByID(ctx context.Context, id string) (*domain.DeliveryDriver, error)
	GetByCNPJ(ctx context.Context, cnpj string) (*domain.DeliveryDriver, error)
	GetByLicenseNumber(ctx context.Context, licenseNumber string) (*domain.DeliveryDriver, error)
	Update(ctx context.Context, d *domain.DeliveryDriver) error
}

type RentalRepository interface {
	Create(ctx context.Context, r *domain.Rental) error
	GetByID(ctx context.Context, id string) (*domain.Rental, error)
	Update(ctx context.Context, r *domain.Rental) error
	// ListOpenByMotorcycle returns unreturned rentals whose expected end
	// date has not yet elapsed. Past-window rentals do not hold the
	// motorcycle even when no return was ever recorded.
	ListOpenByMotorcycle(ctx context.Context, motorcycleID string) ([]domain.Rental, error)
	ListOverdue(ctx context.Context) ([]domain.Rental, error)
}

type NotificationRepository interface {
	Create(ctx context.Context, n *domain.NotificationLog) error
	List(ctx context.Context, limit, offset int32) ([]domain.NotificationLog, int32, error)
}
