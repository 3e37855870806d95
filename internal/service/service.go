package service

import (
	"context"
	"io"
	"time"

	"motorcycle-rental-backend/internal/domain"
	"motorcycle-rental-backend/internal/pricing"
)

type MotorcycleService interface {
	Create(ctx context.Context, id string, year int, model, licensePlate string) (*domain.Motorcycle, error)
	Get(ctx context.Context, id string) (*domain.Motorcycle, error)
	List(ctx context.Context, plateFilter string) ([]domain.Motorcycle, error)
	UpdateLicensePlate(ctx context.Context, id, licensePlate string) (*domain.Motorcycle, error)
	Delete(ctx context.Context, id string) error
}

type DriverService interface {
	Create(ctx context.Context, driver *domain.DeliveryDriver) (*domain.DeliveryDriver, error)
	Get(ctx context.Context, id string) (*domain.DeliveryDriver, error)
	UpdateLicenseImage(ctx context.Context, id, fileName string, image io.Reader) (*domain.DeliveryDriver, error)
}

type RentalService interface {
	Create(ctx context.Context, motorcycleID, driverID string, planDays int) (*domain.Rental, error)
	Get(ctx context.Context, id string) (*domain.Rental, error)
	Return(ctx context.Context, id string, returnDate time.Time) (*domain.Rental, *pricing.Breakdown, error)
}

type NotificationService interface {
	List(ctx context.Context, page, pageSize int32) ([]domain.NotificationLog, int32, error)
}

// EventPublisher is the slice of the messaging layer the motorcycle
// service depends on.
type EventPublisher interface {
	PublishMotorcycleRegistered(ctx context.Context, m *domain.Motorcycle) error
}
