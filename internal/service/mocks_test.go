package service

import (
	"context"
	"io"

	"github.com/stretchr/testify/mock"

	"motorcycle-rental-backend/internal/domain"
)

// MockMotorcycleRepo
type MockMotorcycleRepo struct {
	mock.Mock
}

func (m *MockMotorcycleRepo) Create(ctx context.Context, moto *domain.Motorcycle) error {
	args := m.Called(ctx, moto)
	return args.Error(0)
}
func (m *MockMotorcycleRepo) GetByID(ctx context.Context, id string) (*domain.Motorcycle, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Motorcycle), args.Error(1)
}
func (m *MockMotorcycleRepo) GetByLicensePlate(ctx context.Context, plate string) (*domain.Motorcycle, error) {
	args := m.Called(ctx, plate)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Motorcycle), args.Error(1)
}
func (m *MockMotorcycleRepo) List(ctx context.Context, plateFilter string) ([]domain.Motorcycle, error) {
	args := m.Called(ctx, plateFilter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Motorcycle), args.Error(1)
}
func (m *MockMotorcycleRepo) Update(ctx context.Context, moto *domain.Motorcycle) error {
	args := m.Called(ctx, moto)
	return args.Error(0)
}
func (m *MockMotorcycleRepo) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
func (m *MockMotorcycleRepo) HasRentals(ctx context.Context, motorcycleID string) (bool, error) {
	args := m.Called(ctx, motorcycleID)
	return args.Bool(0), args.Error(1)
}

// MockDriverRepo
type MockDriverRepo struct {
	mock.Mock
}

func (m *MockDriverRepo) Create(ctx context.Context, d *domain.DeliveryDriver) error {
	args := m.Called(ctx, d)
	return args.Error(0)
}
func (m *MockDriverRepo) GetByID(ctx context.Context, id string) (*domain.DeliveryDriver, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DeliveryDriver), args.Error(1)
}
func (m *MockDriverRepo) GetByCNPJ(ctx context.Context, cnpj string) (*domain.DeliveryDriver, error) {
	args := m.Called(ctx, cnpj)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DeliveryDriver), args.Error(1)
}
func (m *MockDriverRepo) GetByLicenseNumber(ctx context.Context, licenseNumber string) (*domain.DeliveryDriver, error) {
	args := m.Called(ctx, licenseNumber)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DeliveryDriver), args.Error(1)
}
func (m *MockDriverRepo) Update(ctx context.Context, d *domain.DeliveryDriver) error {
	args := m.Called(ctx, d)
	return args.Error(0)
}

// MockRentalRepo
type MockRentalRepo struct {
	mock.Mock
}

func (m *MockRentalRepo) Create(ctx context.Context, r *domain.Rental) error {
	args := m.Called(ctx, r)
	return args.Error(0)
}
func (m *MockRentalRepo) GetByID(ctx context.Context, id string) (*domain.Rental, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Rental), args.Error(1)
}
func (m *MockRentalRepo) Update(ctx context.Context, r *domain.Rental) error {
	args := m.Called(ctx, r)
	return args.Error(0)
}
func (m *MockRentalRepo) ListOpenByMotorcycle(ctx context.Context, motorcycleID string) ([]domain.Rental, error) {
	args := m.Called(ctx, motorcycleID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Rental), args.Error(1)
}
func (m *MockRentalRepo) ListOverdue(ctx context.Context) ([]domain.Rental, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Rental), args.Error(1)
}

// MockNotificationRepo
type MockNotificationRepo struct {
	mock.Mock
}

func (m *MockNotificationRepo) Create(ctx context.Context, n *domain.NotificationLog) error {
	args := m.Called(ctx, n)
	return args.Error(0)
}
func (m *MockNotificationRepo) List(ctx context.Context, limit, offset int32) ([]domain.NotificationLog, int32, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]domain.NotificationLog), args.Get(1).(int32), args.Error(2)
}

// MockPublisher
type MockPublisher struct {
	mock.Mock
}

func (m *MockPublisher) PublishMotorcycleRegistered(ctx context.Context, moto *domain.Motorcycle) error {
	args := m.Called(ctx, moto)
	return args.Error(0)
}

// MockStorage
type MockStorage struct {
	mock.Mock
}

func (m *MockStorage) Save(folder, ext string, r io.Reader) (string, error) {
	args := m.Called(folder, ext, r)
	return args.String(0), args.Error(1)
}
func (m *MockStorage) Delete(key string) error {
	args := m.Called(key)
	return args.Error(0)
}
func (m *MockStorage) Open(key string) (io.ReadCloser, error) {
	args := m.Called(key)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(io.ReadCloser), args.Error(1)
}
