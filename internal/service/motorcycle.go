package service

import (
	"context"

	"motorcycle-rental-backend/internal/domain"
	"motorcycle-rental-backend/internal/logger"
	"motorcycle-rental-backend/internal/repository"
)

type motorcycleService struct {
	motoRepo  repository.MotorcycleRepository
	publisher EventPublisher
}

func NewMotorcycleService(motoRepo repository.MotorcycleRepository, publisher EventPublisher) MotorcycleService {
	return &motorcycleService{motoRepo: motoRepo, publisher: publisher}
}

func (s *motorcycleService) Create(ctx context.Context, id string, year int, model, licensePlate string) (*domain.Motorcycle, error) {
	logger.Info("Registering motorcycle", "motorcycleID", id, "plate", licensePlate)

	if _, err := s.motoRepo.GetByID(ctx, id); err == nil {
		return nil, domain.Conflict("motorcycle %q already exists", id)
	} else if !domain.IsNotFound(err) {
		return nil, err
	}

	if _, err := s.motoRepo.GetByLicensePlate(ctx, licensePlate); err == nil {
		return nil, domain.Conflict("license plate %q is already registered", licensePlate)
	} else if !domain.IsNotFound(err) {
		return nil, err
	}

	m := &domain.Motorcycle{
		ID:           id,
		Year:         year,
		Model:        model,
		LicensePlate: licensePlate,
	}
	if err := s.motoRepo.Create(ctx, m); err != nil {
		return nil, err
	}

	// Publish failure is part of the registration failure surface: the
	// caller sees an error rather than a registration with a lost event.
	if err := s.publisher.PublishMotorcycleRegistered(ctx, m); err != nil {
		return nil, err
	}

	logger.Info("Motorcycle registered", "motorcycleID", m.ID)
	return m, nil
}

func (s *motorcycleService) Get(ctx context.Context, id string) (*domain.Motorcycle, error) {
	return s.motoRepo.GetByID(ctx, id)
}

func (s *motorcycleService) List(ctx context.Context, plateFilter string) ([]domain.Motorcycle, error) {
	return s.motoRepo.List(ctx, plateFilter)
}

func (s *motorcycleService) UpdateLicensePlate(ctx context.Context, id, licensePlate string) (*domain.Motorcycle, error) {
	m, err := s.motoRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	existing, err := s.motoRepo.GetByLicensePlate(ctx, licensePlate)
	if err == nil && existing.ID != id {
		return nil, domain.Conflict("license plate %q is already registered", licensePlate)
	}
	if err != nil && !domain.IsNotFound(err) {
		return nil, err
	}

	m.LicensePlate = licensePlate
	if err := s.motoRepo.Update(ctx, m); err != nil {
		return nil, err
	}
	return m, nil
}

func (s *motorcycleService) Delete(ctx context.Context, id string) error {
	if _, err := s.motoRepo.GetByID(ctx, id); err != nil {
		return err
	}

	hasRentals, err := s.motoRepo.HasRentals(ctx, id)
	if err != nil {
		return err
	}
	if hasRentals {
		return domain.Conflict("motorcycle %q has rentals and cannot be removed", id)
	}

	return s.motoRepo.Delete(ctx, id)
}
