package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"motorcycle-rental-backend/internal/domain"
	"motorcycle-rental-backend/internal/logger"
	"motorcycle-rental-backend/internal/pricing"
	"motorcycle-rental-backend/internal/repository"
)

type rentalService struct {
	rentalRepo repository.RentalRepository
	motoRepo   repository.MotorcycleRepository
	driverRepo repository.DriverRepository
	rates      pricing.RateTable
	engine     *pricing.Engine
}

func NewRentalService(
	rentalRepo repository.RentalRepository,
	motoRepo repository.MotorcycleRepository,
	driverRepo repository.DriverRepository,
	rates pricing.RateTable,
) RentalService {
	return &rentalService{
		rentalRepo: rentalRepo,
		motoRepo:   motoRepo,
		driverRepo: driverRepo,
		rates:      rates,
		engine:     pricing.NewEngine(rates),
	}
}

func (s *rentalService) Create(ctx context.Context, motorcycleID, driverID string, planDays int) (*domain.Rental, error) {
	logger.Info("Creating rental", "motorcycleID", motorcycleID, "driverID", driverID, "planDays", planDays)

	if _, err := s.motoRepo.GetByID(ctx, motorcycleID); err != nil {
		return nil, err
	}

	open, err := s.rentalRepo.ListOpenByMotorcycle(ctx, motorcycleID)
	if err != nil {
		return nil, err
	}
	if len(open) > 0 {
		return nil, domain.Conflict("motorcycle %q is currently rented", motorcycleID)
	}

	driver, err := s.driverRepo.GetByID(ctx, driverID)
	if err != nil {
		return nil, err
	}
	if !driver.LicenseType.CanRentMotorcycle() {
		return nil, domain.Conflict("only drivers with license type A or A+B can rent motorcycles")
	}

	plan := pricing.Plan(planDays)
	rate, err := s.rates.Rate(plan)
	if err != nil {
		return nil, domain.Conflict("rental plan of %d days does not exist", planDays)
	}

	// Rentals never start same-day: the start date is fixed to tomorrow.
	startDate := tomorrowUTC()
	endDate := startDate.AddDate(0, 0, plan.Days()-1)

	rental := &domain.Rental{
		ID:               uuid.NewString(),
		MotorcycleID:     motorcycleID,
		DeliveryDriverID: driverID,
		StartDate:        startDate,
		EndDate:          endDate,
		ExpectedEndDate:  endDate,
		PlanDays:         plan.Days(),
		// Rate snapshot: later rate table changes never reprice this rental.
		DailyRateCents: rate.DailyRateCents,
	}

	if err := s.rentalRepo.Create(ctx, rental); err != nil {
		return nil, err
	}

	logger.Info("Rental created", "rentalID", rental.ID, "startDate", rental.StartDate.Format("2006-01-02"))
	return rental, nil
}

func (s *rentalService) Get(ctx context.Context, id string) (*domain.Rental, error) {
	return s.rentalRepo.GetByID(ctx, id)
}

// Return closes the rental and finalizes its cost. The return date is
// caller-supplied and only has to fall on or after the start date; it is
// never checked against the current clock.
func (s *rentalService) Return(ctx context.Context, id string, returnDate time.Time) (*domain.Rental, *pricing.Breakdown, error) {
	rental, err := s.rentalRepo.GetByID(ctx, id)
	if err != nil {
		return nil, nil, err
	}

	if rental.Status() == domain.RentalStatusClosed {
		return nil, nil, domain.Conflict("rental %q has already been completed", id)
	}

	breakdown, err := s.engine.Quote(pricing.Plan(rental.PlanDays), rental.DailyRateCents, rental.StartDate, returnDate)
	if err != nil {
		if errors.Is(err, pricing.ErrInvalidReturnDate) {
			return nil, nil, domain.InvalidInput("return date must be on or after the rental start date")
		}
		return nil, nil, err
	}

	actualEnd := returnDate
	rental.ActualEndDate = &actualEnd
	rental.TotalCostCents = &breakdown.TotalCents
	if err := s.rentalRepo.Update(ctx, rental); err != nil {
		return nil, nil, err
	}

	logger.Info("Rental returned", "rentalID", id, "totalCostCents", breakdown.TotalCents,
		"actualDays", breakdown.ActualDays, "planDays", breakdown.PlanDays)
	return rental, &breakdown, nil
}

func tomorrowUTC() time.Time {
	now := time.Now().UTC()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	return today.AddDate(0, 0, 1)
}
