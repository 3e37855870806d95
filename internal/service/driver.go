package service

import (
	"context"
	"io"
	"path/filepath"
	"strings"

	"motorcycle-rental-backend/internal/domain"
	"motorcycle-rental-backend/internal/logger"
	"motorcycle-rental-backend/internal/repository"
	"motorcycle-rental-backend/internal/storage"
)

const licenseImageFolder = "license-images"

type driverService struct {
	driverRepo repository.DriverRepository
	store      storage.Storage
}

func NewDriverService(driverRepo repository.DriverRepository, store storage.Storage) DriverService {
	return &driverService{driverRepo: driverRepo, store: store}
}

func (s *driverService) Create(ctx context.Context, driver *domain.DeliveryDriver) (*domain.DeliveryDriver, error) {
	logger.Info("Onboarding delivery driver", "driverID", driver.ID)

	if !driver.LicenseType.Valid() {
		return nil, domain.InvalidInput("license type %q is not recognized", driver.LicenseType)
	}

	if _, err := s.driverRepo.GetByID(ctx, driver.ID); err == nil {
		return nil, domain.Conflict("delivery driver %q already exists", driver.ID)
	} else if !domain.IsNotFound(err) {
		return nil, err
	}

	if _, err := s.driverRepo.GetByCNPJ(ctx, driver.CNPJ); err == nil {
		return nil, domain.Conflict("cnpj %q is already registered", driver.CNPJ)
	} else if !domain.IsNotFound(err) {
		return nil, err
	}

	if _, err := s.driverRepo.GetByLicenseNumber(ctx, driver.LicenseNumber); err == nil {
		return nil, domain.Conflict("license number %q is already registered", driver.LicenseNumber)
	} else if !domain.IsNotFound(err) {
		return nil, err
	}

	if err := s.driverRepo.Create(ctx, driver); err != nil {
		return nil, err
	}

	logger.Info("Delivery driver onboarded", "driverID", driver.ID)
	return driver, nil
}

func (s *driverService) Get(ctx context.Context, id string) (*domain.DeliveryDriver, error) {
	return s.driverRepo.GetByID(ctx, id)
}

func (s *driverService) UpdateLicenseImage(ctx context.Context, id, fileName string, image io.Reader) (*domain.DeliveryDriver, error) {
	driver, err := s.driverRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	ext := strings.ToLower(filepath.Ext(fileName))
	if ext != ".png" && ext != ".bmp" {
		return nil, domain.InvalidInput("license image must be .png or .bmp, got %q", ext)
	}

	if driver.LicenseImagePath != nil {
		if err := s.store.Delete(*driver.LicenseImagePath); err != nil {
			return nil, err
		}
	}

	key, err := s.store.Save(licenseImageFolder, ext, image)
	if err != nil {
		return nil, err
	}

	driver.LicenseImagePath = &key
	if err := s.driverRepo.Update(ctx, driver); err != nil {
		return nil, err
	}

	logger.Info("License image updated", "driverID", id, "key", key)
	return driver, nil
}
