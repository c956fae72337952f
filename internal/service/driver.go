package service

import (
	"context"
	"errors"
	"io"
	"log/slog"

	"fleetrent-backend/internal/domain"
	"fleetrent-backend/internal/repository"
	"fleetrent-backend/internal/storage"
)

type driverService struct {
	driverRepo repository.DriverRepository
	storage    storage.Service
	log        *slog.Logger
}

func NewDriverService(driverRepo repository.DriverRepository, storage storage.Service, log *slog.Logger) DriverService {
	return &driverService{driverRepo: driverRepo, storage: storage, log: log}
}

// Create registers a driver. CNPJ and license number are unique across the
// fleet; either collision rejects the request before anything is written.
func (s *driverService) Create(ctx context.Context, in CreateDriverInput) (*domain.Driver, error) {
	if _, err := s.driverRepo.GetByCnpj(ctx, in.Cnpj); err == nil {
		return nil, domain.ErrCnpjAlreadyExists
	} else if !errors.Is(err, domain.ErrDriverNotFound) {
		return nil, err
	}

	if _, err := s.driverRepo.GetByLicenseNumber(ctx, in.LicenseNumber); err == nil {
		return nil, domain.ErrLicenseNumberExists
	} else if !errors.Is(err, domain.ErrDriverNotFound) {
		return nil, err
	}

	driver := domain.NewDriver(in.Identifier, in.Name, in.Cnpj, in.BirthDate, in.LicenseNumber, in.LicenseType)
	if err := s.driverRepo.Create(ctx, driver); err != nil {
		return nil, err
	}

	s.log.Info("driver created", "driver_id", driver.ID, "license_type", driver.LicenseType)
	return driver, nil
}

func (s *driverService) GetByID(ctx context.Context, id string) (*domain.Driver, error) {
	return s.driverRepo.GetByID(ctx, id)
}

func (s *driverService) List(ctx context.Context) ([]domain.Driver, error) {
	return s.driverRepo.List(ctx)
}

func (s *driverService) UpdateLicenseImage(ctx context.Context, id string, image io.Reader, fileName, contentType string) (*domain.Driver, error) {
	driver, err := s.driverRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	path, err := s.storage.Upload(ctx, image, fileName, contentType)
	if err != nil {
		return nil, err
	}

	driver.UpdateLicenseImage(path)
	if err := s.driverRepo.Update(ctx, driver); err != nil {
		return nil, err
	}

	s.log.Info("driver license image updated", "driver_id", driver.ID, "path", path)
	return driver, nil
}
