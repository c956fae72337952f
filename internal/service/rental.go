package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"fleetrent-backend/internal/domain"
	"fleetrent-backend/internal/repository"
)

type rentalService struct {
	rentalRepo repository.RentalRepository
	bikeRepo   repository.BikeRepository
	driverRepo repository.DriverRepository
	log        *slog.Logger
	now        func() time.Time
}

func NewRentalService(
	rentalRepo repository.RentalRepository,
	bikeRepo repository.BikeRepository,
	driverRepo repository.DriverRepository,
	log *slog.Logger,
) RentalService {
	return &rentalService{
		rentalRepo: rentalRepo,
		bikeRepo:   bikeRepo,
		driverRepo: driverRepo,
		log:        log,
		now:        time.Now,
	}
}

// Create books a bike. Checks run in a fixed order: driver exists, license
// covers category A, bike exists, start date not in the past, then the
// overlap-guarded insert.
func (s *rentalService) Create(ctx context.Context, in CreateRentalInput) (*domain.Rental, error) {
	driver, err := s.driverRepo.GetByID(ctx, in.DriverID)
	if err != nil {
		return nil, err
	}
	if !driver.IsCategoryAEnabled() {
		return nil, domain.ErrDriverNotCategoryA
	}

	if _, err := s.bikeRepo.GetByID(ctx, in.BikeID); err != nil {
		return nil, err
	}

	if in.StartDate.Before(s.now()) {
		return nil, domain.ErrStartDateInPast
	}

	seq, err := s.rentalRepo.NextIdentifier(ctx)
	if err != nil {
		return nil, err
	}
	identifier := fmt.Sprintf("RENT-%04d", seq)

	rental, err := domain.NewRental(in.DriverID, in.BikeID, identifier, in.StartDate, in.PlanType)
	if err != nil {
		return nil, err
	}

	if err := s.rentalRepo.CreateIfNoOverlap(ctx, rental); err != nil {
		return nil, err
	}

	s.log.Info("rental created",
		"rental_id", rental.ID,
		"identifier", rental.Identifier,
		"bike_id", rental.BikeID,
		"driver_id", rental.DriverID,
		"plan", rental.Plan.Type)
	return rental, nil
}

func (s *rentalService) GetByID(ctx context.Context, id string) (*domain.Rental, error) {
	return s.rentalRepo.GetByID(ctx, id)
}

// Return settles the rental for the given return date and persists the end
// date. Returning an already settled rental recomputes the same total without
// moving the end date.
func (s *rentalService) Return(ctx context.Context, id string, returnDate time.Time) (*RentalSettlement, error) {
	rental, err := s.rentalRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	alreadyClosed := rental.Closed()
	total, err := rental.Close(returnDate)
	if err != nil {
		return nil, err
	}

	if !alreadyClosed {
		if err := s.rentalRepo.Update(ctx, rental); err != nil {
			return nil, err
		}
	}

	s.log.Info("rental settled",
		"rental_id", rental.ID,
		"identifier", rental.Identifier,
		"total_cents", total)
	return &RentalSettlement{Rental: rental, TotalCents: total}, nil
}
