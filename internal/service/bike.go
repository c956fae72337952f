package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"fleetrent-backend/internal/domain"
	"fleetrent-backend/internal/events"
	"fleetrent-backend/internal/repository"
)

type bikeService struct {
	bikeRepo   repository.BikeRepository
	rentalRepo repository.RentalRepository
	publisher  EventPublisher
	log        *slog.Logger
}

func NewBikeService(
	bikeRepo repository.BikeRepository,
	rentalRepo repository.RentalRepository,
	publisher EventPublisher,
	log *slog.Logger,
) BikeService {
	return &bikeService{
		bikeRepo:   bikeRepo,
		rentalRepo: rentalRepo,
		publisher:  publisher,
		log:        log,
	}
}

// Create registers a bike and publishes a bike-created event. A publish
// failure fails the request even though the bike row is already committed.
func (s *bikeService) Create(ctx context.Context, in CreateBikeInput) (*domain.Bike, error) {
	bike, err := domain.NewBike(in.Identifier, in.Year, in.Model, in.Plate)
	if err != nil {
		return nil, err
	}

	if err := s.ensurePlateFree(ctx, bike.Plate, ""); err != nil {
		return nil, err
	}

	if err := s.bikeRepo.Create(ctx, bike); err != nil {
		return nil, err
	}

	event := events.BikeCreated{BikeID: bike.ID, Identifier: bike.Identifier, Year: bike.Year}
	if err := s.publisher.PublishJSON(ctx, events.RKBikeCreated, event); err != nil {
		s.log.Error("bike created but event publish failed", "bike_id", bike.ID, "error", err)
		return nil, err
	}

	s.log.Info("bike created", "bike_id", bike.ID, "plate", bike.Plate, "year", bike.Year)
	return bike, nil
}

func (s *bikeService) GetByID(ctx context.Context, id string) (*domain.Bike, error) {
	return s.bikeRepo.GetByID(ctx, id)
}

// List forwards the plate filter normalized the same way plates are stored,
// so a lower-case or padded query still matches.
func (s *bikeService) List(ctx context.Context, plate string) ([]domain.Bike, error) {
	return s.bikeRepo.List(ctx, strings.ToUpper(strings.TrimSpace(plate)))
}

func (s *bikeService) UpdatePlate(ctx context.Context, id string, in UpdateBikePlateInput) (*domain.Bike, error) {
	bike, err := s.bikeRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := bike.ChangePlate(in.Plate); err != nil {
		return nil, err
	}
	if err := s.ensurePlateFree(ctx, bike.Plate, bike.ID); err != nil {
		return nil, err
	}

	if err := s.bikeRepo.Update(ctx, bike); err != nil {
		return nil, err
	}
	s.log.Info("bike plate updated", "bike_id", bike.ID, "plate", bike.Plate)
	return bike, nil
}

// Delete removes a bike unless any rental, open or settled, references it.
func (s *bikeService) Delete(ctx context.Context, id string) error {
	if _, err := s.bikeRepo.GetByID(ctx, id); err != nil {
		return err
	}

	rented, err := s.rentalRepo.ExistsForBike(ctx, id)
	if err != nil {
		return err
	}
	if rented {
		return domain.ErrBikeHasRentals
	}

	if err := s.bikeRepo.Delete(ctx, id); err != nil {
		return err
	}
	s.log.Info("bike deleted", "bike_id", id)
	return nil
}

func (s *bikeService) ensurePlateFree(ctx context.Context, plate, selfID string) error {
	existing, err := s.bikeRepo.GetByPlate(ctx, plate)
	if errors.Is(err, domain.ErrBikeNotFound) {
		return nil
	}
	if err != nil {
		return err
	}
	if existing.ID != selfID {
		return domain.ErrPlateAlreadyExists
	}
	return nil
}
