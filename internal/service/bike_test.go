package service_test

import (
	"context"
	"testing"

	"fleetrent-backend/internal/domain"
	"fleetrent-backend/internal/events"
	"fleetrent-backend/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestBikeService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("Success publishes bike.created", func(t *testing.T) {
		bikeRepo := new(MockBikeRepository)
		rentalRepo := new(MockRentalRepository)
		publisher := new(MockEventPublisher)
		svc := service.NewBikeService(bikeRepo, rentalRepo, publisher, testLogger())

		bikeRepo.On("GetByPlate", ctx, "ABC-1234").Return(nil, domain.ErrBikeNotFound)
		bikeRepo.On("Create", ctx, mock.AnythingOfType("*domain.Bike")).Return(nil)
		publisher.On("PublishJSON", ctx, events.RKBikeCreated, mock.MatchedBy(func(p any) bool {
			e, ok := p.(events.BikeCreated)
			return ok && e.Identifier == "BIKE-0001" && e.Year == 2024
		})).Return(nil)

		bike, err := svc.Create(ctx, service.CreateBikeInput{
			Identifier: "BIKE-0001",
			Year:       2024,
			Model:      "Urban 250",
			Plate:      " abc-1234 ",
		})
		require.NoError(t, err)
		assert.Equal(t, "ABC-1234", bike.Plate)
		publisher.AssertExpectations(t)
	})

	t.Run("Duplicate plate rejected", func(t *testing.T) {
		bikeRepo := new(MockBikeRepository)
		publisher := new(MockEventPublisher)
		svc := service.NewBikeService(bikeRepo, new(MockRentalRepository), publisher, testLogger())

		existing := fleetBike()
		bikeRepo.On("GetByPlate", ctx, "ABC-1234").Return(existing, nil)

		_, err := svc.Create(ctx, service.CreateBikeInput{
			Identifier: "BIKE-0002",
			Year:       2023,
			Model:      "Urban 250",
			Plate:      "ABC-1234",
		})
		assert.ErrorIs(t, err, domain.ErrPlateAlreadyExists)
		bikeRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
		publisher.AssertNotCalled(t, "PublishJSON", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Publish failure fails the request", func(t *testing.T) {
		bikeRepo := new(MockBikeRepository)
		publisher := new(MockEventPublisher)
		svc := service.NewBikeService(bikeRepo, new(MockRentalRepository), publisher, testLogger())

		bikeRepo.On("GetByPlate", ctx, mock.Anything).Return(nil, domain.ErrBikeNotFound)
		bikeRepo.On("Create", ctx, mock.AnythingOfType("*domain.Bike")).Return(nil)
		publisher.On("PublishJSON", ctx, events.RKBikeCreated, mock.Anything).
			Return(assert.AnError)

		_, err := svc.Create(ctx, service.CreateBikeInput{
			Identifier: "BIKE-0003",
			Year:       2024,
			Model:      "Urban 250",
			Plate:      "XYZ-9876",
		})
		assert.Error(t, err)
	})
}

func TestBikeService_UpdatePlate(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		bikeRepo := new(MockBikeRepository)
		svc := service.NewBikeService(bikeRepo, new(MockRentalRepository), new(MockEventPublisher), testLogger())

		bike := fleetBike()
		bikeRepo.On("GetByID", ctx, bike.ID).Return(bike, nil)
		bikeRepo.On("GetByPlate", ctx, "NEW-0001").Return(nil, domain.ErrBikeNotFound)
		bikeRepo.On("Update", ctx, bike).Return(nil)

		updated, err := svc.UpdatePlate(ctx, bike.ID, service.UpdateBikePlateInput{Plate: "new-0001"})
		require.NoError(t, err)
		assert.Equal(t, "NEW-0001", updated.Plate)
	})

	t.Run("Empty plate rejected", func(t *testing.T) {
		bikeRepo := new(MockBikeRepository)
		svc := service.NewBikeService(bikeRepo, new(MockRentalRepository), new(MockEventPublisher), testLogger())

		bike := fleetBike()
		bikeRepo.On("GetByID", ctx, bike.ID).Return(bike, nil)

		_, err := svc.UpdatePlate(ctx, bike.ID, service.UpdateBikePlateInput{Plate: "   "})
		assert.ErrorIs(t, err, domain.ErrPlateRequired)
		bikeRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})
}

func TestBikeService_List(t *testing.T) {
	ctx := context.Background()

	t.Run("Plate filter is normalized before querying", func(t *testing.T) {
		bikeRepo := new(MockBikeRepository)
		svc := service.NewBikeService(bikeRepo, new(MockRentalRepository), new(MockEventPublisher), testLogger())

		stored := fleetBike()
		bikeRepo.On("List", ctx, "ABC-1234").Return([]domain.Bike{*stored}, nil)

		bikes, err := svc.List(ctx, "  abc-1234 ")
		require.NoError(t, err)
		require.NotEmpty(t, bikes)
		assert.Equal(t, "ABC-1234", bikes[0].Plate)
		bikeRepo.AssertExpectations(t)
	})

	t.Run("Empty filter stays empty", func(t *testing.T) {
		bikeRepo := new(MockBikeRepository)
		svc := service.NewBikeService(bikeRepo, new(MockRentalRepository), new(MockEventPublisher), testLogger())

		bikeRepo.On("List", ctx, "").Return([]domain.Bike{}, nil)

		_, err := svc.List(ctx, "")
		require.NoError(t, err)
		bikeRepo.AssertExpectations(t)
	})
}

func TestBikeService_Delete(t *testing.T) {
	ctx := context.Background()

	t.Run("Bike with rental history kept", func(t *testing.T) {
		bikeRepo := new(MockBikeRepository)
		rentalRepo := new(MockRentalRepository)
		svc := service.NewBikeService(bikeRepo, rentalRepo, new(MockEventPublisher), testLogger())

		bike := fleetBike()
		bikeRepo.On("GetByID", ctx, bike.ID).Return(bike, nil)
		rentalRepo.On("ExistsForBike", ctx, bike.ID).Return(true, nil)

		err := svc.Delete(ctx, bike.ID)
		assert.ErrorIs(t, err, domain.ErrBikeHasRentals)
		bikeRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})

	t.Run("Unrented bike deleted", func(t *testing.T) {
		bikeRepo := new(MockBikeRepository)
		rentalRepo := new(MockRentalRepository)
		svc := service.NewBikeService(bikeRepo, rentalRepo, new(MockEventPublisher), testLogger())

		bike := fleetBike()
		bikeRepo.On("GetByID", ctx, bike.ID).Return(bike, nil)
		rentalRepo.On("ExistsForBike", ctx, bike.ID).Return(false, nil)
		bikeRepo.On("Delete", ctx, bike.ID).Return(nil)

		assert.NoError(t, svc.Delete(ctx, bike.ID))
		bikeRepo.AssertExpectations(t)
	})
}
