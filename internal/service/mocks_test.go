package service_test

import (
	"context"
	"io"
	"log/slog"
	"time"

	"fleetrent-backend/internal/domain"

	"github.com/stretchr/testify/mock"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type MockBikeRepository struct {
	mock.Mock
}

func (m *MockBikeRepository) Create(ctx context.Context, b *domain.Bike) error {
	return m.Called(ctx, b).Error(0)
}

func (m *MockBikeRepository) GetByID(ctx context.Context, id string) (*domain.Bike, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Bike), args.Error(1)
}

func (m *MockBikeRepository) GetByPlate(ctx context.Context, plate string) (*domain.Bike, error) {
	args := m.Called(ctx, plate)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Bike), args.Error(1)
}

func (m *MockBikeRepository) List(ctx context.Context, plate string) ([]domain.Bike, error) {
	args := m.Called(ctx, plate)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Bike), args.Error(1)
}

func (m *MockBikeRepository) Update(ctx context.Context, b *domain.Bike) error {
	return m.Called(ctx, b).Error(0)
}

func (m *MockBikeRepository) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

type MockDriverRepository struct {
	mock.Mock
}

func (m *MockDriverRepository) Create(ctx context.Context, d *domain.Driver) error {
	return m.Called(ctx, d).Error(0)
}

func (m *MockDriverRepository) GetByID(ctx context.Context, id string) (*domain.Driver, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Driver), args.Error(1)
}

func (m *MockDriverRepository) GetByCnpj(ctx context.Context, cnpj string) (*domain.Driver, error) {
	args := m.Called(ctx, cnpj)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Driver), args.Error(1)
}

func (m *MockDriverRepository) GetByLicenseNumber(ctx context.Context, licenseNumber string) (*domain.Driver, error) {
	args := m.Called(ctx, licenseNumber)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Driver), args.Error(1)
}

func (m *MockDriverRepository) List(ctx context.Context) ([]domain.Driver, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Driver), args.Error(1)
}

func (m *MockDriverRepository) Update(ctx context.Context, d *domain.Driver) error {
	return m.Called(ctx, d).Error(0)
}

type MockRentalRepository struct {
	mock.Mock
}

func (m *MockRentalRepository) CreateIfNoOverlap(ctx context.Context, r *domain.Rental) error {
	return m.Called(ctx, r).Error(0)
}

func (m *MockRentalRepository) GetByID(ctx context.Context, id string) (*domain.Rental, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Rental), args.Error(1)
}

func (m *MockRentalRepository) Update(ctx context.Context, r *domain.Rental) error {
	return m.Called(ctx, r).Error(0)
}

func (m *MockRentalRepository) ExistsForBike(ctx context.Context, bikeID string) (bool, error) {
	args := m.Called(ctx, bikeID)
	return args.Bool(0), args.Error(1)
}

func (m *MockRentalRepository) NextIdentifier(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockRentalRepository) ListOverdue(ctx context.Context, asOf time.Time) ([]domain.Rental, error) {
	args := m.Called(ctx, asOf)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Rental), args.Error(1)
}

type MockEventPublisher struct {
	mock.Mock
}

func (m *MockEventPublisher) PublishJSON(ctx context.Context, routingKey string, payload any) error {
	return m.Called(ctx, routingKey, payload).Error(0)
}

type MockStorage struct {
	mock.Mock
}

func (m *MockStorage) Upload(ctx context.Context, r io.Reader, fileName, contentType string) (string, error) {
	args := m.Called(ctx, r, fileName, contentType)
	return args.String(0), args.Error(1)
}
