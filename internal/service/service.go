package service

import (
	"context"
	"io"
	"time"

	"fleetrent-backend/internal/domain"
)

// EventPublisher pushes domain events to the message broker.
type EventPublisher interface {
	PublishJSON(ctx context.Context, routingKey string, payload any) error
}

type CreateBikeInput struct {
	Identifier string `json:"identifier"`
	Year       int    `json:"year"`
	Model      string `json:"model"`
	Plate      string `json:"plate"`
}

type UpdateBikePlateInput struct {
	Plate string `json:"plate"`
}

type BikeService interface {
	Create(ctx context.Context, in CreateBikeInput) (*domain.Bike, error)
	GetByID(ctx context.Context, id string) (*domain.Bike, error)
	List(ctx context.Context, plate string) ([]domain.Bike, error)
	UpdatePlate(ctx context.Context, id string, in UpdateBikePlateInput) (*domain.Bike, error)
	Delete(ctx context.Context, id string) error
}

type CreateDriverInput struct {
	Identifier    string             `json:"identifier"`
	Name          string             `json:"name"`
	Cnpj          string             `json:"cnpj"`
	BirthDate     time.Time          `json:"birth_date"`
	LicenseNumber string             `json:"license_number"`
	LicenseType   domain.LicenseType `json:"license_type"`
}

type DriverService interface {
	Create(ctx context.Context, in CreateDriverInput) (*domain.Driver, error)
	GetByID(ctx context.Context, id string) (*domain.Driver, error)
	List(ctx context.Context) ([]domain.Driver, error)
	UpdateLicenseImage(ctx context.Context, id string, image io.Reader, fileName, contentType string) (*domain.Driver, error)
}

type CreateRentalInput struct {
	DriverID  string          `json:"driver_id"`
	BikeID    string          `json:"bike_id"`
	StartDate time.Time       `json:"start_date"`
	PlanType  domain.PlanType `json:"plan_type"`
}

// RentalSettlement is the outcome of returning a bike.
type RentalSettlement struct {
	Rental     *domain.Rental `json:"rental"`
	TotalCents int64          `json:"total_cents"`
}

type RentalService interface {
	Create(ctx context.Context, in CreateRentalInput) (*domain.Rental, error)
	GetByID(ctx context.Context, id string) (*domain.Rental, error)
	Return(ctx context.Context, id string, returnDate time.Time) (*RentalSettlement, error)
}
