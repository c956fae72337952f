package repository

import (
	"context"
	"time"

	"fleetrent-backend/internal/domain"
)

type BikeRepository interface {
	Create(ctx context.Context, bike *domain.Bike) error
	GetByID(ctx context.Context, id string) (*domain.Bike, error)
	GetByPlate(ctx context.Context, plate string) (*domain.Bike, error)
	List(ctx context.Context, plate string) ([]domain.Bike, error)
	Update(ctx context.Context, bike *domain.Bike) error
	Delete(ctx context.Context, id string) error
}

type DriverRepository interface {
	Create(ctx context.Context, driver *domain.Driver) error
	GetByID(ctx context.Context, id string) (*domain.Driver, error)
	GetByCnpj(ctx context.Context, cnpj string) (*domain.Driver, error)
	GetByLicenseNumber(ctx context.Context, licenseNumber string) (*domain.Driver, error)
	List(ctx context.Context) ([]domain.Driver, error)
	Update(ctx context.Context, driver *domain.Driver) error
}

type RentalRepository interface {
	// CreateIfNoOverlap inserts the rental unless an existing rental for the
	// same bike overlaps [StartDate, PlannedEndDate]; overlap check and insert
	// run in one transaction serialized per bike.
	CreateIfNoOverlap(ctx context.Context, rental *domain.Rental) error
	GetByID(ctx context.Context, id string) (*domain.Rental, error)
	Update(ctx context.Context, rental *domain.Rental) error
	ExistsForBike(ctx context.Context, bikeID string) (bool, error)
	NextIdentifier(ctx context.Context) (int64, error)
	ListOverdue(ctx context.Context, asOf time.Time) ([]domain.Rental, error)
}

type NotificationRepository interface {
	// CreateIfNotConsumed persists the notification together with the event
	// dedup key; it reports false without inserting when the key was already
	// consumed.
	CreateIfNotConsumed(ctx context.Context, n *domain.Notification, eventKey string) (bool, error)
}
