package postgres

import (
	"database/sql"
	"log/slog"

	"fleetrent-backend/internal/repository"

	_ "github.com/lib/pq"
)

type Store struct {
	db *sql.DB
	repository.BikeRepository
	repository.DriverRepository
	repository.RentalRepository
	repository.NotificationRepository
}

func NewStore(db *sql.DB, log *slog.Logger) *Store {
	return &Store{
		db:                     db,
		BikeRepository:         NewBikeRepository(db, log),
		DriverRepository:       NewDriverRepository(db, log),
		RentalRepository:       NewRentalRepository(db, log),
		NotificationRepository: NewNotificationRepository(db, log),
	}
}
