package domain

import (
	"time"

	"github.com/google/uuid"
)

// Notification is a read-only record derived from a qualifying bike-created
// event. It is created once by the event consumer and never mutated.
type Notification struct {
	ID             string    `json:"id"`
	BikeID         string    `json:"bike_id"`
	BikeIdentifier string    `json:"bike_identifier"`
	BikeYear       int       `json:"bike_year"`
	Message        string    `json:"message"`
	CreatedAt      time.Time `json:"created_at"`
}

func NewNotification(bikeID, bikeIdentifier string, bikeYear int, message string) *Notification {
	return &Notification{
		ID:             uuid.NewString(),
		BikeID:         bikeID,
		BikeIdentifier: bikeIdentifier,
		BikeYear:       bikeYear,
		Message:        message,
		CreatedAt:      time.Now().UTC(),
	}
}
