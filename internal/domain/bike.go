package domain

import (
	"strings"

	"github.com/google/uuid"
)

type Bike struct {
	ID         string `json:"id"`
	Identifier string `json:"identifier"`
	Year       int    `json:"year"`
	Model      string `json:"model"`
	Plate      string `json:"plate"`
}

func NewBike(identifier string, year int, model, plate string) (*Bike, error) {
	b := &Bike{
		ID:         uuid.NewString(),
		Identifier: identifier,
		Year:       year,
		Model:      model,
	}
	if err := b.ChangePlate(plate); err != nil {
		return nil, err
	}
	return b, nil
}

// ChangePlate normalizes the plate to trimmed upper-case before storing it.
func (b *Bike) ChangePlate(plate string) error {
	plate = strings.TrimSpace(plate)
	if plate == "" {
		return ErrPlateRequired
	}
	b.Plate = strings.ToUpper(plate)
	return nil
}
