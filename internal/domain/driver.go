package domain

import (
	"time"

	"github.com/google/uuid"
)

type LicenseType string

const (
	LicenseTypeA  LicenseType = "A"
	LicenseTypeB  LicenseType = "B"
	LicenseTypeAB LicenseType = "AB"
)

type Driver struct {
	ID               string      `json:"id"`
	Identifier       string      `json:"identifier"`
	Name             string      `json:"name"`
	Cnpj             string      `json:"cnpj"`
	BirthDate        time.Time   `json:"birth_date"`
	LicenseNumber    string      `json:"license_number"`
	LicenseType      LicenseType `json:"license_type"`
	LicenseImagePath string      `json:"license_image_path,omitempty"`
}

func NewDriver(identifier, name, cnpj string, birthDate time.Time, licenseNumber string, licenseType LicenseType) *Driver {
	return &Driver{
		ID:            uuid.NewString(),
		Identifier:    identifier,
		Name:          name,
		Cnpj:          cnpj,
		BirthDate:     birthDate,
		LicenseNumber: licenseNumber,
		LicenseType:   licenseType,
	}
}

// IsCategoryAEnabled reports whether the driver's license covers category A,
// the eligibility requirement for renting a bike.
func (d *Driver) IsCategoryAEnabled() bool {
	return d.LicenseType == LicenseTypeA || d.LicenseType == LicenseTypeAB
}

func (d *Driver) UpdateLicenseImage(path string) {
	d.LicenseImagePath = path
}
