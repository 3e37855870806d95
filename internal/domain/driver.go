package domain

import "time"

type LicenseType string

const (
	LicenseTypeA  LicenseType = "A"
	LicenseTypeB  LicenseType = "B"
	LicenseTypeAB LicenseType = "AB"
)

// CanRentMotorcycle reports whether this license class permits
// two-wheeled motor vehicles.
func (t LicenseType) CanRentMotorcycle() bool {
	return t == LicenseTypeA || t == LicenseTypeAB
}

// Valid reports whether t is one of the recognized license classes.
func (t LicenseType) Valid() bool {
	return t == LicenseTypeA || t == LicenseTypeB || t == LicenseTypeAB
}

type DeliveryDriver struct {
	ID               string      `json:"id"`
	Name             string      `json:"name"`
	CNPJ             string      `json:"cnpj"`
	BirthDate        time.Time   `json:"birth_date"`
	LicenseNumber    string      `json:"license_number"`
	LicenseType      LicenseType `json:"license_type"`
	LicenseImagePath *string     `json:"license_image_path,omitempty"`
	CreatedOn        time.Time   `json:"created_on"`
}
