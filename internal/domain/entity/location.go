package entity

import "time"

// Location is a city/country pair with optional geocoded attributes.
// Shared and read-only once created.
type Location struct {
	ID               int64  `gorm:"primaryKey"`
	City             string `gorm:"uniqueIndex:idx_locations_city_country"`
	Country          string `gorm:"uniqueIndex:idx_locations_city_country"`
	CountryCode      string
	FormattedAddress string
	Latitude         *float64
	Longitude        *float64
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// TableName overrides the default table name
func (Location) TableName() string {
	return "locations"
}
