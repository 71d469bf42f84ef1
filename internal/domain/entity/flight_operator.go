package entity

import "time"

// FlightOperator is an airline, created on demand when first seen in a ticket
type FlightOperator struct {
	ID          int64  `gorm:"primaryKey"`
	Name        string `gorm:"uniqueIndex"`
	CarrierCode string
	LogoURL     *string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName overrides the default table name
func (FlightOperator) TableName() string {
	return "flight_operators"
}
