package entity

import "time"

// User holds the push target and the ticket-syncing flag the workflow clears
type User struct {
	ID               int64 `gorm:"primaryKey"`
	DeviceToken      *string
	IsSyncingTickets bool
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// TableName overrides the default table name
func (User) TableName() string {
	return "users"
}
