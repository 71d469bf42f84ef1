package entity

import "time"

// Trip represents a user's trip; read-only inside this service
type Trip struct {
	ID                  int64 `gorm:"primaryKey"`
	UserID              int64 `gorm:"column:user_id"`
	DepartureLocationID *int64
	ArrivalLocationID   *int64
	DepartureLocation   *Location `gorm:"foreignKey:DepartureLocationID"`
	ArrivalLocation     *Location `gorm:"foreignKey:ArrivalLocationID"`
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

// TableName overrides the default table name
func (Trip) TableName() string {
	return "trips"
}
