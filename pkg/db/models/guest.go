package models

import (
	"time"

	"github.com/google/uuid"
)

// Guest represents a hotel guest holding a prepaid balance.
type Guest struct {
	ID          uuid.UUID `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	GuestNumber int       `gorm:"column:guest_number;not null;uniqueIndex"`
	Balance     int64     `gorm:"column:balance;not null;default:0"`
	CreatedAt   time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt   time.Time `gorm:"column:updated_at;autoUpdateTime"`

	Bookings []Booking `gorm:"foreignKey:GuestID"`
}
