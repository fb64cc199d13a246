package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/hotelier-app/hotelier-backend/pkg/enums"
)

// Room represents a bookable hotel room.
type Room struct {
	ID            uuid.UUID      `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	RoomNumber    int            `gorm:"column:room_number;not null;uniqueIndex"`
	Type          enums.RoomType `gorm:"column:type;type:text;not null"`
	PricePerNight int64          `gorm:"column:price_per_night;not null"`
	CreatedAt     time.Time      `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt     time.Time      `gorm:"column:updated_at;autoUpdateTime"`

	Bookings []Booking `gorm:"foreignKey:RoomID"`
}
