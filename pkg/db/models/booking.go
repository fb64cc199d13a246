package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/hotelier-app/hotelier-backend/pkg/enums"
)

// Booking represents a confirmed stay. The *AtBooking fields freeze the
// guest balance and room attributes as they were at commit time, so later
// edits to the room or guest never rewrite booking history.
type Booking struct {
	ID                    uuid.UUID      `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	GuestID               uuid.UUID      `gorm:"column:guest_id;type:uuid;not null;index"`
	RoomID                uuid.UUID      `gorm:"column:room_id;type:uuid;not null;index:idx_bookings_room_stay,priority:1"`
	CheckIn               time.Time      `gorm:"column:check_in;not null;index:idx_bookings_room_stay,priority:2"`
	CheckOut              time.Time      `gorm:"column:check_out;not null;index:idx_bookings_room_stay,priority:3"`
	TotalPrice            int64          `gorm:"column:total_price;not null"`
	GuestBalanceAtBooking int64          `gorm:"column:guest_balance_at_booking;not null"`
	RoomTypeAtBooking     enums.RoomType `gorm:"column:room_type_at_booking;type:text;not null"`
	RoomPriceAtBooking    int64          `gorm:"column:room_price_at_booking;not null"`
	CreatedAt             time.Time      `gorm:"column:created_at;autoCreateTime"`

	Guest *Guest `gorm:"foreignKey:GuestID"`
	Room  *Room  `gorm:"foreignKey:RoomID"`
}
