package payloads

import (
	"time"

	"github.com/google/uuid"

	"github.com/hotelier-app/hotelier-backend/pkg/enums"
)

// BookingCreatedEvent is emitted when a booking commits.
type BookingCreatedEvent struct {
	BookingID          uuid.UUID      `json:"booking_id"`
	GuestID            uuid.UUID      `json:"guest_id"`
	GuestNumber        int            `json:"guest_number"`
	RoomID             uuid.UUID      `json:"room_id"`
	RoomNumber         int            `json:"room_number"`
	RoomTypeAtBooking  enums.RoomType `json:"room_type_at_booking"`
	RoomPriceAtBooking int64          `json:"room_price_at_booking"`
	CheckIn            time.Time      `json:"check_in"`
	CheckOut           time.Time      `json:"check_out"`
	Nights             int            `json:"nights"`
	TotalPrice         int64          `json:"total_price"`
}
