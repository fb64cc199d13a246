package bookings

import (
	"time"

	"github.com/google/uuid"

	"github.com/hotelier-app/hotelier-backend/pkg/db/models"
	"github.com/hotelier-app/hotelier-backend/pkg/enums"
)

// BookRoomInput carries the client-facing identifiers and raw date strings.
type BookRoomInput struct {
	GuestNumber int
	RoomNumber  int
	CheckIn     string
	CheckOut    string
}

// BookingDTO is the wire shape of a confirmed booking. Clients see the
// guest and room numbers, never the storage UUIDs of related rows.
type BookingDTO struct {
	ID                   uuid.UUID      `json:"id"`
	UserID               int            `json:"userId"`
	RoomNumber           int            `json:"roomNumber"`
	CheckIn              string         `json:"checkIn"`
	CheckOut             string         `json:"checkOut"`
	Nights               int64          `json:"nights"`
	TotalPrice           int64          `json:"totalPrice"`
	UserBalanceAtBooking int64          `json:"userBalanceAtBooking"`
	RoomTypeAtBooking    enums.RoomType `json:"roomTypeAtBooking"`
	RoomPriceAtBooking   int64          `json:"roomPriceAtBooking"`
	CreatedAt            time.Time      `json:"createdAt"`
}

// ConflictRange describes one existing booking blocking the requested stay.
type ConflictRange struct {
	CheckIn  string `json:"checkIn"`
	CheckOut string `json:"checkOut"`
}

func toBookingDTO(booking *models.Booking, guestNumber, roomNumber int, stay StayRange) *BookingDTO {
	return &BookingDTO{
		ID:                   booking.ID,
		UserID:               guestNumber,
		RoomNumber:           roomNumber,
		CheckIn:              stay.CheckIn.Format(dateLayout),
		CheckOut:             stay.CheckOut.Format(dateLayout),
		Nights:               Nights(stay),
		TotalPrice:           booking.TotalPrice,
		UserBalanceAtBooking: booking.GuestBalanceAtBooking,
		RoomTypeAtBooking:    booking.RoomTypeAtBooking,
		RoomPriceAtBooking:   booking.RoomPriceAtBooking,
		CreatedAt:            booking.CreatedAt.UTC(),
	}
}

func toConflictRanges(conflicts []models.Booking) []ConflictRange {
	out := make([]ConflictRange, 0, len(conflicts))
	for _, c := range conflicts {
		out = append(out, ConflictRange{
			CheckIn:  c.CheckIn.UTC().Format(dateLayout),
			CheckOut: c.CheckOut.UTC().Format(dateLayout),
		})
	}
	return out
}
