package rooms

import (
	"time"

	"github.com/google/uuid"

	"github.com/hotelier-app/hotelier-backend/pkg/db/models"
	"github.com/hotelier-app/hotelier-backend/pkg/enums"
)

const dateLayout = "2006-01-02"

// SetRoomInput carries the admin upsert payload.
type SetRoomInput struct {
	RoomNumber    int
	Type          string
	PricePerNight int64
}

// RoomDTO is the wire shape of a room.
type RoomDTO struct {
	RoomNumber    int            `json:"roomNumber"`
	Type          enums.RoomType `json:"type"`
	PricePerNight int64          `json:"pricePerNight"`
}

// BookingRow is a room's booking as exposed by the listing endpoint.
type BookingRow struct {
	ID                   uuid.UUID      `json:"id"`
	UserID               int            `json:"userId"`
	CheckIn              string         `json:"checkIn"`
	CheckOut             string         `json:"checkOut"`
	TotalPrice           int64          `json:"totalPrice"`
	UserBalanceAtBooking int64          `json:"userBalanceAtBooking"`
	RoomTypeAtBooking    enums.RoomType `json:"roomTypeAtBooking"`
	RoomPriceAtBooking   int64          `json:"roomPriceAtBooking"`
	CreatedAt            time.Time      `json:"createdAt"`
}

// RoomWithBookingsDTO pairs a room with its booking history, newest first.
type RoomWithBookingsDTO struct {
	RoomDTO
	Bookings []BookingRow `json:"bookings"`
}

func toRoomDTO(room *models.Room) *RoomDTO {
	return &RoomDTO{
		RoomNumber:    room.RoomNumber,
		Type:          room.Type,
		PricePerNight: room.PricePerNight,
	}
}

func toRoomWithBookings(room *models.Room) RoomWithBookingsDTO {
	rows := make([]BookingRow, 0, len(room.Bookings))
	for i := range room.Bookings {
		rows = append(rows, toBookingRow(&room.Bookings[i]))
	}
	return RoomWithBookingsDTO{RoomDTO: *toRoomDTO(room), Bookings: rows}
}

func toBookingRow(booking *models.Booking) BookingRow {
	row := BookingRow{
		ID:                   booking.ID,
		CheckIn:              booking.CheckIn.UTC().Format(dateLayout),
		CheckOut:             booking.CheckOut.UTC().Format(dateLayout),
		TotalPrice:           booking.TotalPrice,
		UserBalanceAtBooking: booking.GuestBalanceAtBooking,
		RoomTypeAtBooking:    booking.RoomTypeAtBooking,
		RoomPriceAtBooking:   booking.RoomPriceAtBooking,
		CreatedAt:            booking.CreatedAt.UTC(),
	}
	if booking.Guest != nil {
		row.UserID = booking.Guest.GuestNumber
	}
	return row
}
