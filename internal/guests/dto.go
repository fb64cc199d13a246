package guests

import (
	"time"

	"github.com/google/uuid"

	"github.com/hotelier-app/hotelier-backend/pkg/db/models"
	"github.com/hotelier-app/hotelier-backend/pkg/enums"
)

const dateLayout = "2006-01-02"

// SetGuestInput carries the admin upsert payload. The wire name of the
// guest number is userId.
type SetGuestInput struct {
	GuestNumber int
	Balance     int64
}

// GuestDTO is the wire shape of a guest.
type GuestDTO struct {
	UserID  int   `json:"userId"`
	Balance int64 `json:"balance"`
}

// BookingRow is a guest's booking as exposed by the listing endpoint.
type BookingRow struct {
	ID                   uuid.UUID      `json:"id"`
	RoomNumber           int            `json:"roomNumber"`
	CheckIn              string         `json:"checkIn"`
	CheckOut             string         `json:"checkOut"`
	TotalPrice           int64          `json:"totalPrice"`
	UserBalanceAtBooking int64          `json:"userBalanceAtBooking"`
	RoomTypeAtBooking    enums.RoomType `json:"roomTypeAtBooking"`
	RoomPriceAtBooking   int64          `json:"roomPriceAtBooking"`
	CreatedAt            time.Time      `json:"createdAt"`
}

// GuestWithBookingsDTO pairs a guest with their booking history, newest first.
type GuestWithBookingsDTO struct {
	GuestDTO
	Bookings []BookingRow `json:"bookings"`
}

func toGuestDTO(guest *models.Guest) *GuestDTO {
	return &GuestDTO{
		UserID:  guest.GuestNumber,
		Balance: guest.Balance,
	}
}

func toGuestWithBookings(guest *models.Guest) GuestWithBookingsDTO {
	rows := make([]BookingRow, 0, len(guest.Bookings))
	for i := range guest.Bookings {
		rows = append(rows, toBookingRow(&guest.Bookings[i]))
	}
	return GuestWithBookingsDTO{GuestDTO: *toGuestDTO(guest), Bookings: rows}
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
	if booking.Room != nil {
		row.RoomNumber = booking.Room.RoomNumber
	}
	return row
}
