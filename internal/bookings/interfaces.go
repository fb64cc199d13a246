package bookings

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/hotelier-app/hotelier-backend/pkg/db/models"
)

// Repository defines the persistence operations the booking flow needs.
type Repository interface {
	WithTx(tx *gorm.DB) Repository
	FindGuestByNumber(ctx context.Context, guestNumber int) (*models.Guest, error)
	FindRoomByNumber(ctx context.Context, roomNumber int) (*models.Room, error)
	FindConflicts(ctx context.Context, roomID uuid.UUID, stay StayRange) ([]models.Booking, error)
	CreateBooking(ctx context.Context, booking *models.Booking) error
	UpdateGuestBalance(ctx context.Context, guestID uuid.UUID, balance int64) error
}

// Service exposes the booking transaction.
type Service interface {
	BookRoom(ctx context.Context, input BookRoomInput) (*BookingDTO, error)
}
