package bookings

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/hotelier-app/hotelier-backend/pkg/db/models"
)

type repository struct {
	db *gorm.DB
}

// NewRepository builds a bookings repository bound to the provided DB.
func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *gorm.DB) Repository {
	if tx == nil {
		return r
	}
	return &repository{db: tx}
}

func (r *repository) FindGuestByNumber(ctx context.Context, guestNumber int) (*models.Guest, error) {
	var guest models.Guest
	if err := r.db.WithContext(ctx).Where("guest_number = ?", guestNumber).First(&guest).Error; err != nil {
		return nil, err
	}
	return &guest, nil
}

func (r *repository) FindRoomByNumber(ctx context.Context, roomNumber int) (*models.Room, error) {
	var room models.Room
	if err := r.db.WithContext(ctx).Where("room_number = ?", roomNumber).First(&room).Error; err != nil {
		return nil, err
	}
	return &room, nil
}

// FindConflicts returns every booking of the room whose half-open stay
// intersects the requested one, ordered by check_in.
func (r *repository) FindConflicts(ctx context.Context, roomID uuid.UUID, stay StayRange) ([]models.Booking, error) {
	var conflicts []models.Booking
	err := r.db.WithContext(ctx).
		Where("room_id = ?", roomID).
		Where("check_in < ? AND check_out > ?", stay.CheckOut, stay.CheckIn).
		Order("check_in ASC").
		Find(&conflicts).Error
	if err != nil {
		return nil, err
	}
	return conflicts, nil
}

func (r *repository) CreateBooking(ctx context.Context, booking *models.Booking) error {
	return r.db.WithContext(ctx).Create(booking).Error
}

func (r *repository) UpdateGuestBalance(ctx context.Context, guestID uuid.UUID, balance int64) error {
	return r.db.WithContext(ctx).
		Model(&models.Guest{}).
		Where("id = ?", guestID).
		UpdateColumn("balance", balance).Error
}
