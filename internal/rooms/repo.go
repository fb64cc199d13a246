package rooms

import (
	"context"

	"gorm.io/gorm"

	"github.com/hotelier-app/hotelier-backend/pkg/db/models"
)

// Repository exposes room persistence operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository constructs a rooms repo bound to the provided GORM DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// WithTx rebinds the repository to the provided transaction.
func (r *Repository) WithTx(tx *gorm.DB) *Repository {
	if tx == nil {
		return r
	}
	return &Repository{db: tx}
}

// FindByNumber retrieves the room with the given client-facing number.
func (r *Repository) FindByNumber(ctx context.Context, roomNumber int) (*models.Room, error) {
	var room models.Room
	if err := r.db.WithContext(ctx).Where("room_number = ?", roomNumber).First(&room).Error; err != nil {
		return nil, err
	}
	return &room, nil
}

// Create inserts a new room.
func (r *Repository) Create(ctx context.Context, room *models.Room) error {
	return r.db.WithContext(ctx).Create(room).Error
}

// UpdateAttributes overwrites the room's type and nightly price.
func (r *Repository) UpdateAttributes(ctx context.Context, room *models.Room) error {
	return r.db.WithContext(ctx).
		Model(&models.Room{}).
		Where("id = ?", room.ID).
		Updates(map[string]any{
			"type":            room.Type,
			"price_per_night": room.PricePerNight,
		}).Error
}

// ListWithBookings loads every room ordered by number, each with its
// bookings newest first and the booking guests attached.
func (r *Repository) ListWithBookings(ctx context.Context) ([]models.Room, error) {
	var rooms []models.Room
	err := r.db.WithContext(ctx).
		Preload("Bookings", func(db *gorm.DB) *gorm.DB {
			return db.Order("created_at DESC")
		}).
		Preload("Bookings.Guest").
		Order("room_number ASC").
		Find(&rooms).Error
	if err != nil {
		return nil, err
	}
	return rooms, nil
}
