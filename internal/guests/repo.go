package guests

import (
	"context"

	"gorm.io/gorm"

	"github.com/hotelier-app/hotelier-backend/pkg/db/models"
)

// Repository exposes guest persistence operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository constructs a guests repo bound to the provided GORM DB.
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

// FindByNumber retrieves the guest with the given client-facing number.
func (r *Repository) FindByNumber(ctx context.Context, guestNumber int) (*models.Guest, error) {
	var guest models.Guest
	if err := r.db.WithContext(ctx).Where("guest_number = ?", guestNumber).First(&guest).Error; err != nil {
		return nil, err
	}
	return &guest, nil
}

// Create inserts a new guest.
func (r *Repository) Create(ctx context.Context, guest *models.Guest) error {
	return r.db.WithContext(ctx).Create(guest).Error
}

// UpdateBalance overwrites the guest balance.
func (r *Repository) UpdateBalance(ctx context.Context, guest *models.Guest) error {
	return r.db.WithContext(ctx).
		Model(&models.Guest{}).
		Where("id = ?", guest.ID).
		UpdateColumn("balance", guest.Balance).Error
}

// ListWithBookings loads every guest ordered by number, each with their
// bookings newest first and the booked rooms attached.
func (r *Repository) ListWithBookings(ctx context.Context) ([]models.Guest, error) {
	var guests []models.Guest
	err := r.db.WithContext(ctx).
		Preload("Bookings", func(db *gorm.DB) *gorm.DB {
			return db.Order("created_at DESC")
		}).
		Preload("Bookings.Room").
		Order("guest_number ASC").
		Find(&guests).Error
	if err != nil {
		return nil, err
	}
	return guests, nil
}
