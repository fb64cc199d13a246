package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/hotelier-app/hotelier-backend/pkg/enums"
)

// Account represents a staff identity able to operate the desk API.
type Account struct {
	ID           uuid.UUID         `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	Email        string            `gorm:"column:email;type:text;not null;uniqueIndex"`
	PasswordHash string            `gorm:"column:password_hash;not null"`
	FullName     string            `gorm:"column:full_name;not null"`
	Role         enums.AccountRole `gorm:"column:role;type:text;not null"`
	IsActive     bool              `gorm:"column:is_active;not null;default:true"`
	LastLoginAt  *time.Time        `gorm:"column:last_login_at"`
	CreatedAt    time.Time         `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt    time.Time         `gorm:"column:updated_at;autoUpdateTime"`
}
