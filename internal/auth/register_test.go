package auth

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/hotelier-app/hotelier-backend/pkg/config"
	"github.com/hotelier-app/hotelier-backend/pkg/db/models"
	"github.com/hotelier-app/hotelier-backend/pkg/enums"
	pkgerrors "github.com/hotelier-app/hotelier-backend/pkg/errors"
	"github.com/hotelier-app/hotelier-backend/pkg/security"
)

type testTxRunner struct {
	db *gorm.DB
}

func (r testTxRunner) WithTx(ctx context.Context, fn func(tx *gorm.DB) error) error {
	tx := r.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return tx.Error
	}
	if err := fn(tx); err != nil {
		tx.Rollback()
		return err
	}
	return tx.Commit().Error
}

const accountsSchema = `CREATE TABLE IF NOT EXISTS accounts (
	id TEXT PRIMARY KEY,
	email TEXT NOT NULL UNIQUE,
	password_hash TEXT NOT NULL,
	full_name TEXT NOT NULL,
	role TEXT NOT NULL,
	is_active INTEGER NOT NULL DEFAULT 1,
	last_login_at DATETIME,
	created_at DATETIME,
	updated_at DATETIME
)`

func newTestRegisterService(t *testing.T) (RegisterService, *gorm.DB) {
	t.Helper()
	dsn := "file:auth_" + uuid.NewString() + "?mode=memory&cache=shared"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	if err := db.Exec(accountsSchema).Error; err != nil {
		t.Fatalf("create schema: %v", err)
	}
	svc, err := NewRegisterService(RegisterServiceParams{
		AccountRepo:    NewRepository(db),
		TxRunner:       testTxRunner{db: db},
		PasswordConfig: config.PasswordConfig{},
	})
	if err != nil {
		t.Fatalf("new register service: %v", err)
	}
	return svc, db
}

func TestRegisterCreatesStaffAccount(t *testing.T) {
	svc, db := newTestRegisterService(t)
	ctx := context.Background()

	dto, err := svc.Register(ctx, RegisterRequest{
		Email:    "  Clerk@Hotel.Test ",
		Password: "desk-secret-1",
		FullName: "Front Desk",
	})
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if dto.Email != "clerk@hotel.test" {
		t.Fatalf("expected lowercased email, got %q", dto.Email)
	}
	if dto.Role != enums.AccountRoleStaff {
		t.Fatalf("expected default staff role, got %s", dto.Role)
	}
	if !dto.IsActive {
		t.Fatalf("expected account to start active")
	}

	var stored models.Account
	if err := db.Where("email = ?", "clerk@hotel.test").First(&stored).Error; err != nil {
		t.Fatalf("load account: %v", err)
	}
	valid, err := security.VerifyPassword("desk-secret-1", stored.PasswordHash)
	if err != nil || !valid {
		t.Fatalf("stored hash does not verify: valid=%v err=%v", valid, err)
	}
}

func TestRegisterAcceptsAdminRole(t *testing.T) {
	svc, _ := newTestRegisterService(t)

	dto, err := svc.Register(context.Background(), RegisterRequest{
		Email:    "manager@hotel.test",
		Password: "desk-secret-1",
		FullName: "Night Manager",
		Role:     "admin",
	})
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if dto.Role != enums.AccountRoleAdmin {
		t.Fatalf("expected admin role, got %s", dto.Role)
	}
}

func TestRegisterRejectsDuplicateEmail(t *testing.T) {
	svc, db := newTestRegisterService(t)
	ctx := context.Background()

	req := RegisterRequest{
		Email:    "clerk@hotel.test",
		Password: "desk-secret-1",
		FullName: "Front Desk",
	}
	if _, err := svc.Register(ctx, req); err != nil {
		t.Fatalf("first register: %v", err)
	}

	_, err := svc.Register(ctx, req)
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeConflict {
		t.Fatalf("expected conflict error, got %v", err)
	}

	var count int64
	if err := db.Model(&models.Account{}).Count(&count).Error; err != nil {
		t.Fatalf("count accounts: %v", err)
	}
	if count != 1 {
		t.Fatalf("expected one account, got %d", count)
	}
}

func TestRegisterValidation(t *testing.T) {
	svc, _ := newTestRegisterService(t)
	ctx := context.Background()

	cases := []struct {
		name string
		req  RegisterRequest
	}{
		{"blank email", RegisterRequest{Email: "  ", Password: "desk-secret-1", FullName: "Clerk"}},
		{"short password", RegisterRequest{Email: "a@b.test", Password: "short", FullName: "Clerk"}},
		{"blank full name", RegisterRequest{Email: "a@b.test", Password: "desk-secret-1", FullName: " "}},
		{"unknown role", RegisterRequest{Email: "a@b.test", Password: "desk-secret-1", FullName: "Clerk", Role: "owner"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Register(ctx, tc.req)
			typed := pkgerrors.As(err)
			if typed == nil || typed.Code() != pkgerrors.CodeValidation {
				t.Fatalf("expected validation error, got %v", err)
			}
		})
	}
}
