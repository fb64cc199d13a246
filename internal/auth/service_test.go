package auth

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	pkgAuth "github.com/hotelier-app/hotelier-backend/pkg/auth"
	"github.com/hotelier-app/hotelier-backend/pkg/auth/session"
	"github.com/hotelier-app/hotelier-backend/pkg/config"
	"github.com/hotelier-app/hotelier-backend/pkg/db/models"
	"github.com/hotelier-app/hotelier-backend/pkg/enums"
	pkgerrors "github.com/hotelier-app/hotelier-backend/pkg/errors"
	"github.com/hotelier-app/hotelier-backend/pkg/security"
)

func testJWTConfig() config.JWTConfig {
	return config.JWTConfig{
		Secret:            "secret",
		Issuer:            "hotelier",
		ExpirationMinutes: 30,
	}
}

func mustHashPassword(t *testing.T, password string) string {
	t.Helper()
	hash, err := security.HashPassword(password, config.PasswordConfig{})
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}
	return hash
}

func buildTestService(t *testing.T, account *models.Account) (Service, *stubSessionManager) {
	t.Helper()
	sessionMgr := &stubSessionManager{refreshToken: "refresh-token"}
	svc, err := NewService(ServiceParams{
		AccountRepo:    &stubAccountRepo{account: account},
		SessionManager: sessionMgr,
		JWTConfig:      testJWTConfig(),
	})
	if err != nil {
		t.Fatalf("build service: %v", err)
	}
	return svc, sessionMgr
}

func TestServiceLoginIssuesTokenPair(t *testing.T) {
	password := "desk-secret-1"
	account := &models.Account{
		ID:           uuid.New(),
		Email:        "clerk@hotel.test",
		PasswordHash: mustHashPassword(t, password),
		FullName:     "Front Desk",
		Role:         enums.AccountRoleStaff,
		IsActive:     true,
	}

	svc, _ := buildTestService(t, account)
	resp, err := svc.Login(context.Background(), LoginRequest{
		Email:    "Clerk@Hotel.Test",
		Password: password,
	})
	if err != nil {
		t.Fatalf("login: %v", err)
	}

	claims, err := pkgAuth.ParseAccessToken(testJWTConfig(), resp.AccessToken)
	if err != nil {
		t.Fatalf("parse access token: %v", err)
	}
	if claims.AccountID != account.ID {
		t.Fatalf("expected account id claim %s, got %s", account.ID, claims.AccountID)
	}
	if claims.Role != enums.AccountRoleStaff {
		t.Fatalf("expected staff role claim, got %s", claims.Role)
	}
	if resp.RefreshToken != "refresh-token" {
		t.Fatalf("expected refresh token to be set")
	}
	if resp.Account.LastLoginAt == nil {
		t.Fatalf("expected last login to be stamped")
	}
}

func TestServiceLoginRejectsBadCredentials(t *testing.T) {
	account := &models.Account{
		ID:           uuid.New(),
		Email:        "clerk@hotel.test",
		PasswordHash: mustHashPassword(t, "desk-secret-1"),
		FullName:     "Front Desk",
		Role:         enums.AccountRoleStaff,
		IsActive:     true,
	}
	svc, _ := buildTestService(t, account)

	_, err := svc.Login(context.Background(), LoginRequest{
		Email:    account.Email,
		Password: "wrong-password",
	})
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeUnauthorized {
		t.Fatalf("expected unauthorized error, got %v", err)
	}
}

func TestServiceLoginRejectsInactiveAccount(t *testing.T) {
	password := "desk-secret-1"
	account := &models.Account{
		ID:           uuid.New(),
		Email:        "former@hotel.test",
		PasswordHash: mustHashPassword(t, password),
		FullName:     "Former Clerk",
		Role:         enums.AccountRoleStaff,
		IsActive:     false,
	}
	svc, _ := buildTestService(t, account)

	_, err := svc.Login(context.Background(), LoginRequest{Email: account.Email, Password: password})
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeUnauthorized {
		t.Fatalf("expected unauthorized error, got %v", err)
	}
}

func TestServiceRefreshRotatesSession(t *testing.T) {
	account := &models.Account{
		ID:       uuid.New(),
		Email:    "clerk@hotel.test",
		FullName: "Front Desk",
		Role:     enums.AccountRoleAdmin,
		IsActive: true,
	}
	svc, sessionMgr := buildTestService(t, account)

	oldAccessID := session.NewAccessID()
	accessToken, err := pkgAuth.MintAccessToken(testJWTConfig(), time.Now().UTC(), pkgAuth.AccessTokenPayload{
		AccountID: account.ID,
		Role:      account.Role,
		JTI:       oldAccessID,
	})
	if err != nil {
		t.Fatalf("mint token: %v", err)
	}

	resp, err := svc.Refresh(context.Background(), RefreshRequest{
		AccessToken:  accessToken,
		RefreshToken: "refresh-token",
	})
	if err != nil {
		t.Fatalf("refresh: %v", err)
	}
	if sessionMgr.rotatedFrom != oldAccessID {
		t.Fatalf("expected rotation keyed by old jti %s, got %s", oldAccessID, sessionMgr.rotatedFrom)
	}

	claims, err := pkgAuth.ParseAccessToken(testJWTConfig(), resp.AccessToken)
	if err != nil {
		t.Fatalf("parse rotated token: %v", err)
	}
	if claims.ID == oldAccessID {
		t.Fatalf("expected a fresh jti after rotation")
	}
	if claims.Role != enums.AccountRoleAdmin {
		t.Fatalf("expected role to survive rotation, got %s", claims.Role)
	}
	if resp.RefreshToken != "rotated-refresh" {
		t.Fatalf("expected rotated refresh token, got %q", resp.RefreshToken)
	}
}

func TestServiceRefreshRejectsBadRefreshToken(t *testing.T) {
	account := &models.Account{
		ID:       uuid.New(),
		Email:    "clerk@hotel.test",
		FullName: "Front Desk",
		Role:     enums.AccountRoleStaff,
		IsActive: true,
	}
	svc, sessionMgr := buildTestService(t, account)
	sessionMgr.rotateErr = session.ErrInvalidRefreshToken

	accessToken, err := pkgAuth.MintAccessToken(testJWTConfig(), time.Now().UTC(), pkgAuth.AccessTokenPayload{
		AccountID: account.ID,
		Role:      account.Role,
	})
	if err != nil {
		t.Fatalf("mint token: %v", err)
	}

	_, err = svc.Refresh(context.Background(), RefreshRequest{
		AccessToken:  accessToken,
		RefreshToken: "stolen",
	})
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeUnauthorized {
		t.Fatalf("expected unauthorized error, got %v", err)
	}
}

func TestServiceLogoutRevokesSession(t *testing.T) {
	account := &models.Account{ID: uuid.New(), Role: enums.AccountRoleStaff, IsActive: true}
	svc, sessionMgr := buildTestService(t, account)

	if err := svc.Logout(context.Background(), "some-jti"); err != nil {
		t.Fatalf("logout: %v", err)
	}
	if sessionMgr.revoked != "some-jti" {
		t.Fatalf("expected revoke for some-jti, got %q", sessionMgr.revoked)
	}

	if err := svc.Logout(context.Background(), "  "); err == nil {
		t.Fatalf("expected error for blank access id")
	}
}

type stubAccountRepo struct {
	account *models.Account
}

func (s *stubAccountRepo) FindByEmail(ctx context.Context, email string) (*models.Account, error) {
	if s.account != nil && s.account.Email == email {
		return s.account, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (s *stubAccountRepo) FindByID(ctx context.Context, id uuid.UUID) (*models.Account, error) {
	if s.account != nil && s.account.ID == id {
		return s.account, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (s *stubAccountRepo) UpdateLastLogin(ctx context.Context, id uuid.UUID, at time.Time) error {
	if s.account != nil && s.account.ID == id {
		s.account.LastLoginAt = &at
	}
	return nil
}

type stubSessionManager struct {
	refreshToken string
	rotatedFrom  string
	rotateErr    error
	revoked      string
}

func (s *stubSessionManager) Generate(ctx context.Context, accessID string) (string, error) {
	return s.refreshToken, nil
}

func (s *stubSessionManager) Rotate(ctx context.Context, oldAccessID, provided string) (string, string, error) {
	if s.rotateErr != nil {
		return "", "", s.rotateErr
	}
	s.rotatedFrom = oldAccessID
	return session.NewAccessID(), "rotated-refresh", nil
}

func (s *stubSessionManager) Revoke(ctx context.Context, accessID string) error {
	s.revoked = accessID
	return nil
}
