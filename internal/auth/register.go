package auth

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	"github.com/hotelier-app/hotelier-backend/pkg/config"
	dbpkg "github.com/hotelier-app/hotelier-backend/pkg/db"
	"github.com/hotelier-app/hotelier-backend/pkg/db/models"
	"github.com/hotelier-app/hotelier-backend/pkg/enums"
	pkgerrors "github.com/hotelier-app/hotelier-backend/pkg/errors"
	"github.com/hotelier-app/hotelier-backend/pkg/security"
)

const minPasswordLength = 8

// RegisterRequest contains the payload required to onboard a staff account.
type RegisterRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
	FullName string `json:"full_name" validate:"required"`
	Role     string `json:"role,omitempty"`
}

// RegisterService handles staff account onboarding.
type RegisterService interface {
	Register(ctx context.Context, req RegisterRequest) (*AccountDTO, error)
}

type txRunner interface {
	WithTx(ctx context.Context, fn func(tx *gorm.DB) error) error
}

// RegisterServiceParams packages the dependencies for the registration flow.
type RegisterServiceParams struct {
	AccountRepo    *Repository
	TxRunner       txRunner
	PasswordConfig config.PasswordConfig
}

type registerService struct {
	accounts    *Repository
	tx          txRunner
	passwordCfg config.PasswordConfig
}

// NewRegisterService builds a registration service with the provided dependencies.
func NewRegisterService(params RegisterServiceParams) (RegisterService, error) {
	if params.AccountRepo == nil {
		return nil, pkgerrors.New(pkgerrors.CodeInternal, "account repository required")
	}
	if params.TxRunner == nil {
		return nil, pkgerrors.New(pkgerrors.CodeInternal, "transaction runner required")
	}
	return &registerService{
		accounts:    params.AccountRepo,
		tx:          params.TxRunner,
		passwordCfg: params.PasswordConfig,
	}, nil
}

func (s *registerService) Register(ctx context.Context, req RegisterRequest) (*AccountDTO, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))
	if email == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "email is required")
	}
	if len(req.Password) < minPasswordLength {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "password must be at least 8 characters")
	}
	fullName := strings.TrimSpace(req.FullName)
	if fullName == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "full name is required")
	}

	role := enums.AccountRoleStaff
	if strings.TrimSpace(req.Role) != "" {
		parsed, err := enums.ParseAccountRole(req.Role)
		if err != nil {
			return nil, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid role")
		}
		role = parsed
	}

	passwordHash, err := security.HashPassword(req.Password, s.passwordCfg)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "hash password")
	}

	account := &models.Account{
		Email:        email,
		PasswordHash: passwordHash,
		FullName:     fullName,
		Role:         role,
		IsActive:     true,
	}
	err = s.tx.WithTx(ctx, func(tx *gorm.DB) error {
		repo := s.accounts.WithTx(tx)

		if _, err := repo.FindByEmail(ctx, email); err == nil {
			return pkgerrors.New(pkgerrors.CodeConflict, "email already registered")
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "check account email")
		}

		if err := repo.Create(ctx, account); err != nil {
			if dbpkg.IsUniqueViolation(err) {
				return pkgerrors.New(pkgerrors.CodeConflict, "email already registered")
			}
			return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "create account")
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	dto := toAccountDTO(account)
	return &dto, nil
}
