package guests

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	dbpkg "github.com/hotelier-app/hotelier-backend/pkg/db"
	"github.com/hotelier-app/hotelier-backend/pkg/db/models"
	pkgerrors "github.com/hotelier-app/hotelier-backend/pkg/errors"
)

type txRunner interface {
	WithTx(ctx context.Context, fn func(tx *gorm.DB) error) error
}

// Service exposes the administrative guest operations.
type Service struct {
	repo *Repository
	tx   txRunner
}

// NewService builds the guests service.
func NewService(repo *Repository, tx txRunner) (*Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("repository is required")
	}
	if tx == nil {
		return nil, fmt.Errorf("transaction runner is required")
	}
	return &Service{repo: repo, tx: tx}, nil
}

// Set creates the guest or overwrites their balance outright. Idempotent,
// keyed by the client-facing guest number.
func (s *Service) Set(ctx context.Context, input SetGuestInput) (*GuestDTO, error) {
	if input.GuestNumber <= 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "user id must be positive")
	}
	if input.Balance < 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "balance must not be negative")
	}

	var guest *models.Guest
	err := s.tx.WithTx(ctx, func(tx *gorm.DB) error {
		repo := s.repo.WithTx(tx)

		existing, err := repo.FindByNumber(ctx, input.GuestNumber)
		switch {
		case err == nil:
			existing.Balance = input.Balance
			if err := repo.UpdateBalance(ctx, existing); err != nil {
				return err
			}
			guest = existing
			return nil
		case dbpkg.IsNotFound(err):
			created := &models.Guest{
				GuestNumber: input.GuestNumber,
				Balance:     input.Balance,
			}
			if err := repo.Create(ctx, created); err != nil {
				return err
			}
			guest = created
			return nil
		default:
			return err
		}
	})
	if err != nil {
		return nil, err
	}
	return toGuestDTO(guest), nil
}

// List returns every guest with their booking history.
func (s *Service) List(ctx context.Context) ([]GuestWithBookingsDTO, error) {
	guests, err := s.repo.ListWithBookings(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]GuestWithBookingsDTO, 0, len(guests))
	for i := range guests {
		out = append(out, toGuestWithBookings(&guests[i]))
	}
	return out, nil
}
