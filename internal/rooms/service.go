package rooms

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	dbpkg "github.com/hotelier-app/hotelier-backend/pkg/db"
	"github.com/hotelier-app/hotelier-backend/pkg/db/models"
	"github.com/hotelier-app/hotelier-backend/pkg/enums"
	pkgerrors "github.com/hotelier-app/hotelier-backend/pkg/errors"
)

type txRunner interface {
	WithTx(ctx context.Context, fn func(tx *gorm.DB) error) error
}

// Service exposes the administrative room operations.
type Service struct {
	repo *Repository
	tx   txRunner
}

// NewService builds the rooms service.
func NewService(repo *Repository, tx txRunner) (*Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("repository is required")
	}
	if tx == nil {
		return nil, fmt.Errorf("transaction runner is required")
	}
	return &Service{repo: repo, tx: tx}, nil
}

// Set creates the room or overwrites its type and nightly price. The
// operation is idempotent and keyed by the client-facing room number.
func (s *Service) Set(ctx context.Context, input SetRoomInput) (*RoomDTO, error) {
	if input.RoomNumber <= 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "room number must be positive")
	}
	roomType, err := enums.ParseRoomType(input.Type)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeValidation, err,
			fmt.Sprintf("unknown room type %q", input.Type))
	}
	if input.PricePerNight <= 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "price per night must be positive")
	}

	var room *models.Room
	err = s.tx.WithTx(ctx, func(tx *gorm.DB) error {
		repo := s.repo.WithTx(tx)

		existing, err := repo.FindByNumber(ctx, input.RoomNumber)
		switch {
		case err == nil:
			existing.Type = roomType
			existing.PricePerNight = input.PricePerNight
			if err := repo.UpdateAttributes(ctx, existing); err != nil {
				return err
			}
			room = existing
			return nil
		case dbpkg.IsNotFound(err):
			created := &models.Room{
				RoomNumber:    input.RoomNumber,
				Type:          roomType,
				PricePerNight: input.PricePerNight,
			}
			if err := repo.Create(ctx, created); err != nil {
				return err
			}
			room = created
			return nil
		default:
			return err
		}
	})
	if err != nil {
		return nil, err
	}
	return toRoomDTO(room), nil
}

// ListWithBookings returns every room with its booking history.
func (s *Service) ListWithBookings(ctx context.Context) ([]RoomWithBookingsDTO, error) {
	rooms, err := s.repo.ListWithBookings(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]RoomWithBookingsDTO, 0, len(rooms))
	for i := range rooms {
		out = append(out, toRoomWithBookings(&rooms[i]))
	}
	return out, nil
}
