package bookings

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	dbpkg "github.com/hotelier-app/hotelier-backend/pkg/db"
	"github.com/hotelier-app/hotelier-backend/pkg/db/models"
	"github.com/hotelier-app/hotelier-backend/pkg/enums"
	pkgerrors "github.com/hotelier-app/hotelier-backend/pkg/errors"
	"github.com/hotelier-app/hotelier-backend/pkg/metrics"
	"github.com/hotelier-app/hotelier-backend/pkg/outbox"
	"github.com/hotelier-app/hotelier-backend/pkg/outbox/payloads"
)

type txRunner interface {
	WithTx(ctx context.Context, fn func(tx *gorm.DB) error) error
}

type outboxPublisher interface {
	Emit(ctx context.Context, tx *gorm.DB, event outbox.DomainEvent) error
}

type service struct {
	repo    Repository
	tx      txRunner
	outbox  outboxPublisher
	metrics *metrics.BookingMetrics
	locks   *roomLocks
}

// NewService builds the booking service with the required dependencies.
// The outbox publisher and metrics may be nil.
func NewService(repo Repository, tx txRunner, publisher outboxPublisher, bookingMetrics *metrics.BookingMetrics) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("repository is required")
	}
	if tx == nil {
		return nil, fmt.Errorf("transaction runner is required")
	}
	return &service{
		repo:    repo,
		tx:      tx,
		outbox:  publisher,
		metrics: bookingMetrics,
		locks:   newRoomLocks(),
	}, nil
}

// BookRoom runs the whole booking sequence atomically: date validation,
// guest and room resolution, conflict scan, pricing, balance debit, and the
// snapshot insert. Either everything commits or nothing does.
func (s *service) BookRoom(ctx context.Context, input BookRoomInput) (*BookingDTO, error) {
	start := time.Now()
	dto, err := s.bookRoom(ctx, input)
	s.metrics.ObserveAttempt(outcomeLabel(err), time.Since(start))
	return dto, err
}

func (s *service) bookRoom(ctx context.Context, input BookRoomInput) (*BookingDTO, error) {
	stay, err := ParseStayRange(input.CheckIn, input.CheckOut)
	if err != nil {
		return nil, err
	}

	// The room lock spans the conflict scan and the insert so that two
	// concurrent requests for the same room cannot both pass the scan.
	unlock := s.locks.Lock(input.RoomNumber)
	defer unlock()

	var dto *BookingDTO
	err = s.tx.WithTx(ctx, func(tx *gorm.DB) error {
		repo := s.repo.WithTx(tx)

		guest, err := repo.FindGuestByNumber(ctx, input.GuestNumber)
		if err != nil {
			if dbpkg.IsNotFound(err) {
				return pkgerrors.Wrap(pkgerrors.CodeNotFound, ErrGuestNotFound,
					fmt.Sprintf("user %d not found", input.GuestNumber))
			}
			return err
		}

		room, err := repo.FindRoomByNumber(ctx, input.RoomNumber)
		if err != nil {
			if dbpkg.IsNotFound(err) {
				return pkgerrors.Wrap(pkgerrors.CodeNotFound, ErrRoomNotFound,
					fmt.Sprintf("room %d not found", input.RoomNumber))
			}
			return err
		}

		conflicts, err := repo.FindConflicts(ctx, room.ID, stay)
		if err != nil {
			return err
		}
		if len(conflicts) > 0 {
			return pkgerrors.Wrap(pkgerrors.CodeConflict, ErrRoomUnavailable,
				fmt.Sprintf("room %d is already booked for the requested dates", input.RoomNumber)).
				WithDetails(toConflictRanges(conflicts))
		}

		total := StayPrice(room.PricePerNight, stay)
		if guest.Balance < total {
			return pkgerrors.Wrap(pkgerrors.CodeStateConflict, ErrInsufficientBalance,
				fmt.Sprintf("booking requires %d but user %d has %d", total, input.GuestNumber, guest.Balance))
		}

		booking := &models.Booking{
			GuestID:               guest.ID,
			RoomID:                room.ID,
			CheckIn:               stay.CheckIn,
			CheckOut:              stay.CheckOut,
			TotalPrice:            total,
			GuestBalanceAtBooking: guest.Balance,
			RoomTypeAtBooking:     room.Type,
			RoomPriceAtBooking:    room.PricePerNight,
		}
		if err := repo.CreateBooking(ctx, booking); err != nil {
			// The database-level overlap guard fires when another process
			// booked the room between our scan and this insert.
			if dbpkg.IsExclusionViolation(err) {
				return pkgerrors.Wrap(pkgerrors.CodeConflict, ErrRoomUnavailable,
					fmt.Sprintf("room %d is already booked for the requested dates", input.RoomNumber))
			}
			return err
		}
		if err := repo.UpdateGuestBalance(ctx, guest.ID, guest.Balance-total); err != nil {
			return err
		}

		if s.outbox != nil {
			event := outbox.DomainEvent{
				EventType:     enums.EventBookingCreated,
				AggregateType: enums.AggregateBooking,
				AggregateID:   booking.ID,
				Data: payloads.BookingCreatedEvent{
					BookingID:          booking.ID,
					GuestID:            guest.ID,
					GuestNumber:        guest.GuestNumber,
					RoomID:             room.ID,
					RoomNumber:         room.RoomNumber,
					RoomTypeAtBooking:  booking.RoomTypeAtBooking,
					RoomPriceAtBooking: booking.RoomPriceAtBooking,
					CheckIn:            stay.CheckIn,
					CheckOut:           stay.CheckOut,
					Nights:             int(Nights(stay)),
					TotalPrice:         total,
				},
				Version: 1,
			}
			if err := s.outbox.Emit(ctx, tx, event); err != nil {
				return err
			}
		}

		dto = toBookingDTO(booking, guest.GuestNumber, room.RoomNumber, stay)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return dto, nil
}

func outcomeLabel(err error) string {
	switch {
	case err == nil:
		return "confirmed"
	case errors.Is(err, ErrInvalidDateFormat), errors.Is(err, ErrInvalidDateRange):
		return "invalid_dates"
	case errors.Is(err, ErrGuestNotFound):
		return "guest_not_found"
	case errors.Is(err, ErrRoomNotFound):
		return "room_not_found"
	case errors.Is(err, ErrRoomUnavailable):
		return "room_unavailable"
	case errors.Is(err, ErrInsufficientBalance):
		return "insufficient_balance"
	default:
		return "error"
	}
}
