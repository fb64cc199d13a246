package controllers

import (
	"net/http"

	"github.com/hotelier-app/hotelier-backend/api/responses"
	"github.com/hotelier-app/hotelier-backend/api/validators"
	"github.com/hotelier-app/hotelier-backend/internal/bookings"
	pkgerrors "github.com/hotelier-app/hotelier-backend/pkg/errors"
	"github.com/hotelier-app/hotelier-backend/pkg/logger"
)

type bookRoomRequest struct {
	UserID     int    `json:"userId" validate:"required,gt=0"`
	RoomNumber int    `json:"roomNumber" validate:"required,gt=0"`
	CheckIn    string `json:"checkIn" validate:"required"`
	CheckOut   string `json:"checkOut" validate:"required"`
}

// CreateBooking wires the booking endpoint into the HTTP layer.
func CreateBooking(svc bookings.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "booking service unavailable"))
			return
		}

		var body bookRoomRequest
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		result, err := svc.BookRoom(r.Context(), bookings.BookRoomInput{
			GuestNumber: body.UserID,
			RoomNumber:  body.RoomNumber,
			CheckIn:     body.CheckIn,
			CheckOut:    body.CheckOut,
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccessStatus(w, http.StatusCreated, result)
	}
}
