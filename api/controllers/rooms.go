package controllers

import (
	"net/http"

	"github.com/hotelier-app/hotelier-backend/api/responses"
	"github.com/hotelier-app/hotelier-backend/api/validators"
	"github.com/hotelier-app/hotelier-backend/internal/rooms"
	pkgerrors "github.com/hotelier-app/hotelier-backend/pkg/errors"
	"github.com/hotelier-app/hotelier-backend/pkg/logger"
)

type setRoomRequest struct {
	RoomNumber    int    `json:"roomNumber" validate:"required,gt=0"`
	Type          string `json:"type" validate:"required"`
	PricePerNight int64  `json:"pricePerNight" validate:"required,gt=0"`
}

// SetRoom creates a room or overwrites its type and nightly price.
func SetRoom(svc *rooms.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "rooms service unavailable"))
			return
		}

		var body setRoomRequest
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		result, err := svc.Set(r.Context(), rooms.SetRoomInput{
			RoomNumber:    body.RoomNumber,
			Type:          body.Type,
			PricePerNight: body.PricePerNight,
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, result)
	}
}

// ListRoomBookings returns every room with its booking history.
func ListRoomBookings(svc *rooms.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "rooms service unavailable"))
			return
		}

		result, err := svc.ListWithBookings(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, result)
	}
}
