package controllers

import (
	"net/http"

	"github.com/hotelier-app/hotelier-backend/api/responses"
	"github.com/hotelier-app/hotelier-backend/api/validators"
	"github.com/hotelier-app/hotelier-backend/internal/guests"
	pkgerrors "github.com/hotelier-app/hotelier-backend/pkg/errors"
	"github.com/hotelier-app/hotelier-backend/pkg/logger"
)

type setUserRequest struct {
	UserID  int    `json:"userId" validate:"required,gt=0"`
	Balance *int64 `json:"balance" validate:"required,gte=0"`
}

// SetUser creates a guest or overwrites their balance.
func SetUser(svc *guests.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "guests service unavailable"))
			return
		}

		var body setUserRequest
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		result, err := svc.Set(r.Context(), guests.SetGuestInput{
			GuestNumber: body.UserID,
			Balance:     *body.Balance,
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, result)
	}
}

// ListUsers returns every guest with their booking history.
func ListUsers(svc *guests.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "guests service unavailable"))
			return
		}

		result, err := svc.List(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, result)
	}
}
