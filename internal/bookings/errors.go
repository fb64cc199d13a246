package bookings

import "errors"

// Sentinel errors travel inside the coded error chain so callers can branch
// with errors.Is while the HTTP layer keeps the code-to-status mapping.
var (
	ErrInvalidDateFormat   = errors.New("dates must use the YYYY-MM-DD format")
	ErrInvalidDateRange    = errors.New("check-out must be after check-in")
	ErrGuestNotFound       = errors.New("guest not found")
	ErrRoomNotFound        = errors.New("room not found")
	ErrRoomUnavailable     = errors.New("room is unavailable for the requested dates")
	ErrInsufficientBalance = errors.New("guest balance is insufficient for this stay")
)
