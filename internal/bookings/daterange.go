package bookings

import (
	"fmt"
	"regexp"
	"time"

	pkgerrors "github.com/hotelier-app/hotelier-backend/pkg/errors"
)

const dateLayout = "2006-01-02"

var dateRe = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// StayRange is a validated half-open [CheckIn, CheckOut) date interval.
// Both endpoints sit at UTC midnight.
type StayRange struct {
	CheckIn  time.Time
	CheckOut time.Time
}

// ParseStayRange validates the raw date strings and normalizes them to UTC
// midnight. A stay must span at least one night.
func ParseStayRange(checkInRaw, checkOutRaw string) (StayRange, error) {
	checkIn, err := parseDay(checkInRaw)
	if err != nil {
		return StayRange{}, err
	}
	checkOut, err := parseDay(checkOutRaw)
	if err != nil {
		return StayRange{}, err
	}
	if !checkIn.Before(checkOut) {
		return StayRange{}, pkgerrors.Wrap(pkgerrors.CodeValidation, ErrInvalidDateRange,
			fmt.Sprintf("check-out %s must be after check-in %s", checkOutRaw, checkInRaw))
	}
	return StayRange{CheckIn: checkIn, CheckOut: checkOut}, nil
}

func parseDay(raw string) (time.Time, error) {
	if !dateRe.MatchString(raw) {
		return time.Time{}, pkgerrors.Wrap(pkgerrors.CodeValidation, ErrInvalidDateFormat,
			fmt.Sprintf("invalid date %q, expected YYYY-MM-DD", raw))
	}
	parsed, err := time.ParseInLocation(dateLayout, raw, time.UTC)
	if err != nil {
		return time.Time{}, pkgerrors.Wrap(pkgerrors.CodeValidation, ErrInvalidDateFormat,
			fmt.Sprintf("invalid date %q, expected YYYY-MM-DD", raw))
	}
	return parsed.Truncate(24 * time.Hour), nil
}

// Overlaps reports whether two half-open stays intersect. Touching
// boundaries (one check-out equal to the other check-in) do not overlap.
func (s StayRange) Overlaps(other StayRange) bool {
	return s.CheckIn.Before(other.CheckOut) && other.CheckIn.Before(s.CheckOut)
}
