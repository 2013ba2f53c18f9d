package book_reservation

import (
	"fmt"
	"strings"
	"time"

	"github.com/salasys/RoomReservations/internal/domain"
)

// validateRequest validates the request fields that need no store access
func validateRequest(req *Request) error {
	if req.ClientID <= 0 {
		return fmt.Errorf("%w: clientID must be positive", ErrInvalidInput)
	}

	if req.RoomID <= 0 {
		return fmt.Errorf("%w: roomID must be positive", ErrInvalidInput)
	}

	if strings.TrimSpace(req.DateText) == "" {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	return nil
}

// resolveDate turns raw date text into the final reservation date:
// parse against the fixed format, enforce the minimum lead time against the
// given current time, and redirect Sundays to the following Monday once the
// substitution is confirmed.
func resolveDate(dateText string, acceptMonday bool, now time.Time) (time.Time, error) {
	date, err := domain.ParseDate(strings.TrimSpace(dateText))
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q does not match %s", ErrInvalidDateFormat, dateText, "MM-DD-YYYY")
	}

	minDate := domain.MinBookableDate(now)
	if date.Before(minDate) {
		return time.Time{}, fmt.Errorf("%w: earliest bookable date is %s", ErrDateTooSoon, domain.FormatDate(minDate))
	}

	if domain.IsSunday(date) {
		if !acceptMonday {
			return time.Time{}, &SundayDateError{Requested: date, Proposed: domain.NextMonday(date)}
		}
		date = domain.NextMonday(date)
	}

	return date, nil
}
