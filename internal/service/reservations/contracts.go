package reservations

import (
	"context"
	"time"

	"github.com/salasys/RoomReservations/internal/domain"
)

// ReservationRepository is the reservations repository interface
type ReservationRepository interface {
	DetailsByDate(ctx context.Context, date time.Time) ([]*domain.ReservationDetail, error)
	ByDateRange(ctx context.Context, from, to time.Time) ([]*domain.Reservation, error)
	UpdateEventName(ctx context.Context, id int64, name string) error
}

// Logger is the logging interface
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
