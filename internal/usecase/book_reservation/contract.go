package book_reservation

import (
	"context"
	"time"

	"github.com/salasys/RoomReservations/internal/domain"
)

// ClientRepository is the clients repository interface
type ClientRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Client, error)
}

// ReservationRepository is the reservations repository interface
type ReservationRepository interface {
	Create(ctx context.Context, res *domain.Reservation) (*domain.Reservation, error)
}

// AvailabilityResolver reports the rooms with at least one free shift on a
// date. The workflow consults it after the date is finalized.
type AvailabilityResolver interface {
	AvailableRooms(ctx context.Context, date time.Time) ([]domain.RoomAvailability, error)
}

// TimeProvider supplies the current time (replaceable in tests)
type TimeProvider interface {
	Now() time.Time
}

// Logger is the logging interface
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider is the production time provider
type RealTimeProvider struct{}

// Now returns the current time
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
