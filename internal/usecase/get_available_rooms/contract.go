package get_available_rooms

import (
	"context"
	"time"

	"github.com/salasys/RoomReservations/internal/domain"
)

// RoomRepository is the rooms repository interface
type RoomRepository interface {
	List(ctx context.Context) ([]*domain.Room, error)
}

// ReservationRepository is the reservations repository interface
type ReservationRepository interface {
	ReservedShifts(ctx context.Context, date time.Time) (map[int64][]domain.Shift, error)
}

// Logger is the logging interface
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
