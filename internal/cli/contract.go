package cli

import (
	"context"
	"time"

	"github.com/salasys/RoomReservations/internal/domain"
	"github.com/salasys/RoomReservations/internal/usecase/book_reservation"
)

// RegistryService manages the client and room registries
type RegistryService interface {
	RegisterClient(ctx context.Context, name, surname string) (*domain.Client, error)
	RegisterRoom(ctx context.Context, name string, capacity int) (*domain.Room, error)
	ListClients(ctx context.Context) ([]*domain.Client, error)
	ListRooms(ctx context.Context) ([]*domain.Room, error)
}

// ReservationService answers reservation queries and edits event names
type ReservationService interface {
	ByDate(ctx context.Context, date time.Time) ([]*domain.ReservationDetail, error)
	InRange(ctx context.Context, from, to time.Time) ([]*domain.Reservation, error)
	EditEventName(ctx context.Context, id int64, newName string) error
}

// AvailabilityResolver computes which rooms have free shifts on a date
type AvailabilityResolver interface {
	AvailableRooms(ctx context.Context, date time.Time) ([]domain.RoomAvailability, error)
}

// BookingWorkflow validates and persists new reservations
type BookingWorkflow interface {
	ResolveDate(dateText string, acceptMonday bool) (time.Time, error)
	Execute(ctx context.Context, req *book_reservation.Request) (*book_reservation.Response, error)
}

// Logger is the logging interface
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
