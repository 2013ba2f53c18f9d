package registry

import (
	"context"

	"github.com/salasys/RoomReservations/internal/domain"
)

// ClientRepository is the clients repository interface
type ClientRepository interface {
	Create(ctx context.Context, client *domain.Client) (*domain.Client, error)
	List(ctx context.Context) ([]*domain.Client, error)
}

// RoomRepository is the rooms repository interface
type RoomRepository interface {
	Create(ctx context.Context, room *domain.Room) (*domain.Room, error)
	List(ctx context.Context) ([]*domain.Room, error)
}

// Logger is the logging interface
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
