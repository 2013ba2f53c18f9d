package registry

import (
	"context"
	"fmt"
	"strings"

	"github.com/salasys/RoomReservations/internal/domain"
)

// Service registers and lists clients and rooms. Both are created once and
// never mutated or deleted afterwards.
type Service struct {
	clientRepo ClientRepository
	roomRepo   RoomRepository
	logger     Logger
}

// NewService creates a new registry service
func NewService(clientRepo ClientRepository, roomRepo RoomRepository, logger Logger) *Service {
	return &Service{
		clientRepo: clientRepo,
		roomRepo:   roomRepo,
		logger:     logger,
	}
}

// RegisterClient creates a new client with trimmed, non-empty name and surname
func (s *Service) RegisterClient(ctx context.Context, name, surname string) (*domain.Client, error) {
	name = strings.TrimSpace(name)
	surname = strings.TrimSpace(surname)
	if name == "" {
		return nil, fmt.Errorf("%w: client name", ErrEmptyField)
	}
	if surname == "" {
		return nil, fmt.Errorf("%w: client surname", ErrEmptyField)
	}

	client, err := s.clientRepo.Create(ctx, &domain.Client{Name: name, Surname: surname})
	if err != nil {
		s.logger.Error("RegisterClient: failed to create client: %v", err)
		return nil, fmt.Errorf("%w: RegisterClient - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("RegisterClient: created client id=%d", client.ID)
	return client, nil
}

// RegisterRoom creates a new room with a trimmed, non-empty name and a
// positive capacity
func (s *Service) RegisterRoom(ctx context.Context, name string, capacity int) (*domain.Room, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("%w: room name", ErrEmptyField)
	}
	if capacity <= 0 {
		return nil, ErrInvalidCapacity
	}

	room, err := s.roomRepo.Create(ctx, &domain.Room{Name: name, Capacity: capacity})
	if err != nil {
		s.logger.Error("RegisterRoom: failed to create room: %v", err)
		return nil, fmt.Errorf("%w: RegisterRoom - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("RegisterRoom: created room id=%d capacity=%d", room.ID, room.Capacity)
	return room, nil
}

// ListClients returns every client ordered by surname then name
func (s *Service) ListClients(ctx context.Context) ([]*domain.Client, error) {
	clients, err := s.clientRepo.List(ctx)
	if err != nil {
		s.logger.Error("ListClients: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListClients - repository error: %v", ErrInternal, err)
	}
	return clients, nil
}

// ListRooms returns every room in registration order
func (s *Service) ListRooms(ctx context.Context) ([]*domain.Room, error) {
	rooms, err := s.roomRepo.List(ctx)
	if err != nil {
		s.logger.Error("ListRooms: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListRooms - repository error: %v", ErrInternal, err)
	}
	return rooms, nil
}
