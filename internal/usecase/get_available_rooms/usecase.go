package get_available_rooms

import (
	"context"
	"fmt"
	"time"

	"github.com/salasys/RoomReservations/internal/domain"
)

// UseCase resolves which rooms have at least one free shift on a date
type UseCase struct {
	roomRepo        RoomRepository
	reservationRepo ReservationRepository
	logger          Logger
}

// NewUseCase creates a new availability use case
func NewUseCase(roomRepo RoomRepository, reservationRepo ReservationRepository, logger Logger) *UseCase {
	return &UseCase{
		roomRepo:        roomRepo,
		reservationRepo: reservationRepo,
		logger:          logger,
	}
}

// Execute computes availability for the requested date.
// The store is re-queried on every call; bookings change between calls and
// no result is ever cached.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	if req.Date.IsZero() {
		return nil, fmt.Errorf("%w: date is required", ErrInvalidInput)
	}
	date := domain.DateOnly(req.Date)

	// 1. Every registered room, in registration order
	roomList, err := uc.roomRepo.List(ctx)
	if err != nil {
		uc.logger.Error("GetAvailableRooms: failed to list rooms: %v", err)
		return nil, fmt.Errorf("%w: failed to list rooms: %v", ErrInternal, err)
	}

	// 2. Every reserved (room, shift) pair for the date
	reserved, err := uc.reservationRepo.ReservedShifts(ctx, date)
	if err != nil {
		uc.logger.Error("GetAvailableRooms: failed to load reserved shifts for %s: %v",
			domain.FormatDate(date), err)
		return nil, fmt.Errorf("%w: failed to load reserved shifts: %v", ErrInternal, err)
	}

	// 3. Keep rooms with at least one free shift, shifts in enumeration order
	available := make([]domain.RoomAvailability, 0, len(roomList))
	for _, room := range roomList {
		free := freeShiftsFor(reserved[room.ID])
		if len(free) == 0 {
			continue
		}
		available = append(available, domain.RoomAvailability{Room: *room, FreeShifts: free})
	}

	uc.logger.Info("GetAvailableRooms: %d of %d rooms available on %s",
		len(available), len(roomList), domain.FormatDate(date))

	return &Response{Date: date, Rooms: available}, nil
}

// AvailableRooms is the resolver entry point used by the booking workflow
func (uc *UseCase) AvailableRooms(ctx context.Context, date time.Time) ([]domain.RoomAvailability, error) {
	resp, err := uc.Execute(ctx, &Request{Date: date})
	if err != nil {
		return nil, err
	}
	return resp.Rooms, nil
}

// freeShiftsFor returns the shifts of the fixed enumeration that are not in
// the taken list
func freeShiftsFor(taken []domain.Shift) []domain.Shift {
	free := make([]domain.Shift, 0, len(domain.AllShifts))
	for _, shift := range domain.AllShifts {
		if !containsShift(taken, shift) {
			free = append(free, shift)
		}
	}
	return free
}

func containsShift(shifts []domain.Shift, shift domain.Shift) bool {
	for _, s := range shifts {
		if s == shift {
			return true
		}
	}
	return false
}
