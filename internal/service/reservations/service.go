package reservations

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/salasys/RoomReservations/internal/domain"
	reservationRepo "github.com/salasys/RoomReservations/internal/infra/storage/reservations"
)

// Service answers reservation queries and edits event names
type Service struct {
	reservationRepo ReservationRepository
	logger          Logger
}

// NewService creates a new reservations service
func NewService(reservationRepo ReservationRepository, logger Logger) *Service {
	return &Service{
		reservationRepo: reservationRepo,
		logger:          logger,
	}
}

// ByDate returns the report rows for one date, joined with client and room
// fields, ordered by shift enumeration order then room key
func (s *Service) ByDate(ctx context.Context, date time.Time) ([]*domain.ReservationDetail, error) {
	date = domain.DateOnly(date)

	details, err := s.reservationRepo.DetailsByDate(ctx, date)
	if err != nil {
		s.logger.Error("ByDate: repository error for %s: %v", domain.FormatDate(date), err)
		return nil, fmt.Errorf("%w: ByDate - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("ByDate: %d reservations on %s", len(details), domain.FormatDate(date))
	return details, nil
}

// InRange returns every reservation between from and to inclusive, ordered
// by date ascending. The end date must not precede the start date.
func (s *Service) InRange(ctx context.Context, from, to time.Time) ([]*domain.Reservation, error) {
	from = domain.DateOnly(from)
	to = domain.DateOnly(to)
	if to.Before(from) {
		return nil, fmt.Errorf("%w: %s before %s", ErrInvalidDateRange,
			domain.FormatDate(to), domain.FormatDate(from))
	}

	result, err := s.reservationRepo.ByDateRange(ctx, from, to)
	if err != nil {
		s.logger.Error("InRange: repository error for %s..%s: %v",
			domain.FormatDate(from), domain.FormatDate(to), err)
		return nil, fmt.Errorf("%w: InRange - repository error: %v", ErrInternal, err)
	}

	return result, nil
}

// EditEventName replaces the event name of an existing reservation with a
// trimmed, non-empty value
func (s *Service) EditEventName(ctx context.Context, id int64, newName string) error {
	newName = strings.TrimSpace(newName)
	if newName == "" {
		return ErrEmptyEventName
	}

	if err := s.reservationRepo.UpdateEventName(ctx, id, newName); err != nil {
		if errors.Is(err, reservationRepo.ErrReservationNotFound) {
			s.logger.Warn("EditEventName: reservation id=%d not found", id)
			return ErrReservationNotFound
		}
		s.logger.Error("EditEventName: repository error for id=%d: %v", id, err)
		return fmt.Errorf("%w: EditEventName - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("EditEventName: updated reservation id=%d", id)
	return nil
}
