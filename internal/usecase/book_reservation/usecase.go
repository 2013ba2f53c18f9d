package book_reservation

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/salasys/RoomReservations/internal/domain"
	clientRepo "github.com/salasys/RoomReservations/internal/infra/storage/clients"
	reservationRepo "github.com/salasys/RoomReservations/internal/infra/storage/reservations"
)

// UseCase is the booking workflow
type UseCase struct {
	clientRepo      ClientRepository
	reservationRepo ReservationRepository
	resolver        AvailabilityResolver
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase creates a new booking use case
func NewUseCase(
	clientRepo ClientRepository,
	reservationRepo ReservationRepository,
	resolver AvailabilityResolver,
	logger Logger,
) *UseCase {
	return &UseCase{
		clientRepo:      clientRepo,
		reservationRepo: reservationRepo,
		resolver:        resolver,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// ResolveDate validates raw date text against the current clock: format,
// minimum lead time and Sunday redirection. The interactive flow uses it to
// settle the date before room and shift selection; Execute repeats the same
// checks so the contract holds for direct calls too.
func (uc *UseCase) ResolveDate(dateText string, acceptMonday bool) (time.Time, error) {
	return resolveDate(dateText, acceptMonday, uc.timeProvider.Now())
}

// Execute runs the full booking validation chain and persists the
// reservation. The availability check and the insert are not covered by one
// lock; the store's uniqueness constraint is the sole arbiter, and a lost
// race surfaces as ErrShiftConflict.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("BookReservation: client=%d, date=%q, room=%d, shift=%s",
		req.ClientID, req.DateText, req.RoomID, req.Shift)

	// 1. Input validation
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("BookReservation: validation failed: %v", err)
		return nil, err
	}

	// 2. Client existence
	client, err := uc.clientRepo.GetByID(ctx, req.ClientID)
	if err != nil {
		if errors.Is(err, clientRepo.ErrClientNotFound) {
			uc.logger.Warn("BookReservation: client id=%d not found", req.ClientID)
			return nil, ErrClientNotFound
		}
		uc.logger.Error("BookReservation: failed to get client id=%d: %v", req.ClientID, err)
		return nil, fmt.Errorf("%w: failed to get client: %v", ErrInternal, err)
	}

	// 3. Date resolution against the live clock. The clock is re-read on
	// every call, so a retry loop crossing midnight is judged against the
	// new day.
	date, err := resolveDate(req.DateText, req.AcceptMonday, uc.timeProvider.Now())
	if err != nil {
		uc.logger.Warn("BookReservation: date resolution failed: %v", err)
		return nil, err
	}

	// 4. Availability for the finalized date
	available, err := uc.resolver.AvailableRooms(ctx, date)
	if err != nil {
		uc.logger.Error("BookReservation: availability lookup failed for %s: %v",
			domain.FormatDate(date), err)
		return nil, fmt.Errorf("%w: availability lookup failed: %v", ErrInternal, err)
	}
	if len(available) == 0 {
		uc.logger.Warn("BookReservation: no rooms available on %s", domain.FormatDate(date))
		return nil, ErrNoRoomsAvailable
	}

	// 5. Chosen room must be among the available ones
	room, ok := roomFor(available, req.RoomID)
	if !ok {
		uc.logger.Warn("BookReservation: room id=%d not available on %s", req.RoomID, domain.FormatDate(date))
		return nil, ErrRoomNotAvailable
	}

	// 6. Chosen shift must be free for that room
	if !req.Shift.IsValid() || !room.HasShift(req.Shift) {
		uc.logger.Warn("BookReservation: shift %q not available for room id=%d on %s",
			req.Shift, req.RoomID, domain.FormatDate(date))
		return nil, ErrShiftNotAvailable
	}

	// 7. Event name
	eventName := strings.TrimSpace(req.EventName)
	if eventName == "" {
		uc.logger.Warn("BookReservation: empty event name")
		return nil, ErrEmptyEventName
	}

	// 8. Atomic insert with folio assignment
	created, err := uc.reservationRepo.Create(ctx, &domain.Reservation{
		ClientID:  req.ClientID,
		RoomID:    req.RoomID,
		Date:      date,
		Shift:     req.Shift,
		EventName: eventName,
	})
	if err != nil {
		if errors.Is(err, reservationRepo.ErrShiftTaken) {
			uc.logger.Warn("BookReservation: lost insert race for room=%d, date=%s, shift=%s",
				req.RoomID, domain.FormatDate(date), req.Shift)
			return nil, ErrShiftConflict
		}
		uc.logger.Error("BookReservation: failed to create reservation: %v", err)
		return nil, fmt.Errorf("%w: failed to create reservation: %v", ErrInternal, err)
	}

	uc.logger.Info("BookReservation: created reservation id=%d folio=%s", created.ID, created.Folio)

	return &Response{
		ID:         created.ID,
		Folio:      created.Folio,
		ClientID:   client.ID,
		ClientName: client.DisplayName(),
		RoomID:     room.Room.ID,
		RoomName:   room.Room.Name,
		Date:       created.Date,
		Shift:      created.Shift,
		EventName:  created.EventName,
	}, nil
}

func roomFor(available []domain.RoomAvailability, roomID int64) (domain.RoomAvailability, bool) {
	for _, a := range available {
		if a.Room.ID == roomID {
			return a, true
		}
	}
	return domain.RoomAvailability{}, false
}
