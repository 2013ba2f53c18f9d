package cli

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/salasys/RoomReservations/internal/domain"
	"github.com/salasys/RoomReservations/internal/usecase/book_reservation"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fakeRegistry struct {
	clients []*domain.Client
	rooms   []*domain.Room
}

func (f *fakeRegistry) RegisterClient(_ context.Context, name, surname string) (*domain.Client, error) {
	client := &domain.Client{ID: int64(len(f.clients) + 1), Name: name, Surname: surname}
	f.clients = append(f.clients, client)
	return client, nil
}

func (f *fakeRegistry) RegisterRoom(_ context.Context, name string, capacity int) (*domain.Room, error) {
	room := &domain.Room{ID: int64(len(f.rooms) + 1), Name: name, Capacity: capacity}
	f.rooms = append(f.rooms, room)
	return room, nil
}

func (f *fakeRegistry) ListClients(context.Context) ([]*domain.Client, error) {
	return f.clients, nil
}

func (f *fakeRegistry) ListRooms(context.Context) ([]*domain.Room, error) {
	return f.rooms, nil
}

type fakeReservations struct {
	byDate   []*domain.ReservationDetail
	inRange  []*domain.Reservation
	editedID int64
	newName  string
}

func (f *fakeReservations) ByDate(context.Context, time.Time) ([]*domain.ReservationDetail, error) {
	return f.byDate, nil
}

func (f *fakeReservations) InRange(context.Context, time.Time, time.Time) ([]*domain.Reservation, error) {
	return f.inRange, nil
}

func (f *fakeReservations) EditEventName(_ context.Context, id int64, newName string) error {
	f.editedID = id
	f.newName = newName
	return nil
}

type fakeResolver struct {
	rooms []domain.RoomAvailability
}

func (f *fakeResolver) AvailableRooms(context.Context, time.Time) ([]domain.RoomAvailability, error) {
	return f.rooms, nil
}

type fakeBooking struct {
	resp     *book_reservation.Response
	err      error
	lastReq  *book_reservation.Request
	failures int
}

func (f *fakeBooking) ResolveDate(dateText string, acceptMonday bool) (time.Time, error) {
	date, err := domain.ParseDate(dateText)
	if err != nil {
		return time.Time{}, book_reservation.ErrInvalidDateFormat
	}
	if domain.IsSunday(date) {
		if !acceptMonday {
			return time.Time{}, &book_reservation.SundayDateError{
				Requested: date,
				Proposed:  domain.NextMonday(date),
			}
		}
		return domain.NextMonday(date), nil
	}
	return date, nil
}

func (f *fakeBooking) Execute(_ context.Context, req *book_reservation.Request) (*book_reservation.Response, error) {
	f.lastReq = req
	if f.failures > 0 {
		f.failures--
		return nil, book_reservation.ErrShiftConflict
	}
	return f.resp, f.err
}

func newTestApp(t *testing.T, script string, booking *fakeBooking, registrySvc *fakeRegistry,
	reservationSvc *fakeReservations, resolver *fakeResolver) (*App, *bytes.Buffer) {
	t.Helper()
	out := &bytes.Buffer{}
	app := NewApp(registrySvc, reservationSvc, resolver, booking,
		t.TempDir(), nopLogger{}, strings.NewReader(script), out)
	return app, out
}

func TestRun_ExitWithConfirmation(t *testing.T) {
	app, out := newTestApp(t, "0\nn\n0\ny\n",
		&fakeBooking{}, &fakeRegistry{}, &fakeReservations{}, &fakeResolver{})

	require.NoError(t, app.Run(context.Background()))
	assert.Contains(t, out.String(), "Goodbye.")
}

func TestRun_UnknownOption(t *testing.T) {
	app, out := newTestApp(t, "42\n0\ny\n",
		&fakeBooking{}, &fakeRegistry{}, &fakeReservations{}, &fakeResolver{})

	require.NoError(t, app.Run(context.Background()))
	assert.Contains(t, out.String(), msgInvalidOption)
}

func TestRun_RegisterClient(t *testing.T) {
	registrySvc := &fakeRegistry{}
	app, out := newTestApp(t, "1\nJane\nDoe\n0\ny\n",
		&fakeBooking{}, registrySvc, &fakeReservations{}, &fakeResolver{})

	require.NoError(t, app.Run(context.Background()))

	require.Len(t, registrySvc.clients, 1)
	assert.Equal(t, "Jane", registrySvc.clients[0].Name)
	assert.Contains(t, out.String(), "Client Doe, Jane registered with key 1.")
}

func TestRun_RegisterRoomRejectsNonPositiveCapacity(t *testing.T) {
	registrySvc := &fakeRegistry{}
	app, out := newTestApp(t, "2\nHall A\n0\n12\n0\ny\n",
		&fakeBooking{}, registrySvc, &fakeReservations{}, &fakeResolver{})

	require.NoError(t, app.Run(context.Background()))

	require.Len(t, registrySvc.rooms, 1)
	assert.Equal(t, 12, registrySvc.rooms[0].Capacity)
	assert.Contains(t, out.String(), msgInvalidCapacity)
}

func TestRun_BookReservationHappyPath(t *testing.T) {
	date, err := domain.ParseDate("09-15-2026")
	require.NoError(t, err)

	registrySvc := &fakeRegistry{
		clients: []*domain.Client{{ID: 1, Name: "Jane", Surname: "Doe"}},
	}
	resolver := &fakeResolver{rooms: []domain.RoomAvailability{{
		Room:       domain.Room{ID: 1, Name: "Hall A", Capacity: 40},
		FreeShifts: domain.AllShifts,
	}}}
	booking := &fakeBooking{resp: &book_reservation.Response{
		ID: 1, Folio: "R000001", ClientName: "Doe, Jane",
		RoomName: "Hall A", Date: date, Shift: domain.ShiftMorning,
	}}

	script := "6\n1\n09-15-2026\n1\n1\nBoard meeting\n0\ny\n"
	app, out := newTestApp(t, script, booking, registrySvc, &fakeReservations{}, resolver)

	require.NoError(t, app.Run(context.Background()))

	require.NotNil(t, booking.lastReq)
	assert.Equal(t, int64(1), booking.lastReq.ClientID)
	assert.Equal(t, "09-15-2026", booking.lastReq.DateText)
	assert.False(t, booking.lastReq.AcceptMonday)
	assert.Equal(t, domain.ShiftMorning, booking.lastReq.Shift)
	assert.Equal(t, "Board meeting", booking.lastReq.EventName)
	assert.Contains(t, out.String(), "Reservation R000001 confirmed")
}

func TestRun_BookReservationSundayConfirm(t *testing.T) {
	monday, err := domain.ParseDate("09-07-2026")
	require.NoError(t, err)

	registrySvc := &fakeRegistry{
		clients: []*domain.Client{{ID: 1, Name: "Jane", Surname: "Doe"}},
	}
	resolver := &fakeResolver{rooms: []domain.RoomAvailability{{
		Room:       domain.Room{ID: 1, Name: "Hall A", Capacity: 40},
		FreeShifts: domain.AllShifts,
	}}}
	booking := &fakeBooking{resp: &book_reservation.Response{
		ID: 1, Folio: "R000001", ClientName: "Doe, Jane",
		RoomName: "Hall A", Date: monday, Shift: domain.ShiftNight,
	}}

	// 09-06-2026 is a Sunday; the flow proposes Monday 09-07 and asks.
	script := "6\n1\n09-06-2026\ny\n1\n3\nGala\n0\ny\n"
	app, out := newTestApp(t, script, booking, registrySvc, &fakeReservations{}, resolver)

	require.NoError(t, app.Run(context.Background()))

	require.NotNil(t, booking.lastReq)
	assert.True(t, booking.lastReq.AcceptMonday)
	assert.Contains(t, out.String(), "09-06-2026 is a Sunday")
	assert.Contains(t, out.String(), "Book Monday 09-07-2026 instead?")
}

func TestRun_BookReservationConflictRetries(t *testing.T) {
	date, err := domain.ParseDate("09-15-2026")
	require.NoError(t, err)

	registrySvc := &fakeRegistry{
		clients: []*domain.Client{{ID: 1, Name: "Jane", Surname: "Doe"}},
	}
	resolver := &fakeResolver{rooms: []domain.RoomAvailability{{
		Room:       domain.Room{ID: 1, Name: "Hall A", Capacity: 40},
		FreeShifts: []domain.Shift{domain.ShiftAfternoon},
	}}}
	booking := &fakeBooking{failures: 1, resp: &book_reservation.Response{
		ID: 2, Folio: "R000002", ClientName: "Doe, Jane",
		RoomName: "Hall A", Date: date, Shift: domain.ShiftAfternoon,
	}}

	// First attempt loses the race; the flow re-renders availability and
	// asks for room, shift and event again.
	script := "6\n1\n09-15-2026\n1\n2\nWorkshop\n1\n2\nWorkshop\n0\ny\n"
	app, out := newTestApp(t, script, booking, registrySvc, &fakeReservations{}, resolver)

	require.NoError(t, app.Run(context.Background()))

	assert.Contains(t, out.String(), msgShiftConflict)
	assert.Contains(t, out.String(), "Reservation R000002 confirmed")
}

func TestRun_EditEventName(t *testing.T) {
	date, err := domain.ParseDate("09-15-2026")
	require.NoError(t, err)

	reservationSvc := &fakeReservations{inRange: []*domain.Reservation{{
		ID: 3, Folio: "R000003", Date: date,
		Shift: domain.ShiftMorning, EventName: "Old name",
	}}}

	script := "8\n09-01-2026\n09-30-2026\n3\nNew name\n0\ny\n"
	app, out := newTestApp(t, script, &fakeBooking{}, &fakeRegistry{}, reservationSvc, &fakeResolver{})

	require.NoError(t, app.Run(context.Background()))

	assert.Equal(t, int64(3), reservationSvc.editedID)
	assert.Equal(t, "New name", reservationSvc.newName)
	assert.Contains(t, out.String(), `Reservation R000003 renamed to "New name".`)
}

func TestRun_EditEventNameRejectsUnlistedKey(t *testing.T) {
	date, err := domain.ParseDate("09-15-2026")
	require.NoError(t, err)

	reservationSvc := &fakeReservations{inRange: []*domain.Reservation{{
		ID: 3, Folio: "R000003", Date: date,
		Shift: domain.ShiftMorning, EventName: "Old name",
	}}}

	script := "8\n09-01-2026\n09-30-2026\n99\n0\ny\n"
	app, out := newTestApp(t, script, &fakeBooking{}, &fakeRegistry{}, reservationSvc, &fakeResolver{})

	require.NoError(t, app.Run(context.Background()))

	assert.Zero(t, reservationSvc.editedID)
	assert.Contains(t, out.String(), msgUnknownFolio)
}

func TestRun_ReportByDateEmpty(t *testing.T) {
	script := "7\n09-15-2026\n0\ny\n"
	app, out := newTestApp(t, script, &fakeBooking{}, &fakeRegistry{}, &fakeReservations{}, &fakeResolver{})

	require.NoError(t, app.Run(context.Background()))
	assert.Contains(t, out.String(), "No reservations on 09-15-2026.")
}

func TestRun_ReportByDateWithExportSkipped(t *testing.T) {
	date, err := domain.ParseDate("09-15-2026")
	require.NoError(t, err)

	reservationSvc := &fakeReservations{byDate: []*domain.ReservationDetail{{
		Folio: "R000001", EventName: "Board meeting", Date: date,
		Shift: domain.ShiftMorning, RoomName: "Hall A", RoomCapacity: 40,
		ClientName: "Doe, Jane",
	}}}

	// ENTER at the export prompt skips the file write.
	script := "7\n09-15-2026\n\n0\ny\n"
	app, out := newTestApp(t, script, &fakeBooking{}, &fakeRegistry{}, reservationSvc, &fakeResolver{})

	require.NoError(t, app.Run(context.Background()))
	assert.Contains(t, out.String(), "R000001")
	assert.Contains(t, out.String(), "Board meeting")
	assert.NotContains(t, out.String(), "Report written to")
}
