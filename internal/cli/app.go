// Package cli implements the interactive menu the application is driven
// with. Each menu option maps to one service or use case call; user-facing
// messages live here and the layers below only return errors.
package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/salasys/RoomReservations/internal/domain"
	"github.com/salasys/RoomReservations/internal/service/registry"
	"github.com/salasys/RoomReservations/internal/service/reservations"
	"github.com/salasys/RoomReservations/internal/usecase/book_reservation"
)

const (
	msgEmptyInput        = "A value is required."
	msgNotANumber        = "Enter a whole number."
	msgYesOrNo           = "Answer y or n."
	msgInvalidOption     = "Unknown option, try again."
	msgInvalidDateFormat = "Dates use the MM-DD-YYYY format, for example 09-15-2026."
	msgInvalidShift      = "Shifts are Morning, Afternoon and Night."
	msgInvalidCapacity   = "Capacity must be greater than zero."
	msgDateTooSoon       = "Reservations need at least two full days of lead time."
	msgCancelled         = "Cancelled."
	msgInternal          = "Something went wrong, please try again."

	msgNoClients       = "No clients registered yet."
	msgNoRooms         = "No rooms registered yet."
	msgClientNotFound  = "No client has that key."
	msgNoAvailability  = "No rooms are available on that date."
	msgRoomUnavailable = "That room is not available on the chosen date."
	msgShiftTaken      = "That shift is not free for the chosen room."
	msgShiftConflict   = "Someone else just booked that slot; pick another room or shift."
	msgNoReservations  = "No reservations found."
	msgBadRange        = "The end date must not precede the start date."
	msgUnknownFolio    = "No reservation in the listing has that key."
)

// App wires the menu loop to the services underneath it
type App struct {
	registry     RegistryService
	reservations ReservationService
	availability AvailabilityResolver
	booking      BookingWorkflow
	exportDir    string
	logger       Logger
	in           *bufio.Reader
	out          io.Writer
}

// NewApp creates the interactive application
func NewApp(
	registrySvc RegistryService,
	reservationSvc ReservationService,
	availability AvailabilityResolver,
	booking BookingWorkflow,
	exportDir string,
	logger Logger,
	in io.Reader,
	out io.Writer,
) *App {
	return &App{
		registry:     registrySvc,
		reservations: reservationSvc,
		availability: availability,
		booking:      booking,
		exportDir:    exportDir,
		logger:       logger,
		in:           bufio.NewReader(in),
		out:          out,
	}
}

// Run drives the menu until the user confirms the exit option
func (a *App) Run(ctx context.Context) error {
	for {
		a.printMenu()

		choice, err := a.promptLine("Option")
		if err != nil {
			if errors.Is(err, errCancelled) {
				return nil
			}
			return err
		}

		switch choice {
		case "1":
			err = a.registerClient(ctx)
		case "2":
			err = a.registerRoom(ctx)
		case "3":
			err = a.listClients(ctx)
		case "4":
			err = a.listRooms(ctx)
		case "5":
			err = a.showAvailability(ctx)
		case "6":
			err = a.bookReservation(ctx)
		case "7":
			err = a.reportByDate(ctx)
		case "8":
			err = a.editEventName(ctx)
		case "0":
			confirmed, confErr := a.promptYesNo("Exit the application?")
			if confErr != nil && !errors.Is(confErr, errCancelled) {
				return confErr
			}
			if confirmed {
				fmt.Fprintln(a.out, "Goodbye.")
				return nil
			}
			continue
		default:
			fmt.Fprintln(a.out, msgInvalidOption)
			continue
		}

		if errors.Is(err, errCancelled) {
			fmt.Fprintln(a.out, msgCancelled)
			continue
		}
		if err != nil {
			return err
		}
	}
}

func (a *App) printMenu() {
	fmt.Fprint(a.out, `
=== Room Reservations ===
1. Register a client
2. Register a room
3. List clients
4. List rooms
5. Room availability by date
6. Book a reservation
7. Reservations report by date
8. Edit an event name
0. Exit
`)
}

func (a *App) registerClient(ctx context.Context) error {
	name, err := a.promptNonEmpty("Client name")
	if err != nil {
		return err
	}
	surname, err := a.promptNonEmpty("Client surname")
	if err != nil {
		return err
	}

	client, err := a.registry.RegisterClient(ctx, name, surname)
	if err != nil {
		a.logger.Error("menu: register client failed: %v", err)
		fmt.Fprintln(a.out, msgInternal)
		return nil
	}

	fmt.Fprintf(a.out, "Client %s registered with key %d.\n", client.DisplayName(), client.ID)
	return nil
}

func (a *App) registerRoom(ctx context.Context) error {
	name, err := a.promptNonEmpty("Room name")
	if err != nil {
		return err
	}

	var capacity int
	for {
		capacity, err = a.promptInt("Room capacity")
		if err != nil {
			return err
		}
		if capacity > 0 {
			break
		}
		fmt.Fprintln(a.out, msgInvalidCapacity)
	}

	room, err := a.registry.RegisterRoom(ctx, name, capacity)
	if err != nil {
		if errors.Is(err, registry.ErrInvalidCapacity) {
			fmt.Fprintln(a.out, msgInvalidCapacity)
			return nil
		}
		a.logger.Error("menu: register room failed: %v", err)
		fmt.Fprintln(a.out, msgInternal)
		return nil
	}

	fmt.Fprintf(a.out, "Room %s registered with key %d.\n", room.Name, room.ID)
	return nil
}

func (a *App) listClients(ctx context.Context) error {
	clients, err := a.registry.ListClients(ctx)
	if err != nil {
		a.logger.Error("menu: list clients failed: %v", err)
		fmt.Fprintln(a.out, msgInternal)
		return nil
	}
	if len(clients) == 0 {
		fmt.Fprintln(a.out, msgNoClients)
		return nil
	}
	renderClients(a.out, clients)
	return nil
}

func (a *App) listRooms(ctx context.Context) error {
	rooms, err := a.registry.ListRooms(ctx)
	if err != nil {
		a.logger.Error("menu: list rooms failed: %v", err)
		fmt.Fprintln(a.out, msgInternal)
		return nil
	}
	if len(rooms) == 0 {
		fmt.Fprintln(a.out, msgNoRooms)
		return nil
	}
	renderRooms(a.out, rooms)
	return nil
}

func (a *App) showAvailability(ctx context.Context) error {
	date, err := a.promptDate("Date (MM-DD-YYYY)", nil)
	if err != nil {
		return err
	}

	rooms, err := a.availability.AvailableRooms(ctx, date)
	if err != nil {
		a.logger.Error("menu: availability lookup failed: %v", err)
		fmt.Fprintln(a.out, msgInternal)
		return nil
	}
	if len(rooms) == 0 {
		fmt.Fprintln(a.out, msgNoAvailability)
		return nil
	}

	fmt.Fprintf(a.out, "Available rooms on %s:\n", domain.FormatDate(date))
	renderAvailability(a.out, rooms)
	return nil
}

// bookReservation walks the full interactive flow: client, date, room,
// shift and event name. A lost insert race re-queries availability and
// restarts the room and shift selection with the date kept.
func (a *App) bookReservation(ctx context.Context) error {
	if err := a.listClients(ctx); err != nil {
		return err
	}
	clientID, err := a.promptKey("Client key")
	if err != nil {
		return err
	}

	for {
		dateText, acceptMonday, date, err := a.settleDate()
		if err != nil {
			return err
		}

		rooms, availErr := a.availability.AvailableRooms(ctx, date)
		if availErr != nil {
			a.logger.Error("menu: availability lookup failed: %v", availErr)
			fmt.Fprintln(a.out, msgInternal)
			return nil
		}
		if len(rooms) == 0 {
			// The date has to be chosen again.
			fmt.Fprintln(a.out, msgNoAvailability)
			continue
		}

	selection:
		for {
			fmt.Fprintf(a.out, "Available rooms on %s:\n", domain.FormatDate(date))
			renderAvailability(a.out, rooms)

			roomID, promptErr := a.promptKey("Room key")
			if promptErr != nil {
				return promptErr
			}
			shift, promptErr := a.promptShift()
			if promptErr != nil {
				return promptErr
			}
			eventName, promptErr := a.promptNonEmpty("Event name")
			if promptErr != nil {
				return promptErr
			}

			resp, execErr := a.booking.Execute(ctx, &book_reservation.Request{
				ClientID:     clientID,
				DateText:     dateText,
				AcceptMonday: acceptMonday,
				RoomID:       roomID,
				Shift:        shift,
				EventName:    eventName,
			})
			if execErr != nil {
				switch {
				case errors.Is(execErr, book_reservation.ErrClientNotFound):
					fmt.Fprintln(a.out, msgClientNotFound)
					return nil
				case errors.Is(execErr, book_reservation.ErrRoomNotAvailable):
					fmt.Fprintln(a.out, msgRoomUnavailable)
					continue selection
				case errors.Is(execErr, book_reservation.ErrShiftNotAvailable):
					fmt.Fprintln(a.out, msgShiftTaken)
					continue selection
				case errors.Is(execErr, book_reservation.ErrShiftConflict):
					// Someone else won the insert race; availability has
					// changed, so re-query before offering rooms again.
					fmt.Fprintln(a.out, msgShiftConflict)
					rooms, availErr = a.availability.AvailableRooms(ctx, date)
					if availErr != nil {
						a.logger.Error("menu: availability lookup failed: %v", availErr)
						fmt.Fprintln(a.out, msgInternal)
						return nil
					}
					if len(rooms) == 0 {
						fmt.Fprintln(a.out, msgNoAvailability)
						break selection
					}
					continue selection
				case errors.Is(execErr, book_reservation.ErrDateTooSoon):
					// The clock moved past the lead-time boundary while
					// the user was choosing; the date has to be picked again.
					fmt.Fprintln(a.out, msgDateTooSoon)
					break selection
				case errors.Is(execErr, book_reservation.ErrNoRoomsAvailable):
					fmt.Fprintln(a.out, msgNoAvailability)
					break selection
				}
				a.logger.Error("menu: booking failed: %v", execErr)
				fmt.Fprintln(a.out, msgInternal)
				return nil
			}

			fmt.Fprintf(a.out, "Reservation %s confirmed: %s, %s shift, room %s, for %s.\n",
				resp.Folio, domain.FormatDate(resp.Date), resp.Shift, resp.RoomName, resp.ClientName)
			return nil
		}
	}
}

// settleDate asks for a reservation date until it passes format, lead time
// and Sunday rules. The raw text and the Monday confirmation travel with
// the settled date so the booking call re-validates the same input.
func (a *App) settleDate() (dateText string, acceptMonday bool, date time.Time, err error) {
	for {
		dateText, err = a.promptNonEmpty("Reservation date (MM-DD-YYYY)")
		if err != nil {
			return "", false, time.Time{}, err
		}

		acceptMonday = false
		date, err = a.booking.ResolveDate(dateText, acceptMonday)
		if err == nil {
			return dateText, acceptMonday, date, nil
		}

		var sundayErr *book_reservation.SundayDateError
		switch {
		case errors.As(err, &sundayErr):
			fmt.Fprintf(a.out, "%s is a Sunday; the venue is closed.\n",
				domain.FormatDate(sundayErr.Requested))
			ok, confErr := a.promptYesNo(fmt.Sprintf("Book Monday %s instead?",
				domain.FormatDate(sundayErr.Proposed)))
			if confErr != nil {
				return "", false, time.Time{}, confErr
			}
			if !ok {
				continue
			}
			acceptMonday = true
			date, err = a.booking.ResolveDate(dateText, acceptMonday)
			if err == nil {
				return dateText, acceptMonday, date, nil
			}
			fmt.Fprintln(a.out, msgInternal)
		case errors.Is(err, book_reservation.ErrInvalidDateFormat):
			fmt.Fprintln(a.out, msgInvalidDateFormat)
		case errors.Is(err, book_reservation.ErrDateTooSoon):
			fmt.Fprintln(a.out, msgDateTooSoon)
		default:
			a.logger.Error("menu: date resolution failed: %v", err)
			fmt.Fprintln(a.out, msgInternal)
		}
	}
}

func (a *App) reportByDate(ctx context.Context) error {
	today := domain.DateOnly(time.Now().UTC())
	date, err := a.promptDate("Report date (MM-DD-YYYY, ENTER for today)", &today)
	if err != nil {
		return err
	}

	rows, err := a.reservations.ByDate(ctx, date)
	if err != nil {
		a.logger.Error("menu: report failed: %v", err)
		fmt.Fprintln(a.out, msgInternal)
		return nil
	}
	if len(rows) == 0 {
		fmt.Fprintf(a.out, "No reservations on %s.\n", domain.FormatDate(date))
		return nil
	}

	fmt.Fprintf(a.out, "Reservations on %s:\n", domain.FormatDate(date))
	renderReport(a.out, rows)

	return a.offerExport(date, rows)
}

func (a *App) editEventName(ctx context.Context) error {
	from, err := a.promptDate("Start date (MM-DD-YYYY)", nil)
	if err != nil {
		return err
	}
	to, err := a.promptDate("End date (MM-DD-YYYY)", nil)
	if err != nil {
		return err
	}

	rows, err := a.reservations.InRange(ctx, from, to)
	if err != nil {
		if errors.Is(err, reservations.ErrInvalidDateRange) {
			fmt.Fprintln(a.out, msgBadRange)
			return nil
		}
		a.logger.Error("menu: range query failed: %v", err)
		fmt.Fprintln(a.out, msgInternal)
		return nil
	}
	if len(rows) == 0 {
		fmt.Fprintln(a.out, msgNoReservations)
		return nil
	}

	renderReservations(a.out, rows)

	id, err := a.promptKey("Reservation key")
	if err != nil {
		return err
	}
	if !containsReservation(rows, id) {
		fmt.Fprintln(a.out, msgUnknownFolio)
		return nil
	}

	newName, err := a.promptNonEmpty("New event name")
	if err != nil {
		return err
	}

	if err := a.reservations.EditEventName(ctx, id, newName); err != nil {
		if errors.Is(err, reservations.ErrReservationNotFound) {
			fmt.Fprintln(a.out, msgUnknownFolio)
			return nil
		}
		a.logger.Error("menu: edit event name failed: %v", err)
		fmt.Fprintln(a.out, msgInternal)
		return nil
	}

	fmt.Fprintf(a.out, "Reservation %s renamed to %q.\n", domain.FolioForID(id), newName)
	return nil
}

func containsReservation(rows []*domain.Reservation, id int64) bool {
	for _, r := range rows {
		if r.ID == id {
			return true
		}
	}
	return false
}
