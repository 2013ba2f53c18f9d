package cli

import (
	"io"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"

	"github.com/salasys/RoomReservations/internal/domain"
	"github.com/salasys/RoomReservations/internal/export"
)

func newTable(w io.Writer, header []string) *tablewriter.Table {
	table := tablewriter.NewWriter(w)
	table.SetHeader(header)
	table.SetAutoWrapText(false)
	return table
}

func renderClients(w io.Writer, clients []*domain.Client) {
	table := newTable(w, []string{"Key", "Surname", "Name"})
	for _, c := range clients {
		table.Append([]string{strconv.FormatInt(c.ID, 10), c.Surname, c.Name})
	}
	table.Render()
}

func renderRooms(w io.Writer, rooms []*domain.Room) {
	table := newTable(w, []string{"Key", "Name", "Capacity"})
	for _, r := range rooms {
		table.Append([]string{strconv.FormatInt(r.ID, 10), r.Name, strconv.Itoa(r.Capacity)})
	}
	table.Render()
}

func renderAvailability(w io.Writer, rooms []domain.RoomAvailability) {
	table := newTable(w, []string{"Key", "Room", "Capacity", "Free shifts"})
	for _, a := range rooms {
		table.Append([]string{
			strconv.FormatInt(a.Room.ID, 10),
			a.Room.Name,
			strconv.Itoa(a.Room.Capacity),
			joinShifts(a.FreeShifts),
		})
	}
	table.Render()
}

func renderReport(w io.Writer, rows []*domain.ReservationDetail) {
	table := newTable(w, export.Header)
	for _, d := range rows {
		table.Append([]string{
			d.Folio,
			d.EventName,
			domain.FormatDate(d.Date),
			string(d.Shift),
			d.RoomName,
			strconv.Itoa(d.RoomCapacity),
			d.ClientName,
		})
	}
	table.Render()
}

func renderReservations(w io.Writer, rows []*domain.Reservation) {
	table := newTable(w, []string{"Key", "Folio", "Date", "Shift", "Event"})
	for _, r := range rows {
		table.Append([]string{
			strconv.FormatInt(r.ID, 10),
			r.Folio,
			domain.FormatDate(r.Date),
			string(r.Shift),
			r.EventName,
		})
	}
	table.Render()
}

func joinShifts(shifts []domain.Shift) string {
	names := make([]string, 0, len(shifts))
	for _, s := range shifts {
		names = append(names, string(s))
	}
	return strings.Join(names, ", ")
}
