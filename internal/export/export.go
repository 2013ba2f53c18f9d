// Package export renders reservation report rows to CSV, JSON and XLSX.
// Values are serialized as-is; no transformation happens beyond what each
// format requires.
package export

import (
	"strconv"

	"github.com/salasys/RoomReservations/internal/domain"
)

// Header is the column order shared by every export format
var Header = []string{"Folio", "Event", "Date", "Shift", "Room", "Capacity", "Client"}

func recordFor(d *domain.ReservationDetail) []string {
	return []string{
		d.Folio,
		d.EventName,
		domain.FormatDate(d.Date),
		string(d.Shift),
		d.RoomName,
		strconv.Itoa(d.RoomCapacity),
		d.ClientName,
	}
}
