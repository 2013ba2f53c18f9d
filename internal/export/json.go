package export

import (
	"encoding/json"
	"io"

	"github.com/salasys/RoomReservations/internal/domain"
)

// jsonRow mirrors one report row; dates are rendered in ISO form
type jsonRow struct {
	Folio    string `json:"folio"`
	Event    string `json:"event"`
	Date     string `json:"date"`
	Shift    string `json:"shift"`
	Room     string `json:"room"`
	Capacity int    `json:"capacity"`
	Client   string `json:"client"`
}

// WriteJSON renders the rows as a JSON array of objects. Non-ASCII text is
// written verbatim, not escaped.
func WriteJSON(w io.Writer, rows []*domain.ReservationDetail) error {
	out := make([]jsonRow, 0, len(rows))
	for _, d := range rows {
		out = append(out, jsonRow{
			Folio:    d.Folio,
			Event:    d.EventName,
			Date:     d.Date.Format(domain.ISODateFormat),
			Shift:    string(d.Shift),
			Room:     d.RoomName,
			Capacity: d.RoomCapacity,
			Client:   d.ClientName,
		})
	}

	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	return enc.Encode(out)
}
