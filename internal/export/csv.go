package export

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/salasys/RoomReservations/internal/domain"
)

// WriteCSV renders the rows as comma-delimited records with a header row
func WriteCSV(w io.Writer, rows []*domain.ReservationDetail) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(Header); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}
	for _, row := range rows {
		if err := cw.Write(recordFor(row)); err != nil {
			return fmt.Errorf("write csv record: %w", err)
		}
	}

	cw.Flush()
	return cw.Error()
}
