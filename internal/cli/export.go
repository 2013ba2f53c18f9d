package cli

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/salasys/RoomReservations/internal/domain"
	"github.com/salasys/RoomReservations/internal/export"
)

// offerExport asks whether the rendered report should also be written to a
// file, and in which format. ENTER skips the export.
func (a *App) offerExport(date time.Time, rows []*domain.ReservationDetail) error {
	for {
		format, err := a.promptLine("Export as csv, json or xlsx (ENTER to skip)")
		if err != nil {
			if errors.Is(err, errCancelled) {
				return nil
			}
			return err
		}
		format = strings.ToLower(format)
		if format == "" || isCancel(format) {
			return nil
		}

		switch format {
		case "csv", "json", "xlsx":
		default:
			fmt.Fprintln(a.out, "Formats are csv, json and xlsx.")
			continue
		}

		defaultName := fmt.Sprintf("report-%s.%s", domain.FormatDate(date), format)
		name, err := a.promptLine(fmt.Sprintf("File name (ENTER for %s)", defaultName))
		if err != nil {
			if errors.Is(err, errCancelled) {
				return nil
			}
			return err
		}
		if name == "" {
			name = defaultName
		}
		path := filepath.Join(a.exportDir, name)

		if err := a.writeExport(path, format, rows); err != nil {
			a.logger.Error("menu: export to %s failed: %v", path, err)
			fmt.Fprintln(a.out, "Could not write the export file.")
			return nil
		}

		fmt.Fprintf(a.out, "Report written to %s.\n", path)
		return nil
	}
}

func (a *App) writeExport(path, format string, rows []*domain.ReservationDetail) error {
	if format == "xlsx" {
		return export.WriteXLSX(path, rows)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create export file: %w", err)
	}
	defer f.Close()

	switch format {
	case "csv":
		err = export.WriteCSV(f, rows)
	case "json":
		err = export.WriteJSON(f, rows)
	}
	if err != nil {
		return err
	}
	return f.Close()
}
