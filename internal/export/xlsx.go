package export

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/salasys/RoomReservations/internal/domain"
)

const sheetName = "Report"

// WriteXLSX renders the rows to a spreadsheet file with a single sheet
// named "Report": bold header with a thick bottom border, data cells
// center-aligned.
func WriteXLSX(path string, rows []*domain.ReservationDetail) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", sheetName); err != nil {
		return fmt.Errorf("rename sheet: %w", err)
	}

	header := make([]interface{}, len(Header))
	for i, h := range Header {
		header[i] = h
	}
	if err := f.SetSheetRow(sheetName, "A1", &header); err != nil {
		return fmt.Errorf("write header row: %w", err)
	}

	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return fmt.Errorf("cell name for row %d: %w", i+2, err)
		}
		record := recordFor(row)
		values := []interface{}{
			record[0], record[1], record[2], record[3], record[4],
			row.RoomCapacity, // keep capacity numeric in the sheet
			record[6],
		}
		if err := f.SetSheetRow(sheetName, cell, &values); err != nil {
			return fmt.Errorf("write row %d: %w", i+2, err)
		}
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:   &excelize.Font{Bold: true},
		Border: []excelize.Border{{Type: "bottom", Color: "000000", Style: 5}},
	})
	if err != nil {
		return fmt.Errorf("header style: %w", err)
	}

	lastCol, err := excelize.ColumnNumberToName(len(Header))
	if err != nil {
		return fmt.Errorf("last column name: %w", err)
	}
	if err := f.SetCellStyle(sheetName, "A1", lastCol+"1", headerStyle); err != nil {
		return fmt.Errorf("apply header style: %w", err)
	}

	if len(rows) > 0 {
		dataStyle, err := f.NewStyle(&excelize.Style{
			Alignment: &excelize.Alignment{Horizontal: "center"},
		})
		if err != nil {
			return fmt.Errorf("data style: %w", err)
		}
		lastCell := fmt.Sprintf("%s%d", lastCol, len(rows)+1)
		if err := f.SetCellStyle(sheetName, "A2", lastCell, dataStyle); err != nil {
			return fmt.Errorf("apply data style: %w", err)
		}
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("save %s: %w", path, err)
	}
	return nil
}
