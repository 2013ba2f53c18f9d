package export

import (
	"bytes"
	"encoding/json"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/salasys/RoomReservations/internal/domain"
)

func sampleRows() []*domain.ReservationDetail {
	return []*domain.ReservationDetail{
		{
			Folio:        "R000001",
			EventName:    "Workshop",
			Date:         time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC),
			Shift:        domain.ShiftMorning,
			RoomName:     "Hall A",
			RoomCapacity: 10,
			ClientName:   "Doe, Jane",
		},
		{
			Folio:        "R000002",
			EventName:    "Año Nuevo", // non-ASCII must survive every format
			Date:         time.Date(2026, 12, 31, 0, 0, 0, 0, time.UTC),
			Shift:        domain.ShiftNight,
			RoomName:     "Hall B",
			RoomCapacity: 25,
			ClientName:   "Muñoz, Raúl",
		},
	}
}

func TestWriteCSV(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, sampleRows()))

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "Folio,Event,Date,Shift,Room,Capacity,Client", lines[0])
	assert.Equal(t, "R000001,Workshop,09-10-2026,Morning,Hall A,10,\"Doe, Jane\"", lines[1])
	assert.Contains(t, lines[2], "Año Nuevo")
}

func TestWriteJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteJSON(&buf, sampleRows()))

	var decoded []map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	require.Len(t, decoded, 2)

	assert.Equal(t, "R000001", decoded[0]["folio"])
	assert.Equal(t, "2026-09-10", decoded[0]["date"]) // ISO form
	assert.Equal(t, float64(10), decoded[0]["capacity"])
	assert.Equal(t, "Muñoz, Raúl", decoded[1]["client"])

	// Non-ASCII is written verbatim, not \u-escaped
	assert.Contains(t, buf.String(), "Año Nuevo")
}

func TestWriteJSON_EmptyRows(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteJSON(&buf, nil))
	assert.Equal(t, "[]\n", buf.String())
}

func TestWriteXLSX(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.xlsx")
	require.NoError(t, WriteXLSX(path, sampleRows()))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	// Single sheet named Report
	assert.Equal(t, []string{"Report"}, f.GetSheetList())

	rows, err := f.GetRows("Report")
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, Header, rows[0])
	assert.Equal(t, "R000001", rows[1][0])
	assert.Equal(t, "09-10-2026", rows[1][2])
	assert.Equal(t, "Año Nuevo", rows[2][1])

	// Header is bold; data cells are centered
	headerStyleID, err := f.GetCellStyle("Report", "A1")
	require.NoError(t, err)
	headerStyle, err := f.GetStyle(headerStyleID)
	require.NoError(t, err)
	require.NotNil(t, headerStyle.Font)
	assert.True(t, headerStyle.Font.Bold)

	dataStyleID, err := f.GetCellStyle("Report", "A2")
	require.NoError(t, err)
	dataStyle, err := f.GetStyle(dataStyleID)
	require.NoError(t, err)
	require.NotNil(t, dataStyle.Alignment)
	assert.Equal(t, "center", dataStyle.Alignment.Horizontal)
}
