package roster

import (
	"bytes"
	"fmt"
	"strconv"

	"github.com/xuri/excelize/v2"

	"github.com/procomhq/attendance-portal/internal/model"
)

// ExportSheetName is the sheet written by Export
const ExportSheetName = "Attendance"

// Export serializes the roster to a single-sheet workbook and returns the
// encoded file, one row per participant in roster order.
func Export(participants []model.Participant) ([]byte, error) {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	if err := f.SetSheetName("Sheet1", ExportSheetName); err != nil {
		return nil, fmt.Errorf("rename export sheet: %w", err)
	}

	header := []any{"Competition", "Leader", "Team", "Present"}
	if err := f.SetSheetRow(ExportSheetName, "A1", &header); err != nil {
		return nil, fmt.Errorf("write export header: %w", err)
	}

	for i, p := range participants {
		cell := "A" + strconv.Itoa(i+2)
		row := []any{p.Competition, p.Leader, p.Team, p.Present}
		if err := f.SetSheetRow(ExportSheetName, cell, &row); err != nil {
			return nil, fmt.Errorf("write export row %d: %w", i+2, err)
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("encode export workbook: %w", err)
	}
	return buf.Bytes(), nil
}
