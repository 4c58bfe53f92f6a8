package roster

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/procomhq/attendance-portal/internal/model"
)

// Column names expected in the registration workbook. These match the
// registration form export exactly, including case.
const (
	colCompetition = "Competition Name"
	colTeam        = "Team Name"
	colLeader      = "Leader Name"
	colApproved    = "isApproved"
)

// approvedToken is the only isApproved value that admits a row
const approvedToken = "approved"

// Load reads the registration workbook and returns the approved roster.
//
// Sheets are processed in workbook order and rows in file order, so the
// returned slice preserves the registration ordering. Rows whose
// isApproved cell is anything other than "approved" are skipped. Missing
// cells map to empty strings; only a file that cannot be opened or parsed
// is an error.
func Load(path string) ([]model.Participant, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open roster %s: %w", path, err)
	}
	defer func() { _ = f.Close() }()

	return loadWorkbook(f)
}

func loadWorkbook(f *excelize.File) ([]model.Participant, error) {
	var participants []model.Participant

	for _, sheet := range f.GetSheetList() {
		rows, err := f.GetRows(sheet)
		if err != nil {
			return nil, fmt.Errorf("read sheet %s: %w", sheet, err)
		}
		if len(rows) == 0 {
			continue
		}

		cols := columnIndex(rows[0])
		for _, row := range rows[1:] {
			if cellValue(row, cols[colApproved]) != approvedToken {
				continue
			}
			participants = append(participants, model.Participant{
				Identity: model.Identity{
					Competition: cellValue(row, cols[colCompetition]),
					Team:        cellValue(row, cols[colTeam]),
					Leader:      cellValue(row, cols[colLeader]),
				},
				Present: false,
			})
		}
	}

	return participants, nil
}

// columnIndex maps header names to column positions. Unknown headers are
// ignored; absent headers resolve to -1 so their cells read as empty.
func columnIndex(header []string) map[string]int {
	cols := map[string]int{
		colCompetition: -1,
		colTeam:        -1,
		colLeader:      -1,
		colApproved:    -1,
	}
	for i, name := range header {
		if _, ok := cols[name]; ok {
			cols[name] = i
		}
	}
	return cols
}

func cellValue(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return row[idx]
}
