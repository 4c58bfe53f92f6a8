package roster

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/procomhq/attendance-portal/internal/model"
)

// writeWorkbook writes a test registration workbook where each sheet maps
// to rows of [competition, team, leader, isApproved].
func writeWorkbook(t *testing.T, sheets map[string][][]string, order []string) string {
	t.Helper()

	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	for i, name := range order {
		if i == 0 {
			require.NoError(t, f.SetSheetName("Sheet1", name))
		} else {
			_, err := f.NewSheet(name)
			require.NoError(t, err)
		}

		header := []any{"Competition Name", "Team Name", "Leader Name", "isApproved"}
		require.NoError(t, f.SetSheetRow(name, "A1", &header))

		for j, row := range sheets[name] {
			cells := make([]any, len(row))
			for k, v := range row {
				cells[k] = v
			}
			cell, err := excelize.CoordinatesToCellName(1, j+2)
			require.NoError(t, err)
			require.NoError(t, f.SetSheetRow(name, cell, &cells))
		}
	}

	path := filepath.Join(t.TempDir(), "registrations.xlsx")
	require.NoError(t, f.SaveAs(path))
	return path
}

func TestLoadFiltersToApproved(t *testing.T) {
	path := writeWorkbook(t, map[string][][]string{
		"Programming": {
			{"Speed Programming", "Null Pointers", "Ayesha Khan", "approved"},
			{"Speed Programming", "Off By One", "Bilal Ahmed", "pending"},
		},
	}, []string{"Programming"})

	participants, err := Load(path)
	require.NoError(t, err)

	require.Len(t, participants, 1)
	assert.Equal(t, "Null Pointers", participants[0].Team)
	assert.Equal(t, "Ayesha Khan", participants[0].Leader)
	assert.False(t, participants[0].Present)
}

func TestLoadApprovalIsCaseSensitive(t *testing.T) {
	path := writeWorkbook(t, map[string][][]string{
		"Programming": {
			{"Speed Programming", "Null Pointers", "Ayesha Khan", "Approved"},
			{"Speed Programming", "Off By One", "Bilal Ahmed", "APPROVED"},
		},
	}, []string{"Programming"})

	participants, err := Load(path)
	require.NoError(t, err)
	assert.Empty(t, participants)
}

func TestLoadConcatenatesSheetsInOrder(t *testing.T) {
	path := writeWorkbook(t, map[string][][]string{
		"Gaming": {
			{"FIFA", "Strikers", "Hassan Raza", "approved"},
		},
		"Robotics": {
			{"Line Following", "Circuit Breakers", "Sara Malik", "approved"},
		},
	}, []string{"Gaming", "Robotics"})

	participants, err := Load(path)
	require.NoError(t, err)

	require.Len(t, participants, 2)
	assert.Equal(t, "FIFA", participants[0].Competition)
	assert.Equal(t, "Line Following", participants[1].Competition)
}

func TestLoadMissingCellsAreEmpty(t *testing.T) {
	path := writeWorkbook(t, map[string][][]string{
		"Programming": {
			// Leader column missing entirely
			{"Speed Programming", "Null Pointers", "", "approved"},
		},
	}, []string{"Programming"})

	participants, err := Load(path)
	require.NoError(t, err)

	require.Len(t, participants, 1)
	assert.Equal(t, "", participants[0].Leader)
}

func TestLoadMissingFileIsError(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.xlsx"))
	assert.Error(t, err)
}

func TestExportRoundTrip(t *testing.T) {
	participants := []model.Participant{
		{Identity: model.Identity{Competition: "FIFA", Leader: "Hassan Raza", Team: "Strikers"}, Present: true},
		{Identity: model.Identity{Competition: "Line Following", Leader: "Sara Malik", Team: "Circuit Breakers"}, Present: false},
	}

	data, err := Export(participants)
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	rows, err := f.GetRows(ExportSheetName)
	require.NoError(t, err)

	require.Len(t, rows, 3)
	assert.Equal(t, []string{"Competition", "Leader", "Team", "Present"}, rows[0])
	assert.Equal(t, []string{"FIFA", "Hassan Raza", "Strikers", "TRUE"}, rows[1])
	assert.Equal(t, []string{"Line Following", "Sara Malik", "Circuit Breakers", "FALSE"}, rows[2])
}
