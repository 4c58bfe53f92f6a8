package sheetlog

import (
	"context"
	"fmt"

	"google.golang.org/api/sheets/v4"
)

// sheetAPI is the narrow slice of the Sheets API the log needs. Tests use
// an in-memory fake; production wraps *sheets.Service.
type sheetAPI interface {
	get(ctx context.Context, rng string) ([][]string, error)
	update(ctx context.Context, rng string, row []any) error
	append(ctx context.Context, rng string, row []any) error
	deleteRow(ctx context.Context, rowIndex int64) error
}

// logSheetID is the grid id of the log sheet ("Sheet1" is always the
// first sheet of the attendance spreadsheet).
const logSheetID = 0

// googleSheet implements sheetAPI against the real Sheets API
type googleSheet struct {
	srv           *sheets.Service
	spreadsheetID string
}

var _ sheetAPI = (*googleSheet)(nil)

func (g *googleSheet) get(ctx context.Context, rng string) ([][]string, error) {
	resp, err := g.srv.Spreadsheets.Values.Get(g.spreadsheetID, rng).Context(ctx).Do()
	if err != nil {
		return nil, err
	}

	rows := make([][]string, len(resp.Values))
	for i, row := range resp.Values {
		cells := make([]string, len(row))
		for j, v := range row {
			cells[j] = fmt.Sprint(v)
		}
		rows[i] = cells
	}
	return rows, nil
}

func (g *googleSheet) update(ctx context.Context, rng string, row []any) error {
	_, err := g.srv.Spreadsheets.Values.
		Update(g.spreadsheetID, rng, &sheets.ValueRange{Values: [][]any{row}}).
		ValueInputOption("RAW").
		Context(ctx).
		Do()
	return err
}

func (g *googleSheet) append(ctx context.Context, rng string, row []any) error {
	_, err := g.srv.Spreadsheets.Values.
		Append(g.spreadsheetID, rng, &sheets.ValueRange{Values: [][]any{row}}).
		ValueInputOption("RAW").
		InsertDataOption("INSERT_ROWS").
		Context(ctx).
		Do()
	return err
}

func (g *googleSheet) deleteRow(ctx context.Context, rowIndex int64) error {
	req := &sheets.BatchUpdateSpreadsheetRequest{
		Requests: []*sheets.Request{{
			DeleteDimension: &sheets.DeleteDimensionRequest{
				Range: &sheets.DimensionRange{
					SheetId:    logSheetID,
					Dimension:  "ROWS",
					StartIndex: rowIndex,
					EndIndex:   rowIndex + 1,
				},
			},
		}},
	}
	_, err := g.srv.Spreadsheets.BatchUpdate(g.spreadsheetID, req).Context(ctx).Do()
	return err
}
