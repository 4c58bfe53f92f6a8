package sheetlog

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"google.golang.org/api/sheets/v4"

	"github.com/procomhq/attendance-portal/internal/config"
	"github.com/procomhq/attendance-portal/internal/model"
)

// Ranges on the attendance spreadsheet. The log lives on Sheet1 below a
// header row; the diagnostic header row lives on its own sheet.
const (
	dataRange   = "Sheet1!A2:D"
	actionRange = "Sheet1!A2:E"
	headerRange = "Attendance-Sheet!A1:E1"
)

// Log mirrors attendance store mutations to the external spreadsheet.
//
// The spreadsheet is the only durable state: it outlives process restarts
// and is also edited by humans, so every operation re-reads what it needs
// instead of caching. The read-modify-write in the upsert and delete paths
// is not transactional; two concurrent writers can race on a row index.
type Log struct {
	api    sheetAPI
	policy string
	logger *slog.Logger
}

// New creates a Log over the real Sheets API
func New(srv *sheets.Service, spreadsheetID, policy string, logger *slog.Logger) *Log {
	return &Log{
		api:    &googleSheet{srv: srv, spreadsheetID: spreadsheetID},
		policy: policy,
		logger: logger,
	}
}

// newWithAPI wires a fake sheet for tests
func newWithAPI(api sheetAPI, policy string, logger *slog.Logger) *Log {
	return &Log{api: api, policy: policy, logger: logger}
}

// Record mirrors one attendance mutation to the sheet according to the
// configured policy. Transport failures wrap model.ErrLogUnavailable and
// are never retried.
func (l *Log) Record(ctx context.Context, entry model.LogEntry) error {
	switch l.policy {
	case config.PolicyAppend:
		return l.appendRow(ctx, dataRange, identityRow(entry))
	case config.PolicyActionLog:
		return l.appendRow(ctx, actionRange, append(identityRow(entry), string(entry.Action)))
	case config.PolicyUpsert:
		return l.upsert(ctx, entry)
	default:
		return fmt.Errorf("unknown sync policy %q", l.policy)
	}
}

func (l *Log) appendRow(ctx context.Context, rng string, row []any) error {
	if err := l.api.append(ctx, rng, row); err != nil {
		return fmt.Errorf("append attendance row: %w: %w", model.ErrLogUnavailable, err)
	}
	l.logger.Info("attendance row appended",
		slog.String("competition", fmt.Sprint(row[1])),
		slog.String("leader", fmt.Sprint(row[2])),
		slog.String("team", fmt.Sprint(row[3])),
	)
	return nil
}

// upsert keeps exactly one row per identity: the first matching row is
// overwritten with a fresh timestamp. An identity with no row is a logged
// no-op, never an append.
func (l *Log) upsert(ctx context.Context, entry model.LogEntry) error {
	rows, err := l.api.get(ctx, dataRange)
	if err != nil {
		return fmt.Errorf("read attendance rows: %w: %w", model.ErrLogUnavailable, err)
	}

	rowIndex := findIdentityRow(rows, entry.Identity)
	if rowIndex == -1 {
		l.logger.Warn("identity not found in attendance sheet, skipping write",
			slog.String("competition", entry.Identity.Competition),
			slog.String("leader", entry.Identity.Leader),
			slog.String("team", entry.Identity.Team),
		)
		return nil
	}

	// rows start at sheet row 2, below the header
	sheetRow := rowIndex + 2
	rng := fmt.Sprintf("Sheet1!A%d:D%d", sheetRow, sheetRow)
	if err := l.api.update(ctx, rng, identityRow(entry)); err != nil {
		return fmt.Errorf("update attendance row %d: %w: %w", sheetRow, model.ErrLogUnavailable, err)
	}

	l.logger.Info("attendance row updated", slog.Int("row", sheetRow))
	return nil
}

// ReadBack reconstructs present flags from the log. Only the action-log
// policy records enough to replay: the scan walks from the most recent row
// backward and the first action seen per identity wins. Identities never
// mentioned stay absent.
func (l *Log) ReadBack(ctx context.Context) (map[model.Identity]bool, error) {
	if l.policy != config.PolicyActionLog {
		return nil, fmt.Errorf("read-back requires the action-log policy, have %q", l.policy)
	}

	rows, err := l.api.get(ctx, actionRange)
	if err != nil {
		return nil, fmt.Errorf("read attendance rows: %w: %w", model.ErrLogUnavailable, err)
	}

	present := make(map[model.Identity]bool)
	for i := len(rows) - 1; i >= 0; i-- {
		id := rowIdentity(rows[i])
		if _, seen := present[id]; seen {
			continue
		}
		present[id] = cell(rows[i], 4) == string(model.ActionMarked)
	}
	return present, nil
}

// Purge structurally deletes the identity's row from the sheet, shifting
// later rows up. A missing row is a logged no-op.
func (l *Log) Purge(ctx context.Context, id model.Identity) error {
	rows, err := l.api.get(ctx, dataRange)
	if err != nil {
		return fmt.Errorf("read attendance rows: %w: %w", model.ErrLogUnavailable, err)
	}

	rowIndex := findIdentityRow(rows, id)
	if rowIndex == -1 {
		l.logger.Warn("identity not found in attendance sheet, nothing to purge",
			slog.String("competition", id.Competition),
			slog.String("leader", id.Leader),
			slog.String("team", id.Team),
		)
		return nil
	}

	// grid indices are zero-based and include the header row
	gridIndex := int64(rowIndex + 1)
	if err := l.api.deleteRow(ctx, gridIndex); err != nil {
		return fmt.Errorf("delete attendance row %d: %w: %w", gridIndex, model.ErrLogUnavailable, err)
	}

	l.logger.Info("attendance row purged", slog.Int64("row", gridIndex))
	return nil
}

// Headers reads the diagnostic header row, exercising both auth and read
// access on the spreadsheet.
func (l *Log) Headers(ctx context.Context) ([]string, error) {
	rows, err := l.api.get(ctx, headerRange)
	if err != nil {
		return nil, fmt.Errorf("read header row: %w: %w", model.ErrLogUnavailable, err)
	}
	if len(rows) == 0 {
		return nil, nil
	}
	return rows[0], nil
}

// identityRow builds a sheet row: timestamp then the identity triple
func identityRow(entry model.LogEntry) []any {
	return []any{
		entry.Timestamp.UTC().Format(time.RFC3339),
		entry.Identity.Competition,
		entry.Identity.Leader,
		entry.Identity.Team,
	}
}

// findIdentityRow linear-scans from the top for the first row whose
// identity columns match
func findIdentityRow(rows [][]string, id model.Identity) int {
	for i, row := range rows {
		if rowIdentity(row).Matches(id) {
			return i
		}
	}
	return -1
}

func rowIdentity(row []string) model.Identity {
	return model.Identity{
		Competition: cell(row, 1),
		Leader:      cell(row, 2),
		Team:        cell(row, 3),
	}
}

func cell(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return row[idx]
}
