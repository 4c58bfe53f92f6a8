package sheetlog

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/procomhq/attendance-portal/internal/config"
	"github.com/procomhq/attendance-portal/internal/model"
	"github.com/procomhq/attendance-portal/internal/testutil"
)

// fakeSheet is an in-memory stand-in for the attendance spreadsheet
type fakeSheet struct {
	rows    [][]string // data rows below the Sheet1 header
	headers []string   // Attendance-Sheet!A1 header row
	err     error      // injected failure for every call

	appended [][]string
	updated  map[int][]string // sheet row number -> row
	deleted  []int64
}

var _ sheetAPI = (*fakeSheet)(nil)

func newFakeSheet(rows ...[]string) *fakeSheet {
	return &fakeSheet{
		rows:    rows,
		headers: []string{"Time Stamp", "Competition", "Leader", "Team", "Action"},
		updated: map[int][]string{},
	}
}

func (f *fakeSheet) get(ctx context.Context, rng string) ([][]string, error) {
	if f.err != nil {
		return nil, f.err
	}
	if strings.HasPrefix(rng, "Attendance-Sheet!") {
		return [][]string{f.headers}, nil
	}
	return f.rows, nil
}

func (f *fakeSheet) update(ctx context.Context, rng string, row []any) error {
	if f.err != nil {
		return f.err
	}
	// rng is Sheet1!A{n}:D{n}
	n, err := strconv.Atoi(strings.TrimPrefix(strings.Split(rng, ":")[0], "Sheet1!A"))
	if err != nil {
		return fmt.Errorf("fake sheet: bad range %q", rng)
	}
	f.updated[n] = stringRow(row)
	f.rows[n-2] = stringRow(row)
	return nil
}

func (f *fakeSheet) append(ctx context.Context, rng string, row []any) error {
	if f.err != nil {
		return f.err
	}
	f.appended = append(f.appended, stringRow(row))
	f.rows = append(f.rows, stringRow(row))
	return nil
}

func (f *fakeSheet) deleteRow(ctx context.Context, rowIndex int64) error {
	if f.err != nil {
		return f.err
	}
	f.deleted = append(f.deleted, rowIndex)
	dataIndex := int(rowIndex) - 1
	f.rows = append(f.rows[:dataIndex], f.rows[dataIndex+1:]...)
	return nil
}

func stringRow(row []any) []string {
	out := make([]string, len(row))
	for i, v := range row {
		out[i] = fmt.Sprint(v)
	}
	return out
}

func testEntry(action model.LogAction) model.LogEntry {
	return model.LogEntry{
		Timestamp: time.Date(2025, 2, 1, 9, 30, 0, 0, time.UTC),
		Identity:  model.Identity{Competition: "Speed Programming", Leader: "Ayesha Khan", Team: "Null Pointers"},
		Action:    action,
	}
}

func TestRecordActionLogAppendsTaggedRow(t *testing.T) {
	sheet := newFakeSheet()
	log := newWithAPI(sheet, config.PolicyActionLog, testutil.NopLogger())

	err := log.Record(context.Background(), testEntry(model.ActionMarked))
	require.NoError(t, err)

	require.Len(t, sheet.appended, 1)
	assert.Equal(t,
		[]string{"2025-02-01T09:30:00Z", "Speed Programming", "Ayesha Khan", "Null Pointers", "MARKED"},
		sheet.appended[0])
}

func TestRecordAppendPolicyOmitsAction(t *testing.T) {
	sheet := newFakeSheet()
	log := newWithAPI(sheet, config.PolicyAppend, testutil.NopLogger())

	err := log.Record(context.Background(), testEntry(model.ActionRemoved))
	require.NoError(t, err)

	require.Len(t, sheet.appended, 1)
	assert.Len(t, sheet.appended[0], 4, "append policy rows carry no action tag")
}

func TestRecordUpsertOverwritesMatchingRow(t *testing.T) {
	sheet := newFakeSheet(
		[]string{"2025-01-01T00:00:00Z", "FIFA", "Hassan Raza", "Strikers"},
		[]string{"2025-01-01T00:00:00Z", "Speed Programming", "Ayesha Khan", "Null Pointers"},
	)
	log := newWithAPI(sheet, config.PolicyUpsert, testutil.NopLogger())

	err := log.Record(context.Background(), testEntry(model.ActionMarked))
	require.NoError(t, err)

	// second data row lives at sheet row 3
	require.Contains(t, sheet.updated, 3)
	assert.Equal(t, "2025-02-01T09:30:00Z", sheet.updated[3][0])
	assert.Empty(t, sheet.appended, "upsert never appends")
}

func TestRecordUpsertMissingIdentityIsNoOp(t *testing.T) {
	sheet := newFakeSheet(
		[]string{"2025-01-01T00:00:00Z", "FIFA", "Hassan Raza", "Strikers"},
	)
	log := newWithAPI(sheet, config.PolicyUpsert, testutil.NopLogger())

	err := log.Record(context.Background(), testEntry(model.ActionMarked))
	require.NoError(t, err)

	assert.Empty(t, sheet.updated)
	assert.Empty(t, sheet.appended)
}

func TestRecordWrapsTransportFailure(t *testing.T) {
	sheet := newFakeSheet()
	sheet.err = errors.New("googleapi: quota exceeded")
	log := newWithAPI(sheet, config.PolicyActionLog, testutil.NopLogger())

	err := log.Record(context.Background(), testEntry(model.ActionMarked))
	assert.ErrorIs(t, err, model.ErrLogUnavailable)
}

func TestReadBackLastActionWins(t *testing.T) {
	x := []string{"", "Speed Programming", "Ayesha Khan", "Null Pointers"}
	y := []string{"", "FIFA", "Hassan Raza", "Strikers"}
	sheet := newFakeSheet(
		append(append([]string{}, x...), "MARKED"),
		append(append([]string{}, x...), "REMOVED"),
		append(append([]string{}, y...), "MARKED"),
	)
	log := newWithAPI(sheet, config.PolicyActionLog, testutil.NopLogger())

	present, err := log.ReadBack(context.Background())
	require.NoError(t, err)

	idX := model.Identity{Competition: "Speed Programming", Leader: "Ayesha Khan", Team: "Null Pointers"}
	idY := model.Identity{Competition: "FIFA", Leader: "Hassan Raza", Team: "Strikers"}

	assert.False(t, present[idX], "later REMOVED wins over earlier MARKED")
	assert.True(t, present[idY])
	assert.False(t, present[model.Identity{Competition: "Chess", Leader: "Nobody", Team: "Ghosts"}])
}

func TestReadBackRequiresActionLogPolicy(t *testing.T) {
	log := newWithAPI(newFakeSheet(), config.PolicyAppend, testutil.NopLogger())

	_, err := log.ReadBack(context.Background())
	assert.ErrorContains(t, err, "read-back requires")
}

func TestPurgeDeletesMatchingRow(t *testing.T) {
	sheet := newFakeSheet(
		[]string{"2025-01-01T00:00:00Z", "FIFA", "Hassan Raza", "Strikers"},
		[]string{"2025-01-01T00:00:00Z", "Speed Programming", "Ayesha Khan", "Null Pointers"},
	)
	log := newWithAPI(sheet, config.PolicyUpsert, testutil.NopLogger())

	id := model.Identity{Competition: "Speed Programming", Leader: "Ayesha Khan", Team: "Null Pointers"}
	require.NoError(t, log.Purge(context.Background(), id))

	// data index 1 plus the header row
	assert.Equal(t, []int64{2}, sheet.deleted)
	require.Len(t, sheet.rows, 1)
	assert.Equal(t, "FIFA", sheet.rows[0][1])
}

func TestPurgeMissingIdentityIsNoOp(t *testing.T) {
	sheet := newFakeSheet(
		[]string{"2025-01-01T00:00:00Z", "FIFA", "Hassan Raza", "Strikers"},
	)
	log := newWithAPI(sheet, config.PolicyUpsert, testutil.NopLogger())

	err := log.Purge(context.Background(), model.Identity{Competition: "Chess", Leader: "Nobody", Team: "Ghosts"})
	require.NoError(t, err)
	assert.Empty(t, sheet.deleted)
}

func TestHeaders(t *testing.T) {
	sheet := newFakeSheet()
	log := newWithAPI(sheet, config.PolicyActionLog, testutil.NopLogger())

	headers, err := log.Headers(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"Time Stamp", "Competition", "Leader", "Team", "Action"}, headers)
}
