package attendance

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/procomhq/attendance-portal/internal/dependencies/clock"
	"github.com/procomhq/attendance-portal/internal/model"
	"github.com/procomhq/attendance-portal/internal/roster"
	"github.com/procomhq/attendance-portal/internal/storage"
)

// Reconciler keeps the external attendance log in step with store
// mutations. Implemented by sheetlog.Log; tests use a fake.
type Reconciler interface {
	Record(ctx context.Context, entry model.LogEntry) error
	ReadBack(ctx context.Context) (map[model.Identity]bool, error)
	Purge(ctx context.Context, id model.Identity) error
	Headers(ctx context.Context) ([]string, error)
}

// Controller coordinates the attendance store and the external log.
// Store mutations happen first and never fail for external reasons;
// reconciliation failures propagate to the caller unretried.
type Controller struct {
	store  storage.Store
	log    Reconciler
	clock  clock.Clock
	logger *slog.Logger
}

// NewController creates a new attendance controller
func NewController(store storage.Store, log Reconciler, clk clock.Clock, logger *slog.Logger) *Controller {
	return &Controller{
		store:  store,
		log:    log,
		clock:  clk,
		logger: logger,
	}
}

// SeedRoster installs the loaded roster. Present flags already held by
// the store survive for identities still on the roster, so a Redis-backed
// store keeps attendance across restarts.
func (c *Controller) SeedRoster(ctx context.Context, participants []model.Participant) error {
	existing, err := c.store.ListParticipants(ctx)
	if err != nil {
		return err
	}

	flags := make(map[model.Identity]bool, len(existing))
	for _, p := range existing {
		if p.Present {
			flags[p.Identity] = true
		}
	}

	seeded := make([]model.Participant, len(participants))
	copy(seeded, participants)
	for i := range seeded {
		if flags[seeded[i].Identity] {
			seeded[i].Present = true
		}
	}

	return c.store.SeedRoster(ctx, seeded)
}

// List returns the roster, filtered when query is non-empty: a record is
// kept if any identity field contains the query, case-insensitively.
func (c *Controller) List(ctx context.Context, query string) ([]model.Participant, error) {
	participants, err := c.store.ListParticipants(ctx)
	if err != nil {
		return nil, err
	}

	query = strings.TrimSpace(query)
	if query == "" {
		return participants, nil
	}

	needle := strings.ToLower(query)
	filtered := make([]model.Participant, 0, len(participants))
	for _, p := range participants {
		if strings.Contains(strings.ToLower(p.Competition), needle) ||
			strings.Contains(strings.ToLower(p.Leader), needle) ||
			strings.Contains(strings.ToLower(p.Team), needle) {
			filtered = append(filtered, p)
		}
	}
	return filtered, nil
}

// Mark sets the participant present and reconciles the log
func (c *Controller) Mark(ctx context.Context, id model.Identity) error {
	return c.setPresent(ctx, id, true, model.ActionMarked)
}

// Unmark clears the participant's present flag and reconciles the log
func (c *Controller) Unmark(ctx context.Context, id model.Identity) error {
	return c.setPresent(ctx, id, false, model.ActionRemoved)
}

func (c *Controller) setPresent(ctx context.Context, id model.Identity, present bool, action model.LogAction) error {
	if _, err := c.store.SetPresent(ctx, id, present); err != nil {
		return err
	}

	entry := model.LogEntry{
		Timestamp: c.clock.Now(),
		Identity:  id,
		Action:    action,
	}
	if err := c.log.Record(ctx, entry); err != nil {
		c.logger.Error("attendance log reconciliation failed",
			slog.String("action", string(action)),
			slog.String("competition", id.Competition),
			slog.String("leader", id.Leader),
			slog.String("team", id.Team),
			slog.String("error", err.Error()),
		)
		return err
	}
	return nil
}

// PurgeLogRow removes the identity's row from the external log entirely
func (c *Controller) PurgeLogRow(ctx context.Context, id model.Identity) error {
	return c.log.Purge(ctx, id)
}

// Export serializes the current roster to an xlsx workbook
func (c *Controller) Export(ctx context.Context) ([]byte, error) {
	participants, err := c.store.ListParticipants(ctx)
	if err != nil {
		return nil, err
	}
	return roster.Export(participants)
}

// SeedFromLog replays the external log and applies surviving present
// flags to the store. Logged identities no longer on the roster are
// skipped. Called once at startup, before serving.
func (c *Controller) SeedFromLog(ctx context.Context) error {
	present, err := c.log.ReadBack(ctx)
	if err != nil {
		return fmt.Errorf("seed from attendance log: %w", err)
	}

	seeded := 0
	for id, isPresent := range present {
		if !isPresent {
			continue
		}
		if _, err := c.store.SetPresent(ctx, id, true); err != nil {
			if !errors.Is(err, model.ErrParticipantNotFound) {
				return err
			}
			c.logger.Warn("logged identity not on roster, skipping",
				slog.String("competition", id.Competition),
				slog.String("leader", id.Leader),
				slog.String("team", id.Team),
			)
			continue
		}
		seeded++
	}

	c.logger.Info("seeded attendance from log", slog.Int("present", seeded))
	return nil
}

// Diagnostics exercises the external log connection and returns the
// header row of the attendance sheet
func (c *Controller) Diagnostics(ctx context.Context) ([]string, error) {
	return c.log.Headers(ctx)
}
