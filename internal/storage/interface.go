package storage

import (
	"context"

	"github.com/procomhq/attendance-portal/internal/model"
)

// Store defines the attendance store: the authoritative in-process view of
// the roster. The roster is seeded once at startup and its membership never
// changes afterward; only the Present flag is mutable.
type Store interface {
	// SeedRoster installs the loaded roster, replacing anything held
	SeedRoster(ctx context.Context, participants []model.Participant) error

	// ListParticipants returns the full roster in load order
	ListParticipants(ctx context.Context) ([]model.Participant, error)

	// SetPresent rewrites the roster so that every record matching the
	// identity triple carries the new flag, and returns the first match.
	// Returns model.ErrParticipantNotFound when no record matches.
	SetPresent(ctx context.Context, id model.Identity, present bool) (*model.Participant, error)
}
