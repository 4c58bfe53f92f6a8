package memory

import (
	"context"
	"sync"

	"github.com/procomhq/attendance-portal/internal/model"
	"github.com/procomhq/attendance-portal/internal/storage"
)

// Storage is an in-memory implementation of the attendance store
type Storage struct {
	mu           sync.RWMutex
	participants []model.Participant
}

// New creates a new in-memory storage instance
func New() *Storage {
	return &Storage{}
}

// Ensure Storage implements the interface
var _ storage.Store = (*Storage)(nil)

func (s *Storage) SeedRoster(ctx context.Context, participants []model.Participant) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.participants = make([]model.Participant, len(participants))
	copy(s.participants, participants)
	return nil
}

func (s *Storage) ListParticipants(ctx context.Context) ([]model.Participant, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]model.Participant, len(s.participants))
	copy(out, s.participants)
	return out, nil
}

// SetPresent produces a fresh roster slice with every matching record
// updated, then swaps it in under the lock. Duplicate triples are all
// mutated together; the first match is returned.
func (s *Storage) SetPresent(ctx context.Context, id model.Identity, present bool) (*model.Participant, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rewritten := make([]model.Participant, len(s.participants))
	var first *model.Participant
	for i, p := range s.participants {
		if p.Identity.Matches(id) {
			p.Present = present
			if first == nil {
				first = &p
			}
		}
		rewritten[i] = p
	}

	if first == nil {
		return nil, model.ErrParticipantNotFound
	}

	s.participants = rewritten
	match := *first
	return &match, nil
}
