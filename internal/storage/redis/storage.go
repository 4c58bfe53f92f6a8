package redis

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/procomhq/attendance-portal/internal/model"
	"github.com/procomhq/attendance-portal/internal/storage"
)

// rosterKey holds the whole roster as one JSON document. The roster is a
// few hundred records at most and every mutation is a full-list rewrite,
// so a single value keeps the rewrite atomic on the Redis side.
const rosterKey = "attendance:roster"

// Storage is a Redis-backed implementation of the attendance store. Unlike
// the in-memory store, present flags survive process restarts.
type Storage struct {
	client *redis.Client

	// mu serializes read-modify-write of the roster document within this
	// process. Cross-process writers are not coordinated.
	mu sync.Mutex
}

// New creates a new Redis storage instance
func New(cfg Config) (*Storage, error) {
	opts, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, err
	}

	opts.PoolSize = cfg.PoolSize
	opts.MinIdleConns = cfg.MinIdleConns

	client := redis.NewClient(opts)

	// Verify connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, err
	}

	return &Storage{client: client}, nil
}

// NewWithClient creates a Redis storage with an existing client (for testing)
func NewWithClient(client *redis.Client) *Storage {
	return &Storage{client: client}
}

// Close closes the Redis connection
func (s *Storage) Close() error {
	return s.client.Close()
}

// Ensure Storage implements the interface
var _ storage.Store = (*Storage)(nil)

func (s *Storage) SeedRoster(ctx context.Context, participants []model.Participant) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.save(ctx, participants)
}

func (s *Storage) ListParticipants(ctx context.Context) ([]model.Participant, error) {
	return s.load(ctx)
}

func (s *Storage) SetPresent(ctx context.Context, id model.Identity, present bool) (*model.Participant, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	participants, err := s.load(ctx)
	if err != nil {
		return nil, err
	}

	var first *model.Participant
	for i := range participants {
		if participants[i].Identity.Matches(id) {
			participants[i].Present = present
			if first == nil {
				first = &participants[i]
			}
		}
	}

	if first == nil {
		return nil, model.ErrParticipantNotFound
	}

	if err := s.save(ctx, participants); err != nil {
		return nil, err
	}

	match := *first
	return &match, nil
}

func (s *Storage) load(ctx context.Context) ([]model.Participant, error) {
	data, err := s.client.Get(ctx, rosterKey).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, err
	}

	var participants []model.Participant
	if err := json.Unmarshal(data, &participants); err != nil {
		return nil, err
	}
	return participants, nil
}

func (s *Storage) save(ctx context.Context, participants []model.Participant) error {
	data, err := json.Marshal(participants)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, rosterKey, data, 0).Err()
}
