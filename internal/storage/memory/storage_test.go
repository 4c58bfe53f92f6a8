package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/procomhq/attendance-portal/internal/model"
)

func testRoster() []model.Participant {
	return []model.Participant{
		{Identity: model.Identity{Competition: "Speed Programming", Leader: "Ayesha Khan", Team: "Null Pointers"}},
		{Identity: model.Identity{Competition: "FIFA", Leader: "Hassan Raza", Team: "Strikers"}},
	}
}

func TestSetPresent(t *testing.T) {
	s := New()
	ctx := context.Background()
	require.NoError(t, s.SeedRoster(ctx, testRoster()))

	id := model.Identity{Competition: "FIFA", Leader: "Hassan Raza", Team: "Strikers"}
	p, err := s.SetPresent(ctx, id, true)
	require.NoError(t, err)
	assert.True(t, p.Present)

	participants, err := s.ListParticipants(ctx)
	require.NoError(t, err)
	require.Len(t, participants, 2)
	assert.False(t, participants[0].Present, "unrelated record must be untouched")
	assert.True(t, participants[1].Present)
}

func TestSetPresentIdempotent(t *testing.T) {
	s := New()
	ctx := context.Background()
	require.NoError(t, s.SeedRoster(ctx, testRoster()))

	id := model.Identity{Competition: "FIFA", Leader: "Hassan Raza", Team: "Strikers"}
	_, err := s.SetPresent(ctx, id, true)
	require.NoError(t, err)
	_, err = s.SetPresent(ctx, id, true)
	require.NoError(t, err)

	participants, err := s.ListParticipants(ctx)
	require.NoError(t, err)
	assert.Len(t, participants, 2, "no duplicate roster entries")
	assert.True(t, participants[1].Present)
}

func TestSetPresentNotFound(t *testing.T) {
	s := New()
	ctx := context.Background()
	require.NoError(t, s.SeedRoster(ctx, testRoster()))

	_, err := s.SetPresent(ctx, model.Identity{Competition: "Chess", Leader: "Nobody", Team: "Ghosts"}, true)
	assert.ErrorIs(t, err, model.ErrParticipantNotFound)

	participants, err := s.ListParticipants(ctx)
	require.NoError(t, err)
	for _, p := range participants {
		assert.False(t, p.Present)
	}
}

func TestSetPresentMutatesAllDuplicates(t *testing.T) {
	s := New()
	ctx := context.Background()
	dup := model.Participant{Identity: model.Identity{Competition: "FIFA", Leader: "Hassan Raza", Team: "Strikers"}}
	require.NoError(t, s.SeedRoster(ctx, []model.Participant{dup, dup}))

	_, err := s.SetPresent(ctx, dup.Identity, true)
	require.NoError(t, err)

	participants, err := s.ListParticipants(ctx)
	require.NoError(t, err)
	assert.True(t, participants[0].Present)
	assert.True(t, participants[1].Present)
}

func TestListDoesNotExposeBackingSlice(t *testing.T) {
	s := New()
	ctx := context.Background()
	require.NoError(t, s.SeedRoster(ctx, testRoster()))

	participants, err := s.ListParticipants(ctx)
	require.NoError(t, err)
	participants[0].Present = true

	again, err := s.ListParticipants(ctx)
	require.NoError(t, err)
	assert.False(t, again[0].Present)
}
