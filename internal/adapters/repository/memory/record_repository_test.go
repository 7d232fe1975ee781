package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vncsmyrnk/pollbot/internal/core/domain"
)

func TestRecordRoundTrip(t *testing.T) {
	store := NewRecordRepository()
	ctx := context.Background()

	poll := domain.NewPoll("T", "D", "Y", "N")
	require.NoError(t, poll.CastVote(42, domain.ActionVoteYes))
	require.NoError(t, store.Save(ctx, "m1", poll))

	loaded, err := store.Load(ctx, "m1")
	require.NoError(t, err)
	assert.Equal(t, poll, loaded)

	// Loads return independent copies: mutating one must not leak into
	// the stored record.
	loaded.CastVote(7, domain.ActionVoteNo)
	again, err := store.Load(ctx, "m1")
	require.NoError(t, err)
	assert.Empty(t, again.NoVotes)
}

func TestLoadMissingRecord(t *testing.T) {
	store := NewRecordRepository()

	_, err := store.Load(context.Background(), "missing")
	assert.ErrorIs(t, err, domain.ErrPollNotFound)
}

func TestKeysSorted(t *testing.T) {
	store := NewRecordRepository()
	ctx := context.Background()

	for _, id := range []string{"b", "a", "c"} {
		require.NoError(t, store.Save(ctx, id, domain.NewPoll("T", "", "", "")))
	}

	keys, err := store.Keys(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "c"}, keys)
}
