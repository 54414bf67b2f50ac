package badger

import (
	"context"
	"testing"

	"github.com/poiesic/elscan/core"
	"github.com/poiesic/elscan/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMatchRepository_PutGet(t *testing.T) {
	matches, _, backend, err := NewMemoryRepositories()
	require.NoError(t, err)
	defer backend.Close()

	ctx := context.Background()
	stream := core.NewStreamFromString("ABCABC")
	term := core.NewTerm("AB", "AB")
	window := core.Forward(1, 3)

	_, err = matches.GetMatchSet(ctx, stream.ID(), term, window)
	require.ErrorIs(t, err, storage.ErrNotFound)

	set := &core.MatchSet{
		StreamId: stream.ID(),
		Term:     term,
		Window:   window,
		Matches:  []core.Match{{Term: "AB", Start: 0, Skip: 1}, {Term: "AB", Start: 3, Skip: 1}},
	}
	require.NoError(t, matches.PutMatchSet(ctx, set))

	got, err := matches.GetMatchSet(ctx, stream.ID(), term, window)
	require.NoError(t, err)
	assert.Equal(t, set, got)

	t.Run("window is part of the key", func(t *testing.T) {
		_, err := matches.GetMatchSet(ctx, stream.ID(), term, core.Forward(1, 4))
		assert.ErrorIs(t, err, storage.ErrNotFound)
	})

	t.Run("term label is part of the key", func(t *testing.T) {
		_, err := matches.GetMatchSet(ctx, stream.ID(), core.NewTerm("other", "AB"), window)
		assert.ErrorIs(t, err, storage.ErrNotFound)
	})

	t.Run("put replaces", func(t *testing.T) {
		replaced := *set
		replaced.Matches = nil
		require.NoError(t, matches.PutMatchSet(ctx, &replaced))

		got, err := matches.GetMatchSet(ctx, stream.ID(), term, window)
		require.NoError(t, err)
		assert.Empty(t, got.Matches)
	})
}

func TestMatchRepository_DeleteMatchSets(t *testing.T) {
	matches, _, backend, err := NewMemoryRepositories()
	require.NoError(t, err)
	defer backend.Close()

	ctx := context.Background()
	first := core.NewStreamFromString("ABCABC")
	second := core.NewStreamFromString("CBACBA")
	term := core.NewTerm("AB", "AB")

	for _, w := range core.Bidirectional(1, 3) {
		require.NoError(t, matches.PutMatchSet(ctx, &core.MatchSet{StreamId: first.ID(), Term: term, Window: w}))
	}
	require.NoError(t, matches.PutMatchSet(ctx, &core.MatchSet{StreamId: second.ID(), Term: term, Window: core.Forward(1, 3)}))

	deleted, err := matches.DeleteMatchSets(ctx, first.ID())
	require.NoError(t, err)
	assert.Equal(t, 2, deleted)

	_, err = matches.GetMatchSet(ctx, first.ID(), term, core.Forward(1, 3))
	assert.ErrorIs(t, err, storage.ErrNotFound)

	_, err = matches.GetMatchSet(ctx, second.ID(), term, core.Forward(1, 3))
	assert.NoError(t, err)
}
