package session

import (
	"context"
	"sync"
	"testing"

	"github.com/hupe1980/dinersim/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Interface compliance (compile-time assertion)
var _ core.SessionStore = (*InMemoryStore)(nil)

func TestInMemoryStore_CreateAndGet(t *testing.T) {
	store := NewInMemoryStore()
	ctx := context.Background()

	sess := core.NewSession()
	require.NoError(t, store.Create(ctx, sess))

	got, err := store.Get(ctx, sess.ID)
	require.NoError(t, err)
	assert.Equal(t, sess.ID, got.ID)
	assert.Equal(t, core.StateInit, got.State)
}

func TestInMemoryStore_CreateDuplicate(t *testing.T) {
	store := NewInMemoryStore()
	ctx := context.Background()

	sess := core.NewSession()
	require.NoError(t, store.Create(ctx, sess))
	assert.Error(t, store.Create(ctx, sess))
}

func TestInMemoryStore_GetNotFound(t *testing.T) {
	store := NewInMemoryStore()

	_, err := store.Get(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestInMemoryStore_GetReturnsClone(t *testing.T) {
	store := NewInMemoryStore()
	ctx := context.Background()

	sess := core.NewSession()
	require.NoError(t, store.Create(ctx, sess))

	first, err := store.Get(ctx, sess.ID)
	require.NoError(t, err)
	first.Messages = append(first.Messages, core.DialogMessage{Speaker: core.SpeakerWaiter, Text: "mutated"})
	first.State = core.StateComplete

	second, err := store.Get(ctx, sess.ID)
	require.NoError(t, err)
	assert.Empty(t, second.Messages)
	assert.Equal(t, core.StateInit, second.State)
}

func TestInMemoryStore_ConditionalUpdate(t *testing.T) {
	store := NewInMemoryStore()
	ctx := context.Background()

	sess := core.NewSession()
	require.NoError(t, store.Create(ctx, sess))

	update := core.SessionUpdate{
		AppendMessage: &core.DialogMessage{Speaker: core.SpeakerWaiter, Text: "Hello?"},
	}

	matched, err := store.ConditionalUpdate(ctx, sess.ID, core.StateInit, update, core.StateGreeting)
	require.NoError(t, err)
	assert.Equal(t, int64(1), matched)

	got, err := store.Get(ctx, sess.ID)
	require.NoError(t, err)
	assert.Equal(t, core.StateGreeting, got.State)
	require.Len(t, got.Messages, 1)
	assert.Equal(t, "Hello?", got.Messages[0].Text)
}

func TestInMemoryStore_ConditionalUpdateStateMismatch(t *testing.T) {
	store := NewInMemoryStore()
	ctx := context.Background()

	sess := core.NewSession()
	require.NoError(t, store.Create(ctx, sess))

	// Expecting greeting while the session is still in init matches nothing
	// and leaves the record untouched.
	matched, err := store.ConditionalUpdate(ctx, sess.ID, core.StateGreeting, core.SessionUpdate{}, core.StateDayReply)
	require.NoError(t, err)
	assert.Equal(t, int64(0), matched)

	got, err := store.Get(ctx, sess.ID)
	require.NoError(t, err)
	assert.Equal(t, core.StateInit, got.State)
	assert.Empty(t, got.Messages)
}

func TestInMemoryStore_ConditionalUpdateNotFound(t *testing.T) {
	store := NewInMemoryStore()

	_, err := store.ConditionalUpdate(context.Background(), "missing", core.StateInit, core.SessionUpdate{}, core.StateGreeting)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestInMemoryStore_ConditionalUpdateRace(t *testing.T) {
	store := NewInMemoryStore()
	ctx := context.Background()

	sess := core.NewSession()
	require.NoError(t, store.Create(ctx, sess))

	const writers = 8
	results := make([]int64, writers)
	errs := make([]error, writers)

	var wg sync.WaitGroup
	for i := 0; i < writers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i], errs[i] = store.ConditionalUpdate(ctx, sess.ID, core.StateInit, core.SessionUpdate{
				AppendMessage: &core.DialogMessage{Speaker: core.SpeakerWaiter, Text: "Hello?"},
			}, core.StateGreeting)
		}(i)
	}
	wg.Wait()

	var total int64
	for i := 0; i < writers; i++ {
		require.NoError(t, errs[i])
		total += results[i]
	}
	assert.Equal(t, int64(1), total)

	got, err := store.Get(ctx, sess.ID)
	require.NoError(t, err)
	assert.Len(t, got.Messages, 1)
}
