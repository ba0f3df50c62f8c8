package storage

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryIdentityStorage(t *testing.T) {
	store := NewMemoryIdentityStorage()
	ctx := context.Background()

	_, err := store.Get(ctx, "missing")
	assert.ErrorIs(t, err, ErrIdentityNotFound)

	require.NoError(t, store.Create(ctx, &Identity{ID: "id-1", Name: "Ms Frizzle", Role: RolePresenter}))

	identity, err := store.Get(ctx, "id-1")
	require.NoError(t, err)
	assert.Equal(t, RolePresenter, identity.Role)
	assert.False(t, identity.CreatedAt.IsZero())

	found, err := store.FindByNameAndRole(ctx, "Ms Frizzle", RolePresenter)
	require.NoError(t, err)
	assert.Equal(t, "id-1", found.ID)

	_, err = store.FindByNameAndRole(ctx, "Ms Frizzle", RoleRespondent)
	assert.ErrorIs(t, err, ErrIdentityNotFound)
}

func TestMemoryPollStorage(t *testing.T) {
	store := NewMemoryPollStorage()
	ctx := context.Background()

	_, err := store.GetActive(ctx)
	assert.ErrorIs(t, err, ErrPollNotFound)

	require.NoError(t, store.Create(ctx, &Poll{ID: "poll-1", Question: "2+2?", Active: true}))

	active, err := store.GetActive(ctx)
	require.NoError(t, err)
	assert.Equal(t, "poll-1", active.ID)

	require.NoError(t, store.SetActive(ctx, "poll-1", false))
	_, err = store.GetActive(ctx)
	assert.ErrorIs(t, err, ErrPollNotFound)

	poll, err := store.Get(ctx, "poll-1")
	require.NoError(t, err)
	assert.False(t, poll.Active)

	assert.ErrorIs(t, store.SetActive(ctx, "missing", true), ErrPollNotFound)
}

func TestMemoryAnswerStorageDedup(t *testing.T) {
	store := NewMemoryAnswerStorage()
	ctx := context.Background()

	require.NoError(t, store.Create(ctx, &Answer{PollID: "poll-1", RespondentID: "r-1", SelectedOption: 1}))

	err := store.Create(ctx, &Answer{PollID: "poll-1", RespondentID: "r-1", SelectedOption: 0})
	assert.ErrorIs(t, err, ErrAnswerExists)

	answers, err := store.ListByPoll(ctx, "poll-1")
	require.NoError(t, err)
	require.Len(t, answers, 1)
	assert.Equal(t, 1, answers[0].SelectedOption)
}
