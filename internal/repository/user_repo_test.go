package repository

import (
	"Inkwell/internal/model"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTopAuthorsOrdering(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	alice := seedUser(t, db, "alice")
	bob := seedUser(t, db, "bob")
	carol := seedUser(t, db, "carol")
	dave := seedUser(t, db, "dave")
	reactions := NewReactionRepo(db)

	rate := func(from, to *model.User) {
		_, err := reactions.Toggle(ctx, from.ID, model.KindUser, to.ID)
		require.NoError(t, err)
	}
	rate(alice, carol)
	rate(bob, carol)
	rate(alice, bob)
	rate(bob, dave)
	require.NoError(t, NewSoftDeleteRepo(db).Hide(ctx, dave))

	rows, err := NewUserRepo(db).TopAuthors(ctx)
	require.NoError(t, err)
	assert.Equal(t, []RankRow{
		{ID: carol.ID, Total: 2},
		{ID: bob.ID, Total: 1},
		{ID: alice.ID, Total: 0},
	}, rows)
}

func TestListUsersActiveFilter(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	seedUser(t, db, "alice")
	bob := seedUser(t, db, "bob")
	require.NoError(t, NewSoftDeleteRepo(db).Hide(ctx, bob))
	repo := NewUserRepo(db)

	all, total, err := repo.ListUsers(ctx, nil, 10, 0)
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	assert.Len(t, all, 2)

	inactive := false
	users, total, err := repo.ListUsers(ctx, &inactive, 10, 0)
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	assert.Equal(t, "bob", users[0].Username)
}

func TestUserLookups(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	alice := seedUser(t, db, "alice")
	repo := NewUserRepo(db)

	got, err := repo.GetUserByUsername(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, alice.ID, got.ID)

	got, err = repo.GetUserByVerificationUUID(ctx, alice.VerificationUUID)
	require.NoError(t, err)
	assert.Equal(t, alice.ID, got.ID)

	got, err = repo.GetUserByEmail(ctx, "nobody@example.com")
	require.NoError(t, err)
	assert.Nil(t, got)

	require.NoError(t, repo.UpdateUserFields(ctx, alice.ID, map[string]any{"first_name": "Alice"}))
	got, err = repo.GetUserById(ctx, alice.ID)
	require.NoError(t, err)
	assert.Equal(t, "Alice", got.FirstName)
}
