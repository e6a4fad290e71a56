package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFollowToggleIsDirected(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	alice := seedUser(t, db, "alice")
	bob := seedUser(t, db, "bob")
	repo := NewFollowRepo(db)

	created, err := repo.Toggle(ctx, alice.ID, bob.ID)
	require.NoError(t, err)
	assert.True(t, created)

	created, err = repo.Toggle(ctx, bob.ID, alice.ID)
	require.NoError(t, err)
	assert.True(t, created)

	// 取消 alice -> bob 不影响 bob -> alice
	created, err = repo.Toggle(ctx, alice.ID, bob.ID)
	require.NoError(t, err)
	assert.False(t, created)

	following, err := repo.IsFollowing(ctx, bob.ID, alice.ID)
	require.NoError(t, err)
	assert.True(t, following)

	following, err = repo.IsFollowing(ctx, alice.ID, bob.ID)
	require.NoError(t, err)
	assert.False(t, following)
}

func TestFollowListings(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	alice := seedUser(t, db, "alice")
	bob := seedUser(t, db, "bob")
	carol := seedUser(t, db, "carol")
	repo := NewFollowRepo(db)

	for _, follower := range []uint64{bob.ID, carol.ID} {
		_, err := repo.Toggle(ctx, follower, alice.ID)
		require.NoError(t, err)
	}

	followers, err := repo.GetFollowers(ctx, alice.ID, 10, 0)
	require.NoError(t, err)
	require.Len(t, followers, 2)
	for _, f := range followers {
		require.NotNil(t, f.Follower)
	}

	count, err := repo.GetFollowerCount(ctx, alice.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)

	followings, err := repo.GetFollowings(ctx, bob.ID, 10, 0)
	require.NoError(t, err)
	require.Len(t, followings, 1)
	assert.Equal(t, "alice", followings[0].Author.Username)

	count, err = repo.GetFollowingCount(ctx, alice.ID)
	require.NoError(t, err)
	assert.Zero(t, count)
}
