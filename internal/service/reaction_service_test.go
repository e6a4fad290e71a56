package service

import (
	"Inkwell/internal/model"
	"Inkwell/internal/repository"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToggleAlternates(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	alice := env.user(t, "alice")
	bob := env.user(t, "bob")
	post := env.post(t, bob, "hello")

	for _, want := range []ToggleResult{Created, Removed, Created} {
		got, err := env.reactions.LikePost(ctx, alice.ID, post.ID)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}

	count, err := env.reactions.Count(ctx, model.KindPost, post.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

func TestToggleKindsAreIndependent(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	alice := env.user(t, "alice")
	bob := env.user(t, "bob")
	post := env.post(t, bob, "hello")

	// 同一个 id 在不同种类下是不同的目标
	got, err := env.reactions.LikePost(ctx, alice.ID, post.ID)
	require.NoError(t, err)
	assert.Equal(t, Created, got)

	got, err = env.reactions.RateAuthor(ctx, alice.ID, bob.ID)
	require.NoError(t, err)
	assert.Equal(t, Created, got)

	rating, err := env.reactions.Count(ctx, model.KindUser, bob.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), rating)
}

func TestToggleRejectsBadInput(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	alice := env.user(t, "alice")

	tests := []struct {
		name    string
		actor   uint64
		kind    model.TargetKind
		target  uint64
		wantErr error
	}{
		{"anonymous", 0, model.KindPost, 1, ErrUnauthorized},
		{"missing post", alice.ID, model.KindPost, 999, ErrPostNotFound},
		{"missing comment", alice.ID, model.KindComment, 999, ErrCommentNotFound},
		{"missing user", alice.ID, model.KindUser, 999, ErrUserNotFound},
		{"unknown kind", alice.ID, model.TargetKind("story"), 1, ErrParamInvalid},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := env.reactions.Toggle(ctx, tt.actor, tt.kind, tt.target)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestSelfRatingAllowed(t *testing.T) {
	env := newTestEnv(t)
	alice := env.user(t, "alice")

	got, err := env.reactions.RateAuthor(context.Background(), alice.ID, alice.ID)
	require.NoError(t, err)
	assert.Equal(t, Created, got)
}

type conflictingReactionRepo struct {
	repository.ReactionRepo
}

func (conflictingReactionRepo) Toggle(context.Context, uint64, model.TargetKind, uint64) (bool, error) {
	return false, repository.ErrDuplicate
}

func TestToggleConflictMapsToRetryableError(t *testing.T) {
	env := newTestEnv(t)
	alice := env.user(t, "alice")
	bob := env.user(t, "bob")

	svc := NewReactionService(
		conflictingReactionRepo{},
		repository.NewPostRepo(env.db),
		repository.NewCommentRepo(env.db),
		repository.NewUserRepo(env.db),
	)
	_, err := svc.RateAuthor(context.Background(), alice.ID, bob.ID)
	assert.ErrorIs(t, err, ErrToggleConflict)

	code, ok := CodeOf(err)
	assert.True(t, ok)
	assert.Equal(t, Conflict, code)
}

func TestCountCacheInvalidatedOnToggle(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	alice := env.user(t, "alice")
	bob := env.user(t, "bob")
	post := env.post(t, bob, "hello")
	key := reactionCountKey(model.KindPost, post.ID)

	count, err := env.reactions.Count(ctx, model.KindPost, post.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(0), count)
	assert.True(t, env.mr.Exists(key))

	_, err = env.reactions.LikePost(ctx, alice.ID, post.ID)
	require.NoError(t, err)
	assert.False(t, env.mr.Exists(key))

	count, err = env.reactions.Count(ctx, model.KindPost, post.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}
