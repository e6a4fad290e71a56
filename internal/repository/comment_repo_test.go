package repository

import (
	"Inkwell/internal/model"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCommentsPublishedListing(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	alice := seedUser(t, db, "alice")
	post := seedPost(t, db, alice, "p", at(0))
	repo := NewCommentRepo(db)

	var comments []*model.Comment
	for i, text := range []string{"first", "second", "third"} {
		c := &model.Comment{PostID: post.ID, AuthorID: alice.ID, Text: text, Status: model.StatusPublished, CreatedAt: at(i + 1)}
		require.NoError(t, repo.CreateComment(ctx, c))
		comments = append(comments, c)
	}
	require.NoError(t, NewSoftDeleteRepo(db).Hide(ctx, comments[1]))

	list, total, err := repo.ListPublishedByPost(ctx, post.ID, 10, 0)
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	require.Len(t, list, 2)
	assert.Equal(t, "first", list[0].Text)
	assert.Equal(t, "third", list[1].Text)

	count, err := repo.CountPublishedByPost(ctx, post.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)

	hidden, err := repo.GetComment(ctx, comments[1].ID)
	require.NoError(t, err)
	assert.Equal(t, model.StatusHidden, hidden.Status)
}
