package repository

import (
	"Inkwell/internal/model"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSimilarPostIDs(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	alice := seedUser(t, db, "alice")
	repo := NewPostRepo(db)

	origin := seedPost(t, db, alice, "origin", at(0), "go", "db", "web")
	twoOld := seedPost(t, db, alice, "two-old", at(1), "go", "db")
	twoNew := seedPost(t, db, alice, "two-new", at(2), "go", "web")
	one := seedPost(t, db, alice, "one", at(3), "web")
	hidden := seedPost(t, db, alice, "hidden", at(4), "go", "db", "web")
	hide(t, db, hidden)
	seedPost(t, db, alice, "unrelated", at(5), "cooking")

	tagIDs, err := NewTagRepository(db).GetTagIDsByPostID(ctx, origin.ID)
	require.NoError(t, err)
	require.Len(t, tagIDs, 3)

	ids, err := repo.SimilarPostIDs(ctx, origin.ID, tagIDs, 5)
	require.NoError(t, err)
	assert.Equal(t, []uint64{twoNew.ID, twoOld.ID, one.ID}, ids)
}

func TestSimilarPostIDsLimitAndEmptyTags(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	alice := seedUser(t, db, "alice")
	repo := NewPostRepo(db)

	origin := seedPost(t, db, alice, "origin", at(0), "go")
	for i := 1; i <= 7; i++ {
		seedPost(t, db, alice, "p", at(i), "go")
	}
	tagIDs, err := NewTagRepository(db).GetTagIDsByPostID(ctx, origin.ID)
	require.NoError(t, err)

	ids, err := repo.SimilarPostIDs(ctx, origin.ID, tagIDs, 5)
	require.NoError(t, err)
	assert.Len(t, ids, 5)
	assert.NotContains(t, ids, origin.ID)

	ids, err = repo.SimilarPostIDs(ctx, origin.ID, nil, 5)
	require.NoError(t, err)
	assert.Empty(t, ids)
}

func TestTopPostsOrdering(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	alice := seedUser(t, db, "alice")
	bob := seedUser(t, db, "bob")
	reactions := NewReactionRepo(db)
	repo := NewPostRepo(db)

	zero := seedPost(t, db, alice, "zero", at(0))
	oneOld := seedPost(t, db, alice, "one-old", at(1))
	two := seedPost(t, db, alice, "two", at(2))
	oneNew := seedPost(t, db, alice, "one-new", at(3))
	hidden := seedPost(t, db, alice, "hidden", at(4))

	like := func(user *model.User, post *model.Post) {
		_, err := reactions.Toggle(ctx, user.ID, model.KindPost, post.ID)
		require.NoError(t, err)
	}
	like(alice, two)
	like(bob, two)
	like(bob, oneNew)
	like(alice, oneOld)
	like(alice, hidden)
	like(bob, hidden)
	like(alice, hidden)
	hide(t, db, hidden)

	rows, err := repo.TopPosts(ctx)
	require.NoError(t, err)
	require.Len(t, rows, 4)
	assert.Equal(t, []RankRow{
		{ID: two.ID, Total: 2},
		{ID: oneOld.ID, Total: 1},
		{ID: oneNew.ID, Total: 1},
		{ID: zero.ID, Total: 0},
	}, rows)
}

func TestListPublishedFilters(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	alice := seedUser(t, db, "alice")
	bob := seedUser(t, db, "bob")
	repo := NewPostRepo(db)

	a1 := seedPost(t, db, alice, "Gopher tales", at(0), "go")
	a2 := seedPost(t, db, alice, "Hidden draft", at(1), "go")
	hide(t, db, a2)
	b1 := seedPost(t, db, bob, "Cooking", at(2), "food")

	posts, total, err := repo.ListPublished(ctx, PostFilter{}, 10, 0)
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	assert.Equal(t, b1.ID, posts[0].ID)
	require.NotNil(t, posts[0].Author)

	posts, total, err = repo.ListPublished(ctx, PostFilter{AuthorID: alice.ID}, 10, 0)
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	assert.Equal(t, a1.ID, posts[0].ID)

	tag, err := NewTagRepository(db).GetTagBySlug(ctx, "go")
	require.NoError(t, err)
	posts, _, err = repo.ListPublished(ctx, PostFilter{TagID: tag.ID}, 10, 0)
	require.NoError(t, err)
	require.Len(t, posts, 1)
	assert.Equal(t, a1.ID, posts[0].ID)

	posts, _, err = repo.ListPublished(ctx, PostFilter{Query: "gopher"}, 10, 0)
	require.NoError(t, err)
	require.Len(t, posts, 1)

	posts, _, err = repo.ListPublished(ctx, PostFilter{Query: "bob"}, 10, 0)
	require.NoError(t, err)
	require.Len(t, posts, 1)
	assert.Equal(t, b1.ID, posts[0].ID)

	// 通配符按字面匹配
	percent := seedPost(t, db, bob, "100% rye", at(3))
	seedPost(t, db, bob, "100 loaves", at(4))
	posts, _, err = repo.ListPublished(ctx, PostFilter{Query: "100%"}, 10, 0)
	require.NoError(t, err)
	require.Len(t, posts, 1)
	assert.Equal(t, percent.ID, posts[0].ID)

	posts, _, err = repo.ListPublished(ctx, PostFilter{Query: "Gopher_"}, 10, 0)
	require.NoError(t, err)
	assert.Empty(t, posts)

	mine, total, err := repo.ListByAuthor(ctx, alice.ID, 10, 0)
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	assert.Len(t, mine, 2)
}

func TestUpdatePostReplacesTags(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	alice := seedUser(t, db, "alice")
	repo := NewPostRepo(db)
	post := seedPost(t, db, alice, "p", at(0), "go", "db")

	tags, err := NewTagRepository(db).GetOrCreateTags(ctx, []string{"web"})
	require.NoError(t, err)
	ids := []uint64{tags[0].ID}
	require.NoError(t, repo.UpdatePost(ctx, post.ID, map[string]any{"title": "renamed"}, &ids))

	got, err := repo.GetPost(ctx, post.ID)
	require.NoError(t, err)
	assert.Equal(t, "renamed", got.Title)
	require.Len(t, got.Tags, 1)
	assert.Equal(t, "web", got.Tags[0].Slug)
	assert.True(t, got.Edited())
	assert.Equal(t, alice.ID, got.AuthorID)
}

func TestGetPostMissing(t *testing.T) {
	db := newTestDB(t)
	post, err := NewPostRepo(db).GetPost(context.Background(), 404)
	require.NoError(t, err)
	assert.Nil(t, post)
}

func TestEscapeLike(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"plain", "plain"},
		{"100%", "100!%"},
		{"snake_case", "snake!_case"},
		{"wow!", "wow!!"},
		{"Привет", "Привет"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, escapeLike(tc.in), tc.in)
	}
}
