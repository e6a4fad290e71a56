package repository

import (
	"Inkwell/internal/model"
	"Inkwell/internal/pkg/database"
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := database.NewMemoryDB()
	require.NoError(t, err)
	t.Cleanup(func() {
		sqlDB, _ := db.DB()
		_ = sqlDB.Close()
	})
	return db
}

func seedUser(t *testing.T, db *gorm.DB, username string) *model.User {
	t.Helper()
	user := &model.User{
		Username:         username,
		Email:            username + "@example.com",
		FirstName:        "Anonym",
		LastName:         "Anonym",
		Password:         "x",
		IsActive:         true,
		VerificationUUID: uuid.NewString(),
	}
	require.NoError(t, db.Create(user).Error)
	return user
}

// seedPost 以固定的创建时间插入文章，便于断言排序
func seedPost(t *testing.T, db *gorm.DB, author *model.User, title string, createdAt time.Time, tagNames ...string) *model.Post {
	t.Helper()
	ctx := context.Background()

	tags, err := NewTagRepository(db).GetOrCreateTags(ctx, tagNames)
	require.NoError(t, err)
	tagIDs := make([]uint64, 0, len(tags))
	for _, tag := range tags {
		tagIDs = append(tagIDs, tag.ID)
	}

	post := &model.Post{
		AuthorID:  author.ID,
		Title:     title,
		Text:      "text of " + title,
		Status:    model.StatusPublished,
		CreatedAt: createdAt,
		UpdatedAt: createdAt,
	}
	require.NoError(t, NewPostRepo(db).CreatePost(ctx, post, tagIDs))
	return post
}

func hide(t *testing.T, db *gorm.DB, post *model.Post) {
	t.Helper()
	require.NoError(t, NewSoftDeleteRepo(db).Hide(context.Background(), post))
}

var base = time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)

func at(hours int) time.Time {
	return base.Add(time.Duration(hours) * time.Hour)
}
