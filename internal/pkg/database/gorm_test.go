package database

import (
	"Inkwell/internal/api/config"
	"Inkwell/internal/model"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMemoryDBMigratesEveryTable(t *testing.T) {
	db, err := NewMemoryDB()
	require.NoError(t, err)

	for _, table := range []string{"users", "posts", "post_images", "comments", "tags", "post_tags", "reactions", "follows"} {
		assert.True(t, db.Migrator().HasTable(table), table)
	}

	// sqlite 的索引名全库唯一，重名会导致迁移失败
	indexes := []struct {
		model any
		name  string
	}{
		{&model.Post{}, "idx_post_author"},
		{&model.Post{}, "idx_status_created"},
		{&model.Follow{}, "idx_follow_author"},
		{&model.Comment{}, "idx_comment_author"},
		{&model.Comment{}, "idx_post_status_created"},
		{&model.PostImage{}, "idx_post_id"},
		{&model.PostTag{}, "idx_tag_id"},
		{&model.Reaction{}, "idx_target"},
		{&model.User{}, "idx_email"},
		{&model.User{}, "idx_user_created"},
	}
	for _, idx := range indexes {
		assert.True(t, db.Migrator().HasIndex(idx.model, idx.name), idx.name)
	}
}

func TestNewGormDBRejectsUnknownDriver(t *testing.T) {
	_, err := NewGormDB(&config.DBConfig{Driver: "oracle"})
	assert.Error(t, err)
}
