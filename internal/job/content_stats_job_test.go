package job

import (
	"Inkwell/internal/model"
	"Inkwell/internal/pkg/database"
	"Inkwell/internal/pkg/metrics"
	"Inkwell/internal/repository"
	"testing"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContentStatsJob(t *testing.T) {
	db, err := database.NewMemoryDB()
	require.NoError(t, err)
	t.Cleanup(func() {
		sqlDB, _ := db.DB()
		_ = sqlDB.Close()
	})

	users := make([]*model.User, 0, 2)
	for i, name := range []string{"alice", "bob"} {
		u := &model.User{
			Username:         name,
			Email:            name + "@example.com",
			FirstName:        "Anonym",
			LastName:         "Anonym",
			Password:         "x",
			IsActive:         i == 0,
			VerificationUUID: uuid.NewString(),
		}
		require.NoError(t, db.Create(u).Error)
		users = append(users, u)
	}
	for _, status := range []string{model.StatusPublished, model.StatusPublished, model.StatusHidden} {
		require.NoError(t, db.Create(&model.Post{AuthorID: users[0].ID, Title: "t", Text: "x", Status: status}).Error)
	}
	require.NoError(t, db.Create(&model.Reaction{UserID: users[1].ID, TargetKind: model.KindUser, TargetID: users[0].ID}).Error)
	require.NoError(t, db.Create(&model.Follow{FollowerID: users[1].ID, AuthorID: users[0].ID}).Error)

	NewContentStatsJob(repository.NewStatsRepo(db)).Run()

	assert.Equal(t, 2.0, testutil.ToFloat64(metrics.ContentTotal.WithLabelValues("post_published")))
	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.ContentTotal.WithLabelValues("post_hidden")))
	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.ContentTotal.WithLabelValues("user_active")))
	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.ContentTotal.WithLabelValues("user_inactive")))
	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.ContentTotal.WithLabelValues("reaction_user")))
	assert.Equal(t, 0.0, testutil.ToFloat64(metrics.ContentTotal.WithLabelValues("reaction_post")))
	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.ContentTotal.WithLabelValues("follow")))
}
