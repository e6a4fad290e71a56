package job

import (
	"Inkwell/internal/model"
	"Inkwell/internal/pkg/logger"
	"Inkwell/internal/pkg/metrics"
	"Inkwell/internal/repository"
	"context"
	log "log/slog"
	"time"

	"github.com/google/uuid"
)

// ContentStatsJob 定期统计内容总量并写入 prometheus
type ContentStatsJob struct {
	statsRepo repository.StatsRepo
	timeout   time.Duration
}

func NewContentStatsJob(statsRepo repository.StatsRepo) *ContentStatsJob {
	return &ContentStatsJob{statsRepo: statsRepo, timeout: 30 * time.Second}
}

func (s *ContentStatsJob) Run() {
	ctx := logger.WithTraceID(context.Background(), "job-stats-"+uuid.NewString())
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	stats, err := s.statsRepo.Snapshot(ctx)
	if err != nil {
		log.ErrorContext(ctx, "content stats snapshot failed", "err", err)
		return
	}

	metrics.ContentTotal.WithLabelValues("post_published").Set(float64(stats.PublishedPosts))
	metrics.ContentTotal.WithLabelValues("post_hidden").Set(float64(stats.HiddenPosts))
	metrics.ContentTotal.WithLabelValues("comment_published").Set(float64(stats.PublishedComments))
	metrics.ContentTotal.WithLabelValues("user_active").Set(float64(stats.ActiveUsers))
	metrics.ContentTotal.WithLabelValues("user_inactive").Set(float64(stats.InactiveUsers))
	metrics.ContentTotal.WithLabelValues("follow").Set(float64(stats.Follows))
	for _, kind := range []model.TargetKind{model.KindPost, model.KindComment, model.KindUser} {
		metrics.ContentTotal.WithLabelValues("reaction_" + string(kind)).Set(float64(stats.Reactions[kind]))
	}

	log.InfoContext(ctx, "content stats refreshed",
		"posts", stats.PublishedPosts,
		"comments", stats.PublishedComments,
		"users", stats.ActiveUsers,
	)
}
