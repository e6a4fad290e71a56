package repository

import (
	"Inkwell/internal/model"
	"context"

	"gorm.io/gorm"
)

// ContentStats 站点内容的总量快照
type ContentStats struct {
	PublishedPosts    int64
	HiddenPosts       int64
	PublishedComments int64
	ActiveUsers       int64
	InactiveUsers     int64
	Follows           int64
	Reactions         map[model.TargetKind]int64
}

type StatsRepo interface {
	Snapshot(ctx context.Context) (*ContentStats, error)
}

type StatsRepoImpl struct {
	db *gorm.DB
}

func NewStatsRepo(db *gorm.DB) StatsRepo {
	return &StatsRepoImpl{db: db}
}

type statusCount struct {
	Status string
	Total  int64
}

type kindCount struct {
	TargetKind model.TargetKind
	Total      int64
}

func (s *StatsRepoImpl) Snapshot(ctx context.Context) (*ContentStats, error) {
	db := s.db.WithContext(ctx)
	stats := &ContentStats{Reactions: make(map[model.TargetKind]int64)}

	var posts []statusCount
	if err := db.Model(&model.Post{}).Select("status, COUNT(*) AS total").Group("status").Scan(&posts).Error; err != nil {
		return nil, err
	}
	for _, row := range posts {
		switch row.Status {
		case model.StatusPublished:
			stats.PublishedPosts = row.Total
		case model.StatusHidden:
			stats.HiddenPosts = row.Total
		}
	}

	err := db.Model(&model.Comment{}).Where("status = ?", model.StatusPublished).Count(&stats.PublishedComments).Error
	if err != nil {
		return nil, err
	}
	if err = db.Model(&model.User{}).Where("is_active = ?", true).Count(&stats.ActiveUsers).Error; err != nil {
		return nil, err
	}
	if err = db.Model(&model.User{}).Where("is_active = ?", false).Count(&stats.InactiveUsers).Error; err != nil {
		return nil, err
	}
	if err = db.Model(&model.Follow{}).Count(&stats.Follows).Error; err != nil {
		return nil, err
	}

	var reactions []kindCount
	err = db.Model(&model.Reaction{}).Select("target_kind, COUNT(*) AS total").Group("target_kind").Scan(&reactions).Error
	if err != nil {
		return nil, err
	}
	for _, row := range reactions {
		stats.Reactions[row.TargetKind] = row.Total
	}
	return stats, nil
}
