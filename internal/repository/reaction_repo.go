package repository

import (
	"Inkwell/internal/model"
	"context"

	"gorm.io/gorm"
)

type ReactionRepo interface {
	Toggle(ctx context.Context, userID uint64, kind model.TargetKind, targetID uint64) (bool, error)
	Exists(ctx context.Context, userID uint64, kind model.TargetKind, targetID uint64) (bool, error)
	Count(ctx context.Context, kind model.TargetKind, targetID uint64) (int64, error)
	CountMany(ctx context.Context, kind model.TargetKind, targetIDs []uint64) (map[uint64]int64, error)
}

type ReactionRepoImpl struct {
	db *gorm.DB
}

func NewReactionRepo(db *gorm.DB) ReactionRepo {
	return &ReactionRepoImpl{db: db}
}

// Toggle 点赞/评分的切换，返回 true 表示新建
func (s *ReactionRepoImpl) Toggle(ctx context.Context, userID uint64, kind model.TargetKind, targetID uint64) (bool, error) {
	return toggleRow(ctx, s.db, &model.Reaction{
		UserID:     userID,
		TargetKind: kind,
		TargetID:   targetID,
	}, map[string]any{
		"user_id":     userID,
		"target_kind": kind,
		"target_id":   targetID,
	})
}

func (s *ReactionRepoImpl) Exists(ctx context.Context, userID uint64, kind model.TargetKind, targetID uint64) (bool, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&model.Reaction{}).
		Where("user_id = ? AND target_kind = ? AND target_id = ?", userID, kind, targetID).
		Count(&count).Error
	return count > 0, err
}

func (s *ReactionRepoImpl) Count(ctx context.Context, kind model.TargetKind, targetID uint64) (int64, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&model.Reaction{}).
		Where("target_kind = ? AND target_id = ?", kind, targetID).
		Count(&count).Error
	return count, err
}

// CountMany 批量统计，没有反应的目标不出现在结果中
func (s *ReactionRepoImpl) CountMany(ctx context.Context, kind model.TargetKind, targetIDs []uint64) (map[uint64]int64, error) {
	counts := make(map[uint64]int64, len(targetIDs))
	if len(targetIDs) == 0 {
		return counts, nil
	}

	var rows []struct {
		TargetID uint64
		Total    int64
	}
	err := s.db.WithContext(ctx).Model(&model.Reaction{}).
		Select("target_id, COUNT(*) AS total").
		Where("target_kind = ? AND target_id IN ?", kind, targetIDs).
		Group("target_id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	for _, row := range rows {
		counts[row.TargetID] = row.Total
	}
	return counts, nil
}
