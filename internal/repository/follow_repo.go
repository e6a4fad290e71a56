package repository

import (
	"Inkwell/internal/model"
	"context"

	"gorm.io/gorm"
)

type FollowRepo interface {
	Toggle(ctx context.Context, followerID, authorID uint64) (bool, error)
	IsFollowing(ctx context.Context, followerID, authorID uint64) (bool, error)
	GetFollowers(ctx context.Context, authorID uint64, limit, offset int) ([]*model.Follow, error)
	GetFollowings(ctx context.Context, followerID uint64, limit, offset int) ([]*model.Follow, error)
	GetFollowerCount(ctx context.Context, authorID uint64) (int64, error)
	GetFollowingCount(ctx context.Context, followerID uint64) (int64, error)
}

type FollowRepoImpl struct {
	db *gorm.DB
}

func NewFollowRepo(db *gorm.DB) FollowRepo {
	return &FollowRepoImpl{db: db}
}

// Toggle 关注/取关，只作用于 follower -> author 这一条有向边
func (s *FollowRepoImpl) Toggle(ctx context.Context, followerID, authorID uint64) (bool, error) {
	return toggleRow(ctx, s.db, &model.Follow{
		FollowerID: followerID,
		AuthorID:   authorID,
	}, map[string]any{
		"follower_id": followerID,
		"author_id":   authorID,
	})
}

func (s *FollowRepoImpl) IsFollowing(ctx context.Context, followerID, authorID uint64) (bool, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&model.Follow{}).
		Where("follower_id = ? AND author_id = ?", followerID, authorID).
		Count(&count).Error
	return count > 0, err
}

// GetFollowers 获取作者的粉丝列表
func (s *FollowRepoImpl) GetFollowers(ctx context.Context, authorID uint64, limit, offset int) ([]*model.Follow, error) {
	var follows []*model.Follow
	result := s.db.WithContext(ctx).
		Preload("Follower").
		Where("author_id = ?", authorID).
		Order("created_at desc").
		Limit(limit).
		Offset(offset).
		Find(&follows)
	if result.Error != nil {
		return nil, result.Error
	}
	return follows, nil
}

// GetFollowings 获取用户关注的作者列表
func (s *FollowRepoImpl) GetFollowings(ctx context.Context, followerID uint64, limit, offset int) ([]*model.Follow, error) {
	var follows []*model.Follow
	result := s.db.WithContext(ctx).
		Preload("Author").
		Where("follower_id = ?", followerID).
		Order("created_at desc").
		Limit(limit).
		Offset(offset).
		Find(&follows)
	if result.Error != nil {
		return nil, result.Error
	}
	return follows, nil
}

func (s *FollowRepoImpl) GetFollowerCount(ctx context.Context, authorID uint64) (int64, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&model.Follow{}).
		Where("author_id = ?", authorID).
		Count(&count).Error
	return count, err
}

func (s *FollowRepoImpl) GetFollowingCount(ctx context.Context, followerID uint64) (int64, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&model.Follow{}).
		Where("follower_id = ?", followerID).
		Count(&count).Error
	return count, err
}
