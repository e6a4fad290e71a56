package repository

import (
	"Inkwell/internal/model"
	"context"
	"errors"

	"gorm.io/gorm"
)

type CommentRepo interface {
	CreateComment(ctx context.Context, comment *model.Comment) error
	GetComment(ctx context.Context, id uint64) (*model.Comment, error)
	UpdateCommentText(ctx context.Context, id uint64, text string) error
	ListPublishedByPost(ctx context.Context, postID uint64, limit, offset int) ([]*model.Comment, int64, error)
	CountPublishedByPost(ctx context.Context, postID uint64) (int64, error)
}

type CommentRepoImpl struct {
	db *gorm.DB
}

func NewCommentRepo(db *gorm.DB) CommentRepo {
	return &CommentRepoImpl{db: db}
}

func (s *CommentRepoImpl) CreateComment(ctx context.Context, comment *model.Comment) error {
	return s.db.WithContext(ctx).Omit("Post", "Author").Create(comment).Error
}

func (s *CommentRepoImpl) GetComment(ctx context.Context, id uint64) (*model.Comment, error) {
	comment := &model.Comment{}
	result := s.db.WithContext(ctx).Preload("Author").First(comment, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return comment, nil
}

func (s *CommentRepoImpl) UpdateCommentText(ctx context.Context, id uint64, text string) error {
	return s.db.WithContext(ctx).Model(&model.Comment{ID: id}).Update("text", text).Error
}

// ListPublishedByPost 文章下已发布的评论，按创建时间正序
func (s *CommentRepoImpl) ListPublishedByPost(ctx context.Context, postID uint64, limit, offset int) ([]*model.Comment, int64, error) {
	query := s.db.WithContext(ctx).Model(&model.Comment{}).
		Where("post_id = ? AND status = ?", postID, model.StatusPublished)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var comments []*model.Comment
	err := query.Preload("Author").
		Order("created_at asc, id asc").
		Limit(limit).
		Offset(offset).
		Find(&comments).Error
	if err != nil {
		return nil, 0, err
	}
	return comments, total, nil
}

func (s *CommentRepoImpl) CountPublishedByPost(ctx context.Context, postID uint64) (int64, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&model.Comment{}).
		Where("post_id = ? AND status = ?", postID, model.StatusPublished).
		Count(&count).Error
	return count, err
}
