package repository

import (
	"Inkwell/internal/model"
	"Inkwell/internal/pkg/util"
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type TagRepo interface {
	GetOrCreateTags(ctx context.Context, tagNames []string) ([]*model.Tag, error)
	GetTagBySlug(ctx context.Context, slug string) (*model.Tag, error)
	GetTagIDsByPostID(ctx context.Context, postID uint64) ([]uint64, error)
}

type tagRepoImpl struct {
	db *gorm.DB
}

func NewTagRepository(db *gorm.DB) TagRepo {
	return &tagRepoImpl{db: db}
}

// GetOrCreateTags 按 slug 查找或创建标签，slug 相同的名字视为同一标签
func (s *tagRepoImpl) GetOrCreateTags(ctx context.Context, tagNames []string) ([]*model.Tag, error) {
	var slugs []string
	seen := make(map[string]struct{})
	for _, name := range util.NormalizeTags(tagNames) {
		slug := util.Slugify(name)
		if slug == "" {
			continue
		}
		if _, ok := seen[slug]; ok {
			continue
		}
		seen[slug] = struct{}{}
		slugs = append(slugs, slug)

		tag := model.Tag{Name: name, Slug: slug}
		err := s.db.WithContext(ctx).Clauses(clause.OnConflict{DoNothing: true}).Create(&tag).Error
		if err != nil {
			return nil, err
		}
	}

	tags := make([]*model.Tag, 0, len(slugs))
	if len(slugs) == 0 {
		return tags, nil
	}
	if err := s.db.WithContext(ctx).Where("slug IN ?", slugs).Find(&tags).Error; err != nil {
		return nil, err
	}
	return tags, nil
}

func (s *tagRepoImpl) GetTagBySlug(ctx context.Context, slug string) (*model.Tag, error) {
	tag := &model.Tag{}
	result := s.db.WithContext(ctx).Where("slug = ?", slug).First(tag)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return tag, nil
}

func (s *tagRepoImpl) GetTagIDsByPostID(ctx context.Context, postID uint64) ([]uint64, error) {
	var ids []uint64
	err := s.db.WithContext(ctx).Model(&model.PostTag{}).
		Where("post_id = ?", postID).
		Pluck("tag_id", &ids).Error
	return ids, err
}
