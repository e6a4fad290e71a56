package repository

import (
	"Inkwell/internal/model"
	"context"
	"fmt"

	"gorm.io/gorm"
)

// SoftDeleteRepo 通过状态字段隐藏实体，行本身保留
type SoftDeleteRepo interface {
	Hide(ctx context.Context, entity model.Owned) error
}

type softDeleteRepoImpl struct {
	db *gorm.DB
}

func NewSoftDeleteRepo(db *gorm.DB) SoftDeleteRepo {
	return &softDeleteRepoImpl{db: db}
}

func (s *softDeleteRepoImpl) Hide(ctx context.Context, entity model.Owned) error {
	db := s.db.WithContext(ctx)
	switch e := entity.(type) {
	case *model.Post:
		if err := db.Model(&model.Post{ID: e.ID}).Update("status", model.StatusHidden).Error; err != nil {
			return err
		}
		e.Status = model.StatusHidden
	case *model.Comment:
		if err := db.Model(&model.Comment{ID: e.ID}).Update("status", model.StatusHidden).Error; err != nil {
			return err
		}
		e.Status = model.StatusHidden
	case *model.User:
		if err := db.Model(&model.User{ID: e.ID}).Update("is_active", false).Error; err != nil {
			return err
		}
		e.IsActive = false
	default:
		return fmt.Errorf("soft delete not supported for %T", entity)
	}
	return nil
}
