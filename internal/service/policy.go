package service

import (
	"Inkwell/internal/model"
	"Inkwell/internal/repository"
	"context"
)

// SoftDeletePolicy 只有所有者可以隐藏实体：文章与评论改为 hidden，账号改为未激活
type SoftDeletePolicy interface {
	Hide(ctx context.Context, entity model.Owned, actorID uint64) error
}

type softDeletePolicy struct {
	repo repository.SoftDeleteRepo
}

func NewSoftDeletePolicy(repo repository.SoftDeleteRepo) SoftDeletePolicy {
	return &softDeletePolicy{repo: repo}
}

func (s *softDeletePolicy) Hide(ctx context.Context, entity model.Owned, actorID uint64) error {
	if actorID == 0 {
		return ErrUnauthorized
	}
	if entity.OwnerID() != actorID {
		return ErrForbidden
	}
	return s.repo.Hide(ctx, entity)
}
