package service

import (
	"Inkwell/internal/model"
	"Inkwell/internal/pkg/consts"
	"Inkwell/internal/repository"
	"context"
	"fmt"
)

type ReactionService interface {
	Toggle(ctx context.Context, actorID uint64, kind model.TargetKind, targetID uint64) (ToggleResult, error)
	LikePost(ctx context.Context, actorID, postID uint64) (ToggleResult, error)
	LikeComment(ctx context.Context, actorID, commentID uint64) (ToggleResult, error)
	RateAuthor(ctx context.Context, actorID, authorID uint64) (ToggleResult, error)
	Count(ctx context.Context, kind model.TargetKind, targetID uint64) (int64, error)
	CountMany(ctx context.Context, kind model.TargetKind, targetIDs []uint64) (map[uint64]int64, error)
}

type ReactionServiceImpl struct {
	reactionRepo repository.ReactionRepo
	postRepo     repository.PostRepo
	commentRepo  repository.CommentRepo
	userRepo     repository.UserRepo
}

func NewReactionService(
	reactionRepo repository.ReactionRepo,
	postRepo repository.PostRepo,
	commentRepo repository.CommentRepo,
	userRepo repository.UserRepo,
) ReactionService {
	return &ReactionServiceImpl{
		reactionRepo: reactionRepo,
		postRepo:     postRepo,
		commentRepo:  commentRepo,
		userRepo:     userRepo,
	}
}

// Toggle 对 (actor, kind, target) 做创建或删除
func (s *ReactionServiceImpl) Toggle(ctx context.Context, actorID uint64, kind model.TargetKind, targetID uint64) (ToggleResult, error) {
	if actorID == 0 {
		return Removed, ErrUnauthorized
	}
	if err := s.ensureTarget(ctx, kind, targetID); err != nil {
		return Removed, err
	}

	created, err := s.reactionRepo.Toggle(ctx, actorID, kind, targetID)
	result, err := finishToggle(string(kind), created, err)
	if err != nil {
		return result, err
	}

	invalidate(ctx, reactionCountKey(kind, targetID))
	return result, nil
}

func (s *ReactionServiceImpl) LikePost(ctx context.Context, actorID, postID uint64) (ToggleResult, error) {
	return s.Toggle(ctx, actorID, model.KindPost, postID)
}

func (s *ReactionServiceImpl) LikeComment(ctx context.Context, actorID, commentID uint64) (ToggleResult, error) {
	return s.Toggle(ctx, actorID, model.KindComment, commentID)
}

func (s *ReactionServiceImpl) RateAuthor(ctx context.Context, actorID, authorID uint64) (ToggleResult, error) {
	return s.Toggle(ctx, actorID, model.KindUser, authorID)
}

// Count 反应数不落库，数据库计数为准，redis 只做读穿缓存
func (s *ReactionServiceImpl) Count(ctx context.Context, kind model.TargetKind, targetID uint64) (int64, error) {
	return cachedCount(ctx, reactionCountKey(kind, targetID), consts.ReactionCountTTL, func(ctx context.Context) (int64, error) {
		return s.reactionRepo.Count(ctx, kind, targetID)
	})
}

func (s *ReactionServiceImpl) CountMany(ctx context.Context, kind model.TargetKind, targetIDs []uint64) (map[uint64]int64, error) {
	return s.reactionRepo.CountMany(ctx, kind, targetIDs)
}

func (s *ReactionServiceImpl) ensureTarget(ctx context.Context, kind model.TargetKind, targetID uint64) error {
	switch kind {
	case model.KindPost:
		post, err := s.postRepo.GetPost(ctx, targetID)
		if err != nil {
			return err
		}
		if post == nil {
			return ErrPostNotFound
		}
	case model.KindComment:
		comment, err := s.commentRepo.GetComment(ctx, targetID)
		if err != nil {
			return err
		}
		// 隐藏的评论视为不存在
		if comment == nil || !comment.Published() {
			return ErrCommentNotFound
		}
	case model.KindUser:
		user, err := s.userRepo.GetUserById(ctx, targetID)
		if err != nil {
			return err
		}
		if user == nil {
			return ErrUserNotFound
		}
	default:
		return ErrParamInvalid
	}
	return nil
}

func reactionCountKey(kind model.TargetKind, targetID uint64) string {
	return fmt.Sprintf("%s%s:%d", consts.ReactionCountKey, kind, targetID)
}
