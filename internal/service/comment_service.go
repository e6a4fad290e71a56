package service

import (
	"Inkwell/internal/api/dto"
	"Inkwell/internal/model"
	"Inkwell/internal/pkg/util"
	"Inkwell/internal/repository"
	"context"
	"strings"
)

type CommentService interface {
	CreateComment(ctx context.Context, actorID, postID uint64, req *dto.CommentCreateDTO) (*dto.CommentDTO, error)
	UpdateComment(ctx context.Context, actorID, commentID uint64, req *dto.CommentUpdateDTO) (*dto.CommentDTO, error)
	HideComment(ctx context.Context, actorID, commentID uint64) error
	ListComments(ctx context.Context, postID uint64, page string, size int) (*dto.PageDTO[dto.CommentDTO], error)
	CommentsLabel(ctx context.Context, postID uint64) (string, error)
}

type CommentServiceImpl struct {
	commentRepo repository.CommentRepo
	postRepo    repository.PostRepo
	reactionSvc ReactionService
	policy      SoftDeletePolicy
}

func NewCommentService(
	commentRepo repository.CommentRepo,
	postRepo repository.PostRepo,
	reactionSvc ReactionService,
	policy SoftDeletePolicy,
) CommentService {
	return &CommentServiceImpl{
		commentRepo: commentRepo,
		postRepo:    postRepo,
		reactionSvc: reactionSvc,
		policy:      policy,
	}
}

// CreateComment 只能评论已发布的文章
func (s *CommentServiceImpl) CreateComment(ctx context.Context, actorID, postID uint64, req *dto.CommentCreateDTO) (*dto.CommentDTO, error) {
	if actorID == 0 {
		return nil, ErrUnauthorized
	}
	post, err := s.postRepo.GetPost(ctx, postID)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, ErrPostNotFound
	}
	if !post.Published() {
		return nil, ErrPostNotPublished
	}

	comment := &model.Comment{
		PostID:   postID,
		AuthorID: actorID,
		Text:     strings.TrimSpace(req.Text),
		Status:   model.StatusPublished,
	}
	if err = s.commentRepo.CreateComment(ctx, comment); err != nil {
		return nil, err
	}
	return s.getComment(ctx, comment.ID)
}

func (s *CommentServiceImpl) UpdateComment(ctx context.Context, actorID, commentID uint64, req *dto.CommentUpdateDTO) (*dto.CommentDTO, error) {
	if actorID == 0 {
		return nil, ErrUnauthorized
	}
	comment, err := s.mustGetComment(ctx, commentID)
	if err != nil {
		return nil, err
	}
	if comment.OwnerID() != actorID {
		return nil, ErrForbidden
	}
	if err = s.commentRepo.UpdateCommentText(ctx, commentID, strings.TrimSpace(req.Text)); err != nil {
		return nil, err
	}
	return s.getComment(ctx, commentID)
}

func (s *CommentServiceImpl) HideComment(ctx context.Context, actorID, commentID uint64) error {
	comment, err := s.mustGetComment(ctx, commentID)
	if err != nil {
		return err
	}
	return s.policy.Hide(ctx, comment, actorID)
}

// ListComments 文章下已发布的评论，按创建时间正序，附带点赞数
func (s *CommentServiceImpl) ListComments(ctx context.Context, postID uint64, page string, size int) (*dto.PageDTO[dto.CommentDTO], error) {
	post, err := s.postRepo.GetPost(ctx, postID)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, ErrPostNotFound
	}

	total, err := s.commentRepo.CountPublishedByPost(ctx, postID)
	if err != nil {
		return nil, err
	}
	p := util.Paginate(page, total, size)
	comments, _, err := s.commentRepo.ListPublishedByPost(ctx, postID, p.Size, p.Offset())
	if err != nil {
		return nil, err
	}

	ids := make([]uint64, 0, len(comments))
	for _, c := range comments {
		ids = append(ids, c.ID)
	}
	likes, err := s.reactionSvc.CountMany(ctx, model.KindComment, ids)
	if err != nil {
		return nil, err
	}

	items := make([]dto.CommentDTO, 0, len(comments))
	for _, c := range comments {
		items = append(items, toCommentDTO(c, likes[c.ID]))
	}
	return newPage(items, p), nil
}

func (s *CommentServiceImpl) CommentsLabel(ctx context.Context, postID uint64) (string, error) {
	total, err := s.commentRepo.CountPublishedByPost(ctx, postID)
	if err != nil {
		return "", err
	}
	return util.CommentsLabel(total), nil
}

func (s *CommentServiceImpl) getComment(ctx context.Context, commentID uint64) (*dto.CommentDTO, error) {
	comment, err := s.mustGetComment(ctx, commentID)
	if err != nil {
		return nil, err
	}
	likes, err := s.reactionSvc.Count(ctx, model.KindComment, commentID)
	if err != nil {
		return nil, err
	}
	out := toCommentDTO(comment, likes)
	return &out, nil
}

// mustGetComment 隐藏的评论对外视为不存在
func (s *CommentServiceImpl) mustGetComment(ctx context.Context, commentID uint64) (*model.Comment, error) {
	comment, err := s.commentRepo.GetComment(ctx, commentID)
	if err != nil {
		return nil, err
	}
	if comment == nil || !comment.Published() {
		return nil, ErrCommentNotFound
	}
	return comment, nil
}
