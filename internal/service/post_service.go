package service

import (
	"Inkwell/internal/api/dto"
	"Inkwell/internal/model"
	"Inkwell/internal/pkg/imageproc"
	"Inkwell/internal/pkg/minio"
	"Inkwell/internal/pkg/util"
	"Inkwell/internal/repository"
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	log "log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

type PostService interface {
	CreatePost(ctx context.Context, authorID uint64, req *dto.CreatePostDTO) (*dto.PostDTO, error)
	UpdatePost(ctx context.Context, actorID, postID uint64, req *dto.UpdatePostDTO) (*dto.PostDTO, error)
	HidePost(ctx context.Context, actorID, postID uint64) error
	GetPost(ctx context.Context, postID uint64) (*dto.PostDTO, error)
	GetPostDetail(ctx context.Context, postID uint64) (*dto.PostDetailDTO, error)
	ListPublished(ctx context.Context, query *dto.PostListQuery, size int) (*dto.PageDTO[dto.PostDTO], error)
	ListByTag(ctx context.Context, slug, page string, size int) (*dto.PageDTO[dto.PostDTO], *dto.TagDTO, error)
	ListMine(ctx context.Context, actorID uint64, page string, size int) (*dto.PageDTO[dto.PostDTO], error)
	UploadImage(ctx context.Context, actorID, postID uint64, file io.Reader) (*dto.ImageDTO, error)
}

type PostServiceImpl struct {
	postRepo    repository.PostRepo
	tagRepo     repository.TagRepo
	userRepo    repository.UserRepo
	commentRepo repository.CommentRepo
	reactionSvc ReactionService
	rankingSvc  RankingService
	policy      SoftDeletePolicy
	store       minio.ObjectStore
}

func NewPostService(
	postRepo repository.PostRepo,
	tagRepo repository.TagRepo,
	userRepo repository.UserRepo,
	commentRepo repository.CommentRepo,
	reactionSvc ReactionService,
	rankingSvc RankingService,
	policy SoftDeletePolicy,
	store minio.ObjectStore,
) PostService {
	return &PostServiceImpl{
		postRepo:    postRepo,
		tagRepo:     tagRepo,
		userRepo:    userRepo,
		commentRepo: commentRepo,
		reactionSvc: reactionSvc,
		rankingSvc:  rankingSvc,
		policy:      policy,
		store:       store,
	}
}

func (s *PostServiceImpl) CreatePost(ctx context.Context, authorID uint64, req *dto.CreatePostDTO) (*dto.PostDTO, error) {
	if authorID == 0 {
		return nil, ErrUnauthorized
	}
	tagIDs, err := s.tagIDs(ctx, req.Tags)
	if err != nil {
		return nil, err
	}

	post := &model.Post{
		AuthorID: authorID,
		Title:    strings.TrimSpace(req.Title),
		Text:     req.Text,
		Status:   model.StatusPublished,
	}
	if err = s.postRepo.CreatePost(ctx, post, tagIDs); err != nil {
		return nil, err
	}
	return s.GetPost(ctx, post.ID)
}

// UpdatePost 只有作者能修改，作者与创建时间不可变；隐藏的文章仍可编辑
func (s *PostServiceImpl) UpdatePost(ctx context.Context, actorID, postID uint64, req *dto.UpdatePostDTO) (*dto.PostDTO, error) {
	if actorID == 0 {
		return nil, ErrUnauthorized
	}
	post, err := s.mustGetPost(ctx, postID)
	if err != nil {
		return nil, err
	}
	if post.OwnerID() != actorID {
		return nil, ErrForbidden
	}

	fields := make(map[string]any)
	if req.Title != nil {
		fields["title"] = strings.TrimSpace(*req.Title)
	}
	if req.Text != nil {
		fields["text"] = *req.Text
	}

	var tagIDs *[]uint64
	if req.Tags != nil {
		ids, err := s.tagIDs(ctx, *req.Tags)
		if err != nil {
			return nil, err
		}
		tagIDs = &ids
	}

	if len(fields) == 0 && tagIDs == nil {
		return s.GetPost(ctx, postID)
	}
	if err = s.postRepo.UpdatePost(ctx, postID, fields, tagIDs); err != nil {
		return nil, err
	}
	return s.GetPost(ctx, postID)
}

func (s *PostServiceImpl) HidePost(ctx context.Context, actorID, postID uint64) error {
	post, err := s.mustGetPost(ctx, postID)
	if err != nil {
		return err
	}
	return s.policy.Hide(ctx, post, actorID)
}

// GetPost 按 id 读取，隐藏的文章同样可见
func (s *PostServiceImpl) GetPost(ctx context.Context, postID uint64) (*dto.PostDTO, error) {
	post, err := s.mustGetPost(ctx, postID)
	if err != nil {
		return nil, err
	}
	out := toPostDTO(post, s.store.URL)
	return &out, nil
}

// GetPostDetail 文章、点赞数、已发布评论、相似文章并发读取
func (s *PostServiceImpl) GetPostDetail(ctx context.Context, postID uint64) (*dto.PostDetailDTO, error) {
	post, err := s.GetPost(ctx, postID)
	if err != nil {
		return nil, err
	}
	detail := &dto.PostDetailDTO{PostDTO: *post}

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		count, err := s.reactionSvc.Count(gCtx, model.KindPost, postID)
		detail.LikeCount = count
		return err
	})
	g.Go(func() error {
		comments, total, err := s.commentRepo.ListPublishedByPost(gCtx, postID, -1, -1)
		if err != nil {
			return err
		}
		ids := make([]uint64, 0, len(comments))
		for _, c := range comments {
			ids = append(ids, c.ID)
		}
		likes, err := s.reactionSvc.CountMany(gCtx, model.KindComment, ids)
		if err != nil {
			return err
		}
		detail.Comments = make([]dto.CommentDTO, 0, len(comments))
		for _, c := range comments {
			detail.Comments = append(detail.Comments, toCommentDTO(c, likes[c.ID]))
		}
		detail.CommentCount = total
		detail.CommentsLabel = util.CommentsLabel(total)
		return nil
	})
	g.Go(func() error {
		similar, err := s.rankingSvc.Similar(gCtx, postID)
		detail.Similar = similar
		return err
	})

	if err = g.Wait(); err != nil {
		return nil, err
	}
	return detail, nil
}

// ListPublished 已发布文章，可按作者用户名筛选或按关键字搜索
func (s *PostServiceImpl) ListPublished(ctx context.Context, query *dto.PostListQuery, size int) (*dto.PageDTO[dto.PostDTO], error) {
	filter := repository.PostFilter{Query: strings.TrimSpace(query.Q)}
	if query.Author != "" {
		author, err := s.userRepo.GetUserByUsername(ctx, query.Author)
		if err != nil {
			return nil, err
		}
		if author == nil {
			return newPage([]dto.PostDTO{}, util.Paginate(query.Page, 0, size)), nil
		}
		filter.AuthorID = author.ID
	}
	return s.listPage(ctx, query.Page, size, func(limit, offset int) ([]*model.Post, int64, error) {
		return s.postRepo.ListPublished(ctx, filter, limit, offset)
	})
}

func (s *PostServiceImpl) ListByTag(ctx context.Context, slug, page string, size int) (*dto.PageDTO[dto.PostDTO], *dto.TagDTO, error) {
	tag, err := s.tagRepo.GetTagBySlug(ctx, slug)
	if err != nil {
		return nil, nil, err
	}
	if tag == nil {
		return nil, nil, ErrTagNotFound
	}
	result, err := s.listPage(ctx, page, size, func(limit, offset int) ([]*model.Post, int64, error) {
		return s.postRepo.ListPublished(ctx, repository.PostFilter{TagID: tag.ID}, limit, offset)
	})
	if err != nil {
		return nil, nil, err
	}
	return result, &dto.TagDTO{Name: tag.Name, Slug: tag.Slug}, nil
}

// ListMine 自己的全部文章，包括隐藏的
func (s *PostServiceImpl) ListMine(ctx context.Context, actorID uint64, page string, size int) (*dto.PageDTO[dto.PostDTO], error) {
	if actorID == 0 {
		return nil, ErrUnauthorized
	}
	return s.listPage(ctx, page, size, func(limit, offset int) ([]*model.Post, int64, error) {
		return s.postRepo.ListByAuthor(ctx, actorID, limit, offset)
	})
}

// UploadImage 图片缩放并转为 JPEG 后存入对象存储，仅作者可上传
func (s *PostServiceImpl) UploadImage(ctx context.Context, actorID, postID uint64, file io.Reader) (*dto.ImageDTO, error) {
	if actorID == 0 {
		return nil, ErrUnauthorized
	}
	post, err := s.mustGetPost(ctx, postID)
	if err != nil {
		return nil, err
	}
	if post.OwnerID() != actorID {
		return nil, ErrForbidden
	}

	processed, err := imageproc.Fit(file)
	if err != nil {
		if errors.Is(err, imageproc.ErrNotImage) {
			return nil, ErrFileNotSupported
		}
		return nil, err
	}

	objectName := fmt.Sprintf("posts/%d/%s%s.jpg", postID, time.Now().Format("2006/01/02/"), uuid.NewString())
	key, err := s.store.Put(ctx, objectName, bytes.NewReader(processed.Data), int64(len(processed.Data)), processed.ContentType)
	if err != nil {
		return nil, err
	}

	image := &model.PostImage{
		PostID:      postID,
		ObjectKey:   key,
		ContentType: processed.ContentType,
		Width:       processed.Width,
		Height:      processed.Height,
	}
	if err = s.postRepo.AddImage(ctx, image); err != nil {
		if rmErr := s.store.Remove(ctx, key); rmErr != nil {
			log.WarnContext(ctx, "orphan image left in storage", "key", key, "err", rmErr)
		}
		return nil, err
	}

	out := toImageDTO(image, s.store.URL)
	return &out, nil
}

func (s *PostServiceImpl) listPage(ctx context.Context, page string, size int, fetch func(limit, offset int) ([]*model.Post, int64, error)) (*dto.PageDTO[dto.PostDTO], error) {
	// 先取总数确定页码，越界页码落到最后一页
	_, total, err := fetch(0, 0)
	if err != nil {
		return nil, err
	}
	p := util.Paginate(page, total, size)
	posts, _, err := fetch(p.Size, p.Offset())
	if err != nil {
		return nil, err
	}
	return newPage(toPostDTOs(posts), p), nil
}

func (s *PostServiceImpl) mustGetPost(ctx context.Context, postID uint64) (*model.Post, error) {
	post, err := s.postRepo.GetPost(ctx, postID)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, ErrPostNotFound
	}
	return post, nil
}

func (s *PostServiceImpl) tagIDs(ctx context.Context, names []string) ([]uint64, error) {
	tags, err := s.tagRepo.GetOrCreateTags(ctx, names)
	if err != nil {
		return nil, err
	}
	ids := make([]uint64, 0, len(tags))
	for _, tag := range tags {
		ids = append(ids, tag.ID)
	}
	return ids, nil
}
