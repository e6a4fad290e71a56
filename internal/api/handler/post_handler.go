package handler

import (
	"Inkwell/internal/api/dto"
	"Inkwell/internal/pkg/response"
	"Inkwell/internal/service"

	"github.com/gin-gonic/gin"
)

type PostHandler struct {
	postSvc     service.PostService
	reactionSvc service.ReactionService
	rankingSvc  service.RankingService
	pageSize    int
}

func NewPostHandler(
	postSvc service.PostService,
	reactionSvc service.ReactionService,
	rankingSvc service.RankingService,
	pageSize int,
) *PostHandler {
	return &PostHandler{
		postSvc:     postSvc,
		reactionSvc: reactionSvc,
		rankingSvc:  rankingSvc,
		pageSize:    pageSize,
	}
}

// ListPosts 已发布文章，支持 author 与 q 参数
func (s *PostHandler) ListPosts(c *gin.Context) {
	var query dto.PostListQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		response.BindError(c, err)
		return
	}

	posts, err := s.postSvc.ListPublished(c.Request.Context(), &query, s.pageSize)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, posts)
}

func (s *PostHandler) CreatePost(c *gin.Context) {
	var req dto.CreatePostDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindError(c, err)
		return
	}

	post, err := s.postSvc.CreatePost(c.Request.Context(), c.GetUint64("user_id"), &req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.SuccessCreated(c, post)
}

func (s *PostHandler) ListMine(c *gin.Context) {
	posts, err := s.postSvc.ListMine(c.Request.Context(), c.GetUint64("user_id"), c.Query("page"), s.pageSize)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, posts)
}

func (s *PostHandler) TopPosts(c *gin.Context) {
	posts, err := s.rankingSvc.TopPosts(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, posts)
}

func (s *PostHandler) GetPost(c *gin.Context) {
	postID, ok := pathID(c, "post_id")
	if !ok {
		return
	}

	post, err := s.postSvc.GetPostDetail(c.Request.Context(), postID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, post)
}

func (s *PostHandler) UpdatePost(c *gin.Context) {
	postID, ok := pathID(c, "post_id")
	if !ok {
		return
	}

	var req dto.UpdatePostDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindError(c, err)
		return
	}

	post, err := s.postSvc.UpdatePost(c.Request.Context(), c.GetUint64("user_id"), postID, &req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, post)
}

func (s *PostHandler) HidePost(c *gin.Context) {
	postID, ok := pathID(c, "post_id")
	if !ok {
		return
	}

	if err := s.postSvc.HidePost(c.Request.Context(), c.GetUint64("user_id"), postID); err != nil {
		response.Error(c, err)
		return
	}
	response.Deleted(c)
}

func (s *PostHandler) SimilarPosts(c *gin.Context) {
	postID, ok := pathID(c, "post_id")
	if !ok {
		return
	}

	posts, err := s.rankingSvc.Similar(c.Request.Context(), postID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, posts)
}

func (s *PostHandler) LikePost(c *gin.Context) {
	postID, ok := pathID(c, "post_id")
	if !ok {
		return
	}
	result, err := s.reactionSvc.LikePost(c.Request.Context(), c.GetUint64("user_id"), postID)
	toggled(c, result, err)
}

// UploadImage 表单字段 image
func (s *PostHandler) UploadImage(c *gin.Context) {
	postID, ok := pathID(c, "post_id")
	if !ok {
		return
	}

	file, err := c.FormFile("image")
	if err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}
	reader, err := file.Open()
	if err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}
	defer func() { _ = reader.Close() }()

	image, err := s.postSvc.UploadImage(c.Request.Context(), c.GetUint64("user_id"), postID, reader)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.SuccessCreated(c, image)
}

func (s *PostHandler) ListByTag(c *gin.Context) {
	posts, tag, err := s.postSvc.ListByTag(c.Request.Context(), c.Param("slug"), c.Query("page"), s.pageSize)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, gin.H{"tag": tag, "posts": posts})
}
