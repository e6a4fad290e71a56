package handler

import (
	"Inkwell/internal/api/dto"
	"Inkwell/internal/pkg/response"
	"Inkwell/internal/service"

	"github.com/gin-gonic/gin"
)

type CommentHandler struct {
	commentSvc  service.CommentService
	reactionSvc service.ReactionService
	pageSize    int
}

func NewCommentHandler(commentSvc service.CommentService, reactionSvc service.ReactionService, pageSize int) *CommentHandler {
	return &CommentHandler{
		commentSvc:  commentSvc,
		reactionSvc: reactionSvc,
		pageSize:    pageSize,
	}
}

func (s *CommentHandler) ListComments(c *gin.Context) {
	postID, ok := pathID(c, "post_id")
	if !ok {
		return
	}

	comments, err := s.commentSvc.ListComments(c.Request.Context(), postID, c.Query("page"), s.pageSize)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, comments)
}

func (s *CommentHandler) CreateComment(c *gin.Context) {
	postID, ok := pathID(c, "post_id")
	if !ok {
		return
	}

	var req dto.CommentCreateDTO
	if err := c.ShouldBind(&req); err != nil {
		response.BindError(c, err)
		return
	}

	comment, err := s.commentSvc.CreateComment(c.Request.Context(), c.GetUint64("user_id"), postID, &req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.SuccessCreated(c, comment)
}

func (s *CommentHandler) UpdateComment(c *gin.Context) {
	commentID, ok := pathID(c, "comment_id")
	if !ok {
		return
	}

	var req dto.CommentUpdateDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindError(c, err)
		return
	}

	comment, err := s.commentSvc.UpdateComment(c.Request.Context(), c.GetUint64("user_id"), commentID, &req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, comment)
}

func (s *CommentHandler) HideComment(c *gin.Context) {
	commentID, ok := pathID(c, "comment_id")
	if !ok {
		return
	}

	if err := s.commentSvc.HideComment(c.Request.Context(), c.GetUint64("user_id"), commentID); err != nil {
		response.Error(c, err)
		return
	}
	response.Deleted(c)
}

func (s *CommentHandler) LikeComment(c *gin.Context) {
	commentID, ok := pathID(c, "comment_id")
	if !ok {
		return
	}
	result, err := s.reactionSvc.LikeComment(c.Request.Context(), c.GetUint64("user_id"), commentID)
	toggled(c, result, err)
}
