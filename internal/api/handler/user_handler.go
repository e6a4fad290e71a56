package handler

import (
	"Inkwell/internal/api/dto"
	"Inkwell/internal/api/middleware"
	"Inkwell/internal/pkg/response"
	"Inkwell/internal/pkg/security"
	"Inkwell/internal/service"
	"net/http"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	userSvc     service.UserService
	followSvc   service.FollowService
	reactionSvc service.ReactionService
	rankingSvc  service.RankingService
	pageSize    int
}

func NewUserHandler(
	userSvc service.UserService,
	followSvc service.FollowService,
	reactionSvc service.ReactionService,
	rankingSvc service.RankingService,
	pageSize int,
) *UserHandler {
	return &UserHandler{
		userSvc:     userSvc,
		followSvc:   followSvc,
		reactionSvc: reactionSvc,
		rankingSvc:  rankingSvc,
		pageSize:    pageSize,
	}
}

func (s *UserHandler) Register(c *gin.Context) {
	var req dto.RegisterDTO
	if err := c.ShouldBind(&req); err != nil {
		response.BindError(c, err)
		return
	}

	user, err := s.userSvc.Register(c.Request.Context(), &req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.SuccessCreated(c, user)
}

// Login 返回 token，同时写入 cookie 供页面使用
func (s *UserHandler) Login(c *gin.Context) {
	var req dto.CredentialDTO
	if err := c.ShouldBind(&req); err != nil {
		response.BindError(c, err)
		return
	}

	token, err := s.userSvc.Login(c.Request.Context(), &req)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(middleware.TokenCookie, token.Token, int(security.JWTExpirationTime.Seconds()), "/", "", false, true)
	response.Success(c, token)
}

func (s *UserHandler) Logout(c *gin.Context) {
	if err := s.userSvc.Logout(c.Request.Context(), c.GetString("token")); err != nil {
		response.Error(c, err)
		return
	}
	c.SetCookie(middleware.TokenCookie, "", -1, "/", "", false, true)
	response.Success(c, nil)
}

func (s *UserHandler) ListUsers(c *gin.Context) {
	var query dto.UserListQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		response.BindError(c, err)
		return
	}

	users, err := s.userSvc.ListUsers(c.Request.Context(), &query, s.pageSize)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, users)
}

func (s *UserHandler) TopAuthors(c *gin.Context) {
	authors, err := s.rankingSvc.TopAuthors(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, authors)
}

func (s *UserHandler) GetProfile(c *gin.Context) {
	userID, ok := pathID(c, "user_id")
	if !ok {
		return
	}

	profile, err := s.userSvc.GetProfile(c.Request.Context(), c.GetUint64("user_id"), userID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, profile)
}

func (s *UserHandler) UpdateProfile(c *gin.Context) {
	userID, ok := pathID(c, "user_id")
	if !ok {
		return
	}

	var req dto.UpdateProfileDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindError(c, err)
		return
	}

	user, err := s.userSvc.UpdateProfile(c.Request.Context(), c.GetUint64("user_id"), userID, &req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, user)
}

// Deactivate 注销账号，仅本人
func (s *UserHandler) Deactivate(c *gin.Context) {
	userID, ok := pathID(c, "user_id")
	if !ok {
		return
	}

	if err := s.userSvc.Deactivate(c.Request.Context(), c.GetUint64("user_id"), userID); err != nil {
		response.Error(c, err)
		return
	}
	response.Deleted(c)
}

func (s *UserHandler) SendRecovery(c *gin.Context) {
	var req dto.RecoveryDTO
	if err := c.ShouldBind(&req); err != nil {
		response.BindError(c, err)
		return
	}

	if err := s.userSvc.SendRecovery(c.Request.Context(), req.Email); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}

func (s *UserHandler) Activate(c *gin.Context) {
	user, err := s.userSvc.Activate(c.Request.Context(), c.Param("uuid"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, user)
}

func (s *UserHandler) ToggleFollow(c *gin.Context) {
	authorID, ok := pathID(c, "user_id")
	if !ok {
		return
	}
	result, err := s.followSvc.ToggleFollow(c.Request.Context(), c.GetUint64("user_id"), authorID)
	toggled(c, result, err)
}

func (s *UserHandler) RateAuthor(c *gin.Context) {
	authorID, ok := pathID(c, "user_id")
	if !ok {
		return
	}
	result, err := s.reactionSvc.RateAuthor(c.Request.Context(), c.GetUint64("user_id"), authorID)
	toggled(c, result, err)
}

func (s *UserHandler) GetFollowers(c *gin.Context) {
	userID, ok := pathID(c, "user_id")
	if !ok {
		return
	}

	followers, err := s.followSvc.GetFollowers(c.Request.Context(), userID, c.Query("page"), s.pageSize)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, followers)
}

func (s *UserHandler) GetFollowings(c *gin.Context) {
	userID, ok := pathID(c, "user_id")
	if !ok {
		return
	}

	followings, err := s.followSvc.GetFollowings(c.Request.Context(), userID, c.Query("page"), s.pageSize)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, followings)
}
