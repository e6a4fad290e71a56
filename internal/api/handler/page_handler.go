package handler

import (
	"Inkwell/internal/api/dto"
	"Inkwell/internal/service"
	log "log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
)

// PageHandler 服务端渲染的页面
type PageHandler struct {
	postSvc    service.PostService
	userSvc    service.UserService
	rankingSvc service.RankingService
	pageSize   int
}

func NewPageHandler(
	postSvc service.PostService,
	userSvc service.UserService,
	rankingSvc service.RankingService,
	pageSize int,
) *PageHandler {
	return &PageHandler{
		postSvc:    postSvc,
		userSvc:    userSvc,
		rankingSvc: rankingSvc,
		pageSize:   pageSize,
	}
}

func (s *PageHandler) Index(c *gin.Context) {
	posts, err := s.postSvc.ListPublished(c.Request.Context(), &dto.PostListQuery{Page: c.Query("page")}, s.pageSize)
	if err != nil {
		s.renderError(c, err)
		return
	}
	s.render(c, "index.html", gin.H{"posts": posts})
}

func (s *PageHandler) Blog(c *gin.Context) {
	username := c.Param("username")
	author, err := s.userSvc.GetByUsername(c.Request.Context(), username)
	if err != nil {
		s.renderError(c, err)
		return
	}

	query := &dto.PostListQuery{Author: username, Page: c.Query("page")}
	posts, err := s.postSvc.ListPublished(c.Request.Context(), query, s.pageSize)
	if err != nil {
		s.renderError(c, err)
		return
	}
	s.render(c, "blog.html", gin.H{"author": author, "posts": posts})
}

func (s *PageHandler) Tag(c *gin.Context) {
	posts, tag, err := s.postSvc.ListByTag(c.Request.Context(), c.Param("slug"), c.Query("page"), s.pageSize)
	if err != nil {
		s.renderError(c, err)
		return
	}
	s.render(c, "tag.html", gin.H{"tag": tag, "posts": posts})
}

func (s *PageHandler) Detail(c *gin.Context) {
	postID, ok := s.pagePathID(c, "post_id")
	if !ok {
		return
	}

	post, err := s.postSvc.GetPostDetail(c.Request.Context(), postID)
	if err != nil {
		s.renderError(c, err)
		return
	}
	s.render(c, "detail.html", gin.H{"post": post})
}

func (s *PageHandler) Search(c *gin.Context) {
	query := &dto.PostListQuery{Q: c.Query("q"), Page: c.Query("page")}
	posts, err := s.postSvc.ListPublished(c.Request.Context(), query, s.pageSize)
	if err != nil {
		s.renderError(c, err)
		return
	}
	s.render(c, "search.html", gin.H{"q": query.Q, "posts": posts})
}

func (s *PageHandler) Top(c *gin.Context) {
	posts, err := s.rankingSvc.TopPosts(c.Request.Context())
	if err != nil {
		s.renderError(c, err)
		return
	}
	s.render(c, "top.html", gin.H{"posts": posts})
}

func (s *PageHandler) UserTop(c *gin.Context) {
	authors, err := s.rankingSvc.TopAuthors(c.Request.Context())
	if err != nil {
		s.renderError(c, err)
		return
	}
	s.render(c, "user_top.html", gin.H{"authors": authors})
}

// render 所有页面都带上当前登录用户
func (s *PageHandler) render(c *gin.Context, name string, data gin.H) {
	data["viewer_id"] = c.GetUint64("user_id")
	data["viewer"] = c.GetString("username")
	c.HTML(http.StatusOK, name, data)
}

func (s *PageHandler) renderError(c *gin.Context, err error) {
	code, ok := service.CodeOf(err)
	message := err.Error()
	if !ok {
		log.ErrorContext(c.Request.Context(), "page render failed", "path", c.Request.URL.Path, "err", err)
		code = http.StatusInternalServerError
		message = service.UnExpectedError.Error()
	}
	c.HTML(code, "error.html", gin.H{"code": code, "message": message})
}

func (s *PageHandler) pagePathID(c *gin.Context, name string) (uint64, bool) {
	id, ok := parseID(c.Param(name))
	if !ok {
		s.renderError(c, service.ErrPostNotFound)
	}
	return id, ok
}
