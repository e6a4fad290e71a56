package api

import (
	"Inkwell/internal/api/middleware"
	"Inkwell/internal/pkg/logger"
	"net/http"
	"path/filepath"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// RouterOptions 路由初始化所需的配置
type RouterOptions struct {
	TemplatesDir string
	LogIndex     string
}

func SetupRouter(group *HandlersGroup, opts RouterOptions) *gin.Engine {
	r := gin.New()
	_ = r.SetTrustedProxies([]string{"localhost"})

	// TraceId & Logger & CORS
	r.Use(middleware.TraceMiddleware())
	r.Use(middleware.MetricsMiddleware())
	r.Use(middleware.AuditMiddleware())
	r.Use(middleware.CORSMiddleware())
	logger.SetupGin(r, opts.LogIndex)

	if opts.TemplatesDir != "" {
		r.LoadHTMLGlob(filepath.Join(opts.TemplatesDir, "*.html"))
	}

	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	apiGroup := r.Group("/api")
	{
		apiGroup.GET("/ping", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{
				"code":    http.StatusOK,
				"message": "pong",
				"data":    nil,
			})
		})

		authGroup := apiGroup.Group("/auth")
		{
			authGroup.POST("/register", group.UserHandler.Register)
			authGroup.POST("/login", group.UserHandler.Login)
			authGroup.POST("/logout", middleware.AuthMiddleware(), group.UserHandler.Logout)
		}

		userGroup := apiGroup.Group("/users")
		{
			// 无需登录即可访问的接口
			userGroup.GET("", group.UserHandler.ListUsers)
			userGroup.GET("/top", group.UserHandler.TopAuthors)
			userGroup.POST("/recovery", group.UserHandler.SendRecovery)
			userGroup.GET("/activate/:uuid", group.UserHandler.Activate)
			userGroup.GET("/:user_id/followers", group.UserHandler.GetFollowers)
			userGroup.GET("/:user_id/followings", group.UserHandler.GetFollowings)
			userGroup.GET("/:user_id", middleware.AuthOptionalMiddleware(), group.UserHandler.GetProfile)

			authGroup := userGroup.Group("")
			authGroup.Use(middleware.AuthMiddleware())
			{
				authGroup.PUT("/:user_id", group.UserHandler.UpdateProfile)
				authGroup.DELETE("/:user_id", group.UserHandler.Deactivate)
				authGroup.POST("/:user_id/follow", group.UserHandler.ToggleFollow)
				authGroup.POST("/:user_id/rating", group.UserHandler.RateAuthor)
			}
		}

		postGroup := apiGroup.Group("/posts")
		{
			postGroup.GET("", group.PostHandler.ListPosts)
			postGroup.GET("/top", group.PostHandler.TopPosts)
			postGroup.GET("/:post_id", group.PostHandler.GetPost)
			postGroup.GET("/:post_id/similar", group.PostHandler.SimilarPosts)
			postGroup.GET("/:post_id/comments", group.CommentHandler.ListComments)

			authGroup := postGroup.Group("")
			authGroup.Use(middleware.AuthMiddleware())
			{
				authGroup.POST("", group.PostHandler.CreatePost)
				authGroup.GET("/my", group.PostHandler.ListMine)
				authGroup.PUT("/:post_id", group.PostHandler.UpdatePost)
				authGroup.DELETE("/:post_id", group.PostHandler.HidePost)
				authGroup.POST("/:post_id/like", group.PostHandler.LikePost)
				authGroup.POST("/:post_id/comments", group.CommentHandler.CreateComment)
				authGroup.POST("/:post_id/images", group.PostHandler.UploadImage)
			}
		}

		apiGroup.GET("/tags/:slug/posts", group.PostHandler.ListByTag)

		commentGroup := apiGroup.Group("/comments")
		commentGroup.Use(middleware.AuthMiddleware())
		{
			commentGroup.PUT("/:comment_id", group.CommentHandler.UpdateComment)
			commentGroup.DELETE("/:comment_id", group.CommentHandler.HideComment)
			commentGroup.POST("/:comment_id/like", group.CommentHandler.LikeComment)
		}
	}

	if opts.TemplatesDir != "" {
		pageGroup := r.Group("")
		pageGroup.Use(middleware.AuthOptionalMiddleware())
		{
			pageGroup.GET("/", group.PageHandler.Index)
			pageGroup.GET("/blog/:username", group.PageHandler.Blog)
			pageGroup.GET("/tag/:slug", group.PageHandler.Tag)
			pageGroup.GET("/detail/:post_id", group.PageHandler.Detail)
			pageGroup.GET("/search", group.PageHandler.Search)
			pageGroup.GET("/top", group.PageHandler.Top)
			pageGroup.GET("/user/top", group.PageHandler.UserTop)
		}
	}

	return r
}
