package wire

import (
	"Inkwell/internal/api"
	"Inkwell/internal/api/config"
	"Inkwell/internal/api/handler"
	"Inkwell/internal/job"
	"Inkwell/internal/pkg/cron"
	"Inkwell/internal/pkg/mail"
	"Inkwell/internal/pkg/minio"
	"Inkwell/internal/repository"
	"Inkwell/internal/service"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// ApplicationContainer 封装了应用运行所需的所有顶级组件
type ApplicationContainer struct {
	Router  *gin.Engine
	DB      *gorm.DB
	CronMgr *cron.Manager
}

func BuildApplication(db *gorm.DB, store minio.ObjectStore, sender mail.Sender, cfg *config.Config) (*ApplicationContainer, error) {
	userRepo := repository.NewUserRepo(db)
	postRepo := repository.NewPostRepo(db)
	commentRepo := repository.NewCommentRepo(db)
	tagRepo := repository.NewTagRepository(db)
	reactionRepo := repository.NewReactionRepo(db)
	followRepo := repository.NewFollowRepo(db)
	softDeleteRepo := repository.NewSoftDeleteRepo(db)

	policy := service.NewSoftDeletePolicy(softDeleteRepo)
	reactionService := service.NewReactionService(reactionRepo, postRepo, commentRepo, userRepo)
	followService := service.NewFollowService(followRepo, userRepo)
	rankingService := service.NewRankingService(postRepo, userRepo)
	postService := service.NewPostService(postRepo, tagRepo, userRepo, commentRepo, reactionService, rankingService, policy, store)
	commentService := service.NewCommentService(commentRepo, postRepo, reactionService, policy)
	userService := service.NewUserService(userRepo, followService, reactionService, policy, sender, cfg.Site.BaseURL)

	apiPageSize := cfg.Pagination.APIPageSize
	handlers := &api.HandlersGroup{
		UserHandler:    handler.NewUserHandler(userService, followService, reactionService, rankingService, apiPageSize),
		PostHandler:    handler.NewPostHandler(postService, reactionService, rankingService, apiPageSize),
		CommentHandler: handler.NewCommentHandler(commentService, reactionService, apiPageSize),
		PageHandler:    handler.NewPageHandler(postService, userService, rankingService, cfg.Pagination.PageSize),
	}

	router := api.SetupRouter(handlers, api.RouterOptions{
		TemplatesDir: cfg.Server.TemplatesDir,
		LogIndex:     cfg.Logstash.Index,
	})

	cronMgr := cron.NewCronManager(job.NewContentStatsJob(repository.NewStatsRepo(db)))

	return &ApplicationContainer{
		Router:  router,
		DB:      db,
		CronMgr: cronMgr,
	}, nil
}
