package wire

import (
	"reeldine/internal/api"
	"reeldine/internal/api/config"
	"reeldine/internal/api/handler"
	"reeldine/internal/job"
	"reeldine/internal/pkg/cron"
	"reeldine/internal/repository"
	"reeldine/internal/service"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// ApplicationContainer bundles the top-level components the app runs with.
type ApplicationContainer struct {
	Router  *gin.Engine
	DB      *gorm.DB
	CronMgr *cron.Manager
}

func BuildApplication(db *gorm.DB, cfg *config.Config) (*ApplicationContainer, error) {
	userRepo := repository.NewUserRepo(db)
	partnerRepo := repository.NewPartnerRepo(db)
	foodRepo := repository.NewFoodRepo(db)
	followRepo := repository.NewFollowRepo(db)
	commentRepo := repository.NewCommentRepo(db)
	challengeRepo := repository.NewChallengeRepo(db)

	hub := service.NewRealtimeHub()
	notificationService := service.NewNotificationService(hub)

	authService := service.NewAuthService(userRepo, partnerRepo)
	searchService := service.NewSearchService(foodRepo, partnerRepo)
	foodService := service.NewFoodService(foodRepo, partnerRepo, followRepo, userRepo, notificationService)
	socialService := service.NewSocialService(userRepo, partnerRepo, followRepo, notificationService)
	commentService := service.NewCommentService(commentRepo, foodRepo, userRepo, notificationService)
	challengeService := service.NewChallengeService(challengeRepo)
	aiService := service.NewAIService(cfg.AI)

	handlers := &api.HandlersGroup{
		AuthHandler:         handler.NewAuthHandler(authService),
		SearchHandler:       handler.NewSearchHandler(searchService),
		FoodHandler:         handler.NewFoodHandler(foodService),
		SocialHandler:       handler.NewSocialHandler(socialService),
		CommentHandler:      handler.NewCommentHandler(commentService),
		NotificationHandler: handler.NewNotificationHandler(notificationService),
		ChallengeHandler:    handler.NewChallengeHandler(challengeService),
		AIHandler:           handler.NewAIHandler(aiService),
		WsHandler:           handler.NewWsHandler(hub),
	}

	router := api.SetupRouter(handlers)

	cronMgr := cron.NewCronManager(job.NewReconcileCountersJob(db))

	return &ApplicationContainer{
		Router:  router,
		DB:      db,
		CronMgr: cronMgr,
	}, nil
}
