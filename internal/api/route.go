package api

import (
	"net/http"

	"reeldine/internal/api/middleware"
	"reeldine/internal/pkg/consts"
	"reeldine/internal/pkg/logger"

	"github.com/gin-gonic/gin"
)

func SetupRouter(group *HandlersGroup) *gin.Engine {
	r := gin.New()
	_ = r.SetTrustedProxies([]string{"localhost"})

	// TraceId & Logger & CORS
	r.Use(middleware.TraceMiddleware())
	r.Use(middleware.AuditMiddleware())
	r.Use(middleware.CORSMiddleware())
	logger.SetupGin(r)

	apiGroup := r.Group("/api")
	{
		apiGroup.GET("/ping", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{
				"success": true,
				"message": "pong",
			})
		})

		authGroup := apiGroup.Group("/auth")
		{
			authGroup.POST("/user/register", group.AuthHandler.RegisterUser)
			authGroup.POST("/user/login", group.AuthHandler.LoginUser)
			authGroup.POST("/partner/register", group.AuthHandler.RegisterPartner)
			authGroup.POST("/partner/login", group.AuthHandler.LoginPartner)

			signedGroup := authGroup.Group("")
			signedGroup.Use(middleware.AuthMiddleware())
			{
				signedGroup.POST("/logout", group.AuthHandler.Logout)
			}
		}

		searchGroup := apiGroup.Group("/search")
		{
			searchGroup.GET("/foods", group.SearchHandler.SearchFoods)
			searchGroup.GET("/partners", group.SearchHandler.SearchPartners)
			searchGroup.GET("/suggestions", group.SearchHandler.Suggestions)
		}

		foodGroup := apiGroup.Group("/foods")
		{
			foodGroup.GET("", group.FoodHandler.ListFoods)
			foodGroup.GET("/trending", group.FoodHandler.Trending)
			foodGroup.GET("/:food_id", group.FoodHandler.GetFood)
			foodGroup.POST("/:food_id/view", group.FoodHandler.TrackView)

			userGroup := foodGroup.Group("")
			userGroup.Use(middleware.AuthMiddleware(), middleware.RequireKind(consts.KindUser))
			{
				userGroup.POST("/:food_id/like", group.FoodHandler.ToggleLike)
				userGroup.POST("/:food_id/save", group.FoodHandler.ToggleSave)
				userGroup.GET("/saved", group.FoodHandler.ListSaved)
			}

			partnerGroup := foodGroup.Group("")
			partnerGroup.Use(middleware.AuthMiddleware(), middleware.RequireKind(consts.KindPartner))
			{
				partnerGroup.POST("", group.FoodHandler.CreateFood)
				partnerGroup.DELETE("/:food_id", group.FoodHandler.DeleteFood)
			}
		}

		commentGroup := apiGroup.Group("/comments")
		commentGroup.Use(middleware.AuthMiddleware(), middleware.RequireKind(consts.KindUser))
		{
			commentGroup.POST("", group.CommentHandler.CreateComment)
			commentGroup.GET("/:food_id", group.CommentHandler.ListComments)
			commentGroup.PUT("/:comment_id", group.CommentHandler.UpdateComment)
			commentGroup.DELETE("/:comment_id", group.CommentHandler.DeleteComment)
			commentGroup.POST("/:comment_id/like", group.CommentHandler.ToggleLike)
		}

		socialGroup := apiGroup.Group("/social")
		socialGroup.Use(middleware.AuthMiddleware())
		{
			userGroup := socialGroup.Group("")
			userGroup.Use(middleware.RequireKind(consts.KindUser))
			{
				userGroup.POST("/partners/:partner_id/follow", group.SocialHandler.Follow)
				userGroup.DELETE("/partners/:partner_id/follow", group.SocialHandler.Unfollow)
				userGroup.GET("/partners/:partner_id/follow-status", group.SocialHandler.FollowStatus)
				userGroup.PUT("/preferences", group.SocialHandler.UpdatePreferences)
			}

			// readable by any signed-in principal
			socialGroup.GET("/users/:user_id/following", group.SocialHandler.ListFollowing)
			socialGroup.GET("/users/:user_id/stats", group.SocialHandler.Stats)
			socialGroup.GET("/partners/:partner_id/followers", group.SocialHandler.ListFollowers)
		}

		notificationGroup := apiGroup.Group("/notifications")
		{
			// websocket clients send the token as a query parameter
			notificationGroup.GET("/stream", group.WsHandler.Stream)

			signedGroup := notificationGroup.Group("")
			signedGroup.Use(middleware.AuthMiddleware())
			{
				signedGroup.GET("", group.NotificationHandler.List)
				signedGroup.PUT("/read", group.NotificationHandler.MarkRead)
				signedGroup.PUT("/read-all", group.NotificationHandler.MarkAllRead)
				signedGroup.DELETE("/:notification_id", group.NotificationHandler.Delete)
				signedGroup.GET("/unread-count", group.NotificationHandler.UnreadCount)
				signedGroup.GET("/stats", group.NotificationHandler.Stats)
			}
		}

		challengeGroup := apiGroup.Group("/challenges")
		{
			challengeGroup.GET("/active", group.ChallengeHandler.ListActive)

			userGroup := challengeGroup.Group("")
			userGroup.Use(middleware.AuthMiddleware(), middleware.RequireKind(consts.KindUser))
			{
				userGroup.POST("/:challenge_id/join", group.ChallengeHandler.Join)
			}
		}

		aiGroup := apiGroup.Group("/ai")
		{
			aiGroup.GET("/status", group.AIHandler.Status)

			userGroup := aiGroup.Group("")
			userGroup.Use(middleware.AuthMiddleware(), middleware.RequireKind(consts.KindUser))
			{
				userGroup.POST("/recipes/suggestions", group.AIHandler.SuggestRecipes)
			}
		}
	}

	return r
}
