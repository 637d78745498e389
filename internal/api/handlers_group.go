package api

import "reeldine/internal/api/handler"

// HandlersGroup bundles every initialized handler instance.
type HandlersGroup struct {
	AuthHandler         *handler.AuthHandler
	SearchHandler       *handler.SearchHandler
	FoodHandler         *handler.FoodHandler
	SocialHandler       *handler.SocialHandler
	CommentHandler      *handler.CommentHandler
	NotificationHandler *handler.NotificationHandler
	ChallengeHandler    *handler.ChallengeHandler
	AIHandler           *handler.AIHandler
	WsHandler           *handler.WsHandler
}
