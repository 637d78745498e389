package handler

import (
	log "log/slog"
	"net/http"

	"reeldine/internal/pkg/consts"
	"reeldine/internal/pkg/redis"
	"reeldine/internal/pkg/response"
	"reeldine/internal/pkg/security"
	"reeldine/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

type WsHandler struct {
	hub *service.RealtimeHub
}

func NewWsHandler(hub *service.RealtimeHub) *WsHandler {
	return &WsHandler{hub: hub}
}

// Stream upgrades to a websocket and registers the connection for realtime
// notification pushes. Browsers cannot set headers on websocket requests, so
// the token travels as a query parameter.
func (s *WsHandler) Stream(c *gin.Context) {
	token := c.Query("token")
	if token == "" {
		response.Error(c, service.UnauthorizedError)
		return
	}
	signature, err := security.ExtractSignature(token)
	if err != nil {
		response.Error(c, service.UnauthorizedError)
		return
	}
	if value, err := redis.GetValue(c.Request.Context(), consts.TokenDenyKey+signature); err != nil || value != "" {
		response.Error(c, service.UnauthorizedError)
		return
	}
	claims, err := security.ValidateToken(token)
	if err != nil {
		log.Warn("ws auth failed", "err", err)
		response.Error(c, service.UnauthorizedError)
		return
	}
	recipient := service.RecipientKey(claims.Kind, claims.SubjectID)

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Error("ws upgrade failed", "err", err)
		return
	}

	client := &service.WSClient{Conn: conn}
	s.hub.Register(recipient, client)
	log.Info("ws connected", "recipient", recipient)

	defer func() {
		s.hub.Unregister(recipient, client)
		_ = conn.Close()
		log.Info("ws disconnected", "recipient", recipient)
	}()

	// read loop only to notice client disconnects; inbound frames are ignored
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}
	}
}
