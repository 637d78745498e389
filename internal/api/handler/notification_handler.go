package handler

import (
	"errors"
	"io"

	"reeldine/internal/api/dto"
	"reeldine/internal/api/middleware"
	"reeldine/internal/pkg/response"
	"reeldine/internal/service"

	"github.com/gin-gonic/gin"
)

type NotificationHandler struct {
	notificationSvc service.NotificationService
}

func NewNotificationHandler(notificationSvc service.NotificationService) *NotificationHandler {
	return &NotificationHandler{notificationSvc: notificationSvc}
}

func recipientOf(c *gin.Context) string {
	return service.RecipientKey(c.GetString(middleware.SubjectKindKey), subjectID(c))
}

func (s *NotificationHandler) List(c *gin.Context) {
	page, limit := pageParams(c)
	unreadOnly := c.Query("unreadOnly") == "true"
	response.Success(c, s.notificationSvc.List(recipientOf(c), page, limit, unreadOnly))
}

// MarkRead marks the listed notifications as read; an empty or absent
// id list means all.
func (s *NotificationHandler) MarkRead(c *gin.Context) {
	var req dto.MarkReadDTO
	if err := c.ShouldBind(&req); err != nil && !errors.Is(err, io.EOF) {
		response.Error(c, err)
		return
	}
	if len(req.NotificationIDs) == 0 {
		response.Success(c, map[string]int{"marked": s.notificationSvc.MarkAllRead(recipientOf(c))})
		return
	}
	marked, err := s.notificationSvc.MarkRead(recipientOf(c), req.NotificationIDs)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, map[string]int{"marked": marked})
}

func (s *NotificationHandler) MarkAllRead(c *gin.Context) {
	marked := s.notificationSvc.MarkAllRead(recipientOf(c))
	response.Success(c, map[string]int{"marked": marked})
}

func (s *NotificationHandler) Delete(c *gin.Context) {
	id := c.Param("notification_id")
	if id == "" {
		response.Error(c, service.ErrParamInvalid)
		return
	}
	if err := s.notificationSvc.Delete(recipientOf(c), id); err != nil {
		response.Error(c, err)
		return
	}
	response.SuccessMsg(c, "notification deleted", nil)
}

func (s *NotificationHandler) UnreadCount(c *gin.Context) {
	response.Success(c, dto.UnreadCountDTO{UnreadCount: s.notificationSvc.UnreadCount(recipientOf(c))})
}

func (s *NotificationHandler) Stats(c *gin.Context) {
	response.Success(c, s.notificationSvc.Stats(recipientOf(c)))
}
