package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"reeldine/internal/api/middleware"
	"reeldine/internal/model"
	"reeldine/internal/pkg/consts"
	"reeldine/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/goccy/go-json"
)

func TestMarkReadEmptyBodyMarksAll(t *testing.T) {
	gin.SetMode(gin.TestMode)
	notifier := service.NewNotificationService(service.NewRealtimeHub())
	notifier.NotifyNewFollower(
		&model.FoodPartner{ID: 7, Name: "Trucky"},
		&model.User{ID: 1, FullName: "Ann"},
	)
	h := NewNotificationHandler(notifier)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPut, "/api/notifications/read", nil)
	c.Request.Header.Set("Content-Type", "application/json")
	c.Set(middleware.SubjectKindKey, consts.KindPartner)
	c.Set(middleware.SubjectIDKey, uint64(7))

	h.MarkRead(c)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200, body %s", w.Code, w.Body.String())
	}
	var resp struct {
		Success bool `json:"success"`
		Data    struct {
			Marked int `json:"marked"`
		} `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if !resp.Success || resp.Data.Marked != 1 {
		t.Errorf("response = %+v, want success with 1 marked", resp)
	}
	if got := notifier.UnreadCount(service.RecipientKey(consts.KindPartner, 7)); got != 0 {
		t.Errorf("UnreadCount = %d, want 0 after empty-body mark-read", got)
	}
}
