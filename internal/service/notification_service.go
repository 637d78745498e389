package service

import (
	"fmt"
	"sync"
	"time"

	"reeldine/internal/api/dto"
	"reeldine/internal/model"
	"reeldine/internal/pkg/consts"

	"github.com/google/uuid"
)

// inboxCap bounds per-recipient memory; the oldest entry is evicted first.
const inboxCap = 100

const (
	NotificationNewFoodPost   = "new_food_post"
	NotificationFoodLiked     = "food_liked"
	NotificationFoodCommented = "food_commented"
	NotificationNewFollower   = "new_follower"
)

// RecipientKey namespaces user and partner IDs so they never collide in the
// inbox map or the realtime hub registry.
func RecipientKey(kind string, id uint64) string {
	return fmt.Sprintf("%s:%d", kind, id)
}

type notification struct {
	ID        string
	Type      string
	Title     string
	Message   string
	Data      map[string]interface{}
	Read      bool
	CreatedAt time.Time
}

// NotificationService keeps an in-process inbox per recipient and pushes new
// entries to live websocket connections. Inboxes do not survive a restart.
type NotificationService interface {
	List(recipient string, page, limit int, unreadOnly bool) *dto.NotificationPageDTO
	MarkRead(recipient string, ids []string) (int, error)
	MarkAllRead(recipient string) int
	Delete(recipient string, id string) error
	UnreadCount(recipient string) int
	Stats(recipient string) *dto.NotificationStatsDTO

	NotifyNewFoodPost(followerIDs []uint64, partner *model.FoodPartner, food *model.Food)
	NotifyFoodLiked(food *model.Food, liker *model.User)
	NotifyFoodCommented(food *model.Food, commenter *model.User, text string)
	NotifyNewFollower(partner *model.FoodPartner, follower *model.User)
}

type NotificationServiceImpl struct {
	mu      sync.RWMutex
	inboxes map[string][]*notification
	hub     *RealtimeHub
}

func NewNotificationService(hub *RealtimeHub) NotificationService {
	return &NotificationServiceImpl{
		inboxes: make(map[string][]*notification),
		hub:     hub,
	}
}

// deliver appends to the recipient's inbox, evicting the oldest entry past
// the cap, then pushes the entry to any live connections.
func (s *NotificationServiceImpl) deliver(recipient string, n *notification) {
	s.mu.Lock()
	inbox := append(s.inboxes[recipient], n)
	if len(inbox) > inboxCap {
		inbox = inbox[len(inbox)-inboxCap:]
	}
	s.inboxes[recipient] = inbox
	s.mu.Unlock()

	s.hub.Push(recipient, map[string]interface{}{
		"event":        "notification",
		"notification": toNotificationDTO(n),
	})
}

func newNotification(kind, title, message string, data map[string]interface{}) *notification {
	return &notification{
		ID:        uuid.NewString(),
		Type:      kind,
		Title:     title,
		Message:   message,
		Data:      data,
		CreatedAt: time.Now(),
	}
}

func toNotificationDTO(n *notification) *dto.NotificationDTO {
	return &dto.NotificationDTO{
		ID:        n.ID,
		Type:      n.Type,
		Title:     n.Title,
		Message:   n.Message,
		Data:      n.Data,
		Read:      n.Read,
		CreatedAt: n.CreatedAt,
	}
}

// List returns a newest-first page of the recipient's inbox.
func (s *NotificationServiceImpl) List(recipient string, page, limit int, unreadOnly bool) *dto.NotificationPageDTO {
	s.mu.RLock()
	defer s.mu.RUnlock()

	inbox := s.inboxes[recipient]
	unread := 0
	filtered := make([]*notification, 0, len(inbox))
	// inbox is append-ordered, so walk backwards for newest-first
	for i := len(inbox) - 1; i >= 0; i-- {
		n := inbox[i]
		if !n.Read {
			unread++
		}
		if unreadOnly && n.Read {
			continue
		}
		filtered = append(filtered, n)
	}

	total := int64(len(filtered))
	start := (page - 1) * limit
	if start > len(filtered) {
		start = len(filtered)
	}
	end := start + limit
	if end > len(filtered) {
		end = len(filtered)
	}

	items := make([]*dto.NotificationDTO, 0, end-start)
	for _, n := range filtered[start:end] {
		items = append(items, toNotificationDTO(n))
	}

	return &dto.NotificationPageDTO{
		Notifications: items,
		Pagination:    dto.NewPagination(page, limit, total),
		UnreadCount:   unread,
	}
}

// MarkRead flags the given IDs as read and reports how many changed.
func (s *NotificationServiceImpl) MarkRead(recipient string, ids []string) (int, error) {
	if len(ids) == 0 {
		return 0, ErrParamInvalid
	}
	want := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		want[id] = struct{}{}
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	marked := 0
	for _, n := range s.inboxes[recipient] {
		if _, ok := want[n.ID]; ok && !n.Read {
			n.Read = true
			marked++
		}
	}
	return marked, nil
}

func (s *NotificationServiceImpl) MarkAllRead(recipient string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	marked := 0
	for _, n := range s.inboxes[recipient] {
		if !n.Read {
			n.Read = true
			marked++
		}
	}
	return marked
}

func (s *NotificationServiceImpl) Delete(recipient string, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	inbox := s.inboxes[recipient]
	for i, n := range inbox {
		if n.ID == id {
			s.inboxes[recipient] = append(inbox[:i], inbox[i+1:]...)
			return nil
		}
	}
	return ErrNotificationNotFound
}

func (s *NotificationServiceImpl) UnreadCount(recipient string) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	count := 0
	for _, n := range s.inboxes[recipient] {
		if !n.Read {
			count++
		}
	}
	return count
}

func (s *NotificationServiceImpl) Stats(recipient string) *dto.NotificationStatsDTO {
	s.mu.RLock()
	defer s.mu.RUnlock()
	stats := &dto.NotificationStatsDTO{ByType: make(map[string]int)}
	for _, n := range s.inboxes[recipient] {
		stats.Total++
		if !n.Read {
			stats.Unread++
		}
		stats.ByType[n.Type]++
	}
	return stats
}

// NotifyNewFoodPost fans out one entry per follower of the posting partner.
func (s *NotificationServiceImpl) NotifyNewFoodPost(followerIDs []uint64, partner *model.FoodPartner, food *model.Food) {
	data := map[string]interface{}{
		"foodId":      food.ID,
		"partnerId":   partner.ID,
		"partnerName": partner.Name,
		"thumbnail":   food.Thumbnail,
	}
	title := "New post from " + partner.Name
	message := partner.Name + " posted " + food.Name
	for _, userID := range followerIDs {
		s.deliver(RecipientKey(consts.KindUser, userID),
			newNotification(NotificationNewFoodPost, title, message, data))
	}
}

func (s *NotificationServiceImpl) NotifyFoodLiked(food *model.Food, liker *model.User) {
	s.deliver(RecipientKey(consts.KindPartner, food.FoodPartnerID),
		newNotification(NotificationFoodLiked,
			"Your food was liked",
			liker.FullName+" liked "+food.Name,
			map[string]interface{}{
				"foodId": food.ID,
				"userId": liker.ID,
			}))
}

func (s *NotificationServiceImpl) NotifyFoodCommented(food *model.Food, commenter *model.User, text string) {
	s.deliver(RecipientKey(consts.KindPartner, food.FoodPartnerID),
		newNotification(NotificationFoodCommented,
			"New comment on "+food.Name,
			commenter.FullName+": "+truncateText(text, 50),
			map[string]interface{}{
				"foodId": food.ID,
				"userId": commenter.ID,
			}))
}

func (s *NotificationServiceImpl) NotifyNewFollower(partner *model.FoodPartner, follower *model.User) {
	s.deliver(RecipientKey(consts.KindPartner, partner.ID),
		newNotification(NotificationNewFollower,
			"New follower",
			follower.FullName+" started following you",
			map[string]interface{}{
				"userId": follower.ID,
			}))
}

func truncateText(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max]) + "..."
}
