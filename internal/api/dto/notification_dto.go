package dto

import "time"

type NotificationDTO struct {
	ID        string                 `json:"id"`
	Type      string                 `json:"type"`
	Title     string                 `json:"title"`
	Message   string                 `json:"message"`
	Data      map[string]interface{} `json:"data,omitempty"`
	Read      bool                   `json:"read"`
	CreatedAt time.Time              `json:"createdAt"`
}

type NotificationPageDTO struct {
	Notifications []*NotificationDTO `json:"notifications"`
	Pagination    Pagination         `json:"pagination"`
	UnreadCount   int                `json:"unreadCount"`
}

type MarkReadDTO struct {
	NotificationIDs []string `json:"notificationIds"`
}

type UnreadCountDTO struct {
	UnreadCount int `json:"unreadCount"`
}

type NotificationStatsDTO struct {
	Total  int            `json:"total"`
	Unread int            `json:"unread"`
	ByType map[string]int `json:"byType"`
}
