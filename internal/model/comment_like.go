package model

import (
	"time"
)

// CommentLike's composite primary key enforces at-most-one-like-per-pair at
// the storage layer; a duplicate insert maps to "already liked".
type CommentLike struct {
	UserID    uint64    `gorm:"primaryKey" json:"userId"`
	CommentID uint64    `gorm:"primaryKey;index:idx_comment_like" json:"commentId"`
	CreatedAt time.Time `json:"createdAt"`
}

func (CommentLike) TableName() string {
	return "comment_likes"
}
