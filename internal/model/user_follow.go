package model

import "time"

// UserFollow is the authoritative follow relation. CreatedAt ordering is the
// user's follow order.
type UserFollow struct {
	UserID    uint64    `gorm:"primaryKey" json:"userId"`
	PartnerID uint64    `gorm:"primaryKey;index:idx_follow_partner" json:"partnerId"`
	CreatedAt time.Time `json:"createdAt"`
}

func (UserFollow) TableName() string {
	return "user_follows"
}
