package repository

import (
	"context"

	"reeldine/internal/model"

	"gorm.io/gorm"
)

type FollowRepo interface {
	FollowExists(ctx context.Context, userID, partnerID uint64) (bool, error)
	CreateFollow(ctx context.Context, follow *model.UserFollow) error
	DeleteFollow(ctx context.Context, userID, partnerID uint64) error
	CountFollowing(ctx context.Context, userID uint64) (int64, error)
	CountFollowers(ctx context.Context, partnerID uint64) (int64, error)
	ListFollowedPartners(ctx context.Context, userID uint64, limit, offset int) ([]*model.FoodPartner, int64, error)
	ListFollowers(ctx context.Context, partnerID uint64, limit, offset int) ([]*model.User, int64, error)
	ListFollowerIDs(ctx context.Context, partnerID uint64) ([]uint64, error)
	AggregateFollowed(ctx context.Context, userID uint64) (*FollowedAggregate, error)
}

// FollowedAggregate summarizes everything a user follows in one query.
type FollowedAggregate struct {
	Count       int64
	TotalVideos int64
	AvgRating   float64
}

type FollowRepoImpl struct {
	db *gorm.DB
}

func NewFollowRepo(db *gorm.DB) FollowRepo {
	return &FollowRepoImpl{db: db}
}

func (s *FollowRepoImpl) FollowExists(ctx context.Context, userID, partnerID uint64) (bool, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&model.UserFollow{}).
		Where("user_id = ? AND partner_id = ?", userID, partnerID).
		Count(&count).Error
	return count > 0, err
}

func (s *FollowRepoImpl) CreateFollow(ctx context.Context, follow *model.UserFollow) error {
	return s.db.WithContext(ctx).Create(follow).Error
}

func (s *FollowRepoImpl) DeleteFollow(ctx context.Context, userID, partnerID uint64) error {
	return s.db.WithContext(ctx).
		Delete(&model.UserFollow{}, "user_id = ? AND partner_id = ?", userID, partnerID).Error
}

func (s *FollowRepoImpl) CountFollowing(ctx context.Context, userID uint64) (int64, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&model.UserFollow{}).
		Where("user_id = ?", userID).
		Count(&count).Error
	return count, err
}

func (s *FollowRepoImpl) CountFollowers(ctx context.Context, partnerID uint64) (int64, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&model.UserFollow{}).
		Where("partner_id = ?", partnerID).
		Count(&count).Error
	return count, err
}

// ListFollowedPartners returns partners in the user's follow order.
func (s *FollowRepoImpl) ListFollowedPartners(ctx context.Context, userID uint64, limit, offset int) ([]*model.FoodPartner, int64, error) {
	base := s.db.WithContext(ctx).Model(&model.FoodPartner{}).
		Joins("JOIN user_follows ON user_follows.partner_id = food_partners.id AND user_follows.user_id = ?", userID)

	var total int64
	if err := base.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var partners []*model.FoodPartner
	err := base.Session(&gorm.Session{}).
		Order("user_follows.created_at ASC").
		Limit(limit).Offset(offset).
		Find(&partners).Error
	if err != nil {
		return nil, 0, err
	}
	return partners, total, nil
}

func (s *FollowRepoImpl) ListFollowers(ctx context.Context, partnerID uint64, limit, offset int) ([]*model.User, int64, error) {
	base := s.db.WithContext(ctx).Model(&model.User{}).
		Joins("JOIN user_follows ON user_follows.user_id = users.id AND user_follows.partner_id = ?", partnerID).
		Where("users.is_active = ?", true)

	var total int64
	if err := base.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var users []*model.User
	err := base.Session(&gorm.Session{}).
		Order("user_follows.created_at DESC").
		Limit(limit).Offset(offset).
		Find(&users).Error
	if err != nil {
		return nil, 0, err
	}
	return users, total, nil
}

func (s *FollowRepoImpl) AggregateFollowed(ctx context.Context, userID uint64) (*FollowedAggregate, error) {
	var agg FollowedAggregate
	err := s.db.WithContext(ctx).Model(&model.FoodPartner{}).
		Joins("JOIN user_follows ON user_follows.partner_id = food_partners.id AND user_follows.user_id = ?", userID).
		Select("COUNT(*) AS count, COALESCE(SUM(total_videos), 0) AS total_videos, COALESCE(AVG(rating), 0) AS avg_rating").
		Scan(&agg).Error
	if err != nil {
		return nil, err
	}
	return &agg, nil
}

// ListFollowerIDs feeds notification fanout on new posts. Deactivated
// accounts are skipped.
func (s *FollowRepoImpl) ListFollowerIDs(ctx context.Context, partnerID uint64) ([]uint64, error) {
	var ids []uint64
	err := s.db.WithContext(ctx).Model(&model.UserFollow{}).
		Joins("JOIN users ON users.id = user_follows.user_id AND users.is_active = ?", true).
		Where("user_follows.partner_id = ?", partnerID).
		Order("user_follows.created_at ASC").
		Pluck("user_follows.user_id", &ids).Error
	return ids, err
}
