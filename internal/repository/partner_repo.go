package repository

import (
	"context"
	"errors"

	"reeldine/internal/api/dto"
	"reeldine/internal/model"

	"gorm.io/gorm"
)

type PartnerRepo interface {
	GetPartner(ctx context.Context, id uint64) (*model.FoodPartner, error)
	GetPartnerByEmail(ctx context.Context, email string) (*model.FoodPartner, error)
	CreatePartner(ctx context.Context, partner *model.FoodPartner) error
	TouchLastLogin(ctx context.Context, id uint64) error
	AdjustFollowers(ctx context.Context, id uint64, delta int) error
	AdjustTotalVideos(ctx context.Context, id uint64, delta int) error
	SearchPartners(ctx context.Context, q *dto.PartnerSearchQuery) ([]*model.FoodPartner, int64, error)
	SuggestPartners(ctx context.Context, prefix string, limit int) ([]*model.FoodPartner, error)
}

type PartnerRepoImpl struct {
	db *gorm.DB
}

func NewPartnerRepo(db *gorm.DB) PartnerRepo {
	return &PartnerRepoImpl{db: db}
}

func (s *PartnerRepoImpl) GetPartner(ctx context.Context, id uint64) (*model.FoodPartner, error) {
	var partner model.FoodPartner
	err := s.db.WithContext(ctx).First(&partner, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &partner, nil
}

func (s *PartnerRepoImpl) GetPartnerByEmail(ctx context.Context, email string) (*model.FoodPartner, error) {
	var partner model.FoodPartner
	err := s.db.WithContext(ctx).Where("email = ?", email).First(&partner).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &partner, nil
}

func (s *PartnerRepoImpl) CreatePartner(ctx context.Context, partner *model.FoodPartner) error {
	return s.db.WithContext(ctx).Create(partner).Error
}

func (s *PartnerRepoImpl) TouchLastLogin(ctx context.Context, id uint64) error {
	return s.db.WithContext(ctx).Model(&model.FoodPartner{}).
		Where("id = ?", id).
		UpdateColumn("last_login", gorm.Expr("CURRENT_TIMESTAMP")).Error
}

func (s *PartnerRepoImpl) AdjustFollowers(ctx context.Context, id uint64, delta int) error {
	return s.db.WithContext(ctx).Model(&model.FoodPartner{}).
		Where("id = ?", id).
		UpdateColumn("followers_count", gorm.Expr("followers_count + ?", delta)).Error
}

func (s *PartnerRepoImpl) AdjustTotalVideos(ctx context.Context, id uint64, delta int) error {
	return s.db.WithContext(ctx).Model(&model.FoodPartner{}).
		Where("id = ?", id).
		UpdateColumn("total_videos", gorm.Expr("total_videos + ?", delta)).Error
}

// buildPartnerFilter translates the normalized query into a WHERE chain.
// Cuisine is a serialized JSON array column, so membership is a LIKE match.
func (s *PartnerRepoImpl) buildPartnerFilter(ctx context.Context, q *dto.PartnerSearchQuery) *gorm.DB {
	tx := s.db.WithContext(ctx).Model(&model.FoodPartner{}).Where("is_active = ?", true)

	if q.Text != "" {
		like := likePattern(q.Text)
		tx = tx.Where("(name LIKE ? OR description LIKE ? OR cuisine LIKE ?)", like, like, like)
	}
	if len(q.Cuisines) > 0 {
		or := s.db.Where("cuisine LIKE ?", likePattern(q.Cuisines[0]))
		for _, c := range q.Cuisines[1:] {
			or = or.Or("cuisine LIKE ?", likePattern(c))
		}
		tx = tx.Where(or)
	}
	if q.Center != nil {
		tx = applyGeoFilter(tx, *q.Center, q.RadiusKm)
	}
	if q.MinRating != nil {
		tx = tx.Where("rating >= ?", *q.MinRating)
	}
	if q.IsVerified != nil {
		tx = tx.Where("is_verified = ?", *q.IsVerified)
	}

	return tx
}

func (s *PartnerRepoImpl) SearchPartners(ctx context.Context, q *dto.PartnerSearchQuery) ([]*model.FoodPartner, int64, error) {
	var total int64
	if err := s.buildPartnerFilter(ctx, q).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	tx := s.buildPartnerFilter(ctx, q).
		Order("rating DESC").Order("followers_count DESC")
	if q.Center != nil {
		tx = tx.Order(distanceOrderSQL(*q.Center))
	}

	var partners []*model.FoodPartner
	err := tx.Limit(q.Limit).Offset((q.Page - 1) * q.Limit).Find(&partners).Error
	if err != nil {
		return nil, 0, err
	}
	return partners, total, nil
}

func (s *PartnerRepoImpl) SuggestPartners(ctx context.Context, prefix string, limit int) ([]*model.FoodPartner, error) {
	var partners []*model.FoodPartner
	err := s.db.WithContext(ctx).
		Where("is_active = ?", true).
		Where("name LIKE ?", prefixPattern(prefix)).
		Order("followers_count DESC").
		Limit(limit).
		Find(&partners).Error
	if err != nil {
		return nil, err
	}
	return partners, nil
}
