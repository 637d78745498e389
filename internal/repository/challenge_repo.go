package repository

import (
	"context"
	"errors"
	"time"

	"reeldine/internal/model"

	"gorm.io/gorm"
)

type ChallengeRepo interface {
	ListActive(ctx context.Context, now time.Time, limit, offset int) ([]*model.Challenge, int64, error)
	GetChallenge(ctx context.Context, id uint64) (*model.Challenge, error)
	ParticipantExists(ctx context.Context, challengeID, userID uint64) (bool, error)
	CreateParticipant(ctx context.Context, p *model.ChallengeParticipant) error
}

type ChallengeRepoImpl struct {
	db *gorm.DB
}

func NewChallengeRepo(db *gorm.DB) ChallengeRepo {
	return &ChallengeRepoImpl{db: db}
}

func (s *ChallengeRepoImpl) ListActive(ctx context.Context, now time.Time, limit, offset int) ([]*model.Challenge, int64, error) {
	base := s.db.WithContext(ctx).Model(&model.Challenge{}).
		Where("is_active = ?", true).
		Where("start_date <= ? AND end_date >= ?", now, now)

	var total int64
	if err := base.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var challenges []*model.Challenge
	err := base.Session(&gorm.Session{}).
		Order("end_date ASC").
		Limit(limit).Offset(offset).
		Find(&challenges).Error
	if err != nil {
		return nil, 0, err
	}
	return challenges, total, nil
}

func (s *ChallengeRepoImpl) GetChallenge(ctx context.Context, id uint64) (*model.Challenge, error) {
	var challenge model.Challenge
	err := s.db.WithContext(ctx).First(&challenge, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &challenge, nil
}

func (s *ChallengeRepoImpl) ParticipantExists(ctx context.Context, challengeID, userID uint64) (bool, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&model.ChallengeParticipant{}).
		Where("challenge_id = ? AND user_id = ?", challengeID, userID).
		Count(&count).Error
	return count > 0, err
}

func (s *ChallengeRepoImpl) CreateParticipant(ctx context.Context, p *model.ChallengeParticipant) error {
	return s.db.WithContext(ctx).Create(p).Error
}
