package repository

import (
	"context"
	"errors"

	"reeldine/internal/model"

	"gorm.io/gorm"
)

type CommentRepo interface {
	CreateComment(ctx context.Context, comment *model.Comment) error
	GetComment(ctx context.Context, id uint64) (*model.Comment, error)
	UpdateText(ctx context.Context, id uint64, text string) error
	DeleteComment(ctx context.Context, id uint64) error
	ListByFood(ctx context.Context, foodID uint64, limit, offset int) ([]*model.Comment, int64, error)

	CommentLikeExists(ctx context.Context, userID, commentID uint64) (bool, error)
	CreateCommentLike(ctx context.Context, like *model.CommentLike) error
	DeleteCommentLike(ctx context.Context, userID, commentID uint64) error
	AdjustLikeCount(ctx context.Context, commentID uint64, delta int) error
}

type CommentRepoImpl struct {
	db *gorm.DB
}

func NewCommentRepo(db *gorm.DB) CommentRepo {
	return &CommentRepoImpl{db: db}
}

func (s *CommentRepoImpl) CreateComment(ctx context.Context, comment *model.Comment) error {
	return s.db.WithContext(ctx).Create(comment).Error
}

func (s *CommentRepoImpl) GetComment(ctx context.Context, id uint64) (*model.Comment, error) {
	var comment model.Comment
	err := s.db.WithContext(ctx).Preload("User").First(&comment, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &comment, nil
}

func (s *CommentRepoImpl) UpdateText(ctx context.Context, id uint64, text string) error {
	return s.db.WithContext(ctx).Model(&model.Comment{}).
		Where("id = ?", id).
		Update("text", text).Error
}

func (s *CommentRepoImpl) DeleteComment(ctx context.Context, id uint64) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&model.CommentLike{}, "comment_id = ?", id).Error; err != nil {
			return err
		}
		return tx.Delete(&model.Comment{}, id).Error
	})
}

func (s *CommentRepoImpl) ListByFood(ctx context.Context, foodID uint64, limit, offset int) ([]*model.Comment, int64, error) {
	base := s.db.WithContext(ctx).Model(&model.Comment{}).Where("food_id = ?", foodID)

	var total int64
	if err := base.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var comments []*model.Comment
	err := base.Session(&gorm.Session{}).
		Preload("User").
		Order("created_at DESC").
		Limit(limit).Offset(offset).
		Find(&comments).Error
	if err != nil {
		return nil, 0, err
	}
	return comments, total, nil
}

func (s *CommentRepoImpl) CommentLikeExists(ctx context.Context, userID, commentID uint64) (bool, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&model.CommentLike{}).
		Where("user_id = ? AND comment_id = ?", userID, commentID).
		Count(&count).Error
	return count > 0, err
}

func (s *CommentRepoImpl) CreateCommentLike(ctx context.Context, like *model.CommentLike) error {
	return s.db.WithContext(ctx).Create(like).Error
}

func (s *CommentRepoImpl) DeleteCommentLike(ctx context.Context, userID, commentID uint64) error {
	return s.db.WithContext(ctx).
		Delete(&model.CommentLike{}, "user_id = ? AND comment_id = ?", userID, commentID).Error
}

func (s *CommentRepoImpl) AdjustLikeCount(ctx context.Context, commentID uint64, delta int) error {
	return s.db.WithContext(ctx).Model(&model.Comment{}).
		Where("id = ?", commentID).
		UpdateColumn("like_count", gorm.Expr("like_count + ?", delta)).Error
}
