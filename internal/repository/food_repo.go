package repository

import (
	"context"
	"errors"

	"reeldine/internal/api/dto"
	"reeldine/internal/model"

	"gorm.io/gorm"
)

type TagCount struct {
	Tag   string
	Count int64
}

type FoodRepo interface {
	CreateFood(ctx context.Context, food *model.Food, tags []*model.FoodTag) error
	GetFood(ctx context.Context, id uint64) (*model.Food, error)
	GetActiveFood(ctx context.Context, id uint64) (*model.Food, error)
	DeleteFood(ctx context.Context, food *model.Food) error
	ListFoods(ctx context.Context, limit, offset int) ([]*model.Food, int64, error)
	ListTrending(ctx context.Context, limit int) ([]*model.Food, error)

	SearchFoods(ctx context.Context, q *dto.FoodSearchQuery) ([]*model.Food, int64, error)
	SuggestFoods(ctx context.Context, prefix string, limit int) ([]*model.Food, error)
	SuggestTags(ctx context.Context, prefix string, limit int) ([]TagCount, error)

	AdjustCounter(ctx context.Context, foodID uint64, column string, delta int) error

	LikeExists(ctx context.Context, userID, foodID uint64) (bool, error)
	CreateLike(ctx context.Context, like *model.FoodLike) error
	DeleteLike(ctx context.Context, userID, foodID uint64) error

	SaveExists(ctx context.Context, userID, foodID uint64) (bool, error)
	CreateSave(ctx context.Context, save *model.FoodSave) error
	DeleteSave(ctx context.Context, userID, foodID uint64) error
	ListSaved(ctx context.Context, userID uint64, limit, offset int) ([]*model.Food, int64, error)
}

type FoodRepoImpl struct {
	db *gorm.DB
}

func NewFoodRepo(db *gorm.DB) FoodRepo {
	return &FoodRepoImpl{db: db}
}

func (s *FoodRepoImpl) CreateFood(ctx context.Context, food *model.Food, tags []*model.FoodTag) error {
	if len(tags) == 0 {
		return s.db.WithContext(ctx).Create(food).Error
	}
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(food).Error; err != nil {
			return err
		}
		for _, t := range tags {
			t.FoodID = food.ID
		}
		return tx.Create(tags).Error
	})
}

func (s *FoodRepoImpl) GetFood(ctx context.Context, id uint64) (*model.Food, error) {
	var food model.Food
	err := s.db.WithContext(ctx).Preload("Partner").Preload("Tags").First(&food, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &food, nil
}

func (s *FoodRepoImpl) GetActiveFood(ctx context.Context, id uint64) (*model.Food, error) {
	var food model.Food
	err := s.db.WithContext(ctx).Preload("Partner").Preload("Tags").
		Where("is_active = ?", true).
		First(&food, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &food, nil
}

// DeleteFood permanently removes a food and its dependent rows.
func (s *FoodRepoImpl) DeleteFood(ctx context.Context, food *model.Food) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&model.FoodTag{}, "food_id = ?", food.ID).Error; err != nil {
			return err
		}
		if err := tx.Delete(&model.FoodLike{}, "food_id = ?", food.ID).Error; err != nil {
			return err
		}
		if err := tx.Delete(&model.FoodSave{}, "food_id = ?", food.ID).Error; err != nil {
			return err
		}
		if err := tx.Delete(&model.Comment{}, "food_id = ?", food.ID).Error; err != nil {
			return err
		}
		return tx.Delete(&model.Food{}, food.ID).Error
	})
}

func (s *FoodRepoImpl) ListFoods(ctx context.Context, limit, offset int) ([]*model.Food, int64, error) {
	base := s.db.WithContext(ctx).Model(&model.Food{}).Where("is_active = ?", true)

	var total int64
	if err := base.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var foods []*model.Food
	err := base.Session(&gorm.Session{}).
		Preload("Partner").Preload("Tags").
		Order("created_at DESC").
		Limit(limit).Offset(offset).
		Find(&foods).Error
	if err != nil {
		return nil, 0, err
	}
	return foods, total, nil
}

func (s *FoodRepoImpl) ListTrending(ctx context.Context, limit int) ([]*model.Food, error) {
	var foods []*model.Food
	err := s.db.WithContext(ctx).
		Preload("Partner").Preload("Tags").
		Where("is_active = ?", true).
		Order(engagementExpr + " DESC").Order("created_at DESC").
		Limit(limit).
		Find(&foods).Error
	if err != nil {
		return nil, err
	}
	return foods, nil
}

// buildFoodFilter translates the normalized query into a WHERE clause chain.
// Only active documents are ever eligible.
func (s *FoodRepoImpl) buildFoodFilter(ctx context.Context, q *dto.FoodSearchQuery) *gorm.DB {
	tx := s.db.WithContext(ctx).Model(&model.Food{}).Where("is_active = ?", true)

	if q.Text != "" {
		like := likePattern(q.Text)
		tagSub := s.db.Model(&model.FoodTag{}).Select("food_id").Where("tag LIKE ?", like)
		tx = tx.Where("(name LIKE ? OR description LIKE ? OR id IN (?))", like, like, tagSub)
	}
	if len(q.Cuisines) > 0 {
		tx = tx.Where("cuisine IN ?", q.Cuisines)
	}
	if q.Center != nil {
		tx = applyGeoFilter(tx, *q.Center, q.RadiusKm)
	}
	if q.PriceMin != nil {
		tx = tx.Where("price >= ?", *q.PriceMin)
	}
	if q.PriceMax != nil {
		tx = tx.Where("price <= ?", *q.PriceMax)
	}
	if q.MinRating != nil {
		tx = tx.Where("average_rating >= ?", *q.MinRating)
	}
	if len(q.Ingredients) > 0 {
		or := s.db.Where("ingredients LIKE ?", likePattern(q.Ingredients[0]))
		for _, ing := range q.Ingredients[1:] {
			or = or.Or("ingredients LIKE ?", likePattern(ing))
		}
		tx = tx.Where(or)
	}
	if len(q.Dietary) > 0 {
		or := s.db.Where("dietary_info LIKE ?", likePattern(q.Dietary[0]))
		for _, d := range q.Dietary[1:] {
			or = or.Or("dietary_info LIKE ?", likePattern(d))
		}
		tx = tx.Where(or)
	}

	return tx
}

func (s *FoodRepoImpl) SearchFoods(ctx context.Context, q *dto.FoodSearchQuery) ([]*model.Food, int64, error) {
	var total int64
	if err := s.buildFoodFilter(ctx, q).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	tx := s.buildFoodFilter(ctx, q)
	tx = resolveFoodOrder(tx, q)
	if q.Center != nil && q.SortBy != "distance" {
		// nearest-first tie-break whenever a geo center is in play
		tx = tx.Order(distanceOrderSQL(*q.Center))
	}

	var foods []*model.Food
	err := tx.Preload("Partner").Preload("Tags").
		Limit(q.Limit).Offset((q.Page - 1) * q.Limit).
		Find(&foods).Error
	if err != nil {
		return nil, 0, err
	}
	return foods, total, nil
}

func (s *FoodRepoImpl) SuggestFoods(ctx context.Context, prefix string, limit int) ([]*model.Food, error) {
	pat := prefixPattern(prefix)
	tagSub := s.db.Model(&model.FoodTag{}).Select("food_id").Where("tag LIKE ?", pat)

	var foods []*model.Food
	err := s.db.WithContext(ctx).
		Preload("Tags").
		Where("is_active = ?", true).
		Where("(name LIKE ? OR id IN (?))", pat, tagSub).
		Limit(limit).
		Find(&foods).Error
	if err != nil {
		return nil, err
	}
	return foods, nil
}

// SuggestTags returns the most frequent tags of active foods matching prefix.
func (s *FoodRepoImpl) SuggestTags(ctx context.Context, prefix string, limit int) ([]TagCount, error) {
	var rows []TagCount
	err := s.db.WithContext(ctx).
		Model(&model.FoodTag{}).
		Select("tag, COUNT(*) AS count").
		Joins("JOIN foods ON foods.id = food_tags.food_id AND foods.is_active = ?", true).
		Where("tag LIKE ?", prefixPattern(prefix)).
		Group("tag").
		Order("count DESC").
		Limit(limit).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// AdjustCounter applies an atomic field-level increment; column must be one
// of the counter columns on foods.
func (s *FoodRepoImpl) AdjustCounter(ctx context.Context, foodID uint64, column string, delta int) error {
	return s.db.WithContext(ctx).
		Model(&model.Food{}).
		Where("id = ?", foodID).
		UpdateColumn(column, gorm.Expr(column+" + ?", delta)).Error
}

func (s *FoodRepoImpl) LikeExists(ctx context.Context, userID, foodID uint64) (bool, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&model.FoodLike{}).
		Where("user_id = ? AND food_id = ?", userID, foodID).
		Count(&count).Error
	return count > 0, err
}

func (s *FoodRepoImpl) CreateLike(ctx context.Context, like *model.FoodLike) error {
	return s.db.WithContext(ctx).Create(like).Error
}

func (s *FoodRepoImpl) DeleteLike(ctx context.Context, userID, foodID uint64) error {
	return s.db.WithContext(ctx).
		Delete(&model.FoodLike{}, "user_id = ? AND food_id = ?", userID, foodID).Error
}

func (s *FoodRepoImpl) SaveExists(ctx context.Context, userID, foodID uint64) (bool, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&model.FoodSave{}).
		Where("user_id = ? AND food_id = ?", userID, foodID).
		Count(&count).Error
	return count > 0, err
}

func (s *FoodRepoImpl) CreateSave(ctx context.Context, save *model.FoodSave) error {
	return s.db.WithContext(ctx).Create(save).Error
}

func (s *FoodRepoImpl) DeleteSave(ctx context.Context, userID, foodID uint64) error {
	return s.db.WithContext(ctx).
		Delete(&model.FoodSave{}, "user_id = ? AND food_id = ?", userID, foodID).Error
}

func (s *FoodRepoImpl) ListSaved(ctx context.Context, userID uint64, limit, offset int) ([]*model.Food, int64, error) {
	base := s.db.WithContext(ctx).Model(&model.Food{}).
		Joins("JOIN food_saves ON food_saves.food_id = foods.id AND food_saves.user_id = ?", userID).
		Where("foods.is_active = ?", true)

	var total int64
	if err := base.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var foods []*model.Food
	err := base.Session(&gorm.Session{}).
		Preload("Partner").Preload("Tags").
		Order("food_saves.created_at DESC").
		Limit(limit).Offset(offset).
		Find(&foods).Error
	if err != nil {
		return nil, 0, err
	}
	return foods, total, nil
}
