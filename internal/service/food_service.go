package service

import (
	"context"
	"log/slog"
	"strings"

	"reeldine/internal/api/dto"
	"reeldine/internal/model"
	"reeldine/internal/repository"
)

type FoodService interface {
	CreateFood(ctx context.Context, partnerID uint64, req *dto.FoodCreateDTO) (*dto.FoodDTO, error)
	GetFood(ctx context.Context, id uint64) (*dto.FoodDTO, error)
	DeleteFood(ctx context.Context, partnerID, foodID uint64) error
	ListFoods(ctx context.Context, page, limit int) (*dto.FoodPageDTO, error)
	Trending(ctx context.Context, limit int) ([]*dto.FoodDTO, error)
	TrackView(ctx context.Context, foodID uint64) error
	ToggleLike(ctx context.Context, userID, foodID uint64) (*dto.LikeResultDTO, error)
	ToggleSave(ctx context.Context, userID, foodID uint64) (*dto.SaveResultDTO, error)
	ListSaved(ctx context.Context, userID uint64, page, limit int) (*dto.FoodPageDTO, error)
}

type FoodServiceImpl struct {
	foodRepo    repository.FoodRepo
	partnerRepo repository.PartnerRepo
	followRepo  repository.FollowRepo
	userRepo    repository.UserRepo
	notifier    NotificationService
}

func NewFoodService(
	foodRepo repository.FoodRepo,
	partnerRepo repository.PartnerRepo,
	followRepo repository.FollowRepo,
	userRepo repository.UserRepo,
	notifier NotificationService,
) FoodService {
	return &FoodServiceImpl{
		foodRepo:    foodRepo,
		partnerRepo: partnerRepo,
		followRepo:  followRepo,
		userRepo:    userRepo,
		notifier:    notifier,
	}
}

func (s *FoodServiceImpl) CreateFood(ctx context.Context, partnerID uint64, req *dto.FoodCreateDTO) (*dto.FoodDTO, error) {
	partner, err := s.partnerRepo.GetPartner(ctx, partnerID)
	if err != nil {
		slog.ErrorContext(ctx, "get partner", "error", err)
		return nil, UnExpectedError
	}
	if partner == nil || !partner.IsActive {
		return nil, ErrPartnerNotFound
	}

	lng, lat := req.Lng, req.Lat
	if lng == 0 && lat == 0 {
		// fall back to the partner's own location
		lng, lat = partner.LocationLng, partner.LocationLat
	}

	food := &model.Food{
		Name:            req.Name,
		Video:           req.Video,
		Thumbnail:       req.Thumbnail,
		Description:     req.Description,
		Ingredients:     req.Ingredients,
		Cuisine:         req.Cuisine,
		DietaryInfo:     req.DietaryInfo,
		Difficulty:      req.Difficulty,
		CookingTime:     req.CookingTime,
		Servings:        req.Servings,
		NutritionalInfo: req.NutritionalInfo,
		Price:           req.Price,
		FoodPartnerID:   partnerID,
		LocationLng:     lng,
		LocationLat:     lat,
		IsActive:        true,
	}
	tags := normalizeTags(req.Tags)

	if err = s.foodRepo.CreateFood(ctx, food, tags); err != nil {
		slog.ErrorContext(ctx, "create food", "error", err)
		return nil, UnExpectedError
	}
	if err = s.partnerRepo.AdjustTotalVideos(ctx, partnerID, 1); err != nil {
		slog.WarnContext(ctx, "adjust total videos", "partner_id", partnerID, "error", err)
	}

	// fan out to followers off the request path
	go func() {
		ctx := context.Background()
		followerIDs, err := s.followRepo.ListFollowerIDs(ctx, partnerID)
		if err != nil {
			slog.Warn("list follower ids for fanout", "partner_id", partnerID, "error", err)
			return
		}
		s.notifier.NotifyNewFoodPost(followerIDs, partner, food)
	}()

	food.Partner = *partner
	food.Tags = dereferenceTags(tags)
	return toFoodDTO(food, nil), nil
}

func normalizeTags(raw []string) []*model.FoodTag {
	seen := make(map[string]struct{}, len(raw))
	tags := make([]*model.FoodTag, 0, len(raw))
	for _, t := range raw {
		t = strings.ToLower(strings.TrimSpace(t))
		if t == "" {
			continue
		}
		if _, dup := seen[t]; dup {
			continue
		}
		seen[t] = struct{}{}
		tags = append(tags, &model.FoodTag{Tag: t})
	}
	return tags
}

func dereferenceTags(tags []*model.FoodTag) []model.FoodTag {
	out := make([]model.FoodTag, 0, len(tags))
	for _, t := range tags {
		out = append(out, *t)
	}
	return out
}

func (s *FoodServiceImpl) GetFood(ctx context.Context, id uint64) (*dto.FoodDTO, error) {
	food, err := s.foodRepo.GetActiveFood(ctx, id)
	if err != nil {
		slog.ErrorContext(ctx, "get food", "error", err)
		return nil, UnExpectedError
	}
	if food == nil {
		return nil, ErrFoodNotFound
	}
	return toFoodDTO(food, nil), nil
}

func (s *FoodServiceImpl) DeleteFood(ctx context.Context, partnerID, foodID uint64) error {
	food, err := s.foodRepo.GetFood(ctx, foodID)
	if err != nil {
		slog.ErrorContext(ctx, "get food", "error", err)
		return UnExpectedError
	}
	if food == nil {
		return ErrFoodNotFound
	}
	if food.FoodPartnerID != partnerID {
		return UnauthorizedError
	}

	if err = s.foodRepo.DeleteFood(ctx, food); err != nil {
		slog.ErrorContext(ctx, "delete food", "error", err)
		return UnExpectedError
	}
	if err = s.partnerRepo.AdjustTotalVideos(ctx, partnerID, -1); err != nil {
		slog.WarnContext(ctx, "adjust total videos", "partner_id", partnerID, "error", err)
	}
	return nil
}

func (s *FoodServiceImpl) ListFoods(ctx context.Context, page, limit int) (*dto.FoodPageDTO, error) {
	foods, total, err := s.foodRepo.ListFoods(ctx, limit, (page-1)*limit)
	if err != nil {
		slog.ErrorContext(ctx, "list foods", "error", err)
		return nil, UnExpectedError
	}
	return &dto.FoodPageDTO{
		Foods:      toFoodDTOs(foods, nil),
		Pagination: dto.NewPagination(page, limit, total),
	}, nil
}

func (s *FoodServiceImpl) Trending(ctx context.Context, limit int) ([]*dto.FoodDTO, error) {
	foods, err := s.foodRepo.ListTrending(ctx, limit)
	if err != nil {
		slog.ErrorContext(ctx, "list trending", "error", err)
		return nil, UnExpectedError
	}
	return toFoodDTOs(foods, nil), nil
}

func (s *FoodServiceImpl) TrackView(ctx context.Context, foodID uint64) error {
	food, err := s.foodRepo.GetActiveFood(ctx, foodID)
	if err != nil {
		slog.ErrorContext(ctx, "get food", "error", err)
		return UnExpectedError
	}
	if food == nil {
		return ErrFoodNotFound
	}
	if err = s.foodRepo.AdjustCounter(ctx, foodID, "view_count", 1); err != nil {
		slog.ErrorContext(ctx, "track view", "error", err)
		return UnExpectedError
	}
	return nil
}

// ToggleLike flips the user's like on a food and keeps the denormalized
// counter in step atomically.
func (s *FoodServiceImpl) ToggleLike(ctx context.Context, userID, foodID uint64) (*dto.LikeResultDTO, error) {
	food, err := s.foodRepo.GetActiveFood(ctx, foodID)
	if err != nil {
		slog.ErrorContext(ctx, "get food", "error", err)
		return nil, UnExpectedError
	}
	if food == nil {
		return nil, ErrFoodNotFound
	}

	exists, err := s.foodRepo.LikeExists(ctx, userID, foodID)
	if err != nil {
		slog.ErrorContext(ctx, "check like", "error", err)
		return nil, UnExpectedError
	}

	if exists {
		if err = s.foodRepo.DeleteLike(ctx, userID, foodID); err != nil {
			slog.ErrorContext(ctx, "delete like", "error", err)
			return nil, UnExpectedError
		}
		if err = s.foodRepo.AdjustCounter(ctx, foodID, "like_count", -1); err != nil {
			slog.WarnContext(ctx, "adjust like count", "food_id", foodID, "error", err)
		}
		return &dto.LikeResultDTO{Liked: false, LikeCount: food.LikeCount - 1}, nil
	}

	if err = s.foodRepo.CreateLike(ctx, &model.FoodLike{UserID: userID, FoodID: foodID}); err != nil {
		if isDuplicateEntry(err) {
			return &dto.LikeResultDTO{Liked: true, LikeCount: food.LikeCount}, nil
		}
		slog.ErrorContext(ctx, "create like", "error", err)
		return nil, UnExpectedError
	}
	if err = s.foodRepo.AdjustCounter(ctx, foodID, "like_count", 1); err != nil {
		slog.WarnContext(ctx, "adjust like count", "food_id", foodID, "error", err)
	}

	if user, err := s.userRepo.GetUser(ctx, userID); err == nil && user != nil {
		s.notifier.NotifyFoodLiked(food, user)
	}
	return &dto.LikeResultDTO{Liked: true, LikeCount: food.LikeCount + 1}, nil
}

func (s *FoodServiceImpl) ToggleSave(ctx context.Context, userID, foodID uint64) (*dto.SaveResultDTO, error) {
	food, err := s.foodRepo.GetActiveFood(ctx, foodID)
	if err != nil {
		slog.ErrorContext(ctx, "get food", "error", err)
		return nil, UnExpectedError
	}
	if food == nil {
		return nil, ErrFoodNotFound
	}

	exists, err := s.foodRepo.SaveExists(ctx, userID, foodID)
	if err != nil {
		slog.ErrorContext(ctx, "check save", "error", err)
		return nil, UnExpectedError
	}

	if exists {
		if err = s.foodRepo.DeleteSave(ctx, userID, foodID); err != nil {
			slog.ErrorContext(ctx, "delete save", "error", err)
			return nil, UnExpectedError
		}
		if err = s.foodRepo.AdjustCounter(ctx, foodID, "saves_count", -1); err != nil {
			slog.WarnContext(ctx, "adjust saves count", "food_id", foodID, "error", err)
		}
		return &dto.SaveResultDTO{Saved: false, SavesCount: food.SavesCount - 1}, nil
	}

	if err = s.foodRepo.CreateSave(ctx, &model.FoodSave{UserID: userID, FoodID: foodID}); err != nil {
		if isDuplicateEntry(err) {
			return &dto.SaveResultDTO{Saved: true, SavesCount: food.SavesCount}, nil
		}
		slog.ErrorContext(ctx, "create save", "error", err)
		return nil, UnExpectedError
	}
	if err = s.foodRepo.AdjustCounter(ctx, foodID, "saves_count", 1); err != nil {
		slog.WarnContext(ctx, "adjust saves count", "food_id", foodID, "error", err)
	}
	return &dto.SaveResultDTO{Saved: true, SavesCount: food.SavesCount + 1}, nil
}

func (s *FoodServiceImpl) ListSaved(ctx context.Context, userID uint64, page, limit int) (*dto.FoodPageDTO, error) {
	foods, total, err := s.foodRepo.ListSaved(ctx, userID, limit, (page-1)*limit)
	if err != nil {
		slog.ErrorContext(ctx, "list saved", "error", err)
		return nil, UnExpectedError
	}
	return &dto.FoodPageDTO{
		Foods:      toFoodDTOs(foods, nil),
		Pagination: dto.NewPagination(page, limit, total),
	}, nil
}
