package service

import (
	"context"
	"log/slog"
	"math"
	"strconv"
	"time"

	"reeldine/internal/api/dto"
	"reeldine/internal/model"
	"reeldine/internal/pkg/consts"
	"reeldine/internal/pkg/redis"
	"reeldine/internal/repository"
)

type SocialService interface {
	Follow(ctx context.Context, userID, partnerID uint64) (*dto.FollowResultDTO, error)
	Unfollow(ctx context.Context, userID, partnerID uint64) (*dto.FollowResultDTO, error)
	FollowStatus(ctx context.Context, userID, partnerID uint64) (*dto.FollowStatusDTO, error)
	ListFollowing(ctx context.Context, userID uint64, page, limit int) (*dto.FollowingPageDTO, error)
	ListFollowers(ctx context.Context, partnerID uint64, page, limit int) (*dto.FollowersPageDTO, error)
	SocialStats(ctx context.Context, userID uint64) (*dto.SocialStatsDTO, error)
	UpdatePreferences(ctx context.Context, userID uint64, req *dto.PreferencesUpdateDTO) (*model.Preferences, error)
}

type SocialServiceImpl struct {
	userRepo    repository.UserRepo
	partnerRepo repository.PartnerRepo
	followRepo  repository.FollowRepo
	notifier    NotificationService
}

func NewSocialService(
	userRepo repository.UserRepo,
	partnerRepo repository.PartnerRepo,
	followRepo repository.FollowRepo,
	notifier NotificationService,
) SocialService {
	return &SocialServiceImpl{
		userRepo:    userRepo,
		partnerRepo: partnerRepo,
		followRepo:  followRepo,
		notifier:    notifier,
	}
}

// followingCount serves the user's following count cache-aside.
func (s *SocialServiceImpl) followingCount(ctx context.Context, userID uint64) (int64, error) {
	key := consts.UserFollowingKey + strconv.FormatUint(userID, 10)
	if raw, err := redis.GetValue(ctx, key); err == nil && raw != "" {
		if count, err := strconv.ParseInt(raw, 10, 64); err == nil {
			return count, nil
		}
	}
	count, err := s.followRepo.CountFollowing(ctx, userID)
	if err != nil {
		return 0, err
	}
	if err = redis.SetWithExpiration(ctx, key, strconv.FormatInt(count, 10), time.Minute); err != nil {
		slog.WarnContext(ctx, "cache following count", "error", err)
	}
	return count, nil
}

func (s *SocialServiceImpl) invalidateFollowingCount(ctx context.Context, userID uint64) {
	key := consts.UserFollowingKey + strconv.FormatUint(userID, 10)
	if err := redis.DeleteKey(ctx, key); err != nil {
		slog.WarnContext(ctx, "invalidate following count", "error", err)
	}
}

func (s *SocialServiceImpl) Follow(ctx context.Context, userID, partnerID uint64) (*dto.FollowResultDTO, error) {
	partner, err := s.partnerRepo.GetPartner(ctx, partnerID)
	if err != nil {
		slog.ErrorContext(ctx, "get partner", "error", err)
		return nil, UnExpectedError
	}
	if partner == nil || !partner.IsActive {
		return nil, ErrPartnerNotFound
	}

	exists, err := s.followRepo.FollowExists(ctx, userID, partnerID)
	if err != nil {
		slog.ErrorContext(ctx, "check follow", "error", err)
		return nil, UnExpectedError
	}
	if exists {
		return nil, ErrAlreadyFollowing
	}

	if err = s.followRepo.CreateFollow(ctx, &model.UserFollow{UserID: userID, PartnerID: partnerID}); err != nil {
		if isDuplicateEntry(err) {
			return nil, ErrAlreadyFollowing
		}
		slog.ErrorContext(ctx, "create follow", "error", err)
		return nil, UnExpectedError
	}
	if err = s.partnerRepo.AdjustFollowers(ctx, partnerID, 1); err != nil {
		slog.WarnContext(ctx, "adjust followers count", "partner_id", partnerID, "error", err)
	}
	s.invalidateFollowingCount(ctx, userID)

	if user, err := s.userRepo.GetUser(ctx, userID); err == nil && user != nil {
		s.notifier.NotifyNewFollower(partner, user)
	}

	count, err := s.followingCount(ctx, userID)
	if err != nil {
		slog.ErrorContext(ctx, "count following", "error", err)
		return nil, UnExpectedError
	}
	return &dto.FollowResultDTO{FollowingCount: count}, nil
}

func (s *SocialServiceImpl) Unfollow(ctx context.Context, userID, partnerID uint64) (*dto.FollowResultDTO, error) {
	partner, err := s.partnerRepo.GetPartner(ctx, partnerID)
	if err != nil {
		slog.ErrorContext(ctx, "get partner", "error", err)
		return nil, UnExpectedError
	}
	if partner == nil {
		return nil, ErrPartnerNotFound
	}

	exists, err := s.followRepo.FollowExists(ctx, userID, partnerID)
	if err != nil {
		slog.ErrorContext(ctx, "check follow", "error", err)
		return nil, UnExpectedError
	}
	if !exists {
		return nil, ErrNotFollowing
	}

	if err = s.followRepo.DeleteFollow(ctx, userID, partnerID); err != nil {
		slog.ErrorContext(ctx, "delete follow", "error", err)
		return nil, UnExpectedError
	}
	if err = s.partnerRepo.AdjustFollowers(ctx, partnerID, -1); err != nil {
		slog.WarnContext(ctx, "adjust followers count", "partner_id", partnerID, "error", err)
	}
	s.invalidateFollowingCount(ctx, userID)

	count, err := s.followingCount(ctx, userID)
	if err != nil {
		slog.ErrorContext(ctx, "count following", "error", err)
		return nil, UnExpectedError
	}
	return &dto.FollowResultDTO{FollowingCount: count}, nil
}

func (s *SocialServiceImpl) FollowStatus(ctx context.Context, userID, partnerID uint64) (*dto.FollowStatusDTO, error) {
	exists, err := s.followRepo.FollowExists(ctx, userID, partnerID)
	if err != nil {
		slog.ErrorContext(ctx, "check follow", "error", err)
		return nil, UnExpectedError
	}
	count, err := s.followingCount(ctx, userID)
	if err != nil {
		slog.ErrorContext(ctx, "count following", "error", err)
		return nil, UnExpectedError
	}
	return &dto.FollowStatusDTO{IsFollowing: exists, FollowingCount: count}, nil
}

// ListFollowing returns followed partners in the order the user followed them.
func (s *SocialServiceImpl) ListFollowing(ctx context.Context, userID uint64, page, limit int) (*dto.FollowingPageDTO, error) {
	partners, total, err := s.followRepo.ListFollowedPartners(ctx, userID, limit, (page-1)*limit)
	if err != nil {
		slog.ErrorContext(ctx, "list following", "error", err)
		return nil, UnExpectedError
	}
	items := make([]*dto.PartnerSummaryDTO, 0, len(partners))
	for _, p := range partners {
		items = append(items, toPartnerSummaryDTO(p))
	}
	return &dto.FollowingPageDTO{
		Following:  items,
		Pagination: dto.NewPagination(page, limit, total),
	}, nil
}

func (s *SocialServiceImpl) ListFollowers(ctx context.Context, partnerID uint64, page, limit int) (*dto.FollowersPageDTO, error) {
	partner, err := s.partnerRepo.GetPartner(ctx, partnerID)
	if err != nil {
		slog.ErrorContext(ctx, "get partner", "error", err)
		return nil, UnExpectedError
	}
	if partner == nil {
		return nil, ErrPartnerNotFound
	}

	users, total, err := s.followRepo.ListFollowers(ctx, partnerID, limit, (page-1)*limit)
	if err != nil {
		slog.ErrorContext(ctx, "list followers", "error", err)
		return nil, UnExpectedError
	}
	items := make([]*dto.UserSummaryDTO, 0, len(users))
	for _, u := range users {
		items = append(items, toUserSummaryDTO(u))
	}
	return &dto.FollowersPageDTO{
		Followers:  items,
		Pagination: dto.NewPagination(page, limit, total),
	}, nil
}

// SocialStats aggregates over everything the user follows. AverageRating is
// the equal-weight mean of followed partners' ratings, rounded to 1 decimal.
func (s *SocialServiceImpl) SocialStats(ctx context.Context, userID uint64) (*dto.SocialStatsDTO, error) {
	user, err := s.userRepo.GetUser(ctx, userID)
	if err != nil {
		slog.ErrorContext(ctx, "get user", "error", err)
		return nil, UnExpectedError
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	agg, err := s.followRepo.AggregateFollowed(ctx, userID)
	if err != nil {
		slog.ErrorContext(ctx, "aggregate following", "error", err)
		return nil, UnExpectedError
	}

	stats := &dto.SocialStatsDTO{Preferences: user.Preferences}
	stats.Following.Count = agg.Count
	stats.Following.TotalVideos = agg.TotalVideos
	stats.Following.AverageRating = math.Round(agg.AvgRating*10) / 10
	return stats, nil
}

// UpdatePreferences merges only the provided sub-fields into the stored
// preferences; omitted fields survive untouched.
func (s *SocialServiceImpl) UpdatePreferences(ctx context.Context, userID uint64, req *dto.PreferencesUpdateDTO) (*model.Preferences, error) {
	user, err := s.userRepo.GetUser(ctx, userID)
	if err != nil {
		slog.ErrorContext(ctx, "get user", "error", err)
		return nil, UnExpectedError
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	prefs := user.Preferences
	if req.Cuisines != nil {
		prefs.Cuisines = *req.Cuisines
	}
	if req.DietaryRestrictions != nil {
		prefs.DietaryRestrictions = *req.DietaryRestrictions
	}
	if req.FavoriteIngredients != nil {
		prefs.FavoriteIngredients = *req.FavoriteIngredients
	}

	if err = s.userRepo.UpdatePreferences(ctx, userID, prefs); err != nil {
		slog.ErrorContext(ctx, "update preferences", "error", err)
		return nil, UnExpectedError
	}
	return &prefs, nil
}
