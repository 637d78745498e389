package service

import (
	"context"
	"errors"
	"testing"

	"reeldine/internal/api/dto"
	"reeldine/internal/model"
	"reeldine/internal/repository"

	"gorm.io/gorm"
)

func newFoodFixture(t *testing.T) (FoodService, NotificationService, *gorm.DB) {
	t.Helper()
	db := newTestDB(t)
	notifier := NewNotificationService(NewRealtimeHub())
	svc := NewFoodService(
		repository.NewFoodRepo(db),
		repository.NewPartnerRepo(db),
		repository.NewFollowRepo(db),
		repository.NewUserRepo(db),
		notifier,
	)
	return svc, notifier, db
}

func TestCreateFoodNormalizesTagsAndCountsVideo(t *testing.T) {
	svc, _, db := newFoodFixture(t)
	partner := seedPartner(t, db, "creator", 4.0, 10, 20)

	result, err := svc.CreateFood(context.Background(), partner.ID, &dto.FoodCreateDTO{
		Name:  "Bibimbap",
		Video: "videos/bibimbap.mp4",
		Tags:  []string{" Korean ", "korean", "RICE", ""},
	})
	if err != nil {
		t.Fatalf("CreateFood: %v", err)
	}
	if len(result.Tags) != 2 {
		t.Errorf("tags = %v, want lowercased dedup [korean rice]", result.Tags)
	}
	// location falls back to the partner's when the request omits it
	if result.Location != [2]float64{10, 20} {
		t.Errorf("location = %v", result.Location)
	}

	var stored model.FoodPartner
	if err = db.First(&stored, partner.ID).Error; err != nil {
		t.Fatalf("reload partner: %v", err)
	}
	if stored.TotalVideos != 1 {
		t.Errorf("TotalVideos = %d, want 1", stored.TotalVideos)
	}
}

func TestCreateFoodUnknownPartner(t *testing.T) {
	svc, _, _ := newFoodFixture(t)
	_, err := svc.CreateFood(context.Background(), 42, &dto.FoodCreateDTO{Name: "x", Video: "v"})
	if !errors.Is(err, ErrPartnerNotFound) {
		t.Errorf("err = %v, want ErrPartnerNotFound", err)
	}
}

func TestToggleLike(t *testing.T) {
	svc, notifier, db := newFoodFixture(t)
	ctx := context.Background()
	partner := seedPartner(t, db, "likeable", 4.0, 0, 0)
	user := seedUser(t, db, "Liker", "liker@example.com")
	food := seedFood(t, db, &model.Food{Name: "Tacos", FoodPartnerID: partner.ID})

	result, err := svc.ToggleLike(ctx, user.ID, food.ID)
	if err != nil {
		t.Fatalf("like: %v", err)
	}
	if !result.Liked || result.LikeCount != 1 {
		t.Errorf("like result = %+v", result)
	}

	var stored model.Food
	if err = db.First(&stored, food.ID).Error; err != nil {
		t.Fatalf("reload food: %v", err)
	}
	if stored.LikeCount != 1 {
		t.Errorf("stored LikeCount = %d, want 1", stored.LikeCount)
	}

	// the posting partner hears about the like
	inbox := notifier.List(RecipientKey("partner", partner.ID), 1, 10, false)
	if len(inbox.Notifications) != 1 || inbox.Notifications[0].Type != NotificationFoodLiked {
		t.Errorf("partner inbox = %+v", inbox.Notifications)
	}

	result, err = svc.ToggleLike(ctx, user.ID, food.ID)
	if err != nil {
		t.Fatalf("unlike: %v", err)
	}
	if result.Liked || result.LikeCount != 0 {
		t.Errorf("unlike result = %+v", result)
	}
	if err = db.First(&stored, food.ID).Error; err != nil {
		t.Fatalf("reload food: %v", err)
	}
	if stored.LikeCount != 0 {
		t.Errorf("stored LikeCount after unlike = %d, want 0", stored.LikeCount)
	}
}

func TestToggleSaveAndListSaved(t *testing.T) {
	svc, _, db := newFoodFixture(t)
	ctx := context.Background()
	partner := seedPartner(t, db, "saveable", 4.0, 0, 0)
	user := seedUser(t, db, "Saver", "saver@example.com")
	food := seedFood(t, db, &model.Food{Name: "Gyoza", FoodPartnerID: partner.ID})

	result, err := svc.ToggleSave(ctx, user.ID, food.ID)
	if err != nil {
		t.Fatalf("save: %v", err)
	}
	if !result.Saved || result.SavesCount != 1 {
		t.Errorf("save result = %+v", result)
	}

	page, err := svc.ListSaved(ctx, user.ID, 1, 10)
	if err != nil {
		t.Fatalf("ListSaved: %v", err)
	}
	if len(page.Foods) != 1 || page.Foods[0].Name != "Gyoza" {
		t.Errorf("saved page = %+v", page.Foods)
	}

	if _, err = svc.ToggleSave(ctx, user.ID, food.ID); err != nil {
		t.Fatalf("unsave: %v", err)
	}
	page, err = svc.ListSaved(ctx, user.ID, 1, 10)
	if err != nil {
		t.Fatalf("ListSaved: %v", err)
	}
	if len(page.Foods) != 0 {
		t.Errorf("saved page after unsave = %d items", len(page.Foods))
	}
}

func TestEngagementScoreWeights(t *testing.T) {
	food := &model.Food{LikeCount: 10, SavesCount: 5, CommentsCount: 4, ViewCount: 30}
	// 10*2 + 5*3 + 4*4 + 30*0.1
	if got := food.EngagementScore(); got != 54 {
		t.Errorf("EngagementScore = %v, want 54", got)
	}
}

func TestTrackViewFeedsTrending(t *testing.T) {
	svc, _, db := newFoodFixture(t)
	ctx := context.Background()
	partner := seedPartner(t, db, "viewed", 4.0, 0, 0)
	quiet := seedFood(t, db, &model.Food{Name: "Quiet", FoodPartnerID: partner.ID})
	loud := seedFood(t, db, &model.Food{Name: "Loud", FoodPartnerID: partner.ID})

	for i := 0; i < 30; i++ {
		if err := svc.TrackView(ctx, loud.ID); err != nil {
			t.Fatalf("TrackView: %v", err)
		}
	}
	_ = quiet

	trending, err := svc.Trending(ctx, 10)
	if err != nil {
		t.Fatalf("Trending: %v", err)
	}
	if trending[0].Name != "Loud" {
		t.Errorf("top trending = %q, want Loud", trending[0].Name)
	}
	if trending[0].ViewCount != 30 {
		t.Errorf("ViewCount = %d, want 30", trending[0].ViewCount)
	}

	if err = svc.TrackView(ctx, 9999); !errors.Is(err, ErrFoodNotFound) {
		t.Errorf("TrackView missing food err = %v", err)
	}
}

func TestDeleteFoodOwnershipAndCleanup(t *testing.T) {
	svc, _, db := newFoodFixture(t)
	ctx := context.Background()
	owner := seedPartner(t, db, "owner", 4.0, 0, 0)
	other := seedPartner(t, db, "other", 4.0, 0, 0)
	user := seedUser(t, db, "U", "u@example.com")
	food := seedFood(t, db, &model.Food{Name: "Doomed", FoodPartnerID: owner.ID}, "tag1")
	if _, err := svc.ToggleLike(ctx, user.ID, food.ID); err != nil {
		t.Fatalf("like: %v", err)
	}

	if err := svc.DeleteFood(ctx, other.ID, food.ID); !errors.Is(err, UnauthorizedError) {
		t.Errorf("foreign delete err = %v, want UnauthorizedError", err)
	}
	if err := svc.DeleteFood(ctx, owner.ID, food.ID); err != nil {
		t.Fatalf("owner delete: %v", err)
	}

	var likes, tags int64
	db.Model(&model.FoodLike{}).Where("food_id = ?", food.ID).Count(&likes)
	db.Model(&model.FoodTag{}).Where("food_id = ?", food.ID).Count(&tags)
	if likes != 0 || tags != 0 {
		t.Errorf("dependent rows survived delete: likes=%d tags=%d", likes, tags)
	}

	if _, err := svc.GetFood(ctx, food.ID); !errors.Is(err, ErrFoodNotFound) {
		t.Errorf("GetFood after delete err = %v", err)
	}
}
