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

func newCommentFixture(t *testing.T) (CommentService, *gorm.DB) {
	t.Helper()
	db := newTestDB(t)
	notifier := NewNotificationService(NewRealtimeHub())
	svc := NewCommentService(
		repository.NewCommentRepo(db),
		repository.NewFoodRepo(db),
		repository.NewUserRepo(db),
		notifier,
	)
	return svc, db
}

func TestCommentLifecycleMaintainsCounter(t *testing.T) {
	svc, db := newCommentFixture(t)
	ctx := context.Background()
	partner := seedPartner(t, db, "commented", 4.0, 0, 0)
	user := seedUser(t, db, "Talker", "talker@example.com")
	food := seedFood(t, db, &model.Food{Name: "Soup", FoodPartnerID: partner.ID})

	created, err := svc.CreateComment(ctx, user.ID, &dto.CommentCreateDTO{FoodID: food.ID, Text: "delicious"})
	if err != nil {
		t.Fatalf("CreateComment: %v", err)
	}
	if created.User == nil || created.User.FullName != "Talker" {
		t.Errorf("created.User = %+v", created.User)
	}

	var stored model.Food
	if err = db.First(&stored, food.ID).Error; err != nil {
		t.Fatalf("reload food: %v", err)
	}
	if stored.CommentsCount != 1 {
		t.Errorf("CommentsCount = %d, want 1", stored.CommentsCount)
	}

	if err = svc.DeleteComment(ctx, user.ID, created.ID); err != nil {
		t.Fatalf("DeleteComment: %v", err)
	}
	if err = db.First(&stored, food.ID).Error; err != nil {
		t.Fatalf("reload food: %v", err)
	}
	if stored.CommentsCount != 0 {
		t.Errorf("CommentsCount after delete = %d, want 0", stored.CommentsCount)
	}
}

func TestCommentOnMissingFood(t *testing.T) {
	svc, db := newCommentFixture(t)
	user := seedUser(t, db, "Lost", "lost@example.com")
	_, err := svc.CreateComment(context.Background(), user.ID, &dto.CommentCreateDTO{FoodID: 404, Text: "hi"})
	if !errors.Is(err, ErrFoodNotFound) {
		t.Errorf("err = %v, want ErrFoodNotFound", err)
	}
}

func TestUpdateCommentOnlyByAuthor(t *testing.T) {
	svc, db := newCommentFixture(t)
	ctx := context.Background()
	partner := seedPartner(t, db, "p", 4.0, 0, 0)
	author := seedUser(t, db, "Author", "author@example.com")
	stranger := seedUser(t, db, "Stranger", "stranger@example.com")
	food := seedFood(t, db, &model.Food{Name: "Stew", FoodPartnerID: partner.ID})

	created, err := svc.CreateComment(ctx, author.ID, &dto.CommentCreateDTO{FoodID: food.ID, Text: "v1"})
	if err != nil {
		t.Fatalf("CreateComment: %v", err)
	}

	if _, err = svc.UpdateComment(ctx, stranger.ID, created.ID, &dto.CommentUpdateDTO{Text: "hacked"}); !errors.Is(err, ErrCommentNotFound) {
		t.Errorf("foreign update err = %v, want ErrCommentNotFound", err)
	}
	if err = svc.DeleteComment(ctx, stranger.ID, created.ID); !errors.Is(err, ErrCommentNotFound) {
		t.Errorf("foreign delete err = %v, want ErrCommentNotFound", err)
	}

	updated, err := svc.UpdateComment(ctx, author.ID, created.ID, &dto.CommentUpdateDTO{Text: "v2"})
	if err != nil {
		t.Fatalf("author update: %v", err)
	}
	if updated.Text != "v2" {
		t.Errorf("Text = %q, want v2", updated.Text)
	}
}

func TestListCommentsNewestFirst(t *testing.T) {
	svc, db := newCommentFixture(t)
	ctx := context.Background()
	partner := seedPartner(t, db, "p2", 4.0, 0, 0)
	user := seedUser(t, db, "Lister", "lister@example.com")
	food := seedFood(t, db, &model.Food{Name: "Curry", FoodPartnerID: partner.ID})

	for _, text := range []string{"first", "second", "third"} {
		if _, err := svc.CreateComment(ctx, user.ID, &dto.CommentCreateDTO{FoodID: food.ID, Text: text}); err != nil {
			t.Fatalf("create %q: %v", text, err)
		}
	}

	page, err := svc.ListComments(ctx, food.ID, 1, 2)
	if err != nil {
		t.Fatalf("ListComments: %v", err)
	}
	if len(page.Comments) != 2 || page.Pagination.TotalItems != 3 {
		t.Errorf("page = %d items, total %d", len(page.Comments), page.Pagination.TotalItems)
	}
}

func TestToggleCommentLike(t *testing.T) {
	svc, db := newCommentFixture(t)
	ctx := context.Background()
	partner := seedPartner(t, db, "p3", 4.0, 0, 0)
	author := seedUser(t, db, "A", "a2@example.com")
	liker := seedUser(t, db, "B", "b2@example.com")
	food := seedFood(t, db, &model.Food{Name: "Pho", FoodPartnerID: partner.ID})

	created, err := svc.CreateComment(ctx, author.ID, &dto.CommentCreateDTO{FoodID: food.ID, Text: "yum"})
	if err != nil {
		t.Fatalf("CreateComment: %v", err)
	}

	result, err := svc.ToggleCommentLike(ctx, liker.ID, created.ID)
	if err != nil {
		t.Fatalf("like: %v", err)
	}
	if !result.Liked || result.LikeCount != 1 {
		t.Errorf("like result = %+v", result)
	}

	result, err = svc.ToggleCommentLike(ctx, liker.ID, created.ID)
	if err != nil {
		t.Fatalf("unlike: %v", err)
	}
	if result.Liked || result.LikeCount != 0 {
		t.Errorf("unlike result = %+v", result)
	}

	if _, err = svc.ToggleCommentLike(ctx, liker.ID, 9999); !errors.Is(err, ErrCommentNotFound) {
		t.Errorf("missing comment err = %v", err)
	}
}
