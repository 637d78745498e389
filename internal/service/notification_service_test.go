package service

import (
	"fmt"
	"testing"

	"reeldine/internal/model"
)

func newNotifier() *NotificationServiceImpl {
	return NewNotificationService(NewRealtimeHub()).(*NotificationServiceImpl)
}

func fakeFood(partnerID uint64) *model.Food {
	return &model.Food{ID: 1, Name: "Ramen", FoodPartnerID: partnerID}
}

func fakeUser(id uint64, name string) *model.User {
	return &model.User{ID: id, FullName: name}
}

func TestInboxCapEvictsOldest(t *testing.T) {
	svc := newNotifier()
	food := fakeFood(7)

	for i := 0; i < inboxCap+5; i++ {
		svc.NotifyFoodLiked(food, fakeUser(uint64(i+1), fmt.Sprintf("user-%d", i)))
	}

	recipient := RecipientKey("partner", 7)
	page := svc.List(recipient, 1, inboxCap+10, false)
	if len(page.Notifications) != inboxCap {
		t.Fatalf("inbox size = %d, want %d", len(page.Notifications), inboxCap)
	}
	// newest-first: the very first deliveries must be gone
	newest := page.Notifications[0]
	if newest.Message != "user-104 liked Ramen" {
		t.Errorf("newest = %q", newest.Message)
	}
	oldest := page.Notifications[len(page.Notifications)-1]
	if oldest.Message != "user-5 liked Ramen" {
		t.Errorf("oldest kept = %q, want user-5 liked Ramen", oldest.Message)
	}
}

func TestNotificationPagination(t *testing.T) {
	svc := newNotifier()
	food := fakeFood(3)
	for i := 0; i < 25; i++ {
		svc.NotifyFoodLiked(food, fakeUser(uint64(i+1), fmt.Sprintf("u%d", i)))
	}
	recipient := RecipientKey("partner", 3)

	page := svc.List(recipient, 2, 10, false)
	if len(page.Notifications) != 10 {
		t.Errorf("page 2 size = %d, want 10", len(page.Notifications))
	}
	if page.Pagination.TotalItems != 25 || page.Pagination.TotalPages != 3 {
		t.Errorf("pagination = %+v", page.Pagination)
	}
	if page.UnreadCount != 25 {
		t.Errorf("UnreadCount = %d, want 25", page.UnreadCount)
	}

	empty := svc.List(recipient, 99, 10, false)
	if len(empty.Notifications) != 0 {
		t.Errorf("out-of-range page size = %d, want 0", len(empty.Notifications))
	}
}

func TestMarkReadSubsetAndAll(t *testing.T) {
	svc := newNotifier()
	food := fakeFood(5)
	for i := 0; i < 3; i++ {
		svc.NotifyFoodLiked(food, fakeUser(uint64(i+1), "x"))
	}
	recipient := RecipientKey("partner", 5)

	page := svc.List(recipient, 1, 10, false)
	marked, err := svc.MarkRead(recipient, []string{page.Notifications[0].ID, "no-such-id"})
	if err != nil {
		t.Fatalf("MarkRead: %v", err)
	}
	if marked != 1 {
		t.Errorf("marked = %d, want 1", marked)
	}
	if got := svc.UnreadCount(recipient); got != 2 {
		t.Errorf("UnreadCount = %d, want 2", got)
	}

	if _, err = svc.MarkRead(recipient, nil); err == nil {
		t.Error("MarkRead with no ids must fail")
	}

	if marked = svc.MarkAllRead(recipient); marked != 2 {
		t.Errorf("MarkAllRead = %d, want 2", marked)
	}
	if got := svc.UnreadCount(recipient); got != 0 {
		t.Errorf("UnreadCount after mark-all = %d, want 0", got)
	}

	unread := svc.List(recipient, 1, 10, true)
	if len(unread.Notifications) != 0 {
		t.Errorf("unreadOnly list size = %d, want 0", len(unread.Notifications))
	}
}

func TestMarkAllReadIsolatedPerRecipient(t *testing.T) {
	svc := newNotifier()
	svc.NotifyFoodLiked(fakeFood(1), fakeUser(10, "a"))
	svc.NotifyFoodLiked(fakeFood(2), fakeUser(10, "a"))

	svc.MarkAllRead(RecipientKey("partner", 1))

	if got := svc.UnreadCount(RecipientKey("partner", 2)); got != 1 {
		t.Errorf("other recipient UnreadCount = %d, want 1", got)
	}
}

func TestDeleteNotification(t *testing.T) {
	svc := newNotifier()
	svc.NotifyFoodLiked(fakeFood(9), fakeUser(1, "z"))
	recipient := RecipientKey("partner", 9)

	page := svc.List(recipient, 1, 10, false)
	if err := svc.Delete(recipient, page.Notifications[0].ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if err := svc.Delete(recipient, "gone"); err != ErrNotificationNotFound {
		t.Errorf("second delete err = %v, want ErrNotificationNotFound", err)
	}
	if got := svc.List(recipient, 1, 10, false); len(got.Notifications) != 0 {
		t.Errorf("inbox size after delete = %d", len(got.Notifications))
	}
}

func TestFanoutReachesEveryFollower(t *testing.T) {
	svc := newNotifier()
	partner := &model.FoodPartner{ID: 4, Name: "WokStar"}
	food := &model.Food{ID: 11, Name: "Fried Rice", FoodPartnerID: 4}

	svc.NotifyNewFoodPost([]uint64{1, 2, 3}, partner, food)

	for _, userID := range []uint64{1, 2, 3} {
		page := svc.List(RecipientKey("user", userID), 1, 10, false)
		if len(page.Notifications) != 1 {
			t.Fatalf("user %d inbox size = %d, want 1", userID, len(page.Notifications))
		}
		if page.Notifications[0].Type != NotificationNewFoodPost {
			t.Errorf("type = %q", page.Notifications[0].Type)
		}
	}
	// the partner's own inbox stays empty
	if page := svc.List(RecipientKey("partner", 4), 1, 10, false); len(page.Notifications) != 0 {
		t.Error("fanout must not notify the posting partner")
	}
}

func TestCommentNotificationTruncates(t *testing.T) {
	svc := newNotifier()
	food := fakeFood(6)
	long := ""
	for i := 0; i < 80; i++ {
		long += "a"
	}
	svc.NotifyFoodCommented(food, fakeUser(2, "Gail"), long)

	page := svc.List(RecipientKey("partner", 6), 1, 10, false)
	if len(page.Notifications) != 1 {
		t.Fatalf("inbox size = %d", len(page.Notifications))
	}
	msg := page.Notifications[0].Message
	want := "Gail: " + long[:50] + "..."
	if msg != want {
		t.Errorf("message = %q, want %q", msg, want)
	}
}

func TestStatsByType(t *testing.T) {
	svc := newNotifier()
	food := fakeFood(8)
	svc.NotifyFoodLiked(food, fakeUser(1, "a"))
	svc.NotifyFoodLiked(food, fakeUser(2, "b"))
	svc.NotifyFoodCommented(food, fakeUser(3, "c"), "nice")

	recipient := RecipientKey("partner", 8)
	page := svc.List(recipient, 1, 10, false)
	if _, err := svc.MarkRead(recipient, []string{page.Notifications[0].ID}); err != nil {
		t.Fatalf("MarkRead: %v", err)
	}

	stats := svc.Stats(recipient)
	if stats.Total != 3 || stats.Unread != 2 {
		t.Errorf("stats = %+v", stats)
	}
	if stats.ByType[NotificationFoodLiked] != 2 || stats.ByType[NotificationFoodCommented] != 1 {
		t.Errorf("ByType = %v", stats.ByType)
	}
}
