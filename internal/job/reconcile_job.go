package job

import (
	"context"
	log "log/slog"
	"time"

	"gorm.io/gorm"
)

// ReconcileCountersJob re-derives the denormalized counters from their
// source-of-truth tables. Atomic increments keep them close to correct, but
// crashes between a row write and its counter update can leave drift.
type ReconcileCountersJob struct {
	db *gorm.DB
}

func NewReconcileCountersJob(db *gorm.DB) *ReconcileCountersJob {
	return &ReconcileCountersJob{db: db}
}

func (s *ReconcileCountersJob) Run() {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	start := time.Now()
	if err := s.reconcile(ctx); err != nil {
		log.ErrorContext(ctx, "counter reconciliation failed", "err", err)
		return
	}
	log.InfoContext(ctx, "counter reconciliation finished", "elapsed", time.Since(start))
}

func (s *ReconcileCountersJob) reconcile(ctx context.Context) error {
	db := s.db.WithContext(ctx)

	if err := db.Exec(`
		UPDATE food_partners SET followers_count = (
			SELECT COUNT(*) FROM user_follows WHERE user_follows.partner_id = food_partners.id
		)`).Error; err != nil {
		return err
	}

	if err := db.Exec(`
		UPDATE food_partners SET total_videos = (
			SELECT COUNT(*) FROM foods
			WHERE foods.food_partner_id = food_partners.id AND foods.is_active = true
		)`).Error; err != nil {
		return err
	}

	if err := db.Exec(`
		UPDATE foods SET like_count = (
			SELECT COUNT(*) FROM food_likes WHERE food_likes.food_id = foods.id
		)`).Error; err != nil {
		return err
	}

	if err := db.Exec(`
		UPDATE foods SET saves_count = (
			SELECT COUNT(*) FROM food_saves WHERE food_saves.food_id = foods.id
		)`).Error; err != nil {
		return err
	}

	if err := db.Exec(`
		UPDATE foods SET comments_count = (
			SELECT COUNT(*) FROM comments WHERE comments.food_id = foods.id
		)`).Error; err != nil {
		return err
	}

	return db.Exec(`
		UPDATE comments SET like_count = (
			SELECT COUNT(*) FROM comment_likes WHERE comment_likes.comment_id = comments.id
		)`).Error
}
