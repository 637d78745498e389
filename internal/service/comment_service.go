package service

import (
	"context"
	"log/slog"

	"reeldine/internal/api/dto"
	"reeldine/internal/model"
	"reeldine/internal/repository"
)

type CommentService interface {
	CreateComment(ctx context.Context, userID uint64, req *dto.CommentCreateDTO) (*dto.CommentDTO, error)
	ListComments(ctx context.Context, foodID uint64, page, limit int) (*dto.CommentPageDTO, error)
	UpdateComment(ctx context.Context, userID, commentID uint64, req *dto.CommentUpdateDTO) (*dto.CommentDTO, error)
	DeleteComment(ctx context.Context, userID, commentID uint64) error
	ToggleCommentLike(ctx context.Context, userID, commentID uint64) (*dto.CommentLikeResultDTO, error)
}

type CommentServiceImpl struct {
	commentRepo repository.CommentRepo
	foodRepo    repository.FoodRepo
	userRepo    repository.UserRepo
	notifier    NotificationService
}

func NewCommentService(
	commentRepo repository.CommentRepo,
	foodRepo repository.FoodRepo,
	userRepo repository.UserRepo,
	notifier NotificationService,
) CommentService {
	return &CommentServiceImpl{
		commentRepo: commentRepo,
		foodRepo:    foodRepo,
		userRepo:    userRepo,
		notifier:    notifier,
	}
}

func (s *CommentServiceImpl) CreateComment(ctx context.Context, userID uint64, req *dto.CommentCreateDTO) (*dto.CommentDTO, error) {
	food, err := s.foodRepo.GetActiveFood(ctx, req.FoodID)
	if err != nil {
		slog.ErrorContext(ctx, "get food", "error", err)
		return nil, UnExpectedError
	}
	if food == nil {
		return nil, ErrFoodNotFound
	}

	comment := &model.Comment{
		UserID: userID,
		FoodID: req.FoodID,
		Text:   req.Text,
	}
	if err = s.commentRepo.CreateComment(ctx, comment); err != nil {
		slog.ErrorContext(ctx, "create comment", "error", err)
		return nil, UnExpectedError
	}
	if err = s.foodRepo.AdjustCounter(ctx, req.FoodID, "comments_count", 1); err != nil {
		slog.WarnContext(ctx, "adjust comments count", "food_id", req.FoodID, "error", err)
	}

	user, err := s.userRepo.GetUser(ctx, userID)
	if err == nil && user != nil {
		s.notifier.NotifyFoodCommented(food, user, comment.Text)
		comment.User = *user
	}
	return toCommentDTO(comment), nil
}

func (s *CommentServiceImpl) ListComments(ctx context.Context, foodID uint64, page, limit int) (*dto.CommentPageDTO, error) {
	food, err := s.foodRepo.GetActiveFood(ctx, foodID)
	if err != nil {
		slog.ErrorContext(ctx, "get food", "error", err)
		return nil, UnExpectedError
	}
	if food == nil {
		return nil, ErrFoodNotFound
	}

	comments, total, err := s.commentRepo.ListByFood(ctx, foodID, limit, (page-1)*limit)
	if err != nil {
		slog.ErrorContext(ctx, "list comments", "error", err)
		return nil, UnExpectedError
	}
	items := make([]*dto.CommentDTO, 0, len(comments))
	for _, c := range comments {
		items = append(items, toCommentDTO(c))
	}
	return &dto.CommentPageDTO{
		Comments:   items,
		Pagination: dto.NewPagination(page, limit, total),
	}, nil
}

// UpdateComment rewrites the text; only the author may touch a comment, and
// a foreign comment is indistinguishable from a missing one.
func (s *CommentServiceImpl) UpdateComment(ctx context.Context, userID, commentID uint64, req *dto.CommentUpdateDTO) (*dto.CommentDTO, error) {
	comment, err := s.commentRepo.GetComment(ctx, commentID)
	if err != nil {
		slog.ErrorContext(ctx, "get comment", "error", err)
		return nil, UnExpectedError
	}
	if comment == nil || comment.UserID != userID {
		return nil, ErrCommentNotFound
	}

	if err = s.commentRepo.UpdateText(ctx, commentID, req.Text); err != nil {
		slog.ErrorContext(ctx, "update comment", "error", err)
		return nil, UnExpectedError
	}
	comment.Text = req.Text
	return toCommentDTO(comment), nil
}

func (s *CommentServiceImpl) DeleteComment(ctx context.Context, userID, commentID uint64) error {
	comment, err := s.commentRepo.GetComment(ctx, commentID)
	if err != nil {
		slog.ErrorContext(ctx, "get comment", "error", err)
		return UnExpectedError
	}
	if comment == nil || comment.UserID != userID {
		return ErrCommentNotFound
	}

	if err = s.commentRepo.DeleteComment(ctx, commentID); err != nil {
		slog.ErrorContext(ctx, "delete comment", "error", err)
		return UnExpectedError
	}
	if err = s.foodRepo.AdjustCounter(ctx, comment.FoodID, "comments_count", -1); err != nil {
		slog.WarnContext(ctx, "adjust comments count", "food_id", comment.FoodID, "error", err)
	}
	return nil
}

func (s *CommentServiceImpl) ToggleCommentLike(ctx context.Context, userID, commentID uint64) (*dto.CommentLikeResultDTO, error) {
	comment, err := s.commentRepo.GetComment(ctx, commentID)
	if err != nil {
		slog.ErrorContext(ctx, "get comment", "error", err)
		return nil, UnExpectedError
	}
	if comment == nil {
		return nil, ErrCommentNotFound
	}

	exists, err := s.commentRepo.CommentLikeExists(ctx, userID, commentID)
	if err != nil {
		slog.ErrorContext(ctx, "check comment like", "error", err)
		return nil, UnExpectedError
	}

	if exists {
		if err = s.commentRepo.DeleteCommentLike(ctx, userID, commentID); err != nil {
			slog.ErrorContext(ctx, "delete comment like", "error", err)
			return nil, UnExpectedError
		}
		if err = s.commentRepo.AdjustLikeCount(ctx, commentID, -1); err != nil {
			slog.WarnContext(ctx, "adjust comment like count", "comment_id", commentID, "error", err)
		}
		return &dto.CommentLikeResultDTO{Liked: false, LikeCount: comment.LikeCount - 1}, nil
	}

	if err = s.commentRepo.CreateCommentLike(ctx, &model.CommentLike{UserID: userID, CommentID: commentID}); err != nil {
		if isDuplicateEntry(err) {
			return &dto.CommentLikeResultDTO{Liked: true, LikeCount: comment.LikeCount}, nil
		}
		slog.ErrorContext(ctx, "create comment like", "error", err)
		return nil, UnExpectedError
	}
	if err = s.commentRepo.AdjustLikeCount(ctx, commentID, 1); err != nil {
		slog.WarnContext(ctx, "adjust comment like count", "comment_id", commentID, "error", err)
	}
	return &dto.CommentLikeResultDTO{Liked: true, LikeCount: comment.LikeCount + 1}, nil
}
