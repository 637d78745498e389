package service

import (
	"context"
	"log/slog"
	"time"

	"reeldine/internal/api/dto"
	"reeldine/internal/model"
	"reeldine/internal/repository"
)

type ChallengeService interface {
	ListActive(ctx context.Context, page, limit int) (*dto.ChallengePageDTO, error)
	Join(ctx context.Context, userID, challengeID uint64) error
}

type ChallengeServiceImpl struct {
	challengeRepo repository.ChallengeRepo
}

func NewChallengeService(challengeRepo repository.ChallengeRepo) ChallengeService {
	return &ChallengeServiceImpl{challengeRepo: challengeRepo}
}

func (s *ChallengeServiceImpl) ListActive(ctx context.Context, page, limit int) (*dto.ChallengePageDTO, error) {
	challenges, total, err := s.challengeRepo.ListActive(ctx, time.Now(), limit, (page-1)*limit)
	if err != nil {
		slog.ErrorContext(ctx, "list challenges", "error", err)
		return nil, UnExpectedError
	}
	return &dto.ChallengePageDTO{
		Challenges: challenges,
		Pagination: dto.NewPagination(page, limit, total),
	}, nil
}

func (s *ChallengeServiceImpl) Join(ctx context.Context, userID, challengeID uint64) error {
	challenge, err := s.challengeRepo.GetChallenge(ctx, challengeID)
	if err != nil {
		slog.ErrorContext(ctx, "get challenge", "error", err)
		return UnExpectedError
	}
	now := time.Now()
	if challenge == nil || !challenge.IsActive || now.Before(challenge.StartDate) || now.After(challenge.EndDate) {
		return ErrChallengeNotFound
	}

	exists, err := s.challengeRepo.ParticipantExists(ctx, challengeID, userID)
	if err != nil {
		slog.ErrorContext(ctx, "check participant", "error", err)
		return UnExpectedError
	}
	if exists {
		return ErrAlreadyJoined
	}

	if err = s.challengeRepo.CreateParticipant(ctx, &model.ChallengeParticipant{
		ChallengeID: challengeID,
		UserID:      userID,
		JoinedAt:    now,
	}); err != nil {
		if isDuplicateEntry(err) {
			return ErrAlreadyJoined
		}
		slog.ErrorContext(ctx, "join challenge", "error", err)
		return UnExpectedError
	}
	return nil
}
