package services

import (
	"context"
	"fmt"

	"github.com/pollbox/api/internal/core/domain"
	"github.com/pollbox/api/internal/core/ports"
)

type voteService struct {
	repo ports.VoteRepository
}

func NewVoteService(repo ports.VoteRepository) ports.VoteService {
	return &voteService{
		repo: repo,
	}
}

func (s *voteService) Cast(ctx context.Context, input ports.CastVoteInput) (int64, error) {
	if input.PollID <= 0 || input.OptionID <= 0 || input.UserID <= 0 {
		return 0, fmt.Errorf("%w: poll_id, option_id and user_id are required", domain.ErrInvalidInput)
	}

	vote := &domain.Vote{
		PollID:   input.PollID,
		OptionID: input.OptionID,
		UserID:   input.UserID,
	}

	return s.repo.Save(ctx, vote)
}

func (s *voteService) Results(ctx context.Context, pollID int64) ([]domain.PollResult, error) {
	if pollID <= 0 {
		return nil, fmt.Errorf("%w: poll id is required", domain.ErrInvalidInput)
	}

	return s.repo.Results(ctx, pollID)
}
