package ports

import (
	"context"

	"github.com/pollbox/api/internal/core/domain"
)

// VoteRepository stores votes. Save checks the target poll's expiry in the
// same transaction as the insert, so a vote can never land after the poll
// closed underneath a concurrent expiration update.
type VoteRepository interface {
	Save(ctx context.Context, vote *domain.Vote) (int64, error)
	Results(ctx context.Context, pollID int64) ([]domain.PollResult, error)
}

type CastVoteInput struct {
	PollID   int64
	OptionID int64
	UserID   int64
}

type VoteService interface {
	Cast(ctx context.Context, input CastVoteInput) (int64, error)
	Results(ctx context.Context, pollID int64) ([]domain.PollResult, error)
}
