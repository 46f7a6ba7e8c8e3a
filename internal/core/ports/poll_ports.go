package ports

import (
	"context"
	"time"

	"github.com/pollbox/api/internal/core/domain"
)

// PollRepository persists polls and their option sets. The compound
// operations (Delete, SetClosedAt, ReplaceOptions) run their existence,
// ownership and expiry checks inside the same transaction as the mutation
// and report failures through the domain sentinel errors.
type PollRepository interface {
	GetAll(ctx context.Context) ([]domain.Poll, error)
	Save(ctx context.Context, poll *domain.Poll) (int64, error)
	Delete(ctx context.Context, pollID, requesterID int64) error
	SetClosedAt(ctx context.Context, pollID, requesterID int64, closedAt time.Time) error
	ReplaceOptions(ctx context.Context, pollID, requesterID int64, options []string) error
	GetOptions(ctx context.Context, pollID int64) ([]domain.PollOption, error)
}

type CreatePollInput struct {
	Title       string
	Description string
	PollTypeID  int64
	UserID      int64
}

type SetOptionsInput struct {
	PollID  int64
	UserID  int64
	Options []string
}

type PollService interface {
	ListPolls(ctx context.Context) ([]domain.Poll, error)
	Create(ctx context.Context, input CreatePollInput) (int64, error)
	Delete(ctx context.Context, pollID, requesterID int64) error
	SetExpiration(ctx context.Context, pollID, requesterID int64, closedAt time.Time) error
	SetOptions(ctx context.Context, input SetOptionsInput) error
	GetOptions(ctx context.Context, pollID int64) ([]domain.PollOption, error)
}
