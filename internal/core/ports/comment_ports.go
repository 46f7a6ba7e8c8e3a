package ports

import (
	"context"

	"github.com/pollbox/api/internal/core/domain"
)

type CommentRepository interface {
	Save(ctx context.Context, comment *domain.Comment) (int64, error)
	GetByPoll(ctx context.Context, pollID int64) ([]domain.Comment, error)
}

type AddCommentInput struct {
	PollID  int64
	UserID  int64
	Content string
}

type CommentService interface {
	Add(ctx context.Context, input AddCommentInput) (*domain.Comment, error)
	ListByPoll(ctx context.Context, pollID int64) ([]domain.Comment, error)
}
