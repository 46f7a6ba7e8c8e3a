package services

import (
	"context"
	"fmt"

	"github.com/pollbox/api/internal/core/domain"
	"github.com/pollbox/api/internal/core/ports"
)

type commentService struct {
	repo ports.CommentRepository
}

func NewCommentService(repo ports.CommentRepository) ports.CommentService {
	return &commentService{
		repo: repo,
	}
}

func (s *commentService) Add(ctx context.Context, input ports.AddCommentInput) (*domain.Comment, error) {
	if input.PollID <= 0 || input.UserID <= 0 || input.Content == "" {
		return nil, fmt.Errorf("%w: poll id, user id and content are required", domain.ErrInvalidInput)
	}

	comment := &domain.Comment{
		PollID:  input.PollID,
		UserID:  input.UserID,
		Content: input.Content,
	}

	id, err := s.repo.Save(ctx, comment)
	if err != nil {
		return nil, err
	}
	comment.ID = id

	return comment, nil
}

func (s *commentService) ListByPoll(ctx context.Context, pollID int64) ([]domain.Comment, error) {
	if pollID <= 0 {
		return nil, fmt.Errorf("%w: poll id is required", domain.ErrInvalidInput)
	}

	return s.repo.GetByPoll(ctx, pollID)
}
