package services

import (
	"context"
	"fmt"
	"time"

	"github.com/pollbox/api/internal/core/domain"
	"github.com/pollbox/api/internal/core/ports"
)

type pollService struct {
	repo ports.PollRepository
}

func NewPollService(repo ports.PollRepository) ports.PollService {
	return &pollService{
		repo: repo,
	}
}

func (s *pollService) ListPolls(ctx context.Context) ([]domain.Poll, error) {
	return s.repo.GetAll(ctx)
}

func (s *pollService) Create(ctx context.Context, input ports.CreatePollInput) (int64, error) {
	if input.Title == "" || input.Description == "" || input.PollTypeID <= 0 || input.UserID <= 0 {
		return 0, fmt.Errorf("%w: title, description, poll_type_id and user_id are required", domain.ErrInvalidInput)
	}

	poll := &domain.Poll{
		Title:       input.Title,
		Description: input.Description,
		PollTypeID:  input.PollTypeID,
		UserID:      input.UserID,
	}

	return s.repo.Save(ctx, poll)
}

func (s *pollService) Delete(ctx context.Context, pollID, requesterID int64) error {
	if pollID <= 0 || requesterID <= 0 {
		return fmt.Errorf("%w: poll id and user id are required", domain.ErrInvalidInput)
	}

	return s.repo.Delete(ctx, pollID, requesterID)
}

func (s *pollService) SetExpiration(ctx context.Context, pollID, requesterID int64, closedAt time.Time) error {
	if pollID <= 0 || requesterID <= 0 || closedAt.IsZero() {
		return fmt.Errorf("%w: poll id, user id and expiration date are required", domain.ErrInvalidInput)
	}

	return s.repo.SetClosedAt(ctx, pollID, requesterID, closedAt)
}

func (s *pollService) SetOptions(ctx context.Context, input ports.SetOptionsInput) error {
	if input.PollID <= 0 || input.UserID <= 0 || len(input.Options) == 0 {
		return fmt.Errorf("%w: poll id, user id and options are required", domain.ErrInvalidInput)
	}

	return s.repo.ReplaceOptions(ctx, input.PollID, input.UserID, input.Options)
}

func (s *pollService) GetOptions(ctx context.Context, pollID int64) ([]domain.PollOption, error) {
	if pollID <= 0 {
		return nil, fmt.Errorf("%w: poll id is required", domain.ErrInvalidInput)
	}

	return s.repo.GetOptions(ctx, pollID)
}
