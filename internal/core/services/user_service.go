package services

import (
	"context"
	"fmt"

	"github.com/pollbox/api/internal/core/domain"
	"github.com/pollbox/api/internal/core/ports"
)

type userService struct {
	repo ports.UserRepository
}

func NewUserService(repo ports.UserRepository) ports.UserService {
	return &userService{
		repo: repo,
	}
}

func (s *userService) List(ctx context.Context) ([]domain.User, error) {
	return s.repo.GetAll(ctx)
}

func (s *userService) Create(ctx context.Context, input ports.CreateUserInput) (int64, error) {
	if input.Username == "" || input.Password == "" {
		return 0, fmt.Errorf("%w: username and password are required", domain.ErrInvalidInput)
	}

	user := &domain.User{
		Username: input.Username,
		Password: input.Password,
	}

	return s.repo.Save(ctx, user)
}

func (s *userService) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	if id <= 0 {
		return nil, fmt.Errorf("%w: user id is required", domain.ErrInvalidInput)
	}

	user, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	return user, nil
}

func (s *userService) Update(ctx context.Context, id int64, input ports.UpdateUserInput) error {
	if id <= 0 || (input.Username == "" && input.Password == "") {
		return fmt.Errorf("%w: a username or password is required", domain.ErrInvalidInput)
	}

	affected, err := s.repo.Update(ctx, id, input.Username, input.Password)
	if err != nil {
		return err
	}
	if affected == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}

func (s *userService) Delete(ctx context.Context, id int64) error {
	if id <= 0 {
		return fmt.Errorf("%w: user id is required", domain.ErrInvalidInput)
	}

	affected, err := s.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if affected == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}
