package ports

import (
	"context"

	"github.com/pollbox/api/internal/core/domain"
)

// UserRepository returns (nil, nil) from GetByID when no row matches;
// Update and Delete report the affected row count so callers can tell a
// missing user apart from a successful mutation.
type UserRepository interface {
	GetAll(ctx context.Context) ([]domain.User, error)
	GetByID(ctx context.Context, id int64) (*domain.User, error)
	Save(ctx context.Context, user *domain.User) (int64, error)
	Update(ctx context.Context, id int64, username, password string) (int64, error)
	Delete(ctx context.Context, id int64) (int64, error)
}

type CreateUserInput struct {
	Username string
	Password string
}

type UpdateUserInput struct {
	Username string
	Password string
}

type UserService interface {
	List(ctx context.Context) ([]domain.User, error)
	Create(ctx context.Context, input CreateUserInput) (int64, error)
	GetByID(ctx context.Context, id int64) (*domain.User, error)
	Update(ctx context.Context, id int64, input UpdateUserInput) error
	Delete(ctx context.Context, id int64) error
}
