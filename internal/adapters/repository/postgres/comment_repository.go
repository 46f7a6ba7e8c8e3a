package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/pollbox/api/internal/core/domain"
	"github.com/pollbox/api/internal/core/ports"
)

type commentRepository struct {
	db *sql.DB
}

func NewCommentRepository(db *sql.DB) ports.CommentRepository {
	return &commentRepository{
		db: db,
	}
}

func (r *commentRepository) Save(ctx context.Context, comment *domain.Comment) (int64, error) {
	query := `
		INSERT INTO comments (poll_id, user_id, content)
		VALUES ($1, $2, $3)
		RETURNING id
	`
	var id int64
	err := r.db.QueryRowContext(ctx, query, comment.PollID, comment.UserID, comment.Content).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("failed to save comment: %w", err)
	}
	comment.ID = id
	return id, nil
}

func (r *commentRepository) GetByPoll(ctx context.Context, pollID int64) ([]domain.Comment, error) {
	query := `
		SELECT id, poll_id, user_id, content, created_at
		FROM comments
		WHERE poll_id = $1
	`
	rows, err := r.db.QueryContext(ctx, query, pollID)
	if err != nil {
		return nil, fmt.Errorf("failed to get comments: %w", err)
	}
	defer rows.Close()

	var comments []domain.Comment
	for rows.Next() {
		var c domain.Comment
		if err := rows.Scan(&c.ID, &c.PollID, &c.UserID, &c.Content, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan comment: %w", err)
		}
		comments = append(comments, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating comments: %w", err)
	}
	return comments, nil
}
