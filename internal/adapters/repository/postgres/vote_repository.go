package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/pollbox/api/internal/core/domain"
	"github.com/pollbox/api/internal/core/ports"
)

type voteRepository struct {
	db *sql.DB
}

func NewVoteRepository(db *sql.DB) ports.VoteRepository {
	return &voteRepository{
		db: db,
	}
}

// Save inserts the vote after checking the poll's expiry, both inside one
// transaction with the poll row locked, so the expiry check cannot go
// stale between lookup and insert.
func (r *voteRepository) Save(ctx context.Context, vote *domain.Vote) (int64, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var poll domain.Poll
	err = tx.QueryRowContext(ctx, `SELECT id, closed_at FROM polls WHERE id = $1 FOR UPDATE`, vote.PollID).
		Scan(&poll.ID, &poll.ClosedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, domain.ErrPollNotFound
		}
		return 0, fmt.Errorf("failed to get poll: %w", err)
	}

	if poll.Expired(time.Now()) {
		return 0, domain.ErrPollExpired
	}

	query := `
		INSERT INTO votes (poll_id, option_id, user_id)
		VALUES ($1, $2, $3)
		RETURNING id
	`
	var id int64
	if err := tx.QueryRowContext(ctx, query, vote.PollID, vote.OptionID, vote.UserID).Scan(&id); err != nil {
		return 0, fmt.Errorf("failed to save vote: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit transaction: %w", err)
	}

	vote.ID = id
	return id, nil
}

func (r *voteRepository) Results(ctx context.Context, pollID int64) ([]domain.PollResult, error) {
	query := `
		SELECT option_id, COUNT(option_id) AS votes
		FROM votes
		WHERE poll_id = $1
		GROUP BY option_id
	`
	rows, err := r.db.QueryContext(ctx, query, pollID)
	if err != nil {
		return nil, fmt.Errorf("failed to get poll results: %w", err)
	}
	defer rows.Close()

	var results []domain.PollResult
	for rows.Next() {
		var res domain.PollResult
		if err := rows.Scan(&res.OptionID, &res.Votes); err != nil {
			return nil, fmt.Errorf("failed to scan result: %w", err)
		}
		results = append(results, res)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating results: %w", err)
	}
	return results, nil
}
