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

type pollRepository struct {
	db *sql.DB
}

func NewPollRepository(db *sql.DB) ports.PollRepository {
	return &pollRepository{
		db: db,
	}
}

func (r *pollRepository) GetAll(ctx context.Context) ([]domain.Poll, error) {
	query := `
		SELECT id, title, description, poll_type_id, user_id, created_at, closed_at
		FROM polls
	`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to get all polls: %w", err)
	}
	defer rows.Close()

	var polls []domain.Poll
	for rows.Next() {
		var poll domain.Poll
		if err := rows.Scan(&poll.ID, &poll.Title, &poll.Description, &poll.PollTypeID, &poll.UserID, &poll.CreatedAt, &poll.ClosedAt); err != nil {
			return nil, fmt.Errorf("failed to scan poll: %w", err)
		}
		polls = append(polls, poll)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating polls: %w", err)
	}
	return polls, nil
}

func (r *pollRepository) Save(ctx context.Context, poll *domain.Poll) (int64, error) {
	query := `
		INSERT INTO polls (title, description, poll_type_id, user_id)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`
	var id int64
	err := r.db.QueryRowContext(ctx, query, poll.Title, poll.Description, poll.PollTypeID, poll.UserID).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("failed to insert poll: %w", err)
	}
	poll.ID = id
	return id, nil
}

func (r *pollRepository) Delete(ctx context.Context, pollID, requesterID int64) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := r.lockOwnedPoll(ctx, tx, pollID, requesterID); err != nil {
		return err
	}

	// Options, votes and comments go with the poll via ON DELETE CASCADE.
	if _, err := tx.ExecContext(ctx, `DELETE FROM polls WHERE id = $1`, pollID); err != nil {
		return fmt.Errorf("failed to delete poll: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

func (r *pollRepository) SetClosedAt(ctx context.Context, pollID, requesterID int64, closedAt time.Time) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := r.lockOwnedPoll(ctx, tx, pollID, requesterID); err != nil {
		return err
	}

	if _, err := tx.ExecContext(ctx, `UPDATE polls SET closed_at = $1 WHERE id = $2`, closedAt, pollID); err != nil {
		return fmt.Errorf("failed to set poll expiration: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

func (r *pollRepository) ReplaceOptions(ctx context.Context, pollID, requesterID int64, options []string) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	poll, err := r.lockOwnedPoll(ctx, tx, pollID, requesterID)
	if err != nil {
		return err
	}
	if poll.Expired(time.Now()) {
		return domain.ErrPollExpired
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM poll_options WHERE poll_id = $1`, pollID); err != nil {
		return fmt.Errorf("failed to delete previous options: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, `INSERT INTO poll_options (poll_id, option_text) VALUES ($1, $2)`)
	if err != nil {
		return fmt.Errorf("failed to prepare option statement: %w", err)
	}
	defer stmt.Close()

	for _, text := range options {
		if _, err := stmt.ExecContext(ctx, pollID, text); err != nil {
			return fmt.Errorf("failed to insert option: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

func (r *pollRepository) GetOptions(ctx context.Context, pollID int64) ([]domain.PollOption, error) {
	query := `
		SELECT id, poll_id, option_text
		FROM poll_options
		WHERE poll_id = $1
	`
	rows, err := r.db.QueryContext(ctx, query, pollID)
	if err != nil {
		return nil, fmt.Errorf("failed to get poll options: %w", err)
	}
	defer rows.Close()

	var options []domain.PollOption
	for rows.Next() {
		var opt domain.PollOption
		if err := rows.Scan(&opt.ID, &opt.PollID, &opt.OptionText); err != nil {
			return nil, fmt.Errorf("failed to scan option: %w", err)
		}
		options = append(options, opt)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating options: %w", err)
	}

	// Zero rows covers both "poll has no options" and "poll does not
	// exist"; only the latter is a not-found.
	if len(options) == 0 {
		var exists int
		err := r.db.QueryRowContext(ctx, `SELECT 1 FROM polls WHERE id = $1`, pollID).Scan(&exists)
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrPollNotFound
		}
		if err != nil {
			return nil, fmt.Errorf("failed to check poll existence: %w", err)
		}
	}

	return options, nil
}

// lockOwnedPoll loads the poll row FOR UPDATE so concurrent mutations of
// the same poll serialize, then enforces existence and ownership.
func (r *pollRepository) lockOwnedPoll(ctx context.Context, tx *sql.Tx, pollID, requesterID int64) (*domain.Poll, error) {
	query := `SELECT id, user_id, closed_at FROM polls WHERE id = $1 FOR UPDATE`

	var poll domain.Poll
	err := tx.QueryRowContext(ctx, query, pollID).Scan(&poll.ID, &poll.UserID, &poll.ClosedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrPollNotFound
		}
		return nil, fmt.Errorf("failed to get poll: %w", err)
	}

	if poll.UserID != requesterID {
		return nil, domain.ErrNotOwner
	}

	return &poll, nil
}
