package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pollbox/api/internal/core/domain"
	"github.com/pollbox/api/internal/core/ports"
)

type fakePollRepo struct {
	polls []domain.Poll

	savedPoll        *domain.Poll
	deletedPollID    int64
	deleteRequester  int64
	closedPollID     int64
	closedAt         time.Time
	replacedPollID   int64
	replacedOptions  []string
	optionsRequested int64

	err error
}

func (f *fakePollRepo) GetAll(ctx context.Context) ([]domain.Poll, error) {
	return f.polls, f.err
}

func (f *fakePollRepo) Save(ctx context.Context, poll *domain.Poll) (int64, error) {
	f.savedPoll = poll
	return 42, f.err
}

func (f *fakePollRepo) Delete(ctx context.Context, pollID, requesterID int64) error {
	f.deletedPollID = pollID
	f.deleteRequester = requesterID
	return f.err
}

func (f *fakePollRepo) SetClosedAt(ctx context.Context, pollID, requesterID int64, closedAt time.Time) error {
	f.closedPollID = pollID
	f.closedAt = closedAt
	return f.err
}

func (f *fakePollRepo) ReplaceOptions(ctx context.Context, pollID, requesterID int64, options []string) error {
	f.replacedPollID = pollID
	f.replacedOptions = options
	return f.err
}

func (f *fakePollRepo) GetOptions(ctx context.Context, pollID int64) ([]domain.PollOption, error) {
	f.optionsRequested = pollID
	return nil, f.err
}

func TestPollServiceCreate(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name  string
		input ports.CreatePollInput
	}{
		{"missing title", ports.CreatePollInput{Description: "d", PollTypeID: 1, UserID: 1}},
		{"missing description", ports.CreatePollInput{Title: "t", PollTypeID: 1, UserID: 1}},
		{"missing poll type", ports.CreatePollInput{Title: "t", Description: "d", UserID: 1}},
		{"missing user", ports.CreatePollInput{Title: "t", Description: "d", PollTypeID: 1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &fakePollRepo{}
			svc := NewPollService(repo)

			_, err := svc.Create(ctx, tt.input)
			assert.ErrorIs(t, err, domain.ErrInvalidInput)
			assert.Nil(t, repo.savedPoll, "no insert may happen on invalid input")
		})
	}

	t.Run("valid input is persisted", func(t *testing.T) {
		repo := &fakePollRepo{}
		svc := NewPollService(repo)

		id, err := svc.Create(ctx, ports.CreatePollInput{Title: "t", Description: "d", PollTypeID: 1, UserID: 7})
		require.NoError(t, err)
		assert.Equal(t, int64(42), id)
		require.NotNil(t, repo.savedPoll)
		assert.Equal(t, int64(7), repo.savedPoll.UserID)
	})
}

func TestPollServiceDelete(t *testing.T) {
	ctx := context.Background()

	t.Run("requires both ids", func(t *testing.T) {
		repo := &fakePollRepo{}
		svc := NewPollService(repo)

		assert.ErrorIs(t, svc.Delete(ctx, 0, 1), domain.ErrInvalidInput)
		assert.ErrorIs(t, svc.Delete(ctx, 1, 0), domain.ErrInvalidInput)
		assert.Zero(t, repo.deletedPollID)
	})

	t.Run("delegates with requester", func(t *testing.T) {
		repo := &fakePollRepo{}
		svc := NewPollService(repo)

		require.NoError(t, svc.Delete(ctx, 3, 9))
		assert.Equal(t, int64(3), repo.deletedPollID)
		assert.Equal(t, int64(9), repo.deleteRequester)
	})

	t.Run("repository errors pass through", func(t *testing.T) {
		repo := &fakePollRepo{err: domain.ErrNotOwner}
		svc := NewPollService(repo)

		assert.ErrorIs(t, svc.Delete(ctx, 3, 9), domain.ErrNotOwner)
	})
}

func TestPollServiceSetExpiration(t *testing.T) {
	ctx := context.Background()

	t.Run("requires ids and date", func(t *testing.T) {
		repo := &fakePollRepo{}
		svc := NewPollService(repo)

		assert.ErrorIs(t, svc.SetExpiration(ctx, 1, 1, time.Time{}), domain.ErrInvalidInput)
		assert.ErrorIs(t, svc.SetExpiration(ctx, 0, 1, time.Now()), domain.ErrInvalidInput)
	})

	t.Run("delegates closing timestamp", func(t *testing.T) {
		repo := &fakePollRepo{}
		svc := NewPollService(repo)
		closedAt := time.Now().Add(time.Hour)

		require.NoError(t, svc.SetExpiration(ctx, 5, 1, closedAt))
		assert.Equal(t, int64(5), repo.closedPollID)
		assert.Equal(t, closedAt, repo.closedAt)
	})
}

func TestPollServiceSetOptions(t *testing.T) {
	ctx := context.Background()

	t.Run("requires a non-empty list", func(t *testing.T) {
		repo := &fakePollRepo{}
		svc := NewPollService(repo)

		err := svc.SetOptions(ctx, ports.SetOptionsInput{PollID: 1, UserID: 1})
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
		assert.Zero(t, repo.replacedPollID)
	})

	t.Run("delegates the full list", func(t *testing.T) {
		repo := &fakePollRepo{}
		svc := NewPollService(repo)

		err := svc.SetOptions(ctx, ports.SetOptionsInput{PollID: 2, UserID: 1, Options: []string{"A", "B"}})
		require.NoError(t, err)
		assert.Equal(t, []string{"A", "B"}, repo.replacedOptions)
	})

	t.Run("expired polls are rejected by the repository", func(t *testing.T) {
		repo := &fakePollRepo{err: domain.ErrPollExpired}
		svc := NewPollService(repo)

		err := svc.SetOptions(ctx, ports.SetOptionsInput{PollID: 2, UserID: 1, Options: []string{"A"}})
		assert.ErrorIs(t, err, domain.ErrPollExpired)
	})
}
