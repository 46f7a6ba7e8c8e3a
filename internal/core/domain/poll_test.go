package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestPollExpired(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	t.Run("nil closed_at never expires", func(t *testing.T) {
		p := Poll{}
		assert.False(t, p.Expired(now))
		assert.False(t, p.Expired(now.Add(100*365*24*time.Hour)))
	})

	t.Run("closed_at in the past is expired", func(t *testing.T) {
		closed := now.Add(-time.Second)
		p := Poll{ClosedAt: &closed}
		assert.True(t, p.Expired(now))
	})

	t.Run("closed_at in the future is open", func(t *testing.T) {
		closed := now.Add(time.Hour)
		p := Poll{ClosedAt: &closed}
		assert.False(t, p.Expired(now))
	})

	t.Run("closed_at equal to now is still open", func(t *testing.T) {
		closed := now
		p := Poll{ClosedAt: &closed}
		assert.False(t, p.Expired(now))
	})
}
