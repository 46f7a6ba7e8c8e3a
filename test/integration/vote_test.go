package integration

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (app *TestApp) countVotes(t *testing.T, pollID int64) int {
	t.Helper()
	var count int
	require.NoError(t, app.DB.QueryRow("SELECT COUNT(*) FROM votes WHERE poll_id = $1", pollID).Scan(&count))
	return count
}

// TestVoteFlow follows the full path: poll with options, one vote, tallied
// results.
func TestVoteFlow(t *testing.T) {
	app := setupTestApp(t)
	defer app.Teardown(t)

	owner := app.createUser(t)
	voter := app.createUser(t)
	pollID := app.createPoll(t, owner)
	app.setOptions(t, pollID, owner, []string{"A", "B"})
	optionIDs := app.getOptionIDs(t, pollID)

	status, raw := app.doJSON(t, http.MethodPost, "/polls/vote", map[string]int64{
		"poll_id":   pollID,
		"option_id": optionIDs["A"],
		"user_id":   voter,
	})
	require.Equal(t, http.StatusCreated, status, string(raw))

	var created struct {
		ID int64 `json:"id"`
	}
	require.NoError(t, json.Unmarshal(raw, &created))
	assert.NotZero(t, created.ID)

	status, raw = app.doJSON(t, http.MethodGet, fmt.Sprintf("/polls/%d/results", pollID), nil)
	require.Equal(t, http.StatusOK, status)

	var results []struct {
		OptionID int64 `json:"option_id"`
		Votes    int64 `json:"votes"`
	}
	require.NoError(t, json.Unmarshal(raw, &results))
	require.Len(t, results, 1, "unvoted options must not appear")
	assert.Equal(t, optionIDs["A"], results[0].OptionID)
	assert.Equal(t, int64(1), results[0].Votes)
}

func TestVoteValidation(t *testing.T) {
	app := setupTestApp(t)
	defer app.Teardown(t)

	owner := app.createUser(t)
	pollID := app.createPoll(t, owner)

	t.Run("missing fields return 400", func(t *testing.T) {
		bodies := []map[string]int64{
			{"option_id": 1, "user_id": owner},
			{"poll_id": pollID, "user_id": owner},
			{"poll_id": pollID, "option_id": 1},
		}
		for _, body := range bodies {
			status, _ := app.doJSON(t, http.MethodPost, "/polls/vote", body)
			assert.Equal(t, http.StatusBadRequest, status)
		}
		assert.Zero(t, app.countVotes(t, pollID))
	})

	t.Run("unknown poll returns 404", func(t *testing.T) {
		status, _ := app.doJSON(t, http.MethodPost, "/polls/vote", map[string]int64{
			"poll_id":   999999,
			"option_id": 1,
			"user_id":   owner,
		})
		assert.Equal(t, http.StatusNotFound, status)
	})
}

func TestVoteExpiration(t *testing.T) {
	app := setupTestApp(t)
	defer app.Teardown(t)

	owner := app.createUser(t)
	voter := app.createUser(t)

	t.Run("a poll without closing timestamp accepts votes", func(t *testing.T) {
		pollID := app.createPoll(t, owner)
		app.setOptions(t, pollID, owner, []string{"A"})
		optionIDs := app.getOptionIDs(t, pollID)

		status, _ := app.doJSON(t, http.MethodPost, "/polls/vote", map[string]int64{
			"poll_id":   pollID,
			"option_id": optionIDs["A"],
			"user_id":   voter,
		})
		assert.Equal(t, http.StatusCreated, status)
	})

	t.Run("a poll closed in the past rejects votes without inserting", func(t *testing.T) {
		pollID := app.createPoll(t, owner)
		app.setOptions(t, pollID, owner, []string{"A"})
		optionIDs := app.getOptionIDs(t, pollID)

		_, err := app.DB.Exec("UPDATE polls SET closed_at = $1 WHERE id = $2", time.Now().Add(-time.Minute), pollID)
		require.NoError(t, err)

		status, raw := app.doJSON(t, http.MethodPost, "/polls/vote", map[string]int64{
			"poll_id":   pollID,
			"option_id": optionIDs["A"],
			"user_id":   voter,
		})
		assert.Equal(t, http.StatusBadRequest, status, string(raw))
		assert.Zero(t, app.countVotes(t, pollID), "no vote row may exist for an expired poll")
	})

	t.Run("a poll closing in the future still accepts votes", func(t *testing.T) {
		pollID := app.createPoll(t, owner)
		app.setOptions(t, pollID, owner, []string{"A"})
		optionIDs := app.getOptionIDs(t, pollID)

		_, err := app.DB.Exec("UPDATE polls SET closed_at = $1 WHERE id = $2", time.Now().Add(time.Hour), pollID)
		require.NoError(t, err)

		status, _ := app.doJSON(t, http.MethodPost, "/polls/vote", map[string]int64{
			"poll_id":   pollID,
			"option_id": optionIDs["A"],
			"user_id":   voter,
		})
		assert.Equal(t, http.StatusCreated, status)
	})
}

// TestResultsAggregation checks the exact per-option counts, including the
// same user voting twice, which this API allows.
func TestResultsAggregation(t *testing.T) {
	app := setupTestApp(t)
	defer app.Teardown(t)

	owner := app.createUser(t)
	voter := app.createUser(t)
	pollID := app.createPoll(t, owner)
	app.setOptions(t, pollID, owner, []string{"A", "B", "C"})
	optionIDs := app.getOptionIDs(t, pollID)

	votes := []int64{optionIDs["A"], optionIDs["A"], optionIDs["B"]}
	for _, optionID := range votes {
		status, _ := app.doJSON(t, http.MethodPost, "/polls/vote", map[string]int64{
			"poll_id":   pollID,
			"option_id": optionID,
			"user_id":   voter,
		})
		require.Equal(t, http.StatusCreated, status)
	}

	status, raw := app.doJSON(t, http.MethodGet, fmt.Sprintf("/polls/%d/results", pollID), nil)
	require.Equal(t, http.StatusOK, status)

	var results []struct {
		OptionID int64 `json:"option_id"`
		Votes    int64 `json:"votes"`
	}
	require.NoError(t, json.Unmarshal(raw, &results))
	require.Len(t, results, 2, "option C has no votes and must be absent")

	counts := make(map[int64]int64, len(results))
	for _, res := range results {
		counts[res.OptionID] = res.Votes
	}
	assert.Equal(t, int64(2), counts[optionIDs["A"]])
	assert.Equal(t, int64(1), counts[optionIDs["B"]])
}
