package integration

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	_ "github.com/lib/pq"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	handler "github.com/pollbox/api/internal/adapters/handler/http"
	repo "github.com/pollbox/api/internal/adapters/repository/postgres"
	"github.com/pollbox/api/internal/core/services"
)

func setupPostgresContainer(ctx context.Context) (testcontainers.Container, string, error) {
	dbName := "testdb"
	user := "user"
	password := "password"

	pgContainer, err := postgres.Run(ctx, "postgres:15-alpine",
		postgres.WithDatabase(dbName),
		postgres.WithUsername(user),
		postgres.WithPassword(password),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(5*time.Second),
		),
	)
	if err != nil {
		return nil, "", fmt.Errorf("failed to start postgres container: %w", err)
	}

	connStr, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		return nil, "", err
	}

	return pgContainer, connStr, nil
}

func applyMigrations(db *sql.DB) error {
	dirPath := "../../internal/adapters/repository/postgres/migrations"

	entries, err := os.ReadDir(dirPath)
	if err != nil {
		return fmt.Errorf("failed to read migrations directory: %w", err)
	}

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}

		if !strings.HasSuffix(entry.Name(), "up.sql") {
			continue
		}

		fullPath := filepath.Join(dirPath, entry.Name())
		content, err := os.ReadFile(fullPath)
		if err != nil {
			return fmt.Errorf("failed to read migration file %s: %w", entry.Name(), err)
		}

		_, err = db.Exec(string(content))
		if err != nil {
			return fmt.Errorf("failed to execute migration %s: %w", entry.Name(), err)
		}
	}

	return nil
}

type TestApp struct {
	DB          *sql.DB
	Server      *httptest.Server
	Client      *http.Client
	DBContainer testcontainers.Container
}

func setupTestApp(t *testing.T) *TestApp {
	ctx := context.Background()
	dbContainer, dbURL, err := setupPostgresContainer(ctx)
	require.NoError(t, err)

	db, err := sql.Open("postgres", dbURL)
	require.NoError(t, err)

	err = applyMigrations(db)
	require.NoError(t, err)

	pollHandler := handler.NewPollHandler(services.NewPollService(repo.NewPollRepository(db)))
	voteHandler := handler.NewVoteHandler(services.NewVoteService(repo.NewVoteRepository(db)))
	commentHandler := handler.NewCommentHandler(services.NewCommentService(repo.NewCommentRepository(db)))
	userHandler := handler.NewUserHandler(services.NewUserService(repo.NewUserRepository(db)))

	router := handler.NewHandler(pollHandler, voteHandler, commentHandler, userHandler)
	server := httptest.NewServer(router)

	return &TestApp{
		DB:          db,
		Server:      server,
		Client:      server.Client(),
		DBContainer: dbContainer,
	}
}

func (app *TestApp) Teardown(t *testing.T) {
	app.Server.Close()
	app.DB.Close()
	if err := app.DBContainer.Terminate(context.Background()); err != nil {
		t.Logf("failed to terminate container: %v", err)
	}
}

// doJSON fires a request with a JSON body and returns the status code and
// raw response body.
func (app *TestApp) doJSON(t *testing.T, method, path string, body any) (int, []byte) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequest(method, app.Server.URL+path, reader)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Client.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, raw
}

func (app *TestApp) createUser(t *testing.T) int64 {
	t.Helper()

	username := fmt.Sprintf("user-%s", uuid.New())
	status, raw := app.doJSON(t, http.MethodPost, "/users", map[string]string{
		"username": username,
		"password": "secret",
	})
	require.Equal(t, http.StatusCreated, status, string(raw))

	var created struct {
		ID int64 `json:"id"`
	}
	require.NoError(t, json.Unmarshal(raw, &created))
	require.NotZero(t, created.ID)
	return created.ID
}

func (app *TestApp) createPoll(t *testing.T, userID int64) int64 {
	t.Helper()

	status, raw := app.doJSON(t, http.MethodPost, "/polls", map[string]any{
		"title":        "Favorite language?",
		"description":  "Pick one",
		"poll_type_id": 1,
		"user_id":      userID,
	})
	require.Equal(t, http.StatusCreated, status, string(raw))

	var created struct {
		ID int64 `json:"id"`
	}
	require.NoError(t, json.Unmarshal(raw, &created))
	require.NotZero(t, created.ID)
	return created.ID
}

func (app *TestApp) setOptions(t *testing.T, pollID, userID int64, options []string) {
	t.Helper()

	status, raw := app.doJSON(t, http.MethodPost, fmt.Sprintf("/polls/%d/options", pollID), map[string]any{
		"user_id": userID,
		"options": options,
	})
	require.Equal(t, http.StatusOK, status, string(raw))
}

func (app *TestApp) getOptionIDs(t *testing.T, pollID int64) map[string]int64 {
	t.Helper()

	status, raw := app.doJSON(t, http.MethodGet, fmt.Sprintf("/polls/%d/options", pollID), nil)
	require.Equal(t, http.StatusOK, status, string(raw))

	var options []struct {
		ID         int64  `json:"id"`
		OptionText string `json:"option_text"`
	}
	require.NoError(t, json.Unmarshal(raw, &options))

	ids := make(map[string]int64, len(options))
	for _, opt := range options {
		ids[opt.OptionText] = opt.ID
	}
	return ids
}
