package repository

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/ntx-bassclub/clubhub/internal/migrations"
	"github.com/ntx-bassclub/clubhub/internal/models"
)

// setupTestDb starts a throwaway postgres container, applies the real
// migrations and returns a connected Storage plus a cleanup func.
func setupTestDb(t *testing.T) (*Storage, func()) {
	t.Helper()
	ctx := context.Background()

	container, err := tcpostgres.Run(ctx, "postgres:15-alpine",
		tcpostgres.WithDatabase("testdb"),
		tcpostgres.WithUsername("testuser"),
		tcpostgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(3*time.Minute)),
	)
	require.NoError(t, err, "failed to start container")

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err, "failed to get connection string")

	var storage *Storage
	for i := 0; i < 10; i++ {
		storage, err = New(connStr)
		if err == nil {
			if err = storage.DB.Ping(); err == nil {
				break
			}
		}
		time.Sleep(1 * time.Second)
	}
	require.NoError(t, err, "failed to connect after retries")

	err = migrations.Run(storage.DB, "../../../migrations")
	require.NoError(t, err, "failed to run migrations")

	cleanup := func() {
		if storage != nil && storage.DB != nil {
			storage.DB.Close()
		}
		if container != nil {
			_ = container.Terminate(ctx)
		}
	}
	return storage, cleanup
}

// TestDataFactory seeds rows for integration tests.
type TestDataFactory struct {
	storage *Storage
}

// NewTestDataFactory creates a factory bound to storage.
func NewTestDataFactory(storage *Storage) *TestDataFactory {
	return &TestDataFactory{storage: storage}
}

// CreateUser inserts a user and returns its uid.
func (f *TestDataFactory) CreateUser(t *testing.T, name, email, role string) string {
	t.Helper()
	uid := uuid.NewString()
	err := f.storage.RegisterUser(context.Background(), models.User{
		UID:          uid,
		Name:         name,
		Email:        email,
		PasswordHash: "$2a$10$testhashtesthashtesthashte",
		Role:         role,
		JoinDate:     time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)
	return uid
}

// CreatePost inserts a post at the given timestamp and returns its id.
func (f *TestDataFactory) CreatePost(t *testing.T, authorUID, content, postType, tournamentID string, ts time.Time) string {
	t.Helper()
	id := uuid.NewString()
	err := f.storage.CreatePost(context.Background(), models.Post{
		ID:           id,
		AuthorUID:    authorUID,
		AuthorName:   "Test Author",
		Content:      content,
		Type:         postType,
		Timestamp:    ts,
		TournamentID: tournamentID,
		Comments:     []models.Comment{},
	})
	require.NoError(t, err)
	return id
}
