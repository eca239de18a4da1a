package postgres

import (
	"context"
	"database/sql"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	_ "github.com/lib/pq"
	"github.com/stretchr/testify/require"

	"Labeddit/internal/core/posts"
	"Labeddit/internal/core/users"
)

// setupTestDB connects to TEST_DATABASE_URL and runs migrations.
// Tests are skipped when no database is configured.
func setupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set, skipping PostgreSQL integration test")
	}

	db, err := sql.Open("postgres", dsn)
	require.NoError(t, err, "Failed to connect to test database")
	require.NoError(t, db.Ping(), "Failed to ping test database")
	require.NoError(t, Migrate(db), "Failed to run migrations")

	t.Cleanup(func() { _ = db.Close() })
	return db
}

// seedUser inserts a user and removes it (and its posts) when the test ends
func seedUser(t *testing.T, db *sql.DB, name string) *users.User {
	t.Helper()

	id := uuid.NewString()
	user := &users.User{
		ID:           id,
		Name:         name,
		Email:        id + "@labeddit.test",
		PasswordHash: "hash",
		Role:         users.RoleNormal,
		CreatedAt:    time.Now().UTC().Truncate(time.Microsecond),
	}
	require.NoError(t, NewUserRepository(db).Create(context.Background(), user))

	t.Cleanup(func() {
		_, _ = db.Exec("DELETE FROM users WHERE id = $1", id)
	})
	return user
}

// seedPost inserts a post owned by creatorID
func seedPost(t *testing.T, db *sql.DB, creatorID, content string, createdAt time.Time) *posts.Post {
	t.Helper()

	post := &posts.Post{
		ID:        uuid.NewString(),
		CreatorID: creatorID,
		Content:   content,
		CreatedAt: createdAt,
		UpdatedAt: createdAt,
	}
	require.NoError(t, NewPostRepository(db).Create(context.Background(), post))
	return post
}
