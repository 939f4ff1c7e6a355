package sqlite

import (
	"context"
	"testing"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/require"

	"github.com/taskdeck/taskdeck-api/internal/config"
	"github.com/taskdeck/taskdeck-api/internal/domain"
)

// newTestDB opens a fresh in-memory database with the full schema applied.
// Every test gets its own instance; nothing is shared across tests.
func newTestDB(t *testing.T) *sqlx.DB {
	t.Helper()

	db, err := Open(config.DatabaseConfig{Path: ":memory:", BusyTimeoutMS: 5000})
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	require.NoError(t, Migrate(db))

	return db
}

// createTestUser inserts a user and returns its ID.
func createTestUser(t *testing.T, db *sqlx.DB, email string) int64 {
	t.Helper()

	users := NewUserStore(db)
	user := &domain.User{
		Name:           "Test User",
		Email:          email,
		HashedPassword: "$2a$10$testdigesttestdigesttest",
	}
	require.NoError(t, users.Create(context.Background(), user))

	return user.ID
}

func strPtr(s string) *string { return &s }

func priorityPtr(p domain.TaskPriority) *domain.TaskPriority { return &p }

func statusPtr(s domain.TaskStatus) *domain.TaskStatus { return &s }
