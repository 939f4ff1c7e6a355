package sqlite

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taskdeck/taskdeck-api/internal/domain"
	"github.com/taskdeck/taskdeck-api/internal/store"
)

func TestUserStoreCreate(t *testing.T) {
	t.Parallel()

	db := newTestDB(t)
	users := NewUserStore(db)
	ctx := context.Background()

	user := &domain.User{
		Name:           "Ada Lovelace",
		Email:          "ada@example.com",
		HashedPassword: "$2a$10$digest",
	}
	require.NoError(t, users.Create(ctx, user))
	assert.Positive(t, user.ID)

	second := &domain.User{
		Name:           "Imposter",
		Email:          "ada@example.com",
		HashedPassword: "$2a$10$other",
	}
	err := users.Create(ctx, second)
	assert.ErrorIs(t, err, store.ErrEmailExists)
}

func TestUserStoreCreateRejectsMissingDigest(t *testing.T) {
	t.Parallel()

	db := newTestDB(t)
	users := NewUserStore(db)

	err := users.Create(context.Background(), &domain.User{
		Name:  "Ada",
		Email: "ada@example.com",
	})
	assert.ErrorIs(t, err, store.ErrInvalidEntity)
}

func TestUserStoreGetByEmail(t *testing.T) {
	t.Parallel()

	db := newTestDB(t)
	users := NewUserStore(db)
	ctx := context.Background()

	created := &domain.User{
		Name:           "Ada Lovelace",
		Email:          "ada@example.com",
		HashedPassword: "$2a$10$digest",
	}
	require.NoError(t, users.Create(ctx, created))

	got, err := users.GetByEmail(ctx, "ada@example.com")
	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)
	assert.Equal(t, "Ada Lovelace", got.Name)
	assert.Equal(t, "$2a$10$digest", got.HashedPassword)

	_, err = users.GetByEmail(ctx, "nobody@example.com")
	assert.ErrorIs(t, err, store.ErrUserNotFound)
}

func TestUserStoreGetByID(t *testing.T) {
	t.Parallel()

	db := newTestDB(t)
	users := NewUserStore(db)
	ctx := context.Background()

	created := &domain.User{
		Name:           "Ada Lovelace",
		Email:          "ada@example.com",
		HashedPassword: "$2a$10$digest",
	}
	require.NoError(t, users.Create(ctx, created))

	got, err := users.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.Email, got.Email)

	_, err = users.GetByID(ctx, created.ID+1000)
	assert.ErrorIs(t, err, store.ErrUserNotFound)
}
