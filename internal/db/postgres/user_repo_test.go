package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"Labeddit/internal/core/users"
)

func TestUserRepo_CreateAndGet(t *testing.T) {
	db := setupTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	user := seedUser(t, db, "Ana")

	byID, err := repo.GetByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, user.Name, byID.Name)
	assert.Equal(t, user.Email, byID.Email)
	assert.Equal(t, "hash", byID.PasswordHash)
	assert.Equal(t, users.RoleNormal, byID.Role)

	byEmail, err := repo.GetByEmail(ctx, user.Email)
	require.NoError(t, err)
	assert.Equal(t, user.ID, byEmail.ID)
}

func TestUserRepo_NotFound(t *testing.T) {
	db := setupTestDB(t)
	repo := NewUserRepository(db)

	_, err := repo.GetByID(context.Background(), "missing-user")
	assert.ErrorIs(t, err, users.ErrUserNotFound)

	_, err = repo.GetByEmail(context.Background(), "missing@labeddit.test")
	assert.ErrorIs(t, err, users.ErrUserNotFound)
}

func TestUserRepo_DuplicateEmail(t *testing.T) {
	db := setupTestDB(t)
	repo := NewUserRepository(db)

	existing := seedUser(t, db, "Ana")

	err := repo.Create(context.Background(), &users.User{
		ID:           "dup-" + existing.ID,
		Name:         "Bea",
		Email:        existing.Email,
		PasswordHash: "hash",
		Role:         users.RoleNormal,
		CreatedAt:    time.Now().UTC(),
	})
	assert.ErrorIs(t, err, users.ErrUserAlreadyExists)
}
