package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"helpdesk/internal/domain/user"
	apperrors "helpdesk/internal/shared/errors"
)

func newTestUser(t *testing.T, username, employeeID string) *user.User {
	t.Helper()

	u, err := user.NewUser(username, employeeID, username+"@example.com", false)
	require.NoError(t, err)
	return u
}

func TestUserRepository_Save(t *testing.T) {
	db := setupTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	t.Run("save new user", func(t *testing.T) {
		u := newTestUser(t, "jsmith", "EMP-1001")

		err := repo.Save(ctx, u)
		assert.NoError(t, err)
		assert.NotZero(t, u.ID())
	})

	t.Run("duplicate username conflicts", func(t *testing.T) {
		err := repo.Save(ctx, newTestUser(t, "jsmith", "EMP-2001"))
		assert.True(t, apperrors.IsConflictError(err))
	})

	t.Run("duplicate employee ID conflicts", func(t *testing.T) {
		err := repo.Save(ctx, newTestUser(t, "other", "EMP-1001"))
		assert.True(t, apperrors.IsConflictError(err))
	})
}

func TestUserRepository_FindByCredentials(t *testing.T) {
	db := setupTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	u := newTestUser(t, "mgarcia", "EMP-1002")
	require.NoError(t, repo.Save(ctx, u))

	t.Run("matching pair", func(t *testing.T) {
		found, err := repo.FindByCredentials(ctx, "EMP-1002", "mgarcia")
		require.NoError(t, err)
		assert.Equal(t, u.ID(), found.ID())
		assert.Equal(t, "mgarcia@example.com", found.Email())
	})

	t.Run("mismatched pair", func(t *testing.T) {
		_, err := repo.FindByCredentials(ctx, "EMP-1002", "jsmith")
		assert.True(t, apperrors.IsNotFoundError(err))
	})

	t.Run("unknown employee", func(t *testing.T) {
		_, err := repo.FindByCredentials(ctx, "EMP-9999", "mgarcia")
		assert.True(t, apperrors.IsNotFoundError(err))
	})
}

func TestUserRepository_FindByUsername(t *testing.T) {
	db := setupTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	admin, err := user.NewUser("admin", "EMP-0001", "admin@example.com", true)
	require.NoError(t, err)
	require.NoError(t, admin.SetPasswordHash("$2a$12$hash"))
	require.NoError(t, repo.Save(ctx, admin))

	found, err := repo.FindByUsername(ctx, "admin")
	require.NoError(t, err)
	assert.True(t, found.IsAdmin())
	assert.Equal(t, "$2a$12$hash", found.PasswordHash())

	_, err = repo.FindByUsername(ctx, "ghost")
	assert.True(t, apperrors.IsNotFoundError(err))
}
