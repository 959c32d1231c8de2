package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"helpdesk/internal/domain/user"
	"helpdesk/internal/shared/authorization"
	"helpdesk/internal/shared/errors"
)

func TestGetUserUseCase_Execute(t *testing.T) {
	userRepo := &mockUserRepository{
		FindByIDFunc: func(ctx context.Context, id uint) (*user.User, error) {
			if id != 7 {
				return nil, errors.NewNotFoundError("user not found")
			}
			return user.ReconstructUser(7, "jsmith", "EMP-1001", "jsmith@example.com", "", false, time.Now())
		},
	}

	uc := NewGetUserUseCase(userRepo, testLogger())

	t.Run("own profile", func(t *testing.T) {
		result, err := uc.Execute(context.Background(), GetUserQuery{
			UserID:   7,
			Identity: authorization.Identity{UserID: 7},
		})
		require.NoError(t, err)
		assert.Equal(t, uint(7), result.ID)
		assert.Equal(t, "jsmith", result.Username)
	})

	t.Run("admin reads any profile", func(t *testing.T) {
		result, err := uc.Execute(context.Background(), GetUserQuery{
			UserID:   7,
			Identity: authorization.Identity{UserID: 1, IsAdmin: true},
		})
		require.NoError(t, err)
		assert.Equal(t, uint(7), result.ID)
	})

	t.Run("stranger is rejected", func(t *testing.T) {
		_, err := uc.Execute(context.Background(), GetUserQuery{
			UserID:   7,
			Identity: authorization.Identity{UserID: 8},
		})
		assert.True(t, errors.IsForbiddenError(err))
	})

	t.Run("unknown user", func(t *testing.T) {
		_, err := uc.Execute(context.Background(), GetUserQuery{
			UserID:   99,
			Identity: authorization.Identity{UserID: 99},
		})
		assert.True(t, errors.IsNotFoundError(err))
	})
}
