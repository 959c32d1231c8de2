package usecases

import (
	"context"

	"helpdesk/internal/application/auth/dto"
	"helpdesk/internal/domain/user"
	"helpdesk/internal/shared/authorization"
	"helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
)

type GetUserQuery struct {
	UserID   uint
	Identity authorization.Identity
}

// GetUserUseCase looks up a user profile. Profiles are owner-scoped like
// tickets: employees see their own record, admins see anyone's.
type GetUserUseCase struct {
	userRepo user.Repository
	logger   logger.Interface
}

func NewGetUserUseCase(userRepo user.Repository, logger logger.Interface) *GetUserUseCase {
	return &GetUserUseCase{
		userRepo: userRepo,
		logger:   logger,
	}
}

func (uc *GetUserUseCase) Execute(ctx context.Context, query GetUserQuery) (*dto.UserDTO, error) {
	if !authorization.CanAccessResourceByOwnerID(query.Identity, query.UserID) {
		return nil, errors.NewForbiddenError("you do not have access to this user")
	}

	u, err := uc.userRepo.FindByID(ctx, query.UserID)
	if err != nil {
		return nil, err
	}

	return dto.ToUserDTO(u), nil
}
