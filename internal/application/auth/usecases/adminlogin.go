package usecases

import (
	"context"
	"strings"

	"helpdesk/internal/application/auth/dto"
	"helpdesk/internal/domain/user"
	"helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
)

type AdminLoginCommand struct {
	Username string
	Password string
}

// AdminLoginUseCase authenticates an administrator by username and password.
// Non-admin accounts and wrong passwords both answer not found, so probing
// cannot tell accounts apart.
type AdminLoginUseCase struct {
	userRepo  user.Repository
	tokens    TokenIssuer
	passwords PasswordVerifier
	logger    logger.Interface
}

func NewAdminLoginUseCase(
	userRepo user.Repository,
	tokens TokenIssuer,
	passwords PasswordVerifier,
	logger logger.Interface,
) *AdminLoginUseCase {
	return &AdminLoginUseCase{
		userRepo:  userRepo,
		tokens:    tokens,
		passwords: passwords,
		logger:    logger,
	}
}

func (uc *AdminLoginUseCase) Execute(ctx context.Context, cmd AdminLoginCommand) (*dto.AuthResult, error) {
	username := strings.TrimSpace(cmd.Username)

	if username == "" || cmd.Password == "" {
		return nil, errors.NewValidationError("username and password are required")
	}

	u, err := uc.userRepo.FindByUsername(ctx, username)
	if err != nil {
		if errors.IsNotFoundError(err) {
			return nil, errors.NewNotFoundError("invalid credentials")
		}
		return nil, err
	}

	if !u.IsAdmin() || !uc.passwords.Compare(u.PasswordHash(), cmd.Password) {
		uc.logger.Warnw("admin login rejected", "username", username)
		return nil, errors.NewNotFoundError("invalid credentials")
	}

	token, err := uc.tokens.Generate(u.ID(), u.Username(), u.IsAdmin())
	if err != nil {
		uc.logger.Errorw("failed to issue token", "error", err, "user_id", u.ID())
		return nil, errors.NewInternalError("failed to issue token")
	}

	uc.logger.Infow("admin logged in", "user_id", u.ID(), "username", u.Username())

	return &dto.AuthResult{
		User:  dto.ToUserDTO(u),
		Token: token,
	}, nil
}
