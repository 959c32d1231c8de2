package usecases

import (
	"context"
	"strings"

	"helpdesk/internal/application/auth/dto"
	"helpdesk/internal/domain/user"
	"helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
)

type ValidateEmployeeCommand struct {
	EmployeeID string
	Username   string
}

// ValidateEmployeeUseCase authenticates a regular employee by the pair of
// employee ID and username. Invalid pairs answer not found without revealing
// which half was wrong.
type ValidateEmployeeUseCase struct {
	userRepo user.Repository
	tokens   TokenIssuer
	logger   logger.Interface
}

func NewValidateEmployeeUseCase(
	userRepo user.Repository,
	tokens TokenIssuer,
	logger logger.Interface,
) *ValidateEmployeeUseCase {
	return &ValidateEmployeeUseCase{
		userRepo: userRepo,
		tokens:   tokens,
		logger:   logger,
	}
}

func (uc *ValidateEmployeeUseCase) Execute(ctx context.Context, cmd ValidateEmployeeCommand) (*dto.AuthResult, error) {
	employeeID := strings.TrimSpace(cmd.EmployeeID)
	username := strings.TrimSpace(cmd.Username)

	if employeeID == "" || username == "" {
		return nil, errors.NewValidationError("employee ID and username are required")
	}

	u, err := uc.userRepo.FindByCredentials(ctx, employeeID, username)
	if err != nil {
		if errors.IsNotFoundError(err) {
			uc.logger.Warnw("employee validation failed", "employee_id", employeeID, "username", username)
			return nil, errors.NewNotFoundError("invalid credentials")
		}
		return nil, err
	}

	// Admin accounts must authenticate with a password through the admin
	// login; issuing their token here would bypass the bcrypt check.
	if u.IsAdmin() {
		uc.logger.Warnw("admin account rejected on employee validation", "username", username)
		return nil, errors.NewNotFoundError("invalid credentials")
	}

	token, err := uc.tokens.Generate(u.ID(), u.Username(), u.IsAdmin())
	if err != nil {
		uc.logger.Errorw("failed to issue token", "error", err, "user_id", u.ID())
		return nil, errors.NewInternalError("failed to issue token")
	}

	uc.logger.Infow("employee validated", "user_id", u.ID(), "username", u.Username())

	return &dto.AuthResult{
		User:  dto.ToUserDTO(u),
		Token: token,
	}, nil
}
