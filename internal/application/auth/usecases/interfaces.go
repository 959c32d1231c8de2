package usecases

import (
	"context"

	"helpdesk/internal/application/auth/dto"
)

type ValidateEmployeeExecutor interface {
	Execute(ctx context.Context, cmd ValidateEmployeeCommand) (*dto.AuthResult, error)
}

type AdminLoginExecutor interface {
	Execute(ctx context.Context, cmd AdminLoginCommand) (*dto.AuthResult, error)
}

type GetUserExecutor interface {
	Execute(ctx context.Context, query GetUserQuery) (*dto.UserDTO, error)
}

// TokenIssuer signs access tokens for authenticated identities.
type TokenIssuer interface {
	Generate(userID uint, username string, isAdmin bool) (string, error)
}

// PasswordVerifier checks a plaintext password against a stored hash.
type PasswordVerifier interface {
	Compare(hash, password string) bool
}
