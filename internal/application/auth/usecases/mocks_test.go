package usecases

import (
	"context"

	"helpdesk/internal/domain/user"
	"helpdesk/internal/shared/logger"
)

type mockUserRepository struct {
	SaveFunc              func(ctx context.Context, u *user.User) error
	FindByIDFunc          func(ctx context.Context, id uint) (*user.User, error)
	FindByUsernameFunc    func(ctx context.Context, username string) (*user.User, error)
	FindByEmployeeIDFunc  func(ctx context.Context, employeeID string) (*user.User, error)
	FindByCredentialsFunc func(ctx context.Context, employeeID, username string) (*user.User, error)
}

func (m *mockUserRepository) Save(ctx context.Context, u *user.User) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, u)
	}
	return nil
}

func (m *mockUserRepository) FindByID(ctx context.Context, id uint) (*user.User, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockUserRepository) FindByUsername(ctx context.Context, username string) (*user.User, error) {
	if m.FindByUsernameFunc != nil {
		return m.FindByUsernameFunc(ctx, username)
	}
	return nil, nil
}

func (m *mockUserRepository) FindByEmployeeID(ctx context.Context, employeeID string) (*user.User, error) {
	if m.FindByEmployeeIDFunc != nil {
		return m.FindByEmployeeIDFunc(ctx, employeeID)
	}
	return nil, nil
}

func (m *mockUserRepository) FindByCredentials(ctx context.Context, employeeID, username string) (*user.User, error) {
	if m.FindByCredentialsFunc != nil {
		return m.FindByCredentialsFunc(ctx, employeeID, username)
	}
	return nil, nil
}

type mockTokenIssuer struct {
	GenerateFunc func(userID uint, username string, isAdmin bool) (string, error)
}

func (m *mockTokenIssuer) Generate(userID uint, username string, isAdmin bool) (string, error) {
	if m.GenerateFunc != nil {
		return m.GenerateFunc(userID, username, isAdmin)
	}
	return "test-token", nil
}

type mockPasswordVerifier struct {
	CompareFunc func(hash, password string) bool
}

func (m *mockPasswordVerifier) Compare(hash, password string) bool {
	if m.CompareFunc != nil {
		return m.CompareFunc(hash, password)
	}
	return false
}

func testLogger() logger.Interface {
	return logger.NewLogger()
}
