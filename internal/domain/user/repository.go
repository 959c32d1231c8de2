package user

import "context"

type Repository interface {
	Save(ctx context.Context, user *User) error
	FindByID(ctx context.Context, id uint) (*User, error)
	FindByUsername(ctx context.Context, username string) (*User, error)
	FindByEmployeeID(ctx context.Context, employeeID string) (*User, error)
	// FindByCredentials matches both employee ID and username, the login
	// contract for regular employees.
	FindByCredentials(ctx context.Context, employeeID, username string) (*User, error)
}
