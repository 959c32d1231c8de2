package user

import (
	"fmt"
	"time"
)

// User is an identity record. Regular employees authenticate with employee ID
// plus username; administrators additionally carry a bcrypt password hash.
// Users are created by seed or admin provisioning and immutable afterwards.
type User struct {
	id           uint
	username     string
	employeeID   string
	email        string
	passwordHash string
	isAdmin      bool
	createdAt    time.Time
}

func NewUser(username, employeeID, email string, isAdmin bool) (*User, error) {
	if len(username) == 0 {
		return nil, fmt.Errorf("username is required")
	}
	if len(username) > 50 {
		return nil, fmt.Errorf("username exceeds maximum length of 50 characters")
	}
	if len(employeeID) == 0 {
		return nil, fmt.Errorf("employee ID is required")
	}
	if len(employeeID) > 50 {
		return nil, fmt.Errorf("employee ID exceeds maximum length of 50 characters")
	}

	return &User{
		username:   username,
		employeeID: employeeID,
		email:      email,
		isAdmin:    isAdmin,
		createdAt:  time.Now(),
	}, nil
}

func ReconstructUser(
	id uint,
	username string,
	employeeID string,
	email string,
	passwordHash string,
	isAdmin bool,
	createdAt time.Time,
) (*User, error) {
	if id == 0 {
		return nil, fmt.Errorf("user ID cannot be zero")
	}
	if len(username) == 0 {
		return nil, fmt.Errorf("username is required")
	}

	return &User{
		id:           id,
		username:     username,
		employeeID:   employeeID,
		email:        email,
		passwordHash: passwordHash,
		isAdmin:      isAdmin,
		createdAt:    createdAt,
	}, nil
}

func (u *User) ID() uint {
	return u.id
}

func (u *User) Username() string {
	return u.username
}

func (u *User) EmployeeID() string {
	return u.employeeID
}

func (u *User) Email() string {
	return u.email
}

func (u *User) PasswordHash() string {
	return u.passwordHash
}

func (u *User) IsAdmin() bool {
	return u.isAdmin
}

func (u *User) CreatedAt() time.Time {
	return u.createdAt
}

func (u *User) SetID(id uint) error {
	if u.id != 0 {
		return fmt.Errorf("user ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("user ID cannot be zero")
	}
	u.id = id
	return nil
}

// SetPasswordHash attaches a bcrypt hash; only admin accounts carry one.
func (u *User) SetPasswordHash(hash string) error {
	if !u.isAdmin {
		return fmt.Errorf("only admin accounts can have a password")
	}
	if len(hash) == 0 {
		return fmt.Errorf("password hash cannot be empty")
	}
	u.passwordHash = hash
	return nil
}
