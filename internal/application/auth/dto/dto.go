package dto

import (
	"time"

	"helpdesk/internal/domain/user"
)

type UserDTO struct {
	ID         uint      `json:"id"`
	Username   string    `json:"username"`
	EmployeeID string    `json:"employeeId"`
	Email      string    `json:"email,omitempty"`
	IsAdmin    bool      `json:"isAdmin"`
	CreatedAt  time.Time `json:"createdAt"`
}

// AuthResult pairs the authenticated user with a signed access token.
type AuthResult struct {
	User  *UserDTO `json:"user"`
	Token string   `json:"token"`
}

func ToUserDTO(u *user.User) *UserDTO {
	if u == nil {
		return nil
	}

	return &UserDTO{
		ID:         u.ID(),
		Username:   u.Username(),
		EmployeeID: u.EmployeeID(),
		Email:      u.Email(),
		IsAdmin:    u.IsAdmin(),
		CreatedAt:  u.CreatedAt(),
	}
}
