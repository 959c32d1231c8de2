// Package constants defines shared context keys and application-wide values.
package constants

const (
	// Gin context keys populated by the auth middleware.
	ContextKeyUserID   = "user_id"
	ContextKeyUsername = "username"
	ContextKeyIsAdmin  = "is_admin"

	// TicketCodePrefix is the human-facing prefix of generated ticket codes.
	TicketCodePrefix = "INC"
)
