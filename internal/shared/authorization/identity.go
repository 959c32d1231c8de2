// Package authorization implements the access rules for ticket-scoped
// operations: a caller may act on a ticket iff they are an admin or own it.
package authorization

import (
	"github.com/gin-gonic/gin"

	"helpdesk/internal/shared/constants"
)

// Identity is the verified caller identity extracted from an access token.
type Identity struct {
	UserID   uint
	Username string
	IsAdmin  bool
}

// IdentityFromContext reads the identity the auth middleware stored on the
// request context. ok is false for unauthenticated requests.
func IdentityFromContext(c *gin.Context) (Identity, bool) {
	userID, exists := c.Get(constants.ContextKeyUserID)
	if !exists {
		return Identity{}, false
	}

	id, ok := userID.(uint)
	if !ok || id == 0 {
		return Identity{}, false
	}

	return Identity{
		UserID:   id,
		Username: c.GetString(constants.ContextKeyUsername),
		IsAdmin:  c.GetBool(constants.ContextKeyIsAdmin),
	}, true
}

// CanAccessResourceByOwnerID reports whether the identity may act on a
// resource owned by resourceOwnerID.
func CanAccessResourceByOwnerID(identity Identity, resourceOwnerID uint) bool {
	if identity.IsAdmin {
		return true
	}
	return identity.UserID == resourceOwnerID
}
