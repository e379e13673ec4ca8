package ports

import (
	"time"

	"github.com/taskhive/todo-api/internal/core/domain"
)

// Claims is the decoded, verified payload of an access token.
type Claims struct {
	Username  string
	UserID    int64
	Role      domain.Role
	ExpiresAt time.Time
}

// TokenService issues and verifies signed, expiring identity tokens.
// Validity is determined solely by signature and expiry; there is no
// revocation list.
type TokenService interface {
	Issue(user *domain.User) (string, error)
	Verify(tokenString string) (*Claims, error)
}
