package ports

import (
	"context"

	"github.com/taskhive/todo-api/internal/core/domain"
)

// RegisterInput carries all data needed to create a new account.
type RegisterInput struct {
	Username  string
	Email     string
	FirstName string
	LastName  string
	Password  string
	Role      string
}

// AuthService implements registration, login, and account self-service.
type AuthService interface {
	Register(ctx context.Context, input RegisterInput) (*domain.User, error)
	// Login verifies credentials and returns a signed access token.
	Login(ctx context.Context, username, password string) (string, error)
	ChangePassword(ctx context.Context, userID int64, oldPassword, newPassword string) error
	Profile(ctx context.Context, userID int64) (*domain.User, error)
}
